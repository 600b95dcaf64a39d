package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"showbench/internal/db"
)

type setRoleRequest struct {
	Role string `json:"role" binding:"required,role"`
}

type putSettingRequest struct {
	Value string `json:"value" binding:"required"`
}

func (s *Server) handleListUsers(c *gin.Context) {
	conn := tenantDB(c)
	page, perPage := parsePagination(c, 50, 200)
	query := conn.Model(&db.User{})
	if raw := strings.TrimSpace(c.Query("role")); raw != "" {
		query = query.Where("role = ?", raw)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		writeDBError(c, err)
		return
	}
	var users []db.User
	if err := query.Select("id, email, display_name, role, created_at").Order("id").
		Offset((page - 1) * perPage).Limit(perPage).Find(&users).Error; err != nil {
		writeDBError(c, err)
		return
	}
	summaries := make([]gin.H, 0, len(users))
	for _, user := range users {
		summaries = append(summaries, gin.H{
			"id":          user.ID,
			"email":       user.Email,
			"displayName": user.DisplayName,
			"role":        user.Role,
		})
	}
	c.JSON(http.StatusOK, gin.H{"users": summaries, "meta": buildPageMeta(page, perPage, total)})
}

func (s *Server) handleSetUserRole(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		writeError(c, http.StatusBadRequest, "invalid user id")
		return
	}
	var req setRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "unknown or missing role")
		return
	}
	conn := tenantDB(c)
	var user db.User
	if err := conn.First(&user, id).Error; err != nil {
		writeDBError(c, err)
		return
	}
	if err := conn.Model(&user).Update("role", req.Role).Error; err != nil {
		writeDBError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": user.ID, "role": req.Role})
}

func (s *Server) handleListSettings(c *gin.Context) {
	var settings []db.Setting
	if err := tenantDB(c).Order("key").Find(&settings).Error; err != nil {
		writeDBError(c, err)
		return
	}
	values := make(map[string]string, len(settings))
	for _, setting := range settings {
		values[setting.Key] = setting.Value
	}
	c.JSON(http.StatusOK, values)
}

func (s *Server) handlePutSetting(c *gin.Context) {
	key := strings.TrimSpace(c.Param("key"))
	if key == "" || len(key) > 80 {
		writeError(c, http.StatusBadRequest, "invalid setting key")
		return
	}
	var req putSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid setting payload")
		return
	}
	if len(req.Value) > maxSettingValue {
		writeError(c, http.StatusBadRequest, "setting value too long")
		return
	}
	if err := db.PutSetting(tenantDB(c), key, req.Value); err != nil {
		writeDBError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"key": key, "value": req.Value})
}
