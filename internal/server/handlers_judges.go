package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"showbench/internal/db"
)

type createJudgeAssignmentRequest struct {
	EventID    uint  `json:"eventId" binding:"required"`
	JudgeID    uint  `json:"judgeId" binding:"required"`
	CategoryID *uint `json:"categoryId"`
}

func (s *Server) handleListJudgeAssignments(c *gin.Context) {
	conn := tenantDB(c)
	query := conn.Model(&db.JudgeAssignment{})
	if raw := c.Query("event_id"); raw != "" {
		query = query.Where("event_id = ?", raw)
	}
	var assignments []db.JudgeAssignment
	if err := query.Order("id").Find(&assignments).Error; err != nil {
		writeDBError(c, err)
		return
	}
	c.JSON(http.StatusOK, assignments)
}

func (s *Server) handleCreateJudgeAssignment(c *gin.Context) {
	var req createJudgeAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid assignment payload")
		return
	}
	conn := tenantDB(c)
	var judge db.User
	if err := conn.First(&judge, req.JudgeID).Error; err != nil {
		writeDBError(c, err)
		return
	}
	if judge.Role != db.RoleJudge {
		writeError(c, http.StatusBadRequest, "user is not a judge")
		return
	}
	var count int64
	if err := conn.Model(&db.Event{}).Where("id = ?", req.EventID).Count(&count).Error; err != nil {
		writeDBError(c, err)
		return
	}
	if count == 0 {
		writeError(c, http.StatusNotFound, "event not found")
		return
	}
	if req.CategoryID != nil {
		if err := conn.Where("id = ? AND event_id = ?", *req.CategoryID, req.EventID).First(&db.Category{}).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				writeError(c, http.StatusNotFound, "category not found in event")
				return
			}
			writeDBError(c, err)
			return
		}
	}
	assignment := db.JudgeAssignment{
		EventID:    req.EventID,
		JudgeID:    req.JudgeID,
		CategoryID: req.CategoryID,
	}
	if err := conn.Create(&assignment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			writeError(c, http.StatusConflict, "judge already assigned to this event")
			return
		}
		writeDBError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": assignment.ID})
}

func (s *Server) handleDeleteJudgeAssignment(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		writeError(c, http.StatusBadRequest, "invalid assignment id")
		return
	}
	result := tenantDB(c).Delete(&db.JudgeAssignment{}, id)
	if result.Error != nil {
		writeDBError(c, result.Error)
		return
	}
	if result.RowsAffected == 0 {
		writeError(c, http.StatusNotFound, "assignment not found")
		return
	}
	c.Status(http.StatusNoContent)
}
