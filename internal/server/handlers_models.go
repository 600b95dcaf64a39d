package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"showbench/internal/db"
	"showbench/internal/logging"
	"showbench/internal/mailer"
	"showbench/internal/uploads"
)

type createModelRequest struct {
	Name        string `json:"name" binding:"required"`
	CategoryID  uint   `json:"categoryId" binding:"required"`
	TeamID      *uint  `json:"teamId"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

type imageUploadRequest struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
}

func (s *Server) handleCreateModel(c *gin.Context) {
	var req createModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid model payload")
		return
	}
	name, err := validateName(req.Name)
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	description, err := validateDescription(req.Description)
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	conn := tenantDB(c)
	var category db.Category
	if err := conn.First(&category, req.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(c, http.StatusNotFound, "category not found")
			return
		}
		writeDBError(c, err)
		return
	}

	model := db.Model{
		OwnerUserID: currentUserID(c),
		TeamID:      req.TeamID,
		CategoryID:  category.ID,
		Name:        name,
		Description: description,
		ImageURL:    req.ImageURL,
	}
	prefix := db.GetSetting(conn, db.SettingCodePrefix, s.cfg.DefaultCodePrefix)
	width := db.GetSettingInt(conn, db.SettingCodeDigits, s.cfg.DefaultCodeDigits)
	if err := db.CreateModelWithCode(conn, &model, prefix, width, s.cfg.CodeAllocationAttempts); err != nil {
		writeDBError(c, err)
		return
	}
	logging.Log.Infof("model created id=%d code=%s owner=%d", model.ID, model.Code, model.OwnerUserID)
	s.notify(c, mailer.Message{
		Subject: fmt.Sprintf("Entry %s registered", model.Code),
		Body:    fmt.Sprintf("Your entry %q was registered under code %s.", model.Name, model.Code),
	})
	c.JSON(http.StatusCreated, gin.H{"id": model.ID, "code": model.Code})
}

func (s *Server) handleMyModels(c *gin.Context) {
	var models []db.Model
	if err := tenantDB(c).Preload("Images").Where("owner_user_id = ?", currentUserID(c)).Order("id").Find(&models).Error; err != nil {
		writeDBError(c, err)
		return
	}
	c.JSON(http.StatusOK, models)
}

func (s *Server) handleGetModel(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		writeError(c, http.StatusBadRequest, "invalid model id")
		return
	}
	var model db.Model
	if err := tenantDB(c).Preload("Images").First(&model, id).Error; err != nil {
		writeDBError(c, err)
		return
	}
	c.JSON(http.StatusOK, model)
}

func (s *Server) handleUpdateModel(c *gin.Context) {
	model, ok := s.ownedModel(c)
	if !ok {
		return
	}
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, http.StatusBadRequest, "invalid update payload")
		return
	}
	updates, err := filterFields(payload, modelUpdateFields)
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	conn := tenantDB(c)
	if raw, ok := updates["category_id"]; ok {
		categoryID, ok := numericID(raw)
		if !ok {
			writeError(c, http.StatusBadRequest, "invalid category id")
			return
		}
		var count int64
		if err := conn.Model(&db.Category{}).Where("id = ?", categoryID).Count(&count).Error; err != nil {
			writeDBError(c, err)
			return
		}
		if count == 0 {
			writeError(c, http.StatusNotFound, "category not found")
			return
		}
	}
	if err := conn.Model(model).Updates(updates).Error; err != nil {
		writeDBError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": model.ID})
}

func (s *Server) handleDeleteModel(c *gin.Context) {
	model, ok := s.ownedModel(c)
	if !ok {
		return
	}
	conn := tenantDB(c)
	err := conn.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("model_id = ?", model.ID).Delete(&db.ModelImage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("model_id = ?", model.ID).Delete(&db.Vote{}).Error; err != nil {
			return err
		}
		return tx.Delete(model).Error
	})
	if err != nil {
		writeDBError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleImageUpload(c *gin.Context) {
	model, ok := s.ownedModel(c)
	if !ok {
		return
	}
	if s.presigner == nil {
		writeError(c, http.StatusServiceUnavailable, "uploads are not configured")
		return
	}
	var req imageUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid upload payload")
		return
	}
	key := uploads.ObjectKey(model.ID, req.Filename)
	url, err := s.presigner.PresignPut(c.Request.Context(), key, req.ContentType)
	if err != nil {
		logging.Log.Errorf("presign failed: %v", err)
		writeError(c, http.StatusInternalServerError, "could not prepare upload")
		return
	}
	image := db.ModelImage{ModelID: model.ID, ObjectKey: key, URL: s.presigner.PublicURL(key)}
	if err := tenantDB(c).Create(&image).Error; err != nil {
		writeDBError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"uploadUrl": url, "imageUrl": image.URL})
}

// ownedModel loads the path model and checks the caller may modify it:
// owners and admins only.
func (s *Server) ownedModel(c *gin.Context) (*db.Model, bool) {
	id, ok := paramUint(c, "id")
	if !ok {
		writeError(c, http.StatusBadRequest, "invalid model id")
		return nil, false
	}
	var model db.Model
	if err := tenantDB(c).First(&model, id).Error; err != nil {
		writeDBError(c, err)
		return nil, false
	}
	if model.OwnerUserID != currentUserID(c) && currentRole(c) != db.RoleAdmin {
		writeError(c, http.StatusForbidden, "not your model")
		return nil, false
	}
	return &model, true
}

// notify emails the current user, best effort.
func (s *Server) notify(c *gin.Context, msg mailer.Message) {
	s.notifyUser(tenantDB(c), currentUserID(c), msg)
}
