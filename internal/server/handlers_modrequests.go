package server

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"showbench/internal/db"
)

type createModificationRequest struct {
	ModelID uint           `json:"modelId" binding:"required"`
	Changes map[string]any `json:"changes" binding:"required"`
}

type reviewModificationRequest struct {
	Status string `json:"status" binding:"required"`
}

// handleCreateModificationRequest records a participant's request to change
// a locked entry. Changes go through the same allow list as direct updates,
// so a staff approval can apply them verbatim.
func (s *Server) handleCreateModificationRequest(c *gin.Context) {
	var req createModificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid modification payload")
		return
	}
	if _, err := filterFields(req.Changes, modelUpdateFields); err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	conn := tenantDB(c)
	var model db.Model
	if err := conn.First(&model, req.ModelID).Error; err != nil {
		writeDBError(c, err)
		return
	}
	if model.OwnerUserID != currentUserID(c) {
		writeError(c, http.StatusForbidden, "not your model")
		return
	}
	raw, err := json.Marshal(req.Changes)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid modification payload")
		return
	}
	request := db.ModificationRequest{
		ModelID:     model.ID,
		RequesterID: currentUserID(c),
		Changes:     datatypes.JSON(raw),
		Status:      db.ModificationPending,
	}
	if err := conn.Create(&request).Error; err != nil {
		writeDBError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": request.ID, "status": request.Status})
}

func (s *Server) handleListModificationRequests(c *gin.Context) {
	query := tenantDB(c).Model(&db.ModificationRequest{})
	if raw := c.Query("status"); raw != "" {
		query = query.Where("status = ?", raw)
	}
	var requests []db.ModificationRequest
	if err := query.Order("id").Find(&requests).Error; err != nil {
		writeDBError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

// handleReviewModificationRequest approves or rejects a pending request.
// Approval applies the stored allow-listed changes to the model in the same
// transaction that marks the request approved.
func (s *Server) handleReviewModificationRequest(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		writeError(c, http.StatusBadRequest, "invalid request id")
		return
	}
	var req reviewModificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid review payload")
		return
	}
	if req.Status != db.ModificationApproved && req.Status != db.ModificationRejected {
		writeError(c, http.StatusBadRequest, "status must be approved or rejected")
		return
	}
	conn := tenantDB(c)
	var request db.ModificationRequest
	if err := conn.First(&request, id).Error; err != nil {
		writeDBError(c, err)
		return
	}
	if request.Status != db.ModificationPending {
		writeError(c, http.StatusConflict, "request already reviewed")
		return
	}

	reviewer := currentUserID(c)
	err := conn.Transaction(func(tx *gorm.DB) error {
		if req.Status == db.ModificationApproved {
			var changes map[string]any
			if err := json.Unmarshal(request.Changes, &changes); err != nil {
				return err
			}
			updates, err := filterFields(changes, modelUpdateFields)
			if err != nil {
				return err
			}
			if err := tx.Model(&db.Model{}).Where("id = ?", request.ModelID).Updates(updates).Error; err != nil {
				return err
			}
		}
		return tx.Model(&request).Updates(map[string]any{
			"status":      req.Status,
			"reviewed_by": reviewer,
		}).Error
	})
	if err != nil {
		writeDBError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": request.ID, "status": req.Status})
}
