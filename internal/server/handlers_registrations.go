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
)

type createRegistrationRequest struct {
	EventID    uint  `json:"eventId" binding:"required"`
	ModelID    *uint `json:"modelId"`
	CategoryID *uint `json:"categoryId"`
}

func (s *Server) handleCreateRegistration(c *gin.Context) {
	var req createRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid registration payload")
		return
	}
	conn := tenantDB(c)
	var event db.Event
	if err := conn.First(&event, req.EventID).Error; err != nil {
		writeDBError(c, err)
		return
	}
	if event.Status != db.EventActive {
		writeError(c, http.StatusConflict, "event is not open for registration")
		return
	}
	registration := db.Registration{
		UserID:     currentUserID(c),
		EventID:    event.ID,
		ModelID:    req.ModelID,
		CategoryID: req.CategoryID,
		Status:     db.RegistrationPending,
	}
	if err := conn.Create(&registration).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			writeError(c, http.StatusConflict, "already registered for this event")
			return
		}
		writeDBError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": registration.ID, "status": registration.Status})
}

func (s *Server) handleMyRegistrations(c *gin.Context) {
	var registrations []db.Registration
	if err := tenantDB(c).Where("user_id = ?", currentUserID(c)).Order("id").Find(&registrations).Error; err != nil {
		writeDBError(c, err)
		return
	}
	c.JSON(http.StatusOK, registrations)
}

func (s *Server) handleListRegistrations(c *gin.Context) {
	conn := tenantDB(c)
	page, perPage := parsePagination(c, 50, 200)
	query := conn.Model(&db.Registration{})
	if raw := c.Query("event_id"); raw != "" {
		query = query.Where("event_id = ?", raw)
	}
	if raw := c.Query("status"); raw != "" {
		query = query.Where("status = ?", raw)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		writeDBError(c, err)
		return
	}
	var registrations []db.Registration
	if err := query.Order("id").Offset((page - 1) * perPage).Limit(perPage).Find(&registrations).Error; err != nil {
		writeDBError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"registrations": registrations, "meta": buildPageMeta(page, perPage, total)})
}

func (s *Server) handleReviewRegistration(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		writeError(c, http.StatusBadRequest, "invalid registration id")
		return
	}
	conn := tenantDB(c)
	var registration db.Registration
	if err := conn.First(&registration, id).Error; err != nil {
		writeDBError(c, err)
		return
	}
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, http.StatusBadRequest, "invalid update payload")
		return
	}
	updates, err := filterFields(payload, registrationReviewFields)
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	status, hasStatus := updates["status"].(string)
	if hasStatus && !db.ValidRegistrationStatus(status) {
		writeError(c, http.StatusBadRequest, "invalid registration status")
		return
	}
	if err := conn.Model(&registration).Updates(updates).Error; err != nil {
		writeDBError(c, err)
		return
	}
	if hasStatus && status == db.RegistrationApproved {
		s.notifyUser(conn, registration.UserID, mailer.Message{
			Subject: "Registration approved",
			Body:    fmt.Sprintf("Your registration #%d was approved.", registration.ID),
		})
	}
	c.JSON(http.StatusOK, gin.H{"id": registration.ID})
}

// handleCheckIn flips the staff-controlled checked-in flag.
func (s *Server) handleCheckIn(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		writeError(c, http.StatusBadRequest, "invalid registration id")
		return
	}
	conn := tenantDB(c)
	var registration db.Registration
	if err := conn.First(&registration, id).Error; err != nil {
		writeDBError(c, err)
		return
	}
	if err := conn.Model(&registration).Update("checked_in", true).Error; err != nil {
		writeDBError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": registration.ID, "checkedIn": true})
}

func (s *Server) notifyUser(conn *gorm.DB, userID uint, msg mailer.Message) {
	var user db.User
	if err := conn.First(&user, userID).Error; err != nil {
		return
	}
	msg.To = user.Email
	if err := s.mail.Send(msg); err != nil {
		logging.Log.Warnf("notification failed to=%s: %v", msg.To, err)
	}
}
