package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"showbench/internal/db"
)

type createEventRequest struct {
	Name        string     `json:"name" binding:"required,max=200"`
	Description string     `json:"description" binding:"max=2000"`
	Location    string     `json:"location" binding:"max=200"`
	StartsAt    *time.Time `json:"startsAt"`
	EndsAt      *time.Time `json:"endsAt"`
}

type createCategoryRequest struct {
	Name        string `json:"name" binding:"required,max=120"`
	Description string `json:"description" binding:"max=1000"`
}

// handleListEvents shows active events only; drafts stay invisible until an
// admin flips the status.
func (s *Server) handleListEvents(c *gin.Context) {
	conn := tenantDB(c)
	page, perPage := parsePagination(c, 20, 100)

	query := conn.Model(&db.Event{}).Where("status = ?", db.EventActive)
	var total int64
	if err := query.Count(&total).Error; err != nil {
		writeDBError(c, err)
		return
	}
	var events []db.Event
	if err := query.Order("starts_at NULLS LAST, id").Offset((page - 1) * perPage).Limit(perPage).Find(&events).Error; err != nil {
		writeDBError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events, "meta": buildPageMeta(page, perPage, total)})
}

func (s *Server) handleGetEvent(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		writeError(c, http.StatusBadRequest, "invalid event id")
		return
	}
	var event db.Event
	if err := tenantDB(c).Preload("Categories").Preload("Sponsors").First(&event, id).Error; err != nil {
		writeDBError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

func (s *Server) handleCreateEvent(c *gin.Context) {
	var req createEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid event payload")
		return
	}
	event := db.Event{
		Name:        normalizeText(req.Name),
		Description: req.Description,
		Status:      db.EventDraft,
		Location:    req.Location,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
	}
	if err := tenantDB(c).Create(&event).Error; err != nil {
		writeDBError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": event.ID})
}

func (s *Server) handleUpdateEvent(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		writeError(c, http.StatusBadRequest, "invalid event id")
		return
	}
	var event db.Event
	if err := tenantDB(c).First(&event, id).Error; err != nil {
		writeDBError(c, err)
		return
	}
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, http.StatusBadRequest, "invalid update payload")
		return
	}
	updates, err := filterFields(payload, eventUpdateFields)
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	if status, ok := updates["status"].(string); ok && !db.ValidEventStatus(status) {
		writeError(c, http.StatusBadRequest, "invalid event status")
		return
	}
	if err := tenantDB(c).Model(&event).Updates(updates).Error; err != nil {
		writeDBError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": event.ID})
}

func (s *Server) handleDeleteEvent(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		writeError(c, http.StatusBadRequest, "invalid event id")
		return
	}
	result := tenantDB(c).Delete(&db.Event{}, id)
	if result.Error != nil {
		writeDBError(c, result.Error)
		return
	}
	if result.RowsAffected == 0 {
		writeError(c, http.StatusNotFound, "event not found")
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleListCategories(c *gin.Context) {
	eventID, ok := paramUint(c, "id")
	if !ok {
		writeError(c, http.StatusBadRequest, "invalid event id")
		return
	}
	var categories []db.Category
	if err := tenantDB(c).Where("event_id = ?", eventID).Order("name").Find(&categories).Error; err != nil {
		writeDBError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (s *Server) handleCreateCategory(c *gin.Context) {
	eventID, ok := paramUint(c, "id")
	if !ok {
		writeError(c, http.StatusBadRequest, "invalid event id")
		return
	}
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid category payload")
		return
	}
	conn := tenantDB(c)
	var count int64
	if err := conn.Model(&db.Event{}).Where("id = ?", eventID).Count(&count).Error; err != nil {
		writeDBError(c, err)
		return
	}
	if count == 0 {
		writeError(c, http.StatusNotFound, "event not found")
		return
	}
	category := db.Category{EventID: eventID, Name: normalizeText(req.Name), Description: req.Description}
	if err := conn.Create(&category).Error; err != nil {
		writeDBError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": category.ID})
}

func (s *Server) handleUpdateCategory(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		writeError(c, http.StatusBadRequest, "invalid category id")
		return
	}
	var category db.Category
	if err := tenantDB(c).First(&category, id).Error; err != nil {
		writeDBError(c, err)
		return
	}
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, http.StatusBadRequest, "invalid update payload")
		return
	}
	updates, err := filterFields(payload, categoryUpdateFields)
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := tenantDB(c).Model(&category).Updates(updates).Error; err != nil {
		writeDBError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": category.ID})
}

func (s *Server) handleDeleteCategory(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		writeError(c, http.StatusBadRequest, "invalid category id")
		return
	}
	conn := tenantDB(c)
	var count int64
	if err := conn.Model(&db.Model{}).Where("category_id = ?", id).Count(&count).Error; err != nil {
		writeDBError(c, err)
		return
	}
	if count > 0 {
		writeError(c, http.StatusConflict, "category still has models")
		return
	}
	result := conn.Delete(&db.Category{}, id)
	if result.Error != nil {
		writeDBError(c, result.Error)
		return
	}
	if result.RowsAffected == 0 {
		writeError(c, http.StatusNotFound, "category not found")
		return
	}
	c.Status(http.StatusNoContent)
}
