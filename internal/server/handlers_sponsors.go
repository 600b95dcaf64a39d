package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"showbench/internal/db"
)

type createSponsorRequest struct {
	Name    string `json:"name" binding:"required,max=200"`
	Tier    string `json:"tier" binding:"max=40"`
	LogoURL string `json:"logoUrl" binding:"max=500"`
	Website string `json:"website" binding:"max=300"`
}

func (s *Server) handleListSponsors(c *gin.Context) {
	eventID, ok := paramUint(c, "id")
	if !ok {
		writeError(c, http.StatusBadRequest, "invalid event id")
		return
	}
	var sponsors []db.Sponsor
	if err := tenantDB(c).Where("event_id = ?", eventID).Order("tier, name").Find(&sponsors).Error; err != nil {
		writeDBError(c, err)
		return
	}
	c.JSON(http.StatusOK, sponsors)
}

func (s *Server) handleCreateSponsor(c *gin.Context) {
	eventID, ok := paramUint(c, "id")
	if !ok {
		writeError(c, http.StatusBadRequest, "invalid event id")
		return
	}
	var req createSponsorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid sponsor payload")
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
	sponsor := db.Sponsor{
		EventID: eventID,
		Name:    normalizeText(req.Name),
		Tier:    req.Tier,
		LogoURL: req.LogoURL,
		Website: req.Website,
	}
	if err := conn.Create(&sponsor).Error; err != nil {
		writeDBError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": sponsor.ID})
}

func (s *Server) handleDeleteSponsor(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		writeError(c, http.StatusBadRequest, "invalid sponsor id")
		return
	}
	result := tenantDB(c).Delete(&db.Sponsor{}, id)
	if result.Error != nil {
		writeDBError(c, result.Error)
		return
	}
	if result.RowsAffected == 0 {
		writeError(c, http.StatusNotFound, "sponsor not found")
		return
	}
	c.Status(http.StatusNoContent)
}
