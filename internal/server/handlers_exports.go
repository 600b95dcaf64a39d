package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"showbench/internal/awards"
	"showbench/internal/db"
	"showbench/internal/export"
	"showbench/internal/logging"
	"showbench/internal/web"
)

func (s *Server) handleExportAwardsXLSX(c *gin.Context) {
	event, categories, ranking, ok := s.loadExportData(c)
	if !ok {
		return
	}
	workbook, err := export.AwardsWorkbook(*event, categories, ranking)
	if err != nil {
		logging.Log.Errorf("awards workbook failed: %v", err)
		writeError(c, http.StatusInternalServerError, "export failed")
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("awards-event-%d.xlsx", event.ID)))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := workbook.Write(c.Writer); err != nil {
		logging.Log.Errorf("awards workbook write failed: %v", err)
	}
}

func (s *Server) handlePrintableResults(c *gin.Context) {
	event, categories, ranking, ok := s.loadExportData(c)
	if !ok {
		return
	}
	conn := tenantDB(c)
	codesByModel := map[uint]string{}
	var models []db.Model
	if err := conn.
		Joins("JOIN categories ON categories.id = models.category_id").
		Where("categories.event_id = ?", event.ID).
		Find(&models).Error; err != nil {
		writeDBError(c, err)
		return
	}
	for _, model := range models {
		codesByModel[model.ID] = model.Code
	}

	byCategory := awards.SplitByCategory(ranking)
	data := web.ResultsPageData{EventName: event.Name}
	for _, category := range categories {
		section := web.ResultSection{CategoryName: category.Name}
		for i, entry := range byCategory[category.ID] {
			average := "-"
			if entry.AverageRank != nil {
				average = fmt.Sprintf("%.2f", *entry.AverageRank)
			}
			section.Rows = append(section.Rows, web.ResultRow{
				Place:     i + 1,
				ModelName: entry.ModelName,
				Code:      codesByModel[entry.ModelID],
				Average:   average,
				Votes:     entry.VoteCount,
			})
		}
		data.Sections = append(data.Sections, section)
	}
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := web.Results(data).Render(c.Request.Context(), c.Writer); err != nil {
		logging.Log.Errorf("results page render failed: %v", err)
	}
}

// handlePrintableBadges renders one badge per registration, with a QR code
// encoding the registration id so staff can scan for check-in.
func (s *Server) handlePrintableBadges(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		writeError(c, http.StatusBadRequest, "invalid event id")
		return
	}
	conn := tenantDB(c)
	var event db.Event
	if err := conn.First(&event, id).Error; err != nil {
		writeDBError(c, err)
		return
	}
	var registrations []db.Registration
	if err := conn.Where("event_id = ? AND status IN ?", event.ID,
		[]string{db.RegistrationApproved, db.RegistrationPaid}).Order("id").Find(&registrations).Error; err != nil {
		writeDBError(c, err)
		return
	}

	data := web.BadgeSheetData{EventName: event.Name}
	for _, registration := range registrations {
		var user db.User
		if err := conn.First(&user, registration.UserID).Error; err != nil {
			continue
		}
		code := ""
		if registration.ModelID != nil {
			var model db.Model
			if err := conn.First(&model, *registration.ModelID).Error; err == nil {
				code = model.Code
			}
		}
		qr, err := web.QRDataURI(fmt.Sprintf("showbench:registration:%d", registration.ID), 256)
		if err != nil {
			logging.Log.Errorf("badge QR failed for registration %d: %v", registration.ID, err)
			continue
		}
		data.Badges = append(data.Badges, web.Badge{
			DisplayName: user.DisplayName,
			EventName:   event.Name,
			Code:        code,
			QRDataURI:   qr,
		})
	}
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := web.Badges(data).Render(c.Request.Context(), c.Writer); err != nil {
		logging.Log.Errorf("badge sheet render failed: %v", err)
	}
}

func (s *Server) loadExportData(c *gin.Context) (*db.Event, []db.Category, []awards.RankingEntry, bool) {
	id, ok := paramUint(c, "id")
	if !ok {
		writeError(c, http.StatusBadRequest, "invalid event id")
		return nil, nil, nil, false
	}
	conn := tenantDB(c)
	var event db.Event
	if err := conn.First(&event, id).Error; err != nil {
		writeDBError(c, err)
		return nil, nil, nil, false
	}
	var categories []db.Category
	if err := conn.Where("event_id = ?", event.ID).Order("name").Find(&categories).Error; err != nil {
		writeDBError(c, err)
		return nil, nil, nil, false
	}
	ranking, err := eventRanking(conn, event.ID)
	if err != nil {
		writeDBError(c, err)
		return nil, nil, nil, false
	}
	return &event, categories, ranking, true
}
