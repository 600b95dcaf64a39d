package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"showbench/internal/awards"
	"showbench/internal/db"
)

func (s *Server) handleEventAwards(c *gin.Context) {
	eventID, ok := paramUint(c, "eventId")
	if !ok {
		writeError(c, http.StatusBadRequest, "invalid event id")
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
	ranking, err := eventRanking(conn, eventID)
	if err != nil {
		writeDBError(c, err)
		return
	}
	c.JSON(http.StatusOK, ranking)
}

func (s *Server) handleCategoryAwards(c *gin.Context) {
	eventID, ok := paramUint(c, "eventId")
	if !ok {
		writeError(c, http.StatusBadRequest, "invalid event id")
		return
	}
	categoryID, ok := paramUint(c, "categoryId")
	if !ok {
		writeError(c, http.StatusBadRequest, "invalid category id")
		return
	}
	conn := tenantDB(c)
	var category db.Category
	if err := conn.Where("id = ? AND event_id = ?", categoryID, eventID).First(&category).Error; err != nil {
		writeDBError(c, err)
		return
	}
	var models []db.Model
	if err := conn.Where("category_id = ?", category.ID).Find(&models).Error; err != nil {
		writeDBError(c, err)
		return
	}
	votes, err := db.VotesForCategory(conn, category.ID)
	if err != nil {
		writeDBError(c, err)
		return
	}
	c.JSON(http.StatusOK, awards.ComputeRanking(modelRefs(models), voteRefs(votes)))
}

// eventRanking fetches an event's models and votes and runs the aggregator.
func eventRanking(conn *gorm.DB, eventID uint) ([]awards.RankingEntry, error) {
	var models []db.Model
	err := conn.
		Joins("JOIN categories ON categories.id = models.category_id").
		Where("categories.event_id = ?", eventID).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	votes, err := db.VotesForEvent(conn, eventID)
	if err != nil {
		return nil, err
	}
	return awards.ComputeRanking(modelRefs(models), voteRefs(votes)), nil
}

func modelRefs(models []db.Model) []awards.ModelRef {
	refs := make([]awards.ModelRef, 0, len(models))
	for _, model := range models {
		refs = append(refs, awards.ModelRef{ID: model.ID, Name: model.Name, CategoryID: model.CategoryID})
	}
	return refs
}

func voteRefs(votes []db.Vote) []awards.VoteRef {
	refs := make([]awards.VoteRef, 0, len(votes))
	for _, vote := range votes {
		refs = append(refs, awards.VoteRef{
			ID:        vote.ID,
			ModelID:   vote.ModelID,
			JudgeID:   vote.JudgeID,
			Rank:      vote.Rank,
			CreatedAt: vote.CreatedAt,
		})
	}
	return refs
}
