package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"showbench/internal/db"
)

type voteRequest struct {
	ModelID uint `json:"modelId" binding:"required"`
	Rank    *int `json:"rank" binding:"required"`
}

type specialMentionRequest struct {
	ModelID uint   `json:"modelId" binding:"required"`
	Title   string `json:"title" binding:"required,max=200"`
	Note    string `json:"note" binding:"max=1000"`
}

func (s *Server) handleJudgeVote(c *gin.Context) {
	var req voteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid vote payload")
		return
	}
	result, err := db.RecordVote(tenantDB(c), currentUserID(c), req.ModelID, *req.Rank)
	if err != nil {
		writeDBError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"voteId": result.VoteID, "updated": result.WasUpdate})
}

type voteSummary struct {
	ID        uint      `json:"id"`
	ModelID   uint      `json:"modelId"`
	Rank      int       `json:"rank"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func voteSummaries(votes []db.Vote) []voteSummary {
	summaries := make([]voteSummary, 0, len(votes))
	for _, vote := range votes {
		summaries = append(summaries, voteSummary{
			ID:        vote.ID,
			ModelID:   vote.ModelID,
			Rank:      vote.Rank,
			UpdatedAt: vote.UpdatedAt,
		})
	}
	return summaries
}

func (s *Server) handleMyVotes(c *gin.Context) {
	var votes []db.Vote
	if err := tenantDB(c).Where("judge_id = ?", currentUserID(c)).Order("id").Find(&votes).Error; err != nil {
		writeDBError(c, err)
		return
	}
	c.JSON(http.StatusOK, voteSummaries(votes))
}

// handleJudgeModels lists the models the judge may score, derived from their
// event assignments; a category-scoped assignment narrows to that category.
func (s *Server) handleJudgeModels(c *gin.Context) {
	conn := tenantDB(c)
	var assignments []db.JudgeAssignment
	if err := conn.Where("judge_id = ?", currentUserID(c)).Find(&assignments).Error; err != nil {
		writeDBError(c, err)
		return
	}
	if len(assignments) == 0 {
		c.JSON(http.StatusOK, []db.Model{})
		return
	}
	seen := map[uint]bool{}
	var models []db.Model
	for _, assignment := range assignments {
		query := conn.
			Joins("JOIN categories ON categories.id = models.category_id").
			Where("categories.event_id = ?", assignment.EventID)
		if assignment.CategoryID != nil {
			query = query.Where("models.category_id = ?", *assignment.CategoryID)
		}
		var batch []db.Model
		if err := query.Order("models.id").Find(&batch).Error; err != nil {
			writeDBError(c, err)
			return
		}
		for _, model := range batch {
			if !seen[model.ID] {
				seen[model.ID] = true
				models = append(models, model)
			}
		}
	}
	if models == nil {
		models = []db.Model{}
	}
	c.JSON(http.StatusOK, models)
}

func (s *Server) handleCreateSpecialMention(c *gin.Context) {
	var req specialMentionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid special mention payload")
		return
	}
	conn := tenantDB(c)
	var count int64
	if err := conn.Model(&db.Model{}).Where("id = ?", req.ModelID).Count(&count).Error; err != nil {
		writeDBError(c, err)
		return
	}
	if count == 0 {
		writeError(c, http.StatusNotFound, "model not found")
		return
	}
	mention := db.SpecialMention{
		ModelID: req.ModelID,
		JudgeID: currentUserID(c),
		Title:   req.Title,
		Note:    req.Note,
	}
	if err := conn.Create(&mention).Error; err != nil {
		writeDBError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": mention.ID})
}
