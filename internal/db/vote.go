package db

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Vote struct {
	ID        uint      `gorm:"primaryKey"`
	JudgeID   uint      `gorm:"index;not null;uniqueIndex:idx_votes_judge_model"`
	ModelID   uint      `gorm:"index;not null;uniqueIndex:idx_votes_judge_model"`
	Rank      int       `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type VoteResult struct {
	VoteID    uint
	WasUpdate bool
}

// voteStore is the slice of the store recordVote needs, split out so tests
// can inject the individual steps.
type voteStore struct {
	modelExists func(modelID uint) (bool, error)
	findCurrent func(judgeID, modelID uint) (Vote, error)
	updateRank  func(vote *Vote, rank int) error
	insert      func(vote *Vote) error
}

func gormVoteStore(conn *gorm.DB) voteStore {
	return voteStore{
		modelExists: func(modelID uint) (bool, error) {
			var count int64
			err := conn.Model(&Model{}).Where("id = ?", modelID).Count(&count).Error
			return count > 0, err
		},
		findCurrent: func(judgeID, modelID uint) (Vote, error) {
			var vote Vote
			err := conn.Where("judge_id = ? AND model_id = ?", judgeID, modelID).First(&vote).Error
			return vote, err
		},
		updateRank: func(vote *Vote, rank int) error {
			return conn.Model(vote).Update("rank", rank).Error
		},
		insert: func(vote *Vote) error {
			return conn.Create(vote).Error
		},
	}
}

// RecordVote applies one judge's score to a model: at most one current vote
// exists per (judge, model) pair, so an existing row has its rank replaced in
// place and keeps its id. The composite unique index reconciles the race
// where two concurrent calls both decide to insert; the loser retries as an
// update instead of reporting a false success.
func RecordVote(conn *gorm.DB, judgeID, modelID uint, rank int) (VoteResult, error) {
	return recordVote(gormVoteStore(conn), judgeID, modelID, rank)
}

func recordVote(store voteStore, judgeID, modelID uint, rank int) (VoteResult, error) {
	if rank < 0 || rank > 3 {
		return VoteResult{}, ErrRankOutOfRange
	}
	exists, err := store.modelExists(modelID)
	if err != nil {
		return VoteResult{}, err
	}
	if !exists {
		return VoteResult{}, ErrNotFound
	}

	existing, err := store.findCurrent(judgeID, modelID)
	if err == nil {
		if err := store.updateRank(&existing, rank); err != nil {
			return VoteResult{}, err
		}
		return VoteResult{VoteID: existing.ID, WasUpdate: true}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return VoteResult{}, err
	}

	vote := Vote{JudgeID: judgeID, ModelID: modelID, Rank: rank}
	err = store.insert(&vote)
	if err == nil {
		return VoteResult{VoteID: vote.ID, WasUpdate: false}, nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return VoteResult{}, err
	}
	// Lost the insert race; the other writer's row is now current.
	existing, err = store.findCurrent(judgeID, modelID)
	if err != nil {
		return VoteResult{}, err
	}
	if err := store.updateRank(&existing, rank); err != nil {
		return VoteResult{}, err
	}
	return VoteResult{VoteID: existing.ID, WasUpdate: true}, nil
}

// VotesForEvent loads every vote cast on the event's models.
func VotesForEvent(conn *gorm.DB, eventID uint) ([]Vote, error) {
	var votes []Vote
	err := conn.
		Joins("JOIN models ON models.id = votes.model_id").
		Joins("JOIN categories ON categories.id = models.category_id").
		Where("categories.event_id = ?", eventID).
		Find(&votes).Error
	return votes, err
}

// VotesForCategory loads every vote cast on the category's models.
func VotesForCategory(conn *gorm.DB, categoryID uint) ([]Vote, error) {
	var votes []Vote
	err := conn.
		Joins("JOIN models ON models.id = votes.model_id").
		Where("models.category_id = ?", categoryID).
		Find(&votes).Error
	return votes, err
}
