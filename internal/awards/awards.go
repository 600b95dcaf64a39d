// Package awards computes contest rankings from judge votes. Pure functions;
// callers fetch the rows.
package awards

import (
	"sort"
	"time"
)

type ModelRef struct {
	ID         uint
	Name       string
	CategoryID uint
}

type VoteRef struct {
	ID        uint
	ModelID   uint
	JudgeID   uint
	Rank      int
	CreatedAt time.Time
}

// RankingEntry is one model's standing. AverageRank is nil when no judge has
// voted; VoteCount is the number of judges contributing to the average.
type RankingEntry struct {
	ModelID     uint     `json:"modelId"`
	ModelName   string   `json:"modelName"`
	CategoryID  uint     `json:"categoryId"`
	AverageRank *float64 `json:"averageRank"`
	VoteCount   int      `json:"votes"`
}

// ComputeRanking produces one entry per supplied model. Each judge
// contributes only their most recent vote on a model (latest CreatedAt,
// greatest id on exact timestamp ties), so historical duplicates are
// harmless. Entries are ordered by descending average; a nil average orders
// as 0 rather than last, so unscored models sit among the zeros instead of
// below a genuine zero average.
func ComputeRanking(models []ModelRef, votes []VoteRef) []RankingEntry {
	latest := latestVotePerJudge(votes)

	entries := make([]RankingEntry, 0, len(models))
	for _, model := range models {
		entry := RankingEntry{
			ModelID:    model.ID,
			ModelName:  model.Name,
			CategoryID: model.CategoryID,
		}
		if byJudge, ok := latest[model.ID]; ok && len(byJudge) > 0 {
			sum := 0
			for _, vote := range byJudge {
				sum += vote.Rank
			}
			avg := float64(sum) / float64(len(byJudge))
			entry.AverageRank = &avg
			entry.VoteCount = len(byJudge)
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return sortValue(entries[i]) > sortValue(entries[j])
	})
	return entries
}

// SplitByCategory partitions a ranking into per-category rankings, keeping
// the overall order within each category.
func SplitByCategory(entries []RankingEntry) map[uint][]RankingEntry {
	split := make(map[uint][]RankingEntry)
	for _, entry := range entries {
		split[entry.CategoryID] = append(split[entry.CategoryID], entry)
	}
	return split
}

func latestVotePerJudge(votes []VoteRef) map[uint]map[uint]VoteRef {
	latest := make(map[uint]map[uint]VoteRef)
	for _, vote := range votes {
		byJudge, ok := latest[vote.ModelID]
		if !ok {
			byJudge = make(map[uint]VoteRef)
			latest[vote.ModelID] = byJudge
		}
		current, ok := byJudge[vote.JudgeID]
		if !ok || newer(vote, current) {
			byJudge[vote.JudgeID] = vote
		}
	}
	return latest
}

func newer(a, b VoteRef) bool {
	if a.CreatedAt.After(b.CreatedAt) {
		return true
	}
	if a.CreatedAt.Before(b.CreatedAt) {
		return false
	}
	return a.ID > b.ID
}

func sortValue(entry RankingEntry) float64 {
	if entry.AverageRank == nil {
		return 0
	}
	return *entry.AverageRank
}
