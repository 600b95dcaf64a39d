package awards

import (
	"testing"
	"time"
)

func at(seconds int) time.Time {
	return time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC).Add(time.Duration(seconds) * time.Second)
}

func TestComputeRankingOneEntryPerModel(t *testing.T) {
	models := []ModelRef{
		{ID: 1, Name: "Dragon", CategoryID: 10},
		{ID: 2, Name: "Knight", CategoryID: 10},
		{ID: 3, Name: "Golem", CategoryID: 11},
	}
	votes := []VoteRef{
		{ID: 1, ModelID: 1, JudgeID: 100, Rank: 2, CreatedAt: at(0)},
		{ID: 2, ModelID: 1, JudgeID: 101, Rank: 3, CreatedAt: at(1)},
	}
	entries := ComputeRanking(models, votes)
	if len(entries) != len(models) {
		t.Fatalf("expected %d entries, got %d", len(models), len(entries))
	}
	for _, entry := range entries {
		if entry.VoteCount > 2 {
			t.Fatalf("model %d counted %d votes from 2 judges", entry.ModelID, entry.VoteCount)
		}
	}
}

func TestComputeRankingUsesLatestVotePerJudge(t *testing.T) {
	models := []ModelRef{{ID: 1, Name: "Dragon", CategoryID: 10}}
	votes := []VoteRef{
		{ID: 1, ModelID: 1, JudgeID: 100, Rank: 0, CreatedAt: at(0)},
		{ID: 2, ModelID: 1, JudgeID: 100, Rank: 3, CreatedAt: at(5)},
		{ID: 3, ModelID: 1, JudgeID: 100, Rank: 1, CreatedAt: at(2)},
	}
	entries := ComputeRanking(models, votes)
	if entries[0].VoteCount != 1 {
		t.Fatalf("expected 1 contributing judge, got %d", entries[0].VoteCount)
	}
	if entries[0].AverageRank == nil || *entries[0].AverageRank != 3 {
		t.Fatalf("expected latest vote (rank 3) to win, got %v", entries[0].AverageRank)
	}
}

func TestComputeRankingTimestampTieBreaksOnID(t *testing.T) {
	models := []ModelRef{{ID: 1, Name: "Dragon", CategoryID: 10}}
	votes := []VoteRef{
		{ID: 7, ModelID: 1, JudgeID: 100, Rank: 1, CreatedAt: at(0)},
		{ID: 9, ModelID: 1, JudgeID: 100, Rank: 2, CreatedAt: at(0)},
		{ID: 8, ModelID: 1, JudgeID: 100, Rank: 0, CreatedAt: at(0)},
	}
	entries := ComputeRanking(models, votes)
	if entries[0].AverageRank == nil || *entries[0].AverageRank != 2 {
		t.Fatalf("expected the greatest id (9, rank 2) to win the tie, got %v", entries[0].AverageRank)
	}
}

func TestComputeRankingAveragesAcrossJudges(t *testing.T) {
	models := []ModelRef{{ID: 1, Name: "Dragon", CategoryID: 10}}
	votes := []VoteRef{
		{ID: 1, ModelID: 1, JudgeID: 100, Rank: 1, CreatedAt: at(0)},
		{ID: 2, ModelID: 1, JudgeID: 101, Rank: 2, CreatedAt: at(0)},
		{ID: 3, ModelID: 1, JudgeID: 102, Rank: 3, CreatedAt: at(0)},
	}
	entries := ComputeRanking(models, votes)
	if entries[0].VoteCount != 3 {
		t.Fatalf("expected 3 votes, got %d", entries[0].VoteCount)
	}
	if entries[0].AverageRank == nil || *entries[0].AverageRank != 2 {
		t.Fatalf("expected average 2, got %v", entries[0].AverageRank)
	}
}

func TestComputeRankingUnvotedModel(t *testing.T) {
	models := []ModelRef{{ID: 1, Name: "Dragon", CategoryID: 10}}
	entries := ComputeRanking(models, nil)
	if entries[0].AverageRank != nil {
		t.Fatalf("expected nil average for unvoted model, got %v", *entries[0].AverageRank)
	}
	if entries[0].VoteCount != 0 {
		t.Fatalf("expected 0 votes, got %d", entries[0].VoteCount)
	}
}

func TestComputeRankingNilAverageOrdersAsZero(t *testing.T) {
	models := []ModelRef{
		{ID: 1, Name: "Unvoted", CategoryID: 10},
		{ID: 2, Name: "ScoredZero", CategoryID: 10},
		{ID: 3, Name: "ScoredHigh", CategoryID: 10},
	}
	votes := []VoteRef{
		{ID: 1, ModelID: 2, JudgeID: 100, Rank: 0, CreatedAt: at(0)},
		{ID: 2, ModelID: 3, JudgeID: 100, Rank: 3, CreatedAt: at(0)},
	}
	entries := ComputeRanking(models, votes)
	if entries[0].ModelID != 3 {
		t.Fatalf("expected the scored model first, got %d", entries[0].ModelID)
	}
	// A nil average sorts as 0, not below a genuine 0: original relative
	// order survives the stable sort.
	if entries[1].ModelID != 1 || entries[2].ModelID != 2 {
		t.Fatalf("expected unvoted model to stay ahead of the zero-scored one, got %d then %d",
			entries[1].ModelID, entries[2].ModelID)
	}
}

func TestComputeRankingEmptyInput(t *testing.T) {
	if entries := ComputeRanking(nil, nil); len(entries) != 0 {
		t.Fatalf("expected empty output, got %d entries", len(entries))
	}
}

func TestComputeRankingOrdersAcrossCategories(t *testing.T) {
	// Judge scores two models in different categories; the event ranking
	// orders the rank-3 model ahead of the rank-2 one.
	models := []ModelRef{
		{ID: 1, Name: "M1", CategoryID: 10},
		{ID: 2, Name: "M2", CategoryID: 11},
	}
	votes := []VoteRef{
		{ID: 1, ModelID: 1, JudgeID: 100, Rank: 2, CreatedAt: at(0)},
		{ID: 2, ModelID: 2, JudgeID: 100, Rank: 3, CreatedAt: at(1)},
	}
	entries := ComputeRanking(models, votes)
	if entries[0].ModelID != 2 || entries[1].ModelID != 1 {
		t.Fatalf("expected M2 before M1, got %d then %d", entries[0].ModelID, entries[1].ModelID)
	}
	if *entries[0].AverageRank != 3 || entries[0].VoteCount != 1 {
		t.Fatalf("unexpected M2 entry: %+v", entries[0])
	}
	if *entries[1].AverageRank != 2 || entries[1].VoteCount != 1 {
		t.Fatalf("unexpected M1 entry: %+v", entries[1])
	}
}

func TestSplitByCategoryKeepsOrder(t *testing.T) {
	entries := []RankingEntry{
		{ModelID: 1, CategoryID: 10},
		{ModelID: 2, CategoryID: 11},
		{ModelID: 3, CategoryID: 10},
	}
	split := SplitByCategory(entries)
	if len(split[10]) != 2 || split[10][0].ModelID != 1 || split[10][1].ModelID != 3 {
		t.Fatalf("unexpected category 10 split: %+v", split[10])
	}
	if len(split[11]) != 1 || split[11][0].ModelID != 2 {
		t.Fatalf("unexpected category 11 split: %+v", split[11])
	}
}
