package server

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"showbench/internal/db"
)

func TestVoteSummariesUseCamelCaseKeys(t *testing.T) {
	votes := []db.Vote{
		{ID: 3, JudgeID: 9, ModelID: 7, Rank: 2, UpdatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)},
	}
	raw, err := json.Marshal(voteSummaries(votes))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	body := string(raw)
	for _, key := range []string{`"id":3`, `"modelId":7`, `"rank":2`, `"updatedAt"`} {
		if !strings.Contains(body, key) {
			t.Fatalf("expected %s in %s", key, body)
		}
	}
	if strings.Contains(body, `"JudgeID"`) || strings.Contains(body, `"ModelID"`) {
		t.Fatalf("struct field names leaked into the response: %s", body)
	}
}

func TestVoteSummariesEmptyIsNotNull(t *testing.T) {
	raw, err := json.Marshal(voteSummaries(nil))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(raw) != "[]" {
		t.Fatalf("expected an empty array, got %s", raw)
	}
}
