package db

import (
	"errors"
	"testing"

	"gorm.io/gorm"
)

func TestInsertModelWithCodeFirstAttempt(t *testing.T) {
	model := &Model{Name: "Dragon"}
	err := insertModelWithCode(model, "MSS", 3, 6, 5, func(m *Model) error {
		return nil
	})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if model.Code != "MSS-000003" {
		t.Fatalf("expected MSS-000003, got %q", model.Code)
	}
}

func TestInsertModelWithCodeRetriesOnDuplicate(t *testing.T) {
	collisions := 3
	attempts := 0
	model := &Model{Name: "Dragon"}
	err := insertModelWithCode(model, "MSS", 1, 6, 5, func(m *Model) error {
		attempts++
		if attempts <= collisions {
			return gorm.ErrDuplicatedKey
		}
		return nil
	})
	if err != nil {
		t.Fatalf("expected success after retries, got %v", err)
	}
	if attempts != collisions+1 {
		t.Fatalf("expected %d attempts, got %d", collisions+1, attempts)
	}
	// Sequence advanced past each collision.
	if model.Code != "MSS-000004" {
		t.Fatalf("expected MSS-000004, got %q", model.Code)
	}
}

func TestInsertModelWithCodeExhaustsAttempts(t *testing.T) {
	attempts := 0
	err := insertModelWithCode(&Model{}, "MSS", 1, 6, 5, func(m *Model) error {
		attempts++
		return gorm.ErrDuplicatedKey
	})
	if !errors.Is(err, ErrCodeSpaceExhausted) {
		t.Fatalf("expected ErrCodeSpaceExhausted, got %v", err)
	}
	if attempts != 5 {
		t.Fatalf("expected exactly 5 attempts, got %d", attempts)
	}
}

func TestInsertModelWithCodePropagatesOtherErrors(t *testing.T) {
	boom := errors.New("connection reset")
	attempts := 0
	err := insertModelWithCode(&Model{}, "MSS", 1, 6, 5, func(m *Model) error {
		attempts++
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected the insert error to propagate, got %v", err)
	}
	if attempts != 1 {
		t.Fatalf("expected no retry on a non-duplicate error, got %d attempts", attempts)
	}
}

func TestInsertModelWithCodeDistinctCodesUnderContention(t *testing.T) {
	// Two allocators racing on the same snapshot: the store accepts each
	// code once, so the second caller's first attempt collides and it lands
	// on the next free sequence.
	taken := map[string]bool{}
	insert := func(m *Model) error {
		if taken[m.Code] {
			return gorm.ErrDuplicatedKey
		}
		taken[m.Code] = true
		return nil
	}
	first := &Model{}
	second := &Model{}
	if err := insertModelWithCode(first, "MSS", 1, 6, 5, insert); err != nil {
		t.Fatalf("first allocation failed: %v", err)
	}
	if err := insertModelWithCode(second, "MSS", 1, 6, 5, insert); err != nil {
		t.Fatalf("second allocation failed: %v", err)
	}
	if first.Code == second.Code {
		t.Fatalf("allocations collided on %q", first.Code)
	}
	if first.Code != "MSS-000001" || second.Code != "MSS-000002" {
		t.Fatalf("unexpected codes %q and %q", first.Code, second.Code)
	}
}
