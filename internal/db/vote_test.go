package db

import (
	"errors"
	"testing"

	"gorm.io/gorm"
)

// fakeVoteStore keeps one current vote per (judge, model) pair in a map, the
// way the composite unique index does in the real store.
type fakeVoteStore struct {
	models  map[uint]bool
	votes   map[[2]uint]*Vote
	nextID  uint
	inserts int
	updates int
	// forced errors for individual steps
	insertErr error
}

func newFakeVoteStore(modelIDs ...uint) *fakeVoteStore {
	models := map[uint]bool{}
	for _, id := range modelIDs {
		models[id] = true
	}
	return &fakeVoteStore{models: models, votes: map[[2]uint]*Vote{}, nextID: 1}
}

func (f *fakeVoteStore) store() voteStore {
	return voteStore{
		modelExists: func(modelID uint) (bool, error) {
			return f.models[modelID], nil
		},
		findCurrent: func(judgeID, modelID uint) (Vote, error) {
			if vote, ok := f.votes[[2]uint{judgeID, modelID}]; ok {
				return *vote, nil
			}
			return Vote{}, gorm.ErrRecordNotFound
		},
		updateRank: func(vote *Vote, rank int) error {
			f.updates++
			f.votes[[2]uint{vote.JudgeID, vote.ModelID}].Rank = rank
			return nil
		},
		insert: func(vote *Vote) error {
			f.inserts++
			if f.insertErr != nil {
				return f.insertErr
			}
			key := [2]uint{vote.JudgeID, vote.ModelID}
			if _, ok := f.votes[key]; ok {
				return gorm.ErrDuplicatedKey
			}
			vote.ID = f.nextID
			f.nextID++
			stored := *vote
			f.votes[key] = &stored
			return nil
		},
	}
}

func TestRecordVoteSecondCallUpdatesInPlace(t *testing.T) {
	fake := newFakeVoteStore(7)
	first, err := recordVote(fake.store(), 1, 7, 2)
	if err != nil {
		t.Fatalf("first vote failed: %v", err)
	}
	if first.WasUpdate {
		t.Fatalf("first vote reported an update")
	}
	second, err := recordVote(fake.store(), 1, 7, 3)
	if err != nil {
		t.Fatalf("second vote failed: %v", err)
	}
	if !second.WasUpdate {
		t.Fatalf("second vote on the same pair should update in place")
	}
	if second.VoteID != first.VoteID {
		t.Fatalf("vote id changed across the upsert: %d then %d", first.VoteID, second.VoteID)
	}
	if got := fake.votes[[2]uint{1, 7}].Rank; got != 3 {
		t.Fatalf("expected stored rank 3, got %d", got)
	}
}

func TestRecordVoteMissingModelWritesNothing(t *testing.T) {
	fake := newFakeVoteStore(7)
	_, err := recordVote(fake.store(), 1, 99, 2)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if fake.inserts != 0 || fake.updates != 0 {
		t.Fatalf("missing model must not write: %d inserts, %d updates", fake.inserts, fake.updates)
	}
}

func TestRecordVoteRankBounds(t *testing.T) {
	fake := newFakeVoteStore(7)
	for _, rank := range []int{-1, 4} {
		if _, err := recordVote(fake.store(), 1, 7, rank); !errors.Is(err, ErrRankOutOfRange) {
			t.Fatalf("rank %d: expected ErrRankOutOfRange, got %v", rank, err)
		}
	}
	if fake.inserts != 0 {
		t.Fatalf("out-of-range rank must not write, got %d inserts", fake.inserts)
	}
}

func TestRecordVoteLostInsertRaceFallsBackToUpdate(t *testing.T) {
	// Both writers pass findCurrent before either insert lands: seed the
	// winner's row after the loser's lookup by injecting a duplicate-key
	// insert, the way the unique index reports it.
	fake := newFakeVoteStore(7)
	winner := &Vote{ID: 41, JudgeID: 1, ModelID: 7, Rank: 1}
	store := fake.store()
	store.findCurrent = func(judgeID, modelID uint) (Vote, error) {
		if fake.inserts == 0 {
			return Vote{}, gorm.ErrRecordNotFound
		}
		return *winner, nil
	}
	store.insert = func(vote *Vote) error {
		fake.inserts++
		return gorm.ErrDuplicatedKey
	}
	store.updateRank = func(vote *Vote, rank int) error {
		winner.Rank = rank
		return nil
	}
	result, err := recordVote(store, 1, 7, 3)
	if err != nil {
		t.Fatalf("race loser should recover as an update, got %v", err)
	}
	if !result.WasUpdate || result.VoteID != 41 {
		t.Fatalf("expected update of the winner's row 41, got %+v", result)
	}
	if winner.Rank != 3 {
		t.Fatalf("expected the loser's rank to win, got %d", winner.Rank)
	}
}

func TestRecordVotePropagatesOtherInsertErrors(t *testing.T) {
	fake := newFakeVoteStore(7)
	fake.insertErr = errors.New("connection reset")
	_, err := recordVote(fake.store(), 1, 7, 2)
	if !errors.Is(err, fake.insertErr) {
		t.Fatalf("expected the insert error to propagate, got %v", err)
	}
}
