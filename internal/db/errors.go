package db

import "errors"

var (
	// ErrNotFound reports that a referenced row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConflict reports a uniqueness violation that is not retried.
	ErrConflict = errors.New("record already exists")
	// ErrCodeSpaceExhausted reports that model-code allocation ran out of
	// attempts without finding a free code.
	ErrCodeSpaceExhausted = errors.New("model code allocation attempts exhausted")
	// ErrRankOutOfRange reports a vote rank outside 0..3.
	ErrRankOutOfRange = errors.New("rank must be between 0 and 3")
)
