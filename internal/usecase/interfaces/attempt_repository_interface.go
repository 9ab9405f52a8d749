package interfaces

import (
	"context"
	"errors"

	"bucketvault/internal/domain/entities"
)

var (
	ErrAttemptExists = errors.New("attempt already exists for session")
	ErrNotInStatus   = errors.New("attempt is not in the expected status")
)

// IDepositAttemptRepository abstracts DepositSplitAttempt storage.
//
// Create is conditional on session_id not existing, which is what makes
// Execute idempotent under concurrent invocation. TransitionStatus is a CAS on
// status for the manual-completion path.

type IDepositAttemptRepository interface {
	// Create persists a new attempt; ErrAttemptExists when the session
	// already has one.
	Create(ctx context.Context, a entities.DepositSplitAttempt) (entities.DepositSplitAttempt, error)

	// GetBySessionID returns the zero value when no attempt exists.
	GetBySessionID(ctx context.Context, sessionID string) (entities.DepositSplitAttempt, error)

	// GetByID returns the zero value when no attempt exists.
	GetByID(ctx context.Context, id string) (entities.DepositSplitAttempt, error)

	// Save overwrites the attempt record. Only the executor that created the
	// attempt writes through Save, so no condition is needed.
	Save(ctx context.Context, a entities.DepositSplitAttempt) (entities.DepositSplitAttempt, error)

	// TransitionStatus moves id from 'from' to 'to' at most once, recording
	// txHash; ErrNotInStatus if the attempt is not in 'from'.
	TransitionStatus(ctx context.Context, id string, from, to entities.AttemptStatus, txHash string, updatedAt int64) (entities.DepositSplitAttempt, error)
}
