package repository

import (
	"context"
	"sync"

	"bucketvault/internal/domain/entities"
	"bucketvault/internal/usecase/interfaces"
)

// AttemptMemoryRepository is the in-memory counterpart of the DynamoDB attempt
// store, keeping the same conditional-create and CAS-transition semantics.

type AttemptMemoryRepository struct {
	mu          sync.Mutex
	bySessionID map[string]entities.DepositSplitAttempt
	sessionByID map[string]string
}

var _ interfaces.IDepositAttemptRepository = (*AttemptMemoryRepository)(nil)

func NewAttemptMemoryRepository() *AttemptMemoryRepository {
	return &AttemptMemoryRepository{
		bySessionID: make(map[string]entities.DepositSplitAttempt),
		sessionByID: make(map[string]string),
	}
}

func (r *AttemptMemoryRepository) Create(_ context.Context, a entities.DepositSplitAttempt) (entities.DepositSplitAttempt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bySessionID[a.SessionID]; ok {
		return entities.DepositSplitAttempt{}, interfaces.ErrAttemptExists
	}
	r.bySessionID[a.SessionID] = a
	r.sessionByID[a.ID] = a.SessionID
	return a, nil
}

func (r *AttemptMemoryRepository) GetBySessionID(_ context.Context, sessionID string) (entities.DepositSplitAttempt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.bySessionID[sessionID], nil
}

func (r *AttemptMemoryRepository) GetByID(_ context.Context, id string) (entities.DepositSplitAttempt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sid, ok := r.sessionByID[id]
	if !ok {
		return entities.DepositSplitAttempt{}, nil
	}
	return r.bySessionID[sid], nil
}

func (r *AttemptMemoryRepository) Save(_ context.Context, a entities.DepositSplitAttempt) (entities.DepositSplitAttempt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.bySessionID[a.SessionID] = a
	r.sessionByID[a.ID] = a.SessionID
	return a, nil
}

func (r *AttemptMemoryRepository) TransitionStatus(_ context.Context, id string, from, to entities.AttemptStatus, txHash string, updatedAt int64) (entities.DepositSplitAttempt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sid, ok := r.sessionByID[id]
	if !ok {
		return entities.DepositSplitAttempt{}, interfaces.ErrNotFound
	}
	a := r.bySessionID[sid]
	if a.Status != from {
		return entities.DepositSplitAttempt{}, interfaces.ErrNotInStatus
	}
	a.Status = to
	a.TxHash = txHash
	a.UpdatedAt = updatedAt
	r.bySessionID[sid] = a
	return a, nil
}
