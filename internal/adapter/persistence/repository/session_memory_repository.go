package repository

import (
	"context"
	"sort"
	"sync"

	"bucketvault/internal/domain/entities"
	"bucketvault/internal/usecase/interfaces"
)

// SessionMemoryRepository is the SESSION_STORE=memory implementation, used for
// local runs and tests. It mirrors the DynamoDB repository's compare-and-set
// semantics under a mutex; it is never layered as a cache in front of the
// durable store; the store that is configured is the source of truth.

type SessionMemoryRepository struct {
	mu      sync.Mutex
	byRef   map[string]entities.PaymentSession
	refByID map[string]string
}

var _ interfaces.ISessionRepository = (*SessionMemoryRepository)(nil)

func NewSessionMemoryRepository() *SessionMemoryRepository {
	return &SessionMemoryRepository{
		byRef:   make(map[string]entities.PaymentSession),
		refByID: make(map[string]string),
	}
}

func (r *SessionMemoryRepository) Create(_ context.Context, s entities.PaymentSession) (entities.PaymentSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byRef[s.Reference]; ok {
		if existing.Status != entities.SessionStatusCleared {
			return entities.PaymentSession{}, interfaces.ErrReferenceTaken
		}
		// Reusing the reference replaces the cleared item; the superseded id
		// must not resolve to the new session.
		delete(r.refByID, existing.ID)
	}
	r.byRef[s.Reference] = s
	r.refByID[s.ID] = s.Reference
	return s, nil
}

func (r *SessionMemoryRepository) GetByReference(_ context.Context, reference string) (entities.PaymentSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.byRef[reference], nil
}

func (r *SessionMemoryRepository) ListByWallet(_ context.Context, walletAddress string) ([]entities.PaymentSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []entities.PaymentSession
	for _, s := range r.byRef {
		if s.WalletAddress == walletAddress {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return out, nil
}

func (r *SessionMemoryRepository) ResolveIfPending(_ context.Context, reference string, status entities.SessionStatus, cryptoAmount int64, verifiedAt int64, failReason string) (entities.PaymentSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.byRef[reference]
	if !ok || s.Status != entities.SessionStatusPending {
		return entities.PaymentSession{}, interfaces.ErrNotPending
	}
	s.Status = status
	s.CryptoAmount = cryptoAmount
	s.VerifiedAt = verifiedAt
	s.FailReason = failReason
	r.byRef[reference] = s
	return s, nil
}

func (r *SessionMemoryRepository) ExpireIfPending(_ context.Context, reference string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.byRef[reference]
	if !ok || s.Status != entities.SessionStatusPending {
		return nil
	}
	s.Status = entities.SessionStatusExpired
	r.byRef[reference] = s
	return nil
}

func (r *SessionMemoryRepository) ClearByID(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ref, ok := r.refByID[id]
	if !ok {
		return nil
	}
	s, ok := r.byRef[ref]
	if !ok {
		return nil
	}
	s.Status = entities.SessionStatusCleared
	r.byRef[ref] = s
	return nil
}
