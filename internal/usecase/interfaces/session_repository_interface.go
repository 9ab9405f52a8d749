package interfaces

import (
	"context"
	"errors"

	"bucketvault/internal/domain/entities"
)

// Sentinel errors shared by every ISessionRepository implementation so the
// usecase layer can branch without knowing the storage engine.
var (
	ErrReferenceTaken = errors.New("reference already has a non-cleared session")
	ErrNotPending     = errors.New("session is not pending")
	ErrNotFound       = errors.New("record not found")
)

// ISessionRepository abstracts durable PaymentSession storage.
//
// Implementations must make ResolveIfPending and ExpireIfPending compare-and-set
// on status: concurrent resolution races on the same reference end with exactly
// one winner, the loser observing ErrNotPending.

type ISessionRepository interface {
	// Create persists a new pending session; ErrReferenceTaken if the
	// reference already has a non-cleared session.
	Create(ctx context.Context, s entities.PaymentSession) (entities.PaymentSession, error)

	// GetByReference returns the zero value when no session matches.
	GetByReference(ctx context.Context, reference string) (entities.PaymentSession, error)

	// ListByWallet returns all sessions for a wallet, newest first.
	ListByWallet(ctx context.Context, walletAddress string) ([]entities.PaymentSession, error)

	// ResolveIfPending transitions pending -> verified|failed at most once,
	// fixing cryptoAmount and verifiedAt atomically with the status write.
	ResolveIfPending(ctx context.Context, reference string, status entities.SessionStatus, cryptoAmount int64, verifiedAt int64, failReason string) (entities.PaymentSession, error)

	// ExpireIfPending transitions pending -> expired; a no-op (no error) if
	// the session was already resolved or expired by a concurrent actor.
	ExpireIfPending(ctx context.Context, reference string) error

	// ClearByID unconditionally sets status=cleared. Idempotent; clearing an
	// already cleared or missing session is not an error.
	ClearByID(ctx context.Context, id string) error
}
