package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"bucketvault/internal/domain/entities"
	"bucketvault/internal/usecase/interfaces"
	"bucketvault/pkg/currency"
	"bucketvault/pkg/timeutil"

	"github.com/google/uuid"
)

var (
	ErrInvalidWallet       = errors.New("invalid wallet address")
	ErrInvalidToken        = errors.New("unsupported token symbol")
	ErrInvalidFiatAmount   = errors.New("fiat amount must be positive")
	ErrInvalidReference    = errors.New("invalid payment reference")
	ErrInvalidTTL          = errors.New("session ttl must be positive")
	ErrDuplicateReference  = errors.New("reference already has a non-cleared session")
	ErrActiveSessionExists = errors.New("wallet already has an active session")
	ErrSessionNotFound     = errors.New("payment session not found")
	ErrSessionExpired      = errors.New("payment session expired")
	ErrAlreadyResolved     = errors.New("payment session already resolved")
)

// IPaymentSessionUseCase encapsulates the payment session lifecycle: checkout
// initiation, gateway verification, lazy expiry, and clearing.

type IPaymentSessionUseCase interface {
	CreateCheckout(ctx context.Context, walletAddress string, token entities.TokenSymbol, fiatAmount float64, reference string, ttlSeconds int64) (entities.PaymentSession, error)
	VerifyPayment(ctx context.Context, reference string) (entities.PaymentSession, error)
	ActiveSession(ctx context.Context, walletAddress string) (entities.PaymentSession, error)
	Clear(ctx context.Context, id string) error
}

type PaymentSessionUseCase struct {
	sessions interfaces.ISessionRepository
	gateway  interfaces.IPaymentGateway
	clock    timeutil.Clock
}

var _ IPaymentSessionUseCase = (*PaymentSessionUseCase)(nil)

func NewPaymentSessionUseCase(sessions interfaces.ISessionRepository, gateway interfaces.IPaymentGateway, clock timeutil.Clock) *PaymentSessionUseCase {
	if clock == nil {
		clock = timeutil.SystemClock()
	}
	return &PaymentSessionUseCase{sessions: sessions, gateway: gateway, clock: clock}
}

// CreateCheckout opens a pending session for a gateway checkout. One active
// session per wallet; one non-cleared session per reference.
func (u *PaymentSessionUseCase) CreateCheckout(ctx context.Context, walletAddress string, token entities.TokenSymbol, fiatAmount float64, reference string, ttlSeconds int64) (entities.PaymentSession, error) {
	walletAddress = strings.TrimSpace(walletAddress)
	reference = strings.TrimSpace(reference)
	log.Printf("[session][usecase] create start wallet=%s reference=%s token=%s fiat=%.2f", walletAddress, reference, token, fiatAmount)

	if walletAddress == "" {
		return entities.PaymentSession{}, ErrInvalidWallet
	}
	if !token.IsValid() {
		return entities.PaymentSession{}, ErrInvalidToken
	}
	if fiatAmount <= 0 {
		return entities.PaymentSession{}, ErrInvalidFiatAmount
	}
	if reference == "" {
		return entities.PaymentSession{}, ErrInvalidReference
	}
	if ttlSeconds <= 0 {
		return entities.PaymentSession{}, ErrInvalidTTL
	}

	now := u.clock.Now()
	if _, err := u.activeByWallet(ctx, walletAddress, now); err == nil {
		log.Printf("[session][usecase] create blocked wallet=%s reason=active-session", walletAddress)
		return entities.PaymentSession{}, ErrActiveSessionExists
	} else if !errors.Is(err, ErrSessionNotFound) {
		return entities.PaymentSession{}, err
	}

	s := entities.PaymentSession{
		ID:            uuid.NewString(),
		WalletAddress: walletAddress,
		TokenSymbol:   token,
		FiatAmount:    fiatAmount,
		Reference:     reference,
		Status:        entities.SessionStatusPending,
		CreatedAt:     now,
		ExpiresAt:     now + ttlSeconds,
	}

	created, err := u.sessions.Create(ctx, s)
	if err != nil {
		if errors.Is(err, interfaces.ErrReferenceTaken) {
			log.Printf("[session][usecase] create duplicate reference=%s", reference)
			return entities.PaymentSession{}, ErrDuplicateReference
		}
		log.Printf("[session][usecase] create failed reference=%s err=%v", reference, err)
		return entities.PaymentSession{}, err
	}
	log.Printf("[session][usecase] create success session_id=%s reference=%s expires_at=%d", created.ID, created.Reference, created.ExpiresAt)
	return created, nil
}

// VerifyPayment polls the gateway for the reference's outcome and applies the
// at-most-once pending -> verified|failed transition. The gateway-reported
// amount is authoritative for cryptoAmount.
func (u *PaymentSessionUseCase) VerifyPayment(ctx context.Context, reference string) (entities.PaymentSession, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return entities.PaymentSession{}, ErrInvalidReference
	}
	log.Printf("[session][usecase] verify start reference=%s", reference)

	s, err := u.sessions.GetByReference(ctx, reference)
	if err != nil {
		return entities.PaymentSession{}, err
	}
	if s.Reference == "" {
		return entities.PaymentSession{}, ErrSessionNotFound
	}

	now := u.clock.Now()
	if s.IsStalePending(now) {
		if err := u.sessions.ExpireIfPending(ctx, reference); err != nil {
			return entities.PaymentSession{}, err
		}
		log.Printf("[session][usecase] verify expired reference=%s", reference)
		return entities.PaymentSession{}, ErrSessionExpired
	}
	if s.Status != entities.SessionStatusPending {
		log.Printf("[session][usecase] verify already-resolved reference=%s status=%s", reference, s.Status)
		return entities.PaymentSession{}, ErrAlreadyResolved
	}

	v, err := u.gateway.Verify(ctx, reference)
	if err != nil {
		log.Printf("[session][usecase] gateway verify failed reference=%s err=%v", reference, err)
		return entities.PaymentSession{}, err
	}

	switch v.Status {
	case interfaces.GatewayStatusSucceeded:
		cryptoAmount := currency.ToBaseUnits(v.Amount, currency.StablecoinDecimals)
		resolved, err := u.sessions.ResolveIfPending(ctx, reference, entities.SessionStatusVerified, cryptoAmount, now, "")
		if err != nil {
			if errors.Is(err, interfaces.ErrNotPending) {
				return entities.PaymentSession{}, ErrAlreadyResolved
			}
			return entities.PaymentSession{}, err
		}
		log.Printf("[session][usecase] verify success reference=%s crypto_amount=%d", reference, cryptoAmount)
		return resolved, nil

	case interfaces.GatewayStatusFailed:
		resolved, err := u.sessions.ResolveIfPending(ctx, reference, entities.SessionStatusFailed, 0, now, "gateway reported failure")
		if err != nil {
			if errors.Is(err, interfaces.ErrNotPending) {
				return entities.PaymentSession{}, ErrAlreadyResolved
			}
			return entities.PaymentSession{}, err
		}
		log.Printf("[session][usecase] verify failed reference=%s", reference)
		return resolved, nil
	}

	// Gateway still processing: no transition.
	log.Printf("[session][usecase] verify pending reference=%s", reference)
	return s, nil
}

// ActiveSession returns the wallet's most recent non-cleared, non-expired
// session. Lazy expiry runs here because clients may poll long after
// expires_at.
func (u *PaymentSessionUseCase) ActiveSession(ctx context.Context, walletAddress string) (entities.PaymentSession, error) {
	walletAddress = strings.TrimSpace(walletAddress)
	if walletAddress == "" {
		return entities.PaymentSession{}, ErrInvalidWallet
	}
	return u.activeByWallet(ctx, walletAddress, u.clock.Now())
}

func (u *PaymentSessionUseCase) activeByWallet(ctx context.Context, walletAddress string, now int64) (entities.PaymentSession, error) {
	list, err := u.sessions.ListByWallet(ctx, walletAddress)
	if err != nil {
		return entities.PaymentSession{}, err
	}

	var active *entities.PaymentSession
	for i := range list {
		s := list[i]
		if s.IsStalePending(now) {
			if err := u.sessions.ExpireIfPending(ctx, s.Reference); err != nil {
				return entities.PaymentSession{}, err
			}
			continue
		}
		if !s.IsActive(now) {
			continue
		}
		if active == nil || s.CreatedAt > active.CreatedAt {
			active = &s
		}
	}
	if active == nil {
		return entities.PaymentSession{}, ErrSessionNotFound
	}
	return *active, nil
}

// Clear unconditionally marks the session cleared so a new checkout can be
// created. Idempotent; invoked on every terminal executor path.
func (u *PaymentSessionUseCase) Clear(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrSessionNotFound
	}
	log.Printf("[session][usecase] clear session_id=%s", id)
	return u.sessions.ClearByID(ctx, id)
}
