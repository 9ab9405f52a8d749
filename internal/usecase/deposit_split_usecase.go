package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"bucketvault/internal/domain/allocation"
	"bucketvault/internal/domain/entities"
	"bucketvault/internal/usecase/interfaces"
	"bucketvault/pkg/timeutil"

	"github.com/google/uuid"
)

var (
	ErrSessionNotVerified    = errors.New("session is not verified")
	ErrVerificationExpired   = errors.New("session expired before verification was consumed")
	ErrAttemptNotFound       = errors.New("deposit attempt not found")
	ErrAttemptNotManual      = errors.New("attempt is not awaiting manual completion")
	ErrMismatchedAmounts     = errors.New("on-chain effect does not match precomputed bucket credits")
	ErrAttemptTransitionRace = errors.New("attempt was transitioned by a concurrent caller")
)

// IDepositSplitUseCase orchestrates the deposit-split execution: consume a
// verified session exactly once, try the gasless relay path, fall back to a
// raw transfer plus manual-completion instructions.

type IDepositSplitUseCase interface {
	Execute(ctx context.Context, reference string) (entities.DepositSplitAttempt, error)
	CompleteManually(ctx context.Context, attemptID, txHash string) (entities.DepositSplitAttempt, error)
	BucketBalances(ctx context.Context, walletAddress string) (entities.BucketCredits, error)
}

type DepositSplitUseCase struct {
	sessions interfaces.ISessionRepository
	attempts interfaces.IDepositAttemptRepository
	relay    interfaces.IWalletRelay
	vault    interfaces.IVaultLedger
	config   *AllocationConfig
	clock    timeutil.Clock
}

var _ IDepositSplitUseCase = (*DepositSplitUseCase)(nil)

func NewDepositSplitUseCase(sessions interfaces.ISessionRepository, attempts interfaces.IDepositAttemptRepository, relay interfaces.IWalletRelay, vault interfaces.IVaultLedger, config *AllocationConfig, clock timeutil.Clock) *DepositSplitUseCase {
	if clock == nil {
		clock = timeutil.SystemClock()
	}
	return &DepositSplitUseCase{
		sessions: sessions,
		attempts: attempts,
		relay:    relay,
		vault:    vault,
		config:   config,
		clock:    clock,
	}
}

// Execute consumes a verified session. Idempotent: while an attempt exists for
// the session, repeated calls return it unchanged instead of re-moving funds.
// The session is cleared on every terminal path, decoupled from the split
// outcome.
func (u *DepositSplitUseCase) Execute(ctx context.Context, reference string) (entities.DepositSplitAttempt, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return entities.DepositSplitAttempt{}, ErrInvalidReference
	}
	log.Printf("[deposit][usecase] execute start reference=%s", reference)

	s, err := u.sessions.GetByReference(ctx, reference)
	if err != nil {
		return entities.DepositSplitAttempt{}, err
	}
	if s.Reference == "" {
		return entities.DepositSplitAttempt{}, ErrSessionNotFound
	}

	now := u.clock.Now()
	if s.IsStalePending(now) {
		if err := u.sessions.ExpireIfPending(ctx, reference); err != nil {
			return entities.DepositSplitAttempt{}, err
		}
		log.Printf("[deposit][usecase] execute expired reference=%s", reference)
		return entities.DepositSplitAttempt{}, ErrVerificationExpired
	}
	if s.Status == entities.SessionStatusExpired {
		return entities.DepositSplitAttempt{}, ErrVerificationExpired
	}
	if s.Status != entities.SessionStatusVerified {
		// Cleared sessions may still own an attempt from the run that
		// consumed them; return it so retries stay idempotent.
		if s.Status == entities.SessionStatusCleared {
			if existing, err := u.attempts.GetBySessionID(ctx, s.ID); err == nil && existing.ID != "" {
				return existing, nil
			}
		}
		log.Printf("[deposit][usecase] execute rejected reference=%s status=%s", reference, s.Status)
		return entities.DepositSplitAttempt{}, ErrSessionNotVerified
	}

	if existing, err := u.attempts.GetBySessionID(ctx, s.ID); err != nil {
		return entities.DepositSplitAttempt{}, err
	} else if existing.ID != "" {
		log.Printf("[deposit][usecase] execute idempotent-hit reference=%s attempt_id=%s status=%s", reference, existing.ID, existing.Status)
		// The session is still verified here, so the creating invocation's
		// clear never landed. ClearByID is idempotent; retry it.
		u.clearSession(ctx, s.ID)
		return existing, nil
	}

	// Snapshot weights and compute credits exactly once. The configuration
	// may change while funds are in flight; this attempt's credits must not.
	weights := u.config.Snapshot()
	credits, err := allocation.Split(s.CryptoAmount, weights)
	if err != nil {
		return entities.DepositSplitAttempt{}, err
	}

	attempt := entities.DepositSplitAttempt{
		ID:            uuid.NewString(),
		SessionID:     s.ID,
		Reference:     s.Reference,
		WalletAddress: s.WalletAddress,
		TokenSymbol:   s.TokenSymbol,
		Amount:        s.CryptoAmount,
		Mode:          entities.AttemptModeGasless,
		Status:        entities.AttemptStatusPending,
		BucketCredits: credits,
		Weights:       weights,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := u.attempts.Create(ctx, attempt)
	if err != nil {
		if errors.Is(err, interfaces.ErrAttemptExists) {
			existing, gerr := u.attempts.GetBySessionID(ctx, s.ID)
			if gerr != nil {
				return entities.DepositSplitAttempt{}, gerr
			}
			log.Printf("[deposit][usecase] execute lost-create-race reference=%s attempt_id=%s", reference, existing.ID)
			u.clearSession(ctx, s.ID)
			return existing, nil
		}
		return entities.DepositSplitAttempt{}, err
	}

	// From here the session is consumed: clear it whatever the split
	// outcome, so a fresh checkout is never blocked by a stale session.
	defer u.clearSession(ctx, s.ID)

	return u.runSplit(ctx, created)
}

func (u *DepositSplitUseCase) clearSession(ctx context.Context, id string) {
	if err := u.sessions.ClearByID(ctx, id); err != nil {
		log.Printf("[deposit][usecase] clear failed session_id=%s err=%v", id, err)
	}
}

// runSplit drives pending -> auto_succeeded | manual_required | failed.
func (u *DepositSplitUseCase) runSplit(ctx context.Context, a entities.DepositSplitAttempt) (entities.DepositSplitAttempt, error) {
	supported, err := u.vault.SupportsDelegatedDeposits(ctx)
	switch {
	case err != nil:
		log.Printf("[deposit][usecase] capability probe failed attempt_id=%s err=%v", a.ID, err)
		return u.fallbackToManual(ctx, a, entities.ReasonRelayUnavailable)
	case !supported:
		log.Printf("[deposit][usecase] delegated deposits unsupported attempt_id=%s", a.ID)
		return u.fallbackToManual(ctx, a, entities.ReasonVaultUnsupported)
	}

	result, err := u.relay.SubmitDelegated(ctx, a.WalletAddress, "depositAndSplitFor", a.Amount, a.Weights)
	if err != nil {
		log.Printf("[deposit][usecase] relay unreachable attempt_id=%s err=%v", a.ID, err)
		return u.fallbackToManual(ctx, a, entities.ReasonRelayUnavailable)
	}
	if !result.Accepted {
		log.Printf("[deposit][usecase] relay rejected attempt_id=%s reason=%s", a.ID, result.RejectReason)
		return u.fallbackToManual(ctx, a, entities.ReasonVaultUnsupported)
	}

	a.Mode = entities.AttemptModeGasless
	a.Status = entities.AttemptStatusAutoSucceeded
	a.TxHash = result.TxHash
	a.UpdatedAt = u.clock.Now()
	saved, err := u.attempts.Save(ctx, a)
	if err != nil {
		return entities.DepositSplitAttempt{}, err
	}
	log.Printf("[deposit][usecase] auto split succeeded attempt_id=%s tx=%s", a.ID, result.TxHash)
	return saved, nil
}

// fallbackToManual is the floor guarantee: once verification is final the raw
// token amount lands in the user's own wallet even when splitting cannot be
// automated. The attempt then carries typed instructions for the call the user
// must submit.
func (u *DepositSplitUseCase) fallbackToManual(ctx context.Context, a entities.DepositSplitAttempt, trigger entities.FailureReason) (entities.DepositSplitAttempt, error) {
	txHash, err := u.relay.Transfer(ctx, a.WalletAddress, a.TokenSymbol, a.Amount)
	if err != nil {
		reason := entities.ReasonRelayUnavailable
		if errors.Is(err, interfaces.ErrInsufficientFunds) {
			reason = entities.ReasonInsufficientFunds
		}
		log.Printf("[deposit][usecase] raw transfer failed attempt_id=%s reason=%s err=%v", a.ID, reason, err)
		a.Status = entities.AttemptStatusFailed
		a.FailureReason = reason
		a.UpdatedAt = u.clock.Now()
		return u.attempts.Save(ctx, a)
	}

	a.Mode = entities.AttemptModeManual
	a.Status = entities.AttemptStatusManualRequired
	a.FailureReason = trigger
	a.TxHash = txHash
	a.UpdatedAt = u.clock.Now()
	a.Manual = &entities.ManualInstructions{
		ContractAddress:  u.vault.Address(),
		Method:           "depositAndSplit",
		Amount:           a.Amount,
		Weights:          a.Weights.Ordered(),
		ExpectedBalances: a.BucketCredits,
	}

	saved, err := u.attempts.Save(ctx, a)
	if err != nil {
		return entities.DepositSplitAttempt{}, err
	}
	log.Printf("[deposit][usecase] manual fallback attempt_id=%s trigger=%s transfer_tx=%s", a.ID, trigger, txHash)
	return saved, nil
}

// CompleteManually verifies the user-submitted split transaction against the
// cached bucket credits before marking the attempt manual_completed. A
// mismatch is a fund-safety failure: surfaced, never silently retried, and the
// attempt stays manual_required (still actionable).
func (u *DepositSplitUseCase) CompleteManually(ctx context.Context, attemptID, txHash string) (entities.DepositSplitAttempt, error) {
	attemptID = strings.TrimSpace(attemptID)
	txHash = strings.TrimSpace(txHash)
	log.Printf("[deposit][usecase] complete-manually start attempt_id=%s tx=%s", attemptID, txHash)

	a, err := u.attempts.GetByID(ctx, attemptID)
	if err != nil {
		return entities.DepositSplitAttempt{}, err
	}
	if a.ID == "" {
		return entities.DepositSplitAttempt{}, ErrAttemptNotFound
	}
	if a.Status == entities.AttemptStatusManualCompleted {
		return a, nil
	}
	if a.Status != entities.AttemptStatusManualRequired {
		return entities.DepositSplitAttempt{}, ErrAttemptNotManual
	}

	call, err := u.vault.SplitCallByHash(ctx, txHash)
	if err != nil {
		log.Printf("[deposit][usecase] split tx lookup failed attempt_id=%s tx=%s err=%v", attemptID, txHash, err)
		return entities.DepositSplitAttempt{}, err
	}
	if !call.Confirmed {
		return entities.DepositSplitAttempt{}, interfaces.ErrTxPending
	}
	// A split submitted by another wallet credits that wallet's buckets, not
	// the attempt owner's: the expected balances were never produced.
	if !strings.EqualFold(call.Sender, a.WalletAddress) {
		log.Printf("[deposit][usecase] sender mismatch attempt_id=%s tx=%s sender=%s", attemptID, txHash, call.Sender)
		return entities.DepositSplitAttempt{}, ErrMismatchedAmounts
	}

	onChainCredits, err := allocation.Split(call.Amount, call.Weights)
	if err != nil {
		return entities.DepositSplitAttempt{}, ErrMismatchedAmounts
	}
	if call.Amount != a.Amount || !onChainCredits.Equal(a.BucketCredits) {
		log.Printf("[deposit][usecase] mismatched amounts attempt_id=%s tx=%s expected=%d got=%d", attemptID, txHash, a.Amount, call.Amount)
		return entities.DepositSplitAttempt{}, ErrMismatchedAmounts
	}

	completed, err := u.attempts.TransitionStatus(ctx, a.ID, entities.AttemptStatusManualRequired, entities.AttemptStatusManualCompleted, txHash, u.clock.Now())
	if err != nil {
		if errors.Is(err, interfaces.ErrNotInStatus) {
			return entities.DepositSplitAttempt{}, ErrAttemptTransitionRace
		}
		return entities.DepositSplitAttempt{}, err
	}
	log.Printf("[deposit][usecase] complete-manually success attempt_id=%s tx=%s", attemptID, txHash)
	return completed, nil
}

// BucketBalances reads the wallet's on-chain bucket balances.
func (u *DepositSplitUseCase) BucketBalances(ctx context.Context, walletAddress string) (entities.BucketCredits, error) {
	walletAddress = strings.TrimSpace(walletAddress)
	if walletAddress == "" {
		return nil, ErrInvalidWallet
	}
	return u.vault.GetBucketBalances(ctx, walletAddress)
}
