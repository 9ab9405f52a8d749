package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"bucketvault/internal/domain/entities"
	"bucketvault/internal/usecase/interfaces"
	"bucketvault/pkg/timeutil"
)

var ErrFaucetCooldown = errors.New("faucet cooldown has not elapsed")

// FaucetStatus is what the presentation layer renders: whether a claim is
// available and how many seconds remain otherwise.
type FaucetStatus struct {
	Available        bool  `json:"available"`
	RemainingSeconds int64 `json:"remaining_seconds"`
}

// IFaucetUseCase hands out test tokens with a per-wallet cooldown. The
// cooldown map is process-local; the relay treasury is the source of funds.

type IFaucetUseCase interface {
	Status(ctx context.Context, walletAddress string) (FaucetStatus, error)
	Claim(ctx context.Context, walletAddress string) (string, error)
}

type FaucetUseCase struct {
	relay           interfaces.IWalletRelay
	clock           timeutil.Clock
	token           entities.TokenSymbol
	amount          int64
	cooldownSeconds int64

	mu         sync.Mutex
	lastClaims map[string]int64
}

var _ IFaucetUseCase = (*FaucetUseCase)(nil)

func NewFaucetUseCase(relay interfaces.IWalletRelay, clock timeutil.Clock, token entities.TokenSymbol, amount, cooldownSeconds int64) *FaucetUseCase {
	if clock == nil {
		clock = timeutil.SystemClock()
	}
	return &FaucetUseCase{
		relay:           relay,
		clock:           clock,
		token:           token,
		amount:          amount,
		cooldownSeconds: cooldownSeconds,
		lastClaims:      make(map[string]int64),
	}
}

func (u *FaucetUseCase) Status(_ context.Context, walletAddress string) (FaucetStatus, error) {
	walletAddress = strings.TrimSpace(walletAddress)
	if walletAddress == "" {
		return FaucetStatus{}, ErrInvalidWallet
	}
	remaining := u.remaining(walletAddress, u.clock.Now())
	return FaucetStatus{Available: remaining == 0, RemainingSeconds: remaining}, nil
}

func (u *FaucetUseCase) Claim(ctx context.Context, walletAddress string) (string, error) {
	walletAddress = strings.TrimSpace(walletAddress)
	if walletAddress == "" {
		return "", ErrInvalidWallet
	}

	now := u.clock.Now()
	u.mu.Lock()
	if remaining := u.remainingLocked(walletAddress, now); remaining > 0 {
		u.mu.Unlock()
		log.Printf("[faucet][usecase] claim blocked wallet=%s remaining=%d", walletAddress, remaining)
		return "", ErrFaucetCooldown
	}
	u.lastClaims[walletAddress] = now
	u.mu.Unlock()

	txHash, err := u.relay.Transfer(ctx, walletAddress, u.token, u.amount)
	if err != nil {
		// Give the cooldown back: nothing was delivered.
		u.mu.Lock()
		delete(u.lastClaims, walletAddress)
		u.mu.Unlock()
		log.Printf("[faucet][usecase] claim transfer failed wallet=%s err=%v", walletAddress, err)
		return "", err
	}
	log.Printf("[faucet][usecase] claim success wallet=%s amount=%d tx=%s", walletAddress, u.amount, txHash)
	return txHash, nil
}

func (u *FaucetUseCase) remaining(wallet string, now int64) int64 {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.remainingLocked(wallet, now)
}

func (u *FaucetUseCase) remainingLocked(wallet string, now int64) int64 {
	last, ok := u.lastClaims[wallet]
	if !ok {
		return 0
	}
	elapsed := now - last
	if elapsed >= u.cooldownSeconds {
		return 0
	}
	return u.cooldownSeconds - elapsed
}
