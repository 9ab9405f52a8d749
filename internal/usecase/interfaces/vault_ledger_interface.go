package interfaces

import (
	"context"
	"errors"

	"bucketvault/internal/domain/entities"
)

var (
	ErrTxNotFound   = errors.New("transaction not found on chain")
	ErrTxPending    = errors.New("transaction is not yet confirmed on chain")
	ErrTxFailed     = errors.New("transaction reverted on chain")
	ErrNotSplitCall = errors.New("transaction is not a deposit-and-split call on the vault")
)

// IVaultLedger abstracts the on-chain vault contract: per-user bucket balances,
// the delegated-call capability probe, and lookup of user-submitted split
// transactions for manual completion verification.
type IVaultLedger interface {
	// Address returns the vault contract address, used in manual-completion
	// instructions.
	Address() string

	// SupportsDelegatedDeposits probes whether the vault exposes the
	// delegated deposit-and-split variant. Absence is not an error.
	SupportsDelegatedDeposits(ctx context.Context) (bool, error)

	// GetBucketBalances returns the wallet's per-bucket balances in token
	// base units.
	GetBucketBalances(ctx context.Context, walletAddress string) (entities.BucketCredits, error)

	// SplitCallByHash fetches and decodes a deposit-and-split transaction.
	SplitCallByHash(ctx context.Context, txHash string) (entities.SplitCall, error)
}
