package interfaces

import (
	"context"
	"errors"

	"bucketvault/internal/domain/entities"
)

// ErrInsufficientFunds is surfaced by relay implementations when the treasury
// cannot cover a transfer. Fund-safety failures are never silently retried.
var ErrInsufficientFunds = errors.New("insufficient treasury funds")

// RelayResult is the relay's answer to a delegated submission. A rejection is
// not a transport error: it is a recognized fallback trigger carrying the
// reason.
type RelayResult struct {
	Accepted     bool
	TxHash       string
	RejectReason string
}

// IWalletRelay abstracts the managed wallet service able to submit
// transactions on a user's behalf (gasless path) and to move treasury funds
// (raw-transfer fallback, faucet).
type IWalletRelay interface {
	// SubmitDelegated asks the relay to invoke a vault operation in the
	// user's context. An error means the relay was unreachable or timed out.
	SubmitDelegated(ctx context.Context, walletAddress, operation string, amount int64, weights entities.BucketWeights) (RelayResult, error)

	// Transfer moves raw tokens from the treasury to a wallet and returns
	// the transaction hash.
	Transfer(ctx context.Context, toAddress string, token entities.TokenSymbol, amount int64) (string, error)
}
