package entities

// AttemptMode distinguishes how the split reaches the chain. Modeled as a
// tagged variant rather than a boolean so further delivery modes can be added
// without re-threading conditionals.

type AttemptMode string

const (
	AttemptModeGasless AttemptMode = "gasless"
	AttemptModeManual  AttemptMode = "manual"
)

// AttemptStatus is the deposit-split state machine:
//
//	pending -> auto_succeeded          relay accepted and confirmed
//	pending -> manual_required         gasless path unavailable, raw funds sent
//	manual_required -> manual_completed  user-submitted split verified on-chain
//	pending|manual_required -> failed  unrecoverable error

type AttemptStatus string

const (
	AttemptStatusPending         AttemptStatus = "pending"
	AttemptStatusAutoSucceeded   AttemptStatus = "auto_succeeded"
	AttemptStatusManualRequired  AttemptStatus = "manual_required"
	AttemptStatusManualCompleted AttemptStatus = "manual_completed"
	AttemptStatusFailed          AttemptStatus = "failed"
)

// FailureReason is the machine-readable cause carried by every terminal failed
// state so callers can present differentiated guidance.
type FailureReason string

const (
	ReasonRelayUnavailable    FailureReason = "RelayUnavailable"
	ReasonVaultUnsupported    FailureReason = "VaultUnsupported"
	ReasonInsufficientFunds   FailureReason = "InsufficientFunds"
	ReasonVerificationExpired FailureReason = "VerificationExpired"
	ReasonMismatchedAmounts   FailureReason = "MismatchedAmounts"
)

// ManualInstructions describes the on-chain call the user must submit to
// complete the split after raw funds already landed in their wallet. Typed, not
// freeform text, so the presentation layer can render it.
type ManualInstructions struct {
	ContractAddress  string        `json:"contract_address"`
	Method           string        `json:"method"`
	Amount           int64         `json:"amount"`
	Weights          []int         `json:"weights"`
	ExpectedBalances BucketCredits `json:"expected_balances"`
}

// DepositSplitAttempt is the executor's record for one verified session.
//
// Storage model (DynamoDB):
//   - PK: session_id (1:1 with the session; conditional create makes Execute
//     idempotent under races)
//   - GSI1 (id-index): id
//
// BucketCredits and Weights are computed once from a snapshot of the shared
// configuration and never recomputed after funds move.

type DepositSplitAttempt struct {
	ID            string              `json:"id"`
	SessionID     string              `json:"session_id"`
	Reference     string              `json:"reference"`
	WalletAddress string              `json:"wallet_address"`
	TokenSymbol   TokenSymbol         `json:"token_symbol"`
	Amount        int64               `json:"amount"`
	Mode          AttemptMode         `json:"mode"`
	Status        AttemptStatus       `json:"status"`
	BucketCredits BucketCredits       `json:"bucket_credits"`
	Weights       BucketWeights       `json:"weights"`
	FailureReason FailureReason       `json:"failure_reason,omitempty"`
	TxHash        string              `json:"tx_hash,omitempty"`
	Manual        *ManualInstructions `json:"manual,omitempty"`
	CreatedAt     int64               `json:"created_at"`
	UpdatedAt     int64               `json:"updated_at"`
}

// SplitCall is a decoded on-chain deposit-and-split invocation, used to verify
// a user-submitted manual completion against the cached credits.
type SplitCall struct {
	Sender    string
	Amount    int64
	Weights   BucketWeights
	Confirmed bool
}
