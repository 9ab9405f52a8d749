package entities

// SessionStatus represents the payment session lifecycle.
//
// A session transitions once, irreversibly, from pending to verified or failed
// when the gateway outcome lands; to expired when the clock passes expires_at
// while still pending; and to cleared exactly once after the executor consumed
// it. Clearing is decoupled from the split outcome so a new session can always
// be created.

type SessionStatus string

const (
	SessionStatusPending  SessionStatus = "pending"
	SessionStatusVerified SessionStatus = "verified"
	SessionStatusFailed   SessionStatus = "failed"
	SessionStatusExpired  SessionStatus = "expired"
	SessionStatusCleared  SessionStatus = "cleared"
)

// TokenSymbol enumerates the stablecoins the vault accepts.
type TokenSymbol string

const (
	TokenUSDC TokenSymbol = "USDC"
	TokenUSDT TokenSymbol = "USDT"
	TokenDAI  TokenSymbol = "DAI"
)

func (t TokenSymbol) IsValid() bool {
	switch t {
	case TokenUSDC, TokenUSDT, TokenDAI:
		return true
	}
	return false
}

// PaymentSession tracks one fiat payment from checkout initiation through
// verification and consumption.
//
// Storage model (DynamoDB):
//   - PK: reference (gateway payment reference; verified at most once)
//   - GSI1 (id-index): id
//   - GSI2 (wallet_address-index): wallet_address
//
// Timestamps are canonical unix seconds, normalized on ingress regardless of
// the representation a collaborator used (pkg/timeutil).
//
// CryptoAmount is token base units, fixed from the gateway-reported value at
// verification time; client-submitted amounts are never trusted.

type PaymentSession struct {
	ID            string        `json:"id"`
	WalletAddress string        `json:"wallet_address"`
	TokenSymbol   TokenSymbol   `json:"token_symbol"`
	FiatAmount    float64       `json:"fiat_amount"`
	CryptoAmount  int64         `json:"crypto_amount"`
	Reference     string        `json:"reference"`
	Status        SessionStatus `json:"status"`
	FailReason    string        `json:"fail_reason,omitempty"`
	CreatedAt     int64         `json:"created_at"`
	ExpiresAt     int64         `json:"expires_at"`
	VerifiedAt    int64         `json:"verified_at,omitempty"`
}

// IsStalePending reports whether the session should be swept to expired.
func (s PaymentSession) IsStalePending(now int64) bool {
	return s.Status == SessionStatusPending && s.ExpiresAt <= now
}

// IsActive reports whether the session blocks creating a new one for the same
// wallet: anything not yet cleared and not past expiry.
func (s PaymentSession) IsActive(now int64) bool {
	if s.Status == SessionStatusCleared || s.Status == SessionStatusExpired {
		return false
	}
	if s.IsStalePending(now) {
		return false
	}
	return true
}
