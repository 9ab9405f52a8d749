package response

import (
	"bucketvault/internal/domain/entities"
	"bucketvault/pkg/timeutil"
)

// SessionResponse renders a payment session. Timestamps go out both as the
// canonical epoch and as RFC3339 for clients that want display strings.

type SessionResponse struct {
	ID            string  `json:"id"`
	WalletAddress string  `json:"wallet_address"`
	TokenSymbol   string  `json:"token_symbol"`
	FiatAmount    float64 `json:"fiat_amount"`
	CryptoAmount  int64   `json:"crypto_amount"`
	Reference     string  `json:"reference"`
	Status        string  `json:"status"`
	CreatedAt     int64   `json:"created_at"`
	ExpiresAt     int64   `json:"expires_at"`
	VerifiedAt    int64   `json:"verified_at,omitempty"`
	CreatedAtISO  string  `json:"created_at_iso"`
	ExpiresAtISO  string  `json:"expires_at_iso"`
}

func FromPaymentSession(s entities.PaymentSession) SessionResponse {
	return SessionResponse{
		ID:            s.ID,
		WalletAddress: s.WalletAddress,
		TokenSymbol:   string(s.TokenSymbol),
		FiatAmount:    s.FiatAmount,
		CryptoAmount:  s.CryptoAmount,
		Reference:     s.Reference,
		Status:        string(s.Status),
		CreatedAt:     s.CreatedAt,
		ExpiresAt:     s.ExpiresAt,
		VerifiedAt:    s.VerifiedAt,
		CreatedAtISO:  timeutil.ToRFC3339(s.CreatedAt),
		ExpiresAtISO:  timeutil.ToRFC3339(s.ExpiresAt),
	}
}
