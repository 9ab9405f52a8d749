package request

// CheckoutRequest initiates a payment session for a gateway checkout.
//
// `reference` is the gateway's transaction reference; the fiat amount here is
// informational only; the settled amount always comes from the gateway at
// verification time.

type CheckoutRequest struct {
	WalletAddress string  `json:"wallet_address" binding:"required"`
	TokenSymbol   string  `json:"token_symbol" binding:"required"`
	FiatAmount    float64 `json:"fiat_amount" binding:"required,gt=0"`
	Reference     string  `json:"reference" binding:"required"`
	TTLSeconds    int64   `json:"ttl_seconds"`
}

const defaultSessionTTLSeconds = 1800

// ResolveTTL applies the default checkout window when the caller omitted one.
func (r CheckoutRequest) ResolveTTL() int64 {
	if r.TTLSeconds > 0 {
		return r.TTLSeconds
	}
	return defaultSessionTTLSeconds
}
