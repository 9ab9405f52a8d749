package interfaces

import "context"

// GatewayStatus is the gateway's verification outcome for a reference.
type GatewayStatus string

const (
	GatewayStatusSucceeded GatewayStatus = "succeeded"
	GatewayStatusFailed    GatewayStatus = "failed"
	GatewayStatusPending   GatewayStatus = "pending"
)

// GatewayVerification is the authoritative result of a verification lookup.
// Amount is the gateway-settled value; client-submitted amounts are never
// trusted over it.
type GatewayVerification struct {
	Status   GatewayStatus
	Amount   float64
	Currency string
}

// IPaymentGateway abstracts the external fiat payment provider (e.g. Mercado
// Pago). The gateway's own fraud/verification logic is an opaque boundary; we
// only consume the outcome.
type IPaymentGateway interface {
	Verify(ctx context.Context, reference string) (GatewayVerification, error)
}
