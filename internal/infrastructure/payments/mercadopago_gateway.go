package payments

import (
	"context"
	"errors"
	"log"
	"os"
	"strconv"
	"strings"

	"bucketvault/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
	ErrBadGatewayReference             = errors.New("reference is not a mercado pago payment id")
)

// MercadoPagoGateway verifies payment references against Mercado Pago. The
// gateway is the authoritative source for the settled amount; it is treated as
// an opaque boundary returning a verified/failed outcome.

type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) Verify(ctx context.Context, reference string) (interfaces.GatewayVerification, error) {
	if g != nil && g.mockMode {
		amount := mockVerificationAmount()
		log.Printf("[payment][gateway] mock verify reference=%s amount=%.2f", reference, amount)
		return interfaces.GatewayVerification{
			Status:   interfaces.GatewayStatusSucceeded,
			Amount:   amount,
			Currency: "USD",
		}, nil
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return interfaces.GatewayVerification{}, ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(strings.TrimSpace(reference))
	if err != nil {
		log.Printf("[payment][gateway] bad reference reference=%q", reference)
		return interfaces.GatewayVerification{}, ErrBadGatewayReference
	}

	log.Printf("[payment][gateway] verify start reference=%s", reference)
	resp, err := g.client.Get(ctx, id)
	if err != nil {
		log.Printf("[payment][gateway] sdk get failed reference=%s err=%v", reference, err)
		return interfaces.GatewayVerification{}, err
	}

	v := interfaces.GatewayVerification{
		Status:   mapProviderStatus(resp.Status),
		Amount:   resp.TransactionAmount,
		Currency: resp.CurrencyID,
	}
	log.Printf("[payment][gateway] verify done reference=%s provider_status=%s status=%s amount=%.2f", reference, resp.Status, v.Status, v.Amount)
	return v, nil
}

func mapProviderStatus(providerStatus string) interfaces.GatewayStatus {
	switch strings.ToLower(providerStatus) {
	case "approved", "authorized":
		return interfaces.GatewayStatusSucceeded
	case "rejected", "cancelled", "refunded", "charged_back":
		return interfaces.GatewayStatusFailed
	}
	return interfaces.GatewayStatusPending
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func mockVerificationAmount() float64 {
	if v := strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK_AMOUNT")); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			return f
		}
	}
	return 100.0
}
