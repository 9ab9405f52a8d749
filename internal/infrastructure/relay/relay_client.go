// Package relay is the HTTP client for the managed wallet service: delegated
// (gasless) submissions in a user's context and treasury transfers.
package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"bucketvault/internal/domain/entities"
	"bucketvault/internal/usecase/interfaces"
)

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

var _ interfaces.IWalletRelay = (*Client)(nil)

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

type delegatedRequest struct {
	WalletAddress string `json:"wallet_address"`
	Operation     string `json:"operation"`
	Amount        int64  `json:"amount"`
	Weights       []int  `json:"weights"`
}

type delegatedResponse struct {
	Accepted     bool   `json:"accepted"`
	TxHash       string `json:"tx_hash"`
	RejectReason string `json:"reject_reason"`
}

// SubmitDelegated asks the relay to invoke the vault operation in the user's
// context. A rejection comes back in the body, not as an error; transport
// failures are errors and trigger the caller's fallback.
func (c *Client) SubmitDelegated(ctx context.Context, walletAddress, operation string, amount int64, weights entities.BucketWeights) (interfaces.RelayResult, error) {
	body := delegatedRequest{
		WalletAddress: walletAddress,
		Operation:     operation,
		Amount:        amount,
		Weights:       weights.Ordered(),
	}

	var resp delegatedResponse
	if err := c.post(ctx, "/v1/transactions/delegated", body, &resp); err != nil {
		return interfaces.RelayResult{}, err
	}
	log.Printf("[relay][client] delegated wallet=%s op=%s accepted=%t reason=%s", walletAddress, operation, resp.Accepted, resp.RejectReason)
	return interfaces.RelayResult{
		Accepted:     resp.Accepted,
		TxHash:       resp.TxHash,
		RejectReason: resp.RejectReason,
	}, nil
}

type transferRequest struct {
	ToAddress string `json:"to_address"`
	Token     string `json:"token"`
	Amount    int64  `json:"amount"`
}

type transferResponse struct {
	TxHash       string `json:"tx_hash"`
	RejectReason string `json:"reject_reason"`
}

// Transfer moves raw tokens from the treasury to a wallet.
func (c *Client) Transfer(ctx context.Context, toAddress string, token entities.TokenSymbol, amount int64) (string, error) {
	body := transferRequest{ToAddress: toAddress, Token: string(token), Amount: amount}

	var resp transferResponse
	if err := c.post(ctx, "/v1/transactions/transfer", body, &resp); err != nil {
		return "", err
	}
	if resp.TxHash == "" {
		if strings.Contains(strings.ToLower(resp.RejectReason), "insufficient") {
			return "", interfaces.ErrInsufficientFunds
		}
		return "", fmt.Errorf("relay rejected transfer: %s", resp.RejectReason)
	}
	log.Printf("[relay][client] transfer to=%s token=%s amount=%d tx=%s", toAddress, token, amount, resp.TxHash)
	return resp.TxHash, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("relay unreachable: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("relay returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	return json.Unmarshal(raw, out)
}

// MockRelay is the RELAY_MOCK implementation for local runs: every delegated
// submission is rejected as unsupported and every transfer succeeds, which
// drives the manual-fallback path end to end without external services.
type MockRelay struct{}

var _ interfaces.IWalletRelay = (*MockRelay)(nil)

func NewMockRelay() *MockRelay { return &MockRelay{} }

func (MockRelay) SubmitDelegated(_ context.Context, walletAddress, operation string, _ int64, _ entities.BucketWeights) (interfaces.RelayResult, error) {
	if isMockDelegatedAccepted() {
		return interfaces.RelayResult{Accepted: true, TxHash: mockTxHash("delegated", walletAddress)}, nil
	}
	return interfaces.RelayResult{Accepted: false, RejectReason: "delegated calls unsupported"}, nil
}

func (MockRelay) Transfer(_ context.Context, toAddress string, _ entities.TokenSymbol, _ int64) (string, error) {
	return mockTxHash("transfer", toAddress), nil
}

func isMockDelegatedAccepted() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("RELAY_MOCK_DELEGATED"))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

func mockTxHash(kind, wallet string) string {
	return fmt.Sprintf("0xmock_%s_%s_%d", kind, wallet, time.Now().UTC().UnixNano())
}
