package chain

import (
	"context"
	"os"
	"strings"
	"sync"

	"bucketvault/internal/domain/entities"
	"bucketvault/internal/usecase/interfaces"
)

// MockVaultLedger stands in when no XCB_RPC_URL is configured, mirroring the
// payment gateway's env-toggled mock mode. Delegated support defaults to off
// so local runs exercise the manual fallback path.

type MockVaultLedger struct {
	mu       sync.Mutex
	balances map[string]entities.BucketCredits
}

var _ interfaces.IVaultLedger = (*MockVaultLedger)(nil)

func NewMockVaultLedger() *MockVaultLedger {
	return &MockVaultLedger{balances: make(map[string]entities.BucketCredits)}
}

func (m *MockVaultLedger) Address() string {
	return "cb000000000000000000000000000000000000000000"
}

func (m *MockVaultLedger) SupportsDelegatedDeposits(_ context.Context) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("CHAIN_MOCK_DELEGATED"))) {
	case "1", "true", "yes", "on":
		return true, nil
	}
	return false, nil
}

func (m *MockVaultLedger) GetBucketBalances(_ context.Context, walletAddress string) (entities.BucketCredits, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if b, ok := m.balances[walletAddress]; ok {
		return b, nil
	}
	empty := make(entities.BucketCredits, len(entities.AllBuckets))
	for _, b := range entities.AllBuckets {
		empty[b] = 0
	}
	return empty, nil
}

func (m *MockVaultLedger) SplitCallByHash(_ context.Context, _ string) (entities.SplitCall, error) {
	return entities.SplitCall{}, interfaces.ErrTxNotFound
}
