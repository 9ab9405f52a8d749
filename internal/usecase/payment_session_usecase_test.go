package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"bucketvault/internal/adapter/persistence/repository"
	"bucketvault/internal/domain/entities"
	"bucketvault/internal/usecase/interfaces"
	mock_interfaces "bucketvault/internal/usecase/interfaces/mocks"
	"bucketvault/pkg/timeutil"

	"go.uber.org/mock/gomock"
)

const testNow int64 = 1_700_000_000

func TestPaymentSessionUseCase_CreateCheckout_Validations(t *testing.T) {
	clock := &timeutil.FixedClock{Unix: testNow}

	cases := []struct {
		name      string
		wallet    string
		token     entities.TokenSymbol
		fiat      float64
		reference string
		ttl       int64
		want      error
	}{
		{name: "empty wallet", wallet: " ", token: entities.TokenUSDC, fiat: 10, reference: "ref-1", ttl: 600, want: ErrInvalidWallet},
		{name: "unsupported token", wallet: "cb57...", token: "DOGE", fiat: 10, reference: "ref-1", ttl: 600, want: ErrInvalidToken},
		{name: "zero fiat", wallet: "cb57...", token: entities.TokenUSDC, fiat: 0, reference: "ref-1", ttl: 600, want: ErrInvalidFiatAmount},
		{name: "negative fiat", wallet: "cb57...", token: entities.TokenUSDC, fiat: -5, reference: "ref-1", ttl: 600, want: ErrInvalidFiatAmount},
		{name: "empty reference", wallet: "cb57...", token: entities.TokenUSDC, fiat: 10, reference: "  ", ttl: 600, want: ErrInvalidReference},
		{name: "zero ttl", wallet: "cb57...", token: entities.TokenUSDC, fiat: 10, reference: "ref-1", ttl: 0, want: ErrInvalidTTL},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewPaymentSessionUseCase(nil, nil, clock)
			_, err := uc.CreateCheckout(context.Background(), tc.wallet, tc.token, tc.fiat, tc.reference, tc.ttl)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestPaymentSessionUseCase_CreateCheckout(t *testing.T) {
	clock := &timeutil.FixedClock{Unix: testNow}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISessionRepository(ctrl)
		uc := NewPaymentSessionUseCase(repo, nil, clock)

		repo.EXPECT().ListByWallet(gomock.Any(), "cb57-wallet").Return(nil, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.PaymentSession{})).DoAndReturn(
			func(_ context.Context, s entities.PaymentSession) (entities.PaymentSession, error) {
				if s.ID == "" {
					t.Fatalf("id must be assigned")
				}
				if s.Status != entities.SessionStatusPending {
					t.Fatalf("expected pending, got %s", s.Status)
				}
				if s.CreatedAt != testNow || s.ExpiresAt != testNow+600 {
					t.Fatalf("unexpected timestamps: created=%d expires=%d", s.CreatedAt, s.ExpiresAt)
				}
				return s, nil
			},
		)

		s, err := uc.CreateCheckout(context.Background(), " cb57-wallet ", entities.TokenUSDC, 150.50, " ref-1 ", 600)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.WalletAddress != "cb57-wallet" || s.Reference != "ref-1" {
			t.Fatalf("expected trimmed fields, got %+v", s)
		}
	})

	t.Run("active session blocks", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISessionRepository(ctrl)
		uc := NewPaymentSessionUseCase(repo, nil, clock)

		repo.EXPECT().ListByWallet(gomock.Any(), "cb57-wallet").Return([]entities.PaymentSession{
			{ID: "s1", Reference: "ref-0", Status: entities.SessionStatusPending, CreatedAt: testNow - 10, ExpiresAt: testNow + 100},
		}, nil)

		_, err := uc.CreateCheckout(context.Background(), "cb57-wallet", entities.TokenUSDC, 10, "ref-1", 600)
		if !errors.Is(err, ErrActiveSessionExists) {
			t.Fatalf("expected ErrActiveSessionExists, got %v", err)
		}
	})

	t.Run("stale pending is swept, not blocking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISessionRepository(ctrl)
		uc := NewPaymentSessionUseCase(repo, nil, clock)

		repo.EXPECT().ListByWallet(gomock.Any(), "cb57-wallet").Return([]entities.PaymentSession{
			{ID: "s1", Reference: "ref-0", Status: entities.SessionStatusPending, CreatedAt: testNow - 900, ExpiresAt: testNow - 300},
		}, nil)
		repo.EXPECT().ExpireIfPending(gomock.Any(), "ref-0").Return(nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.PaymentSession) (entities.PaymentSession, error) { return s, nil },
		)

		_, err := uc.CreateCheckout(context.Background(), "cb57-wallet", entities.TokenUSDC, 10, "ref-1", 600)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("duplicate reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISessionRepository(ctrl)
		uc := NewPaymentSessionUseCase(repo, nil, clock)

		repo.EXPECT().ListByWallet(gomock.Any(), "cb57-wallet").Return(nil, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.PaymentSession{}, interfaces.ErrReferenceTaken)

		_, err := uc.CreateCheckout(context.Background(), "cb57-wallet", entities.TokenUSDC, 10, "ref-1", 600)
		if !errors.Is(err, ErrDuplicateReference) {
			t.Fatalf("expected ErrDuplicateReference, got %v", err)
		}
	})
}

func TestPaymentSessionUseCase_VerifyPayment(t *testing.T) {
	clock := &timeutil.FixedClock{Unix: testNow}

	pending := entities.PaymentSession{
		ID:            "s1",
		WalletAddress: "cb57-wallet",
		TokenSymbol:   entities.TokenUSDC,
		FiatAmount:    150,
		Reference:     "ref-1",
		Status:        entities.SessionStatusPending,
		CreatedAt:     testNow - 60,
		ExpiresAt:     testNow + 540,
	}

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISessionRepository(ctrl)
		uc := NewPaymentSessionUseCase(repo, nil, clock)

		repo.EXPECT().GetByReference(gomock.Any(), "ref-x").Return(entities.PaymentSession{}, nil)

		_, err := uc.VerifyPayment(context.Background(), "ref-x")
		if !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("stale pending expires lazily", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISessionRepository(ctrl)
		uc := NewPaymentSessionUseCase(repo, nil, clock)

		stale := pending
		stale.ExpiresAt = testNow - 1
		repo.EXPECT().GetByReference(gomock.Any(), "ref-1").Return(stale, nil)
		repo.EXPECT().ExpireIfPending(gomock.Any(), "ref-1").Return(nil)

		_, err := uc.VerifyPayment(context.Background(), "ref-1")
		if !errors.Is(err, ErrSessionExpired) {
			t.Fatalf("expected ErrSessionExpired, got %v", err)
		}
	})

	t.Run("already resolved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISessionRepository(ctrl)
		uc := NewPaymentSessionUseCase(repo, nil, clock)

		verified := pending
		verified.Status = entities.SessionStatusVerified
		repo.EXPECT().GetByReference(gomock.Any(), "ref-1").Return(verified, nil)

		_, err := uc.VerifyPayment(context.Background(), "ref-1")
		if !errors.Is(err, ErrAlreadyResolved) {
			t.Fatalf("expected ErrAlreadyResolved, got %v", err)
		}
	})

	t.Run("gateway succeeded fixes crypto amount from gateway value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISessionRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentSessionUseCase(repo, gateway, clock)

		repo.EXPECT().GetByReference(gomock.Any(), "ref-1").Return(pending, nil)
		gateway.EXPECT().Verify(gomock.Any(), "ref-1").Return(interfaces.GatewayVerification{
			Status:   interfaces.GatewayStatusSucceeded,
			Amount:   150.25,
			Currency: "USD",
		}, nil)
		repo.EXPECT().ResolveIfPending(gomock.Any(), "ref-1", entities.SessionStatusVerified, int64(150_250000), testNow, "").DoAndReturn(
			func(_ context.Context, _ string, status entities.SessionStatus, amount, at int64, _ string) (entities.PaymentSession, error) {
				s := pending
				s.Status = status
				s.CryptoAmount = amount
				s.VerifiedAt = at
				return s, nil
			},
		)

		s, err := uc.VerifyPayment(context.Background(), "ref-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Status != entities.SessionStatusVerified || s.CryptoAmount != 150_250000 {
			t.Fatalf("unexpected session: %+v", s)
		}
	})

	t.Run("gateway failed resolves with reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISessionRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentSessionUseCase(repo, gateway, clock)

		repo.EXPECT().GetByReference(gomock.Any(), "ref-1").Return(pending, nil)
		gateway.EXPECT().Verify(gomock.Any(), "ref-1").Return(interfaces.GatewayVerification{Status: interfaces.GatewayStatusFailed}, nil)
		repo.EXPECT().ResolveIfPending(gomock.Any(), "ref-1", entities.SessionStatusFailed, int64(0), testNow, "gateway reported failure").DoAndReturn(
			func(_ context.Context, _ string, status entities.SessionStatus, _, _ int64, reason string) (entities.PaymentSession, error) {
				s := pending
				s.Status = status
				s.FailReason = reason
				return s, nil
			},
		)

		s, err := uc.VerifyPayment(context.Background(), "ref-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Status != entities.SessionStatusFailed {
			t.Fatalf("expected failed, got %s", s.Status)
		}
	})

	t.Run("gateway pending leaves session untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISessionRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentSessionUseCase(repo, gateway, clock)

		repo.EXPECT().GetByReference(gomock.Any(), "ref-1").Return(pending, nil)
		gateway.EXPECT().Verify(gomock.Any(), "ref-1").Return(interfaces.GatewayVerification{Status: interfaces.GatewayStatusPending}, nil)

		s, err := uc.VerifyPayment(context.Background(), "ref-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Status != entities.SessionStatusPending {
			t.Fatalf("expected pending, got %s", s.Status)
		}
	})

	t.Run("lost resolution race maps to already resolved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISessionRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentSessionUseCase(repo, gateway, clock)

		repo.EXPECT().GetByReference(gomock.Any(), "ref-1").Return(pending, nil)
		gateway.EXPECT().Verify(gomock.Any(), "ref-1").Return(interfaces.GatewayVerification{Status: interfaces.GatewayStatusSucceeded, Amount: 150}, nil)
		repo.EXPECT().ResolveIfPending(gomock.Any(), "ref-1", entities.SessionStatusVerified, gomock.Any(), testNow, "").Return(entities.PaymentSession{}, interfaces.ErrNotPending)

		_, err := uc.VerifyPayment(context.Background(), "ref-1")
		if !errors.Is(err, ErrAlreadyResolved) {
			t.Fatalf("expected ErrAlreadyResolved, got %v", err)
		}
	})
}

// Concurrent verifications against the same reference must resolve exactly
// once. The in-memory repository implements the same compare-and-set the
// DynamoDB repository does, so the race is exercised for real.
func TestPaymentSessionUseCase_VerifyPayment_ConcurrentResolution(t *testing.T) {
	clock := &timeutil.FixedClock{Unix: testNow}
	store := repository.NewSessionMemoryRepository()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	gateway.EXPECT().Verify(gomock.Any(), "ref-race").Return(interfaces.GatewayVerification{
		Status: interfaces.GatewayStatusSucceeded,
		Amount: 99,
	}, nil).AnyTimes()

	uc := NewPaymentSessionUseCase(store, gateway, clock)

	if _, err := uc.CreateCheckout(context.Background(), "cb57-wallet", entities.TokenUSDC, 99, "ref-race", 600); err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	const workers = 16
	var wg sync.WaitGroup
	results := make([]error, workers)
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			_, results[i] = uc.VerifyPayment(context.Background(), "ref-race")
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range results {
		switch {
		case err == nil:
			winners++
		case errors.Is(err, ErrAlreadyResolved):
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if winners != 1 {
		t.Fatalf("expected exactly one winner, got %d", winners)
	}

	s, err := store.GetByReference(context.Background(), "ref-race")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if s.Status != entities.SessionStatusVerified || s.CryptoAmount != 99_000000 {
		t.Fatalf("unexpected final session: %+v", s)
	}
}

func TestPaymentSessionUseCase_ActiveSession(t *testing.T) {
	clock := &timeutil.FixedClock{Unix: testNow}

	t.Run("invalid wallet", func(t *testing.T) {
		uc := NewPaymentSessionUseCase(nil, nil, clock)
		_, err := uc.ActiveSession(context.Background(), " ")
		if !errors.Is(err, ErrInvalidWallet) {
			t.Fatalf("expected ErrInvalidWallet, got %v", err)
		}
	})

	t.Run("picks newest active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISessionRepository(ctrl)
		uc := NewPaymentSessionUseCase(repo, nil, clock)

		repo.EXPECT().ListByWallet(gomock.Any(), "cb57-wallet").Return([]entities.PaymentSession{
			{ID: "old", Reference: "ref-a", Status: entities.SessionStatusVerified, CreatedAt: testNow - 500, ExpiresAt: testNow + 100},
			{ID: "new", Reference: "ref-b", Status: entities.SessionStatusPending, CreatedAt: testNow - 100, ExpiresAt: testNow + 500},
			{ID: "done", Reference: "ref-c", Status: entities.SessionStatusCleared, CreatedAt: testNow - 50, ExpiresAt: testNow + 500},
		}, nil)

		s, err := uc.ActiveSession(context.Background(), "cb57-wallet")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.ID != "new" {
			t.Fatalf("expected newest active session, got %s", s.ID)
		}
	})

	t.Run("none active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISessionRepository(ctrl)
		uc := NewPaymentSessionUseCase(repo, nil, clock)

		repo.EXPECT().ListByWallet(gomock.Any(), "cb57-wallet").Return([]entities.PaymentSession{
			{ID: "done", Reference: "ref-c", Status: entities.SessionStatusCleared, CreatedAt: testNow - 50, ExpiresAt: testNow + 500},
		}, nil)

		_, err := uc.ActiveSession(context.Background(), "cb57-wallet")
		if !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})
}

func TestPaymentSessionUseCase_Clear(t *testing.T) {
	clock := &timeutil.FixedClock{Unix: testNow}

	t.Run("empty id", func(t *testing.T) {
		uc := NewPaymentSessionUseCase(nil, nil, clock)
		if err := uc.Clear(context.Background(), " "); !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("delegates to repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISessionRepository(ctrl)
		uc := NewPaymentSessionUseCase(repo, nil, clock)

		repo.EXPECT().ClearByID(gomock.Any(), "s1").Return(nil)
		if err := uc.Clear(context.Background(), " s1 "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

// A gateway-failed session never expires on its own, so clearing is the only
// way the wallet gets unblocked for a fresh checkout.
func TestPaymentSessionUseCase_Clear_UnblocksAfterGatewayFailure(t *testing.T) {
	clock := &timeutil.FixedClock{Unix: testNow}
	store := repository.NewSessionMemoryRepository()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	gateway.EXPECT().Verify(gomock.Any(), "ref-1").Return(interfaces.GatewayVerification{Status: interfaces.GatewayStatusFailed}, nil)

	uc := NewPaymentSessionUseCase(store, gateway, clock)

	s, err := uc.CreateCheckout(context.Background(), "cb57-wallet", entities.TokenUSDC, 100, "ref-1", 600)
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	failed, err := uc.VerifyPayment(context.Background(), "ref-1")
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if failed.Status != entities.SessionStatusFailed {
		t.Fatalf("expected failed session, got %s", failed.Status)
	}

	// The failed session still blocks the wallet, long past expires_at.
	clock.Unix = testNow + 1_000_000
	if _, err := uc.CreateCheckout(context.Background(), "cb57-wallet", entities.TokenUSDC, 100, "ref-2", 600); !errors.Is(err, ErrActiveSessionExists) {
		t.Fatalf("expected ErrActiveSessionExists, got %v", err)
	}

	if err := uc.Clear(context.Background(), s.ID); err != nil {
		t.Fatalf("clear failed: %v", err)
	}

	if _, err := uc.CreateCheckout(context.Background(), "cb57-wallet", entities.TokenUSDC, 100, "ref-2", 600); err != nil {
		t.Fatalf("checkout after clear failed: %v", err)
	}
}
