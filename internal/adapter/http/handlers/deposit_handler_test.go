package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bucketvault/internal/adapter/http/handlers/mocks"
	"bucketvault/internal/domain/entities"
	"bucketvault/internal/usecase"
	"bucketvault/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newWeightsConfig(t *testing.T) *usecase.AllocationConfig {
	t.Helper()
	cfg, err := usecase.NewAllocationConfig(entities.DefaultWeights())
	if err != nil {
		t.Fatalf("default weights must be valid: %v", err)
	}
	return cfg
}

func TestDepositHandler_Execute(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("manual fallback response", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositSplitUseCase(ctrl)
		h := NewDepositHandler(uc, newWeightsConfig(t))

		r := gin.New()
		r.POST("/v1/deposits/:reference/execute", h.Execute)

		uc.EXPECT().Execute(gomock.Any(), "ref-1").Return(entities.DepositSplitAttempt{
			ID:     "a1",
			Status: entities.AttemptStatusManualRequired,
			Mode:   entities.AttemptModeManual,
			Manual: &entities.ManualInstructions{ContractAddress: "cb22-vault", Method: "depositAndSplit"},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/deposits/ref-1/execute", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp["category"] != "manual_action_required" {
			t.Fatalf("unexpected category: %v", resp["category"])
		}
		if resp["manual"] == nil {
			t.Fatalf("expected manual instructions in response")
		}
	})

	t.Run("mapped errors", func(t *testing.T) {
		cases := []struct {
			name string
			err  error
			want int
		}{
			{name: "session not found", err: usecase.ErrSessionNotFound, want: http.StatusNotFound},
			{name: "not verified", err: usecase.ErrSessionNotVerified, want: http.StatusConflict},
			{name: "expired", err: usecase.ErrVerificationExpired, want: http.StatusGone},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				uc := mocks.NewMockIDepositSplitUseCase(ctrl)
				h := NewDepositHandler(uc, newWeightsConfig(t))

				r := gin.New()
				r.POST("/v1/deposits/:reference/execute", h.Execute)

				uc.EXPECT().Execute(gomock.Any(), "ref-1").Return(entities.DepositSplitAttempt{}, tc.err)

				req := httptest.NewRequest(http.MethodPost, "/v1/deposits/ref-1/execute", nil)
				w := httptest.NewRecorder()
				r.ServeHTTP(w, req)

				if w.Code != tc.want {
					t.Fatalf("expected %d, got %d", tc.want, w.Code)
				}
			})
		}
	})
}

func TestDepositHandler_CompleteManually(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositSplitUseCase(ctrl)
		h := NewDepositHandler(uc, newWeightsConfig(t))

		r := gin.New()
		r.POST("/v1/deposits/attempts/:attempt_id/complete", h.CompleteManually)

		req := httptest.NewRequest(http.MethodPost, "/v1/deposits/attempts/a1/complete", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("mismatched amounts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositSplitUseCase(ctrl)
		h := NewDepositHandler(uc, newWeightsConfig(t))

		r := gin.New()
		r.POST("/v1/deposits/attempts/:attempt_id/complete", h.CompleteManually)

		uc.EXPECT().CompleteManually(gomock.Any(), "a1", "0xtx").Return(entities.DepositSplitAttempt{}, usecase.ErrMismatchedAmounts)

		req := httptest.NewRequest(http.MethodPost, "/v1/deposits/attempts/a1/complete", bytes.NewBufferString(`{"tx_hash":"0xtx"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp["code"] != "MISMATCHED_AMOUNTS" {
			t.Fatalf("unexpected error code: %v", resp["code"])
		}
	})

	t.Run("pending tx", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositSplitUseCase(ctrl)
		h := NewDepositHandler(uc, newWeightsConfig(t))

		r := gin.New()
		r.POST("/v1/deposits/attempts/:attempt_id/complete", h.CompleteManually)

		uc.EXPECT().CompleteManually(gomock.Any(), "a1", "0xpending").Return(entities.DepositSplitAttempt{}, interfaces.ErrTxPending)

		req := httptest.NewRequest(http.MethodPost, "/v1/deposits/attempts/a1/complete", bytes.NewBufferString(`{"tx_hash":"0xpending"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp["code"] != "TX_PENDING" {
			t.Fatalf("unexpected error code: %v", resp["code"])
		}
	})

	t.Run("tx not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositSplitUseCase(ctrl)
		h := NewDepositHandler(uc, newWeightsConfig(t))

		r := gin.New()
		r.POST("/v1/deposits/attempts/:attempt_id/complete", h.CompleteManually)

		uc.EXPECT().CompleteManually(gomock.Any(), "a1", "0xmissing").Return(entities.DepositSplitAttempt{}, interfaces.ErrTxNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/deposits/attempts/a1/complete", bytes.NewBufferString(`{"tx_hash":"0xmissing"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositSplitUseCase(ctrl)
		h := NewDepositHandler(uc, newWeightsConfig(t))

		r := gin.New()
		r.POST("/v1/deposits/attempts/:attempt_id/complete", h.CompleteManually)

		uc.EXPECT().CompleteManually(gomock.Any(), "a1", "0xtx").Return(entities.DepositSplitAttempt{
			ID:     "a1",
			Status: entities.AttemptStatusManualCompleted,
			TxHash: "0xtx",
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/deposits/attempts/a1/complete", bytes.NewBufferString(`{"tx_hash":"0xtx"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp["category"] != "success" {
			t.Fatalf("unexpected category: %v", resp["category"])
		}
	})
}

func TestDepositHandler_GetBalances(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIDepositSplitUseCase(ctrl)
	h := NewDepositHandler(uc, newWeightsConfig(t))

	r := gin.New()
	r.GET("/v1/deposits/balances/:wallet", h.GetBalances)

	uc.EXPECT().BucketBalances(gomock.Any(), "cb57-wallet").Return(entities.BucketCredits{
		entities.BucketBillings:   30,
		entities.BucketGrowth:     20,
		entities.BucketSavings:    20,
		entities.BucketInstant:    15,
		entities.BucketSpendables: 15,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/deposits/balances/cb57-wallet", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response json: %v", err)
	}
	if resp["total"] != float64(100) {
		t.Fatalf("unexpected total: %v", resp["total"])
	}
}

func TestDepositHandler_Weights(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get", func(t *testing.T) {
		h := NewDepositHandler(nil, newWeightsConfig(t))

		r := gin.New()
		r.GET("/v1/allocations/weights", h.GetWeights)

		req := httptest.NewRequest(http.MethodGet, "/v1/allocations/weights", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]map[string]int
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp["weights"]["billings"] != 30 {
			t.Fatalf("unexpected weights: %v", resp)
		}
	})

	t.Run("update valid", func(t *testing.T) {
		cfg := newWeightsConfig(t)
		h := NewDepositHandler(nil, cfg)

		r := gin.New()
		r.PUT("/v1/allocations/weights", h.UpdateWeights)

		body := `{"weights":{"billings":50,"growth":20,"savings":10,"instant":10,"spendables":10}}`
		req := httptest.NewRequest(http.MethodPut, "/v1/allocations/weights", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		if cfg.Snapshot()[entities.BucketBillings] != 50 {
			t.Fatalf("update not applied")
		}
	})

	t.Run("update rejects bad sum", func(t *testing.T) {
		cfg := newWeightsConfig(t)
		h := NewDepositHandler(nil, cfg)

		r := gin.New()
		r.PUT("/v1/allocations/weights", h.UpdateWeights)

		body := `{"weights":{"billings":90,"growth":20,"savings":10,"instant":10,"spendables":10}}`
		req := httptest.NewRequest(http.MethodPut, "/v1/allocations/weights", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if cfg.Snapshot()[entities.BucketBillings] != 30 {
			t.Fatalf("config must be untouched by invalid update")
		}
	})
}
