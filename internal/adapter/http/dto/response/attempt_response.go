package response

import (
	"bucketvault/internal/domain/entities"
)

// User-facing outcome categories. Every terminal attempt state maps to exactly
// one; raw internal error strings never reach the client.
const (
	CategorySuccess        = "success"
	CategoryRetryLater     = "retry_later"
	CategoryManualRequired = "manual_action_required"
	CategoryProcessing     = "processing"
)

type ManualInstructionsResponse struct {
	ContractAddress  string           `json:"contract_address"`
	Method           string           `json:"method"`
	Amount           int64            `json:"amount"`
	Weights          []int            `json:"weights"`
	ExpectedBalances map[string]int64 `json:"expected_balances"`
}

type AttemptResponse struct {
	ID            string                      `json:"id"`
	SessionID     string                      `json:"session_id"`
	Reference     string                      `json:"reference"`
	WalletAddress string                      `json:"wallet_address"`
	TokenSymbol   string                      `json:"token_symbol"`
	Amount        int64                       `json:"amount"`
	Mode          string                      `json:"mode"`
	Status        string                      `json:"status"`
	Category      string                      `json:"category"`
	BucketCredits map[string]int64            `json:"bucket_credits"`
	FailureReason string                      `json:"failure_reason,omitempty"`
	TxHash        string                      `json:"tx_hash,omitempty"`
	Manual        *ManualInstructionsResponse `json:"manual,omitempty"`
	CreatedAt     int64                       `json:"created_at"`
	UpdatedAt     int64                       `json:"updated_at"`
}

func FromDepositAttempt(a entities.DepositSplitAttempt) AttemptResponse {
	resp := AttemptResponse{
		ID:            a.ID,
		SessionID:     a.SessionID,
		Reference:     a.Reference,
		WalletAddress: a.WalletAddress,
		TokenSymbol:   string(a.TokenSymbol),
		Amount:        a.Amount,
		Mode:          string(a.Mode),
		Status:        string(a.Status),
		Category:      CategoryForStatus(a.Status),
		BucketCredits: creditsMap(a.BucketCredits),
		FailureReason: string(a.FailureReason),
		TxHash:        a.TxHash,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
	if a.Manual != nil {
		resp.Manual = &ManualInstructionsResponse{
			ContractAddress:  a.Manual.ContractAddress,
			Method:           a.Manual.Method,
			Amount:           a.Manual.Amount,
			Weights:          a.Manual.Weights,
			ExpectedBalances: creditsMap(a.Manual.ExpectedBalances),
		}
	}
	return resp
}

// CategoryForStatus maps attempt states to the single user-facing message
// category each one carries.
func CategoryForStatus(status entities.AttemptStatus) string {
	switch status {
	case entities.AttemptStatusAutoSucceeded, entities.AttemptStatusManualCompleted:
		return CategorySuccess
	case entities.AttemptStatusManualRequired:
		return CategoryManualRequired
	case entities.AttemptStatusFailed:
		return CategoryRetryLater
	}
	return CategoryProcessing
}

func creditsMap(c entities.BucketCredits) map[string]int64 {
	if c == nil {
		return nil
	}
	out := make(map[string]int64, len(c))
	for b, v := range c {
		out[string(b)] = v
	}
	return out
}
