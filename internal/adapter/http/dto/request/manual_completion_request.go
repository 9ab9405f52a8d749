package request

// ManualCompletionRequest carries the hash of the split transaction the user
// submitted themselves.

type ManualCompletionRequest struct {
	TxHash string `json:"tx_hash" binding:"required"`
}
