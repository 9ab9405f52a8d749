package response

import "bucketvault/internal/domain/entities"

type BalancesResponse struct {
	WalletAddress string           `json:"wallet_address"`
	Balances      map[string]int64 `json:"balances"`
	Total         int64            `json:"total"`
}

func FromBucketBalances(walletAddress string, balances entities.BucketCredits) BalancesResponse {
	return BalancesResponse{
		WalletAddress: walletAddress,
		Balances:      creditsMap(balances),
		Total:         balances.Total(),
	}
}

type WeightsResponse struct {
	Weights map[string]int `json:"weights"`
}

func FromWeights(w entities.BucketWeights) WeightsResponse {
	out := make(map[string]int, len(w))
	for b, v := range w {
		out[string(b)] = v
	}
	return WeightsResponse{Weights: out}
}
