package request

import "bucketvault/internal/domain/entities"

// WeightsRequest updates the shared bucket allocation. Validation (all buckets
// present, sum exactly 100) happens in the domain before the swap is applied.

type WeightsRequest struct {
	Weights map[string]int `json:"weights" binding:"required"`
}

func (r WeightsRequest) ToWeights() entities.BucketWeights {
	out := make(entities.BucketWeights, len(r.Weights))
	for name, v := range r.Weights {
		out[entities.Bucket(name)] = v
	}
	return out
}
