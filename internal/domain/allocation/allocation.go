// Package allocation implements the pure bucket-split policy: integer
// arithmetic only, remainder assigned to a single designated bucket so credits
// always sum to the deposited amount exactly.
package allocation

import (
	"errors"

	"bucketvault/internal/domain/entities"
)

var ErrNegativeAmount = errors.New("split amount must be non-negative")

// Split divides amount (token base units) across the buckets.
//
// Each bucket's raw credit is amount*weight/100 truncated; the leftover
// remainder goes entirely to entities.RemainderBucket. sum(credits) == amount
// holds for every input.
func Split(amount int64, weights entities.BucketWeights) (entities.BucketCredits, error) {
	if amount < 0 {
		return nil, ErrNegativeAmount
	}
	if err := weights.Validate(); err != nil {
		return nil, err
	}

	credits := make(entities.BucketCredits, len(entities.AllBuckets))
	var allocated int64
	for _, b := range entities.AllBuckets {
		share := amount * int64(weights[b]) / 100
		credits[b] = share
		allocated += share
	}
	credits[entities.RemainderBucket] += amount - allocated
	return credits, nil
}
