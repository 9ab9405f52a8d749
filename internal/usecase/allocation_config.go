package usecase

import (
	"sync"

	"bucketvault/internal/domain/entities"
)

// AllocationConfig holds the shared bucket weights. Read-mostly: the executor
// snapshots it once per attempt, so updating percentages never retroactively
// alters in-flight bucket credits.

type AllocationConfig struct {
	mu      sync.RWMutex
	weights entities.BucketWeights
}

func NewAllocationConfig(weights entities.BucketWeights) (*AllocationConfig, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	return &AllocationConfig{weights: weights.Clone()}, nil
}

// Snapshot returns an independent copy of the current weights.
func (c *AllocationConfig) Snapshot() entities.BucketWeights {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.weights.Clone()
}

// Update swaps the weights after validation; invalid configurations are
// rejected without mutation.
func (c *AllocationConfig) Update(weights entities.BucketWeights) error {
	if err := weights.Validate(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.weights = weights.Clone()
	return nil
}
