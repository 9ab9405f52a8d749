package entities

import "errors"

// Bucket is a named sub-balance receiving a fixed percentage share of every
// deposit.

type Bucket string

const (
	BucketBillings   Bucket = "billings"
	BucketGrowth     Bucket = "growth"
	BucketSavings    Bucket = "savings"
	BucketInstant    Bucket = "instant"
	BucketSpendables Bucket = "spendables"
)

// RemainderBucket absorbs the integer-division leftover so credits always sum
// to the deposited amount exactly.
const RemainderBucket = BucketSpendables

// AllBuckets is the canonical bucket order, shared by the allocation policy and
// the vault contract's weights array.
var AllBuckets = []Bucket{
	BucketBillings,
	BucketGrowth,
	BucketSavings,
	BucketInstant,
	BucketSpendables,
}

var ErrInvalidWeights = errors.New("bucket weights must cover all buckets and sum to 100")

// BucketWeights maps each bucket to its percentage share of a deposit.
type BucketWeights map[Bucket]int

// DefaultWeights returns the stock allocation.
func DefaultWeights() BucketWeights {
	return BucketWeights{
		BucketBillings:   30,
		BucketGrowth:     20,
		BucketSavings:    20,
		BucketInstant:    15,
		BucketSpendables: 15,
	}
}

// Validate rejects a configuration before it can be applied: every bucket must
// be present, no weight may be negative, and the sum must be exactly 100.
func (w BucketWeights) Validate() error {
	if len(w) != len(AllBuckets) {
		return ErrInvalidWeights
	}
	sum := 0
	for _, b := range AllBuckets {
		v, ok := w[b]
		if !ok || v < 0 {
			return ErrInvalidWeights
		}
		sum += v
	}
	if sum != 100 {
		return ErrInvalidWeights
	}
	return nil
}

// Clone returns an independent copy, used for snapshot isolation of in-flight
// attempts when the shared configuration is updated.
func (w BucketWeights) Clone() BucketWeights {
	out := make(BucketWeights, len(w))
	for k, v := range w {
		out[k] = v
	}
	return out
}

// Ordered returns the weights in AllBuckets order, the layout the vault
// contract expects.
func (w BucketWeights) Ordered() []int {
	out := make([]int, len(AllBuckets))
	for i, b := range AllBuckets {
		out[i] = w[b]
	}
	return out
}

// BucketCredits maps each bucket to an amount in token base units.
type BucketCredits map[Bucket]int64

// Total sums the credits.
func (c BucketCredits) Total() int64 {
	var sum int64
	for _, v := range c {
		sum += v
	}
	return sum
}

// Equal reports whether two credit maps carry identical amounts.
func (c BucketCredits) Equal(other BucketCredits) bool {
	if len(c) != len(other) {
		return false
	}
	for k, v := range c {
		if other[k] != v {
			return false
		}
	}
	return true
}
