package filter

import (
	"fmt"
	"math"
	"reflect"

	"lexibloom/internal/bitmap"
)

// BloomFilter implements a space-efficient probabilistic data structure
// for set membership testing with no false negatives.
//
// Items can only be added, never removed. A BloomFilter is not safe for
// concurrent use; callers must serialize Add with every other call.
type BloomFilter[T comparable] struct {
	bitmap    bitmap.Bitmap
	primary   HashFunc[T]
	secondary HashFunc[T]
	k         int     // number of hash functions
	m         int     // number of bits in bitmap
	capacity  int     // expected number of items
	errorRate float64 // target false positive rate
}

var _ Filter[string] = (*BloomFilter[string])(nil)

// New creates a filter for capacity items with an explicit bit array size.
// The error rate defaults to OptimalErrorRate(capacity) and the hash count is
// derived from it.
func New[T comparable](capacity int, secondary HashFunc[T], bitArraySize int) (*BloomFilter[T], error) {
	if capacity < 1 {
		return nil, capacityError(capacity)
	}
	p := OptimalErrorRate(capacity)
	return NewWithParams(capacity, secondary, bitArraySize, p, OptimalNumberOfHashes(capacity, p))
}

// NewWithErrorRate creates a filter for capacity items at the target error
// rate. The bit array size and hash count are derived.
func NewWithErrorRate[T comparable](capacity int, secondary HashFunc[T], errorRate float64) (*BloomFilter[T], error) {
	if capacity < 1 {
		return nil, capacityError(capacity)
	}
	// Check the rate before sizing from it.
	if err := checkErrorRate(errorRate); err != nil {
		return nil, err
	}
	return NewWithParams(capacity, secondary,
		OptimalNumberOfHashBits(capacity, errorRate), errorRate, OptimalNumberOfHashes(capacity, errorRate))
}

// NewWithHashCount behaves exactly like NewWithErrorRate. hashFunctionCount
// is accepted but the derived hash count is used instead, which keeps sizing
// identical to filters built by earlier releases.
func NewWithHashCount[T comparable](capacity int, secondary HashFunc[T], errorRate float64, hashFunctionCount int) (*BloomFilter[T], error) {
	log.Debugf("ignoring requested hash function count %d", hashFunctionCount)
	return NewWithErrorRate(capacity, secondary, errorRate)
}

// NewWithParams creates a filter with every parameter given explicitly.
// A nil secondary hash selects JenkinsOneAtATime when T is string and fails
// with ErrMissingHashFunction otherwise.
func NewWithParams[T comparable](capacity int, secondary HashFunc[T], bitArraySize int, errorRate float64, hashFunctionCount int) (*BloomFilter[T], error) {
	if capacity < 1 {
		return nil, capacityError(capacity)
	}
	if bitArraySize < 1 || bitArraySize > math.MaxInt32 {
		return nil, &ArgumentError{Name: "bitArraySize", Value: bitArraySize,
			Reason: fmt.Sprintf("must be in [1, %d]", math.MaxInt32)}
	}
	if err := checkErrorRate(errorRate); err != nil {
		return nil, err
	}
	if hashFunctionCount < 1 {
		return nil, &ArgumentError{Name: "hashFunctionCount", Value: hashFunctionCount,
			Reason: "must be > 0"}
	}
	if secondary == nil {
		h, ok := defaultSecondary[T]()
		if !ok {
			return nil, fmt.Errorf("%w: %T", ErrMissingHashFunction, *new(T))
		}
		secondary = h
	}

	log.Debugf("new bloom filter: n=%d m=%d k=%d p=%g", capacity, bitArraySize, hashFunctionCount, errorRate)

	return &BloomFilter[T]{
		bitmap:    bitmap.NewBitmap(uint64(bitArraySize)),
		primary:   primaryHash[T](),
		secondary: secondary,
		k:         hashFunctionCount,
		m:         bitArraySize,
		capacity:  capacity,
		errorRate: errorRate,
	}, nil
}

func capacityError(capacity int) error {
	return &ArgumentError{Name: "capacity", Value: capacity,
		Reason: "number of items to insert must be > 0"}
}

// checkErrorRate is written so that NaN is rejected too.
func checkErrorRate(errorRate float64) error {
	if !(errorRate > 0 && errorRate < 1) {
		return &ArgumentError{Name: "errorRate", Value: errorRate,
			Reason: "must be in (0.0, 1.0)"}
	}
	return nil
}

// Add inserts an item into the bloom filter. It cannot be removed.
func (bf *BloomFilter[T]) Add(item T) error {
	if isNil(item) {
		return ErrNullItem
	}
	h1, h2 := bf.hash(item)
	for i := 0; i < bf.k; i++ {
		pos := ComputeIndex(h1, h2, i, bf.m)
		if err := bf.bitmap.Set(uint64(pos)); err != nil {
			return fmt.Errorf("filter: add: %w", err)
		}
	}
	return nil
}

// Contains returns true if the item might be in the set.
// Returns false if the item is definitely NOT in the set.
func (bf *BloomFilter[T]) Contains(item T) (bool, error) {
	if isNil(item) {
		return false, ErrNullItem
	}
	h1, h2 := bf.hash(item)
	for i := 0; i < bf.k; i++ {
		pos := ComputeIndex(h1, h2, i, bf.m)
		set, err := bf.bitmap.Get(uint64(pos))
		if err != nil {
			return false, fmt.Errorf("filter: contains: %w", err)
		}
		if !set {
			return false, nil
		}
	}
	return true, nil
}

func (bf *BloomFilter[T]) hash(item T) (int32, int32) {
	return bf.primary(item), bf.secondary(item)
}

// BitCount returns the size of the bit array (m).
func (bf *BloomFilter[T]) BitCount() int { return bf.m }

// HashFunctionCount returns the number of indices derived per item (k).
func (bf *BloomFilter[T]) HashFunctionCount() int { return bf.k }

// Capacity returns the expected number of items the filter was sized for.
func (bf *BloomFilter[T]) Capacity() int { return bf.capacity }

// ErrorRate returns the target error rate given at construction.
func (bf *BloomFilter[T]) ErrorRate() float64 { return bf.errorRate }

// SetBitCount returns how many bits are currently set.
func (bf *BloomFilter[T]) SetBitCount() int { return int(bf.bitmap.Count()) }

// EstimatedFalsePositiveRate estimates the false positive rate after n
// distinct items have been added.
func (bf *BloomFilter[T]) EstimatedFalsePositiveRate(n int) float64 {
	return EstimateFalsePositiveRate(bf.m, bf.k, n)
}

// isNil reports whether item is a nil pointer, channel or interface.
func isNil[T comparable](item T) bool {
	v := reflect.ValueOf(item)
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}
