package filter

import "math"

// asymptoticBase is the per-bit false positive base used when 1/capacity
// cannot be represented.
const asymptoticBase = 0.6185

// OptimalErrorRate returns the default target error rate for capacity
// items: 1/capacity, or 0.6185^(MaxInt32/capacity) if that underflows.
func OptimalErrorRate(capacity int) float64 {
	if c := 1.0 / float64(capacity); c != 0 {
		return c
	}
	return math.Pow(asymptoticBase, float64(math.MaxInt32/capacity))
}

// OptimalNumberOfHashBits returns the bit array size m for capacity items
// at errorRate:
//
//	m = ceil(n * log_b(p)), b = 1/2^ln(2)
//
// which is the usual -n*ln(p)/ln(2)^2.
func OptimalNumberOfHashBits(capacity int, errorRate float64) int {
	base := 1.0 / math.Pow(2, math.Ln2)
	return int(math.Ceil(float64(capacity) * (math.Log(errorRate) / math.Log(base))))
}

// OptimalNumberOfHashes returns k = round(ln(2) * m / n), with ties going to
// the even integer. The result is not clamped.
func OptimalNumberOfHashes(capacity int, errorRate float64) int {
	m := OptimalNumberOfHashBits(capacity, errorRate)
	return int(math.RoundToEven(math.Ln2 * float64(m) / float64(capacity)))
}

// EstimateFalsePositiveRate estimates the false positive rate of a filter of
// m bits and k hash functions after n insertions.
// Formula: (1 - e^(-kn/m))^k
func EstimateFalsePositiveRate(m, k, n int) float64 {
	if m == 0 || n == 0 {
		return 0
	}
	kf := float64(k)
	return math.Pow(1-math.Exp(-kf*float64(n)/float64(m)), kf)
}
