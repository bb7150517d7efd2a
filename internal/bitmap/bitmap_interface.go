package bitmap

// Bitmap is a fixed-length bit vector. Bits can be set and read but never
// cleared, and the length never changes after construction.
type Bitmap interface {
	// Set sets the bit at position i to 1. Setting an already set bit is a no-op.
	Set(i uint64) error

	// Get returns true if the bit at position i is set.
	Get(i uint64) (bool, error)

	// Len returns the number of bits in the bitmap.
	Len() uint64

	// Count returns the number of bits currently set.
	Count() uint64
}
