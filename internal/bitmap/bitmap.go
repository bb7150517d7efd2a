package bitmap

import (
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// ErrIndexOutOfRange is returned when a bit position is outside [0, Len()).
var ErrIndexOutOfRange = errors.New("bitmap: index out of range")

// bitmapImpl is a concrete implementation of the Bitmap interface.
type bitmapImpl struct {
	bits    *bitset.BitSet // Backing storage, one word per 64 bits
	numBits uint64         // Total number of bits in the bitmap
}

var _ Bitmap = (*bitmapImpl)(nil)

// NewBitmap creates a new bitmap with the specified number of bits.
// All bits are initialized to 0.
func NewBitmap(numBits uint64) Bitmap {
	return &bitmapImpl{
		bits:    bitset.New(uint(numBits)),
		numBits: numBits,
	}
}

// Set sets the bit at position i to 1 (adds i to the set).
func (b *bitmapImpl) Set(i uint64) error {
	if err := b.check(i); err != nil {
		return err
	}
	b.bits.Set(uint(i))
	return nil
}

// Get returns true if bit at position i is set (i is in the set).
func (b *bitmapImpl) Get(i uint64) (bool, error) {
	if err := b.check(i); err != nil {
		return false, err
	}
	return b.bits.Test(uint(i)), nil
}

func (b *bitmapImpl) Len() uint64 {
	return b.numBits
}

func (b *bitmapImpl) Count() uint64 {
	return uint64(b.bits.Count())
}

func (b *bitmapImpl) check(i uint64) error {
	if i >= b.numBits {
		return fmt.Errorf("%w: index %d, range [0, %d)", ErrIndexOutOfRange, i, b.numBits)
	}
	return nil
}
