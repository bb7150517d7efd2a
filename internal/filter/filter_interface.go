package filter

// Filter answers set membership for items of type T.
// A bloom filter can definitively say an item is NOT present, but can only
// say an item MIGHT be present (false positives possible, false negatives not).
type Filter[T any] interface {
	// Add inserts item. Inserted items cannot be removed.
	Add(item T) error

	// Contains returns true if the item might be in the set.
	// Returns false if the item is definitely NOT in the set.
	Contains(item T) (bool, error)
}
