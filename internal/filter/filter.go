package filter

// exactFilter is a filter backed by a map. It never reports false positives
// and serves as the reference when measuring a bloom filter.
type exactFilter[T comparable] struct {
	items map[T]struct{}
}

var _ Filter[string] = (*exactFilter[string])(nil)

// NewExactFilter creates an empty exact filter.
func NewExactFilter[T comparable]() Filter[T] {
	return &exactFilter[T]{items: make(map[T]struct{})}
}

func (f *exactFilter[T]) Add(item T) error {
	if isNil(item) {
		return ErrNullItem
	}
	f.items[item] = struct{}{}
	return nil
}

func (f *exactFilter[T]) Contains(item T) (bool, error) {
	if isNil(item) {
		return false, ErrNullItem
	}
	_, ok := f.items[item]
	return ok, nil
}
