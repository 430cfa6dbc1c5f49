package iterators

// Filter only lets through the elements for which filter returns true.
func Filter[T any](i Iterator[T], filter func(T) bool) Iterator[T] {
	return &filterIter[T]{Iterator: i, Filter: filter}
}

type filterIter[T any] struct {
	Iterator Iterator[T]
	Filter   func(T) bool

	value T
}

func (i *filterIter[T]) Close() error {
	return i.Iterator.Close()
}

func (i *filterIter[T]) Err() error {
	return i.Iterator.Err()
}

func (i *filterIter[T]) Value() T {
	return i.value
}

func (i *filterIter[T]) Next() bool {
	for i.Iterator.Next() {
		if v := i.Iterator.Value(); i.Filter(v) {
			i.value = v
			return true
		}
	}
	return false
}
