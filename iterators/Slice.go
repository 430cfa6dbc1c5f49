package iterators

// Slice iterates over the elements of vs in order.
// The slice is not copied; Close ends the iteration early.
func Slice[T any](vs []T) Iterator[T] {
	return &sliceIter[T]{rest: vs}
}

type sliceIter[T any] struct {
	rest  []T
	value T
}

func (i *sliceIter[T]) Next() bool {
	if len(i.rest) == 0 {
		var zero T
		i.value = zero
		return false
	}
	i.value, i.rest = i.rest[0], i.rest[1:]
	return true
}

func (i *sliceIter[T]) Value() T { return i.value }

func (i *sliceIter[T]) Err() error { return nil }

func (i *sliceIter[T]) Close() error {
	i.rest = nil
	return nil
}
