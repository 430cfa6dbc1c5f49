package iterators

import "github.com/adamluzsi/latch/pkg/errorkit"

// Collect drains the iterator into a slice and closes it.
func Collect[T any](i Iterator[T]) (vs []T, err error) {
	defer errorkit.Finish(&err, i.Close)
	vs = make([]T, 0)
	for i.Next() {
		vs = append(vs, i.Value())
	}
	return vs, i.Err()
}

// Count will iterate over and count the total iterations number
//
// Good when all you want is count all the elements in an iterator but don't want to do anything else.
func Count[T any](i Iterator[T]) (total int, err error) {
	defer errorkit.Finish(&err, i.Close)
	for i.Next() {
		total++
	}
	return total, i.Err()
}

// Reduce folds the elements of the iterator into a single value.
// The iterator is closed at the end.
func Reduce[R, T any](i Iterator[T], initial R, fn func(R, T) R) (result R, err error) {
	defer errorkit.Finish(&err, i.Close)
	result = initial
	for i.Next() {
		result = fn(result, i.Value())
	}
	return result, i.Err()
}
