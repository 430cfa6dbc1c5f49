package iterators

import "fmt"

// Error returns an Iterator that only can do is returning an Err and never have next element
func Error[T any](err error) Iterator[T] {
	return &errorIter[T]{err: err}
}

// Errorf behaves exactly like fmt.Errorf but returns the error wrapped as iterator
func Errorf[T any](format string, a ...any) Iterator[T] {
	return Error[T](fmt.Errorf(format, a...))
}

// errorIter can be used for returning an error wrapped with iterator interface.
// This can be used when a source encounter unexpected non recoverable error before it could yield anything.
type errorIter[T any] struct {
	err error
}

func (i *errorIter[T]) Close() error { return nil }
func (i *errorIter[T]) Next() bool   { return false }
func (i *errorIter[T]) Err() error   { return i.err }

func (i *errorIter[T]) Value() T {
	var v T
	return v
}

// Empty iterator is used to represent nil result with Null object pattern
func Empty[T any]() Iterator[T] {
	return Error[T](nil)
}
