package iterators

// Latch returns an iterator that starts emitting elements of i
// as soon as an element satisfies the start predicate,
// and stops *after* an element satisfies the stop predicate.
// This repeats in a cycle until i is exhausted.
//
// While the latch is open only stop is evaluated, while it is closed only start is,
// thus an element matching both predicates on a closed latch simply opens it.
func Latch[T any](i Iterator[T], start, stop func(T) bool) Iterator[T] {
	return NewLatchIter[T](i, start, stop)
}

// NewLatchIter constructs the latch adapter directly.
// Prefer Latch unless you need access to the LatchIter's state.
func NewLatchIter[T any](i Iterator[T], start, stop func(T) bool) *LatchIter[T] {
	return &LatchIter[T]{
		Iterator: i,
		Start:    start,
		Stop:     stop,
	}
}

type LatchIter[T any] struct {
	Iterator Iterator[T]
	Start    func(T) bool
	Stop     func(T) bool

	latched bool
	done    bool
	value   T
}

func (i *LatchIter[T]) Close() error {
	return i.Iterator.Close()
}

func (i *LatchIter[T]) Err() error {
	return i.Iterator.Err()
}

func (i *LatchIter[T]) Value() T {
	return i.value
}

// Latched reports whether the latch is open, meaning the next pulled element is emitted regardless of Start.
func (i *LatchIter[T]) Latched() bool {
	return i.latched
}

func (i *LatchIter[T]) Next() bool {
	if i.done {
		return false
	}
	for i.Iterator.Next() {
		v := i.Iterator.Value()
		if i.latched {
			if i.Stop(v) {
				i.latched = false
			}
			i.value = v
			return true
		}
		if i.Start(v) {
			i.latched = true
			i.value = v
			return true
		}
	}
	i.done = true
	var zero T
	i.value = zero
	return false
}
