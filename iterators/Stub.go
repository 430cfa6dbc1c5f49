package iterators

// Stub wraps an iterator so that each of its methods can be replaced one by one.
// The number of Next calls is recorded, which makes it easy to assert how much of the source was consumed.
func Stub[T any](i Iterator[T]) *StubIter[T] {
	return &StubIter[T]{
		Iterator:  i,
		StubValue: i.Value,
		StubClose: i.Close,
		StubNext:  i.Next,
		StubErr:   i.Err,
	}
}

type StubIter[T any] struct {
	Iterator  Iterator[T]
	StubValue func() T
	StubClose func() error
	StubNext  func() bool
	StubErr   func() error

	NextCalls  int
	CloseCalls int
}

func (m *StubIter[T]) Close() error {
	m.CloseCalls++
	return m.StubClose()
}

func (m *StubIter[T]) Next() bool {
	m.NextCalls++
	return m.StubNext()
}

func (m *StubIter[T]) Err() error {
	return m.StubErr()
}

func (m *StubIter[T]) Value() T {
	return m.StubValue()
}

func (m *StubIter[T]) ResetClose() {
	m.StubClose = m.Iterator.Close
}

func (m *StubIter[T]) ResetNext() {
	m.StubNext = m.Iterator.Next
}

func (m *StubIter[T]) ResetErr() {
	m.StubErr = m.Iterator.Err
}

func (m *StubIter[T]) ResetValue() {
	m.StubValue = m.Iterator.Value
}
