package iterators_test

import (
	"errors"
	"testing"

	"github.com/adamluzsi/latch/iterators"
	"github.com/adamluzsi/testcase/assert"
)

func ExampleHead() {
	infStream := iterators.Func[int](func() (v int, ok bool, err error) {
		return 42, true, nil
	})

	i := iterators.Head(infStream, 3)

	vs, err := iterators.Collect(i)
	_, _ = vs, err // []{42, 42, 42}, nil
}

func TestHead(t *testing.T) {
	t.Run("less", func(t *testing.T) {
		vs, err := iterators.Collect(iterators.Head(iterators.Slice([]int{1, 2, 3}), 2))
		assert.Must(t).NoError(err)
		assert.Must(t).Equal([]int{1, 2}, vs)
	})
	t.Run("more", func(t *testing.T) {
		vs, err := iterators.Collect(iterators.Head(iterators.Slice([]int{1, 2, 3}), 5))
		assert.Must(t).NoError(err)
		assert.Must(t).Equal([]int{1, 2, 3}, vs)
	})
	t.Run("closes the source once", func(t *testing.T) {
		expErr := errors.New("boom")
		stub := iterators.Stub(iterators.Slice([]int{1, 2, 3, 4, 5}))
		stub.StubClose = func() error { return expErr }

		i := iterators.Head[int](stub, 3)

		vs, err := iterators.Collect(i)
		assert.Must(t).ErrorIs(expErr, err)
		assert.Must(t).Equal([]int{1, 2, 3}, vs)
		assert.Must(t).ErrorIs(expErr, i.Close())
		assert.Must(t).Equal(1, stub.CloseCalls, "expected that close only called once")
	})
	t.Run("does not pull beyond n", func(t *testing.T) {
		stub := iterators.Stub(iterators.Slice([]int{1, 2, 3, 4, 5}))
		_, err := iterators.Collect(iterators.Head[int](stub, 2))
		assert.Must(t).NoError(err)
		assert.Must(t).Equal(2, stub.NextCalls)
	})
	t.Run("err", func(t *testing.T) {
		expErr := errors.New("boom")
		i := iterators.Head(iterators.Error[int](expErr), 42)
		assert.Must(t).False(i.Next())
		assert.Must(t).ErrorIs(expErr, i.Err())
		assert.Must(t).NoError(i.Close())
	})
}
