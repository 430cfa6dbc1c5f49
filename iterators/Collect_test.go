package iterators_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/adamluzsi/latch/iterators"
	"github.com/adamluzsi/latch/iterators/ranges"
	"github.com/adamluzsi/testcase/assert"
)

func TestCollect(t *testing.T) {
	t.Run("values are collected in order", func(t *testing.T) {
		vs, err := iterators.Collect(iterators.Slice([]string{"a", "b", "c"}))
		assert.Must(t).NoError(err)
		assert.Must(t).Equal([]string{"a", "b", "c"}, vs)
	})
	t.Run("empty iterator gives an empty, non nil slice", func(t *testing.T) {
		vs, err := iterators.Collect(iterators.Empty[string]())
		assert.Must(t).NoError(err)
		assert.Must(t).NotNil(vs)
		assert.Must(t).Equal(0, len(vs))
	})
	t.Run("iteration and close errors are both reported", func(t *testing.T) {
		errIter := errors.New("iter")
		errClose := errors.New("close")
		m := iterators.Stub(iterators.Error[int](errIter))
		m.StubClose = func() error { return errClose }
		_, err := iterators.Collect[int](m)
		assert.Must(t).ErrorIs(errIter, err)
		assert.Must(t).ErrorIs(errClose, err)
	})
}

func TestCount_IteratorGiven_AllTheRecordsCounted(t *testing.T) {
	t.Parallel()

	total, err := iterators.Count(iterators.Slice([]int{1, 2, 3}))
	assert.Must(t).Nil(err)
	assert.Must(t).Equal(3, total)
}

func TestCount_errorOnCloseReturned(t *testing.T) {
	t.Parallel()

	m := iterators.Stub(iterators.Slice([]int{1, 2, 3}))

	expected := errors.New("boom")
	m.StubClose = func() error {
		return expected
	}

	_, err := iterators.Count[int](m)
	assert.Must(t).Equal(expected, err)
}

func TestReduce(t *testing.T) {
	t.Run("sum", func(t *testing.T) {
		sum, err := iterators.Reduce(ranges.Int(1, 10), 0, func(acc, n int) int { return acc + n })
		assert.Must(t).NoError(err)
		assert.Must(t).Equal(55, sum)
	})
	t.Run("type change", func(t *testing.T) {
		out, err := iterators.Reduce(iterators.Slice([]int{1, 2, 3}), "", func(acc string, n int) string {
			return acc + strconv.Itoa(n)
		})
		assert.Must(t).NoError(err)
		assert.Must(t).Equal("123", out)
	})
	t.Run("error", func(t *testing.T) {
		expected := errors.New("boom")
		out, err := iterators.Reduce(iterators.Error[int](expected), 42, func(acc, n int) int { return acc + n })
		assert.Must(t).ErrorIs(expected, err)
		assert.Must(t).Equal(42, out)
	})
}
