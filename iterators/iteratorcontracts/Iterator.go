// Package iteratorcontracts holds the behaviour every iterators.Iterator implementation is expected to have.
package iteratorcontracts

import (
	"testing"

	"github.com/adamluzsi/latch/iterators"
	"github.com/adamluzsi/testcase"
)

// Iterator is the contract of a finite, non-empty iterator.
type Iterator[V any] struct {
	MakeSubject func(t *testcase.T) iterators.Iterator[V]
}

func (c Iterator[V]) Spec(s *testcase.Spec) {
	s.Describe("it behaves like an iterator", func(s *testcase.Spec) {
		subject := testcase.Let(s, func(t *testcase.T) iterators.Iterator[V] {
			return c.MakeSubject(t)
		})

		s.Then("values can be collected from the iterator", func(t *testcase.T) {
			vs, err := iterators.Collect[V](subject.Get(t))
			t.Must.NoError(err)
			t.Must.NotEmpty(vs)
		})

		s.Then("closing the iterator is possible, even multiple times, without an issue", func(t *testcase.T) {
			sub := subject.Get(t)
			for i, n := 0, t.Random.IntB(3, 7); i < n; i++ {
				t.Must.NoError(sub.Close())
				t.Must.NoError(sub.Err())
			}
		})

		s.Then("Value is repeatable without side effects", func(t *testcase.T) {
			sub := subject.Get(t)
			defer sub.Close()
			t.Must.True(sub.Next())
			v := sub.Value()
			for i, n := 0, t.Random.IntB(2, 5); i < n; i++ {
				t.Must.Equal(v, sub.Value())
			}
		})

		s.Then("after exhaustion Next keeps reporting false", func(t *testcase.T) {
			sub := subject.Get(t)
			defer sub.Close()
			for sub.Next() {
			}
			t.Must.NoError(sub.Err())
			for i, n := 0, t.Random.IntB(2, 5); i < n; i++ {
				t.Must.False(sub.Next())
			}
		})

		s.When("iterator is closed", func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) {
				t.Must.NoError(subject.Get(t).Close())
			})

			s.Then("no more value is iterated", func(t *testcase.T) {
				vs, err := iterators.Collect(subject.Get(t))
				t.Must.NoError(err)
				t.Must.Empty(vs)
			})
		})
	})
}

func (c Iterator[V]) Test(t *testing.T) {
	c.Spec(testcase.NewSpec(t))
}

func (c Iterator[V]) Benchmark(b *testing.B) {
	c.Spec(testcase.NewSpec(b))
}
