package iterators_test

import (
	"errors"
	"testing"

	"github.com/adamluzsi/latch/iterators"
	"github.com/adamluzsi/testcase"
	"github.com/adamluzsi/testcase/assert"
)

func TestWithCallback(t *testing.T) {
	s := testcase.NewSpec(t)
	s.Parallel()

	s.When(`no callback is defined`, func(s *testcase.Spec) {
		s.Then(`it returns the original iterator`, func(t *testcase.T) {
			expected := []int{1, 2, 3}
			input := iterators.Slice(expected)
			i := iterators.WithCallback[int](input)
			assert.Must(t).Equal(input, i)

			actually, err := iterators.Collect(i)
			t.Must.NoError(err)
			t.Must.Equal(expected, actually)
		})
	})

	s.When(`OnClose callback is given`, func(s *testcase.Spec) {
		s.Then(`the callback is called after the iterator is closed`, func(t *testcase.T) {
			var closeHook []string

			m := iterators.Stub[int](iterators.Slice([]int{1, 2, 3}))
			m.StubClose = func() error {
				closeHook = append(closeHook, `during`)
				return nil
			}

			callbackErr := errors.New(t.Random.String())

			i := iterators.WithCallback[int](m,
				iterators.OnClose(func() error {
					closeHook = append(closeHook, `after`)
					return callbackErr
				}),
			)

			t.Must.ErrorIs(callbackErr, i.Close())
			t.Must.Equal([]string{`during`, `after`}, closeHook)
		})

		s.And(`error happen during closing the wrapped iterator`, func(s *testcase.Spec) {
			s.Then(`both the close error and the callback error are returned`, func(t *testcase.T) {
				closeErr := errors.New(`boom`)
				callbackErr := errors.New(`bang`)

				m := iterators.Stub[int](iterators.Slice([]int{1, 2, 3}))
				m.StubClose = func() error { return closeErr }
				i := iterators.WithCallback[int](m,
					iterators.OnClose(func() error { return callbackErr }))

				err := i.Close()
				t.Must.ErrorIs(closeErr, err)
				t.Must.ErrorIs(callbackErr, err)
			})
		})
	})
}
