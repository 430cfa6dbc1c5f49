package iterators

import "sync"

// Head takes the first n element, similarly how the coreutils "head" app works.
// It is the tool of choice to bound an infinite source before collecting it.
func Head[T any](iter Iterator[T], n int) Iterator[T] {
	var (
		index     int
		closeOnce sync.Once
		closeErr  error
	)
	var closeFn = func() error {
		closeOnce.Do(func() { closeErr = iter.Close() })
		return closeErr
	}
	return Func[T](func() (v T, ok bool, err error) {
		if n <= index {
			return v, false, nil
		}
		if !iter.Next() {
			return v, false, iter.Err()
		}
		index++
		return iter.Value(), true, nil
	}, OnClose(closeFn))
}
