package iterators

import "iter"

// LatchSeq is the range-over-func variant of Latch.
// The returned sequence is lazy, seq is only iterated when the result is ranged over.
func LatchSeq[T any](seq iter.Seq[T], start, stop func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		var latched bool
		for v := range seq {
			if latched {
				if stop(v) {
					latched = false
				}
			} else if start(v) {
				latched = true
			} else {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// ToSeq turns the Iterator into an iter.Seq.
// The iterator is closed once the ranging finished, either by exhaustion or by break.
// Since iter.Seq has no error channel, use ToSeq only when the iteration error is checked through i.Err afterwards.
func ToSeq[T any](i Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		defer i.Close()
		for i.Next() {
			if !yield(i.Value()) {
				return
			}
		}
	}
}

// FromSeq turns an iter.Seq into a pull based Iterator.
// Close must be called when the iterator is abandoned before exhaustion,
// to release the goroutine of iter.Pull.
func FromSeq[T any](seq iter.Seq[T]) Iterator[T] {
	next, stop := iter.Pull(seq)
	return Func[T](func() (v T, ok bool, err error) {
		v, ok = next()
		return v, ok, nil
	}, OnClose(func() error {
		stop()
		return nil
	}))
}
