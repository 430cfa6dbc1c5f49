package iterators

// Map converts each value of the source with transform.
// A transform error ends the iteration and is reported by Err,
// the source is not pulled again afterwards.
func Map[To any, From any](src Iterator[From], transform func(From) (To, error)) Iterator[To] {
	return &mapIter[From, To]{src: src, transform: transform}
}

type mapIter[From any, To any] struct {
	src       Iterator[From]
	transform func(From) (To, error)

	done  bool
	err   error
	value To
}

func (i *mapIter[From, To]) Next() bool {
	if i.done {
		return false
	}
	if i.src.Next() {
		v, err := i.transform(i.src.Value())
		if err == nil {
			i.value = v
			return true
		}
		i.err = err
	}
	i.done = true
	var zero To
	i.value = zero
	return false
}

func (i *mapIter[From, To]) Value() To { return i.value }

func (i *mapIter[From, To]) Err() error {
	if i.err != nil {
		return i.err
	}
	return i.src.Err()
}

func (i *mapIter[From, To]) Close() error { return i.src.Close() }
