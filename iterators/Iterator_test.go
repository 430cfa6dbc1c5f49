package iterators_test

import (
	"github.com/adamluzsi/latch/iterators"
)

func ExampleIterator() {
	var iter iterators.Iterator[int]
	iter = iterators.Slice([]int{1, 2, 3})
	defer iter.Close()
	for iter.Next() {
		v := iter.Value()
		_ = v
	}
	if err := iter.Err(); err != nil {
		// handle error
	}
}
