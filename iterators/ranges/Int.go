// Package ranges provides finite, inclusive numeric ranges as iterators.
package ranges

import (
	"github.com/adamluzsi/latch/iterators"
	"golang.org/x/exp/constraints"
)

// Int iterates from begin to end, both inclusive.
// An end smaller than begin results in an empty range.
func Int[N constraints.Integer](begin, end N) iterators.Iterator[N] {
	return &intRange[N]{Begin: begin, End: end}
}

// Char iterates over the characters from begin to end, both inclusive.
func Char(begin, end rune) iterators.Iterator[rune] {
	return Int[rune](begin, end)
}

type intRange[N constraints.Integer] struct {
	Begin, End N

	started bool
	done    bool
	current N
}

func (ir *intRange[N]) Close() error {
	ir.done = true
	return nil
}

func (ir *intRange[N]) Err() error {
	return nil
}

func (ir *intRange[N]) Next() bool {
	if ir.done {
		return false
	}
	if !ir.started {
		ir.started = true
		if ir.End < ir.Begin {
			ir.done = true
			return false
		}
		ir.current = ir.Begin
		return true
	}
	// checked before the increment so End can be the max value of N
	if ir.current == ir.End {
		ir.done = true
		return false
	}
	ir.current++
	return true
}

func (ir *intRange[N]) Value() N {
	return ir.current
}
