package iterators

import (
	"bufio"
	"io"
)

// BufioScanner turns the tokens of a bufio.Scanner into an Iterator.
// The optional closer is closed together with the iterator.
func BufioScanner[T string | []byte](s *bufio.Scanner, closer io.Closer) Iterator[T] {
	return &bufioScannerIter[T]{
		Scanner: s,
		Closer:  closer,
	}
}

type bufioScannerIter[T string | []byte] struct {
	*bufio.Scanner
	Closer io.Closer

	closed bool
	value  T
}

func (i *bufioScannerIter[T]) Next() bool {
	if i.closed || i.Scanner.Err() != nil {
		return false
	}
	if !i.Scanner.Scan() {
		return false
	}
	switch any(i.value).(type) {
	case string:
		i.value = T(i.Scanner.Text())
	case []byte:
		// Bytes is only valid until the next Scan.
		i.value = T(append([]byte(nil), i.Scanner.Bytes()...))
	}
	return true
}

func (i *bufioScannerIter[T]) Err() error {
	return i.Scanner.Err()
}

func (i *bufioScannerIter[T]) Close() error {
	if i.closed {
		return nil
	}
	i.closed = true
	if i.Closer == nil {
		return nil
	}
	return i.Closer.Close()
}

func (i *bufioScannerIter[T]) Value() T {
	return i.value
}
