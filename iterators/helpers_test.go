package iterators_test

import (
	"errors"
	"io"
)

var errAlreadyClosed = errors.New("already closed")

func NewReadCloser(r io.Reader) *ReadCloser {
	return &ReadCloser{Reader: r}
}

type ReadCloser struct {
	io.Reader
	IsClosed   bool
	CloseCalls int
}

func (r *ReadCloser) Close() error {
	r.CloseCalls++
	if r.IsClosed {
		return errAlreadyClosed
	}
	r.IsClosed = true
	return nil
}

type BrokenReader struct{}

func (b *BrokenReader) Read(p []byte) (n int, err error) { return 0, io.ErrUnexpectedEOF }
