package iterators

import "github.com/adamluzsi/latch/pkg/errorkit"

// OnClose registers a callback that runs after the wrapped iterator is closed.
func OnClose(fn func() error) CallbackOption {
	return callbackFunc(func(c *callbackConfig) {
		c.OnClose = append(c.OnClose, fn)
	})
}

// WithCallback decorates the iterator with the given callbacks.
// Without options, the iterator is returned as is.
func WithCallback[T any](i Iterator[T], cs ...CallbackOption) Iterator[T] {
	if len(cs) == 0 {
		return i
	}
	var c callbackConfig
	for _, opt := range cs {
		opt.configure(&c)
	}
	return &callbackIter[T]{Iterator: i, config: c}
}

type callbackIter[T any] struct {
	Iterator[T]
	config callbackConfig
}

func (i *callbackIter[T]) Close() error {
	errs := []error{i.Iterator.Close()}
	for _, onClose := range i.config.OnClose {
		errs = append(errs, onClose())
	}
	return errorkit.Merge(errs...)
}

type callbackConfig struct {
	OnClose []func() error
}

type CallbackOption interface {
	configure(c *callbackConfig)
}

type callbackFunc func(c *callbackConfig)

func (fn callbackFunc) configure(c *callbackConfig) { fn(c) }
