package zip

import "context"

// Producer is what needs to be implemented to take part in a zip.
// Emit returns the next item, and SizeHint estimates how many items remain.
type Producer[T any] interface {

	// Emit returns the next item, or an error.
	// When the producer is exhausted, it must return io.EOF itself (not a wrapped io.EOF),
	// any other error is treated as a malfunction and is propagated to the caller as is.
	// Emit is never called concurrently from multiple goroutines.
	// it is the producer's responsibility to respect context cancellation if supported.
	Emit(ctx context.Context) (T, error)

	// SizeHint returns the bounds on the number of items left.
	// It is only a hint and must not be relied on as an exact count.
	SizeHint() SizeHint
}

// Lifecycle is an optional interface a Producer can implement when it holds resources.
// Combinators and consumers open and close the producers they own when they implement it.
type Lifecycle interface {
	Open(ctx context.Context) error
	Close()
}

// ProducerFunc adapts a plain function into a Producer with an unknown size hint.
type ProducerFunc[T any] func(ctx context.Context) (T, error)

func (f ProducerFunc[T]) Emit(ctx context.Context) (T, error) {
	return f(ctx)
}

func (f ProducerFunc[T]) SizeHint() SizeHint {
	return UnknownSize()
}

type lifecycleWrapper struct {
	openFunc  func(ctx context.Context) error
	closeFunc func()
}

func NewLifecycle(openFunc func(ctx context.Context) error, closeFunc func()) Lifecycle {
	return &lifecycleWrapper{openFunc: openFunc, closeFunc: closeFunc}
}

func (s *lifecycleWrapper) Open(ctx context.Context) error {
	if s.openFunc != nil {
		return s.openFunc(ctx)
	}
	return nil
}

func (s *lifecycleWrapper) Close() {
	if s.closeFunc != nil {
		s.closeFunc()
	}
}
