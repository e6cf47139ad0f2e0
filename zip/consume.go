package zip

import (
	"context"
	"io"
	"iter"
)

// maxPreallocation caps how much Collect trusts a lower bound, infinite producers report math.MaxInt.
const maxPreallocation = 1 << 16

// Consume opens p (when it implements Lifecycle), applies f to each item until p is exhausted and closes it.
// It returns the first error of either p or f. Exhaustion itself is not an error.
// For infinite producers, it will block until ctx is cancelled or an error occurs.
func Consume[T any](ctx context.Context, p Producer[T], f func(T) error) error {
	if l, ok := p.(Lifecycle); ok {
		if err := l.Open(ctx); err != nil {
			return err
		}
		defer l.Close()
	}

	for {
		// Make sure to check if the context is done before trying to get the next item
		if ctx.Err() != nil {
			return ctx.Err()
		}
		v, err := p.Emit(ctx)
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if err := f(v); err != nil {
			return err
		}
	}
}

// Collect drains p into a slice, pre-allocated from the lower bound of its size hint.
func Collect[T any](ctx context.Context, p Producer[T]) ([]T, error) {
	result := make([]T, 0, min(p.SizeHint().Lower, maxPreallocation))
	err := Consume(ctx, p, func(v T) error {
		result = append(result, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// MustCollect is a convenience function that panics if p errors.
// should be used for testing purpose or when producers are static (e.g. Just)
func MustCollect[T any](p Producer[T]) []T {
	result, err := Collect(context.Background(), p)
	if err != nil {
		panic(err)
	}
	return result
}

// Count drains p and returns the number of items it produced.
func Count[T any](ctx context.Context, p Producer[T]) (int, error) {
	count := 0
	err := Consume(ctx, p, func(T) error {
		count++
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// All returns a range-over-func view of p.
// A failure is yielded once, as the last pair, with the zero value of T.
func All[T any](ctx context.Context, p Producer[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		stopped := false
		err := Consume(ctx, p, func(v T) error {
			if !yield(v, nil) {
				stopped = true
				return errStopIteration
			}
			return nil
		})
		if err != nil && !stopped {
			var zero T
			yield(zero, err)
		}
	}
}

type stopIteration struct{}

func (stopIteration) Error() string {
	return "iteration stopped"
}

var errStopIteration error = stopIteration{}
