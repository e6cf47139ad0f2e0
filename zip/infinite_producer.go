package zip

import (
	"context"

	"github.com/shpandrak/shpanzip/internal/util"
)

// Repeat produces v forever.
func Repeat[T any](v T) Producer[T] {
	return Iterate(v, util.Identity[T]())
}

// Iterate produces seed, next(seed), next(next(seed)), ... forever.
func Iterate[T any](seed T, next func(T) T) Producer[T] {
	return &iterateProducer[T]{curr: seed, next: next}
}

type iterateProducer[T any] struct {
	curr T
	next func(T) T
}

func (it *iterateProducer[T]) Emit(ctx context.Context) (T, error) {
	if ctx.Err() != nil {
		return util.DefaultValue[T](), ctx.Err()
	}
	v := it.curr
	it.curr = it.next(it.curr)
	return v, nil
}

func (it *iterateProducer[T]) SizeHint() SizeHint {
	return Unbounded()
}
