package zip

import (
	"context"
	"io"

	"github.com/shpandrak/shpanzip/internal/util"
)

func Empty[T any]() Producer[T] {
	return emptyProducer[T]{}
}

type emptyProducer[T any] struct{}

func (emptyProducer[T]) Emit(_ context.Context) (T, error) {
	return util.DefaultValue[T](), io.EOF
}

func (emptyProducer[T]) SizeHint() SizeHint {
	return Exact(0)
}
