package zip

import (
	"context"
	"io"

	"github.com/shpandrak/shpanzip/internal/util"
)

// Just produces the given values in order.
func Just[T any](values ...T) Producer[T] {
	return &justProducer[T]{slc: values}
}

type justProducer[T any] struct {
	slc []T
}

func (j *justProducer[T]) Emit(ctx context.Context) (T, error) {
	if ctx.Err() != nil {
		return util.DefaultValue[T](), ctx.Err()
	}
	if len(j.slc) == 0 {
		return util.DefaultValue[T](), io.EOF
	}
	v := j.slc[0]
	j.slc = j.slc[1:]
	return v, nil
}

func (j *justProducer[T]) SizeHint() SizeHint {
	return Exact(len(j.slc))
}
