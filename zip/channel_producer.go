package zip

import (
	"context"
	"io"
	"log/slog"

	"github.com/shpandrak/shpanzip/internal/util"
)

// FromChannel produces the values received from ch until it is closed.
func FromChannel[T any](ch <-chan T) Producer[T] {
	return &channelProducer[T]{ch: ch}
}

type channelProducer[T any] struct {
	ch <-chan T
}

func (c *channelProducer[T]) Emit(ctx context.Context) (T, error) {
	select {
	case <-ctx.Done():
		return util.DefaultValue[T](), ctx.Err()
	case v, ok := <-c.ch:
		if !ok {
			slog.Debug("Zip channel producer closed externally")
			return util.DefaultValue[T](), io.EOF
		}
		return v, nil
	}
}

// SizeHint guarantees the values already buffered in the channel.
func (c *channelProducer[T]) SizeHint() SizeHint {
	return AtLeast(len(c.ch))
}
