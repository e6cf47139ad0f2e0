package zip

import (
	"context"
	"io"
	"iter"

	"github.com/shpandrak/shpanzip/internal/util"
)

// FromIterator adapts an iter.Seq into a producer.
// The sequence is pulled lazily; Close stops it if it was not fully consumed.
// Consume, Collect, Count and All close it. Callers driving Emit directly must call Close themselves,
// otherwise the goroutine behind iter.Pull is never released.
func FromIterator[T any](seq iter.Seq[T]) Producer[T] {
	return &iteratorProducer[T]{seq: seq}
}

type iteratorProducer[T any] struct {
	seq  iter.Seq[T]
	next func() (T, bool)
	stop func()
}

func (it *iteratorProducer[T]) Open(_ context.Context) error {
	if it.next == nil {
		it.next, it.stop = iter.Pull(it.seq)
	}
	return nil
}

func (it *iteratorProducer[T]) Close() {
	if it.stop != nil {
		it.stop()
	}
}

func (it *iteratorProducer[T]) Emit(ctx context.Context) (T, error) {
	if ctx.Err() != nil {
		return util.DefaultValue[T](), ctx.Err()
	}
	if it.next == nil {
		// Not opened by a consumer, pull on first use
		it.next, it.stop = iter.Pull(it.seq)
	}
	v, ok := it.next()
	if !ok {
		return util.DefaultValue[T](), io.EOF
	}
	return v, nil
}

func (it *iteratorProducer[T]) SizeHint() SizeHint {
	return UnknownSize()
}
