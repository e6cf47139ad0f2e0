package zip

import (
	"context"
	"fmt"
	"io"

	"github.com/shpandrak/shpanzip/internal/util"
)

// Take limits p to at most n items. It does not pull p again once n items were produced.
func Take[T any](p Producer[T], n int) Producer[T] {
	if n < 0 {
		return Error[T](fmt.Errorf("take %d: %w", n, ErrNegativeLimit))
	}
	return &takeProducer[T]{src: p, left: n}
}

type takeProducer[T any] struct {
	src  Producer[T]
	left int
}

func (t *takeProducer[T]) Emit(ctx context.Context) (T, error) {
	if t.left == 0 {
		return util.DefaultValue[T](), io.EOF
	}
	v, err := t.src.Emit(ctx)
	if err != nil {
		return util.DefaultValue[T](), err
	}
	t.left--
	return v, nil
}

func (t *takeProducer[T]) SizeHint() SizeHint {
	h := t.src.SizeHint()
	return SizeHint{
		Lower: min(h.Lower, t.left),
		Upper: util.MinOptional(h.Upper, util.Pointer(t.left)),
	}
}

func (t *takeProducer[T]) Open(ctx context.Context) error {
	return openAll(ctx, t.src)
}

func (t *takeProducer[T]) Close() {
	closeAll(t.src)
}

// WithSizeHint overrides the size hint of p, for producers that know more about their source than the adapter does.
func WithSizeHint[T any](p Producer[T], hint func() SizeHint) Producer[T] {
	return &hintedProducer[T]{src: p, hint: hint}
}

type hintedProducer[T any] struct {
	src  Producer[T]
	hint func() SizeHint
}

func (h *hintedProducer[T]) Emit(ctx context.Context) (T, error) {
	return h.src.Emit(ctx)
}

func (h *hintedProducer[T]) SizeHint() SizeHint {
	return h.hint()
}

func (h *hintedProducer[T]) Open(ctx context.Context) error {
	return openAll(ctx, h.src)
}

func (h *hintedProducer[T]) Close() {
	closeAll(h.src)
}
