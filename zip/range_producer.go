package zip

import (
	"context"
	"io"
	"math"

	"github.com/shpandrak/shpanzip/internal/util"
	"golang.org/x/exp/constraints"
)

// Range produces start, start+1, ... up to but not including end.
// When end <= start nothing is produced.
func Range[N constraints.Integer](start, end N) Producer[N] {
	return &rangeProducer[N]{curr: start, end: end}
}

type rangeProducer[N constraints.Integer] struct {
	curr N
	end  N
}

func (r *rangeProducer[N]) Emit(ctx context.Context) (N, error) {
	if ctx.Err() != nil {
		return util.DefaultValue[N](), ctx.Err()
	}
	if r.curr >= r.end {
		return util.DefaultValue[N](), io.EOF
	}
	v := r.curr
	r.curr++
	return v, nil
}

func (r *rangeProducer[N]) SizeHint() SizeHint {
	if r.curr >= r.end {
		return Exact(0)
	}
	// Converting to uint64 sign-extends, so the difference is exact for every N since end > curr
	left := uint64(r.end) - uint64(r.curr)
	if left > math.MaxInt {
		return SizeHint{Lower: math.MaxInt}
	}
	return Exact(int(left))
}
