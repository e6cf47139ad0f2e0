package zip

import (
	"math"

	"github.com/shpandrak/shpanzip/internal/util"
)

// SizeHint holds the bounds on the remaining length of a producer.
// Lower is never negative, a nil Upper means there is no known upper bound.
type SizeHint struct {
	Lower int
	Upper *int
}

// Exact is the hint of a producer that knows exactly how many items it has left.
func Exact(n int) SizeHint {
	n = max(n, 0)
	return SizeHint{Lower: n, Upper: util.Pointer(n)}
}

// AtLeast is the hint of a producer that guarantees n more items but does not know its end.
func AtLeast(n int) SizeHint {
	return SizeHint{Lower: max(n, 0)}
}

// UnknownSize guarantees nothing.
func UnknownSize() SizeHint {
	return SizeHint{}
}

// Unbounded is the hint of an infinite producer.
func Unbounded() SizeHint {
	return SizeHint{Lower: math.MaxInt}
}

// IsExact reports whether both bounds are known and equal.
func (h SizeHint) IsExact() bool {
	return h.Upper != nil && *h.Upper == h.Lower
}

// UpperBoundPolicy decides how a zip derives its upper bound from the bounds of its producers.
type UpperBoundPolicy int

const (
	// UpperBoundUnknown never reports an upper bound, even when all producers know theirs.
	UpperBoundUnknown UpperBoundPolicy = iota

	// UpperBoundMin reports the smallest upper bound when every producer reports one.
	UpperBoundMin
)

// combineSizeHints folds the hints of the producers of a zip into the hint of the zip itself.
// The lower bound is the smallest lower bound, since the scarcest producer ends the zip.
func combineSizeHints(policy UpperBoundPolicy, hints ...SizeHint) SizeHint {
	if len(hints) == 0 {
		return Exact(0)
	}
	ret := SizeHint{Lower: hints[0].Lower, Upper: hints[0].Upper}
	allBounded := hints[0].Upper != nil
	for _, h := range hints[1:] {
		ret.Lower = min(ret.Lower, h.Lower)
		if h.Upper == nil {
			allBounded = false
			continue
		}
		ret.Upper = util.MinOptional(ret.Upper, h.Upper)
	}
	if policy != UpperBoundMin || !allBounded {
		ret.Upper = nil
	}
	return ret
}
