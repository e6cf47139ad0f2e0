package util

func DefaultValue[T any]() T {
	var ret T
	return ret
}

func Identity[T any]() func(v T) T {
	return func(v T) T {
		return v
	}
}

func Pointer[T any](v T) *T {
	return &v
}

// MinOptional returns the smaller of two optional bounds, where nil means "unbounded".
func MinOptional(one, other *int) *int {
	if one == nil {
		return other
	}
	if other == nil {
		return one
	}
	return Pointer(min(*one, *other))
}
