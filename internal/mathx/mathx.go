// Package mathx holds small generic integer helpers for the timing maths.
package mathx

import "golang.org/x/exp/constraints"

// Between reports lo <= v && v <= hi (order-insensitive).
func Between[T constraints.Ordered](v, lo, hi T) bool {
	if hi < lo {
		lo, hi = hi, lo
	}
	return v >= lo && v <= hi
}

// Abs for signed integers.
func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// TruncDiv returns a/b truncated toward zero, the rule C applies when a
// double is converted to an integer type. Go's integer division already
// truncates toward zero; b == 0 yields 0.
func TruncDiv[T constraints.Signed](a, b T) T {
	if b == 0 {
		return 0
	}
	return a / b
}
