// Copyright 2020 Aleksandr Demakin. All rights reserved.

package decomp

import (
	"github.com/avdva/inrange/internal/check"
)

// Less returns true if r < other.
// NaNs are unordered: Less returns false if either operand is NaN.
// Both operands must have the same radix and capacity.
func (r Rep) Less(other Rep) bool {
	check.That(r.radix == other.radix && r.capacity == other.capacity,
		"comparing reps of different shapes: radix %d/%d, capacity %d/%d", r.radix, other.radix, r.capacity, other.capacity)
	switch {
	case r.isNaN() || other.isNaN():
		return false
	case r.isInf() || other.isInf():
		return (r.isNegInf() && !other.isNegInf()) || // r == -inf && other > -inf
			(!r.isPosInf() && other.isPosInf()) // r < +inf && other == +inf
	case r.isZero() || other.isZero():
		return (r.isZero() && other.isPos()) || // r == 0 && other > 0
			(r.isNeg() && other.isZero()) // r < 0 && other == 0
	case r.neg != other.neg:
		return r.neg
	case r.exp != other.exp:
		if r.neg {
			return r.exp > other.exp
		}
		return r.exp < other.exp
	}
	for d := 0; d < r.capacity; d++ {
		if r.digits[d] != other.digits[d] {
			if r.neg {
				return r.digits[d] > other.digits[d]
			}
			return r.digits[d] < other.digits[d]
		}
	}
	return false
}

// Max returns the larger of a and b, or a if they are equal or unordered.
func Max(a, b Rep) Rep {
	if a.Less(b) {
		return b
	}
	return a
}

// Min returns the smaller of a and b, or a if they are equal or unordered.
func Min(a, b Rep) Rep {
	if b.Less(a) {
		return b
	}
	return a
}
