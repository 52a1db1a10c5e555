// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fpclass

import (
	"golang.org/x/exp/constraints"
)

// portable implements Primitives with arithmetic only.
// Loops are bounded by the exponent range of the format.
type portable[F constraints.Float] struct {
	radix     F
	minNormal F
	max       F
}

func (p portable[F]) finite(f F) bool {
	return -p.max <= f && f <= p.max
}

func (p portable[F]) Classify(f F) Category {
	switch {
	case f == 0:
		return Zero
	case -p.minNormal < f && f < p.minNormal:
		return Subnormal
	case p.finite(f):
		return Normal
	case f == f:
		return Infinite
	default:
		return NaN
	}
}

// Signbit is exact for every value except NaN, whose sign cannot be observed
// arithmetically and is reported as positive.
func (p portable[F]) Signbit(f F) bool {
	if f == 0 {
		return 1/f < 0
	}
	return f < 0
}

func (p portable[F]) Ilogb(f F) int {
	switch {
	case f == 0:
		return ILogbZero
	case p.finite(f):
	case f == f:
		return ILogbInf
	default:
		return ILogbNaN
	}
	if f < 0 {
		f = -f
	}
	exp := 0
	for ; f < 1; f *= p.radix {
		exp--
	}
	for ; f >= p.radix; f /= p.radix {
		exp++
	}
	return exp
}

func (p portable[F]) Scalbn(f F, exp int) F {
	if f == 0 || !p.finite(f) {
		return f
	}
	for ; exp < 0 && f != 0; exp++ {
		f /= p.radix
	}
	for ; exp > 0 && p.finite(f); exp-- {
		f *= p.radix
	}
	return f
}
