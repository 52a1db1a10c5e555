// Copyright 2020 Aleksandr Demakin. All rights reserved.

package decomp

import (
	"math"
	"math/bits"

	"golang.org/x/exp/constraints"

	"github.com/avdva/inrange/internal/check"
	"github.com/avdva/inrange/internal/fpclass"
	"github.com/avdva/inrange/internal/mathutil"
)

// FromFloat decomposes f into a rep with the format's radix and given capacity.
// The result is exact if capacity >= format.Digits.
func FromFloat[F constraints.Float](format fpclass.Format[F], f F, capacity int) Rep {
	p := format.Primitives()
	r := newRep(format.Radix, capacity, p.Classify(f), p.Signbit(f))
	r.exp = p.Ilogb(f)
	if r.category != fpclass.Normal && r.category != fpclass.Subnormal {
		return r
	}
	if r.neg {
		f = -f
	}
	// normalize, so that 1 <= f < radix.
	if r.exp == math.MinInt {
		f = p.Scalbn(f, math.MaxInt) * F(format.Radix)
	} else {
		f = p.Scalbn(f, -r.exp)
	}
	// extract digits, most significant first.
	radix := F(format.Radix)
	for d := 0; d < min(format.Digits, capacity); d++ {
		digit := int(f)
		r.digits[d] = uint8(digit)
		f -= F(digit)
		if f == 0 {
			break
		}
		f *= radix
	}
	return r
}

// ToFloat reconstructs a value of the format from r.
// Exponents at or above format.MaxExp saturate to infinity.
// Panics if the radix differs from the format's one, or if the result
// needs infinity or NaN, that the format does not support.
func ToFloat[F constraints.Float](r Rep, format fpclass.Format[F]) F {
	check.That(r.radix == format.Radix, "radix %d does not match %s radix %d", r.radix, format.Name, format.Radix)
	p := format.Primitives()
	var f F
	switch r.category {
	case fpclass.Zero:
	case fpclass.Subnormal, fpclass.Normal:
		if r.exp >= format.MaxExp {
			check.That(format.HasInf, "%s has no infinity", format.Name)
			f = F(math.Inf(1))
			break
		}
		for d := 0; d < min(format.Digits, r.capacity); d++ {
			f += p.Scalbn(F(r.digits[d]), -d)
		}
		f = p.Scalbn(f, r.exp)
	case fpclass.Infinite:
		check.That(format.HasInf, "%s has no infinity", format.Name)
		f = F(math.Inf(1))
	case fpclass.NaN:
		check.That(format.HasNaN, "%s has no NaN", format.Name)
		f = F(math.NaN())
	}
	if r.neg {
		f = format.Copysign(f, true)
	}
	return f
}

// FromInt decomposes i into a rep with given radix and capacity.
// Digits beyond the capacity are dropped: the result is truncated toward zero,
// never rounded.
func FromInt[I constraints.Integer](i I, radix, capacity int) Rep {
	if i == 0 {
		return newRep(radix, capacity, fpclass.Zero, false)
	}
	r := newRep(radix, capacity, fpclass.Normal, i < 0)
	u := mathutil.Magnitude(i)
	n := mathutil.CountDigits(u, radix)
	// extract digits, least significant first.
	for d := n - 1; d >= 0; d-- {
		if d < capacity {
			r.digits[d] = uint8(u % uint64(radix))
		}
		u /= uint64(radix)
	}
	r.exp = n - 1
	return r
}

// ToInt returns the integer part of r, truncated toward zero.
// If the value does not fit I, the result saturates to I's nearest extreme and ok is false.
// NaN returns (0, false).
func ToInt[I constraints.Integer](r Rep) (v I, ok bool) {
	lowest, highest := mathutil.IntLimits[I]()
	saturated := highest
	if r.neg {
		saturated = lowest
	}
	switch r.category {
	case fpclass.Zero:
		return 0, true
	case fpclass.NaN:
		return 0, false
	case fpclass.Infinite:
		return saturated, false
	}
	if r.exp < 0 {
		return 0, true
	}
	var u uint64
	radix := uint64(r.radix)
	for d := 0; d <= r.exp; d++ {
		hi, lo := bits.Mul64(u, radix)
		lo, carry := bits.Add64(lo, uint64(r.Digit(d)), 0)
		if hi != 0 || carry != 0 {
			return saturated, false
		}
		u = lo
	}
	loMag, hiMag := mathutil.MaxMagnitude[I]()
	if r.neg {
		if u > loMag {
			return saturated, false
		}
		return -I(u), true
	}
	if u > hiMag {
		return saturated, false
	}
	return I(u), true
}
