// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fpclass

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// ieeeLayout describes the bit layout of an IEEE-754 binary interchange format.
type ieeeLayout struct {
	mantBits uint
	expMask  uint64
}

var (
	layout32 = ieeeLayout{mantBits: 23, expMask: 0xff}
	layout64 = ieeeLayout{mantBits: 52, expMask: 0x7ff}
)

// ieee implements Primitives for float32 and float64 using their bit layouts.
type ieee[F constraints.Float] struct{}

func is32[F constraints.Float]() bool {
	return unsafe.Sizeof(F(0)) == 4
}

func (ieee[F]) fields(f F) (exp, mant uint64, l ieeeLayout) {
	var b uint64
	if is32[F]() {
		b, l = uint64(math.Float32bits(float32(f))), layout32
	} else {
		b, l = math.Float64bits(float64(f)), layout64
	}
	return b >> l.mantBits & l.expMask, b & (1<<l.mantBits - 1), l
}

func (p ieee[F]) Classify(f F) Category {
	exp, mant, l := p.fields(f)
	switch {
	case exp == l.expMask && mant != 0:
		return NaN
	case exp == l.expMask:
		return Infinite
	case exp == 0 && mant == 0:
		return Zero
	case exp == 0:
		return Subnormal
	default:
		return Normal
	}
}

func (ieee[F]) Signbit(f F) bool {
	return math.Signbit(float64(f))
}

// Ilogb widens f to float64, which keeps float32 subnormals exact and
// lets math.Ilogb report their true exponent.
func (p ieee[F]) Ilogb(f F) int {
	switch p.Classify(f) {
	case Zero:
		return ILogbZero
	case Infinite:
		return ILogbInf
	case NaN:
		return ILogbNaN
	}
	return math.Ilogb(float64(f))
}

// scaleLimit exceeds the exponent range of float64, so clamping to it
// keeps math.Ldexp from overflowing its exponent arithmetic.
const scaleLimit = 1 << 16

func (ieee[F]) Scalbn(f F, exp int) F {
	return F(math.Ldexp(float64(f), max(-scaleLimit, min(exp, scaleLimit))))
}
