// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fpclass

import (
	"math"
	"math/bits"

	"github.com/x448/float16"
)

const (
	halfMantBits = 10
	halfExpMask  = 0x1f
	halfBias     = 15
	// the smallest subnormal is 2^-24.
	halfSubnormalExp = -halfBias - halfMantBits + 1
)

// binary16 implements Primitives for IEEE half-precision values carried in float32.
// Every binary16 value is exactly representable in float32.
type binary16 struct{}

func halfFields(f float32) (h float16.Float16, exp, mant uint16) {
	h = float16.Fromfloat32(f)
	b := h.Bits()
	return h, b >> halfMantBits & halfExpMask, b & (1<<halfMantBits - 1)
}

func (binary16) Classify(f float32) Category {
	h, exp, mant := halfFields(f)
	switch {
	case h.IsNaN():
		return NaN
	case h.IsInf(0):
		return Infinite
	case exp == 0 && mant == 0:
		return Zero
	case exp == 0:
		return Subnormal
	default:
		return Normal
	}
}

func (binary16) Signbit(f float32) bool {
	return float16.Fromfloat32(f).Signbit()
}

func (p binary16) Ilogb(f float32) int {
	_, exp, mant := halfFields(f)
	switch p.Classify(f) {
	case Zero:
		return ILogbZero
	case Infinite:
		return ILogbInf
	case NaN:
		return ILogbNaN
	case Subnormal:
		return bits.Len16(mant) - 1 + halfSubnormalExp
	}
	return int(exp) - halfBias
}

func (binary16) Scalbn(f float32, exp int) float32 {
	return float32(math.Ldexp(float64(f), max(-scaleLimit, min(exp, scaleLimit))))
}
