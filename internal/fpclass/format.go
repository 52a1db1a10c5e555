// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fpclass

import (
	"math"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

var (
	errBadFormat = errors.New("bad floating-point format")

	// Binary16 is IEEE-754 half precision, carried in float32.
	Binary16 = MustNewFormat[float32]("binary16", 2, 11, -13, 16, true, true, binary16{})
)

// Format describes a floating-point format whose values are carried in Go type F.
// The parameters follow the C numeric_limits convention.
type Format[F constraints.Float] struct {
	// Name identifies the format.
	Name string
	// Radix is the base of the significand.
	Radix int
	// Digits is the precision in radix digits.
	Digits int
	// MinExp is such, that Radix^(MinExp-1) is the smallest normal value.
	MinExp int
	// MaxExp is such, that Radix^MaxExp is the smallest power of Radix that overflows.
	MaxExp int
	// HasInf and HasNaN report support for infinities and quiet NaNs.
	HasInf, HasNaN bool

	max, minNormal F
	platform       Primitives[F]
}

// NewFormat returns a format for given parameters.
// platform may be nil, if the format has no platform primitives.
func NewFormat[F constraints.Float](name string, radix, digits, minExp, maxExp int, hasInf, hasNaN bool,
	platform Primitives[F]) (Format[F], error) {
	switch {
	case radix < 2 || radix > 256:
		return Format[F]{}, errors.Wrapf(errBadFormat, "%s: radix %d out of [2, 256]", name, radix)
	case digits < 1:
		return Format[F]{}, errors.Wrapf(errBadFormat, "%s: %d digits", name, digits)
	case minExp >= maxExp:
		return Format[F]{}, errors.Wrapf(errBadFormat, "%s: exponent range [%d, %d]", name, minExp, maxExp)
	}
	f := Format[F]{
		Name:     name,
		Radix:    radix,
		Digits:   digits,
		MinExp:   minExp,
		MaxExp:   maxExp,
		HasInf:   hasInf,
		HasNaN:   hasNaN,
		platform: platform,
	}
	f.computeLimits()
	if f.max == 0 || f.minNormal == 0 || f.max-f.max != 0 {
		return Format[F]{}, errors.Wrapf(errBadFormat, "%s: limits are not representable", name)
	}
	return f, nil
}

// MustNewFormat is like NewFormat, but panics on error.
func MustNewFormat[F constraints.Float](name string, radix, digits, minExp, maxExp int, hasInf, hasNaN bool,
	platform Primitives[F]) Format[F] {
	f, err := NewFormat(name, radix, digits, minExp, maxExp, hasInf, hasNaN, platform)
	if err != nil {
		panic(err)
	}
	return f
}

// IEEE returns binary32 format for 4-byte F and binary64 otherwise.
// Unlike NewFormat, it does not compute the limits, so it is cheap to call.
func IEEE[F constraints.Float]() Format[F] {
	f := Format[F]{Radix: 2, HasInf: true, HasNaN: true, max: maxCarrier[F](), platform: ieee[F]{}}
	if is32[F]() {
		var minNormal float32 = 0x1p-126
		f.Name, f.Digits, f.MinExp, f.MaxExp, f.minNormal = "binary32", 24, -125, 128, F(minNormal)
	} else {
		var minNormal float64 = 0x1p-1022
		f.Name, f.Digits, f.MinExp, f.MaxExp, f.minNormal = "binary64", 53, -1021, 1024, F(minNormal)
	}
	return f
}

// computeLimits computes the largest finite and the smallest normal values
// with arithmetic that is exact for radix-2 carriers.
func (f *Format[F]) computeLimits() {
	p := portable[F]{radix: F(f.Radix)}
	p.max, p.minNormal = maxCarrier[F](), 0
	// (radix - radix^(1-digits)) * radix^(MaxExp-1)
	var m F
	for d := 0; d < f.Digits; d++ {
		m += p.Scalbn(F(f.Radix-1), -d)
	}
	f.max = p.Scalbn(m, f.MaxExp-1)
	f.minNormal = p.Scalbn(1, f.MinExp-1)
}

func maxCarrier[F constraints.Float]() F {
	if is32[F]() {
		var v float32 = math.MaxFloat32
		return F(v)
	}
	var v float64 = math.MaxFloat64
	return F(v)
}

// Max returns the largest finite value.
func (f Format[F]) Max() F {
	return f.max
}

// Lowest returns the most negative finite value.
func (f Format[F]) Lowest() F {
	return -f.max
}

// SmallestNormal returns the smallest positive normal value.
func (f Format[F]) SmallestNormal() F {
	return f.minNormal
}

// Primitives returns platform primitives if the format has them and Mode allows it,
// portable primitives otherwise.
func (f Format[F]) Primitives() Primitives[F] {
	if Mode == ModePortable || f.platform == nil {
		return f.Portable()
	}
	return f.platform
}

// Portable returns arithmetic-only primitives for the format.
func (f Format[F]) Portable() Primitives[F] {
	return portable[F]{radix: F(f.Radix), minNormal: f.minNormal, max: f.max}
}

// Platform returns platform primitives of the format, or nil.
func (f Format[F]) Platform() Primitives[F] {
	return f.platform
}

// Copysign returns f with the sign of neg.
func (f Format[F]) Copysign(v F, neg bool) F {
	if f.Primitives().Signbit(v) != neg {
		return -v
	}
	return v
}
