// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package inrange checks, whether a numeric value is in range of another numeric type,
// for every combination of integer and floating-point types.
//
// Naive checks like `f <= math.MaxInt32` are wrong, because the boundary is rounded
// when converted: float32(math.MaxInt32) is 2^31, just outside int32's range.
// Instead, the package decomposes the extreme values of both types into an exact
// radix-digit representation, picks the tighter bounds, and converts them to the type
// of the checked value without rounding. A check is then two ordinary comparisons.
// Bounds are computed once per pair of types and reused.
//
// Infinities and NaNs are never in range.
package inrange

import (
	"golang.org/x/exp/constraints"

	"github.com/avdva/inrange/internal/fpclass"
)

// Number is any integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Range is an inclusive interval of values of type T.
type Range[T Number] struct {
	Min, Max T
}

// Contains returns true if Min <= v <= Max.
// It is false for NaNs.
func (r Range[T]) Contains(v T) bool {
	return r.Min <= v && v <= r.Max
}

// FloatRangeForInt returns the lowest and the highest values of F in range of I.
func FloatRangeForInt[I constraints.Integer, F constraints.Float]() Range[F] {
	return floatRangeForInt[I](fpclass.IEEE[F]())
}

// IntRangeForFloat returns the lowest and the highest values of I in range of F.
func IntRangeForFloat[F constraints.Float, I constraints.Integer]() Range[I] {
	return intRangeForFloat[F, I](fpclass.IEEE[F]())
}

// FloatRangeForFloat returns the lowest and the highest values of Src in range of Dst.
func FloatRangeForFloat[Dst, Src constraints.Float]() Range[Src] {
	return floatRangeForFloat(fpclass.IEEE[Dst](), fpclass.IEEE[Src]())
}

// IntRangeForInt returns the lowest and the highest values of Src in range of Dst.
func IntRangeForInt[Dst, Src constraints.Integer]() Range[Src] {
	return intRangeForInt[Dst, Src]()
}

// FloatFitsInt returns true if f is in range of integer type I.
// f is compared with the extreme values of I, so 0.5 fits any integer type,
// while 255.5 does not fit uint8.
//
//	inrange.FloatFitsInt[int32](float32(math.MaxInt32)) // false, the value is 2^31
func FloatFitsInt[I constraints.Integer, F constraints.Float](f F) bool {
	return FloatRangeForInt[I, F]().Contains(f)
}

// IntFitsFloat returns true if i is in range of floating-point type F.
// The value may still be rounded when converted.
func IntFitsFloat[F constraints.Float, I constraints.Integer](i I) bool {
	return IntRangeForFloat[F, I]().Contains(i)
}

// FloatFitsFloat returns true if f is in range of floating-point type Dst.
// The value may still be rounded when converted.
func FloatFitsFloat[Dst, Src constraints.Float](f Src) bool {
	return FloatRangeForFloat[Dst, Src]().Contains(f)
}

// IntFitsInt returns true if i is in range of integer type Dst.
func IntFitsInt[Dst, Src constraints.Integer](i Src) bool {
	return IntRangeForInt[Dst, Src]().Contains(i)
}
