// Copyright 2020 Aleksandr Demakin. All rights reserved.

package inrange

import (
	"github.com/pkg/errors"
	"github.com/x448/float16"
	"golang.org/x/exp/constraints"
)

// ErrRange is returned by conversions if a value is out of range of the target type.
var ErrRange = errors.New("value out of range")

func rangeError[T any](v interface{}) error {
	var t T
	return errors.Wrapf(ErrRange, "%v to %T", v, t)
}

// FloatToInt converts f to I, truncating the fractional part.
// Returns an error wrapping ErrRange if f is out of I's range, infinite or NaN.
func FloatToInt[I constraints.Integer, F constraints.Float](f F) (I, error) {
	if !FloatFitsInt[I](f) {
		return 0, rangeError[I](f)
	}
	return I(f), nil
}

// MustFloatToInt is like FloatToInt, but panics on error.
func MustFloatToInt[I constraints.Integer, F constraints.Float](f F) I {
	return must(FloatToInt[I](f))
}

// IntToFloat converts i to F, rounding to the nearest value.
// Returns an error wrapping ErrRange if i is out of F's range.
func IntToFloat[F constraints.Float, I constraints.Integer](i I) (F, error) {
	if !IntFitsFloat[F](i) {
		return 0, rangeError[F](i)
	}
	return F(i), nil
}

// FloatToFloat converts f to Dst, rounding to the nearest value.
// Returns an error wrapping ErrRange if f is out of Dst's range, infinite or NaN.
func FloatToFloat[Dst, Src constraints.Float](f Src) (Dst, error) {
	if !FloatFitsFloat[Dst](f) {
		return 0, rangeError[Dst](f)
	}
	return Dst(f), nil
}

// MustFloatToFloat is like FloatToFloat, but panics on error.
func MustFloatToFloat[Dst, Src constraints.Float](f Src) Dst {
	return must(FloatToFloat[Dst](f))
}

// IntToInt converts i to Dst.
// Returns an error wrapping ErrRange if i is out of Dst's range.
func IntToInt[Dst, Src constraints.Integer](i Src) (Dst, error) {
	if !IntFitsInt[Dst](i) {
		return 0, rangeError[Dst](i)
	}
	return Dst(i), nil
}

// MustIntToInt is like IntToInt, but panics on error.
func MustIntToInt[Dst, Src constraints.Integer](i Src) Dst {
	return must(IntToInt[Dst](i))
}

// HalfToInt converts h to I, truncating the fractional part.
func HalfToInt[I constraints.Integer](h float16.Float16) (I, error) {
	if !HalfFitsInt[I](h) {
		return 0, rangeError[I](h)
	}
	return I(h.Float32()), nil
}

// IntToHalf converts i to binary16, rounding to the nearest value.
func IntToHalf[I constraints.Integer](i I) (float16.Float16, error) {
	if !IntFitsHalf(i) {
		return 0, rangeError[float16.Float16](i)
	}
	// |i| <= 65504, so float32(i) is exact.
	return float16.Fromfloat32(float32(i)), nil
}

// FloatToHalf converts f to binary16.
// float64 values are rounded to float32 first, and then to binary16.
func FloatToHalf[Src constraints.Float](f Src) (float16.Float16, error) {
	if !FloatFitsHalf(f) {
		return 0, rangeError[float16.Float16](f)
	}
	return float16.Fromfloat32(float32(f)), nil
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
