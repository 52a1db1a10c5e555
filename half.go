// Copyright 2020 Aleksandr Demakin. All rights reserved.

package inrange

import (
	"github.com/x448/float16"
	"golang.org/x/exp/constraints"

	"github.com/avdva/inrange/internal/fpclass"
)

// IEEE half-precision values are carried in float32, which represents all of them exactly.
// The range of binary16 is smaller than the ranges of 32- and 64-bit integers.

// HalfFitsInt returns true if h is in range of integer type I.
func HalfFitsInt[I constraints.Integer](h float16.Float16) bool {
	return floatRangeForInt[I](fpclass.Binary16).Contains(h.Float32())
}

// IntFitsHalf returns true if i is in range of binary16, that is |i| <= 65504.
func IntFitsHalf[I constraints.Integer](i I) bool {
	return intRangeForFloat[float32, I](fpclass.Binary16).Contains(i)
}

// HalfFitsFloat returns true if h is in range of floating-point type Dst.
// It is true for every finite h.
func HalfFitsFloat[Dst constraints.Float](h float16.Float16) bool {
	return floatRangeForFloat(fpclass.IEEE[Dst](), fpclass.Binary16).Contains(h.Float32())
}

// FloatFitsHalf returns true if f is in range of binary16.
func FloatFitsHalf[Src constraints.Float](f Src) bool {
	return floatRangeForFloat(fpclass.Binary16, fpclass.IEEE[Src]()).Contains(f)
}
