// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package fpclass classifies floating-point values of an IEEE-754-like format
// and extracts their sign and radix exponent.
//
// Every format offers two strategies with identical results:
// platform primitives, which rely on the bit layout of the format,
// and portable primitives, which only use ordinary arithmetic and comparisons
// and therefore work for any format described by its parameters.
package fpclass

import (
	"math"

	"golang.org/x/exp/constraints"
)

var (
	// Mode defines which primitives Format.Primitives returns, see Mode* constants.
	// This variable is not thread-safe, so this should be changed on program start.
	Mode = ModeAuto
)

const (
	// ModeAuto uses platform primitives when a format has them.
	ModeAuto = iota
	// ModePortable always uses portable primitives.
	ModePortable
)

// Sentinels returned by Ilogb for the values that have no exponent.
const (
	ILogbZero = math.MinInt32
	ILogbInf  = math.MaxInt32
	ILogbNaN  = math.MinInt32 + 1
)

// Category is a floating-point value class.
type Category uint8

// Value categories.
const (
	Zero Category = iota
	Subnormal
	Normal
	Infinite
	NaN
)

var categoryNames = [...]string{
	Zero:      "zero",
	Subnormal: "subnormal",
	Normal:    "normal",
	Infinite:  "infinite",
	NaN:       "nan",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "unknown"
}

// IsFinite returns true for zero, subnormal and normal categories.
func (c Category) IsFinite() bool {
	return c <= Normal
}

// Primitives are the introspection operations needed to decompose values of a format.
type Primitives[F constraints.Float] interface {
	// Classify returns the category of f.
	Classify(f F) Category
	// Signbit reports whether the sign bit of f is set.
	Signbit(f F) bool
	// Ilogb returns such e, that radix^e <= |f| < radix^(e+1) for finite nonzero f,
	// or one of the ILogb* sentinels.
	Ilogb(f F) int
	// Scalbn returns f*radix^exp.
	Scalbn(f F, exp int) F
}
