// Copyright 2020 Aleksandr Demakin. All rights reserved.

package mathutil

import (
	"math/bits"
	"unsafe"

	"golang.org/x/exp/constraints"
)

var (
	digitsHelper = [...]int{
		0, 0, 0, 0, 1, 1, 1, 2, 2, 2,
		3, 3, 3, 3, 4, 4, 4, 5, 5, 5,
		6, 6, 6, 6, 7, 7, 7, 8, 8, 8,
		9, 9, 9, 9, 10, 10, 10, 11, 11, 11,
		12, 12, 12, 12, 13, 13, 13, 14, 14, 14,
		15, 15, 15, 15, 16, 16, 16, 17, 17, 17,
		18, 18, 18, 18, 19,
	}

	decimalFactorTable = [...]uint64{ // up to 1e19
		1, 10, 100, 1000, 10000,
		100000, 1000000, 10000000, 100000000, 1000000000, 10000000000,
		100000000000, 1000000000000, 10000000000000, 100000000000000,
		1000000000000000, 10000000000000000, 100000000000000000,
		1000000000000000000, 10000000000000000000,
	}
)

// BinaryDigits returns the number of bits needed to represent 'value'.
func BinaryDigits(value uint64) int {
	return int(8*unsafe.Sizeof(uint64(0))) - bits.LeadingZeros64(value)
}

// DecimalDigits returns the number of decimal digits in 'value'.
// see https://stackoverflow.com/a/25934909
func DecimalDigits(value uint64) int {
	if value == 0 {
		return 1
	}
	digits := digitsHelper[BinaryDigits(value)]
	if value >= decimalFactorTable[digits] {
		digits++
	}
	return digits
}

// CountDigits returns the number of radix digits needed to represent 'value'.
// Zero needs one digit. Radix must be at least 2.
func CountDigits(value uint64, radix int) int {
	switch radix {
	case 2:
		if value == 0 {
			return 1
		}
		return BinaryDigits(value)
	case 10:
		return DecimalDigits(value)
	}
	r := uint64(radix)
	digits := 1
	for value >= r {
		digits++
		value /= r
	}
	return digits
}

// Magnitude returns |v| as an unsigned value.
// It is exact for the most negative value of any signed type.
func Magnitude[I constraints.Integer](v I) uint64 {
	u := uint64(v)
	if v < 0 {
		u = -u
	}
	return u
}

// IsSigned reports whether I is a signed integer type.
func IsSigned[I constraints.Integer]() bool {
	var z I
	return z-1 < z
}

// IntBits returns the width of I in bits.
func IntBits[I constraints.Integer]() int {
	return int(unsafe.Sizeof(I(0)) * 8)
}

// IntLimits returns the lowest and the highest values of I.
func IntLimits[I constraints.Integer]() (lowest, highest I) {
	n := IntBits[I]()
	if IsSigned[I]() {
		highest = I(uint64(1)<<(n-1) - 1)
		return -highest - 1, highest
	}
	return 0, I(^uint64(0) >> (64 - n))
}

// MaxMagnitude returns the magnitudes of the lowest and the highest values of I.
func MaxMagnitude[I constraints.Integer]() (lowest, highest uint64) {
	lo, hi := IntLimits[I]()
	return Magnitude(lo), Magnitude(hi)
}
