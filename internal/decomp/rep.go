// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package decomp implements an exact, radix-generic decomposition of
// floating-point and integer values into category, sign, exponent and digits.
//
// A Rep with radix R and capacity N represents
//
//	(-1)^sign * (d[0] + d[1]/R + ... + d[N-1]/R^(N-1)) * R^exponent
//
// for subnormal and normal categories.
// Reps are values: they are never mutated after construction.
package decomp

import (
	"strconv"
	"strings"

	"github.com/avdva/inrange/internal/check"
	"github.com/avdva/inrange/internal/fpclass"
)

const (
	// MaxDigits is the largest supported digit capacity.
	MaxDigits = 128
	// MaxRadix is the largest supported radix.
	MaxRadix = 256
)

// Rep is a decomposed numeric value.
type Rep struct {
	radix    int
	capacity int
	category fpclass.Category
	neg      bool
	exp      int
	digits   [MaxDigits]uint8
}

func newRep(radix, capacity int, category fpclass.Category, neg bool) Rep {
	check.That(2 <= radix && radix <= MaxRadix, "radix %d out of [2, %d]", radix, MaxRadix)
	check.That(1 <= capacity && capacity <= MaxDigits, "capacity %d out of [1, %d]", capacity, MaxDigits)
	return Rep{radix: radix, capacity: capacity, category: category, neg: neg}
}

// Radix returns the radix of the representation.
func (r Rep) Radix() int {
	return r.radix
}

// Cap returns the digit capacity.
func (r Rep) Cap() int {
	return r.capacity
}

// Category returns the value category.
func (r Rep) Category() fpclass.Category {
	return r.category
}

// Signbit returns true if the sign is negative, including negative zero.
func (r Rep) Signbit() bool {
	return r.neg
}

// Exponent returns the radix exponent of the leading digit.
// It is only meaningful for subnormal and normal values.
func (r Rep) Exponent() int {
	return r.exp
}

// Digit returns the digit at position i, most significant first.
// Positions beyond the capacity are zero.
func (r Rep) Digit(i int) int {
	if i < 0 || i >= r.capacity {
		return 0
	}
	return int(r.digits[i])
}

// Digits returns a copy of all digits.
func (r Rep) Digits() []uint8 {
	res := make([]uint8, r.capacity)
	copy(res, r.digits[:r.capacity])
	return res
}

func (r Rep) isNaN() bool {
	return r.category == fpclass.NaN
}

func (r Rep) isInf() bool {
	return r.category == fpclass.Infinite
}

func (r Rep) isZero() bool {
	return r.category == fpclass.Zero
}

func (r Rep) isPos() bool {
	return !r.neg && !r.isNaN() && !r.isZero()
}

func (r Rep) isNeg() bool {
	return r.neg && !r.isNaN() && !r.isZero()
}

func (r Rep) isPosInf() bool {
	return !r.neg && r.isInf()
}

func (r Rep) isNegInf() bool {
	return r.neg && r.isInf()
}

// String returns a debug representation, like `-1.0111e+4 (radix 2)`.
// Digits of radices above 36 are printed as decimal numbers in brackets.
func (r Rep) String() string {
	var builder strings.Builder
	if r.neg {
		builder.WriteRune('-')
	}
	switch r.category {
	case fpclass.Zero:
		builder.WriteRune('0')
	case fpclass.Infinite:
		builder.WriteString("inf")
	case fpclass.NaN:
		builder.WriteString("nan")
	default:
		last := r.capacity - 1
		for last > 0 && r.digits[last] == 0 {
			last--
		}
		for i := 0; i <= last; i++ {
			if i == 1 {
				builder.WriteRune('.')
			}
			r.writeDigit(&builder, r.digits[i])
		}
		builder.WriteRune('e')
		if r.exp >= 0 {
			builder.WriteRune('+')
		}
		builder.WriteString(strconv.Itoa(r.exp))
	}
	builder.WriteString(" (radix ")
	builder.WriteString(strconv.Itoa(r.radix))
	builder.WriteRune(')')
	return builder.String()
}

func (r Rep) writeDigit(builder *strings.Builder, d uint8) {
	if r.radix <= 36 {
		builder.WriteString(strconv.FormatUint(uint64(d), r.radix))
		return
	}
	builder.WriteRune('[')
	builder.WriteString(strconv.Itoa(int(d)))
	builder.WriteRune(']')
}
