// Copyright 2020 Aleksandr Demakin. All rights reserved.

package inrange

import (
	"reflect"
	"sync"

	"golang.org/x/exp/constraints"

	"github.com/avdva/inrange/internal/check"
	"github.com/avdva/inrange/internal/decomp"
	"github.com/avdva/inrange/internal/fpclass"
	"github.com/avdva/inrange/internal/mathutil"
)

type rangeKind uint8

const (
	floatForInt rangeKind = iota
	intForFloat
	floatForFloat
	intForInt
)

// rangeKey identifies a boundary computation.
// Format names are part of the key, because one Go type may carry several formats.
type rangeKey struct {
	kind     rangeKind
	dst, src reflect.Type
	dstFmt   string
	srcFmt   string
}

// bounds memoizes computed ranges. Computations are pure,
// so a value computed twice by racing goroutines is the same.
var bounds sync.Map

func cached[T any](key rangeKey, compute func() T) T {
	if v, ok := bounds.Load(key); ok {
		return v.(T)
	}
	v, _ := bounds.LoadOrStore(key, compute())
	return v.(T)
}

// floatRangeForInt returns values of format ff, that are in range of I.
func floatRangeForInt[I constraints.Integer, F constraints.Float](ff fpclass.Format[F]) Range[F] {
	key := rangeKey{kind: floatForInt, dst: reflect.TypeOf((*I)(nil)).Elem(), src: reflect.TypeOf((*F)(nil)).Elem(), srcFmt: ff.Name}
	return cached(key, func() Range[F] {
		return computeFloatRangeForInt[I](ff)
	})
}

func computeFloatRangeForInt[I constraints.Integer, F constraints.Float](ff fpclass.Format[F]) Range[F] {
	ilo, ihi := mathutil.MaxMagnitude[I]()
	capacity := max(ff.Digits, mathutil.CountDigits(ilo, ff.Radix), mathutil.CountDigits(ihi, ff.Radix))
	imin, imax := intLimitReps[I](ff.Radix, capacity)
	fmin, fmax := floatLimitReps(ff, capacity)
	return Range[F]{
		Min: decomp.ToFloat(decomp.Max(fmin, imin), ff),
		Max: decomp.ToFloat(decomp.Min(fmax, imax), ff),
	}
}

// intRangeForFloat returns values of I, that are in range of format ff.
func intRangeForFloat[F constraints.Float, I constraints.Integer](ff fpclass.Format[F]) Range[I] {
	key := rangeKey{kind: intForFloat, dst: reflect.TypeOf((*F)(nil)).Elem(), src: reflect.TypeOf((*I)(nil)).Elem(), dstFmt: ff.Name}
	return cached(key, func() Range[I] {
		return computeIntRangeForFloat[F, I](ff)
	})
}

func computeIntRangeForFloat[F constraints.Float, I constraints.Integer](ff fpclass.Format[F]) Range[I] {
	ilo, ihi := mathutil.MaxMagnitude[I]()
	capacity := max(ff.Digits, mathutil.CountDigits(ilo, ff.Radix), mathutil.CountDigits(ihi, ff.Radix))
	imin, imax := intLimitReps[I](ff.Radix, capacity)
	fmin, fmax := floatLimitReps(ff, capacity)
	res := Range[I]{}
	res.Min, res.Max = mathutil.IntLimits[I]()
	if imin.Less(fmin) {
		// fmin > imin, so the integer part of fmin fits I.
		res.Min = toIntSaturated[I](fmin)
	}
	if fmax.Less(imax) {
		res.Max = toIntSaturated[I](fmax)
	}
	return res
}

// floatRangeForFloat returns values of format sf, that are in range of format df.
func floatRangeForFloat[D, S constraints.Float](df fpclass.Format[D], sf fpclass.Format[S]) Range[S] {
	key := rangeKey{kind: floatForFloat, dst: reflect.TypeOf((*D)(nil)).Elem(), src: reflect.TypeOf((*S)(nil)).Elem(), dstFmt: df.Name, srcFmt: sf.Name}
	return cached(key, func() Range[S] {
		return computeFloatRangeForFloat(df, sf)
	})
}

func computeFloatRangeForFloat[D, S constraints.Float](df fpclass.Format[D], sf fpclass.Format[S]) Range[S] {
	check.That(df.Radix == sf.Radix, "radices of %s (%d) and %s (%d) must match", df.Name, df.Radix, sf.Name, sf.Radix)
	capacity := max(df.Digits, sf.Digits)
	dmin, dmax := floatLimitReps(df, capacity)
	smin, smax := floatLimitReps(sf, capacity)
	return Range[S]{
		Min: decomp.ToFloat(decomp.Max(dmin, smin), sf),
		Max: decomp.ToFloat(decomp.Min(dmax, smax), sf),
	}
}

// intRangeForInt returns values of S, that are in range of D.
func intRangeForInt[D, S constraints.Integer]() Range[S] {
	key := rangeKey{kind: intForInt, dst: reflect.TypeOf((*D)(nil)).Elem(), src: reflect.TypeOf((*S)(nil)).Elem()}
	return cached(key, computeIntRangeForInt[D, S])
}

func computeIntRangeForInt[D, S constraints.Integer]() Range[S] {
	const radix, capacity = 2, 64
	dmin, dmax := intLimitReps[D](radix, capacity)
	smin, smax := intLimitReps[S](radix, capacity)
	return Range[S]{
		Min: toIntSaturated[S](decomp.Max(dmin, smin)),
		Max: toIntSaturated[S](decomp.Min(dmax, smax)),
	}
}

func intLimitReps[I constraints.Integer](radix, capacity int) (lowest, highest decomp.Rep) {
	lo, hi := mathutil.IntLimits[I]()
	return decomp.FromInt(lo, radix, capacity), decomp.FromInt(hi, radix, capacity)
}

func floatLimitReps[F constraints.Float](ff fpclass.Format[F], capacity int) (lowest, highest decomp.Rep) {
	return decomp.FromFloat(ff, ff.Lowest(), capacity), decomp.FromFloat(ff, ff.Max(), capacity)
}

// toIntSaturated converts r to I. Values out of I's range saturate to its extremes.
func toIntSaturated[I constraints.Integer](r decomp.Rep) I {
	v, _ := decomp.ToInt[I](r)
	return v
}
