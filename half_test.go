// Copyright 2020 Aleksandr Demakin. All rights reserved.

package inrange

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/x448/float16"

	"github.com/avdva/inrange/internal/fpclass"
)

func half(f float32) float16.Float16 {
	return float16.Fromfloat32(f)
}

func TestHalfRanges(t *testing.T) {
	a := assert.New(t)
	a.Equal(Range[float32]{Min: -65504, Max: 65504}, floatRangeForInt[int32](fpclass.Binary16))
	a.Equal(Range[float32]{Min: -128, Max: 127}, floatRangeForInt[int8](fpclass.Binary16))
	a.Equal(Range[float32]{Min: 0, Max: 65504}, floatRangeForInt[uint16](fpclass.Binary16))
	a.Equal(Range[int32]{Min: -65504, Max: 65504}, intRangeForFloat[float32, int32](fpclass.Binary16))
	a.Equal(Range[uint64]{Min: 0, Max: 65504}, intRangeForFloat[float32, uint64](fpclass.Binary16))
	a.Equal(Range[int16]{Min: math.MinInt16, Max: math.MaxInt16}, intRangeForFloat[float32, int16](fpclass.Binary16))
	a.Equal(Range[float64]{Min: -65504, Max: 65504}, floatRangeForFloat(fpclass.Binary16, fpclass.IEEE[float64]()))
}

func TestHalfFitsInt(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		h    float16.Float16
		fits bool
	}{
		{half(0), true},
		{half(-0.5), true},
		{half(127), true},
		{half(127.5), false},
		{half(128), false},
		{half(-128), true},
		{half(-129), false},
		{float16.Inf(1), false},
		{float16.NaN(), false},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.fits, HalfFitsInt[int8](test.h))
		})
	}
	a.False(HalfFitsInt[uint8](half(-1)))
	a.True(HalfFitsInt[uint8](half(float32(math.Copysign(0, -1)))))
	a.False(HalfFitsInt[int16](half(65504)))
	a.True(HalfFitsInt[uint16](half(65504)))
}

func TestHalf_AllValues(t *testing.T) {
	a := assert.New(t)
	for b := 0; b < 1<<16; b++ {
		h := float16.Frombits(uint16(b))
		finite := h.IsFinite()
		a.Equal(finite, HalfFitsInt[int32](h), "%v", h)
		a.Equal(finite, HalfFitsFloat[float32](h), "%v", h)
		a.Equal(finite, HalfFitsFloat[float64](h), "%v", h)
		a.Equal(finite, FloatFitsHalf(h.Float32()), "%v", h)
	}
}

func TestIntFitsHalf(t *testing.T) {
	a := assert.New(t)
	a.True(IntFitsHalf(int32(65504)))
	a.False(IntFitsHalf(int32(65505)))
	a.True(IntFitsHalf(-65504))
	a.False(IntFitsHalf(-65505))
	a.True(IntFitsHalf(uint8(255)))
	a.True(IntFitsHalf(int16(math.MinInt16)))
	a.False(IntFitsHalf(uint64(math.MaxUint64)))
	a.False(IntFitsHalf(int64(math.MinInt64)))
}

func TestFloatFitsHalf(t *testing.T) {
	a := assert.New(t)
	a.True(FloatFitsHalf(float32(65504)))
	a.False(FloatFitsHalf(float32(65505)))
	a.False(FloatFitsHalf(float32(70000)))
	a.True(FloatFitsHalf(-65504.0))
	a.False(FloatFitsHalf(math.Nextafter(-65504, math.Inf(-1))))
	a.True(FloatFitsHalf(1e-10))
	a.False(FloatFitsHalf(math.Inf(1)))
	a.False(FloatFitsHalf(float32(math.NaN())))
}
