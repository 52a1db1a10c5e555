// Copyright 2020 Aleksandr Demakin. All rights reserved.

package mathutil

import (
	"fmt"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountDigits(t *testing.T) {
	a := assert.New(t)
	values := []uint64{
		0, 1, 2, 3, 7, 8, 9, 10, 11, 15, 16, 99, 100, 255, 256, 1000,
		math.MaxInt32, math.MaxUint32, math.MaxInt64, 1 << 63, math.MaxUint64,
	}
	for radix := 2; radix <= 36; radix++ {
		for _, v := range values {
			a.Equal(len(strconv.FormatUint(v, radix)), CountDigits(v, radix), "%d in radix %d", v, radix)
		}
	}
	a.Equal(1, CountDigits(255, 256))
	a.Equal(2, CountDigits(256, 256))
	a.Equal(8, CountDigits(math.MaxUint64, 256))
}

func TestDecimalDigits(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v   uint64
		res int
	}{
		{0, 1},
		{9, 1},
		{10, 2},
		{999999999999999999, 18},
		{1000000000000000000, 19},
		{math.MaxUint64, 20},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, DecimalDigits(test.v))
		})
	}
}

func TestMagnitude(t *testing.T) {
	a := assert.New(t)
	a.Equal(uint64(1<<63), Magnitude(int64(math.MinInt64)))
	a.Equal(uint64(math.MaxInt64), Magnitude(int64(math.MaxInt64)))
	a.Equal(uint64(128), Magnitude(int8(math.MinInt8)))
	a.Equal(uint64(math.MaxUint64), Magnitude(uint64(math.MaxUint64)))
	a.Equal(uint64(0), Magnitude(0))
	a.Equal(uint64(5), Magnitude(-5))
}

func TestIntLimits(t *testing.T) {
	a := assert.New(t)

	lo8, hi8 := IntLimits[int8]()
	a.Equal(int8(math.MinInt8), lo8)
	a.Equal(int8(math.MaxInt8), hi8)

	lo32, hi32 := IntLimits[int32]()
	a.Equal(int32(math.MinInt32), lo32)
	a.Equal(int32(math.MaxInt32), hi32)

	lo64, hi64 := IntLimits[int64]()
	a.Equal(int64(math.MinInt64), lo64)
	a.Equal(int64(math.MaxInt64), hi64)

	ulo, uhi := IntLimits[uint16]()
	a.Equal(uint16(0), ulo)
	a.Equal(uint16(math.MaxUint16), uhi)

	ulo64, uhi64 := IntLimits[uint64]()
	a.Equal(uint64(0), ulo64)
	a.Equal(uint64(math.MaxUint64), uhi64)

	type myInt int16
	mlo, mhi := IntLimits[myInt]()
	a.Equal(myInt(math.MinInt16), mlo)
	a.Equal(myInt(math.MaxInt16), mhi)

	a.True(IsSigned[int]())
	a.False(IsSigned[uintptr]())
	a.Equal(8, IntBits[uint8]())

	mlo64, mhi64 := MaxMagnitude[int64]()
	a.Equal(uint64(1<<63), mlo64)
	a.Equal(uint64(math.MaxInt64), mhi64)
}

func BenchmarkCountDigits(b *testing.B) {
	var dummy int
	for i := 0; i < b.N; i++ {
		dummy += CountDigits(uint64(i), 2) + CountDigits(uint64(i), 10) + CountDigits(uint64(i), 16)
	}
	// this metric is just to prevent unwanted optimisations in calculations of `dummy.`
	b.ReportMetric(float64(dummy), "dummy_metric")
}
