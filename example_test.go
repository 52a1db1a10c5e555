// Copyright 2020 Aleksandr Demakin. All rights reserved.

package inrange_test

import (
	"fmt"
	"math"

	"github.com/x448/float16"

	"github.com/avdva/inrange"
)

func ExampleFloatFitsInt() {
	// float32(math.MaxInt32) is rounded up to 2^31.
	f := float32(math.MaxInt32)
	fmt.Println(f <= math.MaxInt32, inrange.FloatFitsInt[int32](f))
	fmt.Println(inrange.FloatFitsInt[int32](float32(math.MinInt32)))
	fmt.Println(inrange.FloatFitsInt[uint8](math.NaN()))
	// Output:
	// true false
	// true
	// false
}

func ExampleFloatRangeForInt() {
	r := inrange.FloatRangeForInt[int64, float64]()
	fmt.Printf("%.0f %.0f\n", r.Min, r.Max)
	// Output: -9223372036854775808 9223372036854774784
}

func ExampleIntFitsHalf() {
	fmt.Println(inrange.IntFitsHalf(65504), inrange.IntFitsHalf(65505))
	fmt.Println(inrange.HalfFitsInt[int8](float16.Fromfloat32(-128)))
	// Output:
	// true false
	// true
}

func ExampleIntToInt() {
	v, err := inrange.IntToInt[uint8](-1)
	fmt.Println(v, err)
	// Output: 0 -1 to uint8: value out of range
}
