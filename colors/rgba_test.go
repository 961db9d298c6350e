// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRGBA(t *testing.T) {
	tests := []struct {
		r, g, b int
		a       float64
		want    string
	}{
		{255, 0, 0, 1, "rgba(255, 0, 0, 1.00000)"},
		{0, 128, 255, 0.5, "rgba(0, 128, 255, 0.50000)"},
		{10, 20, 30, 0.123456, "rgba(10, 20, 30, 0.12346)"},
		{0, 0, 0, 0.0000001, "rgba(0, 0, 0, 0.00000)"},
		{1, 2, 3, 0, "rgba(1, 2, 3, 0.00000)"},
		{0, 0, 0, 0.00001, "rgba(0, 0, 0, 0.00001)"},
		{0, 0, 0, 0.000006, "rgba(0, 0, 0, 0.00001)"},
		{-1, 300, 0, 2, "rgba(-1, 300, 0, 2.00000)"},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, RGBA(test.r, test.g, test.b, test.a))
	}
}

func TestRGBAChannelTypes(t *testing.T) {
	assert.Equal(t, "rgba(255, 128, 0, 0.25000)", RGBA(uint8(255), uint8(128), uint8(0), 0.25))
	assert.Equal(t, "rgba(18446744073709551615, 0, 0, 1.00000)", RGBA(uint64(math.MaxUint64), 0, 0, 1))
	assert.Equal(t, "rgba(-128, 0, 127, 1.00000)", RGBA(int8(-128), 0, 127, 1))
	assert.Equal(t, "rgba(127.5, 0.25, 0.0000001, 1.00000)", RGBA(127.5, 0.25, 0.0000001, 1))
	assert.Equal(t, "rgba(0.1, 0.2, 1000000, 1.00000)", RGBA(float32(0.1), 0.2, 1e6, 1))

	type level uint16
	assert.Equal(t, "rgba(1, 2, 3, 0.75000)", RGBA(level(1), 2, 3, 0.75))
	type fraction float32
	assert.Equal(t, "rgba(0.1, 0.5, 1, 0.75000)", RGBA(fraction(0.1), 0.5, 1, 0.75))
}

func TestRGBANonFinite(t *testing.T) {
	assert.Equal(t, "rgba(0, 0, 0, NaN)", RGBA(0, 0, 0, math.NaN()))
	assert.Equal(t, "rgba(0, 0, 0, +Inf)", RGBA(0, 0, 0, math.Inf(1)))
	assert.Equal(t, "rgba(0, 0, 0, 0.00000)", RGBA(0, 0, 0, math.Copysign(0, -1)))
	assert.Equal(t, "rgba(NaN, -Inf, 0, 1.00000)", RGBA(math.NaN(), math.Inf(-1), 0, 1))
}

func TestRGBAFixedPoint(t *testing.T) {
	shape := regexp.MustCompile(`^rgba\(.+, .+, .+, \d+\.\d{5}\)$`)
	alphas := []float64{0, 1, 0.5, 1e-7, 1e-9, 1e-300, math.SmallestNonzeroFloat64, 0.999999, 1.0 / 3, math.Copysign(0, -1)}
	for i := 0; i <= 1000; i++ {
		alphas = append(alphas, float64(i)/1000, math.Pow(10, -float64(i%20)))
	}
	for _, a := range alphas {
		s := RGBA(12, 34, 56, a)
		assert.Regexp(t, shape, s, "alpha %v", a)
		assert.NotContains(t, strings.ToLower(s), "e", "alpha %v", a)
	}
}

func TestFormatAlpha(t *testing.T) {
	assert.Equal(t, "0.00000", FormatAlpha(0))
	assert.Equal(t, "0.00000", FormatAlpha(math.Copysign(0, -1)))
	x := 0.7
	assert.Equal(t, "0.00000", FormatAlpha(-x*0))
	assert.Equal(t, "1.00000", FormatAlpha(1))
	assert.Equal(t, "0.33333", FormatAlpha(1.0/3))
	assert.Equal(t, "0.66667", FormatAlpha(2.0/3))
	assert.Equal(t, "-0.00000", FormatAlpha(-0.0000001))

	// exact binary ties round half to even
	assert.Equal(t, "0.01562", FormatAlpha(0.015625))
	assert.Equal(t, "0.04688", FormatAlpha(0.046875))
}

func ExampleRGBA() {
	fmt.Println(RGBA(0, 128, 255, 0.5))
	fmt.Println(RGBA(0, 0, 0, 0.0000001))
	// Output:
	// rgba(0, 128, 255, 0.50000)
	// rgba(0, 0, 0, 0.00000)
}

func ExampleFormatAlpha() {
	fmt.Println(FormatAlpha(0.123456))
	// Output: 0.12346
}
