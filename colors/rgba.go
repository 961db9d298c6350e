// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"strconv"
	"strings"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Number is any integer or floating point type
// that can be used as a color channel value.
type Number interface {
	constraints.Integer | constraints.Float
}

// RGBA returns the CSS rgba(r, g, b, a) text for the given channel values.
// The r, g, and b values are printed in their natural base 10 form, and the
// alpha value is always printed in fixed point notation with exactly five
// digits after the decimal point (see [FormatAlpha]), so that very small
// alpha values never show up in exponential notation, which is not valid CSS.
// No range checking is done on any of the values; NaN and infinite values
// are printed as NaN, +Inf, and -Inf.
func RGBA[T Number](r, g, b T, a float64) string {
	var sb strings.Builder
	sb.Grow(32)
	sb.WriteString("rgba(")
	sb.WriteString(channelString(r))
	sb.WriteString(", ")
	sb.WriteString(channelString(g))
	sb.WriteString(", ")
	sb.WriteString(channelString(b))
	sb.WriteString(", ")
	sb.WriteString(FormatAlpha(a))
	sb.WriteByte(')')
	return sb.String()
}

// FormatAlpha returns the given alpha value in fixed point notation
// with exactly five digits after the decimal point. Exact ties at the
// fifth digit round half to even. Negative zero prints as 0.00000.
func FormatAlpha(a float64) string {
	if a == 0 {
		a = 0
	}
	return strconv.FormatFloat(a, 'f', 5, 64)
}

// channelString returns the natural text form of a channel value.
// Floats use the shortest representation that round trips at their
// own precision, without an exponent.
func channelString[T Number](v T) string {
	if half := 0.5; T(half) != 0 { // floating point
		bits := 64
		if unsafe.Sizeof(v) == 4 {
			bits = 32
		}
		return strconv.FormatFloat(float64(v), 'f', -1, bits)
	}
	if v < 0 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatUint(uint64(v), 10)
}
