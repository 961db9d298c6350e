// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides CSS text formatting and parsing
// for standard image/color values.
package colors

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"strings"

	"github.com/chewxy/math32"
	"golang.org/x/image/colornames"
)

// AsString returns the given color as a string,
// using its String method if it exists, and formatting
// it as CSS rgba(r, g, b, a) with [RGBA] otherwise.
// The channels are non-premultiplied, and the alpha
// is a fraction between 0 and 1.
func AsString(c color.Color) string {
	if c == nil {
		return RGBA(0, 0, 0, 0)
	}
	if s, ok := c.(fmt.Stringer); ok {
		return s.String()
	}
	n := AsNRGBA(c)
	return RGBA(n.R, n.G, n.B, float64(n.A)/255)
}

// AsHex returns the given color as a hex string:
// #rrggbb when it is fully opaque, and #rrggbbaa otherwise.
func AsHex(c color.Color) string {
	n := AsNRGBA(c)
	if n.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

// AsRGBA returns the given color as a premultiplied RGBA color.
func AsRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// AsNRGBA returns the given color as a non-premultiplied NRGBA color.
func AsNRGBA(c color.Color) color.NRGBA {
	if c == nil {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// AF32 returns the alpha of the given color as a fraction between 0 and 1.
func AF32(c color.Color) float32 {
	if c == nil {
		return 0
	}
	_, _, _, a := c.RGBA()
	return float32(a) / 0xffff
}

// WithAF32 returns the given color with its alpha replaced by the given
// fraction, which is clamped to the range 0 to 1.
func WithAF32(c color.Color, a float32) color.NRGBA {
	n := AsNRGBA(c)
	a = math32.Min(math32.Max(a, 0), 1)
	n.A = uint8(math32.Round(a * 255))
	return n
}

// FromName returns the color value specified by the given CSS
// standard color name, ignoring case. It returns an error if the
// name is not found; see [MustFromName] and [LogFromName] for
// versions that do not return an error.
func FromName(name string) (color.RGBA, error) {
	lname := strings.ToLower(strings.TrimSpace(name))
	if lname == "transparent" {
		return color.RGBA{}, nil
	}
	c, ok := colornames.Map[lname]
	if !ok {
		return color.RGBA{}, errors.New("colors.FromName: name not found: " + name)
	}
	return c, nil
}

// MustFromName returns the color value specified
// by the given CSS standard color name. It panics
// if the name is not found; see [FromName]
// for a version that returns an error.
func MustFromName(name string) color.RGBA {
	c, err := FromName(name)
	if err != nil {
		panic(err)
	}
	return c
}

// LogFromName returns the color value specified
// by the given CSS standard color name. It logs an error
// if the name is not found; see [FromName]
// for a version that returns an error.
func LogFromName(name string) color.RGBA {
	c, err := FromName(name)
	if err != nil {
		slog.Error(err.Error())
	}
	return c
}

// FromHex parses the given hex color string and returns the
// resulting color. It accepts #rgb, #rgba, #rrggbb, and #rrggbbaa
// forms, with or without the leading #.
func FromHex(hex string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	switch len(h) {
	case 3, 4, 6, 8:
	default:
		return color.RGBA{}, errors.New("colors.FromHex: could not process: " + hex)
	}
	var digits [8]uint8
	for i := 0; i < len(h); i++ {
		d, ok := hexDigit(h[i])
		if !ok {
			return color.RGBA{}, fmt.Errorf("colors.FromHex: invalid hex digit %q in %q", h[i], hex)
		}
		digits[i] = d
	}
	n := color.NRGBA{A: 255}
	if len(h) <= 4 {
		n.R = digits[0]<<4 | digits[0]
		n.G = digits[1]<<4 | digits[1]
		n.B = digits[2]<<4 | digits[2]
		if len(h) == 4 {
			n.A = digits[3]<<4 | digits[3]
		}
	} else {
		n.R = digits[0]<<4 | digits[1]
		n.G = digits[2]<<4 | digits[3]
		n.B = digits[4]<<4 | digits[5]
		if len(h) == 8 {
			n.A = digits[6]<<4 | digits[7]
		}
	}
	return AsRGBA(n), nil
}

func hexDigit(b byte) (uint8, bool) {
	switch {
	case '0' <= b && b <= '9':
		return b - '0', true
	case 'a' <= b && b <= 'f':
		return b - 'a' + 10, true
	case 'A' <= b && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

// MustFromHex parses the given hex color string
// and returns the resulting color. It panics on any
// resulting error; see [FromHex] for a version
// that returns an error.
func MustFromHex(hex string) color.RGBA {
	c, err := FromHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}
