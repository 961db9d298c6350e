// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// FromString returns a color value from the given CSS string.
// It returns any resulting error; see [MustFromString] and
// [LogFromString] for versions that do not return an error.
// FromString accepts the following types of strings: hex values,
// standard color names, "none" or "off", rgb(r, g, b),
// rgba(r, g, b, a), hsl(h, s, l), and hsla(h, s, l, a).
// Channel values may be given as percentages, and are clamped
// to their valid ranges. The alpha is a fraction between 0 and 1,
// which is the form produced by [AsString].
func FromString(str string) (color.RGBA, error) {
	str = strings.TrimSpace(str)
	if len(str) == 0 { // consider it null
		return color.RGBA{}, nil
	}
	lstr := strings.ToLower(str)
	switch {
	case lstr[0] == '#':
		return FromHex(str)
	case strings.HasPrefix(lstr, "rgb"):
		args, err := funcArgs(lstr, "rgb", "rgba")
		if err != nil {
			return color.RGBA{}, err
		}
		return parseRGB(args)
	case strings.HasPrefix(lstr, "hsl"):
		args, err := funcArgs(lstr, "hsl", "hsla")
		if err != nil {
			return color.RGBA{}, err
		}
		return parseHSL(args)
	}
	switch lstr {
	case "none", "off":
		return color.RGBA{}, nil
	}
	return FromName(lstr)
}

// MustFromString returns a color value from the given string.
// It panics on any resulting error; see [FromString] for
// more information and a version that returns an error.
func MustFromString(str string) color.RGBA {
	c, err := FromString(str)
	if err != nil {
		panic(err)
	}
	return c
}

// LogFromString returns a color value from the given string.
// It logs any resulting error; see [FromString] for
// more information and a version that returns an error.
func LogFromString(str string) color.RGBA {
	c, err := FromString(str)
	if err != nil {
		slog.Error(err.Error())
	}
	return c
}

// funcArgs returns the comma separated arguments of a CSS
// color function call with one of the given names.
func funcArgs(str string, names ...string) ([]string, error) {
	pidx := strings.IndexByte(str, '(')
	if pidx < 0 || !strings.HasSuffix(str, ")") {
		return nil, fmt.Errorf("colors.FromString: invalid color function %q", str)
	}
	name := strings.TrimSpace(str[:pidx])
	found := false
	for _, nm := range names {
		if name == nm {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("colors.FromString: unknown color function %q", name)
	}
	args := strings.Split(str[pidx+1:len(str)-1], ",")
	if len(args) != 3 && len(args) != 4 {
		return nil, fmt.Errorf("colors.FromString: %s requires 3 or 4 values, got %d in %q", name, len(args), str)
	}
	for i := range args {
		args[i] = strings.TrimSpace(args[i])
	}
	return args, nil
}

func parseRGB(args []string) (color.RGBA, error) {
	n := color.NRGBA{A: 255}
	for i, ch := range []*uint8{&n.R, &n.G, &n.B} {
		v, err := parseNumber(args[i], 255)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("colors.FromString: invalid %s value: %w", channelNames[i], err)
		}
		*ch = uint8(math.Round(clamp(v, 0, 255)))
	}
	if len(args) == 4 {
		a, err := parseAlpha(args[3])
		if err != nil {
			return color.RGBA{}, err
		}
		n.A = a
	}
	return AsRGBA(n), nil
}

func parseHSL(args []string) (color.RGBA, error) {
	h, err := strconv.ParseFloat(strings.TrimSuffix(args[0], "deg"), 64)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colors.FromString: invalid hue value: %w", err)
	}
	s, err := parseNumber(args[1], 1)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colors.FromString: invalid saturation value: %w", err)
	}
	l, err := parseNumber(args[2], 1)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colors.FromString: invalid lightness value: %w", err)
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// bare numbers are percentages in css
	if !strings.HasSuffix(args[1], "%") {
		s /= 100
	}
	if !strings.HasSuffix(args[2], "%") {
		l /= 100
	}
	r, g, b := colorful.Hsl(h, clamp(s, 0, 1), clamp(l, 0, 1)).Clamped().RGB255()
	n := color.NRGBA{R: r, G: g, B: b, A: 255}
	if len(args) == 4 {
		a, err := parseAlpha(args[3])
		if err != nil {
			return color.RGBA{}, err
		}
		n.A = a
	}
	return AsRGBA(n), nil
}

var channelNames = []string{"red", "green", "blue"}

// parseAlpha parses an alpha fraction or percentage into a 0 to 255 value.
func parseAlpha(s string) (uint8, error) {
	a, err := parseNumber(s, 1)
	if err != nil {
		return 0, fmt.Errorf("colors.FromString: invalid alpha value: %w", err)
	}
	return uint8(math.Round(clamp(a, 0, 1) * 255)), nil
}

// parseNumber parses a plain number, or a percentage of the given full value.
func parseNumber(s string, full float64) (float64, error) {
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.ParseFloat(strings.TrimSpace(pct), 64)
		if err != nil {
			return 0, err
		}
		return v * full / 100, nil
	}
	return strconv.ParseFloat(s, 64)
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Min(math.Max(v, lo), hi)
}
