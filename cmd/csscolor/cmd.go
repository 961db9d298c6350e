// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"cogentcore.org/csscolor/colors"
	"cogentcore.org/csscolor/palette"
	"github.com/mitchellh/go-homedir"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// app holds the global options and outputs shared by all commands.
type app struct {
	out    *termenv.Output
	errOut io.Writer

	// Swatch is whether to print a block of each color before its text.
	Swatch bool

	// Verbose is whether to log debug messages.
	Verbose bool
}

func newRootCmd(stdout, stderr io.Writer, opts ...termenv.OutputOption) *cobra.Command {
	a := &app{out: termenv.NewOutput(stdout, opts...), errOut: stderr}
	root := &cobra.Command{
		Use:          "csscolor",
		Short:        "Format and convert colors as CSS rgba text",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.setLogger()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().BoolVar(&a.Swatch, "swatch", false, "print a block of each color before it")
	root.PersistentFlags().BoolVarP(&a.Verbose, "verbose", "v", false, "log debug messages")
	root.AddCommand(a.rgbaCmd(), a.convertCmd(), a.paletteCmd())
	return root
}

// setLogger installs the default logger on the error output,
// at the level given by the verbose option.
func (a *app) setLogger() {
	level := slog.LevelInfo
	if a.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: level})))
}

// rgbaCmd parses its own flags, so that negative
// channel values are not taken as shorthand flags.
func (a *app) rgbaCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "rgba [--swatch] [-v] R G B A",
		Short:              "Print the CSS rgba text for the given channel values",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var chans []string
		loop:
			for i, arg := range args {
				switch arg {
				case "--":
					chans = append(chans, args[i+1:]...)
					break loop
				case "-h", "--help":
					return cmd.Help()
				case "--swatch":
					a.Swatch = true
				case "-v", "--verbose":
					a.Verbose = true
					a.setLogger()
				default:
					chans = append(chans, arg)
				}
			}
			if len(chans) != 4 {
				return fmt.Errorf("accepts 4 arg(s), received %d", len(chans))
			}
			s, c, err := formatChannels(chans)
			if err != nil {
				return err
			}
			slog.Debug("formatted channels", "args", chans, "css", s)
			a.print(c, s)
			return nil
		},
	}
}

func (a *app) convertCmd() *cobra.Command {
	hex := false
	cmd := &cobra.Command{
		Use:   "convert COLOR...",
		Short: "Convert colors given as hex, names, rgb, or hsl into CSS rgba text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				c, err := colors.FromString(arg)
				if err != nil {
					return err
				}
				slog.Debug("converted color", "input", arg, "color", c)
				if hex {
					a.print(c, colors.AsHex(c))
				} else {
					a.print(c, colors.AsString(c))
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&hex, "hex", false, "print hex instead of rgba text")
	return cmd
}

func (a *app) paletteCmd() *cobra.Command {
	prefix := ""
	cmd := &cobra.Command{
		Use:   "palette FILE",
		Short: "Print a TOML or YAML palette file as CSS custom properties",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fnm, err := homedir.Expand(args[0])
			if err != nil {
				return err
			}
			p, err := palette.Open(fnm)
			if err != nil {
				return err
			}
			slog.Debug("opened palette", "file", fnm, "name", p.Name, "colors", len(p.Colors))
			if a.Swatch {
				ents, err := p.Resolve()
				if err != nil {
					return err
				}
				for _, e := range ents {
					a.print(e.Color, e.Name)
				}
			}
			return p.CSS(a.out, prefix)
		},
	}
	cmd.Flags().StringVar(&prefix, "prefix", "", "prefix for the custom property names")
	return cmd
}

// print prints the given text, preceded by a swatch of the
// given color if swatches are on.
func (a *app) print(c color.Color, text string) {
	if a.Swatch {
		sw := a.out.String("  ").Background(a.out.Color(colors.AsHex(colors.WithAF32(c, 1))))
		fmt.Fprintln(a.out, sw.String(), text)
		return
	}
	fmt.Fprintln(a.out, text)
}

// formatChannels returns the CSS rgba text for the given r, g, b, and a
// arguments, and the color they describe. The r, g, and b arguments are
// formatted as integers when they all are integers, and as floats otherwise.
func formatChannels(args []string) (string, color.Color, error) {
	alpha, err := strconv.ParseFloat(strings.TrimSpace(args[3]), 64)
	if err != nil {
		return "", nil, fmt.Errorf("invalid alpha value %q: %w", args[3], err)
	}
	var ints [3]int64
	isInt := true
	for i := range ints {
		ints[i], err = strconv.ParseInt(strings.TrimSpace(args[i]), 10, 64)
		if err != nil {
			isInt = false
			break
		}
	}
	if isInt {
		return colors.RGBA(ints[0], ints[1], ints[2], alpha), channelColor(float64(ints[0]), float64(ints[1]), float64(ints[2]), alpha), nil
	}
	var floats [3]float64
	for i := range floats {
		floats[i], err = strconv.ParseFloat(strings.TrimSpace(args[i]), 64)
		if err != nil {
			return "", nil, fmt.Errorf("invalid %s value %q: %w", []string{"red", "green", "blue"}[i], args[i], err)
		}
	}
	return colors.RGBA(floats[0], floats[1], floats[2], alpha), channelColor(floats[0], floats[1], floats[2], alpha), nil
}

// channelColor returns the nearest color for the given channel values,
// for showing swatches. NaN channels are 0.
func channelColor(r, g, b, a float64) color.Color {
	ch := func(v float64) uint8 {
		if math.IsNaN(v) {
			return 0
		}
		return uint8(min(max(v, 0), 255) + 0.5)
	}
	if math.IsNaN(a) {
		a = 0
	}
	return colors.WithAF32(color.NRGBA{ch(r), ch(g), ch(b), 255}, float32(a))
}
