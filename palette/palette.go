// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palette provides named sets of colors that are stored
// in TOML or YAML files and written out as CSS custom properties.
package palette

import (
	"bufio"
	"errors"
	"fmt"
	"image/color"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"cogentcore.org/csscolor/colors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Palette is a named set of colors. Each color is
// specified as any string accepted by [colors.FromString].
type Palette struct {

	// Name is the name of the palette.
	Name string `toml:"name" yaml:"name"`

	// Colors maps the name of each color to its specification.
	Colors map[string]string `toml:"colors" yaml:"colors"`
}

// Entry is one resolved color in a [Palette].
type Entry struct {

	// Name is the name of the color in the palette.
	Name string

	// Color is the parsed color value.
	Color color.RGBA

	// CSS is the CSS rgba text for the color.
	CSS string
}

// isYAML returns whether the given file name has a YAML extension.
// All other files are TOML.
func isYAML(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Open reads a palette from the given TOML or YAML file,
// based on its extension.
func Open(filename string) (*Palette, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	p, err := readFile(bufio.NewReader(f), filename)
	if err != nil {
		return nil, fmt.Errorf("palette.Open %q: %w", filename, err)
	}
	return p, nil
}

// OpenFS reads a palette from the given TOML or YAML file
// in the given filesystem, based on its extension.
func OpenFS(fsys fs.FS, filename string) (*Palette, error) {
	f, err := fsys.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	p, err := readFile(f, filename)
	if err != nil {
		return nil, fmt.Errorf("palette.OpenFS %q: %w", filename, err)
	}
	return p, nil
}

func readFile(r io.Reader, filename string) (*Palette, error) {
	if isYAML(filename) {
		return ReadYAML(r)
	}
	return Read(r)
}

// Read reads a palette in TOML format from the given reader.
func Read(r io.Reader) (*Palette, error) {
	p := &Palette{}
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(p); err != nil {
		return nil, err
	}
	return p, nil
}

// ReadYAML reads a palette in YAML format from the given reader.
func ReadYAML(r io.Reader) (*Palette, error) {
	p := &Palette{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Save writes the palette to the given TOML or YAML file,
// based on its extension.
func (p *Palette) Save(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	if isYAML(filename) {
		err = p.WriteYAML(bw)
	} else {
		err = p.Write(bw)
	}
	if err == nil {
		err = bw.Flush()
	}
	return errors.Join(err, f.Close())
}

// Write writes the palette in TOML format to the given writer.
func (p *Palette) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(p)
}

// WriteYAML writes the palette in YAML format to the given writer.
func (p *Palette) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return err
	}
	return enc.Close()
}

// Set sets the color with the given name to the CSS text of the given color.
func (p *Palette) Set(name string, c color.Color) {
	if p.Colors == nil {
		p.Colors = map[string]string{}
	}
	p.Colors[name] = colors.AsString(c)
}

// Resolve parses every color in the palette and returns the
// entries sorted by name. Entries that fail to parse, or whose
// names are not valid in a CSS custom property name, are left
// out, and their errors are joined into the returned error.
func (p *Palette) Resolve() ([]Entry, error) {
	names := make([]string, 0, len(p.Colors))
	for nm := range p.Colors {
		names = append(names, nm)
	}
	slices.Sort(names)
	var errs []error
	ents := make([]Entry, 0, len(names))
	for _, nm := range names {
		if !validName(nm) {
			errs = append(errs, fmt.Errorf("color %q: invalid custom property name", nm))
			continue
		}
		c, err := colors.FromString(p.Colors[nm])
		if err != nil {
			errs = append(errs, fmt.Errorf("color %q: %w", nm, err))
			continue
		}
		ents = append(ents, Entry{Name: nm, Color: c, CSS: colors.AsString(c)})
	}
	return ents, errors.Join(errs...)
}

// CSS writes the palette as a :root block of CSS custom properties,
// one per color, named with the given prefix followed by the color name.
// Nothing is written if any color fails to resolve.
func (p *Palette) CSS(w io.Writer, prefix string) error {
	if prefix != "" && !validName(prefix) {
		return fmt.Errorf("palette.CSS: invalid custom property prefix %q", prefix)
	}
	ents, err := p.Resolve()
	if err != nil {
		return err
	}
	var sb strings.Builder
	if p.Name != "" {
		fmt.Fprintf(&sb, "/* %s */\n", strings.ReplaceAll(p.Name, "*/", "* /"))
	}
	sb.WriteString(":root {\n")
	for _, e := range ents {
		fmt.Fprintf(&sb, "\t--%s%s: %s;\n", prefix, e.Name, e.CSS)
	}
	sb.WriteString("}\n")
	_, err = io.WriteString(w, sb.String())
	return err
}

// validName returns whether the given name only has characters
// that can appear unescaped in a CSS custom property name.
func validName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 0x80, r == '-', r == '_',
			'a' <= r && r <= 'z', 'A' <= r && r <= 'Z', '0' <= r && r <= '9':
		default:
			return false
		}
	}
	return true
}
