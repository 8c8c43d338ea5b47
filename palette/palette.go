// Package palette holds the fixed theme table that recolors sparks and the HSV helpers used for untinted colors
package palette

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/thunderbolt/render"
	"github.com/lixenwraith/thunderbolt/vmath"
)

//go:embed themes.yaml
var builtinThemes []byte

// NoneIndex is the settings value selecting no theme
const NoneIndex = -1

// ErrNoColors is returned when a non-None theme declares no colors
var ErrNoColors = errors.New("theme has no colors")

// Theme is a named ordered list of colors
type Theme struct {
	Name   string
	Dark   bool // darkest preset, enables dark glow on near-black sparks
	Colors []render.RGB
}

// IsNone reports whether the theme leaves spark colors untouched
func (t Theme) IsNone() bool {
	return len(t.Colors) == 0
}

// Random returns a uniformly chosen theme color, false for None
func (t Theme) Random(rng *vmath.FastRand) (render.RGB, bool) {
	if t.IsNone() {
		return render.RGB{}, false
	}
	return t.Colors[rng.Intn(len(t.Colors))], true
}

// Table is a read-only theme lookup
type Table struct {
	themes []Theme
}

type themeFile struct {
	Themes []themeEntry `yaml:"themes"`
}

type themeEntry struct {
	Name   string   `yaml:"name"`
	Dark   bool     `yaml:"dark"`
	Colors [][3]int `yaml:"colors"`
}

var defaultTable = mustParse(builtinThemes)

func mustParse(data []byte) *Table {
	t, err := Parse(data)
	if err != nil {
		panic(fmt.Errorf("builtin themes: %w", err))
	}
	return t
}

// Default returns the builtin theme table
func Default() *Table {
	return defaultTable
}

// Parse decodes a YAML theme table
func Parse(data []byte) (*Table, error) {
	var f themeFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse themes: %w", err)
	}
	t := &Table{themes: make([]Theme, 0, len(f.Themes))}
	for i, e := range f.Themes {
		th, err := e.theme(len(t.themes) == 0 && i == 0)
		if err != nil {
			return nil, fmt.Errorf("theme %d (%s): %w", i, e.Name, err)
		}
		t.themes = append(t.themes, th)
	}
	return t, nil
}

func (e themeEntry) theme(allowEmpty bool) (Theme, error) {
	if e.Name == "" {
		return Theme{}, errors.New("missing name")
	}
	if len(e.Colors) == 0 && !allowEmpty {
		return Theme{}, ErrNoColors
	}
	th := Theme{Name: e.Name, Dark: e.Dark, Colors: make([]render.RGB, 0, len(e.Colors))}
	for _, c := range e.Colors {
		for _, ch := range c {
			if ch < 0 || ch > 255 {
				return Theme{}, fmt.Errorf("channel %d out of range", ch)
			}
		}
		th.Colors = append(th.Colors, render.RGB{R: uint8(c[0]), G: uint8(c[1]), B: uint8(c[2])})
	}
	return th, nil
}

// LoadFile returns the builtin table extended with the themes in a YAML file
// Extra themes are appended after the builtin ones so existing indices stay stable
func LoadFile(path string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read themes %s: %w", path, err)
	}
	var f themeFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse themes %s: %w", path, err)
	}
	t := &Table{themes: append([]Theme(nil), defaultTable.themes...)}
	for i, e := range f.Themes {
		th, err := e.theme(false)
		if err != nil {
			return nil, fmt.Errorf("theme %d (%s): %w", i, e.Name, err)
		}
		t.themes = append(t.themes, th)
	}
	return t, nil
}

// Lookup resolves a settings index; -1 and out-of-range resolve to None
func (t *Table) Lookup(index int) Theme {
	if index < 0 || index >= len(t.themes) {
		return Theme{Name: "None"}
	}
	return t.themes[index]
}

// Len returns the number of themes including None
func (t *Table) Len() int {
	return len(t.themes)
}

// Names returns theme names in index order
func (t *Table) Names() []string {
	names := make([]string, len(t.themes))
	for i, th := range t.themes {
		names[i] = th.Name
	}
	return names
}

// Index returns the index of the named theme, NoneIndex if absent
func (t *Table) Index(name string) int {
	for i, th := range t.themes {
		if th.Name == name {
			return i
		}
	}
	return NoneIndex
}

// HSV builds a color from hue in [0, 1], saturation and value
func HSV(h, s, v float64) render.RGB {
	h = math.Mod(h, 1)
	if h < 0 {
		h++
	}
	return render.FromColorful(colorful.Hsv(h*360.0, s, v))
}

// RandomHue returns a fully random hue at the given saturation and brightness
func RandomHue(rng *vmath.FastRand, s, v float64) render.RGB {
	return HSV(rng.Float64(), s, v)
}
