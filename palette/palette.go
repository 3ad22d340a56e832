package palette

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit sRGB triple.
type RGB struct {
	R, G, B uint8
}

// Hex renders c as "#RRGGBB".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// RGBA converts c to an opaque image/color value.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Color is a named palette entry.
type Color struct {
	Code string
	Name string
	Hex  string
	RGB  RGB
}

// Palette resolves codes against the built-in table, then custom colours.
// The zero value is a valid palette holding only the built-in table.
type Palette struct {
	custom []Color
	index  map[string]int // upper-case code → position in custom
}

// New returns a palette extended with custom colours. A custom entry needs
// a letters-only code and either a Hex string or an RGB value (Hex wins
// when both are set). Codes must not collide with built-ins or each other.
func New(custom ...Color) (Palette, error) {
	p := Palette{
		custom: make([]Color, 0, len(custom)),
		index:  make(map[string]int, len(custom)),
	}
	for _, c := range custom {
		if !validCode(c.Code) {
			return Palette{}, fmt.Errorf("palette: custom %q: %w", c.Code, ErrBadCode)
		}
		key := strings.ToUpper(c.Code)
		if _, ok := builtinIndex[key]; ok {
			return Palette{}, fmt.Errorf("palette: custom %q shadows a built-in: %w", c.Code, ErrDuplicateCode)
		}
		if _, ok := p.index[key]; ok {
			return Palette{}, fmt.Errorf("palette: custom %q: %w", c.Code, ErrDuplicateCode)
		}
		if c.Hex != "" {
			rgb, err := ParseHex(c.Hex)
			if err != nil {
				return Palette{}, fmt.Errorf("palette: custom %q: %w", c.Code, err)
			}
			c.RGB = rgb
		}
		c.Hex = c.RGB.Hex()
		if c.Name == "" {
			c.Name = c.Code
		}
		p.index[key] = len(p.custom)
		p.custom = append(p.custom, c)
	}

	return p, nil
}

// Default is the built-in-only palette.
func Default() Palette { return Palette{} }

// Lookup resolves code: built-in table first, then custom colours.
func (p Palette) Lookup(code string) (Color, bool) {
	key := strings.ToUpper(code)
	if i, ok := builtinIndex[key]; ok {
		return builtin[i], true
	}
	if i, ok := p.index[key]; ok {
		return p.custom[i], true
	}
	return Color{}, false
}

// Resolve returns the RGB value of code or ErrUnknownColor.
func (p Palette) Resolve(code string) (RGB, error) {
	c, ok := p.Lookup(code)
	if !ok {
		return RGB{}, fmt.Errorf("palette: %q: %w", code, ErrUnknownColor)
	}
	return c.RGB, nil
}

// Custom returns a copy of the custom colours.
func (p Palette) Custom() []Color {
	out := make([]Color, len(p.custom))
	copy(out, p.custom)
	return out
}

// Codes lists every code: built-ins in table order, then custom colours.
func (p Palette) Codes() []string {
	out := BuiltinCodes()
	for _, c := range p.custom {
		out = append(out, c.Code)
	}
	return out
}

// Nearest returns the entry closest to c in CIE-Lab space. Ties resolve to
// the earlier entry (built-ins before custom colours).
func (p Palette) Nearest(c RGB) Color {
	target := c.colorful()
	best, bestDist := builtin[0], math.Inf(1)
	consider := func(e Color) {
		if d := target.DistanceLab(e.RGB.colorful()); d < bestDist {
			best, bestDist = e, d
		}
	}
	for _, e := range builtin {
		consider(e)
	}
	for _, e := range p.custom {
		consider(e)
	}
	return best
}

// ParseHex reads "#RRGGBB" or "#RGB" (the leading '#' is required).
func ParseHex(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("palette: %q: %w", s, ErrBadHex)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

func validCode(code string) bool {
	if code == "" {
		return false
	}
	for _, r := range code {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return true
}
