// SPDX-License-Identifier: MIT
// Package: tartan/render
//
// rows.go - row streaming and size resolution.

package render

import (
	"fmt"

	"github.com/katalvlaran/tartan/palette"
	"github.com/katalvlaran/tartan/weave"
)

// MaxPixels bounds the output of WriteSVG and Swatch.
const MaxPixels = 1 << 24

// Rows calls fn for y = 0..height-1 with the colour codes of row y.
// row is reused between calls; copy it to keep it. A non-nil error from fn
// stops the stream and is returned.
// Complexity: O(width·height) time, O(width) memory.
func Rows(g *weave.Grid, width, height int, fn func(y int, row []string) error) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("render: Rows %dx%d: %w", width, height, ErrBadSize)
	}
	buf := make([]string, width)
	for y := 0; y < height; y++ {
		if err := fn(y, g.Row(y, buf)); err != nil {
			return err
		}
	}
	return nil
}

// size resolves a requested size to threads, 0 meaning one repeat, and
// checks that the picture at cell pixels per thread stays within MaxPixels.
// Each factor is bounded before multiplying so the check cannot overflow.
func size(g *weave.Grid, width, height, cell int) (int, int, error) {
	if width < 0 || height < 0 || cell < 1 {
		return 0, 0, fmt.Errorf("render: %dx%d cell %d: %w", width, height, cell, ErrBadSize)
	}
	if width == 0 {
		width = g.RepeatWidth()
	}
	if height == 0 {
		height = g.RepeatHeight()
	}
	if width > MaxPixels/cell || height > MaxPixels/cell ||
		width*cell > MaxPixels/(height*cell) {
		return 0, 0, fmt.Errorf("render: %dx%d cell %d exceeds %d pixels: %w",
			width, height, cell, MaxPixels, ErrBadSize)
	}
	return width, height, nil
}

// resolver caches palette lookups; a sett uses only a handful of codes.
type resolver struct {
	pal   palette.Palette
	cache map[string]palette.RGB
}

func newResolver(pal palette.Palette) *resolver {
	return &resolver{pal: pal, cache: make(map[string]palette.RGB)}
}

func (r *resolver) rgb(code string) (palette.RGB, error) {
	if c, ok := r.cache[code]; ok {
		return c, nil
	}
	c, err := r.pal.Resolve(code)
	if err != nil {
		return palette.RGB{}, err
	}
	r.cache[code] = c
	return c, nil
}
