// SPDX-License-Identifier: MIT
// Package: tartan/render
//
// swatch.go - Swatch and WritePNG.

package render

import (
	"fmt"
	"image"
	"image/png"
	"io"

	xdraw "golang.org/x/image/draw"

	"github.com/katalvlaran/tartan/palette"
	"github.com/katalvlaran/tartan/weave"
)

// SwatchOptions sizes a raster swatch. Zero values take the defaults.
type SwatchOptions struct {
	Width  int // threads; 0 → repeat width
	Height int // threads; 0 → repeat height
	Scale  int // pixels per thread; 0 → 4
}

// Swatch paints one pixel per crossing, then scales by opts.Scale with
// nearest-neighbour sampling.
func Swatch(g *weave.Grid, pal palette.Palette, opts SwatchOptions) (*image.RGBA, error) {
	scale := opts.Scale
	if scale == 0 {
		scale = defaultCell
	}
	width, height, err := size(g, opts.Width, opts.Height, scale)
	if err != nil {
		return nil, err
	}

	res := newResolver(pal)
	tile := image.NewRGBA(image.Rect(0, 0, width, height))
	err = Rows(g, width, height, func(y int, row []string) error {
		for x, code := range row {
			c, err := res.rgb(code)
			if err != nil {
				return fmt.Errorf("render: Swatch row %d: %w", y, err)
			}
			tile.SetRGBA(x, y, c.RGBA())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if scale == 1 {
		return tile, nil
	}

	dst := image.NewRGBA(image.Rect(0, 0, width*scale, height*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), tile, tile.Bounds(), xdraw.Src, nil)
	return dst, nil
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("render: WritePNG: %w", err)
	}
	return nil
}
