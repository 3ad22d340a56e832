// SPDX-License-Identifier: MIT
// Package: tartan/render
//
// svg.go - WriteSVG.

package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/tartan/palette"
	"github.com/katalvlaran/tartan/weave"
)

// SVGOptions sizes the SVG output. Zero values take the defaults.
type SVGOptions struct {
	Width  int // threads; 0 → repeat width
	Height int // threads; 0 → repeat height
	Cell   int // pixels per thread; 0 → 4
}

const defaultCell = 4

// WriteSVG streams an SVG of g to w. Each row becomes one <rect> per run of
// equal colour.
// Complexity: O(width·height) time, O(width) memory.
func WriteSVG(w io.Writer, g *weave.Grid, pal palette.Palette, opts SVGOptions) error {
	cell := opts.Cell
	if cell == 0 {
		cell = defaultCell
	}
	width, height, err := size(g, opts.Width, opts.Height, cell)
	if err != nil {
		return err
	}

	res := newResolver(pal)
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" shape-rendering="crispEdges">`+"\n",
		width*cell, height*cell, width*cell, height*cell)

	err = Rows(g, width, height, func(y int, row []string) error {
		for x := 0; x < len(row); {
			run := 1
			for x+run < len(row) && row[x+run] == row[x] {
				run++
			}
			c, err := res.rgb(row[x])
			if err != nil {
				return fmt.Errorf("render: WriteSVG row %d: %w", y, err)
			}
			fmt.Fprintf(bw, `<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>`+"\n",
				x*cell, y*cell, run*cell, cell, c.Hex())
			x += run
		}
		return nil
	})
	if err != nil {
		return err
	}
	bw.WriteString("</svg>\n")
	return bw.Flush()
}
