// Package render turns a weave.Grid into pictures.
//
// What:
//
//   - Rows: streams colour-code rows through one reused buffer.
//   - WriteSVG: run-length <rect> elements per row, written as rows stream.
//   - Swatch: an *image.RGBA of the cloth, scaled up with
//     golang.org/x/image/draw nearest-neighbour so threads stay crisp.
//   - WritePNG: PNG encoding of any image.
//
// Sizes are in threads. A zero width or height means one full repeat of the
// grid (RepeatWidth × RepeatHeight), so the picture tiles seamlessly.
//
// Errors:
//
//   - ErrBadSize: negative size, zero cell/scale, or a picture above
//     MaxPixels.
//   - palette errors for codes the palette cannot resolve.
package render
