// Package palette resolves tartan colour codes to RGB values.
//
// A Palette is an explicit value: the fixed 48-entry built-in table is
// always consulted first, then the caller's custom colours. Nothing here
// reads or writes process-wide state; pass the Palette to every consumer.
//
// Codes are short alphabetic identifiers ("K", "DB", "HG") and compare
// case-insensitively. Nearest maps an arbitrary RGB value onto the closest
// palette entry in CIE-Lab space, which is what image-import tools use to
// snap pixels to yarn colours.
package palette
