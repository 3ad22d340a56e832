// SPDX-License-Identifier: MIT
// Package: tartan/wif
//
// writer.go - GenerateDraft.
//
// Contract:
//   • All preconditions are checked before the first byte is written.
//   • Output is deterministic for equal inputs (fixed section and key order).

package wif

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/tartan/palette"
	"github.com/katalvlaran/tartan/sett"
	"github.com/katalvlaran/tartan/weave"
)

// GenerateDraft serializes s woven in p as a WIF draft.
// Returns a wrapped ErrExportPrecondition when s is empty, p fails
// Validate, a colour is unknown to meta.Palette, or a repeat is negative.
// Complexity: O(L + shafts·treadles), L = expanded sett length.
func GenerateDraft(s sett.Sett, p weave.Pattern, meta Metadata) (Draft, error) {
	exp, err := sett.Expand(s)
	if err != nil {
		return Draft{}, fmt.Errorf("%w: %w", ErrExportPrecondition, err)
	}
	if err := p.Validate(); err != nil {
		return Draft{}, fmt.Errorf("%w: %w", ErrExportPrecondition, err)
	}
	warpRep, weftRep := meta.WarpRepeats, meta.WeftRepeats
	if warpRep < 0 || weftRep < 0 {
		return Draft{}, fmt.Errorf("%w: negative repeats %d×%d", ErrExportPrecondition, warpRep, weftRep)
	}
	if warpRep == 0 {
		warpRep = 1
	}
	if weftRep == 0 {
		weftRep = 1
	}

	codes := exp.Colors()
	table := make([]palette.RGB, len(codes))
	index := make(map[string]int, len(codes))
	for i, code := range codes {
		rgb, err := meta.Palette.Resolve(code)
		if err != nil {
			return Draft{}, fmt.Errorf("%w: %w", ErrExportPrecondition, err)
		}
		table[i] = rgb
		index[code] = i + 1
	}

	w := &sectionWriter{}

	w.section(secWIF)
	w.kv("Version", wifVersion)
	if !meta.Date.IsZero() {
		w.kv("Date", meta.Date.Format(dateLayout))
	}
	w.kv("Developers", wifDevelopers)
	w.kv("Source Program", sourceProgram)
	w.kv("Source Version", sourceVersion)

	w.section(secContents)
	for _, sec := range []string{secColorPalette, secText, secWeaving, secWarp, secWeft,
		secColorTable, secThreading, secTieUp, secTreadling, secWarpColors, secWeftColors} {
		w.kv(sec, "true")
	}

	title := meta.Title
	if title == "" {
		title = s.Name()
	}
	w.section(secText)
	if title != "" {
		w.kv("Title", title)
	}
	if meta.Author != "" {
		w.kv("Author", meta.Author)
	}

	w.section(secColorPalette)
	w.kv("Entries", strconv.Itoa(len(table)))
	w.kv("Range", "0,255")

	w.section(secWeaving)
	w.kv("Shafts", strconv.Itoa(p.Shafts()))
	w.kv("Treadles", strconv.Itoa(p.Treadles()))
	w.kv("Rising Shed", "true")

	for _, sec := range []string{secWarp, secWeft} {
		w.section(sec)
		w.kv("Threads", strconv.Itoa(exp.Length))
		w.kv("Colors", "1")
	}

	w.section(secColorTable)
	for i, c := range table {
		w.kv(strconv.Itoa(i+1), fmt.Sprintf("%d,%d,%d", c.R, c.G, c.B))
	}

	w.section(secThreading)
	for i := 0; i < exp.Length; i++ {
		w.kv(strconv.Itoa(i+1), strconv.Itoa(p.Threading[i%len(p.Threading)]+1))
	}

	w.section(secTieUp)
	for t, row := range p.TieUp {
		var shafts []string
		for sh, up := range row {
			if up {
				shafts = append(shafts, strconv.Itoa(sh+1))
			}
		}
		w.kv(strconv.Itoa(t+1), strings.Join(shafts, ","))
	}

	w.section(secTreadling)
	for i := 0; i < exp.Length; i++ {
		w.kv(strconv.Itoa(i+1), strconv.Itoa(p.Treadling[i%len(p.Treadling)]+1))
	}

	for _, sec := range []string{secWarpColors, secWeftColors} {
		w.section(sec)
		for i, code := range exp.Threads {
			w.kv(strconv.Itoa(i+1), strconv.Itoa(index[code]))
		}
	}

	w.section(secTartan)
	w.kv("Threadcount", s.Threadcount())
	w.kv("Weave", p.ID)
	w.kv("Warp Repeats", strconv.Itoa(warpRep))
	w.kv("Weft Repeats", strconv.Itoa(weftRep))

	w.section(secTartanColors)
	for i, code := range codes {
		w.kv(strconv.Itoa(i+1), code)
	}

	return Draft{Content: w.String(), Filename: filename(title)}, nil
}

// GenerateWIF is GenerateDraft.
func GenerateWIF(s sett.Sett, p weave.Pattern, meta Metadata) (Draft, error) {
	return GenerateDraft(s, p, meta)
}

// sectionWriter accumulates "[SECTION]" headers and "key=value" lines.
type sectionWriter struct {
	b strings.Builder
}

func (w *sectionWriter) section(name string) {
	if w.b.Len() > 0 {
		w.b.WriteByte('\n')
	}
	w.b.WriteByte('[')
	w.b.WriteString(name)
	w.b.WriteString("]\n")
}

func (w *sectionWriter) kv(key, value string) {
	w.b.WriteString(key)
	w.b.WriteByte('=')
	w.b.WriteString(value)
	w.b.WriteByte('\n')
}

func (w *sectionWriter) String() string { return w.b.String() }

// filename slugs title into "lower-case-words.wif"; "tartan.wif" when empty.
func filename(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	slug := strings.TrimRight(b.String(), "-")
	if slug == "" {
		slug = "tartan"
	}
	return slug + fileExt
}
