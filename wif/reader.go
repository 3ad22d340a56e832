// SPDX-License-Identifier: MIT
// Package: tartan/wif
//
// reader.go - ParseDraft.
//
// Resolution order:
//   • [PRIVATE TARTAN] present → Sett from Threadcount, Pattern from the
//     catalog id; this reproduces the exported pair exactly.
//   • otherwise → Sett is the run-length encoding of the warp colours and
//     Pattern is rebuilt from TIEUP/THREADING/TREADLING. Those sections
//     span one sett repeat, so the rebuilt pattern repeats every
//     Expand(s).Length threads. It renders like the exported pattern only
//     when that length is a multiple of the exported threading and
//     treadling lengths; otherwise crossings past the first repeat differ.
// Warp and Weft are always taken from the raw colour sections.

package wif

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/tartan/palette"
	"github.com/katalvlaran/tartan/sett"
	"github.com/katalvlaran/tartan/weave"
)

type sections map[string]map[string]string

// ParseDraft reads a WIF draft. pal resolves colour-table entries that lack
// a private colour code (nearest palette colour).
func ParseDraft(r io.Reader, pal palette.Palette) (Decoded, error) {
	secs, err := readSections(r)
	if err != nil {
		return Decoded{}, err
	}
	for _, need := range []string{secWeaving, secThreading, secTieUp, secTreadling, secWarpColors, secColorTable} {
		if _, ok := secs[need]; !ok {
			return Decoded{}, fmt.Errorf("%w: missing [%s]", ErrFormat, need)
		}
	}

	codes, err := colorCodes(secs, pal)
	if err != nil {
		return Decoded{}, err
	}
	warp, err := colorSequence(secs, secWarpColors, codes)
	if err != nil {
		return Decoded{}, err
	}
	weft := warp
	if _, ok := secs[secWeftColors]; ok {
		if weft, err = colorSequence(secs, secWeftColors, codes); err != nil {
			return Decoded{}, err
		}
	}

	d := Decoded{
		Title:       secs[secText]["Title"],
		Warp:        warp,
		Weft:        weft,
		WarpRepeats: 1,
		WeftRepeats: 1,
	}

	if priv, ok := secs[secTartan]; ok {
		if d.Sett, err = sett.Parse(priv["Threadcount"]); err != nil {
			return Decoded{}, fmt.Errorf("%w: threadcount: %w", ErrFormat, err)
		}
		if d.Pattern, err = weave.Lookup(priv["Weave"]); err != nil {
			return Decoded{}, fmt.Errorf("%w: %w", ErrFormat, err)
		}
		if d.WarpRepeats, err = positive(priv, "Warp Repeats"); err != nil {
			return Decoded{}, err
		}
		if d.WeftRepeats, err = positive(priv, "Weft Repeats"); err != nil {
			return Decoded{}, err
		}
		return d, nil
	}

	if d.Sett, err = runLength(warp); err != nil {
		return Decoded{}, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	if d.Pattern, err = rawPattern(secs); err != nil {
		return Decoded{}, err
	}
	return d, nil
}

// readSections parses "[NAME]" headers and "key=value" lines. Blank lines
// and ';' comments are skipped; section names are case-insensitive.
func readSections(r io.Reader) (sections, error) {
	secs := make(sections)
	var cur map[string]string
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, ";") {
			continue
		}
		if strings.HasPrefix(text, "[") && strings.HasSuffix(text, "]") {
			name := strings.ToUpper(strings.TrimSpace(text[1 : len(text)-1]))
			cur = make(map[string]string)
			secs[name] = cur
			continue
		}
		key, value, ok := strings.Cut(text, "=")
		if !ok || cur == nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrFormat, line, text)
		}
		cur[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	return secs, nil
}

// colorCodes maps colour-table index → code, via the private section or
// the nearest palette entry.
func colorCodes(secs sections, pal palette.Palette) (map[int]string, error) {
	out := make(map[int]string)
	private := secs[secTartanColors]
	for key, value := range secs[secColorTable] {
		i, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("%w: colour table key %q", ErrFormat, key)
		}
		if code, ok := private[key]; ok {
			out[i] = code
			continue
		}
		rgb, err := parseTriple(value)
		if err != nil {
			return nil, err
		}
		out[i] = pal.Nearest(rgb).Code
	}
	return out, nil
}

func parseTriple(v string) (palette.RGB, error) {
	parts := strings.Split(v, ",")
	if len(parts) != 3 {
		return palette.RGB{}, fmt.Errorf("%w: colour %q", ErrFormat, v)
	}
	var c [3]uint8
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 || n > 255 {
			return palette.RGB{}, fmt.Errorf("%w: colour %q", ErrFormat, v)
		}
		c[i] = uint8(n)
	}
	return palette.RGB{R: c[0], G: c[1], B: c[2]}, nil
}

// indexed reads a section of "1..N=value" entries into a dense slice.
func indexed(secs sections, name string) ([]string, error) {
	sec := secs[name]
	out := make([]string, len(sec))
	for key, value := range sec {
		i, err := strconv.Atoi(key)
		if err != nil || i < 1 || i > len(sec) {
			return nil, fmt.Errorf("%w: [%s] key %q", ErrFormat, name, key)
		}
		out[i-1] = value
	}
	return out, nil
}

func colorSequence(secs sections, name string, codes map[int]string) ([]string, error) {
	raw, err := indexed(secs, name)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: [%s] is empty", ErrFormat, name)
	}
	out := make([]string, len(raw))
	for i, v := range raw {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%w: [%s] %d=%q", ErrFormat, name, i+1, v)
		}
		code, ok := codes[n]
		if !ok {
			return nil, fmt.Errorf("%w: [%s] colour %d not in table", ErrFormat, name, n)
		}
		out[i] = code
	}
	return out, nil
}

// zeroBased converts "1..N" single-index entries to 0-based ints.
func zeroBased(secs sections, name string) ([]int, error) {
	raw, err := indexed(secs, name)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(raw))
	for i, v := range raw {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%w: [%s] %d=%q", ErrFormat, name, i+1, v)
		}
		out[i] = n - 1
	}
	return out, nil
}

func rawPattern(secs sections) (weave.Pattern, error) {
	shafts, err := positive(secs[secWeaving], "Shafts")
	if err != nil {
		return weave.Pattern{}, err
	}
	treadles, err := positive(secs[secWeaving], "Treadles")
	if err != nil {
		return weave.Pattern{}, err
	}

	tie := make([][]bool, treadles)
	for t := range tie {
		tie[t] = make([]bool, shafts)
	}
	for key, value := range secs[secTieUp] {
		t, err := strconv.Atoi(key)
		if err != nil || t < 1 || t > treadles {
			return weave.Pattern{}, fmt.Errorf("%w: [%s] treadle %q", ErrFormat, secTieUp, key)
		}
		if value == "" {
			continue
		}
		for _, f := range strings.Split(value, ",") {
			sh, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil || sh < 1 || sh > shafts {
				return weave.Pattern{}, fmt.Errorf("%w: [%s] %d shaft %q", ErrFormat, secTieUp, t, f)
			}
			tie[t-1][sh-1] = true
		}
	}

	p := weave.Pattern{ID: "draft", Name: "Imported draft", TieUp: tie}
	if p.Threading, err = zeroBased(secs, secThreading); err != nil {
		return weave.Pattern{}, err
	}
	if p.Treadling, err = zeroBased(secs, secTreadling); err != nil {
		return weave.Pattern{}, err
	}
	if err := p.Validate(); err != nil {
		return weave.Pattern{}, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	return p, nil
}

// runLength folds a thread sequence into an asymmetric sett.
func runLength(threads []string) (sett.Sett, error) {
	var stripes []sett.ThreadStripe
	for _, c := range threads {
		if n := len(stripes); n > 0 && stripes[n-1].Color == c {
			stripes[n-1].Count++
			continue
		}
		stripes = append(stripes, sett.ThreadStripe{Color: c, Count: 1})
	}
	return sett.New(stripes)
}

func positive(sec map[string]string, key string) (int, error) {
	n, err := strconv.Atoi(sec[key])
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %s=%q", ErrFormat, key, sec[key])
	}
	return n, nil
}
