package wif_test

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tartan/palette"
	"github.com/katalvlaran/tartan/sett"
	"github.com/katalvlaran/tartan/weave"
	"github.com/katalvlaran/tartan/wif"
)

// section returns the "key=value" lines of [name] in content.
func section(t *testing.T, content, name string) map[string]string {
	t.Helper()
	head := "[" + name + "]\n"
	i := strings.Index(content, head)
	require.GreaterOrEqual(t, i, 0, "section %s missing", name)
	body := content[i+len(head):]
	if j := strings.Index(body, "\n["); j >= 0 {
		body = body[:j]
	}
	out := make(map[string]string)
	for _, line := range strings.Split(strings.TrimSpace(body), "\n") {
		if line == "" {
			continue
		}
		k, v, ok := strings.Cut(line, "=")
		require.True(t, ok, "line %q", line)
		out[k] = v
	}
	return out
}

// withoutSection removes [name] and its lines.
func withoutSection(content, name string) string {
	head := "[" + name + "]\n"
	i := strings.Index(content, head)
	if i < 0 {
		return content
	}
	rest := content[i+len(head):]
	if j := strings.Index(rest, "\n["); j >= 0 {
		return content[:i] + rest[j+1:]
	}
	return content[:i]
}

//----------------------------------------------------------------------------//
// GenerateDraft
//----------------------------------------------------------------------------//

// TestGenerateDraft_ThreadingLength: one THREADING entry per expanded thread,
// each naming a shaft of the pattern.
func TestGenerateDraft_ThreadingLength(t *testing.T) {
	s := sett.MustParse("K4 R2")
	p := weave.Get(weave.Plain)

	d, err := wif.GenerateDraft(s, p, wif.Metadata{})
	require.NoError(t, err)

	threading := section(t, d.Content, "THREADING")
	require.Len(t, threading, sett.MustExpand(s).Length)
	for k, v := range threading {
		shaft, err := strconv.Atoi(v)
		require.NoError(t, err, "entry %s", k)
		assert.True(t, shaft >= 1 && shaft <= p.Shafts(), "entry %s=%d", k, shaft)
	}
	assert.Equal(t, "1", threading["1"])
	assert.Equal(t, "2", threading["2"])
}

// TestGenerateDraft_Sections checks the standard headers and tie-up lines.
func TestGenerateDraft_Sections(t *testing.T) {
	s := sett.MustParse("K/4 R2 Y/2")
	p := weave.Get(weave.Twill22)
	meta := wif.Metadata{
		Title:       "Test Sett",
		Author:      "weaver",
		Date:        time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		WarpRepeats: 3,
	}

	d, err := wif.GenerateDraft(s, p, meta)
	require.NoError(t, err)

	assert.Equal(t, "1.1", section(t, d.Content, "WIF")["Version"])
	assert.Equal(t, "March 1, 2024", section(t, d.Content, "WIF")["Date"])
	assert.Equal(t, "Test Sett", section(t, d.Content, "TEXT")["Title"])
	assert.Equal(t, "weaver", section(t, d.Content, "TEXT")["Author"])

	weaving := section(t, d.Content, "WEAVING")
	assert.Equal(t, "4", weaving["Shafts"])
	assert.Equal(t, "4", weaving["Treadles"])

	tie := section(t, d.Content, "TIEUP")
	assert.Equal(t, "1,2", tie["1"])
	assert.Len(t, tie, 4)

	assert.Len(t, section(t, d.Content, "COLOR TABLE"), 3)
	assert.Len(t, section(t, d.Content, "WARP COLORS"), 10)
	assert.Len(t, section(t, d.Content, "WEFT COLORS"), 10)

	priv := section(t, d.Content, "PRIVATE TARTAN")
	assert.Equal(t, "K/4 R2 Y/2", priv["Threadcount"])
	assert.Equal(t, "twill-2-2", priv["Weave"])
	assert.Equal(t, "3", priv["Warp Repeats"])
	assert.Equal(t, "1", priv["Weft Repeats"])
	assert.Equal(t, "test-sett.wif", d.Filename)
}

// TestGenerateDraft_Deterministic: equal inputs, equal bytes.
func TestGenerateDraft_Deterministic(t *testing.T) {
	s := sett.MustParse("B24 K4 B4 K4 B4 K20 G24 R6")
	p := weave.Get(weave.Herringbone)
	a, err := wif.GenerateDraft(s, p, wif.Metadata{Title: "x"})
	require.NoError(t, err)
	b, err := wif.GenerateDraft(s, p, wif.Metadata{Title: "x"})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestGenerateDraft_Preconditions: nothing is produced on bad input.
func TestGenerateDraft_Preconditions(t *testing.T) {
	plain := weave.Get(weave.Plain)
	broken := weave.Pattern{ID: "broken", TieUp: [][]bool{{true}}, Threading: []int{3}, Treadling: []int{0}}

	cases := []struct {
		name string
		s    sett.Sett
		p    weave.Pattern
		meta wif.Metadata
	}{
		{"EmptySett", sett.Sett{}, plain, wif.Metadata{}},
		{"InvalidPattern", sett.MustParse("K4 R4"), broken, wif.Metadata{}},
		{"UnknownColor", sett.MustParse("K4 ZZ4"), plain, wif.Metadata{}},
		{"NegativeRepeats", sett.MustParse("K4 R4"), plain, wif.Metadata{WeftRepeats: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := wif.GenerateDraft(tc.s, tc.p, tc.meta)
			require.ErrorIs(t, err, wif.ErrExportPrecondition)
			assert.Empty(t, d.Content)
		})
	}
}

// TestGenerateDraft_CustomColor resolves a code through Metadata.Palette.
func TestGenerateDraft_CustomColor(t *testing.T) {
	pal, err := palette.New(palette.Color{Code: "ZZ", Name: "Test", Hex: "#102030"})
	require.NoError(t, err)

	d, err := wif.GenerateDraft(sett.MustParse("K4 ZZ4"), weave.Get(weave.Plain), wif.Metadata{Palette: pal})
	require.NoError(t, err)
	assert.Equal(t, "16,32,48", section(t, d.Content, "COLOR TABLE")["2"])
	assert.Equal(t, "ZZ", section(t, d.Content, "PRIVATE TARTAN COLORS")["2"])
}

// TestFilename covers slugging and fallbacks.
func TestFilename(t *testing.T) {
	cases := []struct{ title, want string }{
		{"Black Watch", "black-watch.wif"},
		{"  Royal  Stewart!! ", "royal-stewart.wif"},
		{"", "tartan.wif"},
		{"***", "tartan.wif"},
	}
	s := sett.MustParse("K4 R4")
	for _, tc := range cases {
		d, err := wif.GenerateDraft(s, weave.Get(weave.Plain), wif.Metadata{Title: tc.title})
		require.NoError(t, err)
		assert.Equal(t, tc.want, d.Filename, "title %q", tc.title)
	}

	d, err := wif.GenerateDraft(s.WithName("symmetric-42"), weave.Get(weave.Plain), wif.Metadata{})
	require.NoError(t, err)
	assert.Equal(t, "symmetric-42.wif", d.Filename)
}

//----------------------------------------------------------------------------//
// ParseDraft
//----------------------------------------------------------------------------//

func render(t *testing.T, warp, weft []string, p weave.Pattern, w, h int) []string {
	t.Helper()
	out := make([]string, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out = append(out, weave.IntersectionColor(warp, weft, p, x, y))
		}
	}
	return out
}

// TestParseDraft_RoundTrip: every catalog weave survives export and import.
func TestParseDraft_RoundTrip(t *testing.T) {
	s := sett.MustParse("DB/24 K4 DB4 K4 DB4 K20 DG24 R/6")
	exp := sett.MustExpand(s)

	for _, typ := range weave.Types() {
		t.Run(typ.String(), func(t *testing.T) {
			p := weave.Get(typ)
			d, err := wif.GenerateDraft(s, p, wif.Metadata{Title: "Round", WarpRepeats: 2, WeftRepeats: 5})
			require.NoError(t, err)

			got, err := wif.ParseDraft(strings.NewReader(d.Content), palette.Default())
			require.NoError(t, err)

			assert.True(t, s.Equal(got.Sett), "sett %s vs %s", s, got.Sett)
			assert.Equal(t, p, got.Pattern)
			assert.Equal(t, exp.Threads, got.Warp)
			assert.Equal(t, exp.Threads, got.Weft)
			assert.Equal(t, "Round", got.Title)
			assert.Equal(t, 2, got.WarpRepeats)
			assert.Equal(t, 5, got.WeftRepeats)

			want := render(t, exp.Threads, exp.Threads, p, 64, 64)
			again := render(t, got.Warp, got.Weft, got.Pattern, 64, 64)
			assert.Equal(t, want, again)
		})
	}
}

// TestParseDraft_RawSections: without the private tartan section the draft
// is rebuilt from the standard sections. The sett length is a multiple of
// the plain weave's period, so it still renders identically.
func TestParseDraft_RawSections(t *testing.T) {
	s := sett.MustParse("K/4 R2 Y/2") // 10 threads, a multiple of plain's 2
	p := weave.Get(weave.Plain)
	d, err := wif.GenerateDraft(s, p, wif.Metadata{})
	require.NoError(t, err)

	content := withoutSection(d.Content, "PRIVATE TARTAN")
	got, err := wif.ParseDraft(strings.NewReader(content), palette.Default())
	require.NoError(t, err)

	assert.Equal(t, "K4 R2 Y2 R2", got.Sett.Threadcount())
	assert.False(t, got.Sett.IsSymmetric())
	require.NoError(t, got.Pattern.Validate())
	assert.Equal(t, 2, got.Pattern.Shafts())
	assert.Equal(t, 1, got.WarpRepeats)

	exp := sett.MustExpand(s)
	assert.Equal(t, render(t, exp.Threads, exp.Threads, p, 20, 20),
		render(t, got.Warp, got.Weft, got.Pattern, 20, 20))
}

// TestParseDraft_RawSectionsPeriodMismatch: the raw sections cover one
// sett repeat, so when the sett length is not a multiple of the weave's
// period the rebuilt pattern drifts after the first repeat. Only the
// private tartan section restores the exact pattern.
func TestParseDraft_RawSectionsPeriodMismatch(t *testing.T) {
	s := sett.MustParse("K/3 R/3")
	p := weave.Get(weave.Twill22)
	exp := sett.MustExpand(s)
	require.Equal(t, 6, exp.Length)
	require.NotZero(t, exp.Length%len(p.Threading))

	d, err := wif.GenerateDraft(s, p, wif.Metadata{})
	require.NoError(t, err)
	const n = 24
	want := render(t, exp.Threads, exp.Threads, p, n, n)

	exact, err := wif.ParseDraft(strings.NewReader(d.Content), palette.Default())
	require.NoError(t, err)
	assert.Equal(t, p, exact.Pattern)
	assert.Equal(t, want, render(t, exact.Warp, exact.Weft, exact.Pattern, n, n))

	raw, err := wif.ParseDraft(strings.NewReader(withoutSection(d.Content, "PRIVATE TARTAN")), palette.Default())
	require.NoError(t, err)
	assert.Equal(t, exp.Threads, raw.Warp)
	assert.Len(t, raw.Pattern.Threading, exp.Length)
	assert.Len(t, raw.Pattern.Treadling, exp.Length)

	got := render(t, raw.Warp, raw.Weft, raw.Pattern, n, n)
	differ := 0
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if got[y*n+x] == want[y*n+x] {
				continue
			}
			differ++
			assert.False(t, x < exp.Length && y < exp.Length, "first repeat differs at %d,%d", x, y)
		}
	}
	assert.Positive(t, differ)
}

// TestParseDraft_NearestColors: foreign drafts carry only RGB; codes come
// from the nearest palette entry.
func TestParseDraft_NearestColors(t *testing.T) {
	s := sett.MustParse("K4 W4")
	d, err := wif.GenerateDraft(s, weave.Get(weave.Plain), wif.Metadata{})
	require.NoError(t, err)

	content := withoutSection(withoutSection(d.Content, "PRIVATE TARTAN"), "PRIVATE TARTAN COLORS")
	pal := palette.Default()
	got, err := wif.ParseDraft(strings.NewReader(content), pal)
	require.NoError(t, err)

	exp := sett.MustExpand(s)
	require.Len(t, got.Warp, exp.Length)
	for i, code := range got.Warp {
		want, err := pal.Resolve(exp.Threads[i])
		require.NoError(t, err)
		have, err := pal.Resolve(code)
		require.NoError(t, err)
		assert.Equal(t, want, have, "thread %d", i)
	}
}

// TestParseDraft_Errors covers malformed input.
func TestParseDraft_Errors(t *testing.T) {
	d, err := wif.GenerateDraft(sett.MustParse("K4 R4"), weave.Get(weave.Plain), wif.Metadata{})
	require.NoError(t, err)

	cases := map[string]string{
		"Empty":          "",
		"NoSection":      "Version=1.1\n",
		"MissingTieUp":   withoutSection(d.Content, "TIEUP"),
		"BadThreadcount": strings.Replace(d.Content, "Threadcount=K4 R4", "Threadcount=K0", 1),
		"BadWeave":       strings.Replace(d.Content, "Weave=plain", "Weave=satin", 1),
		"BadColorIndex":  strings.Replace(d.Content, "[WARP COLORS]\n1=1", "[WARP COLORS]\n1=9", 1),
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := wif.ParseDraft(strings.NewReader(content), palette.Default())
			require.ErrorIs(t, err, wif.ErrFormat)
		})
	}
}
