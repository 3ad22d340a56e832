package weave_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tartan/weave"
)

//----------------------------------------------------------------------------//
// Catalog
//----------------------------------------------------------------------------//

// TestCatalog_SixValidEntries checks the fixed catalog is complete and valid.
func TestCatalog_SixValidEntries(t *testing.T) {
	cat := weave.Catalog()
	require.Len(t, cat, 6)
	for id, p := range cat {
		require.Equal(t, id, p.ID)
		require.NoError(t, p.Validate(), "catalog entry %s", id)
	}
	for _, typ := range weave.Types() {
		p, err := weave.Lookup(typ.String())
		require.NoError(t, err)
		require.Equal(t, typ.String(), p.ID)
	}
}

// TestLookup_Unknown reports ErrUnknownWeave.
func TestLookup_Unknown(t *testing.T) {
	_, err := weave.Lookup("satin-5")
	require.ErrorIs(t, err, weave.ErrUnknownWeave)

	p, err := weave.Lookup(" Twill-2-2 ")
	require.NoError(t, err)
	assert.Equal(t, 4, p.Shafts())
	assert.True(t, p.Twill())
}

// TestGet_ReturnsCopies guards the catalog against caller mutation.
func TestGet_ReturnsCopies(t *testing.T) {
	p := weave.Get(weave.Plain)
	p.TieUp[0][0] = false
	p.Threading[0] = 1
	q := weave.Get(weave.Plain)
	assert.True(t, q.TieUp[0][0])
	assert.Equal(t, 0, q.Threading[0])
}

// TestPlain_Checkerboard asserts the concrete plain tie-up and its law:
// warp on top exactly when x ≡ y (mod 2).
func TestPlain_Checkerboard(t *testing.T) {
	p := weave.Get(weave.Plain)
	require.Equal(t, [][]bool{{true, false}, {false, true}}, p.TieUp)

	warp := []string{"R", "R", "G", "G", "G"}
	weft := []string{"K", "Y", "Y"}
	for y := 0; y < 12; y++ {
		for x := 0; x < 12; x++ {
			got := weave.IntersectionColor(warp, weft, p, x, y)
			if x%2 == y%2 {
				require.Equal(t, warp[x%len(warp)], got, "(%d,%d)", x, y)
			} else {
				require.Equal(t, weft[y%len(weft)], got, "(%d,%d)", x, y)
			}
		}
	}
}

// TestTwill22_Balance checks every row and column shows warp half the time.
func TestTwill22_Balance(t *testing.T) {
	p := weave.Get(weave.Twill22)
	for y := 0; y < 4; y++ {
		up := 0
		for x := 0; x < 4; x++ {
			if p.IsWarpOnTop(x, y) {
				up++
			}
		}
		assert.Equal(t, 2, up, "row %d", y)
	}
	// diagonal step: row y+1 is row y shifted one shaft
	for x := 0; x < 4; x++ {
		assert.Equal(t, p.IsWarpOnTop(x, 0), p.IsWarpOnTop(x+1, 1))
	}
}

// TestTwill31_WarpFaced shows warp on three of four crossings.
func TestTwill31_WarpFaced(t *testing.T) {
	p := weave.Get(weave.Twill31)
	up := 0
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if p.IsWarpOnTop(x, y) {
				up++
			}
		}
	}
	assert.Equal(t, 12, up)
}

//----------------------------------------------------------------------------//
// Validation
//----------------------------------------------------------------------------//

// TestValidate_Errors covers each structural failure.
func TestValidate_Errors(t *testing.T) {
	ok := [][]bool{{true, false}, {false, true}}
	cases := []struct {
		name string
		p    weave.Pattern
	}{
		{"EmptyTieUp", weave.Pattern{Threading: []int{0}, Treadling: []int{0}}},
		{"Ragged", weave.Pattern{TieUp: [][]bool{{true, false}, {true}}, Threading: []int{0}, Treadling: []int{0}}},
		{"EmptyThreading", weave.Pattern{TieUp: ok, Treadling: []int{0}}},
		{"EmptyTreadling", weave.Pattern{TieUp: ok, Threading: []int{0}}},
		{"ShaftRange", weave.Pattern{TieUp: ok, Threading: []int{0, 2}, Treadling: []int{0}}},
		{"TreadleRange", weave.Pattern{TieUp: ok, Threading: []int{0}, Treadling: []int{-1}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.p.Validate()
			require.ErrorIs(t, err, weave.ErrStructural)
			var se *weave.StructuralError
			require.True(t, errors.As(err, &se))
		})
	}
}

// TestIntersectionColor_EmptyPanics treats empty sequences as programmer error.
func TestIntersectionColor_EmptyPanics(t *testing.T) {
	p := weave.Get(weave.Plain)
	require.Panics(t, func() { weave.IntersectionColor(nil, []string{"K"}, p, 0, 0) })
	require.Panics(t, func() { weave.IntersectionColor([]string{"K"}, nil, p, 0, 0) })
}

//----------------------------------------------------------------------------//
// Grid
//----------------------------------------------------------------------------//

// TestGrid_MatchesIntersectionColor keeps Grid and the free function in step.
func TestGrid_MatchesIntersectionColor(t *testing.T) {
	warp := []string{"R", "R", "G", "B", "B", "B"}
	weft := []string{"K", "W"}
	for _, typ := range weave.Types() {
		p := weave.Get(typ)
		g, err := weave.NewGrid(warp, weft, p)
		require.NoError(t, err)

		row := make([]string, 20)
		for y := 0; y < 20; y++ {
			g.Row(y, row)
			for x := range row {
				require.Equal(t, weave.IntersectionColor(warp, weft, p, x, y), row[x], "%s (%d,%d)", typ, x, y)
			}
		}
	}
}

// TestGrid_Errors rejects empty sequences and broken patterns up front.
func TestGrid_Errors(t *testing.T) {
	_, err := weave.NewGrid(nil, []string{"K"}, weave.Get(weave.Plain))
	require.ErrorIs(t, err, weave.ErrStructural)
	_, err = weave.NewGrid([]string{"K"}, []string{"K"}, weave.Pattern{})
	require.ErrorIs(t, err, weave.ErrStructural)
}

// TestGrid_Repeat checks the joint colour/draft period.
func TestGrid_Repeat(t *testing.T) {
	g, err := weave.NewGrid(make6(), []string{"K", "W", "K"}, weave.Get(weave.Herringbone))
	require.NoError(t, err)
	assert.Equal(t, 48, g.RepeatWidth())
	assert.Equal(t, 12, g.RepeatHeight())
}

func make6() []string { return []string{"A", "A", "B", "B", "C", "C"} }
