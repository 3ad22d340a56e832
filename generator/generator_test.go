package generator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/tartan/generator"
	"github.com/katalvlaran/tartan/palette"
	"github.com/katalvlaran/tartan/sett"
)

// constraintSets are shared fixtures spanning both symmetries.
func constraintSets() map[string]generator.Constraints {
	wide := generator.DefaultConstraints()

	asym := generator.DefaultConstraints()
	asym.Symmetry = generator.Asymmetric
	asym.AllowedColors = []string{"K", "R", "G", "B", "Y", "W"}

	either := generator.Constraints{
		ColorCount:      generator.Range{Min: 3, Max: 4},
		StripeCount:     generator.Range{Min: 3, Max: 12},
		ThreadPerStripe: generator.Range{Min: 1, Max: 8},
		TotalThreads:    generator.Range{Min: 30, Max: 40},
		Symmetry:        generator.Either,
		AllowedColors:   []string{"DB", "DG", "R", "Y"},
	}

	tight := generator.Constraints{
		ColorCount:      generator.Range{Min: 3, Max: 3},
		StripeCount:     generator.Range{Min: 5, Max: 5},
		ThreadPerStripe: generator.Range{Min: 2, Max: 30},
		TotalThreads:    generator.Range{Min: 100, Max: 100},
		Symmetry:        generator.Symmetric,
		AllowedColors:   []string{"K", "W", "R"},
	}

	return map[string]generator.Constraints{"default": wide, "asym": asym, "either": either, "tight": tight}
}

//----------------------------------------------------------------------------//
// GenerateOne
//----------------------------------------------------------------------------//

type GenerateSuite struct {
	suite.Suite
}

func TestGenerateSuite(t *testing.T) {
	suite.Run(t, new(GenerateSuite))
}

// TestDeterminism checks identical (constraints, seed) give identical setts.
func (s *GenerateSuite) TestDeterminism() {
	for name, c := range constraintSets() {
		for seed := int64(0); seed < 25; seed++ {
			a, err := generator.GenerateOne(c, seed)
			require.NoError(s.T(), err, name)
			b, err := generator.GenerateTartan(c, seed)
			require.NoError(s.T(), err, name)
			require.True(s.T(), a.Sett.Equal(b.Sett), "%s seed %d: %s vs %s", name, seed, a.Sett, b.Sett)
			require.Equal(s.T(), a.Signature, b.Signature)
		}
	}
}

// TestRangeCompliance checks stripe, colour and total ranges on many seeds.
func (s *GenerateSuite) TestRangeCompliance() {
	for name, c := range constraintSets() {
		for seed := int64(1); seed <= 200; seed++ {
			r, err := generator.GenerateOne(c, seed)
			require.NoError(s.T(), err)
			st := r.Sett
			require.True(s.T(), c.TotalThreads.Contains(st.TotalThreads()), "%s seed %d total %d", name, seed, st.TotalThreads())
			require.True(s.T(), c.StripeCount.Contains(st.Len()), "%s seed %d stripes %d", name, seed, st.Len())
			require.True(s.T(), c.ColorCount.Contains(len(st.Colors())), "%s seed %d colours %v", name, seed, st.Colors())
			for _, stripe := range st.Stripes() {
				require.True(s.T(), c.ThreadPerStripe.Contains(stripe.Count), "%s seed %d stripe %+v", name, seed, stripe)
				if len(c.AllowedColors) > 0 {
					require.Contains(s.T(), c.AllowedColors, stripe.Color)
				}
			}
		}
	}
}

// TestNoAdjacentRepeat checks neighbouring stripes never share a colour.
func (s *GenerateSuite) TestNoAdjacentRepeat() {
	for name, c := range constraintSets() {
		for seed := int64(1); seed <= 200; seed++ {
			r, err := generator.GenerateOne(c, seed)
			require.NoError(s.T(), err)
			require.False(s.T(), r.Degraded, "%s seed %d", name, seed)
			require.Empty(s.T(), sett.AdjacentRepeats(r.Sett), "%s seed %d: %s", name, seed, r.Sett)
		}
	}
}

// TestSymmetryPivots checks pivot placement for each symmetry mode.
func (s *GenerateSuite) TestSymmetryPivots() {
	c := generator.DefaultConstraints()
	r, err := generator.GenerateOne(c, 7)
	require.NoError(s.T(), err)
	require.True(s.T(), r.Sett.IsSymmetric())
	for i, st := range r.Sett.Stripes() {
		require.Equal(s.T(), i == 0 || i == r.Sett.Len()-1, st.Pivot)
	}

	c.Symmetry = generator.Asymmetric
	r, err = generator.GenerateOne(c, 7)
	require.NoError(s.T(), err)
	for _, st := range r.Sett.Stripes() {
		require.False(s.T(), st.Pivot)
	}

	c.Symmetry = generator.Either
	sym, asym := 0, 0
	for seed := int64(1); seed <= 100; seed++ {
		r, err = generator.GenerateOne(c, seed)
		require.NoError(s.T(), err)
		if r.Sett.IsSymmetric() {
			sym++
		} else {
			asym++
		}
	}
	require.Positive(s.T(), sym)
	require.Positive(s.T(), asym)
}

// TestPaletteFallback draws from the whole palette when none are allowed.
func (s *GenerateSuite) TestPaletteFallback() {
	pal, err := palette.New(palette.Color{Code: "Zed", Hex: "#123456"})
	require.NoError(s.T(), err)
	c := generator.DefaultConstraints()
	c.AllowedColors = []string{"Zed", "K", "W"}
	c.ColorCount = generator.Range{Min: 3, Max: 3}

	r, err := generator.GenerateOne(c, 3, generator.WithPalette(pal))
	require.NoError(s.T(), err)
	require.ElementsMatch(s.T(), []string{"Zed", "K", "W"}, r.Sett.Colors())

	_, err = generator.GenerateOne(c, 3)
	require.ErrorIs(s.T(), err, generator.ErrUnknownColor)

	c.AllowedColors = nil
	r, err = generator.GenerateOne(c, 3)
	require.NoError(s.T(), err)
	for _, code := range r.Sett.Colors() {
		_, ok := palette.Default().Lookup(code)
		require.True(s.T(), ok, code)
	}
}

//----------------------------------------------------------------------------//
// Validation
//----------------------------------------------------------------------------//

// TestValidate_Errors fails fast with the narrow sentinel and ErrConstraint.
func TestValidate_Errors(t *testing.T) {
	base := generator.DefaultConstraints()
	cases := []struct {
		name   string
		mutate func(*generator.Constraints)
		err    error
	}{
		{"MinZero", func(c *generator.Constraints) { c.StripeCount.Min = 0 }, generator.ErrBadRange},
		{"MinAboveMax", func(c *generator.Constraints) { c.TotalThreads = generator.Range{Min: 10, Max: 5} }, generator.ErrBadRange},
		{"BlankColors", func(c *generator.Constraints) { c.AllowedColors = []string{" ", ""} }, generator.ErrNoColors},
		{"UnknownColor", func(c *generator.Constraints) { c.AllowedColors = []string{"K", "QQ"} }, generator.ErrUnknownColor},
		{"TooFewColors", func(c *generator.Constraints) { c.AllowedColors = []string{"K", "W"} }, generator.ErrInfeasible},
		{"TotalsUnreachable", func(c *generator.Constraints) { c.TotalThreads = generator.Range{Min: 1000, Max: 2000} }, generator.ErrInfeasible},
		{"SymmetricNeedsTwo", func(c *generator.Constraints) {
			c.StripeCount = generator.Range{Min: 1, Max: 1}
			c.ColorCount = generator.Range{Min: 1, Max: 1}
			c.TotalThreads = generator.Range{Min: 2, Max: 48}
		}, generator.ErrInfeasible},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := base
			tc.mutate(&c)
			err := c.Validate()
			require.ErrorIs(t, err, tc.err)
			require.ErrorIs(t, err, generator.ErrConstraint)

			_, err = generator.GenerateOne(c, 1)
			require.ErrorIs(t, err, tc.err)
			_, err = generator.GenerateBatch(3, c)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

// TestParseSymmetry maps names and rejects unknown ones.
func TestParseSymmetry(t *testing.T) {
	for in, want := range map[string]generator.Symmetry{"symmetric": generator.Symmetric, "ASYM": generator.Asymmetric, "either": generator.Either} {
		got, err := generator.ParseSymmetry(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := generator.ParseSymmetry("radial")
	require.ErrorIs(t, err, generator.ErrConstraint)
}

//----------------------------------------------------------------------------//
// Signatures
//----------------------------------------------------------------------------//

// TestSign relabels colours by first appearance.
func TestSign(t *testing.T) {
	sig := generator.Sign(sett.MustParse("B/24 W4 B24 R2 K24 G24 W/2"))
	assert.Equal(t, "B/24 W4 B24 R2 K24 G24 W/2", sig.Full)
	assert.Equal(t, "a/24 b4 a24 c2 d24 e24 b/2", sig.Structure)
	assert.Equal(t, "a/231 b38 a231 c19 d231 e231 b/19", sig.Proportion)

	other := generator.Sign(sett.MustParse("R/24 K4 R24 Y2 G24 B24 K/2"))
	assert.Equal(t, sig.Structure, other.Structure)
	assert.NotEqual(t, sig.Full, other.Full)
}

//----------------------------------------------------------------------------//
// GenerateBatch
//----------------------------------------------------------------------------//

// TestBatch_Unique returns n results with distinct structures.
func TestBatch_Unique(t *testing.T) {
	c := generator.DefaultConstraints()
	res, err := generator.GenerateBatch(20, c, generator.WithSeed(42))
	require.NoError(t, err)
	require.Len(t, res, 20)

	seen := map[string]bool{}
	prevSeed := int64(41)
	for _, r := range res {
		require.False(t, r.Degraded)
		require.False(t, seen[r.Signature.Structure], "duplicate %s", r.Signature.Structure)
		seen[r.Signature.Structure] = true
		require.Greater(t, r.Seed, prevSeed, "seeds must advance")
		prevSeed = r.Seed
	}

	again, err := generator.GenerateBatch(20, c, generator.WithSeed(42))
	require.NoError(t, err)
	for i := range res {
		require.True(t, res[i].Sett.Equal(again[i].Sett))
	}
}

// TestBatch_ExhaustedSpace keeps the batch size and flags degradation.
func TestBatch_ExhaustedSpace(t *testing.T) {
	c := generator.Constraints{
		ColorCount:      generator.Range{Min: 2, Max: 2},
		StripeCount:     generator.Range{Min: 2, Max: 2},
		ThreadPerStripe: generator.Range{Min: 1, Max: 1},
		TotalThreads:    generator.Range{Min: 2, Max: 2},
		Symmetry:        generator.Symmetric,
		AllowedColors:   []string{"R", "G"},
	}
	core, logs := observer.New(zapcore.DebugLevel)
	res, err := generator.GenerateBatch(3, c,
		generator.WithMaxBatchAttempts(4), generator.WithLogger(zap.New(core)))
	require.NoError(t, err)
	require.Len(t, res, 3)

	assert.False(t, res[0].Degraded)
	assert.True(t, res[1].Degraded)
	assert.True(t, res[2].Degraded)
	assert.Equal(t, 2, logs.FilterMessageSnippet("batch slot exhausted").Len())
}

// TestBatch_Zero and negative sizes.
func TestBatch_Sizes(t *testing.T) {
	res, err := generator.GenerateBatch(0, generator.DefaultConstraints())
	require.NoError(t, err)
	require.Empty(t, res)

	_, err = generator.GenerateBatch(-1, generator.DefaultConstraints())
	require.ErrorIs(t, err, generator.ErrBadCount)
}

// TestOptions_Panics checks option constructors reject nonsense.
func TestOptions_Panics(t *testing.T) {
	require.Panics(t, func() { generator.WithLogger(nil) })
	require.Panics(t, func() { generator.WithMaxBatchAttempts(0) })
}
