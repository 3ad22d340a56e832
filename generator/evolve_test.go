package generator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tartan/generator"
	"github.com/katalvlaran/tartan/sett"
)

// TestMutate_DeterministicVariants checks seeds, count and reproducibility.
func TestMutate_DeterministicVariants(t *testing.T) {
	base, err := generator.GenerateOne(generator.DefaultConstraints(), 100)
	require.NoError(t, err)

	a, err := generator.Mutate(base, 5)
	require.NoError(t, err)
	b, err := generator.Mutate(base, 5)
	require.NoError(t, err)
	require.Len(t, a, 5)

	for i := range a {
		assert.Equal(t, base.Seed+int64(i+1), a[i].Seed)
		assert.Equal(t, "mutate", a[i].Strategy)
		assert.True(t, a[i].Sett.Equal(b[i].Sett))
		assert.Empty(t, sett.AdjacentRepeats(a[i].Sett), a[i].Sett.String())
	}
}

// TestMutate_InheritsColours checks some base colours survive across variants.
func TestMutate_InheritsColours(t *testing.T) {
	c := generator.DefaultConstraints()
	c.AllowedColors = nil // whole palette: fresh draws rarely match base by chance
	base, err := generator.GenerateOne(c, 9)
	require.NoError(t, err)

	variants, err := generator.Mutate(base, 10)
	require.NoError(t, err)

	inherited := 0
	baseStripes := base.Sett.Stripes()
	for _, v := range variants {
		for j, st := range v.Sett.Stripes() {
			if j < len(baseStripes) && st.Color == baseStripes[j].Color {
				inherited++
			}
		}
	}
	assert.Positive(t, inherited)
}

// TestMutate_Errors rejects empty bases and negative counts.
func TestMutate_Errors(t *testing.T) {
	_, err := generator.Mutate(generator.Result{}, 2)
	require.ErrorIs(t, err, sett.ErrEmptySett)

	base, err := generator.GenerateOne(generator.DefaultConstraints(), 1)
	require.NoError(t, err)
	_, err = generator.Mutate(base, -2)
	require.ErrorIs(t, err, generator.ErrBadCount)
}

// TestBreed_FourChildren checks strategies, pivots and determinism.
func TestBreed_FourChildren(t *testing.T) {
	a, err := generator.GenerateOne(generator.DefaultConstraints(), 11)
	require.NoError(t, err)
	c := generator.DefaultConstraints()
	c.Symmetry = generator.Asymmetric
	b, err := generator.GenerateOne(c, 12)
	require.NoError(t, err)

	kids, err := generator.Breed(a, b)
	require.NoError(t, err)
	require.Len(t, kids, 4)

	names := []string{
		generator.StrategyInterleave,
		generator.StrategyStructureAColB,
		generator.StrategyStructureBColA,
		generator.StrategyRandomDonor,
	}
	for i, k := range kids {
		assert.Equal(t, names[i], k.Strategy)
		stripes := k.Sett.Stripes()
		for j, st := range stripes {
			assert.Equal(t, j == 0 || j == len(stripes)-1, st.Pivot, "%s stripe %d", k.Strategy, j)
		}
		if !k.Degraded {
			assert.Empty(t, sett.AdjacentRepeats(k.Sett), k.Sett.String())
		}
	}

	// structure-a/colors-b keeps A's counts
	aStripes := a.Sett.Stripes()
	for j, st := range kids[1].Sett.Stripes() {
		assert.Equal(t, aStripes[j].Count, st.Count)
	}
	assert.Equal(t, b.Sett.Len(), kids[2].Sett.Len())

	again, err := generator.Breed(a, b)
	require.NoError(t, err)
	for i := range kids {
		assert.True(t, kids[i].Sett.Equal(again[i].Sett))
	}
}

// TestBreed_EmptyParent is rejected.
func TestBreed_EmptyParent(t *testing.T) {
	a, err := generator.GenerateOne(generator.DefaultConstraints(), 1)
	require.NoError(t, err)
	_, err = generator.Breed(a, generator.Result{})
	require.ErrorIs(t, err, sett.ErrEmptySett)
}
