package generator

import (
	"fmt"

	"github.com/katalvlaran/tartan/sett"
)

// mutateKeepProbability is the chance a shared stripe index takes the base colour.
const mutateKeepProbability = 0.5

// Mutate returns n variants of base. Variant i (1-based) regenerates a
// fresh sett from seed base.Seed+i under base.Constraints, then, for each
// stripe index both setts have, copies the base colour with probability ½.
// A copy that would put the same colour on two neighbouring stripes is
// skipped. Options supply the palette and logger; WithSeed is ignored.
func Mutate(base Result, n int, opts ...Option) ([]Result, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodMutate, n, ErrBadCount)
	}
	if base.Sett.IsEmpty() {
		return nil, fmt.Errorf("%s: base: %w", methodMutate, sett.ErrEmptySett)
	}
	cfg := newConfig(opts...)
	rc, err := resolve(base.Constraints, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodMutate, err)
	}

	baseStripes := base.Sett.Stripes()
	out := make([]Result, 0, n)
	for i := 1; i <= n; i++ {
		seed := base.Seed + int64(i)
		fresh := generate(rc, seed, cfg)
		coin := rngFromSeed(deriveSeed(seed, streamMutate))

		stripes := fresh.Sett.Stripes()
		shared := minInt(len(stripes), len(baseStripes))
		for j := 0; j < shared; j++ {
			if coin.Float64() >= mutateKeepProbability {
				continue
			}
			want := baseStripes[j].Color
			if j > 0 && stripes[j-1].Color == want {
				continue
			}
			if j+1 < len(stripes) && stripes[j+1].Color == want {
				continue
			}
			stripes[j].Color = want
		}

		out = append(out, newResult(stripes, seed, base.Constraints, "mutate", fresh.Degraded))
	}
	return out, nil
}
