package weave

import (
	"fmt"
	"strings"
)

// twillTieUp builds an n×n tie-up where shaft s rises on treadle t when
// (s - t·dir) mod n < up.
func twillTieUp(n, up, dir int) [][]bool {
	m := make([][]bool, n)
	for t := 0; t < n; t++ {
		m[t] = make([]bool, n)
		for s := 0; s < n; s++ {
			d := ((s-t*dir)%n + n) % n
			m[t][s] = d < up
		}
	}
	return m
}

func straight(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// catalog holds one data record per Type. Never handed out directly.
var catalog = [typeCount]Pattern{
	Plain: {
		Name:      "Plain (1/1)",
		TieUp:     [][]bool{{true, false}, {false, true}},
		Threading: []int{0, 1},
		Treadling: []int{0, 1},
	},
	Twill22: {
		Name:      "Twill 2/2",
		TieUp:     twillTieUp(4, 2, 1),
		Threading: straight(4),
		Treadling: straight(4),
	},
	Twill31: {
		Name:      "Twill 3/1",
		TieUp:     twillTieUp(4, 3, 1),
		Threading: straight(4),
		Treadling: straight(4),
	},
	Herringbone: {
		Name:      "Herringbone",
		TieUp:     twillTieUp(4, 2, 1),
		Threading: []int{0, 1, 2, 3, 0, 1, 2, 3, 3, 2, 1, 0, 3, 2, 1, 0},
		Treadling: straight(4),
	},
	Houndstooth: {
		Name:      "Houndstooth",
		TieUp:     twillTieUp(4, 2, -1),
		Threading: straight(4),
		Treadling: straight(4),
	},
	Basket: {
		Name:      "Basket (2/2)",
		TieUp:     [][]bool{{true, false}, {false, true}},
		Threading: []int{0, 0, 1, 1},
		Treadling: []int{0, 0, 1, 1},
	},
}

func init() {
	for t := range catalog {
		catalog[t].ID = ids[t]
		if err := catalog[t].Validate(); err != nil {
			panic(err)
		}
	}
}

// Get returns a deep copy of the catalog entry for t.
// Panics on a Type outside the enumeration.
func Get(t Type) Pattern {
	if t < 0 || t >= typeCount {
		panic(fmt.Sprintf("weave: Get(%d): no such type", int(t)))
	}
	return catalog[t].clone()
}

// Lookup resolves a catalog id (case-insensitive) such as "twill-2-2".
func Lookup(id string) (Pattern, error) {
	t, err := ParseType(id)
	if err != nil {
		return Pattern{}, err
	}
	return Get(t), nil
}

// ParseType maps an id back to its Type.
func ParseType(id string) (Type, error) {
	key := strings.ToLower(strings.TrimSpace(id))
	for t, s := range ids {
		if s == key {
			return Type(t), nil
		}
	}
	return 0, fmt.Errorf("weave: %q: %w", id, ErrUnknownWeave)
}

// Catalog returns copies of all six patterns keyed by id.
func Catalog() map[string]Pattern {
	out := make(map[string]Pattern, typeCount)
	for t := range catalog {
		out[ids[t]] = catalog[t].clone()
	}
	return out
}

func (p Pattern) clone() Pattern {
	c := p
	c.TieUp = make([][]bool, len(p.TieUp))
	for i, row := range p.TieUp {
		c.TieUp[i] = append([]bool(nil), row...)
	}
	c.Threading = append([]int(nil), p.Threading...)
	c.Treadling = append([]int(nil), p.Treadling...)
	return c
}
