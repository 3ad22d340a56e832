package yarn

// Profile is a yarn weight class.
type Profile struct {
	Key          string  `yaml:"key" json:"key"`
	Name         string  `yaml:"name" json:"name"`
	WPI          float64 `yaml:"wpi" json:"wpi"`                     // wraps per inch
	YardsPer100g float64 `yaml:"yards_per_100g" json:"yardsPer100g"`
	SkeinGrams   float64 `yaml:"skein_grams" json:"skeinGrams"`      // 0 → 100
}

// YardsPerSkein is the length of one skein.
func (p Profile) YardsPerSkein() float64 {
	g := p.SkeinGrams
	if g <= 0 {
		g = 100
	}
	return p.YardsPer100g * g / 100
}

// Product is a finished-piece template. Dimensions are in inches.
type Product struct {
	Key    string  `yaml:"key" json:"key"`
	Name   string  `yaml:"name" json:"name"`
	Width  float64 `yaml:"width" json:"width"`
	Length float64 `yaml:"length" json:"length"`
}

// Requirement is the yarn needed for one colour, or the totals row.
type Requirement struct {
	Color       string
	WarpThreads float64 // warp ends of this colour (fractional share)
	WeftThreads float64 // weft picks of this colour (fractional share)
	WarpYards   float64
	WeftYards   float64
	TotalYards  float64
	Skeins      int
	WeightGrams float64
	Cost        float64
}

// Calculation is the result of Calculate.
type Calculation struct {
	Profile         Profile
	Product         Product
	Weave           string // weave id used for gauge derivation
	WasteMultiplier float64
	Gauge           float64 // threads per inch, both axes
	WarpEnds        int
	WeftPicks       int
	Requirements    []Requirement // one per colour, first-appearance order
	Totals          Requirement   // Color is empty
}
