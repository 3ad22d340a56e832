package palette

// builtin is the fixed 48-colour table. Order is stable and user visible.
var builtin = []Color{
	{Code: "K", Name: "Black", Hex: "#101010"},
	{Code: "W", Name: "White", Hex: "#F8F8F8"},
	{Code: "R", Name: "Red", Hex: "#C8102E"},
	{Code: "B", Name: "Blue", Hex: "#1C3F94"},
	{Code: "G", Name: "Green", Hex: "#006A4E"},
	{Code: "Y", Name: "Yellow", Hex: "#F2C12E"},
	{Code: "N", Name: "Grey", Hex: "#8C8C8C"},
	{Code: "A", Name: "Azure", Hex: "#5B9BD5"},
	{Code: "P", Name: "Purple", Hex: "#5E2A84"},
	{Code: "O", Name: "Orange", Hex: "#E87722"},
	{Code: "T", Name: "Tan", Hex: "#B08D57"},
	{Code: "C", Name: "Crimson", Hex: "#A50034"},
	{Code: "M", Name: "Maroon", Hex: "#6B1E2B"},
	{Code: "DB", Name: "Dark Blue", Hex: "#101C4E"},
	{Code: "LB", Name: "Light Blue", Hex: "#8DB9E0"},
	{Code: "DG", Name: "Dark Green", Hex: "#0B3D2E"},
	{Code: "LG", Name: "Light Green", Hex: "#86BC6D"},
	{Code: "DR", Name: "Dark Red", Hex: "#7A0019"},
	{Code: "LR", Name: "Light Red", Hex: "#E35D6A"},
	{Code: "DN", Name: "Dark Grey", Hex: "#4A4A4A"},
	{Code: "LN", Name: "Light Grey", Hex: "#C4C4C4"},
	{Code: "DY", Name: "Dark Yellow", Hex: "#C99A06"},
	{Code: "LY", Name: "Light Yellow", Hex: "#FBE38E"},
	{Code: "DP", Name: "Dark Purple", Hex: "#3B1452"},
	{Code: "LP", Name: "Lilac", Hex: "#B79FCB"},
	{Code: "DO", Name: "Dark Orange", Hex: "#B5521B"},
	{Code: "LO", Name: "Light Orange", Hex: "#F5B971"},
	{Code: "DT", Name: "Dark Tan", Hex: "#6F4E37"},
	{Code: "LT", Name: "Light Tan", Hex: "#D9C3A0"},
	{Code: "CR", Name: "Cream", Hex: "#F3E5C0"},
	{Code: "S", Name: "Scarlet", Hex: "#E0301E"},
	{Code: "RB", Name: "Royal Blue", Hex: "#2B4FA8"},
	{Code: "NB", Name: "Navy", Hex: "#0F1A3C"},
	{Code: "HG", Name: "Hunting Green", Hex: "#254E3A"},
	{Code: "MG", Name: "Moss Green", Hex: "#6B7F3A"},
	{Code: "OG", Name: "Olive", Hex: "#556B2F"},
	{Code: "TQ", Name: "Turquoise", Hex: "#30A5A0"},
	{Code: "TL", Name: "Teal", Hex: "#127B7B"},
	{Code: "PK", Name: "Pink", Hex: "#E8A0B4"},
	{Code: "MV", Name: "Mauve", Hex: "#9C6B8E"},
	{Code: "RS", Name: "Rust", Hex: "#A0441E"},
	{Code: "GD", Name: "Gold", Hex: "#D4A017"},
	{Code: "BN", Name: "Brown", Hex: "#5C3A21"},
	{Code: "CH", Name: "Charcoal", Hex: "#333333"},
	{Code: "SL", Name: "Slate", Hex: "#5D6D7E"},
	{Code: "SK", Name: "Sky Blue", Hex: "#87CEEB"},
	{Code: "HT", Name: "Heather", Hex: "#8E7B97"},
	{Code: "WN", Name: "Wine", Hex: "#5A0F2E"},
}

// builtinIndex maps upper-case code → position in builtin.
var builtinIndex = func() map[string]int {
	m := make(map[string]int, len(builtin))
	for i := range builtin {
		rgb, err := ParseHex(builtin[i].Hex)
		if err != nil {
			panic("palette: bad built-in hex " + builtin[i].Hex)
		}
		builtin[i].RGB = rgb
		m[builtin[i].Code] = i
	}
	return m
}()

// BuiltinSize is the number of built-in colours.
const BuiltinSize = 48

// Builtin returns a copy of the built-in table.
func Builtin() []Color {
	out := make([]Color, len(builtin))
	copy(out, builtin)
	return out
}

// BuiltinCodes returns the built-in codes in table order.
func BuiltinCodes() []string {
	out := make([]string, len(builtin))
	for i, c := range builtin {
		out[i] = c.Code
	}
	return out
}
