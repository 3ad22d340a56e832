package yarn

import "strings"

// Built-in yarn profiles, finest first.
var builtinProfiles = []Profile{
	{Key: "lace", Name: "Lace", WPI: 18, YardsPer100g: 800, SkeinGrams: 50},
	{Key: "fingering", Name: "Fingering", WPI: 14, YardsPer100g: 400, SkeinGrams: 50},
	{Key: "sport", Name: "Sport", WPI: 12, YardsPer100g: 300, SkeinGrams: 50},
	{Key: "dk", Name: "DK", WPI: 11, YardsPer100g: 250, SkeinGrams: 100},
	{Key: "worsted", Name: "Worsted", WPI: 9, YardsPer100g: 200, SkeinGrams: 100},
	{Key: "aran", Name: "Aran", WPI: 8, YardsPer100g: 170, SkeinGrams: 100},
	{Key: "bulky", Name: "Bulky", WPI: 7, YardsPer100g: 120, SkeinGrams: 100},
}

// Built-in product templates.
var builtinProducts = []Product{
	{Key: "scarf", Name: "Scarf", Width: 10, Length: 70},
	{Key: "stole", Name: "Stole", Width: 20, Length: 72},
	{Key: "blanket", Name: "Blanket", Width: 60, Length: 80},
	{Key: "throw", Name: "Throw", Width: 50, Length: 60},
	{Key: "kilt", Name: "Kilt (8 yard)", Width: 26, Length: 288},
	{Key: "tie", Name: "Necktie", Width: 4, Length: 58},
	{Key: "pillow", Name: "Pillow cover", Width: 18, Length: 36},
}

// DefaultProfile is used when no profile is selected.
const DefaultProfile = "fingering"

// Profiles returns a copy of the built-in yarn profiles.
func Profiles() []Profile {
	out := make([]Profile, len(builtinProfiles))
	copy(out, builtinProfiles)
	return out
}

// Products returns a copy of the built-in product templates.
func Products() []Product {
	out := make([]Product, len(builtinProducts))
	copy(out, builtinProducts)
	return out
}

// LookupProfile finds a built-in profile by key (case-insensitive).
func LookupProfile(key string) (Profile, bool) { return find(builtinProfiles, key, profileKey) }

// LookupProduct finds a built-in product by key (case-insensitive).
func LookupProduct(key string) (Product, bool) { return find(builtinProducts, key, productKey) }

func profileKey(p Profile) string { return p.Key }
func productKey(p Product) string { return p.Key }

// find scans extra-first lists; later registrations shadow earlier ones.
func find[T any](list []T, key string, keyOf func(T) string) (T, bool) {
	key = strings.TrimSpace(key)
	for i := len(list) - 1; i >= 0; i-- {
		if strings.EqualFold(keyOf(list[i]), key) {
			return list[i], true
		}
	}
	var zero T
	return zero, false
}
