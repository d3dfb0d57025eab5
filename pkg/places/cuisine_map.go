package places

// cuisineByType maps API category tags to the directory's cuisine taxonomy
// slugs. Loaded once at startup, never mutated.
var cuisineByType = map[string]string{
	"italian_restaurant":       "italian",
	"pizza_restaurant":         "italian",
	"french_restaurant":        "french",
	"spanish_restaurant":       "spanish",
	"greek_restaurant":         "greek",
	"chinese_restaurant":       "chinese",
	"japanese_restaurant":      "japanese",
	"sushi_restaurant":         "japanese",
	"thai_restaurant":          "thai",
	"vietnamese_restaurant":    "vietnamese",
	"indian_restaurant":        "indian",
	"korean_restaurant":        "korean",
	"mexican_restaurant":       "mexican",
	"turkish_restaurant":       "turkish",
	"lebanese_restaurant":      "lebanese",
	"american_restaurant":      "american",
	"hamburger_restaurant":     "american",
	"steak_house":              "steakhouse",
	"seafood_restaurant":       "seafood",
	"vegetarian_restaurant":    "vegetarian",
	"vegan_restaurant":         "vegan",
	"mediterranean_restaurant": "mediterranean",
	"cafe":                     "cafe",
	"bakery":                   "cafe",
	"bar":                      "bar",
}

// CuisinesForTypes returns the cuisine slugs mapped from the given category
// tags, deduplicated, in tag order.
func CuisinesForTypes(types []string) []string {
	var cuisines []string
	seen := map[string]bool{}

	for _, t := range types {
		slug, ok := cuisineByType[t]
		if !ok || seen[slug] {
			continue
		}
		seen[slug] = true
		cuisines = append(cuisines, slug)
	}

	return cuisines
}
