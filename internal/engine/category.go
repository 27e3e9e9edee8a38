package engine

import "strings"

// Category slot names used across seeds, scoring and remixing.
const (
	CategoryTop       = "top"
	CategoryBottom    = "bottom"
	CategoryShoes     = "shoes"
	CategoryAccessory = "accessory"
)

// RequiredCategories must all be covered before an outfit can be scored.
// Accessory is optional.
var RequiredCategories = []string{CategoryTop, CategoryBottom, CategoryShoes}

// SwappableCategories are the slots the remixer searches alternatives for.
var SwappableCategories = []string{CategoryTop, CategoryBottom, CategoryShoes}

// categoryKeywords maps a slot name to catalog category substrings. Catalogs
// are inconsistent about naming, so matching is keyword based.
var categoryKeywords = map[string][]string{
	CategoryTop:       {"top", "shirt", "blouse", "sweater", "knit"},
	CategoryBottom:    {"bottom", "pants", "jeans", "skirt", "trouser"},
	CategoryShoes:     {"shoe", "footwear", "sneaker", "boot"},
	CategoryAccessory: {"accessory", "accessoire", "bag", "jewelry"},
}

// MatchCategory reports whether a catalog product category fills the target
// slot.
func MatchCategory(productCategory, target string) bool {
	normalized := strings.ToLower(strings.TrimSpace(productCategory))
	for _, kw := range categoryKeywords[strings.ToLower(target)] {
		if strings.Contains(normalized, kw) {
			return true
		}
	}
	return false
}
