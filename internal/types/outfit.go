package types

import (
	"time"

	"github.com/google/uuid"
)

// SeedPiece is one garment slot in a templated outfit: a category tag, a
// descriptive label, and a color drawn from the profile's seasonal palette.
type SeedPiece struct {
	Category string `json:"category"`
	Label    string `json:"label"`
	Color    string `json:"color"`
}

// OutfitSeed is a template outfit not yet bound to real catalog products.
// Generated fresh per (archetype, season) pair; safe to regenerate on demand.
type OutfitSeed struct {
	ID     string      `json:"id"`
	Title  string      `json:"title"`
	Vibe   string      `json:"vibe"`
	Notes  string      `json:"notes"`
	Pieces []SeedPiece `json:"pieces"`
	Tags   []string    `json:"tags"`
}

// OutfitScore holds five independent factor scores in [0,1] plus the weighted
// overall. Recomputed on demand, never cached implicitly.
type OutfitScore struct {
	StyleMatch        float64 `json:"style_match"`
	ColorHarmony      float64 `json:"color_harmony"`
	PriceOptimization float64 `json:"price_optimization"`
	OccasionFit       float64 `json:"occasion_fit"`
	Novelty           float64 `json:"novelty"`
	Overall           float64 `json:"overall"`
}

// Outfit is a concrete item assignment: one product per required category
// slot. Completeness is the caller's responsibility before scoring.
type Outfit struct {
	ID       string      `json:"id"`
	Products []Product   `json:"products"`
	Score    OutfitScore `json:"score"`
}

// SwapRecord is an immutable log entry for one accepted or attempted swap.
type SwapRecord struct {
	Timestamp    time.Time `json:"timestamp"`
	Category     string    `json:"category"`
	OldProductID uuid.UUID `json:"old_product_id"`
	NewProductID uuid.UUID `json:"new_product_id"`
	ScoreBefore  float64   `json:"score_before"`
	ScoreAfter   float64   `json:"score_after"`
	Improvement  bool      `json:"improvement"`
}

// RemixedOutfit is the working result of a remix session. It lives only for
// the duration of the session and is not a system of record.
type RemixedOutfit struct {
	OriginalOutfitID string       `json:"original_outfit_id"`
	Products         []Product    `json:"products"`
	Score            OutfitScore  `json:"score"`
	ScoreDelta       float64      `json:"score_delta"`
	SwapHistory      []SwapRecord `json:"swap_history"`
	Insight          string       `json:"nova_insight"`
}

// SwapSuggestion proposes replacing one category slot with a concrete product.
type SwapSuggestion struct {
	Category            string  `json:"category"`
	SuggestedProduct    Product `json:"suggested_product"`
	ExpectedImprovement float64 `json:"expected_score_improvement"`
	Reason              string  `json:"reason"`
}

// PriceBand is an inclusive price range.
type PriceBand struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// SwapPatterns are descriptive statistics over a user's improving swaps.
type SwapPatterns struct {
	FavoriteBrands []string  `json:"favorite_brands"`
	PriceSweetSpot PriceBand `json:"price_sweet_spot"`
}

// StyleProfileResult bundles everything one quiz submission yields.
type StyleProfileResult struct {
	Color              ColorProfile `json:"color_profile"`
	Archetype          Archetype    `json:"archetype"`
	SecondaryArchetype Archetype    `json:"secondary_archetype,omitempty"`
	Confidence         float64      `json:"confidence"`
	Seeds              []OutfitSeed `json:"seeds"`
}
