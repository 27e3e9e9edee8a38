package engine

import (
	"fmt"

	"github.com/fitfi/style-engine/internal/types"
)

// seedPieceTemplate binds one garment slot to a palette color by position.
type seedPieceTemplate struct {
	category  string
	label     string
	colorSlot int
}

// seedTemplate is one templated outfit for an archetype. The table below is
// design content, not computed. A template without pieces gets the generic
// top/bottom/shoes mapping.
type seedTemplate struct {
	title  string
	vibe   string
	notes  string
	pieces []seedPieceTemplate
}

// genericPieces is the fallback slot mapping for templates without a
// specific piece list.
var genericPieces = []seedPieceTemplate{
	{CategoryTop, "Top", 0},
	{CategoryBottom, "Bottom", 1},
	{CategoryShoes, "Shoes", 2},
}

var seedTemplates = map[types.Archetype][]seedTemplate{
	types.ArchetypeCleanMinimal: {
		{
			title: "Monochrome Weekday", vibe: "office",
			notes: "A single-tone column, broken only by texture.",
			pieces: []seedPieceTemplate{
				{CategoryTop, "Fine-knit crew neck", 0},
				{CategoryBottom, "Tapered wool trousers", 0},
				{CategoryShoes, "Minimal leather sneakers", 2},
			},
		},
		{
			title: "Soft Structure", vibe: "casual",
			notes: "Clean lines with one relaxed element.",
			pieces: []seedPieceTemplate{
				{CategoryTop, "Boxy T-shirt", 1},
				{CategoryBottom, "Straight-leg jeans", 0},
				{CategoryShoes, "White canvas sneakers", 2},
			},
		},
		{
			title: "Quiet Evening", vibe: "evening",
			notes: "Matte fabrics, no logos, nothing loud.",
		},
		{
			title: "Weekend Reset", vibe: "weekend",
			notes: "Comfortable basics that still read deliberate.",
		},
		{
			title: "Gallery Visit", vibe: "city",
			notes: "A long silhouette with a single accent.",
			pieces: []seedPieceTemplate{
				{CategoryTop, "Longline overshirt", 0},
				{CategoryBottom, "Wide cropped trousers", 1},
				{CategoryShoes, "Leather loafers", 3},
				{CategoryAccessory, "Canvas tote", 2},
			},
		},
		{
			title: "Travel Light", vibe: "travel",
			notes: "Three pieces, one palette, zero friction.",
		},
	},
	types.ArchetypeSmartCasual: {
		{
			title: "Relaxed Office", vibe: "office",
			notes: "Polished on top, easy below.",
			pieces: []seedPieceTemplate{
				{CategoryTop, "Oxford shirt", 0},
				{CategoryBottom, "Chino trousers", 1},
				{CategoryShoes, "Suede derbies", 3},
			},
		},
		{
			title: "Coffee Meeting", vibe: "casual",
			notes: "Put-together without trying too hard.",
		},
		{
			title: "Dinner Reservation", vibe: "evening",
			notes: "An unstructured blazer dresses up anything.",
			pieces: []seedPieceTemplate{
				{CategoryTop, "Unstructured blazer over knit", 0},
				{CategoryBottom, "Dark slim trousers", 1},
				{CategoryShoes, "Leather loafers", 2},
			},
		},
		{
			title: "Saturday Errands", vibe: "weekend",
			notes: "Sharp basics that survive a full day.",
		},
		{
			title: "First Date", vibe: "date",
			notes: "One notch above everyday, never a costume.",
		},
		{
			title: "City Break", vibe: "travel",
			notes: "Layers that mix across the whole trip.",
		},
	},
	types.ArchetypeClassicSoft: {
		{
			title: "Heritage Office", vibe: "office",
			notes: "Traditional pieces in gentle tones.",
			pieces: []seedPieceTemplate{
				{CategoryTop, "Merino V-neck over shirt", 0},
				{CategoryBottom, "Pleated trousers", 1},
				{CategoryShoes, "Polished brogues", 3},
			},
		},
		{
			title: "Sunday Brunch", vibe: "weekend",
			notes: "Soft tailoring, nothing stiff.",
		},
		{
			title: "Garden Party", vibe: "event",
			notes: "Light layers with a romantic touch.",
			pieces: []seedPieceTemplate{
				{CategoryTop, "Linen blouse", 1},
				{CategoryBottom, "Midi skirt", 0},
				{CategoryShoes, "Low block heels", 2},
			},
		},
		{
			title: "Library Afternoon", vibe: "casual",
			notes: "Quiet textures: knit, suede, brushed cotton.",
		},
		{
			title: "Theatre Night", vibe: "evening",
			notes: "Timeless evening pieces, softly contrasted.",
		},
		{
			title: "Countryside Walk", vibe: "outdoor",
			notes: "Practical classics that age well.",
		},
	},
	types.ArchetypeSportySharp: {
		{
			title: "Commute Ready", vibe: "city",
			notes: "Technical fabrics cut close to the body.",
			pieces: []seedPieceTemplate{
				{CategoryTop, "Performance zip top", 0},
				{CategoryBottom, "Tech joggers", 1},
				{CategoryShoes, "Running sneakers", 2},
			},
		},
		{
			title: "Gym To Street", vibe: "active",
			notes: "Pieces that work on and off the track.",
		},
		{
			title: "Athleisure Weekend", vibe: "weekend",
			notes: "Clean sportswear, no slogans.",
		},
		{
			title: "Active Travel", vibe: "travel",
			notes: "Stretch, breathability, one carry-on.",
		},
		{
			title: "Court Side", vibe: "casual",
			notes: "Retro sport references kept sharp.",
			pieces: []seedPieceTemplate{
				{CategoryTop, "Track jacket", 1},
				{CategoryBottom, "Tapered sweatpants", 0},
				{CategoryShoes, "Court sneakers", 3},
			},
		},
		{
			title: "Evening Run-In", vibe: "evening",
			notes: "Sport silhouettes in evening-dark tones.",
		},
	},
	types.ArchetypeUrbanStreet: {
		{
			title: "Block Party", vibe: "casual",
			notes: "Oversized top, grounded bottom.",
			pieces: []seedPieceTemplate{
				{CategoryTop, "Oversized hoodie", 1},
				{CategoryBottom, "Cargo pants", 0},
				{CategoryShoes, "High-top sneakers", 3},
			},
		},
		{
			title: "Late Night", vibe: "night",
			notes: "Layered silhouettes with a statement piece.",
		},
		{
			title: "Skate Session", vibe: "active",
			notes: "Durable fabrics that can take a fall.",
		},
		{
			title: "Record Store Run", vibe: "weekend",
			notes: "Vintage references, current proportions.",
		},
		{
			title: "Concert Fit", vibe: "event",
			notes: "Bold top, everything else stays quiet.",
			pieces: []seedPieceTemplate{
				{CategoryTop, "Graphic overshirt", 2},
				{CategoryBottom, "Relaxed denim", 0},
				{CategoryShoes, "Chunky sneakers", 1},
			},
		},
		{
			title: "City Winter", vibe: "outdoor",
			notes: "Technical outerwear worn loose.",
		},
	},
	types.ArchetypeRefinedLuxe: {
		{
			title: "Boardroom", vibe: "office",
			notes: "Sharp tailoring in deep tones.",
			pieces: []seedPieceTemplate{
				{CategoryTop, "Tailored blazer", 0},
				{CategoryBottom, "Cigarette trousers", 0},
				{CategoryShoes, "Pointed leather flats", 2},
			},
		},
		{
			title: "Gallery Opening", vibe: "event",
			notes: "One luxurious fabric carries the look.",
		},
		{
			title: "Dinner At Eight", vibe: "evening",
			notes: "Evening polish without black-tie stiffness.",
			pieces: []seedPieceTemplate{
				{CategoryTop, "Silk blouse", 1},
				{CategoryBottom, "High-waist palazzo pants", 0},
				{CategoryShoes, "Heeled sandals", 3},
				{CategoryAccessory, "Leather clutch", 2},
			},
		},
		{
			title: "Weekend In Antwerp", vibe: "travel",
			notes: "Understated luxury that travels flat.",
		},
		{
			title: "Champagne Brunch", vibe: "weekend",
			notes: "Soft drape, precious details.",
		},
		{
			title: "Opera Night", vibe: "evening",
			notes: "Classic evening formula, modern cut.",
		},
	},
}

// GenerateSeeds produces the fixed set of templated outfits for one
// (archetype, color profile) pair. Deterministic: ids derive from the
// archetype, season and template position, so regeneration is safe and no
// ambient counter state exists.
func GenerateSeeds(profile types.ColorProfile, archetype types.Archetype) []types.OutfitSeed {
	templates, ok := seedTemplates[archetype]
	if !ok {
		templates = seedTemplates[types.NeutralArchetype]
	}
	palette := PaletteFor(profile.Season)
	tip := contrastTip(profile.Contrast)

	seeds := make([]types.OutfitSeed, 0, len(templates))
	for i, tpl := range templates {
		pieceTemplates := tpl.pieces
		if len(pieceTemplates) == 0 {
			pieceTemplates = genericPieces
		}
		pieces := make([]types.SeedPiece, 0, len(pieceTemplates))
		for _, pt := range pieceTemplates {
			pieces = append(pieces, types.SeedPiece{
				Category: pt.category,
				Label:    pt.label,
				Color:    palette.ColorAt(pt.colorSlot).Name,
			})
		}
		seeds = append(seeds, types.OutfitSeed{
			ID:     fmt.Sprintf("%s-%s-%d", archetype, profile.Season, i+1),
			Title:  tpl.title,
			Vibe:   tpl.vibe,
			Notes:  fmt.Sprintf("%s %s %s", tpl.notes, palette.Description, tip),
			Pieces: pieces,
			Tags: []string{
				string(archetype),
				string(profile.Season),
				string(profile.Temperature),
				string(profile.Contrast),
			},
		})
	}
	return seeds
}

func contrastTip(c types.Contrast) string {
	switch c {
	case types.ContrastHigh:
		return "Pair light and dark pieces for crisp definition."
	case types.ContrastLow:
		return "Stay tonal and let texture do the work."
	default:
		return "Set one accent against a calm base."
	}
}
