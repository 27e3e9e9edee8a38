package engine

import "github.com/fitfi/style-engine/internal/types"

// Swatch is one wearable color in a seasonal palette.
type Swatch struct {
	Hex  string `json:"hex"`
	Name string `json:"name"`
}

// Palette is the small fixed set of base/accent/neutral colors associated
// with one named season. The swatch sets are design content, not computed.
type Palette struct {
	Season      types.Season
	Label       string
	Description string
	Base        []Swatch
	Accent      []Swatch
	Neutral     []Swatch
	Avoid       []Swatch
}

var seasonalPalettes = map[types.Season]Palette{
	types.SeasonWinter: {
		Season:      types.SeasonWinter,
		Label:       "Winter",
		Description: "Clear, cool colors with high contrast. Sophisticated and timeless.",
		Base: []Swatch{
			{Hex: "#FFFFFF", Name: "pure white"},
			{Hex: "#000000", Name: "black"},
			{Hex: "#1C2833", Name: "navy"},
			{Hex: "#34495E", Name: "dark blue"},
		},
		Accent: []Swatch{
			{Hex: "#6A1B4D", Name: "burgundy"},
			{Hex: "#1E8449", Name: "emerald"},
			{Hex: "#154360", Name: "sapphire"},
			{Hex: "#0E6655", Name: "petrol"},
		},
		Neutral: []Swatch{
			{Hex: "#95A5A6", Name: "silver grey"},
			{Hex: "#AAB7B8", Name: "light grey"},
			{Hex: "#F8F9F9", Name: "off white"},
		},
		Avoid: []Swatch{
			{Hex: "#D4A574", Name: "camel"},
			{Hex: "#E67E22", Name: "orange"},
			{Hex: "#D4AC0D", Name: "gold"},
		},
	},
	types.SeasonSummer: {
		Season:      types.SeasonSummer,
		Label:       "Summer",
		Description: "Soft, muted colors with a cool undertone. Elegant and refined.",
		Base: []Swatch{
			{Hex: "#FDFEFE", Name: "soft white"},
			{Hex: "#ECF0F1", Name: "light grey"},
			{Hex: "#85929E", Name: "grey blue"},
			{Hex: "#5D6D7E", Name: "slate"},
		},
		Accent: []Swatch{
			{Hex: "#AEB6BF", Name: "dove grey"},
			{Hex: "#85C1E2", Name: "soft blue"},
			{Hex: "#A3B1C1", Name: "soft lavender"},
			{Hex: "#C3B1C0", Name: "dusty mauve"},
		},
		Neutral: []Swatch{
			{Hex: "#D5D8DC", Name: "pearl grey"},
			{Hex: "#E5E8E8", Name: "cloud"},
			{Hex: "#BDC3C7", Name: "silver"},
		},
		Avoid: []Swatch{
			{Hex: "#000000", Name: "black"},
			{Hex: "#E67E22", Name: "orange"},
			{Hex: "#943126", Name: "deep red"},
		},
	},
	types.SeasonSpring: {
		Season:      types.SeasonSpring,
		Label:       "Spring",
		Description: "Fresh, warm colors with a light touch. Bright without being loud.",
		Base: []Swatch{
			{Hex: "#FDF2E9", Name: "ivory"},
			{Hex: "#F5CBA7", Name: "light camel"},
			{Hex: "#FAD7A0", Name: "soft apricot"},
			{Hex: "#AED6F1", Name: "clear light blue"},
		},
		Accent: []Swatch{
			{Hex: "#E74C3C", Name: "coral red"},
			{Hex: "#F39C12", Name: "warm yellow"},
			{Hex: "#58D68D", Name: "fresh green"},
			{Hex: "#5DADE2", Name: "turquoise blue"},
		},
		Neutral: []Swatch{
			{Hex: "#F0E6D2", Name: "cream"},
			{Hex: "#D7BDA6", Name: "sand"},
			{Hex: "#B49C7E", Name: "light taupe"},
		},
		Avoid: []Swatch{
			{Hex: "#000000", Name: "black"},
			{Hex: "#5D6D7E", Name: "slate"},
			{Hex: "#512E5F", Name: "aubergine"},
		},
	},
	types.SeasonAutumn: {
		Season:      types.SeasonAutumn,
		Label:       "Autumn",
		Description: "Muted, warm earth tones with depth. Rich and grounded.",
		Base: []Swatch{
			{Hex: "#7E5109", Name: "cognac"},
			{Hex: "#6E2C00", Name: "chestnut"},
			{Hex: "#784212", Name: "dark camel"},
			{Hex: "#145A32", Name: "forest green"},
		},
		Accent: []Swatch{
			{Hex: "#B9770E", Name: "mustard"},
			{Hex: "#A04000", Name: "terracotta"},
			{Hex: "#7D6608", Name: "olive"},
			{Hex: "#922B21", Name: "brick red"},
		},
		Neutral: []Swatch{
			{Hex: "#D0B8A0", Name: "warm beige"},
			{Hex: "#A69580", Name: "taupe"},
			{Hex: "#EDE3D2", Name: "cream white"},
		},
		Avoid: []Swatch{
			{Hex: "#FFFFFF", Name: "pure white"},
			{Hex: "#85C1E2", Name: "soft blue"},
			{Hex: "#C3B1C0", Name: "dusty mauve"},
		},
	},
}

// PaletteFor returns the palette for a season. Unknown seasons fall back to
// summer, the most forgiving palette.
func PaletteFor(season types.Season) Palette {
	if p, ok := seasonalPalettes[season]; ok {
		return p
	}
	return seasonalPalettes[types.SeasonSummer]
}

// ColorAt returns a palette color by template slot position: base colors
// first, then accents, cycling past the end. Deterministic for a fixed
// palette.
func (p Palette) ColorAt(i int) Swatch {
	pool := make([]Swatch, 0, len(p.Base)+len(p.Accent))
	pool = append(pool, p.Base...)
	pool = append(pool, p.Accent...)
	if len(pool) == 0 {
		return Swatch{Hex: "#000000", Name: "black"}
	}
	return pool[i%len(pool)]
}
