package engine

import (
	"fmt"
	"strings"

	"github.com/fitfi/style-engine/internal/types"
)

// Derive maps quiz answers to a seasonal color profile. It is total over all
// possible AnswerMap values: absent fields fall back to explicit defaults and
// the result is deterministic for identical input. The quiz ships both Dutch
// and English answer values, so keyword matching accepts either.
func Derive(answers types.AnswerMap) types.ColorProfile {
	temperature := deriveTemperature(answers)
	value := deriveValue(answers)
	contrast := deriveContrast(answers)
	chroma := deriveChroma(answers)
	season := deriveSeason(temperature, value, contrast)
	palette := PaletteFor(season)

	return types.ColorProfile{
		Temperature: temperature,
		Value:       value,
		Contrast:    contrast,
		Chroma:      chroma,
		Season:      season,
		PaletteName: fmt.Sprintf("%s (%s)", palette.Label, temperature),
		Notes:       buildNotes(palette, temperature, contrast, chroma),
	}
}

func deriveTemperature(answers types.AnswerMap) types.Temperature {
	// Jewelry preference is the strongest undertone signal the quiz has.
	if jewelry, ok := answers.String("jewelry"); ok {
		switch {
		case containsAny(jewelry, "gold", "goud"):
			return types.TemperatureWarm
		case containsAny(jewelry, "silver", "zilver"):
			return types.TemperatureCool
		}
	}
	if neutrals, ok := answers.String("neutrals"); ok {
		switch {
		case containsAny(neutrals, "warm"):
			return types.TemperatureWarm
		case containsAny(neutrals, "cool", "koel"):
			return types.TemperatureCool
		}
	}
	return types.TemperatureNeutral
}

func deriveValue(answers types.AnswerMap) types.Value {
	if lightness, ok := answers.String("lightness"); ok {
		switch {
		case containsAny(lightness, "light", "licht"):
			return types.ValueLight
		case containsAny(lightness, "dark", "donker"):
			return types.ValueDark
		}
	}
	return types.ValueMedium
}

func deriveContrast(answers types.AnswerMap) types.Contrast {
	if contrast, ok := answers.String("contrast"); ok {
		switch {
		case containsAny(contrast, "high", "hoog"):
			return types.ContrastHigh
		case containsAny(contrast, "low", "laag"):
			return types.ContrastLow
		}
	}
	return types.ContrastMedium
}

func deriveChroma(answers types.AnswerMap) types.Chroma {
	prints, _ := answers.String("prints")
	materials, _ := answers.String("materials")
	switch {
	case containsAny(prints, "statement"), containsAny(materials, "glossy", "glanzend"):
		return types.ChromaClear
	case containsAny(prints, "solid", "effen"), containsAny(materials, "matte", "mat"):
		return types.ChromaSoft
	}
	// Soft is the conservative default.
	return types.ChromaSoft
}

// deriveSeason is the product's color theory decision table. The branches are
// fixed; there is no derivable alternative.
func deriveSeason(t types.Temperature, v types.Value, c types.Contrast) types.Season {
	switch t {
	case types.TemperatureWarm:
		if v == types.ValueLight {
			return types.SeasonSpring
		}
		return types.SeasonAutumn
	case types.TemperatureCool:
		if v == types.ValueDark || c == types.ContrastHigh {
			return types.SeasonWinter
		}
		return types.SeasonSummer
	default:
		switch v {
		case types.ValueDark:
			return types.SeasonWinter
		case types.ValueLight:
			return types.SeasonSummer
		default:
			return types.SeasonAutumn
		}
	}
}

func buildNotes(p Palette, t types.Temperature, c types.Contrast, ch types.Chroma) []string {
	notes := []string{
		fmt.Sprintf("Your undertone is %s.", t),
		p.Description,
	}

	if len(p.Base) > 0 {
		names := make([]string, 0, 3)
		for i, s := range p.Base {
			if i == 3 {
				break
			}
			names = append(names, s.Name)
		}
		notes = append(notes, fmt.Sprintf("Build your base around %s.", strings.Join(names, ", ")))
	}

	switch c {
	case types.ContrastHigh:
		notes = append(notes, "Play with high contrast for impact.")
	case types.ContrastLow:
		notes = append(notes, "Avoid hard contrasts, keep combinations tonal.")
	default:
		notes = append(notes, "Medium contrast pairings keep the look balanced.")
	}

	if ch == types.ChromaClear {
		notes = append(notes, "Clear, saturated accents and statement pieces work for you.")
	} else {
		notes = append(notes, "Keep it subtle with soft, muted tones.")
	}

	if len(p.Avoid) > 0 {
		names := make([]string, 0, len(p.Avoid))
		for _, s := range p.Avoid {
			names = append(names, s.Name)
		}
		notes = append(notes, fmt.Sprintf("Colors to avoid: %s.", strings.Join(names, ", ")))
	}
	return notes
}

func containsAny(value string, keywords ...string) bool {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return false
	}
	for _, kw := range keywords {
		if strings.Contains(value, kw) {
			return true
		}
	}
	return false
}
