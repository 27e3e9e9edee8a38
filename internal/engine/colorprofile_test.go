package engine

import (
	"reflect"
	"testing"

	"github.com/fitfi/style-engine/internal/types"
)

func TestDeriveSeasonTable(t *testing.T) {
	cases := []struct {
		name    string
		answers types.AnswerMap
		want    types.Season
	}{
		{
			name: "warm_light_is_spring",
			answers: types.AnswerMap{
				"jewelry":   "gold",
				"lightness": "light",
			},
			want: types.SeasonSpring,
		},
		{
			name: "warm_dark_is_autumn",
			answers: types.AnswerMap{
				"jewelry":   "goud",
				"lightness": "donker",
			},
			want: types.SeasonAutumn,
		},
		{
			name: "warm_medium_is_autumn",
			answers: types.AnswerMap{
				"jewelry": "gold",
			},
			want: types.SeasonAutumn,
		},
		{
			name: "cool_dark_is_winter",
			answers: types.AnswerMap{
				"jewelry":   "silver",
				"lightness": "dark",
			},
			want: types.SeasonWinter,
		},
		{
			name: "cool_high_contrast_is_winter",
			answers: types.AnswerMap{
				"jewelry":  "zilver",
				"contrast": "hoog",
			},
			want: types.SeasonWinter,
		},
		{
			name: "cool_light_low_contrast_is_summer",
			answers: types.AnswerMap{
				"jewelry":   "silver",
				"lightness": "licht",
				"contrast":  "laag",
			},
			want: types.SeasonSummer,
		},
		{
			name: "neutral_dark_is_winter",
			answers: types.AnswerMap{
				"lightness": "dark",
			},
			want: types.SeasonWinter,
		},
		{
			name: "neutral_light_is_summer",
			answers: types.AnswerMap{
				"lightness": "light",
			},
			want: types.SeasonSummer,
		},
		{
			name:    "neutral_medium_is_autumn",
			answers: types.AnswerMap{},
			want:    types.SeasonAutumn,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Derive(tc.answers)
			if got.Season != tc.want {
				t.Fatalf("Derive(%v).Season=%v, want %v", tc.answers, got.Season, tc.want)
			}
		})
	}
}

func TestDeriveTemperatureFromJewelry(t *testing.T) {
	cases := []struct {
		name    string
		answers types.AnswerMap
		want    types.Temperature
	}{
		{name: "gold_is_warm", answers: types.AnswerMap{"jewelry": "gold"}, want: types.TemperatureWarm},
		{name: "goud_is_warm", answers: types.AnswerMap{"jewelry": "goud"}, want: types.TemperatureWarm},
		{name: "silver_is_cool", answers: types.AnswerMap{"jewelry": "silver"}, want: types.TemperatureCool},
		{name: "zilver_is_cool", answers: types.AnswerMap{"jewelry": "zilver"}, want: types.TemperatureCool},
		{name: "no_jewelry_is_neutral", answers: types.AnswerMap{}, want: types.TemperatureNeutral},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Derive(tc.answers)
			if got.Temperature != tc.want {
				t.Fatalf("Derive(%v).Temperature=%v, want %v", tc.answers, got.Temperature, tc.want)
			}
		})
	}
}

func TestDeriveChroma(t *testing.T) {
	cases := []struct {
		name    string
		answers types.AnswerMap
		want    types.Chroma
	}{
		{name: "statement_prints_are_clear", answers: types.AnswerMap{"prints": "statement"}, want: types.ChromaClear},
		{name: "glossy_materials_are_clear", answers: types.AnswerMap{"materials": "glossy"}, want: types.ChromaClear},
		{name: "solid_prints_are_soft", answers: types.AnswerMap{"prints": "effen"}, want: types.ChromaSoft},
		{name: "matte_materials_are_soft", answers: types.AnswerMap{"materials": "matte"}, want: types.ChromaSoft},
		{name: "default_is_soft", answers: types.AnswerMap{}, want: types.ChromaSoft},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Derive(tc.answers)
			if got.Chroma != tc.want {
				t.Fatalf("Derive(%v).Chroma=%v, want %v", tc.answers, got.Chroma, tc.want)
			}
		})
	}
}

func TestDeriveIsDeterministic(t *testing.T) {
	answers := types.AnswerMap{
		"jewelry":   "gold",
		"lightness": "licht",
		"contrast":  "hoog",
		"prints":    "statement",
	}
	first := Derive(answers)
	for i := 0; i < 5; i++ {
		again := Derive(answers)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("Derive not deterministic: %+v vs %+v", first, again)
		}
	}
	if first.Season != types.SeasonSpring {
		t.Fatalf("warm+light should be spring, got %v", first.Season)
	}
	if first.PaletteName == "" || len(first.Notes) == 0 {
		t.Fatalf("profile missing palette or notes: %+v", first)
	}
}

func TestDeriveEmptyAnswersIsTotal(t *testing.T) {
	got := Derive(types.AnswerMap{})
	if got.Temperature != types.TemperatureNeutral || got.Value != types.ValueMedium || got.Contrast != types.ContrastMedium {
		t.Fatalf("empty answers should yield all-neutral dimensions, got %+v", got)
	}
	if got.Season == "" {
		t.Fatalf("season must always be set")
	}
}
