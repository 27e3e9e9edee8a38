package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/google/uuid"

	"github.com/fitfi/style-engine/internal/types"
)

func testProduct(t *testing.T, category string, price float64, colors ...string) types.Product {
	t.Helper()
	p := types.Product{
		ID:       uuid.New(),
		Name:     category,
		Category: category,
		Price:    price,
		InStock:  true,
	}
	p.SetColorNames(colors)
	return p
}

func completeOutfit(t *testing.T, prices [3]float64, colors [][]string) []types.Product {
	t.Helper()
	return []types.Product{
		testProduct(t, "top", prices[0], colors[0]...),
		testProduct(t, "bottom", prices[1], colors[1]...),
		testProduct(t, "shoes", prices[2], colors[2]...),
	}
}

func TestScoreIncompleteOutfit(t *testing.T) {
	s := NewScorer(DefaultScoreConfig())

	cases := []struct {
		name  string
		items []types.Product
	}{
		{name: "empty", items: nil},
		{name: "missing_shoes", items: []types.Product{
			testProduct(t, "top", 50, "white"),
			testProduct(t, "bottom", 80, "navy"),
		}},
		{name: "missing_top", items: []types.Product{
			testProduct(t, "jeans", 80, "blue"),
			testProduct(t, "sneaker", 90, "white"),
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := s.Score(tc.items); !errors.Is(err, ErrIncompleteOutfit) {
				t.Fatalf("Score(%s) error=%v, want ErrIncompleteOutfit", tc.name, err)
			}
		})
	}
}

func TestScoreColorHarmonyBands(t *testing.T) {
	s := NewScorer(DefaultScoreConfig())

	cases := []struct {
		name   string
		colors [][]string
		want   float64
	}{
		{name: "two_distinct_colors", colors: [][]string{{"white"}, {"navy"}, {"white"}}, want: 0.95},
		{name: "three_distinct_colors", colors: [][]string{{"white"}, {"navy"}, {"tan"}}, want: 0.85},
		{name: "four_distinct_colors", colors: [][]string{{"white", "red"}, {"navy"}, {"tan"}}, want: 0.75},
		{name: "duplicates_count_once", colors: [][]string{{"white", "white"}, {"white"}, {"navy"}}, want: 0.95},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			score, err := s.Score(completeOutfit(t, [3]float64{50, 80, 90}, tc.colors))
			if err != nil {
				t.Fatalf("Score: %v", err)
			}
			if score.ColorHarmony != tc.want {
				t.Fatalf("ColorHarmony=%v, want %v", score.ColorHarmony, tc.want)
			}
		})
	}
}

func TestScorePriceBands(t *testing.T) {
	s := NewScorer(DefaultScoreConfig())

	cases := []struct {
		name   string
		prices [3]float64
		want   float64
	}{
		{name: "under_300", prices: [3]float64{100, 100, 80}, want: 0.95},
		{name: "exactly_300", prices: [3]float64{100, 100, 100}, want: 0.95},
		{name: "between_300_and_500", prices: [3]float64{150, 150, 150}, want: 0.85},
		{name: "over_500", prices: [3]float64{200, 200, 200}, want: 0.70},
	}

	colors := [][]string{{"white"}, {"navy"}, {"white"}}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			score, err := s.Score(completeOutfit(t, tc.prices, colors))
			if err != nil {
				t.Fatalf("Score: %v", err)
			}
			if score.PriceOptimization != tc.want {
				t.Fatalf("PriceOptimization=%v, want %v", score.PriceOptimization, tc.want)
			}
		})
	}
}

func TestScoreOverallIsWeightedSum(t *testing.T) {
	cfg := DefaultScoreConfig()
	s := NewScorer(cfg)

	outfit := completeOutfit(t, [3]float64{50, 80, 90}, [][]string{{"white"}, {"navy"}, {"white"}})
	score, err := s.Score(outfit)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}

	want := score.StyleMatch*cfg.StyleWeight +
		score.ColorHarmony*cfg.ColorWeight +
		score.PriceOptimization*cfg.PriceWeight +
		score.OccasionFit*cfg.OccasionWeight +
		score.Novelty*cfg.NoveltyWeight
	if math.Abs(score.Overall-want) > 1e-9 {
		t.Fatalf("Overall=%v, want weighted sum %v", score.Overall, want)
	}
	if score.StyleMatch != cfg.StyleBaseline || score.OccasionFit != cfg.OccasionBaseline || score.Novelty != cfg.NoveltyBaseline {
		t.Fatalf("baselines not applied: %+v", score)
	}
}

func TestScoreFewerColorsNeverScoreWorse(t *testing.T) {
	s := NewScorer(DefaultScoreConfig())

	prices := [3]float64{50, 80, 90}
	calm, err := s.Score(completeOutfit(t, prices, [][]string{{"white"}, {"navy"}, {"white"}}))
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	loud, err := s.Score(completeOutfit(t, prices, [][]string{{"white", "red"}, {"navy", "green"}, {"tan"}}))
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if calm.ColorHarmony < loud.ColorHarmony {
		t.Fatalf("fewer distinct colors scored worse: %v < %v", calm.ColorHarmony, loud.ColorHarmony)
	}
	if calm.Overall < loud.Overall {
		t.Fatalf("calmer outfit scored worse overall: %v < %v", calm.Overall, loud.Overall)
	}
}
