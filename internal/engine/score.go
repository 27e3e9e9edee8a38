package engine

import (
	"errors"

	"github.com/fitfi/style-engine/internal/types"
)

// ErrIncompleteOutfit is returned when a required category slot is not
// covered. Scoring an incomplete outfit is a caller contract violation, not a
// runtime condition.
var ErrIncompleteOutfit = errors.New("outfit does not cover all required categories")

// ScoreConfig holds the factor weights and the baseline factor values. The
// weights must sum to 1.0. Style match, occasion fit and novelty are fixed
// baselines pending a richer signal source; they are the most likely
// extension point and therefore configuration, not literals.
type ScoreConfig struct {
	StyleWeight    float64
	ColorWeight    float64
	PriceWeight    float64
	OccasionWeight float64
	NoveltyWeight  float64

	StyleBaseline    float64
	OccasionBaseline float64
	NoveltyBaseline  float64
}

func DefaultScoreConfig() ScoreConfig {
	return ScoreConfig{
		StyleWeight:    0.30,
		ColorWeight:    0.25,
		PriceWeight:    0.20,
		OccasionWeight: 0.15,
		NoveltyWeight:  0.10,

		StyleBaseline:    0.85,
		OccasionBaseline: 0.80,
		NoveltyBaseline:  0.75,
	}
}

// Scorer computes the composite score of a concrete item assignment. Pure:
// no state, no I/O, identical input yields identical output.
type Scorer struct {
	cfg ScoreConfig
}

func NewScorer(cfg ScoreConfig) *Scorer {
	return &Scorer{cfg: cfg}
}

// Score evaluates a complete outfit. The item set must cover every required
// category; an incomplete set returns ErrIncompleteOutfit.
func (s *Scorer) Score(items []types.Product) (types.OutfitScore, error) {
	if err := validateComplete(items); err != nil {
		return types.OutfitScore{}, err
	}

	score := types.OutfitScore{
		StyleMatch:        s.cfg.StyleBaseline,
		ColorHarmony:      colorHarmony(items),
		PriceOptimization: priceOptimization(items),
		OccasionFit:       s.cfg.OccasionBaseline,
		Novelty:           s.cfg.NoveltyBaseline,
	}
	score.Overall = score.StyleMatch*s.cfg.StyleWeight +
		score.ColorHarmony*s.cfg.ColorWeight +
		score.PriceOptimization*s.cfg.PriceWeight +
		score.OccasionFit*s.cfg.OccasionWeight +
		score.Novelty*s.cfg.NoveltyWeight
	return score, nil
}

func validateComplete(items []types.Product) error {
	for _, required := range RequiredCategories {
		found := false
		for i := range items {
			if MatchCategory(items[i].Category, required) {
				found = true
				break
			}
		}
		if !found {
			return ErrIncompleteOutfit
		}
	}
	return nil
}

// colorHarmony penalizes visual noise monotonically: few distinct colors
// score higher than many.
func colorHarmony(items []types.Product) float64 {
	distinct := map[string]struct{}{}
	for i := range items {
		for _, c := range items[i].ColorNames() {
			distinct[c] = struct{}{}
		}
	}
	switch {
	case len(distinct) <= 2:
		return 0.95
	case len(distinct) == 3:
		return 0.85
	default:
		return 0.75
	}
}

// priceOptimization uses three coarse budget bands rather than a continuous
// function, to avoid over-fitting to price noise.
func priceOptimization(items []types.Product) float64 {
	var total float64
	for i := range items {
		total += items[i].Price
	}
	switch {
	case total <= 300:
		return 0.95
	case total <= 500:
		return 0.85
	default:
		return 0.70
	}
}
