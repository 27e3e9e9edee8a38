package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fitfi/style-engine/internal/engine"
	"github.com/fitfi/style-engine/internal/logger"
	"github.com/fitfi/style-engine/internal/repos"
	"github.com/fitfi/style-engine/internal/types"
)

// ErrCategoryNotFound means the outfit has no product in the requested slot.
var ErrCategoryNotFound = fmt.Errorf("no product in outfit for requested category")

// RemixConfig bounds the candidate search and sets the interaction thresholds.
type RemixConfig struct {
	// CandidateLimit caps the in-stock catalog slice considered per call.
	CandidateLimit int
	// AlternativesPerCategory caps tested alternatives per slot.
	AlternativesPerCategory int
	// SuggestionThreshold is the minimum overall-score gain for a
	// suggestion to surface at all.
	SuggestionThreshold float64
	// OptimizeCutoff stops the greedy optimizer once a round's gain
	// drops below it.
	OptimizeCutoff float64
}

func DefaultRemixConfig() RemixConfig {
	return RemixConfig{
		CandidateLimit:          100,
		AlternativesPerCategory: 5,
		SuggestionThreshold:     0.05,
		OptimizeCutoff:          0.02,
	}
}

type RemixService interface {
	SwapItem(ctx context.Context, tx *gorm.DB, outfit types.Outfit, category string, newProduct types.Product, userID, sessionID *uuid.UUID) (*types.RemixedOutfit, error)
	GetSuggestedSwaps(ctx context.Context, tx *gorm.DB, outfit types.Outfit, maxSuggestions int) ([]types.SwapSuggestion, error)
	OptimizeOutfit(ctx context.Context, tx *gorm.DB, outfit types.Outfit, maxSwaps int) (*types.RemixedOutfit, error)
	AnalyzeSwapPatterns(ctx context.Context, tx *gorm.DB, userID, sessionID *uuid.UUID) (*types.SwapPatterns, error)
}

type remixService struct {
	log         *logger.Logger
	cfg         RemixConfig
	scorer      *engine.Scorer
	productRepo repos.ProductRepo
	swapRepo    repos.OutfitSwapRepo
}

func NewRemixService(log *logger.Logger, cfg RemixConfig, scorer *engine.Scorer, productRepo repos.ProductRepo, swapRepo repos.OutfitSwapRepo) RemixService {
	return &remixService{
		log:         log.With("service", "RemixService"),
		cfg:         cfg,
		scorer:      scorer,
		productRepo: productRepo,
		swapRepo:    swapRepo,
	}
}

// SwapItem replaces the outfit's product in the given category slot, rescores,
// and records the swap. A failed record write is logged and swallowed so the
// user-facing swap never fails on persistence.
func (s *remixService) SwapItem(ctx context.Context, tx *gorm.DB, outfit types.Outfit, category string, newProduct types.Product, userID, sessionID *uuid.UUID) (*types.RemixedOutfit, error) {
	oldProduct, found := findByCategory(outfit.Products, category)
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrCategoryNotFound, category)
	}

	scoreBefore, err := s.scorer.Score(outfit.Products)
	if err != nil {
		return nil, err
	}

	swapped := replaceByCategory(outfit.Products, category, newProduct)
	scoreAfter, err := s.scorer.Score(swapped)
	if err != nil {
		return nil, err
	}

	delta := scoreAfter.Overall - scoreBefore.Overall

	swap := &types.OutfitSwap{
		OutfitID:        outfit.ID,
		UserID:          userID,
		SessionID:       sessionID,
		Category:        category,
		OldProductID:    oldProduct.ID,
		NewProductID:    newProduct.ID,
		NewProductBrand: newProduct.Brand,
		NewProductPrice: newProduct.Price,
		ScoreBefore:     scoreBefore.Overall,
		ScoreAfter:      scoreAfter.Overall,
		Improvement:     delta > 0,
	}
	if err := s.swapRepo.Create(ctx, tx, swap); err != nil {
		s.log.Warn("failed to record swap", "outfit_id", outfit.ID, "category", category, "error", err)
	}

	record := types.SwapRecord{
		Timestamp:    time.Now(),
		Category:     category,
		OldProductID: oldProduct.ID,
		NewProductID: newProduct.ID,
		ScoreBefore:  scoreBefore.Overall,
		ScoreAfter:   scoreAfter.Overall,
		Improvement:  delta > 0,
	}

	return &types.RemixedOutfit{
		OriginalOutfitID: outfit.ID,
		Products:         swapped,
		Score:            scoreAfter,
		ScoreDelta:       delta,
		SwapHistory:      []types.SwapRecord{record},
		Insight:          swapInsight(category, delta),
	}, nil
}

// GetSuggestedSwaps tests a bounded slice of in-stock alternatives against each
// swappable slot and returns the best gains, sorted descending.
func (s *remixService) GetSuggestedSwaps(ctx context.Context, tx *gorm.DB, outfit types.Outfit, maxSuggestions int) ([]types.SwapSuggestion, error) {
	if maxSuggestions <= 0 {
		maxSuggestions = 3
	}

	currentScore, err := s.scorer.Score(outfit.Products)
	if err != nil {
		return nil, err
	}

	// Personalization is best effort: an unreachable catalog means no
	// suggestions, not a failed request.
	candidates, err := s.productRepo.QueryInStock(ctx, tx, s.cfg.CandidateLimit)
	if err != nil {
		s.log.Warn("catalog unavailable, returning no suggestions", "error", err)
		return []types.SwapSuggestion{}, nil
	}

	suggestions := []types.SwapSuggestion{}
	for _, category := range engine.SwappableCategories {
		currentItem, found := findByCategory(outfit.Products, category)
		if !found {
			continue
		}

		tested := 0
		for _, candidate := range candidates {
			if tested >= s.cfg.AlternativesPerCategory {
				break
			}
			if !engine.MatchCategory(candidate.Category, category) || candidate.ID == currentItem.ID {
				continue
			}
			tested++

			testProducts := replaceByCategory(outfit.Products, category, *candidate)
			testScore, err := s.scorer.Score(testProducts)
			if err != nil {
				continue
			}

			improvement := testScore.Overall - currentScore.Overall
			if improvement > s.cfg.SuggestionThreshold {
				suggestions = append(suggestions, types.SwapSuggestion{
					Category:            category,
					SuggestedProduct:    *candidate,
					ExpectedImprovement: improvement,
					Reason:              swapReason(currentScore, testScore),
				})
			}
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].ExpectedImprovement > suggestions[j].ExpectedImprovement
	})
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions, nil
}

// OptimizeOutfit applies the single best suggestion per round, up to maxSwaps
// rounds, stopping early once a round yields less than the cutoff.
func (s *remixService) OptimizeOutfit(ctx context.Context, tx *gorm.DB, outfit types.Outfit, maxSwaps int) (*types.RemixedOutfit, error) {
	if maxSwaps <= 0 {
		maxSwaps = 3
	}

	current := outfit
	currentScore, err := s.scorer.Score(current.Products)
	if err != nil {
		return nil, err
	}

	history := []types.SwapRecord{}
	totalDelta := 0.0

	for i := 0; i < maxSwaps; i++ {
		suggestions, err := s.GetSuggestedSwaps(ctx, tx, current, 1)
		if err != nil {
			return nil, err
		}
		if len(suggestions) == 0 {
			break
		}

		best := suggestions[0]
		oldProduct, found := findByCategory(current.Products, best.Category)
		if !found {
			continue
		}

		newProducts := replaceByCategory(current.Products, best.Category, best.SuggestedProduct)
		newScore, err := s.scorer.Score(newProducts)
		if err != nil {
			return nil, err
		}
		delta := newScore.Overall - currentScore.Overall

		history = append(history, types.SwapRecord{
			Timestamp:    time.Now(),
			Category:     best.Category,
			OldProductID: oldProduct.ID,
			NewProductID: best.SuggestedProduct.ID,
			ScoreBefore:  currentScore.Overall,
			ScoreAfter:   newScore.Overall,
			Improvement:  delta > 0,
		})
		totalDelta += delta
		current.Products = newProducts
		currentScore = newScore

		if delta < s.cfg.OptimizeCutoff {
			break
		}
	}

	return &types.RemixedOutfit{
		OriginalOutfitID: outfit.ID,
		Products:         current.Products,
		Score:            currentScore,
		ScoreDelta:       totalDelta,
		SwapHistory:      history,
		Insight:          fmt.Sprintf("Outfit optimized with %d swaps. Score improved by %d%%.", len(history), int(totalDelta*100)),
	}, nil
}

// AnalyzeSwapPatterns summarizes a user's improving swaps into favorite brands
// and a price sweet spot. No identifier, no history, or an unreachable store
// all yield neutral defaults, never an error.
func (s *remixService) AnalyzeSwapPatterns(ctx context.Context, tx *gorm.DB, userID, sessionID *uuid.UUID) (*types.SwapPatterns, error) {
	patterns := &types.SwapPatterns{
		FavoriteBrands: []string{},
		PriceSweetSpot: types.PriceBand{Min: 0, Max: 1000},
	}

	// Without an identifier the query would aggregate everyone's swaps.
	if userID == nil && sessionID == nil {
		return patterns, nil
	}

	swaps, err := s.swapRepo.GetRecent(ctx, tx, userID, sessionID, 100)
	if err != nil {
		s.log.Warn("swap history unavailable, returning defaults", "error", err)
		return patterns, nil
	}

	brandCounts := map[string]int{}
	var prices []float64
	for _, swap := range swaps {
		if swap.ScoreAfter <= swap.ScoreBefore {
			continue
		}
		if swap.NewProductBrand != "" {
			brandCounts[swap.NewProductBrand]++
		}
		if swap.NewProductPrice > 0 {
			prices = append(prices, swap.NewProductPrice)
		}
	}

	type brandCount struct {
		brand string
		count int
	}
	counts := make([]brandCount, 0, len(brandCounts))
	for brand, count := range brandCounts {
		counts = append(counts, brandCount{brand, count})
	}
	sort.SliceStable(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].brand < counts[j].brand
	})
	for i, bc := range counts {
		if i >= 5 {
			break
		}
		patterns.FavoriteBrands = append(patterns.FavoriteBrands, bc.brand)
	}

	if len(prices) > 0 {
		min, max := prices[0], prices[0]
		for _, p := range prices[1:] {
			if p < min {
				min = p
			}
			if p > max {
				max = p
			}
		}
		patterns.PriceSweetSpot = types.PriceBand{Min: min, Max: max}
	}

	return patterns, nil
}

func findByCategory(products []types.Product, category string) (types.Product, bool) {
	for _, p := range products {
		if engine.MatchCategory(p.Category, category) {
			return p, true
		}
	}
	return types.Product{}, false
}

func replaceByCategory(products []types.Product, category string, replacement types.Product) []types.Product {
	out := make([]types.Product, len(products))
	for i, p := range products {
		if engine.MatchCategory(p.Category, category) {
			out[i] = replacement
		} else {
			out[i] = p
		}
	}
	return out
}

func swapInsight(category string, delta float64) string {
	pct := int(delta * 100)
	switch {
	case delta > 0.10:
		return fmt.Sprintf("Great swap! The new %s lifts your score by %d%% and fits the rest of your outfit.", category, pct)
	case delta > 0.05:
		return fmt.Sprintf("Nice improvement! This %s works better with your other items (+%d%%).", category, pct)
	case delta > 0:
		return fmt.Sprintf("Good pick. A small gain in harmony with this %s.", category)
	case delta < -0.05:
		return fmt.Sprintf("This %s fits your current outfit less well. Maybe try another color or style?", category)
	default:
		return "Interesting choice. The score stays about the same, so go with what you like."
	}
}

// swapReason names the factor that moved the most between the two scores.
func swapReason(before, after types.OutfitScore) string {
	reason := "Closer to your style profile"
	best := after.StyleMatch - before.StyleMatch
	if d := after.ColorHarmony - before.ColorHarmony; d > best {
		best = d
		reason = "Better color harmony with your outfit"
	}
	if d := after.PriceOptimization - before.PriceOptimization; d > best {
		reason = "Better value for the overall look"
	}
	return reason
}
