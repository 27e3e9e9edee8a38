package services

import (
	"context"

	rediscache "github.com/fitfi/style-engine/internal/clients/redis"
	"github.com/fitfi/style-engine/internal/engine"
	"github.com/fitfi/style-engine/internal/logger"
	"github.com/fitfi/style-engine/internal/types"
)

// StyleProfileService turns raw quiz answers into a full style profile:
// color profile, archetype classification, and seasonal outfit seeds.
type StyleProfileService interface {
	ComputeStyleProfile(ctx context.Context, answers types.AnswerMap) (*types.StyleProfileResult, error)
}

type styleProfileService struct {
	log        *logger.Logger
	classifier *engine.Classifier
	cache      rediscache.ProfileCache
}

// NewStyleProfileService wires the profile pipeline. cache may be nil; the
// service then computes every request from scratch.
func NewStyleProfileService(log *logger.Logger, classifier *engine.Classifier, cache rediscache.ProfileCache) StyleProfileService {
	return &styleProfileService{
		log:        log.With("service", "StyleProfileService"),
		classifier: classifier,
		cache:      cache,
	}
}

func (s *styleProfileService) ComputeStyleProfile(ctx context.Context, answers types.AnswerMap) (*types.StyleProfileResult, error) {
	var cacheKey string
	if s.cache != nil {
		key, err := rediscache.CacheKey(answers)
		if err == nil {
			cacheKey = key
			if cached, ok, err := s.cache.Get(ctx, cacheKey); err == nil && ok {
				s.log.Debug("profile cache hit", "key", cacheKey)
				return cached, nil
			}
		}
	}

	color := engine.Derive(answers)
	classification := s.classifier.ClassifyDetailed(answers)
	seeds := engine.GenerateSeeds(color, classification.Primary)

	result := &types.StyleProfileResult{
		Color:              color,
		Archetype:          classification.Primary,
		SecondaryArchetype: classification.Secondary,
		Confidence:         classification.Confidence,
		Seeds:              seeds,
	}

	if s.cache != nil && cacheKey != "" {
		if err := s.cache.Set(ctx, cacheKey, result); err != nil {
			s.log.Warn("failed to cache style profile", "key", cacheKey, "error", err)
		}
	}

	s.log.Info("computed style profile",
		"archetype", result.Archetype,
		"season", result.Color.Season,
		"confidence", result.Confidence,
		"seeds", len(result.Seeds))
	return result, nil
}
