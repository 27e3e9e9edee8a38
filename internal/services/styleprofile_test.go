package services

import (
	"context"
	"errors"
	"testing"

	rediscache "github.com/fitfi/style-engine/internal/clients/redis"
	"github.com/fitfi/style-engine/internal/engine"
	"github.com/fitfi/style-engine/internal/logger"
	"github.com/fitfi/style-engine/internal/types"
)

type fakeProfileCache struct {
	entries map[string]*types.StyleProfileResult
	gets    int
	sets    int
	setErr  error
}

func newFakeProfileCache() *fakeProfileCache {
	return &fakeProfileCache{entries: map[string]*types.StyleProfileResult{}}
}

func (f *fakeProfileCache) Get(ctx context.Context, key string) (*types.StyleProfileResult, bool, error) {
	f.gets++
	result, ok := f.entries[key]
	return result, ok, nil
}

func (f *fakeProfileCache) Set(ctx context.Context, key string, result *types.StyleProfileResult) error {
	f.sets++
	if f.setErr != nil {
		return f.setErr
	}
	f.entries[key] = result
	return nil
}

func (f *fakeProfileCache) Close() error { return nil }

func newProfileService(cache rediscache.ProfileCache) StyleProfileService {
	classifier := engine.NewClassifier(engine.DefaultClassifierConfig(), logger.NewNop())
	return NewStyleProfileService(logger.NewNop(), classifier, cache)
}

func quizAnswers() types.AnswerMap {
	return types.AnswerMap{
		"jewelry":   "goud",
		"lightness": "licht",
		"style":     []string{"minimal"},
		"fit":       "tailored",
		"goals":     []string{"tijdloos"},
	}
}

func TestComputeStyleProfileWithoutCache(t *testing.T) {
	svc := newProfileService(nil)

	result, err := svc.ComputeStyleProfile(context.Background(), quizAnswers())
	if err != nil {
		t.Fatalf("ComputeStyleProfile: %v", err)
	}
	if result.Color.Season != types.SeasonSpring {
		t.Fatalf("warm+light answers should yield spring, got %v", result.Color.Season)
	}
	if result.Archetype != types.ArchetypeCleanMinimal {
		t.Fatalf("archetype=%v, want clean_minimal", result.Archetype)
	}
	if result.Confidence <= 0 {
		t.Fatalf("confidence missing: %v", result.Confidence)
	}
	if len(result.Seeds) == 0 {
		t.Fatalf("no outfit seeds generated")
	}
}

func TestComputeStyleProfileUsesCache(t *testing.T) {
	cache := newFakeProfileCache()
	svc := newProfileService(cache)

	answers := quizAnswers()
	first, err := svc.ComputeStyleProfile(context.Background(), answers)
	if err != nil {
		t.Fatalf("first compute: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("expected one cache write, got %d", cache.sets)
	}

	second, err := svc.ComputeStyleProfile(context.Background(), answers)
	if err != nil {
		t.Fatalf("second compute: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("cache hit should not rewrite, sets=%d", cache.sets)
	}
	if second.Archetype != first.Archetype || second.Color.Season != first.Color.Season {
		t.Fatalf("cached result diverges: %+v vs %+v", first, second)
	}
}

func TestComputeStyleProfileSurvivesCacheWriteFailure(t *testing.T) {
	cache := newFakeProfileCache()
	cache.setErr = errors.New("redis down")
	svc := newProfileService(cache)

	result, err := svc.ComputeStyleProfile(context.Background(), quizAnswers())
	if err != nil {
		t.Fatalf("cache write failure must not fail the request: %v", err)
	}
	if result == nil || len(result.Seeds) == 0 {
		t.Fatalf("result incomplete after cache failure: %+v", result)
	}
}

func TestComputeStyleProfileEmptyAnswers(t *testing.T) {
	svc := newProfileService(nil)

	result, err := svc.ComputeStyleProfile(context.Background(), types.AnswerMap{})
	if err != nil {
		t.Fatalf("empty answers must still profile: %v", err)
	}
	if result.Archetype != types.NeutralArchetype {
		t.Fatalf("empty answers should fall back to %v, got %v", types.NeutralArchetype, result.Archetype)
	}
	if len(result.Seeds) == 0 {
		t.Fatalf("fallback archetype must still seed outfits")
	}
}
