package engine

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/fitfi/style-engine/internal/types"
)

func testProfile(season types.Season) types.ColorProfile {
	return types.ColorProfile{
		Temperature: types.TemperatureNeutral,
		Value:       types.ValueMedium,
		Contrast:    types.ContrastMedium,
		Chroma:      types.ChromaSoft,
		Season:      season,
	}
}

func TestGenerateSeedsEveryArchetype(t *testing.T) {
	profile := testProfile(types.SeasonAutumn)

	for _, archetype := range types.Archetypes {
		t.Run(string(archetype), func(t *testing.T) {
			seeds := GenerateSeeds(profile, archetype)
			if len(seeds) != 6 {
				t.Fatalf("got %d seeds for %v, want 6", len(seeds), archetype)
			}
			for i, seed := range seeds {
				wantID := fmt.Sprintf("%s-%s-%d", archetype, profile.Season, i+1)
				if seed.ID != wantID {
					t.Fatalf("seed id=%q, want %q", seed.ID, wantID)
				}
				if seed.Title == "" || seed.Vibe == "" || seed.Notes == "" {
					t.Fatalf("seed %q missing copy: %+v", seed.ID, seed)
				}
				if len(seed.Pieces) < 3 {
					t.Fatalf("seed %q has %d pieces, want at least 3", seed.ID, len(seed.Pieces))
				}
				for _, piece := range seed.Pieces {
					if piece.Category == "" || piece.Label == "" || piece.Color == "" {
						t.Fatalf("seed %q has incomplete piece %+v", seed.ID, piece)
					}
				}
			}
		})
	}
}

func TestGenerateSeedsDeterministic(t *testing.T) {
	profile := testProfile(types.SeasonWinter)
	first := GenerateSeeds(profile, types.ArchetypeCleanMinimal)
	again := GenerateSeeds(profile, types.ArchetypeCleanMinimal)
	if !reflect.DeepEqual(first, again) {
		t.Fatalf("GenerateSeeds not deterministic")
	}
}

func TestGenerateSeedsTagsCarryProfile(t *testing.T) {
	profile := types.ColorProfile{
		Temperature: types.TemperatureCool,
		Value:       types.ValueDark,
		Contrast:    types.ContrastHigh,
		Chroma:      types.ChromaClear,
		Season:      types.SeasonWinter,
	}
	seeds := GenerateSeeds(profile, types.ArchetypeUrbanStreet)
	for _, seed := range seeds {
		want := []string{"urban_street", "winter", "cool", "high"}
		if !reflect.DeepEqual(seed.Tags, want) {
			t.Fatalf("seed %q tags=%v, want %v", seed.ID, seed.Tags, want)
		}
	}
}

func TestGenerateSeedsColorsComeFromSeasonPalette(t *testing.T) {
	profile := testProfile(types.SeasonSummer)
	palette := PaletteFor(types.SeasonSummer)

	known := map[string]bool{}
	for _, s := range palette.Base {
		known[s.Name] = true
	}
	for _, s := range palette.Accent {
		known[s.Name] = true
	}

	for _, seed := range GenerateSeeds(profile, types.ArchetypeClassicSoft) {
		for _, piece := range seed.Pieces {
			if !known[piece.Color] {
				t.Fatalf("piece color %q not in summer palette", piece.Color)
			}
		}
	}
}

func TestGenerateSeedsUnknownArchetypeFallsBack(t *testing.T) {
	profile := testProfile(types.SeasonSpring)
	seeds := GenerateSeeds(profile, types.Archetype("does_not_exist"))
	fallback := GenerateSeeds(profile, types.NeutralArchetype)
	if len(seeds) != len(fallback) {
		t.Fatalf("unknown archetype should use neutral templates: got %d seeds, want %d", len(seeds), len(fallback))
	}
}
