package engine

import (
	"github.com/fitfi/style-engine/internal/logger"
	"github.com/fitfi/style-engine/internal/types"
)

// ClassifierConfig holds the empirical tuning constants of the archetype
// classifier. The values have no documented derivation; they are configuration,
// not facts to correct.
type ClassifierConfig struct {
	// FallbackBaseline seeds the neutral archetype so ties favor it.
	FallbackBaseline float64
	// MinConfidence is the floor under which a winner is considered noise and
	// replaced by the neutral fallback.
	MinConfidence float64
}

func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		FallbackBaseline: 5,
		MinConfidence:    20,
	}
}

// archetypeRule adds weight points to one archetype when any answer value of
// its dimension contains any of its keywords. The rule set is data: extending
// the classifier means appending rows, not adding branches.
type archetypeRule struct {
	dimension string
	keywords  []string
	archetype types.Archetype
	weight    float64
}

var archetypeRules = []archetypeRule{
	// Style preferences carry the heaviest weights.
	{"style", []string{"minimal", "clean", "effen"}, types.ArchetypeCleanMinimal, 25},
	{"style", []string{"classic", "klassiek", "preppy"}, types.ArchetypeClassicSoft, 25},
	{"style", []string{"sport", "athletic", "atleti", "actief"}, types.ArchetypeSportySharp, 25},
	{"style", []string{"street", "urban", "edgy"}, types.ArchetypeUrbanStreet, 25},
	{"style", []string{"smart", "casual"}, types.ArchetypeSmartCasual, 20},
	{"style", []string{"luxury", "elegant", "refined"}, types.ArchetypeRefinedLuxe, 25},

	// Goals and occasions.
	{"goals", []string{"werk", "work", "office", "kantoor"}, types.ArchetypeSmartCasual, 15},
	{"goals", []string{"werk", "work", "office", "kantoor"}, types.ArchetypeClassicSoft, 10},
	{"goals", []string{"sport", "actief", "active"}, types.ArchetypeSportySharp, 15},
	{"goals", []string{"avond", "evening", "diner", "gala"}, types.ArchetypeRefinedLuxe, 15},
	{"goals", []string{"casual", "weekend"}, types.ArchetypeSmartCasual, 10},
	{"goals", []string{"minimal", "timeless", "tijdloos"}, types.ArchetypeCleanMinimal, 20},
	{"occasions", []string{"werk", "work", "office"}, types.ArchetypeSmartCasual, 10},
	{"occasions", []string{"formal", "gala", "bruiloft"}, types.ArchetypeRefinedLuxe, 15},
	{"occasions", []string{"sport", "gym", "training"}, types.ArchetypeSportySharp, 15},
	{"occasions", []string{"festival", "night", "uitgaan"}, types.ArchetypeUrbanStreet, 10},

	// Fit.
	{"fit", []string{"slim", "tailored", "getailleerd"}, types.ArchetypeCleanMinimal, 15},
	{"fit", []string{"slim", "tailored", "getailleerd"}, types.ArchetypeClassicSoft, 10},
	{"fit", []string{"oversized", "loose", "relaxed", "losser"}, types.ArchetypeUrbanStreet, 15},
	{"fit", []string{"straight", "regular", "recht"}, types.ArchetypeSmartCasual, 10},

	// Materials.
	{"materials", []string{"tech", "performance"}, types.ArchetypeSportySharp, 10},
	{"materials", []string{"fleece", "jersey"}, types.ArchetypeUrbanStreet, 10},
	{"materials", []string{"silk", "zijde", "cashmere", "wool", "wol"}, types.ArchetypeRefinedLuxe, 10},
	{"materials", []string{"matte", "mat", "cotton", "katoen"}, types.ArchetypeCleanMinimal, 10},

	// Prints.
	{"prints", []string{"solid", "effen"}, types.ArchetypeCleanMinimal, 10},
	{"prints", []string{"statement", "bold"}, types.ArchetypeUrbanStreet, 10},
}

// styleDimensionKeys maps a rule dimension to the AnswerMap fields it reads.
// The quiz has shipped both field spellings over time.
var styleDimensionKeys = map[string][]string{
	"style":     {"style", "stylePreferences"},
	"goals":     {"goals"},
	"occasions": {"occasions", "occasion"},
	"fit":       {"fit"},
	"materials": {"materials"},
	"prints":    {"prints"},
}

// Classification is the full classifier output. Primary is the contract;
// secondary and confidence are advisory extras for the result UI.
type Classification struct {
	Primary    types.Archetype
	Secondary  types.Archetype
	Confidence float64
	Scores     map[types.Archetype]float64
}

// Classifier derives a style archetype from quiz answers. It never fails:
// absent or malformed fields are non-votes, and a low-signal submission
// resolves to the neutral fallback.
type Classifier struct {
	cfg ClassifierConfig
	log *logger.Logger
}

func NewClassifier(cfg ClassifierConfig, log *logger.Logger) *Classifier {
	return &Classifier{cfg: cfg, log: log.With("component", "ArchetypeClassifier")}
}

// Classify returns the winning archetype for one quiz submission.
func (c *Classifier) Classify(answers types.AnswerMap) types.Archetype {
	return c.ClassifyDetailed(answers).Primary
}

// ClassifyDetailed runs the full scoring pass and returns the winner together
// with the runner-up and a banded confidence value.
func (c *Classifier) ClassifyDetailed(answers types.AnswerMap) Classification {
	scores := make(map[types.Archetype]float64, len(types.Archetypes))
	for _, a := range types.Archetypes {
		scores[a] = 0
	}
	scores[types.NeutralArchetype] = c.cfg.FallbackBaseline

	if !answers.HasSignal() {
		c.log.Debug("No usable quiz signal, using neutral fallback",
			"fallback", types.NeutralArchetype)
		return Classification{
			Primary:    types.NeutralArchetype,
			Confidence: confidenceBand(scores[types.NeutralArchetype]),
			Scores:     scores,
		}
	}

	for _, rule := range archetypeRules {
		if dimensionMatches(answers, rule.dimension, rule.keywords) {
			scores[rule.archetype] += rule.weight
		}
	}

	// Winner by highest total; stable enumeration order breaks ties.
	var primary, secondary types.Archetype
	var best, second float64 = -1, -1
	for _, a := range types.Archetypes {
		if scores[a] > best {
			secondary, second = primary, best
			primary, best = a, scores[a]
		} else if scores[a] > second {
			secondary, second = a, scores[a]
		}
	}

	if best < c.cfg.MinConfidence {
		// All scores low: the winner is near-arbitrary, downgrade to neutral.
		c.log.Debug("Archetype confidence below floor, using neutral fallback",
			"winner", primary, "score", best, "floor", c.cfg.MinConfidence)
		return Classification{
			Primary:    types.NeutralArchetype,
			Secondary:  secondary,
			Confidence: confidenceBand(best),
			Scores:     scores,
		}
	}

	return Classification{
		Primary:    primary,
		Secondary:  secondary,
		Confidence: confidenceBand(best),
		Scores:     scores,
	}
}

func dimensionMatches(answers types.AnswerMap, dimension string, keywords []string) bool {
	for _, key := range styleDimensionKeys[dimension] {
		if s, ok := answers.String(key); ok && containsAny(s, keywords...) {
			return true
		}
		for _, v := range answers.StringList(key) {
			if containsAny(v, keywords...) {
				return true
			}
		}
	}
	return false
}

func confidenceBand(score float64) float64 {
	switch {
	case score >= 50:
		return 0.9
	case score >= 35:
		return 0.7
	case score >= 20:
		return 0.5
	default:
		return 0.3
	}
}
