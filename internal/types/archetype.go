package types

// Archetype is one of a fixed closed set of named style categories. It is an
// enumerated tag, not an object.
type Archetype string

const (
	ArchetypeCleanMinimal Archetype = "clean_minimal"
	ArchetypeSmartCasual  Archetype = "smart_casual"
	ArchetypeClassicSoft  Archetype = "classic_soft"
	ArchetypeSportySharp  Archetype = "sporty_sharp"
	ArchetypeUrbanStreet  Archetype = "urban_street"
	ArchetypeRefinedLuxe  Archetype = "refined_luxe"
)

// Archetypes is the stable enumeration order used for tie-breaking.
var Archetypes = []Archetype{
	ArchetypeSmartCasual,
	ArchetypeCleanMinimal,
	ArchetypeClassicSoft,
	ArchetypeSportySharp,
	ArchetypeUrbanStreet,
	ArchetypeRefinedLuxe,
}

// NeutralArchetype is the fallback when the quiz carries no usable signal or
// every score stays below the confidence floor.
const NeutralArchetype = ArchetypeSmartCasual

func (a Archetype) Label() string {
	switch a {
	case ArchetypeCleanMinimal:
		return "Clean Minimal"
	case ArchetypeSmartCasual:
		return "Smart Casual"
	case ArchetypeClassicSoft:
		return "Classic Soft"
	case ArchetypeSportySharp:
		return "Sporty Sharp"
	case ArchetypeUrbanStreet:
		return "Urban Street"
	case ArchetypeRefinedLuxe:
		return "Refined Luxe"
	default:
		return string(a)
	}
}
