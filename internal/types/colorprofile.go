package types

type Temperature string

const (
	TemperatureWarm    Temperature = "warm"
	TemperatureCool    Temperature = "cool"
	TemperatureNeutral Temperature = "neutral"
)

type Value string

const (
	ValueLight  Value = "light"
	ValueMedium Value = "medium"
	ValueDark   Value = "dark"
)

type Contrast string

const (
	ContrastLow    Contrast = "low"
	ContrastMedium Contrast = "medium"
	ContrastHigh   Contrast = "high"
)

type Chroma string

const (
	ChromaSoft  Chroma = "soft"
	ChromaClear Chroma = "clear"
)

type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonAutumn Season = "autumn"
	SeasonWinter Season = "winter"
)

// ColorProfile is the derived seasonal color description for one quiz
// submission. Immutable after creation; a new submission produces a new
// profile.
type ColorProfile struct {
	Temperature Temperature `json:"temperature"`
	Value       Value       `json:"value"`
	Contrast    Contrast    `json:"contrast"`
	Chroma      Chroma      `json:"chroma"`
	Season      Season      `json:"season"`
	PaletteName string      `json:"palette_name"`
	Notes       []string    `json:"notes"`
}
