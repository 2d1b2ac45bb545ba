package domain

// Orientation is the upright or reversed state of a drawn card.
type Orientation string

// Card orientations.
const (
	OrientationUpright  Orientation = "upright"
	OrientationReversed Orientation = "reversed"
)

// IsValid returns true if the orientation is recognised.
func (o Orientation) IsValid() bool {
	return o == OrientationUpright || o == OrientationReversed
}

// String returns the string representation.
func (o Orientation) String() string {
	return string(o)
}

// OrientationOf maps a reversal flag to its orientation.
func OrientationOf(reversed bool) Orientation {
	if reversed {
		return OrientationReversed
	}
	return OrientationUpright
}

// InsightPosition is the generated guidance for one spread position.
type InsightPosition struct {
	// PositionIndex is the spread position the guidance refers to.
	PositionIndex int `json:"positionIndex"`

	// PositionTitle is the resolved position title the service echoed back.
	PositionTitle string `json:"positionTitle"`

	// CardName is the display name of the card at this position.
	CardName string `json:"cardName"`

	// Orientation is the resolved card orientation.
	Orientation Orientation `json:"orientation"`

	// Meaning is the generated narrative for this position.
	Meaning string `json:"meaning"`
}

// AugmentedInsight is a narrative generated by the external service.
// Immutable once generated; a reading holds at most one.
type AugmentedInsight struct {
	// Summary is the overall generated narrative for the spread.
	Summary string `json:"summary"`

	// Positions is the ordered per-position guidance.
	Positions []InsightPosition `json:"positions"`

	// Model identifies the generating model.
	Model string `json:"model"`

	// Language is the language the narrative was requested in.
	Language string `json:"language"`

	// GeneratedAt is the generation timestamp in Unix milliseconds.
	GeneratedAt int64 `json:"generatedAt"`
}

// InsightEntry carries the full per-position context sent to the
// narrative service: both orientation profiles are included so the
// model can contrast them.
type InsightEntry struct {
	PositionIndex       int
	PositionTitle       string
	PositionDescription string
	CardName            string
	UprightMeaning      string
	ReversedMeaning     string
	UprightKeywords     []string
	ReversedKeywords    []string
	IsReversed          bool
}

// InsightRequest is the input to the augmentation call.
type InsightRequest struct {
	// Language is the response language code (e.g. "en").
	Language string

	// SpreadName is the resolved spread name.
	SpreadName string

	// SpreadDescription is the resolved spread description, may be empty.
	SpreadDescription string

	// Entries is the per-position context in spread order.
	Entries []InsightEntry
}
