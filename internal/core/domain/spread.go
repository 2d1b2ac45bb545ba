package domain

import "fmt"

// SpreadCategory groups spread templates for browsing.
type SpreadCategory string

// Spread categories.
const (
	SpreadCategoryBasic     SpreadCategory = "basic"
	SpreadCategoryLove      SpreadCategory = "love"
	SpreadCategoryCareer    SpreadCategory = "career"
	SpreadCategoryYear      SpreadCategory = "year"
	SpreadCategoryWeekly    SpreadCategory = "weekly"
	SpreadCategorySpiritual SpreadCategory = "spiritual"
	SpreadCategoryCustom    SpreadCategory = "custom"
)

// IsValid returns true if the category is recognised.
func (c SpreadCategory) IsValid() bool {
	switch c {
	case SpreadCategoryBasic, SpreadCategoryLove, SpreadCategoryCareer,
		SpreadCategoryYear, SpreadCategoryWeekly, SpreadCategorySpiritual,
		SpreadCategoryCustom:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (c SpreadCategory) String() string {
	return string(c)
}

// SpreadPosition is one slot of a spread template. Title and description
// are localization keys resolved by the presentation layer's Translator.
type SpreadPosition struct {
	// Index is unique and contiguous within the spread, starting at 0.
	Index int `json:"index"`

	// TitleKey is the localization key for the position title.
	TitleKey string `json:"titleKey"`

	// DescriptionKey is the localization key for the position description.
	DescriptionKey string `json:"descriptionKey"`

	// X and Y are normalized layout coordinates in [0,1].
	X float64 `json:"x"`
	Y float64 `json:"y"`

	// Rotation is the optional card rotation in degrees.
	Rotation float64 `json:"rotation,omitempty"`

	// ReversedAllowed marks positions where a reversed card may be shown.
	// Carried for presentation; the draw decides orientation independently.
	ReversedAllowed bool `json:"reversedAllowed,omitempty"`
}

// Spread is a named template of ordered card positions.
type Spread struct {
	// ID is the spread identity (e.g. "three-card").
	ID string `json:"id"`

	// NameKey is the localization key for the spread name.
	NameKey string `json:"nameKey"`

	// DescriptionKey is the localization key for the spread description.
	DescriptionKey string `json:"descriptionKey"`

	// Positions is the ordered, index-contiguous position list.
	Positions []SpreadPosition `json:"positions"`

	// MinCards and MaxCards bound len(Positions).
	MinCards int `json:"minCards"`
	MaxCards int `json:"maxCards"`

	// Category groups the spread for browsing.
	Category SpreadCategory `json:"category"`

	// Premium marks spreads gated behind the premium flag.
	Premium bool `json:"premium,omitempty"`

	// Featured marks spreads highlighted in catalog listings.
	Featured bool `json:"featured,omitempty"`
}

// Validate checks the structural invariants of the template:
// position indices contiguous from zero and the position count
// within [MinCards, MaxCards].
func (s Spread) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("spread id is empty: %w", ErrInvalidInput)
	}
	if !s.Category.IsValid() {
		return fmt.Errorf("spread %s: invalid category %q: %w", s.ID, s.Category, ErrInvalidInput)
	}
	n := len(s.Positions)
	if n < s.MinCards || n > s.MaxCards {
		return fmt.Errorf("spread %s: %d positions outside [%d,%d]: %w",
			s.ID, n, s.MinCards, s.MaxCards, ErrInvalidInput)
	}
	for i, pos := range s.Positions {
		if pos.Index != i {
			return fmt.Errorf("spread %s: position %d has index %d: %w",
				s.ID, i, pos.Index, ErrInvalidInput)
		}
		if pos.TitleKey == "" || pos.DescriptionKey == "" {
			return fmt.Errorf("spread %s: position %d missing localization keys: %w",
				s.ID, i, ErrInvalidInput)
		}
	}
	return nil
}
