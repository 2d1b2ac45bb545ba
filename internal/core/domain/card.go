package domain

// Arcana classifies a card as part of the major or minor arcana.
type Arcana string

// Arcana classes.
const (
	// ArcanaMajor is one of the 22 trump cards.
	ArcanaMajor Arcana = "major"

	// ArcanaMinor is one of the 56 suited cards.
	ArcanaMinor Arcana = "minor"
)

// IsValid returns true if the arcana class is recognised.
func (a Arcana) IsValid() bool {
	return a == ArcanaMajor || a == ArcanaMinor
}

// String returns the string representation.
func (a Arcana) String() string {
	return string(a)
}

// Suit identifies a minor arcana suit. Empty for major arcana cards.
type Suit string

// Minor arcana suits.
const (
	SuitWands     Suit = "wands"
	SuitCups      Suit = "cups"
	SuitSwords    Suit = "swords"
	SuitPentacles Suit = "pentacles"
)

// IsValid returns true if the suit is recognised.
func (s Suit) IsValid() bool {
	switch s {
	case SuitWands, SuitCups, SuitSwords, SuitPentacles:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s Suit) String() string {
	return string(s)
}

// CardProfile is the textual meaning of one card orientation.
// Keywords may be empty; General is always populated for a valid deck.
type CardProfile struct {
	// Keywords is the ordered keyword list for this orientation.
	Keywords []string `json:"keywords"`

	// General is the base narrative for this orientation.
	General string `json:"general"`

	// Love is the optional love-facet narrative.
	Love string `json:"love,omitempty"`

	// Work is the optional work-facet narrative.
	Work string `json:"work,omitempty"`

	// Health is the optional health-facet narrative.
	Health string `json:"health,omitempty"`

	// Advice is the optional advice-facet narrative.
	Advice string `json:"advice,omitempty"`
}

// Card is a single deck entry. Immutable once loaded from a catalog.
type Card struct {
	// ID is unique within a deck (e.g. "rws-the-fool").
	ID string `json:"id"`

	// DeckID links the card to its deck (e.g. "rws").
	DeckID string `json:"deckId"`

	// Name is the localized display name.
	Name string `json:"name"`

	// Arcana is the major/minor classification.
	Arcana Arcana `json:"arcana"`

	// Suit is set for minor arcana cards only.
	Suit Suit `json:"suit,omitempty"`

	// Number is the numeric rank where the card has one
	// (0-21 for majors, 1-14 for minors). Nil when unranked.
	Number *int `json:"number,omitempty"`

	// Image is the asset reference resolved by the presentation layer.
	Image string `json:"image"`

	// Upright is the upright orientation profile.
	Upright CardProfile `json:"upright"`

	// Reversed is the reversed orientation profile.
	Reversed CardProfile `json:"reversed"`
}

// Profile returns the profile matching the given orientation.
func (c Card) Profile(reversed bool) CardProfile {
	if reversed {
		return c.Reversed
	}
	return c.Upright
}
