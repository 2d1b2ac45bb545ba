package domain

// DrawnEntry binds one card, with its orientation, to a spread position.
// It exists only between a draw and the persistence of a Reading.
type DrawnEntry struct {
	// Position is the spread slot this card was dealt into.
	Position SpreadPosition

	// Card is the full card record from the deck snapshot.
	Card Card

	// IsReversed is the resolved orientation.
	IsReversed bool
}

// ReadingCard is the persisted form of a drawn entry. It stores the card
// identity rather than the card text so persisted readings survive
// deck-content updates.
type ReadingCard struct {
	// PositionIndex is the spread position the card occupies.
	PositionIndex int `json:"positionIndex"`

	// CardID is the card identity within the deck.
	CardID string `json:"cardId"`

	// IsReversed is the orientation the card was drawn in.
	IsReversed bool `json:"isReversed"`
}

// Reading is one persisted record of a completed draw plus its
// interpretation and user annotations. The reading store exclusively
// owns the persisted collection; consumers hold copies.
type Reading struct {
	// ID is generated by the store: a base-36 timestamp joined with
	// random bits, unique across the store's lifetime.
	ID string `json:"id"`

	// SpreadID identifies the spread template used.
	SpreadID string `json:"spreadId"`

	// DeckID identifies the deck the cards were drawn from.
	DeckID string `json:"deckId"`

	// DrawnAt is the creation timestamp in Unix milliseconds.
	DrawnAt int64 `json:"drawnAt"`

	// Items is the ordered list of drawn cards, one per filled position.
	Items []ReadingCard `json:"items"`

	// SummaryText is the locally assembled interpretation summary.
	SummaryText string `json:"summaryText"`

	// Notes is optional free text added by the user.
	Notes string `json:"notes,omitempty"`

	// Tags is an optional user-supplied tag list.
	Tags []string `json:"tags,omitempty"`

	// Favorite marks the reading in history listings.
	Favorite bool `json:"favorite,omitempty"`

	// Insight is the optional augmented narrative. At most one per reading.
	Insight *AugmentedInsight `json:"aiInsight,omitempty"`
}

// ReadingDraft is the caller-supplied part of a new reading; the store
// fills in ID and DrawnAt on create.
type ReadingDraft struct {
	SpreadID    string
	DeckID      string
	Items       []ReadingCard
	SummaryText string
	Notes       string
	Tags        []string
}

// ReadingPatch is a partial update applied to a stored reading.
// Nil fields are left unchanged; set fields are shallow-replaced.
type ReadingPatch struct {
	SummaryText *string
	Notes       *string
	Tags        *[]string
	Favorite    *bool
	Insight     *AugmentedInsight
}

// Apply merges the patch into a reading.
func (p ReadingPatch) Apply(r *Reading) {
	if p.SummaryText != nil {
		r.SummaryText = *p.SummaryText
	}
	if p.Notes != nil {
		r.Notes = *p.Notes
	}
	if p.Tags != nil {
		r.Tags = *p.Tags
	}
	if p.Favorite != nil {
		r.Favorite = *p.Favorite
	}
	if p.Insight != nil {
		r.Insight = p.Insight
	}
}

// PositionNarrative is the assembled text for one drawn entry.
type PositionNarrative struct {
	// Title is the resolved position title.
	Title string

	// Description is the resolved position description.
	Description string

	// Card is the card dealt into this position.
	Card Card

	// IsReversed is the orientation of the card.
	IsReversed bool

	// Narrative is the composed position text.
	Narrative string
}

// Interpretation is the locally assembled reading narrative.
type Interpretation struct {
	// Summary is the intro + highlights + closing paragraph.
	Summary string

	// Positions is the per-position narrative list in spread order.
	Positions []PositionNarrative

	// Keywords is the aggregated, deduplicated keyword list, at most 12.
	Keywords []string
}
