package driven

import "github.com/digkill/tarot-app/internal/core/domain"

// DeckRepository provides read-only, language-keyed card catalogs.
// A deck snapshot is immutable per language; callers may share it.
type DeckRepository interface {
	// Deck returns the card catalog for a language. Implementations
	// fall back to a default language when the requested one has no
	// catalog, so a valid repository never returns an empty deck.
	Deck(lang domain.Language) ([]domain.Card, error)

	// Card looks up a single card by identity within a language's deck.
	Card(lang domain.Language, id string) (*domain.Card, error)

	// DeckID returns the identity of the deck this repository serves.
	DeckID() string
}

// SpreadCatalog provides the fixed set of spread templates.
type SpreadCatalog interface {
	// List returns all spread templates in catalog order.
	List() []domain.Spread

	// Get returns the template with the given identity, or
	// domain.ErrNotFound.
	Get(id string) (*domain.Spread, error)
}
