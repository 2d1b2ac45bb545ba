package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/digkill/tarot-app/internal/core/domain"
	"github.com/digkill/tarot-app/internal/core/ports/driven"
	"github.com/digkill/tarot-app/internal/logger"
)

// Ensure Decks implements the interface.
var _ driven.DeckRepository = (*Decks)(nil)

//go:embed data/decks/*.toml
var deckFS embed.FS

// fallbackLanguage serves languages without their own card catalog.
const fallbackLanguage = domain.LanguageEN

// deckFile is the on-disk shape of a card catalog.
type deckFile struct {
	DeckID   string     `toml:"deck_id"`
	Language string     `toml:"language"`
	Cards    []cardItem `toml:"cards"`
}

type cardItem struct {
	ID       string      `toml:"id"`
	Name     string      `toml:"name"`
	Arcana   string      `toml:"arcana"`
	Suit     string      `toml:"suit"`
	Number   *int        `toml:"number"`
	Image    string      `toml:"image"`
	Upright  profileItem `toml:"upright"`
	Reversed profileItem `toml:"reversed"`
}

type profileItem struct {
	Keywords []string `toml:"keywords"`
	General  string   `toml:"general"`
	Love     string   `toml:"love"`
	Work     string   `toml:"work"`
	Health   string   `toml:"health"`
	Advice   string   `toml:"advice"`
}

// Decks serves the embedded card catalogs keyed by language.
type Decks struct {
	deckID string
	decks  map[domain.Language][]domain.Card
	byID   map[domain.Language]map[string]*domain.Card

	warnOnce sync.Map // languages already warned about falling back
}

// LoadDecks parses and validates every embedded card catalog. It
// fails when the fallback language catalog is missing or any catalog
// is malformed.
func LoadDecks() (*Decks, error) {
	entries, err := fs.ReadDir(deckFS, "data/decks")
	if err != nil {
		return nil, fmt.Errorf("reading deck catalogs: %w", err)
	}

	d := &Decks{
		decks: make(map[domain.Language][]domain.Card),
		byID:  make(map[domain.Language]map[string]*domain.Card),
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, ".toml") {
			continue
		}
		raw, err := fs.ReadFile(deckFS, "data/decks/"+name)
		if err != nil {
			return nil, fmt.Errorf("reading deck catalog %s: %w", name, err)
		}

		var file deckFile
		if err := toml.Unmarshal(raw, &file); err != nil {
			return nil, fmt.Errorf("parsing deck catalog %s: %w", name, err)
		}

		lang := domain.Language(file.Language)
		if !lang.IsValid() {
			return nil, fmt.Errorf("deck catalog %s: unknown language %q: %w", name, file.Language, domain.ErrInvalidInput)
		}
		if d.deckID == "" {
			d.deckID = file.DeckID
		} else if d.deckID != file.DeckID {
			return nil, fmt.Errorf("deck catalog %s: deck id %q differs from %q: %w", name, file.DeckID, d.deckID, domain.ErrInvalidInput)
		}

		cards, index, err := buildDeck(file)
		if err != nil {
			return nil, fmt.Errorf("deck catalog %s: %w", name, err)
		}
		d.decks[lang] = cards
		d.byID[lang] = index
	}

	if _, ok := d.decks[fallbackLanguage]; !ok {
		return nil, fmt.Errorf("no %s deck catalog embedded: %w", fallbackLanguage, domain.ErrInvalidInput)
	}
	return d, nil
}

// Deck returns the immutable card catalog for a language, falling
// back to English when the language has no catalog of its own.
func (d *Decks) Deck(lang domain.Language) ([]domain.Card, error) {
	if deck, ok := d.decks[lang]; ok {
		return deck, nil
	}
	if _, warned := d.warnOnce.LoadOrStore(lang, struct{}{}); !warned {
		logger.Warn().Str("language", lang.String()).Msg("no card catalog for language, falling back to English")
	}
	return d.decks[fallbackLanguage], nil
}

// Card looks up one card by identity within a language's deck.
func (d *Decks) Card(lang domain.Language, id string) (*domain.Card, error) {
	index, ok := d.byID[lang]
	if !ok {
		index = d.byID[fallbackLanguage]
	}
	card, ok := index[id]
	if !ok {
		return nil, fmt.Errorf("card %q: %w", id, domain.ErrNotFound)
	}
	return card, nil
}

// DeckID returns the identity of the embedded deck.
func (d *Decks) DeckID() string {
	return d.deckID
}

// buildDeck converts and validates one parsed catalog.
func buildDeck(file deckFile) ([]domain.Card, map[string]*domain.Card, error) {
	cards := make([]domain.Card, 0, len(file.Cards))
	index := make(map[string]*domain.Card, len(file.Cards))

	for i, item := range file.Cards {
		if item.ID == "" || item.Name == "" {
			return nil, nil, fmt.Errorf("card %d: missing id or name: %w", i, domain.ErrInvalidInput)
		}
		arcana := domain.Arcana(item.Arcana)
		if !arcana.IsValid() {
			return nil, nil, fmt.Errorf("card %s: unknown arcana %q: %w", item.ID, item.Arcana, domain.ErrInvalidInput)
		}
		var suit domain.Suit
		if item.Suit != "" {
			suit = domain.Suit(item.Suit)
			if !suit.IsValid() {
				return nil, nil, fmt.Errorf("card %s: unknown suit %q: %w", item.ID, item.Suit, domain.ErrInvalidInput)
			}
		}
		if item.Upright.General == "" || item.Reversed.General == "" {
			return nil, nil, fmt.Errorf("card %s: missing orientation meaning: %w", item.ID, domain.ErrInvalidInput)
		}
		cards = append(cards, domain.Card{
			ID:       item.ID,
			DeckID:   file.DeckID,
			Name:     item.Name,
			Arcana:   arcana,
			Suit:     suit,
			Number:   item.Number,
			Image:    item.Image,
			Upright:  profile(item.Upright),
			Reversed: profile(item.Reversed),
		})
	}

	// Index after the slice stops growing so the pointers stay valid.
	for i := range cards {
		if _, dup := index[cards[i].ID]; dup {
			return nil, nil, fmt.Errorf("card %s: duplicate id: %w", cards[i].ID, domain.ErrInvalidInput)
		}
		index[cards[i].ID] = &cards[i]
	}
	return cards, index, nil
}

func profile(item profileItem) domain.CardProfile {
	return domain.CardProfile{
		Keywords: item.Keywords,
		General:  item.General,
		Love:     item.Love,
		Work:     item.Work,
		Health:   item.Health,
		Advice:   item.Advice,
	}
}
