package catalog

import (
	_ "embed"
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/digkill/tarot-app/internal/core/domain"
	"github.com/digkill/tarot-app/internal/core/ports/driven"
)

// Ensure Spreads implements the interface.
var _ driven.SpreadCatalog = (*Spreads)(nil)

//go:embed data/spreads.toml
var spreadsTOML []byte

// spreadsFile is the on-disk shape of the spread catalog.
type spreadsFile struct {
	Spreads []spreadItem `toml:"spreads"`
}

type spreadItem struct {
	ID             string         `toml:"id"`
	NameKey        string         `toml:"name_key"`
	DescriptionKey string         `toml:"description_key"`
	Category       string         `toml:"category"`
	MinCards       int            `toml:"min_cards"`
	MaxCards       int            `toml:"max_cards"`
	Premium        bool           `toml:"premium"`
	Featured       bool           `toml:"featured"`
	Positions      []positionItem `toml:"positions"`
}

type positionItem struct {
	Index           int     `toml:"index"`
	TitleKey        string  `toml:"title_key"`
	DescriptionKey  string  `toml:"description_key"`
	X               float64 `toml:"x"`
	Y               float64 `toml:"y"`
	Rotation        float64 `toml:"rotation"`
	ReversedAllowed bool    `toml:"reversed_allowed"`
}

// Spreads serves the embedded spread templates.
type Spreads struct {
	ordered []domain.Spread
	byID    map[string]*domain.Spread
}

// LoadSpreads parses and validates the embedded spread catalog.
func LoadSpreads() (*Spreads, error) {
	var file spreadsFile
	if err := toml.Unmarshal(spreadsTOML, &file); err != nil {
		return nil, fmt.Errorf("parsing spread catalog: %w", err)
	}
	if len(file.Spreads) == 0 {
		return nil, fmt.Errorf("spread catalog is empty: %w", domain.ErrInvalidInput)
	}

	s := &Spreads{
		ordered: make([]domain.Spread, 0, len(file.Spreads)),
		byID:    make(map[string]*domain.Spread, len(file.Spreads)),
	}

	for _, item := range file.Spreads {
		category := domain.SpreadCategory(item.Category)
		if !category.IsValid() {
			return nil, fmt.Errorf("spread %s: unknown category %q: %w", item.ID, item.Category, domain.ErrInvalidInput)
		}

		positions := make([]domain.SpreadPosition, 0, len(item.Positions))
		for _, pos := range item.Positions {
			positions = append(positions, domain.SpreadPosition{
				Index:           pos.Index,
				TitleKey:        pos.TitleKey,
				DescriptionKey:  pos.DescriptionKey,
				X:               pos.X,
				Y:               pos.Y,
				Rotation:        pos.Rotation,
				ReversedAllowed: pos.ReversedAllowed,
			})
		}

		spread := domain.Spread{
			ID:             item.ID,
			NameKey:        item.NameKey,
			DescriptionKey: item.DescriptionKey,
			Positions:      positions,
			MinCards:       item.MinCards,
			MaxCards:       item.MaxCards,
			Category:       category,
			Premium:        item.Premium,
			Featured:       item.Featured,
		}
		if err := spread.Validate(); err != nil {
			return nil, fmt.Errorf("spread %s: %w", item.ID, err)
		}
		s.ordered = append(s.ordered, spread)
	}

	for i := range s.ordered {
		if _, dup := s.byID[s.ordered[i].ID]; dup {
			return nil, fmt.Errorf("spread %s: duplicate id: %w", s.ordered[i].ID, domain.ErrInvalidInput)
		}
		s.byID[s.ordered[i].ID] = &s.ordered[i]
	}
	return s, nil
}

// List returns all spread templates in catalog order.
func (s *Spreads) List() []domain.Spread {
	out := make([]domain.Spread, len(s.ordered))
	copy(out, s.ordered)
	return out
}

// Get returns the template with the given identity.
func (s *Spreads) Get(id string) (*domain.Spread, error) {
	spread, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("spread %q: %w", id, domain.ErrNotFound)
	}
	return spread, nil
}
