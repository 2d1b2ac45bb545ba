package cli

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/digkill/tarot-app/internal/core/domain"
	"github.com/digkill/tarot-app/internal/core/ports/driven"
	"github.com/digkill/tarot-app/internal/logger"
)

//go:embed locales/*.toml
var localeFS embed.FS

// catalogs maps language codes to flattened key-value catalogs,
// loaded once at startup. Missing catalogs fall back to English.
var catalogs = loadCatalogs()

// localeCatalog resolves localization keys with {var} interpolation.
// Unknown keys pass through unchanged so missing entries degrade to
// visible key names instead of empty strings.
type localeCatalog struct {
	entries map[string]string
}

// Ensure localeCatalog implements the interface.
var _ driven.Translator = (*localeCatalog)(nil)

// Translate resolves a key and substitutes {name} placeholders from
// vars.
func (c *localeCatalog) Translate(key string, vars map[string]any) string {
	text, ok := c.entries[key]
	if !ok {
		return key
	}
	for name, value := range vars {
		text = strings.ReplaceAll(text, "{"+name+"}", fmt.Sprint(value))
	}
	return text
}

// translatorFor returns the catalog for a language, falling back to
// English.
func translatorFor(lang domain.Language) driven.Translator {
	if c, ok := catalogs[lang]; ok {
		return c
	}
	return catalogs[domain.LanguageEN]
}

func loadCatalogs() map[domain.Language]*localeCatalog {
	out := make(map[domain.Language]*localeCatalog)
	entries, err := fs.ReadDir(localeFS, "locales")
	if err != nil {
		logger.Error().Err(err).Msg("reading embedded locales")
		return out
	}
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, ".toml") {
			continue
		}
		lang := domain.Language(strings.TrimSuffix(name, ".toml"))
		raw, err := fs.ReadFile(localeFS, "locales/"+name)
		if err != nil {
			logger.Error().Err(err).Str("locale", name).Msg("reading locale catalog")
			continue
		}
		var parsed map[string]string
		if err := toml.Unmarshal(raw, &parsed); err != nil {
			logger.Error().Err(err).Str("locale", name).Msg("parsing locale catalog")
			continue
		}
		out[lang] = &localeCatalog{entries: parsed}
	}
	return out
}
