// Package cli implements the command-line interface for the reading
// session engine.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/digkill/tarot-app/internal/core/ports/driven"
	"github.com/digkill/tarot-app/internal/core/ports/driving"
)

// Services wired in by the composition root before Execute.
var (
	divinationService driving.DivinationService
	readingHistory    driving.ReadingHistory
	settingsService   driving.SettingsService
	spreadCatalog     driven.SpreadCatalog
	deckRepository    driven.DeckRepository
	configStore       driven.ConfigStore

	version = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "tarot",
	Short: "Tarot reading sessions from the command line",
	Long: `Tarot draws cards, assembles interpretations, and keeps your
reading history. Readings stay on this machine; an optional AI
narrative can be requested per reading once an API key is configured.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Dependencies carries everything the commands need.
type Dependencies struct {
	Divination driving.DivinationService
	Readings   driving.ReadingHistory
	Settings   driving.SettingsService
	Spreads    driven.SpreadCatalog
	Decks      driven.DeckRepository
	Config     driven.ConfigStore
	Version    string
}

// Initialize injects the services the commands run against.
func Initialize(deps Dependencies) {
	divinationService = deps.Divination
	readingHistory = deps.Readings
	settingsService = deps.Settings
	spreadCatalog = deps.Spreads
	deckRepository = deps.Decks
	configStore = deps.Config
	if deps.Version != "" {
		version = deps.Version
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// currentTranslator resolves the locale catalog for the configured
// language.
func currentTranslator(cmd *cobra.Command) driven.Translator {
	lang := settingsService.Load(cmd.Context()).Language
	return translatorFor(lang)
}
