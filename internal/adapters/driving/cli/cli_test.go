package cli

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digkill/tarot-app/internal/adapters/driven/catalog"
	"github.com/digkill/tarot-app/internal/adapters/driven/storage/memory"
	"github.com/digkill/tarot-app/internal/core/domain"
	"github.com/digkill/tarot-app/internal/core/services"
)

func setupCLI(t *testing.T) {
	t.Helper()
	color.NoColor = true

	decks, err := catalog.LoadDecks()
	require.NoError(t, err)
	spreads, err := catalog.LoadSpreads()
	require.NoError(t, err)

	readings := services.NewReadingStore(memory.NewKVStore())
	settings := services.NewSettingsStore(memory.NewKVStore())
	divination := services.NewDivination(
		decks, spreads, nil,
		services.NewDrawEngine(nil), services.NewAssembler(),
		readings, settings,
	)

	Initialize(Dependencies{
		Divination: divination,
		Readings:   readings,
		Settings:   settings,
		Spreads:    spreads,
		Decks:      decks,
		Version:    "test",
	})
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestVersionCommand(t *testing.T) {
	setupCLI(t)

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "tarot version test")
}

func TestSpreadsCommand(t *testing.T) {
	setupCLI(t)

	out, err := execute(t, "spreads")
	require.NoError(t, err)
	assert.Contains(t, out, "three-card")
	assert.Contains(t, out, "Past, Present, Future")
	assert.Contains(t, out, "celtic-cross")
	assert.Contains(t, out, "premium, locked")
}

func TestDrawAndHistoryFlow(t *testing.T) {
	setupCLI(t)

	out, err := execute(t, "draw", "three-card")
	require.NoError(t, err)
	assert.Contains(t, out, "Past, Present, Future")
	assert.Contains(t, out, "1. Past")
	assert.Contains(t, out, "Summary")
	assert.Contains(t, out, "Saved as ")

	out, err = execute(t, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "three-card")
}

func TestDrawUnknownSpread(t *testing.T) {
	setupCLI(t)

	_, err := execute(t, "draw", "no-such-spread")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown spread")
}

func TestDrawPremiumSpreadLocked(t *testing.T) {
	setupCLI(t)

	_, err := execute(t, "draw", "celtic-cross")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "premium")

	_, err = execute(t, "settings", "set", "premium", "true")
	require.NoError(t, err)

	out, err := execute(t, "draw", "celtic-cross")
	require.NoError(t, err)
	assert.Contains(t, out, "Celtic Cross")
}

func TestSettingsSetAndShow(t *testing.T) {
	setupCLI(t)

	_, err := execute(t, "settings", "set", "reversed-chance", "0.5")
	require.NoError(t, err)

	out, err := execute(t, "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Reversed chance: 0.50")
}

func TestSettingsSetRejectsInvalid(t *testing.T) {
	setupCLI(t)

	_, err := execute(t, "settings", "set", "language", "fr")
	require.Error(t, err)

	_, err = execute(t, "settings", "set", "reversed-chance", "1.5")
	require.Error(t, err)
}

func TestInsightWithoutKey(t *testing.T) {
	setupCLI(t)

	out, err := execute(t, "draw", "card-of-the-day")
	require.NoError(t, err)
	assert.Contains(t, out, "Saved as ")

	_, err = execute(t, "insight", "nonexistent-id")
	require.Error(t, err)
}

func TestTranslator_Interpolation(t *testing.T) {
	translator := translatorFor(domain.LanguageEN)

	got := translator.Translate("interpretation.summaryIntro", map[string]any{
		"spread": "Celtic Cross",
		"count":  10,
	})
	assert.Equal(t, "Your Celtic Cross reading of 10 cards tells a story.", got)

	// Unknown keys pass through.
	assert.Equal(t, "no.such.key", translator.Translate("no.such.key", nil))
}

func TestTranslator_FallbackLanguage(t *testing.T) {
	en := translatorFor(domain.LanguageEN)
	th := translatorFor(domain.LanguageTH)
	assert.Equal(t,
		en.Translate("spreads.three-card.name", nil),
		th.Translate("spreads.three-card.name", nil))
}
