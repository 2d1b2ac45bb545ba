package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/digkill/tarot-app/internal/core/domain"
	"github.com/digkill/tarot-app/internal/core/ports/driven"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage reading preferences",
	RunE:  runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <name> <value>",
	Short: "Change one setting",
	Long: `Change one setting. Available names:

  language         - interface and deck language (en, ru, th, zh)
  theme            - presentation theme (light, dark, system)
  reversed-chance  - probability of a reversed card, 0 to 1
  mystic           - mystic presentation mode (true/false)
  animations       - card-reveal animation (true/false)
  sounds           - sound effects (true/false)
  reminder         - daily reading reminder (true/false)
  premium          - unlock premium spreads (true/false)`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsKeyCmd = &cobra.Command{
	Use:   "key",
	Short: "Store the OpenAI API key for AI narratives",
	RunE:  runSettingsKey,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsKeyCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings := settingsService.Load(cmd.Context())

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()
	cmd.Printf("  Language:        %s (%s)\n", settings.Language, settings.Language.Label())
	cmd.Printf("  Theme:           %s\n", settings.Theme)
	cmd.Printf("  Reversed chance: %.2f\n", settings.ReversedChance)
	cmd.Printf("  Mystic mode:     %t\n", settings.ShowMysticMode)
	cmd.Printf("  Animations:      %t\n", !settings.DisableAnimations)
	cmd.Printf("  Sounds:          %t\n", !settings.DisableSounds)
	cmd.Printf("  Daily reminder:  %t\n", settings.DailyReminder)
	cmd.Printf("  Premium:         %t\n", settings.HasPremium)

	if configStore != nil {
		cmd.Println()
		if key := configStore.GetString(driven.ConfigInsightAPIKey); key != "" {
			cmd.Printf("  API key:         %s\n", maskAPIKey(key))
		} else {
			cmd.Printf("  API key:         (not set)\n")
		}
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	name, value := args[0], args[1]
	var mutate func(*domain.Settings)

	switch name {
	case "language":
		lang := domain.Language(value)
		if !lang.IsValid() {
			return fmt.Errorf("unknown language %q (en, ru, th, zh)", value)
		}
		mutate = func(s *domain.Settings) { s.Language = lang }
	case "theme":
		theme := domain.ThemePreference(value)
		if !theme.IsValid() {
			return fmt.Errorf("unknown theme %q (light, dark, system)", value)
		}
		mutate = func(s *domain.Settings) { s.Theme = theme }
	case "reversed-chance":
		chance, err := strconv.ParseFloat(value, 64)
		if err != nil || chance < 0 || chance > 1 {
			return fmt.Errorf("reversed-chance must be a number between 0 and 1")
		}
		mutate = func(s *domain.Settings) { s.ReversedChance = chance }
	case "mystic", "animations", "sounds", "reminder", "premium":
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s must be true or false", name)
		}
		switch name {
		case "mystic":
			mutate = func(s *domain.Settings) { s.ShowMysticMode = enabled }
		case "animations":
			mutate = func(s *domain.Settings) { s.DisableAnimations = !enabled }
		case "sounds":
			mutate = func(s *domain.Settings) { s.DisableSounds = !enabled }
		case "reminder":
			mutate = func(s *domain.Settings) { s.DailyReminder = enabled }
		case "premium":
			mutate = func(s *domain.Settings) { s.HasPremium = enabled }
		}
	default:
		return fmt.Errorf("unknown setting %q, run \"tarot settings set --help\"", name)
	}

	settingsService.Update(cmd.Context(), mutate)
	cmd.Printf("%s updated\n", name)
	return nil
}

func runSettingsKey(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Print("OpenAI API key (input hidden): ")
	key := readPassword()
	cmd.Println()
	if key == "" {
		return errors.New("no key entered")
	}

	if err := configStore.Set(driven.ConfigInsightAPIKey, key); err != nil {
		return fmt.Errorf("storing API key: %w", err)
	}
	cmd.Printf("API key stored in %s\n", configStore.Path())
	return nil
}

// readPassword reads a line from stdin without echo when attached to
// a terminal, with a plain read as fallback.
func readPassword() string {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

// maskAPIKey shows only the first and last few characters of a key.
func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
