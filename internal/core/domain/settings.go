package domain

// ThemePreference selects the presentation theme.
type ThemePreference string

// Theme preferences.
const (
	ThemeLight  ThemePreference = "light"
	ThemeDark   ThemePreference = "dark"
	ThemeSystem ThemePreference = "system"
)

// IsValid returns true if the theme preference is recognised.
func (t ThemePreference) IsValid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t ThemePreference) String() string {
	return string(t)
}

// Language is a supported interface language code.
type Language string

// Supported languages.
const (
	LanguageEN Language = "en"
	LanguageRU Language = "ru"
	LanguageTH Language = "th"
	LanguageZH Language = "zh"
)

// IsValid returns true if the language is recognised.
func (l Language) IsValid() bool {
	switch l {
	case LanguageEN, LanguageRU, LanguageTH, LanguageZH:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (l Language) String() string {
	return string(l)
}

// Label returns the language name used when asking the narrative
// service to respond in that language.
func (l Language) Label() string {
	switch l {
	case LanguageRU:
		return "Russian"
	case LanguageTH:
		return "Thai"
	case LanguageZH:
		return "Simplified Chinese"
	default:
		return "English"
	}
}

// DefaultReversedChance is the out-of-the-box reversal probability.
const DefaultReversedChance = 0.3

// Settings is the single per-installation preference record.
// Missing fields in older persisted documents take their defaults
// on load (shallow merge, see the settings store).
type Settings struct {
	// Language is the interface and deck language.
	Language Language `json:"language"`

	// Theme is the presentation theme preference.
	Theme ThemePreference `json:"theme"`

	// DisableAnimations turns card-reveal animation off.
	DisableAnimations bool `json:"disableAnimations"`

	// DisableSounds turns sound effects off.
	DisableSounds bool `json:"disableSounds"`

	// ReversedChance is the reversal probability in [0,1].
	ReversedChance float64 `json:"reversedChance"`

	// ShowMysticMode enables the mystic presentation mode.
	ShowMysticMode bool `json:"showMysticMode"`

	// HasPremium unlocks premium spreads.
	HasPremium bool `json:"hasPremium"`

	// DailyReminder enables the daily reading reminder.
	DailyReminder bool `json:"dailyReminder,omitempty"`

	// HasCompletedOnboarding records a finished onboarding flow.
	HasCompletedOnboarding bool `json:"hasCompletedOnboarding,omitempty"`

	// AcceptedDisclaimer records disclaimer acceptance.
	AcceptedDisclaimer bool `json:"acceptedDisclaimer,omitempty"`
}

// DefaultSettings returns the documented default record.
func DefaultSettings() Settings {
	return Settings{
		Language:       LanguageEN,
		Theme:          ThemeSystem,
		ReversedChance: DefaultReversedChance,
		ShowMysticMode: true,
	}
}

// Normalize coerces invalid field values back to their defaults and
// clamps ReversedChance into [0,1].
func (s *Settings) Normalize() {
	if !s.Language.IsValid() {
		s.Language = LanguageEN
	}
	if !s.Theme.IsValid() {
		s.Theme = ThemeSystem
	}
	if s.ReversedChance < 0 {
		s.ReversedChance = 0
	}
	if s.ReversedChance > 1 {
		s.ReversedChance = 1
	}
}
