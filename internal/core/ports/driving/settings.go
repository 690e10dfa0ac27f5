package driving

import "github.com/custodia-labs/contacts-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.Settings, error)

	// Save persists application settings.
	Save(settings *domain.Settings) error

	// Set validates and stores a single setting by its dotted key.
	Set(key, value string) error

	// Value returns the effective value of a setting in Set's syntax.
	Value(key string) (string, error)

	// Keys returns the supported setting keys.
	Keys() []string

	// GetDefaults returns default settings.
	GetDefaults() domain.Settings
}
