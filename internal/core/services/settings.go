package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/custodia-labs/contacts-cli/internal/core/domain"
	"github.com/custodia-labs/contacts-cli/internal/core/ports/driven"
	"github.com/custodia-labs/contacts-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyStorageBackend    = "storage.backend"
	KeyStorageDir        = "storage.dir"
	KeyExportFormats     = "export.formats"
	KeyExportDir         = "export.dir"
	KeyExportCompression = "export.compression"
	KeyOutputFormat      = "output.format"
	KeyLogFile           = "log.file"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	dispatcher  driving.Dispatcher
}

// NewSettingsService creates a new settings service.
// The dispatcher is optional; when set, format ids are validated against it.
func NewSettingsService(configStore driven.ConfigStore, dispatcher driving.Dispatcher) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		dispatcher:  dispatcher,
	}
}

// Get retrieves current application settings, falling back to defaults for
// missing or invalid values.
func (s *SettingsService) Get() (*domain.Settings, error) {
	defaults := domain.DefaultSettings()

	settings := &domain.Settings{
		Storage: domain.StorageSettings{
			Backend: s.getBackend(defaults.Storage.Backend),
			Dir:     s.configStore.GetString(KeyStorageDir), // No default - empty means ~/.contacts/data
		},
		Export: domain.ExportSettings{
			Formats:     s.getFormats(defaults.Export.Formats),
			Dir:         s.configStore.GetString(KeyExportDir),
			Compression: s.getCompression(defaults.Export.Compression),
		},
		Output: domain.OutputSettings{
			Format: s.getString(KeyOutputFormat, defaults.Output.Format),
		},
		Log: domain.LogSettings{
			File: s.configStore.GetString(KeyLogFile),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.Settings) error {
	if err := s.configStore.Set(KeyStorageBackend, settings.Storage.Backend.String()); err != nil {
		return fmt.Errorf("save storage backend: %w", err)
	}
	if err := s.configStore.Set(KeyStorageDir, settings.Storage.Dir); err != nil {
		return fmt.Errorf("save storage dir: %w", err)
	}
	if err := s.configStore.Set(KeyExportFormats, settings.Export.Formats); err != nil {
		return fmt.Errorf("save export formats: %w", err)
	}
	if err := s.configStore.Set(KeyExportDir, settings.Export.Dir); err != nil {
		return fmt.Errorf("save export dir: %w", err)
	}
	if err := s.configStore.Set(KeyExportCompression, settings.Export.Compression.String()); err != nil {
		return fmt.Errorf("save export compression: %w", err)
	}
	if err := s.configStore.Set(KeyOutputFormat, settings.Output.Format); err != nil {
		return fmt.Errorf("save output format: %w", err)
	}
	if err := s.configStore.Set(KeyLogFile, settings.Log.File); err != nil {
		return fmt.Errorf("save log file: %w", err)
	}
	return nil
}

// Set validates and stores a single setting. Export formats are given as a
// comma-separated list.
func (s *SettingsService) Set(key, value string) error {
	value = strings.TrimSpace(value)

	switch key {
	case KeyStorageBackend:
		if !domain.StorageBackend(value).IsValid() {
			return fmt.Errorf("%w: invalid storage backend %q", domain.ErrInvalidInput, value)
		}
		return s.configStore.Set(key, value)

	case KeyStorageDir, KeyExportDir, KeyLogFile:
		return s.configStore.Set(key, value)

	case KeyExportCompression:
		if !domain.Compression(value).IsValid() {
			return fmt.Errorf("%w: invalid compression %q", domain.ErrInvalidInput, value)
		}
		return s.configStore.Set(key, value)

	case KeyExportFormats:
		formats := splitList(value)
		if len(formats) == 0 {
			return fmt.Errorf("%w: at least one export format is required", domain.ErrInvalidInput)
		}
		for _, f := range formats {
			if err := s.checkFormat(f); err != nil {
				return err
			}
		}
		return s.configStore.Set(key, formats)

	case KeyOutputFormat:
		if err := s.checkFormat(value); err != nil {
			return err
		}
		return s.configStore.Set(key, value)

	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
}

// Keys returns the supported setting keys in sorted order.
func (s *SettingsService) Keys() []string {
	keys := []string{
		KeyStorageBackend, KeyStorageDir,
		KeyExportFormats, KeyExportDir, KeyExportCompression,
		KeyOutputFormat, KeyLogFile,
	}
	sort.Strings(keys)
	return keys
}

// Value returns the effective value of a setting as it would be passed to
// Set. Defaults are shown for unset keys.
func (s *SettingsService) Value(key string) (string, error) {
	settings, err := s.Get()
	if err != nil {
		return "", err
	}

	switch key {
	case KeyStorageBackend:
		return settings.Storage.Backend.String(), nil
	case KeyStorageDir:
		return settings.Storage.Dir, nil
	case KeyExportFormats:
		return strings.Join(settings.Export.Formats, ","), nil
	case KeyExportDir:
		return settings.Export.Dir, nil
	case KeyExportCompression:
		return settings.Export.Compression.String(), nil
	case KeyOutputFormat:
		return settings.Output.Format, nil
	case KeyLogFile:
		return settings.Log.File, nil
	default:
		return "", fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

func (s *SettingsService) checkFormat(format string) error {
	if s.dispatcher == nil {
		return nil
	}
	_, err := s.dispatcher.Describe(format)
	return err
}

// splitList splits a comma-separated list, dropping blanks.
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.ToLower(strings.TrimSpace(part)); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getFormats(defaultVal []string) []string {
	formats := s.configStore.GetStringSlice(KeyExportFormats)
	if len(formats) == 0 {
		return defaultVal
	}
	return formats
}

func (s *SettingsService) getBackend(defaultVal domain.StorageBackend) domain.StorageBackend {
	backend := domain.StorageBackend(s.configStore.GetString(KeyStorageBackend))
	if !backend.IsValid() {
		return defaultVal
	}
	return backend
}

func (s *SettingsService) getCompression(defaultVal domain.Compression) domain.Compression {
	c := domain.Compression(s.configStore.GetString(KeyExportCompression))
	if !c.IsValid() {
		return defaultVal
	}
	return c
}
