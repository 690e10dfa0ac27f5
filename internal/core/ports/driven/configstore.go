package driven

// ConfigStore persists settings as flat dot-notation keys such as
// "export.formats". Validation lives in the settings service; stores only
// hold values.
type ConfigStore interface {
	// Get returns the raw value stored under key.
	Get(key string) (any, bool)

	// GetString returns "" if key is missing or not a string.
	GetString(key string) string

	// GetStringSlice returns nil if key is missing or not a list.
	// Non-string list items are skipped.
	GetStringSlice(key string) []string

	// Set stores a value. File-backed stores persist it immediately.
	Set(key string, value any) error
}
