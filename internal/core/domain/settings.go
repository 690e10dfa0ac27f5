package domain

const unknownDescription = "Unknown"

// StorageBackend selects where contacts are persisted between runs.
type StorageBackend string

// Available storage backends.
const (
	// StorageSQLite keeps contacts in a SQLite database under the data directory.
	StorageSQLite StorageBackend = "sqlite"

	// StorageMemory keeps contacts in process memory only.
	StorageMemory StorageBackend = "memory"
)

// IsValid returns true if the backend is recognised.
func (b StorageBackend) IsValid() bool {
	switch b {
	case StorageSQLite, StorageMemory:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (b StorageBackend) String() string {
	return string(b)
}

// Description returns a human-readable description of the backend.
func (b StorageBackend) Description() string {
	switch b {
	case StorageSQLite:
		return "SQLite (persistent)"
	case StorageMemory:
		return "Memory (discarded on exit)"
	default:
		return unknownDescription
	}
}

// Compression selects how exported payloads are compressed.
type Compression string

// Available compression kinds.
const (
	CompressionNone Compression = "none"
	CompressionGzip Compression = "gzip"
	CompressionZstd Compression = "zstd"
	CompressionLZ4  Compression = "lz4"
)

// IsValid returns true if the compression kind is recognised.
func (c Compression) IsValid() bool {
	switch c {
	case CompressionNone, CompressionGzip, CompressionZstd, CompressionLZ4:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (c Compression) String() string {
	return string(c)
}

// Extension returns the file suffix appended to compressed exports.
func (c Compression) Extension() string {
	switch c {
	case CompressionGzip:
		return ".gz"
	case CompressionZstd:
		return ".zst"
	case CompressionLZ4:
		return ".lz4"
	default:
		return ""
	}
}

// StorageSettings configures the contact store.
type StorageSettings struct {
	// Backend selects the store implementation.
	Backend StorageBackend

	// Dir is the data directory. Empty means ~/.contacts/data.
	Dir string
}

// ExportSettings configures the export command.
type ExportSettings struct {
	// Formats are the format ids written by a plain `contacts export`.
	Formats []string

	// Dir is the destination directory. Empty means ~/.contacts/exports.
	Dir string

	// Compression is applied to every exported payload.
	Compression Compression
}

// LogSettings configures where diagnostics go.
type LogSettings struct {
	// File receives log lines, rotated by size. Empty means stderr.
	File string
}

// OutputSettings configures how list and search print results.
type OutputSettings struct {
	// Format is the format id used for terminal output.
	Format string
}

// Settings holds all application settings.
type Settings struct {
	Storage StorageSettings
	Export  ExportSettings
	Output  OutputSettings
	Log     LogSettings
}

// DefaultSettings returns settings with sensible defaults.
// Exports default to the plain-text and HTML listings.
func DefaultSettings() Settings {
	return Settings{
		Storage: StorageSettings{
			Backend: StorageSQLite,
		},
		Export: ExportSettings{
			Formats:     []string{"text", "html"},
			Compression: CompressionNone,
		},
		Output: OutputSettings{
			Format: "text",
		},
	}
}

// AllStorageBackends returns all available storage backends.
func AllStorageBackends() []StorageBackend {
	return []StorageBackend{StorageSQLite, StorageMemory}
}

// AllCompressions returns all available compression kinds.
func AllCompressions() []Compression {
	return []Compression{CompressionNone, CompressionGzip, CompressionZstd, CompressionLZ4}
}
