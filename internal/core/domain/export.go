package domain

// Export describes one encoded collection written to an export sink.
type Export struct {
	// Format is the registered format id used to encode.
	Format string

	// Key is the sink key (file path or object key) that was written.
	Key string

	// Contacts is the number of contacts in the payload.
	Contacts int

	// Bytes is the size of the written payload after compression.
	Bytes int
}

// ImportResult summarises an import.
type ImportResult struct {
	// Added is the number of new contacts stored.
	Added int

	// Skipped is the number of contacts already present.
	Skipped int
}

// FormatInfo describes a registered format.
type FormatInfo struct {
	// ID is the registry id, e.g. "json".
	ID string

	// MediaType is the MIME type of encoded payloads.
	MediaType string

	// Extension is the conventional file suffix, including the dot.
	Extension string

	// Decodable is true if the format can be read back.
	Decodable bool
}
