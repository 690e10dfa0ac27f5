package driven

import "context"

// ExportRequest is one payload to write to an export destination.
type ExportRequest struct {
	// Key is the destination-relative name, e.g. "address_book.html".
	Key string

	// Data is the (possibly compressed) payload.
	Data []byte

	// ContentType is the MIME type of Data before compression.
	ContentType string
}

// ExportSink writes exported payloads to a destination (directory, bucket).
type ExportSink interface {
	// Write stores the payload and returns the full location written.
	Write(ctx context.Context, req ExportRequest) (string, error)
}
