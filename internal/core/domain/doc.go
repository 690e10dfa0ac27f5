// Package domain defines the core business entities for the contacts CLI.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Contact: one address book entry over a fixed field set
//   - Collection: the ordered set of contacts
//   - Settings: user configuration
//   - Export: the result of writing one encoded collection
//
// It also owns the error taxonomy shared by the query engine, the codec
// registry and every adapter.
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
