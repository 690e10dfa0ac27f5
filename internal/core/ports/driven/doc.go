// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - Encoder / Decoder / Codec: one wire or document format
//   - CodecRegistry: format id to encoder mapping
//   - ContactStore: contact persistence (SQLite, memory)
//   - ConfigStore: application configuration (TOML)
//
// # Optional Interfaces
//
//   - ExportSink: export destination (directory, S3). Export is unavailable without it.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or codec package
package driven
