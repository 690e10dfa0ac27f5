// Package sink groups the export destinations implementing driven.ExportSink.
//
// Adapters:
//   - file: writes payloads under a local directory
//   - s3: uploads payloads to an S3 bucket under a key prefix
package sink
