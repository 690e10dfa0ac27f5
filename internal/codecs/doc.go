// Package codecs provides the format registry and the built-in formats.
//
// Each format lives in its own sub-package and implements driven.Encoder;
// formats that can read their own output also implement driven.Decoder.
// RegisterDefaults wires the built-ins into a Registry at startup. A new
// format is added with one more Register call; nothing that looks formats
// up changes.
package codecs
