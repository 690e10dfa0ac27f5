package codecs

import (
	"github.com/custodia-labs/contacts-cli/internal/codecs/bson"
	"github.com/custodia-labs/contacts-cli/internal/codecs/cbor"
	"github.com/custodia-labs/contacts-cli/internal/codecs/html"
	"github.com/custodia-labs/contacts-cli/internal/codecs/json"
	"github.com/custodia-labs/contacts-cli/internal/codecs/parquet"
	"github.com/custodia-labs/contacts-cli/internal/codecs/protobuf"
	"github.com/custodia-labs/contacts-cli/internal/codecs/text"
	"github.com/custodia-labs/contacts-cli/internal/codecs/toml"
	"github.com/custodia-labs/contacts-cli/internal/codecs/yaml"
)

// RegisterDefaults registers all built-in formats with the registry.
// Call this during application initialisation, before the registry is
// frozen.
func RegisterDefaults(r *Registry) {
	r.MustRegister(json.Format, json.New())
	r.MustRegister(yaml.Format, yaml.New())
	r.MustRegister(text.Format, text.New())
	r.MustRegister(html.Format, html.New())
	r.MustRegister(toml.Format, toml.New())
	r.MustRegister(bson.Format, bson.New())
	r.MustRegister(parquet.Format, parquet.New(parquet.WithCompression("zstd")))
	r.MustRegister(cbor.Format, cbor.New())
	r.MustRegister(protobuf.Format, protobuf.New())
}

// NewDefaultRegistry returns a registry holding the built-in formats.
// The registry is not frozen.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	RegisterDefaults(r)
	return r
}
