package yaml

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/contacts-cli/internal/codecs/json"
	"github.com/custodia-labs/contacts-cli/internal/core/domain"
)

func sample() domain.Collection {
	return domain.Collection{
		{Name: "Bridgette Perrers", Email: "bp@example.com", Phone: "0447784777", Address: "22 Dorcas Street, Southbank, 3006"},
		{Name: "Ada", Email: "", Phone: "", Address: ""},
		{Name: "yes", Email: "null", Phone: "007", Address: "key: value # not a comment"},
	}
}

func TestCodec_Metadata(t *testing.T) {
	c := New()
	assert.Equal(t, "yaml", c.Format())
	assert.Equal(t, "application/yaml", c.MediaType())
	assert.Equal(t, ".yaml", c.FileExtension())
}

func TestCodec_RoundTrip(t *testing.T) {
	c := New()

	for _, coll := range []domain.Collection{sample(), {}} {
		data, err := c.Encode(coll)
		require.NoError(t, err)

		got, err := c.Decode(data)
		require.NoError(t, err)
		assert.Equal(t, coll, got)
	}
}

func TestCodec_SharesLogicalModelWithJSON(t *testing.T) {
	coll := sample()

	yamlData, err := New().Encode(coll)
	require.NoError(t, err)
	fromYAML, err := New().Decode(yamlData)
	require.NoError(t, err)

	jsonData, err := json.New().Encode(fromYAML)
	require.NoError(t, err)
	fromJSON, err := json.New().Decode(jsonData)
	require.NoError(t, err)

	assert.Equal(t, coll, fromJSON)
}

func TestCodec_EncodeFieldOrder(t *testing.T) {
	data, err := New().Encode(domain.Collection{{Name: "Ada", Email: "e", Phone: "p", Address: "a"}})
	require.NoError(t, err)
	assert.Equal(t, "- name: Ada\n  email: e\n  phone: p\n  address: a\n", string(data))
}

func TestCodec_DecodeEmptyInput(t *testing.T) {
	got, err := New().Decode(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCodec_DecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		field string
	}{
		{"malformed", "- name: [unclosed\n", ""},
		{"not a sequence", "name: Ada\n", ""},
		{"unknown key", "- name: a\n  email: ''\n  phone: ''\n  address: ''\n  nickname: x\n", ""},
		{"missing field", "- name: a\n  email: ''\n  phone: ''\n", "address"},
		{"null field", "- name: a\n  email: ~\n  phone: ''\n  address: ''\n", "email"},
		{"two documents", "- name: a\n  email: ''\n  phone: ''\n  address: ''\n---\n- name: b\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New().Decode([]byte(tt.input))
			require.Error(t, err)
			assert.Nil(t, got)
			assert.True(t, errors.Is(err, domain.ErrDecode))

			var derr *domain.DecodeError
			require.True(t, errors.As(err, &derr))
			assert.Equal(t, "yaml", derr.Format)
			assert.Equal(t, tt.field, derr.Field)
		})
	}
}
