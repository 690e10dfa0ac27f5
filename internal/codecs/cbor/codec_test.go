package cbor

import (
	"errors"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/contacts-cli/internal/core/domain"
)

func sample() domain.Collection {
	return domain.Collection{
		{Name: "Bridgette Perrers", Email: "bp@example.com", Phone: "0447784777", Address: "22 Dorcas Street"},
		{Name: "Ada"},
	}
}

func TestCodec_Metadata(t *testing.T) {
	c := New()
	assert.Equal(t, "cbor", c.Format())
	assert.Equal(t, ".cbor", c.FileExtension())
	assert.Equal(t, "application/cbor", c.MediaType())
}

func TestCodec_RoundTrip(t *testing.T) {
	c := New()

	data, err := c.Encode(sample())
	require.NoError(t, err)

	got, err := c.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, sample(), got)
}

func TestCodec_Deterministic(t *testing.T) {
	c := New()

	a, err := c.Encode(sample())
	require.NoError(t, err)
	b, err := c.Encode(sample())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCodec_RoundTripEmpty(t *testing.T) {
	c := New()

	data, err := c.Encode(domain.Collection{})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x80}, data)

	got, err := c.Decode(data)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCodec_DecodeMissingField(t *testing.T) {
	data, err := cbor.Marshal([]map[string]string{
		{"name": "Ada", "email": "", "phone": ""},
	})
	require.NoError(t, err)

	_, err = New().Decode(data)

	var derr *domain.DecodeError
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, "cbor", derr.Format)
	assert.Equal(t, 0, derr.Index)
	assert.Equal(t, "address", derr.Field)
}

func TestCodec_DecodeNullIsMissing(t *testing.T) {
	data, err := cbor.Marshal([]map[string]any{
		{"name": "Ada", "email": nil, "phone": "", "address": ""},
	})
	require.NoError(t, err)

	_, err = New().Decode(data)

	var derr *domain.DecodeError
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, "email", derr.Field)
}

func TestCodec_DecodeRejects(t *testing.T) {
	unknown, err := cbor.Marshal([]map[string]string{
		{"name": "Ada", "email": "", "phone": "", "address": "", "nickname": "ada"},
	})
	require.NoError(t, err)
	wrongType, err := cbor.Marshal([]map[string]any{
		{"name": 7, "email": "", "phone": "", "address": ""},
	})
	require.NoError(t, err)
	notArray, err := cbor.Marshal(map[string]string{"name": "Ada"})
	require.NoError(t, err)
	empty, err := New().Encode(domain.Collection{})
	require.NoError(t, err)

	tests := []struct {
		name string
		data []byte
	}{
		{"unknown key", unknown},
		{"wrong type", wrongType},
		{"not an array", notArray},
		{"truncated", []byte{0x81, 0xa4}},
		{"trailing data", append(empty, 0x80)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New().Decode(tt.data)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, domain.ErrDecode)
		})
	}
}
