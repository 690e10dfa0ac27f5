package toml

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/contacts-cli/internal/core/domain"
)

func sample() domain.Collection {
	return domain.Collection{
		{Name: "Bridgette Perrers", Email: "bp@example.com", Phone: "0447784777", Address: "22 Dorcas Street"},
		{Name: "Ada", Email: "", Phone: "", Address: "it's \"quoted\""},
	}
}

func TestCodec_Metadata(t *testing.T) {
	c := New()
	assert.Equal(t, "toml", c.Format())
	assert.Equal(t, ".toml", c.FileExtension())
	assert.Equal(t, "application/toml", c.MediaType())
}

func TestCodec_RoundTrip(t *testing.T) {
	c := New()

	data, err := c.Encode(sample())
	require.NoError(t, err)
	assert.Contains(t, string(data), "[[contacts]]")

	got, err := c.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, sample(), got)
}

func TestCodec_RoundTripEmpty(t *testing.T) {
	c := New()

	data, err := c.Encode(domain.Collection{})
	require.NoError(t, err)

	got, err := c.Decode(data)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCodec_DecodeEmptyInput(t *testing.T) {
	got, err := New().Decode([]byte("\n"))
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCodec_DecodeHandWritten(t *testing.T) {
	input := `
[[contacts]]
name = "Ada"
email = "ada@example.com"
phone = "1"
address = "London"
`
	got, err := New().Decode([]byte(input))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "ada@example.com", got[0].Email)
}

func TestCodec_DecodeMissingField(t *testing.T) {
	input := `
[[contacts]]
name = "Ada"
email = "ada@example.com"
address = "London"
`
	_, err := New().Decode([]byte(input))
	require.Error(t, err)

	var derr *domain.DecodeError
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, "toml", derr.Format)
	assert.Equal(t, 0, derr.Index)
	assert.Equal(t, "phone", derr.Field)
}

func TestCodec_DecodeUnknownKey(t *testing.T) {
	input := `
[[contacts]]
name = "Ada"
email = ""
phone = ""
address = ""
nickname = "ada"
`
	_, err := New().Decode([]byte(input))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDecode))
}

func TestCodec_DecodeMalformed(t *testing.T) {
	_, err := New().Decode([]byte("[[contacts]\nname = "))
	require.Error(t, err)

	var derr *domain.DecodeError
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, -1, derr.Index)
	assert.Contains(t, derr.Error(), "line ")
}
