// Package compression wraps exported payloads in gzip, zstd or lz4 frames
// and detects the wrapping of imported files from their suffix.
package compression

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/custodia-labs/contacts-cli/internal/core/domain"
)

// zstd encoders and decoders are expensive to build; keep them pooled.
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() (*zstd.Encoder, error) {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder), nil
	}
	return zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
}

func getZstdDecoder() (*zstd.Decoder, error) {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder), nil
	}
	return zstd.NewReader(nil)
}

// Compress wraps data using the given compression kind.
// CompressionNone returns data unchanged.
func Compress(kind domain.Compression, data []byte) ([]byte, error) {
	switch kind {
	case domain.CompressionNone, "":
		return data, nil

	case domain.CompressionGzip:
		var buf bytes.Buffer
		w := gzip.NewWriter(&buf)
		if _, err := w.Write(data); err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		if err := w.Close(); err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		return buf.Bytes(), nil

	case domain.CompressionZstd:
		enc, err := getZstdEncoder()
		if err != nil {
			return nil, fmt.Errorf("zstd: %w", err)
		}
		defer zstdEncoderPool.Put(enc)
		return enc.EncodeAll(data, nil), nil

	case domain.CompressionLZ4:
		var buf bytes.Buffer
		w := lz4.NewWriter(&buf)
		if _, err := w.Write(data); err != nil {
			return nil, fmt.Errorf("lz4: %w", err)
		}
		if err := w.Close(); err != nil {
			return nil, fmt.Errorf("lz4: %w", err)
		}
		return buf.Bytes(), nil

	default:
		return nil, fmt.Errorf("%w: compression %q", domain.ErrInvalidInput, kind)
	}
}

// Decompress reverses Compress.
func Decompress(kind domain.Compression, data []byte) ([]byte, error) {
	switch kind {
	case domain.CompressionNone, "":
		return data, nil

	case domain.CompressionGzip:
		r, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		defer r.Close()
		return readAll("gzip", r)

	case domain.CompressionZstd:
		dec, err := getZstdDecoder()
		if err != nil {
			return nil, fmt.Errorf("zstd: %w", err)
		}
		defer zstdDecoderPool.Put(dec)

		out, err := dec.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("zstd: %w", err)
		}
		return out, nil

	case domain.CompressionLZ4:
		return readAll("lz4", lz4.NewReader(bytes.NewReader(data)))

	default:
		return nil, fmt.Errorf("%w: compression %q", domain.ErrInvalidInput, kind)
	}
}

func readAll(name string, r io.Reader) ([]byte, error) {
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return out, nil
}

// FromPath detects the compression of a file from its final suffix and
// returns the kind together with the path stripped of that suffix.
// Paths without a known suffix report CompressionNone.
func FromPath(path string) (domain.Compression, string) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return domain.CompressionNone, path
	}
	for _, kind := range domain.AllCompressions() {
		if kind.Extension() == ext {
			return kind, path[:len(path)-len(ext)]
		}
	}
	return domain.CompressionNone, path
}
