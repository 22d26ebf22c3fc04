package decode_test

import (
	"bytes"
	"compress/gzip"
	"io"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/stretchr/testify/assert"

	"github.com/tvmeta/go-tvmaze/pkg/client/decode"
)

func TestDecodeGzip(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write([]byte("test"))
	assert.NoError(t, err)
	assert.NoError(t, w.Close())

	body, err := decode.Decode(io.NopCloser(&buf), "gzip")
	assert.NoError(t, err)
	out, err := io.ReadAll(body)
	assert.NoError(t, err)
	assert.Equal(t, "test", string(out))
}

func TestDecodeBrotli(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	w := brotli.NewWriter(&buf)
	_, err := w.Write([]byte("test"))
	assert.NoError(t, err)
	assert.NoError(t, w.Close())

	body, err := decode.Decode(io.NopCloser(&buf), "br")
	assert.NoError(t, err)
	out, err := io.ReadAll(body)
	assert.NoError(t, err)
	assert.Equal(t, "test", string(out))
}

func TestDecodeIdentity(t *testing.T) {
	t.Parallel()
	body, err := decode.Decode(io.NopCloser(bytes.NewBufferString("test")), "")
	assert.NoError(t, err)
	out, err := io.ReadAll(body)
	assert.NoError(t, err)
	assert.Equal(t, "test", string(out))
}

func TestDecodeInvalidGzip(t *testing.T) {
	t.Parallel()
	_, err := decode.Decode(io.NopCloser(bytes.NewBufferString("not gzip")), "gzip")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cannot decode gzip")
}
