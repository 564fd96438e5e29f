package palsav

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeflateIsDeterministic(t *testing.T) {
	payload := bytes.Repeat([]byte("deterministic "), 200)
	a, err := deflate(payload)
	require.NoError(t, err)
	b, err := deflate(payload)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Less(t, len(a), len(payload))
}

func TestInflate(t *testing.T) {
	payload := bytes.Repeat([]byte{0x42}, 300)
	z, err := deflate(payload)
	require.NoError(t, err)

	t.Run("ExactLimit", func(t *testing.T) {
		got, err := inflate(z, 300)
		require.NoError(t, err)
		assert.Equal(t, payload, got)
	})

	t.Run("ShortOutputIsReturned", func(t *testing.T) {
		// The caller compares the length; inflate only enforces the upper bound.
		got, err := inflate(z, 301)
		require.NoError(t, err)
		assert.Len(t, got, 300)
	})

	t.Run("PastLimit", func(t *testing.T) {
		_, err := inflate(z, 299)
		assert.ErrorIs(t, err, ErrLengthMismatch)
	})

	t.Run("PastLimitWinsOverBadTrailer", func(t *testing.T) {
		bad := bytes.Clone(z)
		bad[len(bad)-1] ^= 0xFF

		for _, limit := range []uint32{10, 299} {
			_, err := inflate(bad, limit)
			assert.ErrorIs(t, err, ErrLengthMismatch, "limit %d", limit)
			assert.NotErrorIs(t, err, ErrCompression, "limit %d", limit)
		}

		_, err := inflate(bad, 300)
		assert.ErrorIs(t, err, ErrCompression)
	})

	t.Run("Malformed", func(t *testing.T) {
		_, err := inflate([]byte("not zlib"), 100)
		assert.ErrorIs(t, err, ErrCompression)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := inflate(nil, 0)
		assert.ErrorIs(t, err, ErrCompression)
	})
}

func TestCheckSize(t *testing.T) {
	assert.NoError(t, checkSize("body", uint32(7), 7))
	err := checkSize("body", uint32(7), 8)
	assert.ErrorIs(t, err, ErrLengthMismatch)
	assert.Contains(t, err.Error(), "body declares 7 bytes, found 8")
	assert.ErrorIs(t, checkSize("body", uint32(0), -1), ErrLengthMismatch)

	assert.True(t, fitsUint32(int64(1)<<32-1))
	assert.False(t, fitsUint32(int64(1)<<32))
	assert.False(t, fitsUint32(-1))
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "Level.raw")
	packed := filepath.Join(dir, "Level.sav")
	payload := bytes.Repeat([]byte("level data "), 64)
	require.NoError(t, os.WriteFile(plain, payload, 0o600))

	c, err := FromPlainFile(plain, DoubleCompression)
	require.NoError(t, err)
	require.NoError(t, c.WriteFile(packed))

	onDisk, err := os.ReadFile(packed)
	require.NoError(t, err)
	assert.Equal(t, c.Encode(), onDisk)

	back, err := ReadFile(packed)
	require.NoError(t, err)
	got, err := back.Payload()
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	t.Run("MissingFile", func(t *testing.T) {
		_, err := ReadFile(filepath.Join(dir, "missing.sav"))
		assert.True(t, errors.Is(err, fs.ErrNotExist))

		_, err = FromPlainFile(filepath.Join(dir, "missing.raw"), SingleCompression)
		assert.True(t, errors.Is(err, fs.ErrNotExist))
	})

	t.Run("WriteIntoMissingDir", func(t *testing.T) {
		err := c.WriteFile(filepath.Join(dir, "no", "such", "dir.sav"))
		assert.True(t, errors.Is(err, fs.ErrNotExist))
	})
}
