package palsav

import (
	"bytes"
	"errors"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadHeader(t *testing.T) {
	c, err := New([]byte("header only"), DoubleCompression)
	require.NoError(t, err)
	data := c.Encode()

	t.Run("ByteReader", func(t *testing.T) {
		h, err := ReadHeader(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, c.Header(), h)
	})

	t.Run("UnbufferedReader", func(t *testing.T) {
		h, err := ReadHeader(iotest.OneByteReader(bytes.NewReader(data)))
		require.NoError(t, err)
		assert.Equal(t, c.Header(), h)
	})

	t.Run("SingleBodyNotChecked", func(t *testing.T) {
		hdr := bytes.Clone(testHeaderBytes)
		hdr[11] = '1'
		h, err := ReadHeader(bytes.NewReader(hdr))
		require.NoError(t, err)
		assert.Equal(t, SingleCompression, h.Mode)
		assert.EqualValues(t, 5, h.Stage1Size)
	})

	t.Run("TooShort", func(t *testing.T) {
		for _, n := range []int{0, 3, 4, 9, HeaderSize - 1} {
			_, err := ReadHeader(bytes.NewReader(data[:n]))
			assert.ErrorIs(t, err, ErrTooShort, "length %d", n)
		}
	})

	t.Run("BadMagic", func(t *testing.T) {
		hdr := bytes.Clone(testHeaderBytes)
		hdr[8] = 'X'
		_, err := ReadHeader(bytes.NewReader(hdr))
		assert.ErrorIs(t, err, ErrBadMagic)
	})

	t.Run("UnsupportedMode", func(t *testing.T) {
		hdr := bytes.Clone(testHeaderBytes)
		hdr[11] = '9'
		_, err := ReadHeader(bytes.NewReader(hdr))
		assert.ErrorIs(t, err, ErrUnsupportedMode)
	})

	t.Run("ReadErrorPassesThrough", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := ReadHeader(iotest.ErrReader(boom))
		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, ErrTooShort)
	})

	t.Run("NilReader", func(t *testing.T) {
		_, err := ReadHeader(nil)
		assert.ErrorIs(t, err, ErrNilIO)
	})
}

func TestHeaderValidate(t *testing.T) {
	assert.NoError(t, testHeader.Validate())

	h := testHeader
	h.Mode = 0
	assert.ErrorIs(t, h.Validate(), ErrUnsupportedMode)

	h.Magic = [3]byte{'P', 'K', 0}
	assert.ErrorIs(t, h.Validate(), ErrBadMagic, "magic is checked first")
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode('1')
	require.NoError(t, err)
	assert.Equal(t, SingleCompression, m)
	assert.Equal(t, 1, m.Passes())
	assert.Equal(t, byte('1'), m.Byte())

	m, err = ParseMode('2')
	require.NoError(t, err)
	assert.Equal(t, DoubleCompression, m)
	assert.Equal(t, 2, m.Passes())
	assert.Equal(t, "double", m.String())

	for _, b := range []byte{0, 1, 2, '0', '3', 'Z'} {
		_, err := ParseMode(b)
		assert.ErrorIs(t, err, ErrUnsupportedMode, "byte %q", b)
		assert.Zero(t, Mode(b).Passes())
	}
}
