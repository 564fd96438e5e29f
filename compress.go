package palsav

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

// level is fixed so that compressing the same payload always yields the same body.
const level = zlib.DefaultCompression

// deflate applies one zlib compression pass and returns a new buffer.
func deflate(p []byte) ([]byte, error) {
	var out bytes.Buffer
	zw, err := zlib.NewWriterLevel(&out, level)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompression, err)
	}
	if _, err := zw.Write(p); err != nil {
		_ = zw.Close()
		return nil, fmt.Errorf("%w: %w", ErrCompression, err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompression, err)
	}
	return out.Bytes(), nil
}

// inflate applies one zlib decompression pass. limit is the length the header
// declares for the result; output beyond it is reported as ErrLengthMismatch
// without being read. The overrun is checked first, so a stream that both
// overruns the limit and carries a corrupt adler-32 trailer fails with
// ErrLengthMismatch, not ErrCompression.
func inflate(p []byte, limit uint32) ([]byte, error) {
	zr, err := zlib.NewReader(NewBytesReader(p))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompression, err)
	}
	defer zr.Close()

	buf := getBuffer()
	defer putBuffer(buf)

	_, err = buf.ReadFrom(io.LimitReader(zr, int64(limit)+1))
	if buf.Len() > int(limit) {
		return nil, fmt.Errorf("%w: stream inflates past the declared %d bytes", ErrLengthMismatch, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompression, err)
	}
	return bytes.Clone(buf.Bytes()), nil
}
