package palsav

import "errors"

var (
	// ErrTooShort indicates the input is shorter than the fixed 12-byte header.
	ErrTooShort = errors.New("palsav: data too short for container header")

	// ErrBadMagic indicates the header tag is not "PlZ"; the input is not a compressed save.
	ErrBadMagic = errors.New("palsav: invalid magic bytes, not a compressed save")

	// ErrUnsupportedMode indicates a compression mode byte other than '1' or '2'.
	ErrUnsupportedMode = errors.New("palsav: unsupported compression mode")

	// ErrLengthMismatch indicates a size declared in the header disagrees with
	// the length actually observed at one of the validation checkpoints.
	ErrLengthMismatch = errors.New("palsav: length mismatch")

	// ErrCompression indicates the zlib stream is malformed or failed mid-stream.
	ErrCompression = errors.New("palsav: compression stream error")

	// ErrNilIO indicates that ReadHeader or NewWriter was called with a nil interface.
	ErrNilIO = errors.New("palsav: nil io.Reader/io.Writer")

	// ErrWriteToNil indicates a WriteTo operation was attempted on a nil io.Writer.
	ErrWriteToNil = errors.New("palsav: WriteTo called with a nil io.Writer")

	// ErrTrailingData is returned when a fixed-size value is decoded from a
	// buffer that holds more bytes than the value occupies.
	ErrTrailingData = errors.New("palsav: trailing data found after decoding")

	// ErrTruncatedData indicates that a read operation could not complete because the
	// underlying data source ended before all expected bytes were read.
	ErrTruncatedData = errors.New("palsav: truncated data")
)
