package palsav

import (
	"errors"
	"fmt"
	"io"
)

// HeaderSize is the length of the fixed container header.
const HeaderSize = 12

// Magic is the tag every container carries at offset 8.
var Magic = [3]byte{'P', 'l', 'Z'}

// Header is the fixed 12-byte prefix of a container, little-endian on disk:
//
//	offset 0  uint32  UncompressedSize
//	offset 4  uint32  Stage1Size
//	offset 8  [3]byte Magic
//	offset 11 byte    Mode
//
// Stage1Size is the body length for SingleCompression and the length after one
// inflate pass for DoubleCompression.
type Header struct {
	UncompressedSize uint32
	Stage1Size       uint32
	Magic            [3]byte
	Mode             Mode
}

type headerCodec = Fixed[Header]

// Validate checks the magic tag, then the mode.
func (h Header) Validate() error {
	if h.Magic != Magic {
		return fmt.Errorf("%w: %q", ErrBadMagic, h.Magic[:])
	}
	if _, err := ParseMode(h.Mode.Byte()); err != nil {
		return err
	}
	return nil
}

func decodeHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: got %d bytes, need %d", ErrTooShort, len(data), HeaderSize)
	}
	var hc headerCodec
	if err := hc.UnmarshalBinary(data[:HeaderSize]); err != nil {
		return Header{}, err
	}
	if err := hc.Payload.Validate(); err != nil {
		return Header{}, err
	}
	return hc.Payload, nil
}

// ReadHeader reads and validates a header from the front of r without touching
// the body. Exactly HeaderSize bytes are consumed.
func ReadHeader(r io.Reader) (Header, error) {
	if r == nil {
		return Header{}, ErrNilIO
	}
	var hc headerCodec
	if _, err := hc.ReadFrom(r); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return Header{}, fmt.Errorf("%w: stream ended before %d bytes", ErrTooShort, HeaderSize)
		}
		return Header{}, err
	}
	if err := hc.Payload.Validate(); err != nil {
		return Header{}, err
	}
	return hc.Payload, nil
}
