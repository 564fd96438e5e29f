package palsav

import (
	"bytes"
	"fmt"
	"io"
)

// Container is a parsed save file: a Header plus the compressed body.
//
// The size fields and the body are only ever replaced together, through
// UnmarshalBinary or Update, so they cannot drift apart.
type Container struct {
	header Header
	body   []byte
}

var _ Codec = (*Container)(nil)

// New compresses payload with the given mode and returns the resulting container.
func New(payload []byte, mode Mode) (*Container, error) {
	if _, err := ParseMode(mode.Byte()); err != nil {
		return nil, err
	}
	c := &Container{header: Header{Magic: Magic, Mode: mode}}
	if err := c.Update(payload); err != nil {
		return nil, err
	}
	return c, nil
}

// Decode parses the container structure in data. It validates the header and,
// for SingleCompression, the body length, but does not decompress anything.
// The container keeps its own copy of the body.
func Decode(data []byte) (*Container, error) {
	c := &Container{}
	if err := c.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Container) Header() Header           { return c.header }
func (c *Container) Mode() Mode               { return c.header.Mode }
func (c *Container) UncompressedSize() uint32 { return c.header.UncompressedSize }
func (c *Container) Stage1Size() uint32       { return c.header.Stage1Size }

// Body returns a copy of the compressed body as stored on disk.
func (c *Container) Body() []byte { return bytes.Clone(c.body) }

// Payload decompresses the body and checks every size the header declares.
// The container is not modified.
func (c *Container) Payload() ([]byte, error) {
	h := c.header
	switch h.Mode {
	case SingleCompression:
		data, err := inflate(c.body, h.UncompressedSize)
		if err != nil {
			return nil, err
		}
		if err := checkSize("uncompressed size", h.UncompressedSize, len(data)); err != nil {
			return nil, err
		}
		return data, nil

	case DoubleCompression:
		stage1, err := inflate(c.body, h.Stage1Size)
		if err != nil {
			return nil, err
		}
		if err := checkSize("stage1 size", h.Stage1Size, len(stage1)); err != nil {
			return nil, err
		}
		data, err := inflate(stage1, h.UncompressedSize)
		if err != nil {
			return nil, err
		}
		if err := checkSize("uncompressed size", h.UncompressedSize, len(data)); err != nil {
			return nil, err
		}
		return data, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedMode, h.Mode.Byte())
}

// Update replaces the payload, recomputing both size fields and the body.
// Stage1Size always records the length of the first compression pass.
// Magic and mode are left untouched; on error the container is unchanged.
func (c *Container) Update(payload []byte) error {
	passes := c.header.Mode.Passes()
	if passes == 0 {
		return fmt.Errorf("%w: %q", ErrUnsupportedMode, c.header.Mode.Byte())
	}
	if !fitsUint32(len(payload)) {
		return fmt.Errorf("%w: payload of %d bytes does not fit the header", ErrLengthMismatch, len(payload))
	}

	stage1, err := deflate(payload)
	if err != nil {
		return err
	}
	if !fitsUint32(len(stage1)) {
		return fmt.Errorf("%w: first pass of %d bytes does not fit the header", ErrLengthMismatch, len(stage1))
	}
	body := stage1
	if passes == 2 {
		if body, err = deflate(stage1); err != nil {
			return err
		}
	}

	c.header.UncompressedSize = uint32(len(payload))
	c.header.Stage1Size = uint32(len(stage1))
	c.body = body
	return nil
}

// Encode returns the on-disk form: header followed by body.
func (c *Container) Encode() []byte {
	out := make([]byte, HeaderSize, c.Size())
	hc := headerCodec{Payload: c.header}
	_, _ = hc.MarshalTo(out) // out is exactly HeaderSize long
	return append(out, c.body...)
}

// Size returns the encoded length, HeaderSize plus the body length.
func (c *Container) Size() int { return HeaderSize + len(c.body) }

// MarshalBinary implements encoding.BinaryMarshaler.
func (c *Container) MarshalBinary() ([]byte, error) {
	return c.Encode(), nil
}

// MarshalTo encodes the container into p without allocating.
func (c *Container) MarshalTo(p []byte) (int, error) {
	return MarshalToGeneric(c, p)
}

// WriteTo streams the header and body to w.
func (c *Container) WriteTo(w io.Writer) (int64, error) {
	if w == nil {
		return 0, ErrWriteToNil
	}
	cw, err := NewWriter(w)
	if err != nil {
		return 0, err
	}
	hc := headerCodec{Payload: c.header}
	cw.WriteFrom(&hc)
	cw.WriteBytes(c.body)
	return cw.Result()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler with the checks of Decode.
// On error the container is unchanged.
func (c *Container) UnmarshalBinary(data []byte) error {
	h, err := decodeHeader(data)
	if err != nil {
		return err
	}
	body := data[HeaderSize:]
	// For DoubleCompression nothing in the header records the body length;
	// it is checked when the body is inflated.
	if h.Mode == SingleCompression {
		if err := checkSize("stage1 size", h.Stage1Size, len(body)); err != nil {
			return err
		}
	}
	c.header = h
	c.body = bytes.Clone(body)
	return nil
}

// ReadFrom reads r to EOF and decodes the result. It is not a streaming decoder.
func (c *Container) ReadFrom(r io.Reader) (int64, error) {
	return ReadFromGeneric(c, r)
}
