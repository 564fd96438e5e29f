package palsav

import "fmt"

// Mode is the number of zlib passes applied to the payload.
// Its value is the ASCII byte stored at header offset 11.
type Mode uint8

const (
	SingleCompression Mode = '1'
	DoubleCompression Mode = '2'
)

// ParseMode maps a header byte to a Mode.
func ParseMode(b byte) (Mode, error) {
	switch m := Mode(b); m {
	case SingleCompression, DoubleCompression:
		return m, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedMode, b)
}

// Byte returns the on-disk representation of m.
func (m Mode) Byte() byte { return byte(m) }

// Passes returns how many times the payload is compressed, or 0 for an invalid mode.
func (m Mode) Passes() int {
	switch m {
	case SingleCompression:
		return 1
	case DoubleCompression:
		return 2
	}
	return 0
}

func (m Mode) String() string {
	switch m {
	case SingleCompression:
		return "single"
	case DoubleCompression:
		return "double"
	}
	return fmt.Sprintf("Mode(%q)", byte(m))
}
