package palsav

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Order is the byte order of every integer in the container header.
var Order binary.ByteOrder = binary.LittleEndian

const BUFFER_SIZE = 4096

// checkSize compares a size declared in the header against an observed length.
// stage names the checkpoint so the error says which one disagreed.
func checkSize[T constraints.Integer](stage string, declared T, observed int) error {
	if observed < 0 || uint64(observed) != uint64(declared) {
		return fmt.Errorf("%w: %s declares %d bytes, found %d", ErrLengthMismatch, stage, declared, observed)
	}
	return nil
}

// fitsUint32 reports whether n can be recorded in a 32-bit header field.
func fitsUint32[T constraints.Integer](n T) bool {
	return n >= 0 && uint64(n) <= 1<<32-1
}
