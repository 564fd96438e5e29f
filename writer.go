package palsav

import (
	"bufio"
	"bytes"
	"io"
)

// Writer streams an encoded value to an io.Writer and latches the first error;
// later writes are skipped. It adds a bufio.Writer only when the destination
// is neither in memory nor already buffered, and only that buffer is flushed
// by Result. A caller-supplied bufio.Writer is written through and left for
// the caller to flush.
type Writer struct {
	w   io.Writer
	buf *bufio.Writer // owned buffer, nil when writing straight through
	n   int64
	err error
}

// NewWriter wraps w for a single encode.
func NewWriter(w io.Writer) (*Writer, error) {
	if w == nil {
		return nil, ErrNilIO
	}
	switch w.(type) {
	case *Writer, *bufio.Writer, *BytesWriter, *bytes.Buffer:
		return &Writer{w: w}, nil
	}
	buf := bufio.NewWriterSize(w, BUFFER_SIZE)
	return &Writer{w: buf, buf: buf}, nil
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.w.Write(p)
	w.n += int64(n)
	w.setError(err)
	return n, w.err
}

// WriteFrom writes the output of an io.WriterTo, such as a Fixed codec.
func (w *Writer) WriteFrom(wt io.WriterTo) {
	if w.err != nil {
		return
	}
	n, err := wt.WriteTo(w.w)
	w.n += n
	w.setError(err)
}

// WriteBytes writes p, skipping empty slices.
func (w *Writer) WriteBytes(p []byte) {
	if len(p) == 0 || w.err != nil {
		return
	}
	_, _ = w.Write(p)
}

// Result flushes the owned buffer and returns the byte count and first error.
func (w *Writer) Result() (int64, error) {
	if w.buf != nil && w.err == nil {
		w.setError(w.buf.Flush())
	}
	return w.n, w.err
}

func (w *Writer) setError(err error) {
	if w.err == nil && err != nil {
		w.err = err
	}
}
