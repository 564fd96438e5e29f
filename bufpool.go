package palsav

import (
	"bytes"
	"sync"
)

// maxPooledBuffer caps what goes back to the pool; a buffer that grew to hold
// a whole save file is left for the GC instead of pinning that memory.
const maxPooledBuffer = 64 << 10

// bytesBufPool reuses scratch buffers for whole-stream reads and zlib inflation.
// Results are always copied out before a buffer goes back to the pool.
var bytesBufPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, BUFFER_SIZE))
	},
}

func getBuffer() *bytes.Buffer {
	buf := bytesBufPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBuffer {
		return
	}
	bytesBufPool.Put(buf)
}
