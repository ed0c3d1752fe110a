// Package pool provides reusable buffers for building overlay frames.
package pool

import (
	"bytes"
	"sync"
)

// maxRetained is the largest buffer capacity kept for reuse. A frame for a
// very large pane should not pin its memory after the run.
const maxRetained = 1 << 20

var bufferPool = sync.Pool{
	New: func() any {
		return new(bytes.Buffer)
	},
}

var runePool = sync.Pool{
	New: func() any {
		s := make([]rune, 0, 4096)
		return &s
	},
}

// GetBuffer returns an empty buffer.
func GetBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

// PutBuffer returns buf to the pool. buf must not be used afterwards.
func PutBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxRetained {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}

// GetRunes returns an empty rune slice.
func GetRunes() *[]rune {
	return runePool.Get().(*[]rune)
}

// PutRunes returns s to the pool. s must not be used afterwards.
func PutRunes(s *[]rune) {
	if cap(*s)*4 > maxRetained {
		return
	}
	*s = (*s)[:0]
	runePool.Put(s)
}

// AppendRunes decodes str onto s.
func AppendRunes(s *[]rune, str string) {
	for _, r := range str {
		*s = append(*s, r)
	}
}
