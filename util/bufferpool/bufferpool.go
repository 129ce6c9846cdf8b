package bufferpool

import (
	"bytes"
	"strings"
	"sync"
)

var _bufferPool = &sync.Pool{
	New: func() any {
		return &Buffer{
			Buffer: &bytes.Buffer{},
		}
	}}

type Buffer struct {
	*bytes.Buffer
	p *sync.Pool
}

func GetBuffer() *Buffer {
	b, _ := _bufferPool.Get().(*Buffer)
	b.p = _bufferPool
	b.Reset()
	return b
}

func (b *Buffer) Free() {
	b.p.Put(b)
}

// Lines consumes the buffer and returns its content split on '\n'.
// Interior empty lines are kept, a trailing line break does not produce
// an extra empty line.
func (b *Buffer) Lines() []string {
	var lines []string
	for {
		line, err := b.ReadString('\n')
		line = strings.TrimSuffix(line, "\n")
		if line != "" || err == nil {
			lines = append(lines, line)
		}
		if err != nil {
			return lines
		}
	}
}
