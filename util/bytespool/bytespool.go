package bytespool

import "sync"

type Bytes struct {
	p *sync.Pool
	b []byte
}

var _bytesPool = &sync.Pool{New: func() any {
	return &Bytes{}
}}

func Get() *Bytes {
	b, _ := _bytesPool.Get().(*Bytes)
	b.p = _bytesPool
	return b
}

func GetN(n int) *Bytes {
	b := Get()
	b.Grow(n)
	return b
}

func (b *Bytes) Free() {
	b.p.Put(b)
}

func (b *Bytes) Len() int {
	return len(b.b)
}

func (b *Bytes) Cap() int {
	return cap(b.b)
}

// Grow resizes to n bytes, reallocating when the capacity is too small.
// Content is scratch, it is not preserved across a reallocation.
func (b *Bytes) Grow(n int) {
	if n <= 0 {
		return
	}
	if b.Cap() >= n {
		b.b = b.b[:n]
		return
	}

	b.b = make([]byte, n)
}

func (b *Bytes) B() []byte {
	return b.b
}
