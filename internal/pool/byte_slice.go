// Package pool provides recycled allocations for the scanner's
// region buffers.
package pool

import "sync"

const defaultByteSliceCap = 64

type ByteSlicePool struct {
	pool sync.Pool
}

var byteSlicePool = &ByteSlicePool{
	pool: sync.Pool{
		New: func() interface{} {
			return make([]byte, 0, defaultByteSliceCap)
		},
	},
}

// ByteSlice returns the shared []byte pool. Slices handed out have zero
// length and at least the default capacity.
func ByteSlice() *ByteSlicePool {
	return byteSlicePool
}

func (p *ByteSlicePool) Get() []byte {
	return p.pool.Get().([]byte)
}

func (p *ByteSlicePool) Put(b []byte) {
	if cap(b) < defaultByteSliceCap {
		return
	}
	p.pool.Put(b[:0])
}
