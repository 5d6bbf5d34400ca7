// File: pool/bytepool.go
// Author: momentics <momentics@gmail.com>

package pool

import (
	"sync"

	"github.com/momentics/hioload-ringbuf/api"
)

// Ensure compile-time interface compliance.
var _ api.StorageAllocator = (*BytePool)(nil)

// BytePool recycles fixed-size storage regions for short-lived rings.
// Requests larger than the pooled size bypass the pool.
type BytePool struct {
	pool sync.Pool
	size int
}

// NewBytePool creates a pool of regions of exactly size bytes.
func NewBytePool(size int) *BytePool {
	bp := &BytePool{size: size}
	bp.pool.New = func() any {
		return make([]byte, size)
	}
	return bp
}

// Alloc returns a pooled region when size fits, a fresh slice otherwise.
// Recycled regions keep their previous contents; rings never require
// zeroed storage.
func (b *BytePool) Alloc(size int) ([]byte, error) {
	if size <= 0 {
		return nil, api.ErrInvalidCapacity
	}
	if size > b.size {
		return make([]byte, size), nil
	}
	return b.pool.Get().([]byte)[:b.size], nil
}

// Free returns a pool-sized region for reuse; others go to the GC.
func (b *BytePool) Free(buf []byte) {
	if cap(buf) == b.size {
		b.pool.Put(buf[:b.size])
	}
}

// RegionSize returns the pooled region size.
func (b *BytePool) RegionSize() int {
	return b.size
}
