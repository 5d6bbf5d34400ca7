// File: pool/heap.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import "github.com/momentics/hioload-ringbuf/api"

// Ensure compile-time interface compliance.
var _ api.StorageAllocator = (*HeapAllocator)(nil)

// HeapAllocator hands out plain Go-heap regions. Free is a no-op; the GC
// reclaims released regions.
type HeapAllocator struct{}

// NewHeapAllocator returns the default allocator.
func NewHeapAllocator() *HeapAllocator {
	return &HeapAllocator{}
}

// Alloc returns a zeroed region of exactly size bytes.
func (*HeapAllocator) Alloc(size int) ([]byte, error) {
	if size <= 0 {
		return nil, api.ErrInvalidCapacity
	}
	return make([]byte, size), nil
}

// Free releases the region to the garbage collector.
func (*HeapAllocator) Free([]byte) {}
