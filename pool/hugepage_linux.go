//go:build linux
// +build linux

// File: pool/hugepage_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux hugepage-backed storage: regions come from anonymous mmap with
// MAP_HUGETLB rounded up to 2 MiB pages, falling back to the Go heap when
// hugepages are unavailable. Mapped regions are tracked so Free can munmap
// the full mapping even though callers hold a capacity-sized slice of it.

package pool

import (
	"sync"

	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-ringbuf/api"
)

// Ensure compile-time interface compliance.
var _ api.StorageAllocator = (*HugepageAllocator)(nil)

const hugePageSize = 2 << 20

// HugepageAllocator provides hugepage-backed ring storage on Linux.
type HugepageAllocator struct {
	mu       sync.Mutex
	mappings map[*byte][]byte // first byte -> full mapping
}

// NewHugepageAllocator returns a hugepage allocator with heap fallback.
func NewHugepageAllocator() *HugepageAllocator {
	return &HugepageAllocator{mappings: make(map[*byte][]byte)}
}

// Alloc maps a hugepage region of at least size bytes, or falls back to the
// heap when the mmap fails (no hugepages reserved, resource limits).
func (a *HugepageAllocator) Alloc(size int) ([]byte, error) {
	if size <= 0 {
		return nil, api.ErrInvalidCapacity
	}
	length := ((size + hugePageSize - 1) / hugePageSize) * hugePageSize
	data, err := unix.Mmap(-1, 0, length,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANONYMOUS|unix.MAP_PRIVATE|unix.MAP_HUGETLB)
	if err != nil {
		return make([]byte, size), nil
	}
	a.mu.Lock()
	a.mappings[&data[0]] = data
	a.mu.Unlock()
	return data[:size], nil
}

// Free returns a hugepage mapping to the OS. Heap-fallback regions are left
// to the garbage collector.
func (a *HugepageAllocator) Free(buf []byte) {
	if len(buf) == 0 {
		return
	}
	a.mu.Lock()
	full, ok := a.mappings[&buf[0]]
	if ok {
		delete(a.mappings, &buf[0])
	}
	a.mu.Unlock()
	if ok {
		_ = unix.Munmap(full)
	}
}
