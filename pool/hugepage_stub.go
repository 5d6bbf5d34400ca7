//go:build !linux
// +build !linux

// File: pool/hugepage_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Hugepage allocator stub for platforms without MAP_HUGETLB; behaves as the
// heap allocator.

package pool

import "github.com/momentics/hioload-ringbuf/api"

// Ensure compile-time interface compliance.
var _ api.StorageAllocator = (*HugepageAllocator)(nil)

// HugepageAllocator falls back to plain heap regions on this platform.
type HugepageAllocator struct{}

// NewHugepageAllocator returns the stub allocator.
func NewHugepageAllocator() *HugepageAllocator {
	return &HugepageAllocator{}
}

func (*HugepageAllocator) Alloc(size int) ([]byte, error) {
	if size <= 0 {
		return nil, api.ErrInvalidCapacity
	}
	return make([]byte, size), nil
}

func (*HugepageAllocator) Free([]byte) {}
