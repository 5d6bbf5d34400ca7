// File: api/storage.go
// Package api defines the storage allocation contract.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// StorageAllocator provides backing byte regions for handle-owned rings.
// Implementations decide placement (heap, pooled regions, hugepages).
// A region obtained from Alloc stays valid until passed back to Free.
type StorageAllocator interface {
	// Alloc returns a region of at least size bytes.
	Alloc(size int) ([]byte, error)
	// Free releases a region previously returned by Alloc.
	// Must tolerate nil.
	Free(buf []byte)
}
