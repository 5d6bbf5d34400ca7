// File: ringbuf/handle.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Handle is the opaque, allocation-owning form of the ring: storage comes
// from an api.StorageAllocator, lives inside the handle, and is returned to
// the allocator on Close. Callers that bring their own storage use New.

package ringbuf

import (
	"sync/atomic"

	"github.com/momentics/hioload-ringbuf/api"
)

// Ensure compile-time interface compliance.
var _ api.ByteRing = (*Handle)(nil)

// Handle owns the backing storage of its ring and implements api.ByteRing
// by delegation. After Close every operation fails with api.ErrRingReleased.
type Handle struct {
	ring     *Ring
	storage  []byte
	alloc    api.StorageAllocator
	released atomic.Bool
}

// heapAllocator is the fallback when Open is given a nil allocator.
type heapAllocator struct{}

func (heapAllocator) Alloc(size int) ([]byte, error) { return make([]byte, size), nil }
func (heapAllocator) Free([]byte)                    {}

// Open allocates capacity bytes through alloc and binds a ring over them.
// A nil alloc falls back to plain heap storage. Capacity is validated before
// any allocation happens, under the same rules as New.
func Open(capacity int, policy api.Policy, alloc api.StorageAllocator) (*Handle, error) {
	if capacity <= 0 {
		return nil, api.ErrInvalidCapacity
	}
	if policy == api.PolicyReject && capacity&(capacity-1) != 0 {
		return nil, api.ErrInvalidCapacity
	}
	if alloc == nil {
		alloc = heapAllocator{}
	}
	storage, err := alloc.Alloc(capacity)
	if err != nil {
		return nil, api.NewError(api.ErrCodeInternal, "ring storage allocation failed").
			WithContext("capacity", capacity).
			WithContext("cause", err.Error())
	}
	ring, err := New(storage, capacity, policy)
	if err != nil {
		alloc.Free(storage)
		return nil, err
	}
	return &Handle{ring: ring, storage: storage, alloc: alloc}, nil
}

// Close returns the storage to the allocator. No-op on an already-released
// handle; never touches memory the handle does not own. The ring and storage
// references stay set so an operation racing Close observes either the live
// ring or ErrRingReleased, never a nil dereference.
func (h *Handle) Close() error {
	if !h.released.CompareAndSwap(false, true) {
		return nil
	}
	h.alloc.Free(h.storage)
	return nil
}

// Ring exposes the underlying ring, or nil once released.
func (h *Handle) Ring() *Ring {
	if h.released.Load() {
		return nil
	}
	return h.ring
}

func (h *Handle) WriteByte(b byte) error {
	if h.released.Load() {
		return api.ErrRingReleased
	}
	return h.ring.WriteByte(b)
}

func (h *Handle) ReadByte() (byte, error) {
	if h.released.Load() {
		return 0, api.ErrRingReleased
	}
	return h.ring.ReadByte()
}

func (h *Handle) Reset() {
	if h.released.Load() {
		return
	}
	h.ring.Reset()
}

func (h *Handle) Len() int {
	if h.released.Load() {
		return 0
	}
	return h.ring.Len()
}

func (h *Handle) Cap() int {
	if h.released.Load() {
		return 0
	}
	return h.ring.Cap()
}

func (h *Handle) IsEmpty() bool { return h.Len() == 0 }

func (h *Handle) IsFull() bool {
	if h.released.Load() {
		return false
	}
	return h.ring.IsFull()
}
