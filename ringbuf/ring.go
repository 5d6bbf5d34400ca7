// File: ringbuf/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Ring is a fixed-capacity SPSC byte ring over caller-owned storage.
// Hot index fields are padded apart to avoid false sharing between the
// producer and consumer cache lines.

package ringbuf

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"

	"github.com/momentics/hioload-ringbuf/api"
)

// Ensure compile-time interface compliance.
var _ api.ByteRing = (*Ring)(nil)

// Ring is a fixed-capacity byte ring buffer bound to borrowed storage.
//
// Under api.PolicyReject the ring is safe for exactly one concurrent writer
// and one concurrent reader: the writer owns head, the reader owns tail, and
// each operation snapshots the other side's index once before acting.
// Under api.PolicyOverwrite a full-buffer write moves both indices, so the
// producer and consumer must be serialized by the caller.
type Ring struct {
	buf      []byte
	capacity uint32
	mask     uint32 // capacity-1, valid under PolicyReject only
	policy   api.Policy

	head uint32 // write index, owned by the producer
	_    cpu.CacheLinePad
	tail uint32 // read index, owned by the consumer
	_    cpu.CacheLinePad
	full atomic.Bool // PolicyOverwrite disambiguator for head == tail
}

// New binds a ring to the first capacity bytes of storage.
//
// The storage remains owned by the caller and must stay valid and unshared
// for the ring's lifetime; New never copies or clears it. Capacity must be
// positive, and a power of two under api.PolicyReject.
func New(storage []byte, capacity int, policy api.Policy) (*Ring, error) {
	if capacity <= 0 {
		return nil, api.ErrInvalidCapacity
	}
	if policy == api.PolicyReject && capacity&(capacity-1) != 0 {
		return nil, api.ErrInvalidCapacity
	}
	if storage == nil || len(storage) < capacity {
		return nil, api.ErrStorageTooSmall
	}
	return &Ring{
		buf:      storage[:capacity],
		capacity: uint32(capacity),
		mask:     uint32(capacity - 1),
		policy:   policy,
	}, nil
}

// WriteByte stores one byte at the write index.
//
// PolicyReject: fails with api.ErrBufferFull when advancing head would make
// it equal tail, leaving all state untouched. PolicyOverwrite: always
// succeeds; a full ring drops its oldest unread byte to make room.
func (r *Ring) WriteByte(b byte) error {
	// Snapshot both indices once; the consumer may advance tail underneath
	// us at any instruction boundary.
	head := atomic.LoadUint32(&r.head)
	tail := atomic.LoadUint32(&r.tail)

	if r.policy == api.PolicyReject {
		next := (head + 1) & r.mask
		if next == tail {
			return api.ErrBufferFull
		}
		r.buf[head] = b
		atomic.StoreUint32(&r.head, next)
		return nil
	}

	next := head + 1
	if next == r.capacity {
		next = 0
	}
	r.buf[head] = b
	if r.full.Load() {
		// head == tail while full: evict the oldest byte by dragging
		// tail along with head.
		atomic.StoreUint32(&r.tail, next)
		atomic.StoreUint32(&r.head, next)
		return nil
	}
	atomic.StoreUint32(&r.head, next)
	if next == tail {
		r.full.Store(true)
	}
	return nil
}

// ReadByte removes and returns the byte at the read index.
// Fails with api.ErrBufferEmpty on an empty ring, mutating nothing.
func (r *Ring) ReadByte() (byte, error) {
	head := atomic.LoadUint32(&r.head)
	tail := atomic.LoadUint32(&r.tail)

	if r.policy == api.PolicyReject {
		if tail == head {
			return 0, api.ErrBufferEmpty
		}
		b := r.buf[tail]
		atomic.StoreUint32(&r.tail, (tail+1)&r.mask)
		return b, nil
	}

	if tail == head && !r.full.Load() {
		return 0, api.ErrBufferEmpty
	}
	b := r.buf[tail]
	next := tail + 1
	if next == r.capacity {
		next = 0
	}
	atomic.StoreUint32(&r.tail, next)
	r.full.Store(false)
	return b, nil
}

// Reset logically empties the ring. Stored bytes are left as-is; only the
// indices and the full flag are rewound. Safe to call repeatedly.
func (r *Ring) Reset() {
	atomic.StoreUint32(&r.head, 0)
	atomic.StoreUint32(&r.tail, 0)
	r.full.Store(false)
}

// Len returns the number of unread bytes.
func (r *Ring) Len() int {
	head := atomic.LoadUint32(&r.head)
	tail := atomic.LoadUint32(&r.tail)
	if r.policy == api.PolicyReject {
		return int((head - tail) & r.mask)
	}
	if r.full.Load() && head == tail {
		return int(r.capacity)
	}
	return int((head + r.capacity - tail) % r.capacity)
}

// Cap returns the fixed slot count. Under PolicyReject at most Cap()-1
// bytes are usable; under PolicyOverwrite all Cap() slots are.
func (r *Ring) Cap() int {
	return int(r.capacity)
}

// IsEmpty reports whether no unread bytes remain.
func (r *Ring) IsEmpty() bool {
	return r.Len() == 0
}

// IsFull reports whether the next write would have to discard data.
func (r *Ring) IsFull() bool {
	if r.policy == api.PolicyReject {
		head := atomic.LoadUint32(&r.head)
		tail := atomic.LoadUint32(&r.tail)
		return (head+1)&r.mask == tail
	}
	return r.full.Load()
}

// Policy returns the admission policy selected at construction.
func (r *Ring) Policy() api.Policy {
	return r.policy
}
