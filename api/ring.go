// File: api/ring.go
// Package api defines the public contracts of hioload-ringbuf.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// ByteRing is the contract for a fixed-capacity single-producer/single-consumer
// byte ring. One side writes, one side reads; the structure itself never blocks.

package api

// Policy selects the admission behavior of a ring once it is full.
type Policy int

const (
	// PolicyReject refuses writes into a full ring and signals ErrBufferFull.
	// Requires a power-of-two capacity; one slot is sacrificed so that index
	// equality alone distinguishes empty from full.
	PolicyReject Policy = iota
	// PolicyOverwrite evicts the oldest unread byte to admit a new one.
	// Accepts any positive capacity and uses all of it.
	PolicyOverwrite
)

func (p Policy) String() string {
	switch p {
	case PolicyReject:
		return "reject"
	case PolicyOverwrite:
		return "overwrite"
	default:
		return "unknown"
	}
}

// ByteRing is a fixed-capacity FIFO byte container over a linear array with
// wraparound indexing. Implementations are non-blocking: full and empty are
// steady-state results reported through errors, never waits.
type ByteRing interface {
	// WriteByte stores one byte. Under PolicyReject a full ring returns
	// ErrBufferFull and keeps all prior data; under PolicyOverwrite the
	// oldest unread byte is dropped and the write always succeeds.
	WriteByte(b byte) error
	// ReadByte removes and returns the oldest unread byte.
	// Returns ErrBufferEmpty when nothing is buffered.
	ReadByte() (byte, error)
	// Reset empties the ring. Indices are rewound; stored bytes are not cleared.
	Reset()
	// Len returns the current count of unread bytes.
	Len() int
	// Cap returns the fixed total slot count.
	Cap() int
	// IsEmpty reports whether no unread bytes remain.
	IsEmpty() bool
	// IsFull reports whether a new write would have to discard data.
	IsFull() bool
}
