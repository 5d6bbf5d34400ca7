// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// ring_test.go — Contract tests for the SPSC byte ring.
package ringbuf

import (
	"errors"
	"runtime"
	"testing"

	"github.com/momentics/hioload-ringbuf/api"
)

// TestRing_InitialState verifies a fresh ring reports full capacity,
// zero length, and empty/not-full regardless of policy.
func TestRing_InitialState(t *testing.T) {
	for _, policy := range []api.Policy{api.PolicyReject, api.PolicyOverwrite} {
		storage := make([]byte, 16)
		r, err := New(storage, 16, policy)
		if err != nil {
			t.Fatalf("New(%v) failed: %v", policy, err)
		}
		if r.Cap() != 16 {
			t.Errorf("policy %v: expected capacity 16, got %d", policy, r.Cap())
		}
		if r.Len() != 0 {
			t.Errorf("policy %v: expected empty ring, got len %d", policy, r.Len())
		}
		if !r.IsEmpty() || r.IsFull() {
			t.Errorf("policy %v: fresh ring must be empty and not full", policy)
		}
	}
}

// TestRing_InvalidCapacity checks construction-time validation for zero,
// negative, and (reject policy) non-power-of-two capacities.
func TestRing_InvalidCapacity(t *testing.T) {
	storage := make([]byte, 64)
	cases := []struct {
		capacity int
		policy   api.Policy
	}{
		{0, api.PolicyReject},
		{0, api.PolicyOverwrite},
		{-4, api.PolicyReject},
		{10, api.PolicyReject}, // not a power of two
		{15, api.PolicyReject},
	}
	for _, tc := range cases {
		if _, err := New(storage, tc.capacity, tc.policy); !errors.Is(err, api.ErrInvalidCapacity) {
			t.Errorf("New(capacity=%d, %v): expected ErrInvalidCapacity, got %v",
				tc.capacity, tc.policy, err)
		}
	}
	// Overwrite policy accepts arbitrary positive capacity.
	if _, err := New(storage, 10, api.PolicyOverwrite); err != nil {
		t.Errorf("New(capacity=10, overwrite) failed: %v", err)
	}
}

// TestRing_StorageTooSmall checks that storage shorter than the requested
// capacity is rejected.
func TestRing_StorageTooSmall(t *testing.T) {
	if _, err := New(make([]byte, 8), 16, api.PolicyReject); !errors.Is(err, api.ErrStorageTooSmall) {
		t.Errorf("expected ErrStorageTooSmall, got %v", err)
	}
	if _, err := New(nil, 16, api.PolicyOverwrite); !errors.Is(err, api.ErrStorageTooSmall) {
		t.Errorf("nil storage: expected ErrStorageTooSmall, got %v", err)
	}
}

// TestRing_ReadEmpty verifies reading a fresh or reset ring always fails
// with ErrBufferEmpty and never mutates state.
func TestRing_ReadEmpty(t *testing.T) {
	for _, policy := range []api.Policy{api.PolicyReject, api.PolicyOverwrite} {
		r, _ := New(make([]byte, 16), 16, policy)
		for i := 0; i < 3; i++ {
			if _, err := r.ReadByte(); !errors.Is(err, api.ErrBufferEmpty) {
				t.Fatalf("policy %v: expected ErrBufferEmpty, got %v", policy, err)
			}
			if r.Len() != 0 {
				t.Fatalf("policy %v: failed read mutated length to %d", policy, r.Len())
			}
		}
		// Indices must be untouched: a subsequent round trip still works.
		if err := r.WriteByte('x'); err != nil {
			t.Fatalf("policy %v: write after failed reads: %v", policy, err)
		}
		if b, err := r.ReadByte(); err != nil || b != 'x' {
			t.Fatalf("policy %v: expected 'x', got %q (err=%v)", policy, b, err)
		}
	}
}

// TestRing_FIFOOrder checks the round-trip property: N written bytes come
// back in order, byte-for-byte.
func TestRing_FIFOOrder(t *testing.T) {
	for _, policy := range []api.Policy{api.PolicyReject, api.PolicyOverwrite} {
		r, _ := New(make([]byte, 64), 64, policy)
		payload := []byte("the quick brown fox jumps over the lazy dog")
		for _, b := range payload {
			if err := r.WriteByte(b); err != nil {
				t.Fatalf("policy %v: write %q failed: %v", policy, b, err)
			}
		}
		if r.Len() != len(payload) {
			t.Fatalf("policy %v: expected len %d, got %d", policy, len(payload), r.Len())
		}
		for i, want := range payload {
			got, err := r.ReadByte()
			if err != nil {
				t.Fatalf("policy %v: read %d failed: %v", policy, i, err)
			}
			if got != want {
				t.Fatalf("policy %v: byte %d: expected %q, got %q", policy, i, want, got)
			}
		}
		if !r.IsEmpty() {
			t.Errorf("policy %v: ring not empty after draining", policy)
		}
	}
}

// TestRing_RejectFull verifies the reject policy: with capacity 16 one slot
// is sacrificed, the 16th write fails, and buffered data survives intact.
func TestRing_RejectFull(t *testing.T) {
	r, _ := New(make([]byte, 16), 16, api.PolicyReject)
	for i := 0; i < 15; i++ {
		if err := r.WriteByte(byte(i)); err != nil {
			t.Fatalf("write %d failed: %v", i, err)
		}
	}
	if !r.IsFull() {
		t.Error("expected full ring after 15 writes")
	}
	if err := r.WriteByte(0xFF); !errors.Is(err, api.ErrBufferFull) {
		t.Fatalf("expected ErrBufferFull, got %v", err)
	}
	if r.Len() != 15 {
		t.Fatalf("rejected write changed length: %d", r.Len())
	}
	for i := 0; i < 15; i++ {
		b, err := r.ReadByte()
		if err != nil || b != byte(i) {
			t.Fatalf("read %d: expected %d, got %d (err=%v)", i, i, b, err)
		}
	}
}

// TestRing_OverwriteEviction verifies the overwrite policy: with capacity 16
// filled with 0..15, writing 'a' keeps the ring full at size 16 and the next
// read returns 1 because byte 0 was evicted.
func TestRing_OverwriteEviction(t *testing.T) {
	r, _ := New(make([]byte, 16), 16, api.PolicyOverwrite)
	for i := 0; i < 16; i++ {
		if err := r.WriteByte(byte(i)); err != nil {
			t.Fatalf("write %d failed: %v", i, err)
		}
	}
	if !r.IsFull() || r.Len() != 16 {
		t.Fatalf("expected full ring of 16, got len %d full=%v", r.Len(), r.IsFull())
	}

	if err := r.WriteByte('a'); err != nil {
		t.Fatalf("overwriting write failed: %v", err)
	}
	if r.Len() != 16 || !r.IsFull() {
		t.Fatalf("after eviction: expected len 16 and full, got len %d full=%v", r.Len(), r.IsFull())
	}

	b, err := r.ReadByte()
	if err != nil {
		t.Fatalf("read after eviction failed: %v", err)
	}
	if b != 1 {
		t.Fatalf("expected 1 (byte 0 evicted), got %d", b)
	}
	if r.IsFull() {
		t.Error("ring still full after one read")
	}

	// Remaining order: 2..15 then 'a'.
	for i := 2; i < 16; i++ {
		if b, _ := r.ReadByte(); b != byte(i) {
			t.Fatalf("expected %d, got %d", i, b)
		}
	}
	if b, _ := r.ReadByte(); b != 'a' {
		t.Fatalf("expected 'a' last, got %d", b)
	}
}

// TestRing_OverwriteArbitraryCapacity exercises a non-power-of-two capacity
// through several full wrap cycles.
func TestRing_OverwriteArbitraryCapacity(t *testing.T) {
	const capacity = 10
	r, _ := New(make([]byte, capacity), capacity, api.PolicyOverwrite)
	for i := 0; i < 35; i++ {
		if err := r.WriteByte(byte(i)); err != nil {
			t.Fatalf("write %d failed: %v", i, err)
		}
	}
	if r.Len() != capacity {
		t.Fatalf("expected len %d, got %d", capacity, r.Len())
	}
	// Only the newest 10 bytes remain: 25..34.
	for i := 25; i < 35; i++ {
		b, err := r.ReadByte()
		if err != nil || b != byte(i) {
			t.Fatalf("expected %d, got %d (err=%v)", i, b, err)
		}
	}
}

// TestRing_ResetIdempotent checks reset empties the ring without clearing
// the underlying storage, and that repeating it changes nothing.
func TestRing_ResetIdempotent(t *testing.T) {
	storage := make([]byte, 16)
	r, _ := New(storage, 16, api.PolicyOverwrite)
	for i := 0; i < 16; i++ {
		r.WriteByte(0xAB)
	}
	for i := 0; i < 3; i++ {
		r.Reset()
		if !r.IsEmpty() || r.Len() != 0 || r.IsFull() {
			t.Fatalf("reset %d: ring not empty (len=%d)", i, r.Len())
		}
	}
	// Bytes must survive reset untouched.
	for i, b := range storage {
		if b != 0xAB {
			t.Fatalf("reset cleared storage[%d]", i)
		}
	}
	if _, err := r.ReadByte(); !errors.Is(err, api.ErrBufferEmpty) {
		t.Fatalf("expected ErrBufferEmpty after reset, got %v", err)
	}
}

// TestRing_SizeTracksOperations verifies size always equals successful
// writes minus reads, and IsEmpty/IsFull agree with Len.
func TestRing_SizeTracksOperations(t *testing.T) {
	r, _ := New(make([]byte, 32), 32, api.PolicyReject)
	size := 0
	for i := 0; i < 200; i++ {
		if i%3 != 0 {
			if err := r.WriteByte(byte(i)); err == nil {
				size++
			}
		} else {
			if _, err := r.ReadByte(); err == nil {
				size--
			}
		}
		if r.Len() != size {
			t.Fatalf("step %d: expected len %d, got %d", i, size, r.Len())
		}
		if r.IsEmpty() != (size == 0) {
			t.Fatalf("step %d: IsEmpty disagrees with len %d", i, size)
		}
		if r.IsFull() != (size == r.Cap()-1) {
			t.Fatalf("step %d: IsFull disagrees with len %d", i, size)
		}
	}
}

// TestRing_CapacityConstant verifies Cap never changes across activity.
func TestRing_CapacityConstant(t *testing.T) {
	r, _ := New(make([]byte, 8), 8, api.PolicyReject)
	for i := 0; i < 100; i++ {
		r.WriteByte(byte(i))
		r.ReadByte()
		if r.Cap() != 8 {
			t.Fatalf("capacity changed to %d at step %d", r.Cap(), i)
		}
	}
	r.Reset()
	if r.Cap() != 8 {
		t.Fatalf("capacity changed after reset: %d", r.Cap())
	}
}

// TestRing_SPSCConcurrent runs one producer against one consumer on a
// reject-policy ring and checks the byte stream arrives intact and ordered.
func TestRing_SPSCConcurrent(t *testing.T) {
	r, _ := New(make([]byte, 64), 64, api.PolicyReject)
	const total = 100000

	go func() {
		for i := 0; i < total; i++ {
			for r.WriteByte(byte(i)) != nil {
				runtime.Gosched()
			}
		}
	}()

	for i := 0; i < total; i++ {
		var b byte
		var err error
		for {
			b, err = r.ReadByte()
			if err == nil {
				break
			}
			runtime.Gosched()
		}
		if b != byte(i) {
			t.Fatalf("position %d: expected %d, got %d", i, byte(i), b)
		}
	}
	if !r.IsEmpty() {
		t.Errorf("ring not empty after stream drained: len %d", r.Len())
	}
}
