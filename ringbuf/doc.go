// Package ringbuf
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity single-producer/single-consumer byte ring buffers for
// interrupt-style data exchange: one side (often a device-facing goroutine)
// produces bytes, the other consumes them, with no allocation and no blocking
// on the hot path.
//
// Two admission policies are supported, selected at construction:
//   - api.PolicyReject: power-of-two capacity, masked index advancement,
//     writes into a full ring fail and preserve buffered data.
//   - api.PolicyOverwrite: arbitrary capacity, modulo advancement, writes
//     into a full ring silently evict the oldest unread byte.
//
// Ring borrows caller-supplied storage and never frees it. Open builds the
// handle-owned form on top of an api.StorageAllocator; Close releases the
// allocation, never touching caller memory.
package ringbuf
