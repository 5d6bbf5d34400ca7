// Package adapters
// Author: momentics <momentics@gmail.com>
//
// InstrumentedRing wraps any api.ByteRing and feeds operation counters into
// a control.MetricsRegistry. Instrumentation stays out of the core ring so
// the uninstrumented hot path carries no registry cost.

package adapters

import (
	"github.com/momentics/hioload-ringbuf/api"
	"github.com/momentics/hioload-ringbuf/control"
)

// Ensure compile-time interface compliance.
var _ api.ByteRing = (*InstrumentedRing)(nil)

// InstrumentedRing counts writes, reads, rejected writes, evicted bytes,
// and resets under <prefix>.<counter> keys.
type InstrumentedRing struct {
	ring    api.ByteRing
	metrics *control.MetricsRegistry
	prefix  string
}

// NewInstrumentedRing wraps ring with counters registered under prefix.
func NewInstrumentedRing(ring api.ByteRing, metrics *control.MetricsRegistry, prefix string) *InstrumentedRing {
	if prefix == "" {
		prefix = "ring"
	}
	return &InstrumentedRing{ring: ring, metrics: metrics, prefix: prefix}
}

func (ir *InstrumentedRing) WriteByte(b byte) error {
	evicting := ir.ring.IsFull()
	err := ir.ring.WriteByte(b)
	switch {
	case err != nil:
		ir.metrics.Add(ir.prefix+".write_rejected", 1)
	case evicting:
		// Overwrite policy admitted the byte by dropping the oldest one.
		ir.metrics.Add(ir.prefix+".writes", 1)
		ir.metrics.Add(ir.prefix+".evicted", 1)
	default:
		ir.metrics.Add(ir.prefix+".writes", 1)
	}
	return err
}

func (ir *InstrumentedRing) ReadByte() (byte, error) {
	b, err := ir.ring.ReadByte()
	if err != nil {
		ir.metrics.Add(ir.prefix+".read_empty", 1)
	} else {
		ir.metrics.Add(ir.prefix+".reads", 1)
	}
	return b, err
}

func (ir *InstrumentedRing) Reset() {
	ir.ring.Reset()
	ir.metrics.Add(ir.prefix+".resets", 1)
}

func (ir *InstrumentedRing) Len() int      { return ir.ring.Len() }
func (ir *InstrumentedRing) Cap() int      { return ir.ring.Cap() }
func (ir *InstrumentedRing) IsEmpty() bool { return ir.ring.IsEmpty() }
func (ir *InstrumentedRing) IsFull() bool  { return ir.ring.IsFull() }

// Unwrap returns the underlying ring.
func (ir *InstrumentedRing) Unwrap() api.ByteRing { return ir.ring }
