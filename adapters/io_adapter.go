// Package adapters
// Author: momentics <momentics@gmail.com>
//
// io.Reader/io.Writer bridges over an api.ByteRing. The ring stays
// byte-granular; these adapters do the looping so stream-oriented callers
// can hand a ring to code expecting standard interfaces.

package adapters

import (
	"errors"
	"io"

	"github.com/momentics/hioload-ringbuf/api"
)

// Ensure compile-time interface compliance.
var (
	_ io.Writer = (*RingWriter)(nil)
	_ io.Reader = (*RingReader)(nil)
)

// RingWriter adapts a ring's producer side to io.Writer.
type RingWriter struct {
	Ring api.ByteRing
}

// Write copies bytes into the ring one at a time. When a reject-policy ring
// fills up mid-copy it returns the short count with api.ErrBufferFull;
// already-written bytes stay buffered.
func (w *RingWriter) Write(p []byte) (int, error) {
	for i, b := range p {
		if err := w.Ring.WriteByte(b); err != nil {
			return i, err
		}
	}
	return len(p), nil
}

// RingReader adapts a ring's consumer side to io.Reader.
type RingReader struct {
	Ring api.ByteRing
}

// Read drains available bytes into p. An empty ring yields (0, io.EOF) so
// stream consumers terminate cleanly; the ring itself stays usable, and a
// later Read returns whatever arrived in the meantime.
func (r *RingReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	n := 0
	for n < len(p) {
		b, err := r.Ring.ReadByte()
		if err != nil {
			if errors.Is(err, api.ErrBufferEmpty) && n > 0 {
				return n, nil
			}
			if errors.Is(err, api.ErrBufferEmpty) {
				return 0, io.EOF
			}
			return n, err
		}
		p[n] = b
		n++
	}
	return n, nil
}
