// control/config.go
// Author: momentics <momentics@gmail.com>
//
// Thread-safe configuration store with dynamic update and hot-reload propagation.

package control

import (
	"sync"

	"github.com/momentics/hioload-ringbuf/api"
)

// Config keys understood by the typed accessors.
const (
	KeyRingCapacity  = "ring.capacity"
	KeyRingPolicy    = "ring.policy"
	KeyRingHugepages = "ring.hugepages"
)

// ConfigStore is a dynamic key/value map with atomic snapshot and listener support.
type ConfigStore struct {
	mu        sync.RWMutex
	config    map[string]any
	listeners []func()
}

// NewConfigStore initializes a new config store with empty data.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{
		config:    make(map[string]any),
		listeners: make([]func(), 0),
	}
}

// GetSnapshot returns a copy of all config values.
func (cs *ConfigStore) GetSnapshot() map[string]any {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	out := make(map[string]any, len(cs.config))
	for k, v := range cs.config {
		out[k] = v
	}
	return out
}

// SetConfig merges new values and dispatches reload if needed.
func (cs *ConfigStore) SetConfig(newCfg map[string]any) {
	cs.mu.Lock()
	for k, v := range newCfg {
		cs.config[k] = v
	}
	listeners := cs.listeners
	cs.mu.Unlock()
	for _, fn := range listeners {
		go fn()
	}
}

// OnReload registers a listener hook called on config changes.
func (cs *ConfigStore) OnReload(fn func()) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.listeners = append(cs.listeners, fn)
}

// RingDefaults carries the ring construction parameters held in the store.
type RingDefaults struct {
	Capacity     int
	Policy       api.Policy
	UseHugepages bool
}

// RingDefaults resolves typed ring parameters from the current snapshot,
// falling back to a 4096-byte reject-policy heap ring.
func (cs *ConfigStore) RingDefaults() RingDefaults {
	snap := cs.GetSnapshot()
	d := RingDefaults{Capacity: 4096, Policy: api.PolicyReject}
	if v, ok := snap[KeyRingCapacity].(int); ok && v > 0 {
		d.Capacity = v
	}
	if v, ok := snap[KeyRingPolicy].(string); ok && v == api.PolicyOverwrite.String() {
		d.Policy = api.PolicyOverwrite
	}
	if v, ok := snap[KeyRingHugepages].(bool); ok {
		d.UseHugepages = v
	}
	return d
}
