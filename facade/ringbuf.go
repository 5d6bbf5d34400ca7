// File: facade/ringbuf.go
// Unified facade layer for hioload-ringbuf.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// RingSystem aggregates the library's components behind a single entry
// point: storage allocation, the ring itself, optional metrics
// instrumentation, the control adapter, and optional config-file hot-reload.

package facade

import (
	"log"
	"sync"

	"github.com/momentics/hioload-ringbuf/adapters"
	"github.com/momentics/hioload-ringbuf/api"
	"github.com/momentics/hioload-ringbuf/control"
	"github.com/momentics/hioload-ringbuf/pool"
	"github.com/momentics/hioload-ringbuf/ringbuf"
)

// Config holds parameters immutable per ring system.
type Config struct {
	Capacity      int        // Total slot count of the ring
	Policy        api.Policy // Admission policy once full
	UseHugepages  bool       // Back storage with hugepages where available
	EnableMetrics bool       // Wrap the ring with operation counters
	EnableDebug   bool       // Register a live state probe on Control
	ConfigFile    string     // Optional key=value file watched for reload
	MetricsPrefix string     // Counter namespace, defaults to "ring"
}

// DefaultConfig returns default configuration values.
func DefaultConfig() *Config {
	return &Config{
		Capacity:      4096,             // 4 KiB byte ring
		Policy:        api.PolicyReject, // preserve data, signal full
		UseHugepages:  false,
		EnableMetrics: true,
		EnableDebug:   true,
		MetricsPrefix: "ring",
	}
}

// RingSystem is the main facade type.
type RingSystem struct {
	handle  *ringbuf.Handle
	ring    api.ByteRing
	ctl     *adapters.ControlAdapter
	watcher *control.Watcher

	config *Config
	mu     sync.Mutex
	closed bool
}

// New builds a ring system from cfg. Nil cfg uses DefaultConfig.
func New(cfg *Config) (*RingSystem, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	rs := &RingSystem{config: cfg}
	rs.ctl = adapters.NewControlAdapter().(*adapters.ControlAdapter)

	var alloc api.StorageAllocator = pool.NewHeapAllocator()
	if cfg.UseHugepages {
		alloc = pool.NewHugepageAllocator()
	}

	handle, err := ringbuf.Open(cfg.Capacity, cfg.Policy, alloc)
	if err != nil {
		return nil, err
	}
	rs.handle = handle
	rs.ring = handle

	if cfg.EnableMetrics {
		rs.ring = adapters.NewInstrumentedRing(handle, rs.ctl.Metrics(), cfg.MetricsPrefix)
		rs.ctl.SetMetric(cfg.MetricsPrefix+".policy", cfg.Policy.String())
		rs.ctl.SetMetric(cfg.MetricsPrefix+".capacity", cfg.Capacity)
	}
	if cfg.EnableDebug {
		rs.ctl.RegisterRingProbe(cfg.MetricsPrefix, rs.ring)
	}
	if cfg.ConfigFile != "" {
		w, err := control.NewWatcher(cfg.ConfigFile, rs.ctl.ConfigStore())
		if err != nil {
			log.Printf("[facade] config watcher unavailable for %s: %v", cfg.ConfigFile, err)
		} else {
			rs.watcher = w
		}
	}
	return rs, nil
}

// Ring returns the operating ring (instrumented when metrics are enabled).
func (rs *RingSystem) Ring() api.ByteRing {
	return rs.ring
}

// Control returns the control interface for config, stats, and probes.
func (rs *RingSystem) Control() api.Control {
	return rs.ctl
}

// Close releases the ring storage and stops the config watcher.
// Safe to call more than once.
func (rs *RingSystem) Close() error {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	if rs.closed {
		return nil
	}
	rs.closed = true
	if rs.watcher != nil {
		_ = rs.watcher.Close()
	}
	return rs.handle.Close()
}
