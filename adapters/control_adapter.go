// Package adapters
// Author: momentics <momentics@gmail.com>
//
// Control adapter implementing api.Control interface using control package primitives.

package adapters

import (
	"github.com/momentics/hioload-ringbuf/api"
	"github.com/momentics/hioload-ringbuf/control"
)

type ControlAdapter struct {
	config  *control.ConfigStore
	metrics *control.MetricsRegistry
	debug   *control.DebugProbes
}

func NewControlAdapter() api.Control {
	return &ControlAdapter{
		config:  control.NewConfigStore(),
		metrics: control.NewMetricsRegistry(),
		debug:   control.NewDebugProbes(),
	}
}

func (c *ControlAdapter) GetConfig() map[string]any {
	return c.config.GetSnapshot()
}

func (c *ControlAdapter) SetConfig(cfg map[string]any) error {
	c.config.SetConfig(cfg)
	return nil
}

func (c *ControlAdapter) Stats() map[string]any {
	stats := c.metrics.GetSnapshot()
	debugStats := c.debug.DumpState()
	combined := make(map[string]any)
	for k, v := range stats {
		combined[k] = v
	}
	for k, v := range debugStats {
		combined["debug."+k] = v
	}
	return combined
}

func (c *ControlAdapter) OnReload(fn func()) {
	c.config.OnReload(fn)
	control.RegisterReloadHook(fn)
}

func (c *ControlAdapter) SetMetric(key string, value any) {
	c.metrics.Set(key, value)
}

func (c *ControlAdapter) RegisterDebugProbe(name string, fn func() any) {
	c.debug.RegisterProbe(name, fn)
}

// ConfigStore exposes the underlying store for watcher wiring.
func (c *ControlAdapter) ConfigStore() *control.ConfigStore {
	return c.config
}

// Metrics exposes the underlying registry for ring instrumentation.
func (c *ControlAdapter) Metrics() *control.MetricsRegistry {
	return c.metrics
}

// RegisterRingProbe publishes live state of a ring under debug.<name>.
func (c *ControlAdapter) RegisterRingProbe(name string, r api.ByteRing) {
	c.debug.RegisterProbe(name, func() any {
		return map[string]any{
			"len":   r.Len(),
			"cap":   r.Cap(),
			"empty": r.IsEmpty(),
			"full":  r.IsFull(),
		}
	})
}
