// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime control plane for hioload-ringbuf: configuration snapshots with
// hot-reload propagation, a metrics registry fed by the instrumented ring
// adapter, debug probes reflecting live ring state, and an fsnotify-backed
// config file watcher.
package control
