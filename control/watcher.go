// control/watcher.go
// Author: momentics <momentics@gmail.com>
//
// fsnotify-backed config file watcher. Parses key=value lines and pushes
// updates into a ConfigStore, which fans them out to reload listeners.

package control

import (
	"bufio"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher streams config file changes into a ConfigStore.
type Watcher struct {
	w    *fsnotify.Watcher
	cs   *ConfigStore
	path string
	done chan struct{}
}

// NewWatcher loads path once, then watches it for rewrites.
func NewWatcher(path string, cs *ConfigStore) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	cw := &Watcher{w: w, cs: cs, path: path, done: make(chan struct{})}
	if cfg, err := ParseConfigFile(path); err == nil {
		cs.SetConfig(cfg)
	}
	if err := w.Add(path); err != nil {
		w.Close()
		return nil, err
	}
	go cw.loop()
	return cw, nil
}

func (cw *Watcher) loop() {
	for {
		select {
		case ev, ok := <-cw.w.Events:
			if !ok {
				return
			}
			// Atomic-rename saves replace the watched inode; the old watch
			// goes stale, so re-add the path before reloading.
			if ev.Op&(fsnotify.Rename|fsnotify.Remove) != 0 {
				if !cw.rearm() {
					continue
				}
			} else if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if cfg, err := ParseConfigFile(cw.path); err == nil {
				cw.cs.SetConfig(cfg)
				TriggerHotReload()
			}
		case _, ok := <-cw.w.Errors:
			if !ok {
				return
			}
		case <-cw.done:
			return
		}
	}
}

// rearm re-attaches the watch after the path was renamed or removed,
// retrying briefly in case the replacement file has not landed yet.
func (cw *Watcher) rearm() bool {
	for i := 0; i < 100; i++ {
		if err := cw.w.Add(cw.path); err == nil {
			return true
		}
		select {
		case <-cw.done:
			return false
		case <-time.After(10 * time.Millisecond):
		}
	}
	return false
}

// Close stops the watcher.
func (cw *Watcher) Close() error {
	close(cw.done)
	return cw.w.Close()
}

// ParseConfigFile reads key=value lines. Values parse as bool, then int,
// then fall through to string. '#' starts a comment.
func ParseConfigFile(path string) (map[string]any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	out := make(map[string]any)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, val, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		val = strings.TrimSpace(val)
		switch {
		case val == "true" || val == "false":
			out[key] = val == "true"
		default:
			if n, err := strconv.Atoi(val); err == nil {
				out[key] = n
			} else {
				out[key] = val
			}
		}
	}
	return out, sc.Err()
}
