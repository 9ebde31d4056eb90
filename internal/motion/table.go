package motion

import (
	"fmt"
	"sort"
	"time"
)

// Table is a named set of presets.
type Table map[string]Preset

// Get returns the preset registered under name.
func (t Table) Get(name string) (Preset, bool) {
	p, ok := t[name]
	return p, ok
}

// Names returns the preset names in a stable order.
func (t Table) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Require fails when any of the named presets is missing.
func (t Table) Require(names ...string) error {
	for _, name := range names {
		if _, ok := t[name]; !ok {
			return fmt.Errorf("motion preset %q is not defined", name)
		}
	}
	return nil
}

// StaggerDelay is the start offset of the i-th child of the named container.
func (t Table) StaggerDelay(container string, i int) time.Duration {
	p, ok := t[container]
	if !ok || i <= 0 {
		return 0
	}
	return time.Duration(i) * p.Timing.Stagger
}

// Millis formats d as a CSS time value.
func Millis(d time.Duration) string {
	return fmt.Sprintf("%dms", d.Milliseconds())
}
