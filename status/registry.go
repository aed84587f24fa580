package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Counter keys written by the game loop
const (
	KeyTicks      = "ticks"
	KeyCommands   = "commands"
	KeyDropped    = "dropped"
	KeyRejected   = "rejected"
	KeyCaptures   = "captures"
	KeyUnresolved = "unresolved"
	KeyViolations = "violations"
)

// KeyMessage holds the latest human-readable game message
const KeyMessage = "message"

// Registry is the game's metrics facade
// Written by the tick loop and producers, read by the renderer
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Strings *MetricMap[AtomicString]
}

func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// Inc adds one to a counter
func (r *Registry) Inc(key string) {
	r.Ints.Get(key).Add(1)
}

// Count reads a counter
func (r *Registry) Count(key string) int64 {
	return r.Ints.Get(key).Load()
}

// SetMessage replaces the latest message
func (r *Registry) SetMessage(format string, args ...any) {
	r.Strings.Get(KeyMessage).Store(fmt.Sprintf(format, args...))
}

func (r *Registry) Message() string {
	return r.Strings.Get(KeyMessage).Load()
}

// Summary renders non-zero counters as "key=value" pairs in key order
func (r *Registry) Summary() string {
	var parts []string
	r.Ints.Range(func(key string, v *atomic.Int64) {
		if n := v.Load(); n != 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", key, n))
		}
	})
	return strings.Join(parts, " ")
}
