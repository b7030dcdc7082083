// File: control/registry.go
//
// Registry of named allocator stats sources. Thread-safe map with dynamic
// registration so stats can be scraped while containers run.

package control

import (
	"sync"
	"time"

	"github.com/szimmy/NonSTL/api"
)

// StatsRegistry holds named allocator stats sources.
type StatsRegistry struct {
	mu      sync.RWMutex
	sources map[string]api.StatsSource
	updated time.Time
}

// NewStatsRegistry creates an empty registry.
func NewStatsRegistry() *StatsRegistry {
	return &StatsRegistry{
		sources: make(map[string]api.StatsSource),
	}
}

// Register adds or replaces a stats source under name.
func (sr *StatsRegistry) Register(name string, src api.StatsSource) {
	sr.mu.Lock()
	sr.sources[name] = src
	sr.updated = time.Now()
	sr.mu.Unlock()
}

// Unregister removes a stats source.
func (sr *StatsRegistry) Unregister(name string) {
	sr.mu.Lock()
	delete(sr.sources, name)
	sr.updated = time.Now()
	sr.mu.Unlock()
}

// Snapshot returns the current stats of every registered source.
func (sr *StatsRegistry) Snapshot() map[string]api.AllocStats {
	sr.mu.RLock()
	defer sr.mu.RUnlock()
	out := make(map[string]api.AllocStats, len(sr.sources))
	for name, src := range sr.sources {
		out[name] = src.AllocStats()
	}
	return out
}
