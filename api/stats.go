// File: api/stats.go
//
// Allocator usage accounting, exposed for observability (see control/).

package api

// AllocStats aggregates allocator accounting counters.
type AllocStats struct {
	// TotalAllocs is the number of blocks handed out.
	TotalAllocs int64
	// TotalFrees is the number of blocks returned.
	TotalFrees int64
	// LiveBlocks is TotalAllocs - TotalFrees.
	LiveBlocks int64
	// LiveSlots is the number of element slots currently held by callers.
	LiveSlots int64
	// Constructs counts element lifetimes begun.
	Constructs int64
	// Destroys counts element lifetimes ended.
	Destroys int64
}
