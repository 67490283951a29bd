package shader

import "sync"

// Arena is the device-side lookup-table arena of spec 6
// (lookup_table: array<Float>): an append-only float buffer where each
// table (Beckmann, future noise/IES tables, ...) claims a stable offset
// on first build (spec 5: "the lookup-table arena, add-under-mutex,
// offset-stable").
type Arena struct {
	mu   sync.Mutex
	data []float32
}

// Append adds values to the end of the arena and returns their starting
// offset.
func (a *Arena) Append(values []float32) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	off := len(a.data)
	a.data = append(a.data, values...)
	return off
}

// Data returns the arena's current backing slice. Callers must not
// mutate it; it is exposed read-only for device upload.
func (a *Arena) Data() []float32 { return a.data }
