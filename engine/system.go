package engine

import "time"

// System is one simulation stage. The game runs systems in ascending
// priority order, exactly once per tick, all with the same dt.
type System interface {
	Priority() int
	Update(w *World, dt time.Duration)
}
