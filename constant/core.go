package constant

import "time"

// Simulation tick and event plumbing.
const (
	// TickInterval is the driver's target update period.
	TickInterval = 33 * time.Millisecond

	// EventQueueSize must be a power of two (ring buffer indexing).
	EventQueueSize  = 256
	EventBufferMask = EventQueueSize - 1
)

// World dimensions in world units.
const (
	MapWidth  float32 = 960
	MapHeight float32 = 540
)
