package component

import "time"

// WaveState tracks the current quota/time-box progression unit.
// Completed and FailReason are mutually exclusive: the quota check
// runs before the duration check, so hitting quota on the exact tick
// the duration elapses still completes the wave.
type WaveState struct {
	Number  int
	Elapsed time.Duration

	Kills int
	Quota int

	Duration time.Duration

	Completed  bool
	FailReason string

	// Spawn pacing for this wave, scaled from the stage table.
	SpawnTimer     time.Duration
	SpawnInterval  time.Duration
	SpawnCount     int
	StatMultiplier float64
}

// TimeLeft returns the remaining wave time, floored at zero.
func (w *WaveState) TimeLeft() time.Duration {
	if w.Elapsed >= w.Duration {
		return 0
	}
	return w.Duration - w.Elapsed
}
