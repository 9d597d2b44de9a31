// Package audio turns simulation events into synthesized tone
// feedback. It subscribes to nothing: the driver hands it the event
// batch drained each tick.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/soramame/chordfall/core"
	"github.com/soramame/chordfall/events"
)

const sampleRate = beep.SampleRate(48000)

// SoundManager owns the speaker and a mixer all cues are added to.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewSoundManager creates an uninitialized manager.
func NewSoundManager(muted bool) *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}, muted: muted}
}

// Initialize opens the speaker. Safe to call once at startup; a muted
// manager skips device setup entirely.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.initialized || sm.muted {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences the mixer.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.initialized {
		sm.mixer.Clear()
		sm.initialized = false
	}
}

// Handle plays cues for one tick's event batch.
func (sm *SoundManager) Handle(batch []events.GameEvent) {
	for _, evt := range batch {
		switch evt.Type {
		case events.EventNoteSubmitted:
			if p, ok := evt.Payload.(*events.NoteSubmittedPayload); ok {
				sm.playTone(pitchFreq(p.Pitch, 4), 120*time.Millisecond, 0.3)
			}
		case events.EventSlotCompleted:
			if p, ok := evt.Payload.(*events.SlotCompletedPayload); ok {
				sm.playArpeggio(p.Chord)
			}
		case events.EventSlotExpired:
			sm.playTone(110, 150*time.Millisecond, 0.2)
		case events.EventLevelUp:
			sm.playTone(880, 250*time.Millisecond, 0.35)
		case events.EventGameOver:
			sm.playTone(55, 600*time.Millisecond, 0.4)
		}
	}
}

// playArpeggio plays a completed chord's notes in quick succession.
func (sm *SoundManager) playArpeggio(chord *core.Chord) {
	if chord == nil {
		return
	}
	for i, pc := range chord.Notes {
		delay := time.Duration(i) * 60 * time.Millisecond
		sm.play(newTone(pitchFreq(pc, 5), 140*time.Millisecond, 0.3, delay))
	}
}

func (sm *SoundManager) playTone(freq float64, dur time.Duration, gain float64) {
	sm.play(newTone(freq, dur, gain, 0))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// pitchFreq converts a pitch class and octave to Hz (A4 = 440).
func pitchFreq(pc core.PitchClass, octave int) float64 {
	semis := float64(int(pc)-9) + 12*float64(octave-4)
	return 440 * math.Pow(2, semis/12)
}

// tone is a sine streamer with a linear fade-out and optional lead-in
// silence.
type tone struct {
	freq     float64
	gain     float64
	phase    float64
	delay    int // silent samples before onset
	position int
	duration int
}

func newTone(freq float64, dur time.Duration, gain float64, delay time.Duration) beep.Streamer {
	return &tone{
		freq:     freq,
		gain:     gain,
		delay:    sampleRate.N(delay),
		duration: sampleRate.N(dur),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.delay > 0 {
			t.delay--
			samples[i][0], samples[i][1] = 0, 0
			continue
		}
		if t.position >= t.duration {
			return i, false
		}
		fade := 1 - float64(t.position)/float64(t.duration)
		val := math.Sin(2*math.Pi*t.phase) * t.gain * fade
		samples[i][0], samples[i][1] = val, val

		t.phase += t.freq / float64(sampleRate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
