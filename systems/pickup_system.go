package systems

import (
	"time"

	"github.com/soramame/chordfall/component"
	"github.com/soramame/chordfall/constant"
	"github.com/soramame/chordfall/engine"
	"github.com/soramame/chordfall/events"
)

// PickupSystem resolves proximity pickups: coins grant experience,
// items heal or start a timed buff. Consumed entries are only marked;
// the decay commit removes them at end of tick.
type PickupSystem struct {
	queue *events.Queue
}

// NewPickupSystem creates the pickup resolver.
func NewPickupSystem(queue *events.Queue) *PickupSystem {
	return &PickupSystem{queue: queue}
}

// Priority returns the system's priority (after combat).
func (s *PickupSystem) Priority() int {
	return 50
}

// Update checks the pickup radius against every coin and item.
func (s *PickupSystem) Update(w *engine.World, dt time.Duration) {
	p := w.Player
	if p == nil || p.Stats.Health <= 0 {
		return
	}

	for _, c := range w.Coins {
		if c.Consumed {
			continue
		}
		if p.Skills.AutoCollect || p.Pos.Sub(c.Pos).Len() <= constant.PickupRadius {
			p.Experience += c.Experience
			c.Consumed = true
		}
	}

	for _, item := range w.Items {
		if item.Consumed {
			continue
		}
		if p.Pos.Sub(item.Pos).Len() > constant.PickupRadius {
			continue
		}
		item.Consumed = true
		s.applyItem(w, item.Type)
		s.queue.Push(events.GameEvent{
			Type:      events.EventItemPickedUp,
			Payload:   &events.ItemPickedUpPayload{Item: item.Type},
			Tick:      w.Frame,
			Timestamp: w.Now,
		})
	}
}

// applyItem grants the pickup's effect. Buff items route through the
// status engine so refresh rules apply like any other effect.
func (s *PickupSystem) applyItem(w *engine.World, t component.ItemType) {
	p := w.Player
	switch t {
	case component.ItemHeal:
		p.Stats.Health += p.Stats.MaxHealth * 3 / 10
		if p.Stats.Health > p.Stats.MaxHealth {
			p.Stats.Health = p.Stats.MaxHealth
		}
	case component.ItemAtkBoost:
		s.applyBuff(w, component.StatusAtkUp)
	case component.ItemDefBoost:
		s.applyBuff(w, component.StatusDefUp)
	case component.ItemSpeedBoost:
		s.applyBuff(w, component.StatusSpeedUp)
	case component.ItemRegen:
		s.applyBuff(w, component.StatusRegen)
	}
}

func (s *PickupSystem) applyBuff(w *engine.World, kind component.StatusKind) {
	p := w.Player
	dur := time.Duration(float64(10*time.Second) * p.Stats.TimeScale)
	ApplyStatus(&p.Effects, w.Now, component.StatusApplication{
		Kind:     kind,
		Duration: dur,
		Level:    1,
	})
}
