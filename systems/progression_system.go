package systems

import (
	"log"
	"time"

	"github.com/soramame/chordfall/component"
	"github.com/soramame/chordfall/constant"
	"github.com/soramame/chordfall/content"
	"github.com/soramame/chordfall/core"
	"github.com/soramame/chordfall/engine"
	"github.com/soramame/chordfall/events"
)

// selection is one pending level-up option set. Each option runs its
// own chord matcher, the same machine a lane runs.
type selection struct {
	options   []content.BonusOption
	matched   []map[int]struct{}
	remaining time.Duration
}

// ProgressionSystem accrues experience, triggers level-ups, and runs
// the bonus-option selection protocol. Exactly one option commits per
// pending level-up: by chord completion, by timeout (first available),
// or immediately when the auto-select skill is unlocked.
type ProgressionSystem struct {
	provider *content.Provider
	queue    *events.Queue

	pending *selection
}

// NewProgressionSystem creates the progression engine.
func NewProgressionSystem(provider *content.Provider, queue *events.Queue) *ProgressionSystem {
	return &ProgressionSystem{provider: provider, queue: queue}
}

// Priority returns the system's priority (after waves).
func (s *ProgressionSystem) Priority() int {
	return 70
}

// SelectionActive reports whether notes should route to the bonus
// matcher instead of the lanes.
func (s *ProgressionSystem) SelectionActive() bool {
	return s.pending != nil
}

// SubmitNote feeds one pitch class to every pending option matcher.
// The first option to fully match commits; remaining progress is
// discarded with the set.
func (s *ProgressionSystem) SubmitNote(w *engine.World, pc core.PitchClass) {
	if s.pending == nil {
		return
	}
	for i, opt := range s.pending.options {
		idx := opt.Chord.Index(pc)
		if idx < 0 {
			continue
		}
		if _, done := s.pending.matched[i][idx]; done {
			continue
		}
		s.pending.matched[i][idx] = struct{}{}
		if len(s.pending.matched[i]) == opt.Chord.Size() {
			s.commit(w, i, false)
			return
		}
	}
}

// Update accrues levels from experience and advances the selection
// timeout.
func (s *ProgressionSystem) Update(w *engine.World, dt time.Duration) {
	p := w.Player
	if p == nil {
		return
	}

	for p.Experience >= xpThreshold(p.Level+1) {
		p.Level++
		p.PendingLevelUps++
		s.queue.Push(events.GameEvent{
			Type:      events.EventLevelUp,
			Payload:   &events.LevelUpPayload{NewLevel: p.Level},
			Tick:      w.Frame,
			Timestamp: w.Now,
		})
	}

	if s.pending == nil && p.PendingLevelUps > 0 {
		s.generate(w)
	}

	if s.pending != nil {
		s.pending.remaining -= dt
		if s.pending.remaining <= 0 {
			s.commitFirst(w)
		}
	}
}

// generate requests a fresh option set. With auto-select unlocked the
// fallback choice commits immediately instead of waiting out the
// timer.
func (s *ProgressionSystem) generate(w *engine.World) {
	opts := s.provider.BonusOptions(w.Player.BonusLevels, constant.BonusOptionCount)
	if len(opts) == 0 {
		// Everything is capped: the level-up is spent with no effect.
		w.Player.PendingLevelUps--
		return
	}

	matched := make([]map[int]struct{}, len(opts))
	for i := range matched {
		matched[i] = make(map[int]struct{})
	}
	s.pending = &selection{
		options:   opts,
		matched:   matched,
		remaining: constant.BonusSelectTimeout,
	}

	if w.Player.Skills.AutoSelect {
		s.commitFirst(w)
	}
}

// commitFirst commits the first available option, the deterministic
// timeout fallback.
func (s *ProgressionSystem) commitFirst(w *engine.World) {
	if s.pending == nil || len(s.pending.options) == 0 {
		s.pending = nil
		return
	}
	s.commit(w, 0, true)
}

// commit applies one option, consumes the pending level-up, and
// discards the set. The next set, if any, generates next tick.
func (s *ProgressionSystem) commit(w *engine.World, idx int, auto bool) {
	opt := s.pending.options[idx]
	s.pending = nil

	p := w.Player
	if p.BonusLevels == nil {
		p.BonusLevels = make(map[string]int)
	}
	if opt.Def.MaxLevel > 0 && p.BonusLevels[opt.Def.ID] >= opt.Def.MaxLevel {
		// Cap reached between generation and commit: no-op by rule.
		log.Printf("bonus %s already capped, level-up spent", opt.Def.ID)
	} else {
		s.applyBonus(p, opt.Def)
		p.BonusLevels[opt.Def.ID]++
	}

	if p.PendingLevelUps > 0 {
		p.PendingLevelUps--
	}

	s.queue.Push(events.GameEvent{
		Type:      events.EventBonusSelected,
		Payload:   &events.BonusSelectedPayload{BonusID: opt.Def.ID, Auto: auto},
		Tick:      w.Frame,
		Timestamp: w.Now,
	})
}

// applyBonus mutates player state monotonically: values only grow,
// toggles only flip to true. Unknown rows are logged and skipped so a
// bad content entry cannot poison the run.
func (s *ProgressionSystem) applyBonus(p *component.Player, def content.BonusDef) {
	switch {
	case def.Stat != "":
		s.applyStatBonus(p, def)
	case def.Skill != "":
		ApplySkill(p, def.Skill)
	case def.Magic != "":
		ApplyMagic(p, def.Magic)
	default:
		log.Printf("bonus %s: no effect declared", def.ID)
	}
}

func (s *ProgressionSystem) applyStatBonus(p *component.Player, def content.BonusDef) {
	switch def.Stat {
	case "attack":
		lane, ok := laneByName(def.Lane)
		if !ok {
			log.Printf("bonus %s: unknown lane %q", def.ID, def.Lane)
			return
		}
		p.Stats.AttackLevel[lane] += int(def.Amount)
	case "speed":
		p.Stats.Speed += float32(def.Amount)
	case "defense":
		p.Stats.Defense += int(def.Amount)
	case "max_health":
		gain := int(def.Amount)
		p.Stats.MaxHealth += gain
		p.Stats.Health += gain
	case "luck":
		p.Stats.Luck += int(def.Amount)
	case "cooldown":
		p.Stats.CooldownReduction += def.Amount
		if p.Stats.CooldownReduction > 0.8 {
			p.Stats.CooldownReduction = 0.8
		}
	case "area":
		p.Stats.AreaScale += def.Amount
	case "time":
		p.Stats.TimeScale += def.Amount
	case "multi_hit":
		p.Stats.MultiHitLevel += int(def.Amount)
	default:
		log.Printf("bonus %s: unknown stat %q", def.ID, def.Stat)
	}
}

// ApplySkill unlocks a named skill toggle. Shared with character
// presets, which declare starting skills by the same names.
func ApplySkill(p *component.Player, skill string) {
	switch skill {
	case "auto_collect":
		p.Skills.AutoCollect = true
	case "auto_select":
		p.Skills.AutoSelect = true
	case "haisui_no_jin":
		p.Skills.HaisuiNoJin = true
	case "haisui_always":
		p.Skills.HaisuiNoJin = true
		p.Skills.HaisuiAlways = true
	case "zekkouchou":
		p.Skills.Zekkouchou = true
	case "zekkouchou_always":
		p.Skills.Zekkouchou = true
		p.Skills.ZekkouchouAlways = true
	case "penetration":
		p.Skills.Penetration = true
	default:
		log.Printf("unknown skill %q", skill)
	}
}

// ApplyMagic unlocks a named lane spell.
func ApplyMagic(p *component.Player, magic string) {
	switch magic {
	case "lightning":
		p.Magics.Lightning = true
	case "firewall":
		p.Magics.Firewall = true
	default:
		log.Printf("unknown magic %q", magic)
	}
}

// SelectionView builds the render view of the pending set, nil when
// no selection is active.
func (s *ProgressionSystem) SelectionView(p *component.Player) *engine.SelectionView {
	if s.pending == nil {
		return nil
	}
	v := &engine.SelectionView{
		TimerFrac: float64(s.pending.remaining) / float64(constant.BonusSelectTimeout),
		Pending:   p.PendingLevelUps,
	}
	for i, opt := range s.pending.options {
		v.Options = append(v.Options, engine.BonusOptionView{
			ID:       opt.Def.ID,
			Name:     opt.Def.Name,
			Chord:    opt.Chord.Name,
			Progress: float64(len(s.pending.matched[i])) / float64(opt.Chord.Size()),
		})
	}
	return v
}

// laneByName maps a content table lane letter to a lane.
func laneByName(name string) (core.Lane, bool) {
	switch name {
	case "A":
		return core.LaneA, true
	case "B":
		return core.LaneB, true
	case "C":
		return core.LaneC, true
	case "D":
		return core.LaneD, true
	default:
		return 0, false
	}
}

// xpThreshold is the cumulative experience required to reach a level.
func xpThreshold(level int) int {
	if level <= 1 {
		return 0
	}
	// Triangular growth: each level costs XPLevelBase more than the last.
	n := level - 1
	return constant.XPLevelBase * n * (n + 1) / 2
}
