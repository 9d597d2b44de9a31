// Package game wires the simulation together: one Game owns the
// world, the systems, the content provider, and the event queue, and
// exposes a single Tick entry point to the driver.
package game

import (
	"sort"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"github.com/soramame/chordfall/component"
	"github.com/soramame/chordfall/constant"
	"github.com/soramame/chordfall/content"
	"github.com/soramame/chordfall/core"
	"github.com/soramame/chordfall/engine"
	"github.com/soramame/chordfall/events"
	"github.com/soramame/chordfall/systems"
)

// Config selects the session's content, character, and rng seed.
type Config struct {
	Seed        int64
	Character   string
	ContentPath string // optional yaml content file
}

// Game is the simulation loop. The driver calls Tick at a steady
// rate; pausing is simply not calling Tick.
type Game struct {
	World   *engine.World
	Queue   *events.Queue
	Input   *engine.InputBuffer
	Session uuid.UUID

	provider    *content.Provider
	slots       *systems.SlotSystem
	progression *systems.ProgressionSystem
	waves       *systems.WaveSystem
	resolver    *systems.AttackResolver

	pass []engine.System

	over       bool
	overReason string
}

// New builds a session: world, player preset, systems, first wave.
func New(cfg Config) (*Game, error) {
	w := engine.NewWorld(cfg.Seed)
	queue := events.NewQueue()

	var provider *content.Provider
	var err error
	if cfg.ContentPath != "" {
		provider, err = content.LoadProvider(cfg.ContentPath, w.Rng)
		if err != nil {
			return nil, err
		}
	} else {
		provider = content.NewProvider(w.Rng)
	}

	g := &Game{
		World:       w,
		Queue:       queue,
		Input:       engine.NewInputBuffer(),
		Session:     uuid.New(),
		provider:    provider,
		slots:       systems.NewSlotSystem(provider, queue),
		progression: systems.NewProgressionSystem(provider, queue),
		waves:       systems.NewWaveSystem(provider, queue),
		resolver:    systems.NewAttackResolver(),
	}

	g.spawnPlayer(provider.Character(cfg.Character))

	g.pass = []engine.System{
		g.slots,
		systems.NewStatusSystem(),
		systems.NewMovementSystem(),
		systems.NewCombatSystem(queue),
		systems.NewPickupSystem(queue),
		g.waves,
		g.progression,
		systems.NewDecaySystem(),
	}
	sort.Slice(g.pass, func(i, j int) bool {
		return g.pass[i].Priority() < g.pass[j].Priority()
	})

	g.waves.StartWave(w, 1)
	return g, nil
}

// spawnPlayer builds the player from a character preset.
func (g *Game) spawnPlayer(char content.CharacterConfig) {
	w := g.World

	var attack [core.LaneCount]int
	for i := 0; i < len(char.Attack) && i < int(core.LaneCount); i++ {
		attack[i] = char.Attack[i]
	}

	p := &component.Player{
		ID:     w.NextID(),
		Pos:    mgl32.Vec2{constant.MapWidth / 2, constant.MapHeight / 2},
		Facing: core.DirS,
		Stats: component.Stats{
			AttackLevel: attack,
			Speed:       float32(char.Speed),
			Defense:     char.Defense,
			MaxHealth:   char.MaxHealth,
			Health:      char.MaxHealth,
			Luck:        char.Luck,
			AreaScale:   1,
			TimeScale:   1,
		},
		Mods:        component.NeutralModifiers(),
		Level:       1,
		BonusLevels: make(map[string]int),
	}
	for _, skill := range char.Skills {
		systems.ApplySkill(p, skill)
	}
	for _, magic := range char.Magics {
		systems.ApplyMagic(p, magic)
	}
	w.Player = p
}

// Over reports whether a terminal signal ended the session.
func (g *Game) Over() (bool, string) {
	return g.over, g.overReason
}

// Tick advances the simulation by dt and returns the immutable
// snapshot plus the events drained at this tick boundary. Once the
// session is over Tick stops advancing and returns the final state.
func (g *Game) Tick(dt time.Duration) (engine.Snapshot, []events.GameEvent) {
	w := g.World

	if g.over {
		snap := engine.BuildSnapshot(w, g.Session)
		snap.Over = true
		snap.OverReason = g.overReason
		return snap, nil
	}

	w.Frame++
	w.Now += dt

	// Input drain: one batch per tick. While a level-up selection is
	// pending, notes feed the bonus matcher instead of the lanes.
	notes, dir := g.Input.Drain()
	if w.Player != nil {
		w.Player.Move = dir
	}
	for _, pc := range notes {
		g.Queue.Push(events.GameEvent{
			Type:      events.EventNoteSubmitted,
			Payload:   &events.NoteSubmittedPayload{Pitch: pc},
			Tick:      w.Frame,
			Timestamp: w.Now,
		})
		if g.progression.SelectionActive() {
			g.progression.SubmitNote(w, pc)
			continue
		}
		for _, lane := range g.slots.SubmitNote(w, pc) {
			g.resolver.Resolve(w, lane, w.Player.Stats)
			g.slots.Resolve(w, lane)
		}
	}

	for _, sys := range g.pass {
		sys.Update(w, dt)
	}

	drained := g.Queue.Consume()
	for _, evt := range drained {
		if evt.Type == events.EventGameOver {
			g.over = true
			if p, ok := evt.Payload.(*events.GameOverPayload); ok {
				g.overReason = p.Reason
			}
		}
	}

	snap := engine.BuildSnapshot(w, g.Session)
	if w.Player != nil {
		snap.Selection = g.progression.SelectionView(w.Player)
	}
	snap.Over = g.over
	snap.OverReason = g.overReason
	return snap, drained
}
