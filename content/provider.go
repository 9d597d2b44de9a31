package content

import (
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/soramame/chordfall/constant"
	"github.com/soramame/chordfall/core"
)

// BonusOption is one level-up choice, gated behind a chord.
type BonusOption struct {
	Def   BonusDef
	Chord *core.Chord
}

// Provider is the content collaborator: a pure data lookup for next
// chords, bonus option sets, stage difficulty rows, and character
// presets. It holds no simulation state beyond the active chord pool.
type Provider struct {
	stages  []StageConfig
	bonuses []BonusDef
	chars   []CharacterConfig

	pool     []*core.Chord
	lastLane [core.LaneCount]*core.Chord

	rng *rand.Rand
}

// NewProvider builds a provider over the compiled-in tables.
// The rng comes from the simulation so runs stay reproducible.
func NewProvider(rng *rand.Rand) *Provider {
	p := &Provider{
		stages:  defaultStages,
		bonuses: defaultBonuses,
		chars:   defaultCharacters,
		rng:     rng,
	}
	p.EnterStage(1)
	return p
}

// LoadProvider builds a provider from a yaml content file, falling
// back to the compiled-in tables for any section the file omits.
func LoadProvider(path string, rng *rand.Rand) (*Provider, error) {
	p := NewProvider(rng)

	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return p, nil
	}

	if len(cfg.Stages) > 0 {
		p.stages = cfg.Stages
	}
	if len(cfg.Bonuses) > 0 {
		p.bonuses = cfg.Bonuses
	}
	if len(cfg.Characters) > 0 {
		p.chars = cfg.Characters
	}
	p.EnterStage(1)
	return p, nil
}

// Stage returns the difficulty row for a 1-based wave number. Waves
// beyond the table extend the last row with compound growth.
func (p *Provider) Stage(n int) StageConfig {
	if n < 1 {
		n = 1
	}
	if n <= len(p.stages) {
		return p.stages[n-1]
	}

	over := n - len(p.stages)
	s := p.stages[len(p.stages)-1]
	s.Quota = int(float64(s.Quota) * math.Pow(constant.WaveQuotaGrowth, float64(over)))
	s.StatMultiplier *= math.Pow(constant.WaveStatGrowth, float64(over))
	interval := time.Duration(float64(s.SpawnInterval) * math.Pow(0.95, float64(over)))
	if interval < 300*time.Millisecond {
		interval = 300 * time.Millisecond
	}
	s.SpawnInterval = interval
	return s
}

// EnterStage rebuilds the active chord pool from the stage row.
// Unparseable symbols are logged and skipped; an empty result keeps
// the previous pool so lanes never starve on a bad content row.
func (p *Provider) EnterStage(n int) {
	s := p.Stage(n)
	pool := make([]*core.Chord, 0, len(s.Chords))
	for _, sym := range s.Chords {
		c, err := ParseChord(sym)
		if err != nil {
			log.Printf("stage %d: %v", n, err)
			continue
		}
		pool = append(pool, c)
	}
	if len(pool) == 0 {
		if len(p.pool) == 0 {
			pool = []*core.Chord{MustChord("C"), MustChord("F"), MustChord("G")}
		} else {
			return
		}
	}
	p.pool = pool
}

// NextChord supplies a lane's replacement chord from the active pool,
// avoiding an immediate repeat when the pool allows it.
func (p *Provider) NextChord(lane core.Lane) *core.Chord {
	if len(p.pool) == 0 {
		return nil
	}
	c := p.pool[p.rng.Intn(len(p.pool))]
	if len(p.pool) > 1 {
		for c == p.lastLane[lane] {
			c = p.pool[p.rng.Intn(len(p.pool))]
		}
	}
	p.lastLane[lane] = c
	return c
}

// BonusOptions assembles a level-up option set: up to n uncapped
// bonuses, each gated behind a chord distinct within the set.
func (p *Provider) BonusOptions(taken map[string]int, n int) []BonusOption {
	eligible := make([]BonusDef, 0, len(p.bonuses))
	for _, b := range p.bonuses {
		if b.MaxLevel > 0 && taken[b.ID] >= b.MaxLevel {
			continue
		}
		eligible = append(eligible, b)
	}
	p.rng.Shuffle(len(eligible), func(i, j int) {
		eligible[i], eligible[j] = eligible[j], eligible[i]
	})
	if len(eligible) > n {
		eligible = eligible[:n]
	}

	opts := make([]BonusOption, 0, len(eligible))
	used := map[string]bool{}
	for _, b := range eligible {
		chord := p.distinctChord(used)
		if chord == nil {
			break
		}
		used[chord.Name] = true
		opts = append(opts, BonusOption{Def: b, Chord: chord})
	}
	return opts
}

// distinctChord draws a pool chord whose name is not yet used.
func (p *Provider) distinctChord(used map[string]bool) *core.Chord {
	unused := make([]*core.Chord, 0, len(p.pool))
	for _, c := range p.pool {
		if !used[c.Name] {
			unused = append(unused, c)
		}
	}
	if len(unused) == 0 {
		return nil
	}
	return unused[p.rng.Intn(len(unused))]
}

// Character returns the named preset, or the first preset when the
// name is unknown.
func (p *Provider) Character(name string) CharacterConfig {
	for _, c := range p.chars {
		if c.Name == name {
			return c
		}
	}
	return p.chars[0]
}
