package content

import (
	"time"

	"github.com/soramame/chordfall/constant"
)

// Compiled-in content tables, used when no yaml file is present.
// The stage rows follow the fantasy stage table: each wave widens the
// chord pool from plain triads toward full seventh chords.

var defaultStages = []StageConfig{
	{
		Name:           "grassland gate",
		Quota:          constant.WaveQuota,
		Duration:       constant.WaveDuration,
		SpawnInterval:  constant.WaveSpawnInterval,
		SpawnCount:     constant.WaveSpawnCount,
		StatMultiplier: 1.0,
		Chords:         []string{"C", "F", "G", "Am"},
		Enemies:        []string{"slime", "bat"},
	},
	{
		Name:           "frozen forest",
		Quota:          25,
		Duration:       constant.WaveDuration,
		SpawnInterval:  1800 * time.Millisecond,
		SpawnCount:     1,
		StatMultiplier: 1.2,
		Chords:         []string{"C", "Dm", "Em", "F", "G", "Am"},
		Enemies:        []string{"slime", "bat", "wolf"},
	},
	{
		Name:           "volcanic path",
		Quota:          30,
		Duration:       constant.WaveDuration,
		SpawnInterval:  1500 * time.Millisecond,
		SpawnCount:     2,
		StatMultiplier: 1.45,
		Chords:         []string{"Cdim", "Caug", "Csus4", "Fsus4", "Gsus4", "Adim"},
		Enemies:        []string{"wolf", "golem"},
	},
	{
		Name:           "forgotten graveyard",
		Quota:          35,
		Duration:       75 * time.Second,
		SpawnInterval:  1200 * time.Millisecond,
		SpawnCount:     2,
		StatMultiplier: 1.7,
		Chords:         []string{"CM7", "Dm7", "Em7", "FM7", "G7", "Am7"},
		Enemies:        []string{"golem", "specter"},
	},
	{
		Name:           "gate of the underworld",
		Quota:          40,
		Duration:       90 * time.Second,
		SpawnInterval:  time.Second,
		SpawnCount:     3,
		StatMultiplier: 2.0,
		Chords:         []string{"Cm/maj7", "Ddim7", "Eaug7", "Fm7b5", "G7sus4", "Am7b5"},
		Enemies:        []string{"specter", "dragon"},
	},
}

var defaultBonuses = []BonusDef{
	{ID: "atk_a", Name: "Ranged Attack Up", MaxLevel: 5, Stat: "attack", Lane: "A", Amount: 1},
	{ID: "atk_b", Name: "Melee Attack Up", MaxLevel: 5, Stat: "attack", Lane: "B", Amount: 1},
	{ID: "atk_c", Name: "Lightning Up", MaxLevel: 5, Stat: "attack", Lane: "C", Amount: 1},
	{ID: "atk_d", Name: "Firewall Up", MaxLevel: 5, Stat: "attack", Lane: "D", Amount: 1},
	{ID: "speed", Name: "Move Speed Up", MaxLevel: 4, Stat: "speed", Amount: 12},
	{ID: "defense", Name: "Defense Up", MaxLevel: 5, Stat: "defense", Amount: 2},
	{ID: "max_health", Name: "Max Health Up", MaxLevel: 5, Stat: "max_health", Amount: 20},
	{ID: "luck", Name: "Luck Up", MaxLevel: 5, Stat: "luck", Amount: 2},
	{ID: "cooldown", Name: "Cooldown Cut", MaxLevel: 4, Stat: "cooldown", Amount: 0.1},
	{ID: "area", Name: "Area Up", MaxLevel: 4, Stat: "area", Amount: 0.15},
	{ID: "time", Name: "Effect Time Up", MaxLevel: 4, Stat: "time", Amount: 0.2},
	{ID: "multi_hit", Name: "Multi Hit", MaxLevel: 3, Stat: "multi_hit", Amount: 1},
	{ID: "auto_collect", Name: "Coin Magnet", MaxLevel: 1, Skill: "auto_collect"},
	{ID: "auto_select", Name: "Quick Choice", MaxLevel: 1, Skill: "auto_select"},
	{ID: "haisui", Name: "Haisui no Jin", MaxLevel: 1, Skill: "haisui_no_jin"},
	{ID: "haisui_always", Name: "Haisui (Always)", MaxLevel: 1, Skill: "haisui_always"},
	{ID: "zekkouchou", Name: "Zekkouchou", MaxLevel: 1, Skill: "zekkouchou"},
	{ID: "zekkouchou_always", Name: "Zekkouchou (Always)", MaxLevel: 1, Skill: "zekkouchou_always"},
	{ID: "penetration", Name: "Piercing Shot", MaxLevel: 1, Skill: "penetration"},
	{ID: "magic_lightning", Name: "Learn Lightning", MaxLevel: 1, Magic: "lightning"},
	{ID: "magic_firewall", Name: "Learn Firewall", MaxLevel: 1, Magic: "firewall"},
}

var defaultCharacters = []CharacterConfig{
	{
		Name:      "bard",
		MaxHealth: constant.PlayerBaseHealth,
		Speed:     float64(constant.PlayerBaseSpeed),
		Defense:   2,
		Luck:      3,
		Attack:    []int{1, 1, 0, 0},
	},
	{
		Name:      "conductor",
		MaxHealth: 80,
		Speed:     float64(constant.PlayerBaseSpeed) * 1.1,
		Defense:   1,
		Luck:      5,
		Attack:    []int{1, 0, 1, 0},
		Magics:    []string{"lightning"},
	},
}
