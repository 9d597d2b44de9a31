package content

import (
	"fmt"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// StageConfig is one wave difficulty row. Durations are seconds in
// yaml and converted at load.
type StageConfig struct {
	Name           string        `yaml:"name"`
	Quota          int           `yaml:"quota"`
	Duration       time.Duration `yaml:"-"`
	DurationSec    float64       `yaml:"duration"`
	SpawnInterval  time.Duration `yaml:"-"`
	SpawnIntSec    float64       `yaml:"spawn_interval"`
	SpawnCount     int           `yaml:"spawn_count"`
	StatMultiplier float64       `yaml:"stat_multiplier"`
	Chords         []string      `yaml:"chords"`
	Enemies        []string      `yaml:"enemies"`
}

// BonusDef is one permanent level-up upgrade. Exactly one of Stat,
// Skill, Magic is set.
type BonusDef struct {
	ID       string  `yaml:"id"`
	Name     string  `yaml:"name"`
	MaxLevel int     `yaml:"max_level"`
	Stat     string  `yaml:"stat,omitempty"`
	Lane     string  `yaml:"lane,omitempty"`
	Amount   float64 `yaml:"amount,omitempty"`
	Skill    string  `yaml:"skill,omitempty"`
	Magic    string  `yaml:"magic,omitempty"`
}

// CharacterConfig is a per-character starting preset.
type CharacterConfig struct {
	Name      string   `yaml:"name"`
	MaxHealth int      `yaml:"max_health"`
	Speed     float64  `yaml:"speed"`
	Defense   int      `yaml:"defense"`
	Luck      int      `yaml:"luck"`
	Attack    []int    `yaml:"attack"` // per lane A..D
	Skills    []string `yaml:"skills"`
	Magics    []string `yaml:"magics"`
}

// fileConfig is the on-disk schema.
type fileConfig struct {
	Stages     []StageConfig     `yaml:"stages"`
	Bonuses    []BonusDef        `yaml:"bonuses"`
	Characters []CharacterConfig `yaml:"characters"`
}

// LoadConfig reads a yaml content file. A missing file is not an
// error: callers fall back to the compiled-in defaults.
func LoadConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("content file %s not found, using defaults", path)
			return nil, nil
		}
		return nil, fmt.Errorf("read content file: %w", err)
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse content file %s: %w", path, err)
	}

	for i := range cfg.Stages {
		s := &cfg.Stages[i]
		s.Duration = time.Duration(s.DurationSec * float64(time.Second))
		s.SpawnInterval = time.Duration(s.SpawnIntSec * float64(time.Second))
	}
	return &cfg, nil
}
