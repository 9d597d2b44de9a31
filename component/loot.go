package component

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/soramame/chordfall/core"
)

// Coin carries experience; picked up by proximity or auto-collect.
type Coin struct {
	ID         core.Entity
	Pos        mgl32.Vec2
	Experience int
	Age        time.Duration
	Lifetime   time.Duration

	// Consumed marks the coin for end-of-tick removal after pickup.
	Consumed bool
}

// ItemType is the closed set of droppable pickups.
type ItemType int

const (
	ItemHeal ItemType = iota
	ItemAtkBoost
	ItemDefBoost
	ItemSpeedBoost
	ItemRegen

	// ItemTypeCount bounds drop-table rolls; keep it last.
	ItemTypeCount
)

// String returns the item name used by drop tables.
func (t ItemType) String() string {
	switch t {
	case ItemHeal:
		return "heal"
	case ItemAtkBoost:
		return "atk_boost"
	case ItemDefBoost:
		return "def_boost"
	case ItemSpeedBoost:
		return "speed_boost"
	case ItemRegen:
		return "regen"
	default:
		return "unknown"
	}
}

// DroppedItem is a timed pickup rolled on enemy death.
type DroppedItem struct {
	ID       core.Entity
	Pos      mgl32.Vec2
	Type     ItemType
	Age      time.Duration
	Lifetime time.Duration

	// Consumed marks the item for end-of-tick removal after pickup.
	Consumed bool
}
