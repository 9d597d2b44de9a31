package component

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/soramame/chordfall/core"
)

// Skills are permanent toggles unlocked through level-up bonuses.
// Values only ever flip from false to true.
type Skills struct {
	AutoCollect      bool // coins convert to experience without pickup
	AutoSelect       bool // level-up fallback commits immediately
	HaisuiNoJin      bool // attack surge at critically low health
	HaisuiAlways     bool // haisui active regardless of health
	Zekkouchou       bool // bonus while at full health
	ZekkouchouAlways bool // zekkouchou active regardless of health
	Penetration      bool // ranged shots pass through enemies
}

// Magics are the unlocked C/D lane spells.
type Magics struct {
	Lightning bool // lane C
	Firewall  bool // lane D
}

// Player is the single session-lifetime entity.
type Player struct {
	ID  core.Entity
	Pos mgl32.Vec2

	// Facing is the last non-none movement direction; attacks aim here.
	Facing core.Direction
	// Move is the current movement intent, DirNone when idle.
	Move core.Direction

	Stats   Stats
	Effects []StatusEffect
	Mods    Modifiers

	Level           int
	Experience      int
	PendingLevelUps int
	Skills          Skills
	Magics          Magics

	// BonusLevels counts times each bonus id was taken, for max caps.
	BonusLevels map[string]int

	// HitCooldown is the remaining contact damage immunity.
	HitCooldown time.Duration
}
