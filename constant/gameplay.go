package constant

import "time"

// Code slot timing.
const (
	// SlotTimeout is the countdown a lane runs after a chord is assigned.
	SlotTimeout = 10 * time.Second

	// Magic lane cooldowns after a successful cast.
	MagicCooldownC = 8 * time.Second
	MagicCooldownD = 12 * time.Second
)

// Player baseline.
const (
	PlayerBaseSpeed  float32 = 120 // world units per second
	PlayerBaseHealth         = 100

	// PlayerHitCooldown is the immunity window after taking contact damage.
	PlayerHitCooldown = 800 * time.Millisecond
)

// Pickups and drops.
const (
	PickupRadius float32 = 24
	CoinLifetime         = 20 * time.Second
	ItemLifetime         = 15 * time.Second

	// BaseDropChance is the item roll probability before luck scaling.
	BaseDropChance = 0.05
	// LuckDropStep is the added drop probability per luck point.
	LuckDropStep = 0.01
)

// Progression.
const (
	// XPLevelBase scales the per-level experience threshold.
	XPLevelBase = 10

	// BonusOptionCount is the number of options offered per level-up.
	BonusOptionCount = 3

	// BonusSelectTimeout bounds a level-up selection before the
	// first available option is committed automatically.
	BonusSelectTimeout = 10 * time.Second
)

// Wave defaults, used when the stage table supplies no override.
const (
	WaveQuota         = 20
	WaveDuration      = 60 * time.Second
	WaveSpawnInterval = 2 * time.Second
	WaveSpawnCount    = 1

	// WaveQuotaGrowth and WaveStatGrowth scale difficulty per cleared wave.
	WaveQuotaGrowth = 1.25
	WaveStatGrowth  = 1.15
)

// Visual event lifetimes. Purely presentational but clock-owned so
// pause semantics stay exact.
const (
	DamageTextDuration = 800 * time.Millisecond
	ShockwaveDuration  = 400 * time.Millisecond
	LightningDuration  = 500 * time.Millisecond
)
