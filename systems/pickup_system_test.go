package systems

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/soramame/chordfall/component"
	"github.com/soramame/chordfall/constant"
	"github.com/soramame/chordfall/engine"
	"github.com/soramame/chordfall/events"
)

func newPickupFixture() (*PickupSystem, *engine.World, *events.Queue) {
	w := engine.NewWorld(1)
	w.Player = &component.Player{
		ID:    w.NextID(),
		Pos:   mgl32.Vec2{480, 270},
		Stats: component.Stats{MaxHealth: 100, Health: 100, TimeScale: 1},
		Mods:  component.NeutralModifiers(),
	}
	queue := events.NewQueue()
	return NewPickupSystem(queue), w, queue
}

func TestCoinPickupInRadius(t *testing.T) {
	s, w, _ := newPickupFixture()
	near := &component.Coin{ID: w.NextID(), Pos: w.Player.Pos, Experience: 5, Lifetime: constant.CoinLifetime}
	far := &component.Coin{ID: w.NextID(), Pos: mgl32.Vec2{0, 0}, Experience: 5, Lifetime: constant.CoinLifetime}
	w.Coins = append(w.Coins, near, far)

	s.Update(w, 33*time.Millisecond)

	if !near.Consumed {
		t.Errorf("Expected in-radius coin consumed")
	}
	if far.Consumed {
		t.Errorf("Expected out-of-radius coin untouched")
	}
	if w.Player.Experience != 5 {
		t.Errorf("Expected 5 experience, got %d", w.Player.Experience)
	}
}

func TestAutoCollectPullsAllCoins(t *testing.T) {
	s, w, _ := newPickupFixture()
	w.Player.Skills.AutoCollect = true
	w.Coins = append(w.Coins,
		&component.Coin{ID: w.NextID(), Pos: mgl32.Vec2{0, 0}, Experience: 3, Lifetime: constant.CoinLifetime},
		&component.Coin{ID: w.NextID(), Pos: mgl32.Vec2{900, 500}, Experience: 4, Lifetime: constant.CoinLifetime},
	)

	s.Update(w, 33*time.Millisecond)

	if w.Player.Experience != 7 {
		t.Errorf("Expected 7 experience from auto collect, got %d", w.Player.Experience)
	}
}

func TestHealItemCapsAtMax(t *testing.T) {
	s, w, _ := newPickupFixture()
	w.Player.Stats.Health = 90
	w.Items = append(w.Items, &component.DroppedItem{
		ID: w.NextID(), Pos: w.Player.Pos, Type: component.ItemHeal, Lifetime: constant.ItemLifetime,
	})

	s.Update(w, 33*time.Millisecond)

	if w.Player.Stats.Health != 100 {
		t.Errorf("Expected heal capped at max, got %d", w.Player.Stats.Health)
	}
}

func TestBuffItemRoutesThroughStatus(t *testing.T) {
	s, w, queue := newPickupFixture()
	w.Items = append(w.Items, &component.DroppedItem{
		ID: w.NextID(), Pos: w.Player.Pos, Type: component.ItemAtkBoost, Lifetime: constant.ItemLifetime,
	})

	s.Update(w, 33*time.Millisecond)

	if len(w.Player.Effects) != 1 || w.Player.Effects[0].Kind != component.StatusAtkUp {
		t.Fatalf("Expected an attack up effect, got %v", w.Player.Effects)
	}

	picked := false
	for _, evt := range queue.Consume() {
		if evt.Type == events.EventItemPickedUp {
			picked = true
		}
	}
	if !picked {
		t.Errorf("Expected an item picked up event")
	}

	// Re-pickup refreshes the same instance instead of stacking.
	w.Items = append(w.Items, &component.DroppedItem{
		ID: w.NextID(), Pos: w.Player.Pos, Type: component.ItemAtkBoost, Lifetime: constant.ItemLifetime,
	})
	s.Update(w, 33*time.Millisecond)
	if len(w.Player.Effects) != 1 {
		t.Errorf("Expected one effect instance after refresh, got %d", len(w.Player.Effects))
	}
}

func TestRegenItemStartsHealOverTime(t *testing.T) {
	s, w, _ := newPickupFixture()
	w.Player.Stats.Health = 40
	w.Items = append(w.Items, &component.DroppedItem{
		ID: w.NextID(), Pos: w.Player.Pos, Type: component.ItemRegen, Lifetime: constant.ItemLifetime,
	})

	s.Update(w, 33*time.Millisecond)

	if len(w.Player.Effects) != 1 || w.Player.Effects[0].Kind != component.StatusRegen {
		t.Fatalf("Expected a regen effect, got %v", w.Player.Effects)
	}

	NewStatusSystem().Update(w, time.Second)
	if w.Player.Stats.Health != 40+constant.RegenHealPerSecond {
		t.Errorf("Expected %d health after one second of regen, got %d",
			40+constant.RegenHealPerSecond, w.Player.Stats.Health)
	}
}

func TestDecayRemovesMarkedEntities(t *testing.T) {
	w := engine.NewWorld(1)
	w.Enemies = append(w.Enemies,
		&component.Enemy{ID: w.NextID(), Dead: true},
		&component.Enemy{ID: w.NextID()},
	)
	w.Projectiles = append(w.Projectiles,
		&component.Projectile{ID: w.NextID(), Spent: true},
		&component.Projectile{ID: w.NextID()},
	)
	w.Coins = append(w.Coins,
		&component.Coin{ID: w.NextID(), Consumed: true, Lifetime: constant.CoinLifetime},
		&component.Coin{ID: w.NextID(), Lifetime: constant.CoinLifetime},
	)

	NewDecaySystem().Update(w, 33*time.Millisecond)

	if len(w.Enemies) != 1 {
		t.Errorf("Expected 1 enemy after cull, got %d", len(w.Enemies))
	}
	if len(w.Projectiles) != 1 {
		t.Errorf("Expected 1 projectile after cull, got %d", len(w.Projectiles))
	}
	if len(w.Coins) != 1 {
		t.Errorf("Expected 1 coin after cull, got %d", len(w.Coins))
	}
}

func TestDecayExpiresCoinsByAge(t *testing.T) {
	w := engine.NewWorld(1)
	w.Coins = append(w.Coins, &component.Coin{ID: w.NextID(), Lifetime: time.Second})

	d := NewDecaySystem()
	d.Update(w, 900*time.Millisecond)
	if len(w.Coins) != 1 {
		t.Fatalf("Expected coin alive before lifetime, got %d", len(w.Coins))
	}
	d.Update(w, 200*time.Millisecond)
	if len(w.Coins) != 0 {
		t.Errorf("Expected coin expired after lifetime, got %d", len(w.Coins))
	}
}
