package systems

import (
	"time"

	"github.com/soramame/chordfall/component"
)

// enemyBaseStats is the pre-scaling stat row for one enemy type.
// Wave stat multipliers scale health, damage and experience at spawn.
type enemyBaseStats struct {
	Health     int
	Speed      float32
	Contact    int
	Defense    int
	Experience int
	Ranged     bool
	Boss       bool
	OnHit      *component.StatusApplication
}

var enemyBase = map[component.EnemyType]enemyBaseStats{
	component.EnemySlime: {
		Health: 20, Speed: 40, Contact: 5, Experience: 2,
	},
	component.EnemyBat: {
		Health: 12, Speed: 80, Contact: 4, Experience: 2,
	},
	component.EnemyWolf: {
		Health: 35, Speed: 95, Contact: 8, Experience: 4,
	},
	component.EnemyGolem: {
		Health: 90, Speed: 25, Contact: 14, Defense: 10, Experience: 8,
	},
	component.EnemySpecter: {
		Health: 50, Speed: 55, Contact: 6, Experience: 7, Ranged: true,
		OnHit: &component.StatusApplication{
			Kind:     component.StatusSlow,
			Duration: 3 * time.Second,
			Level:    1,
		},
	},
	component.EnemyDragon: {
		Health: 400, Speed: 45, Contact: 20, Defense: 15, Experience: 50,
		Ranged: true, Boss: true,
	},
}
