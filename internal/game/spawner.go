package game

import (
	"golang.org/x/exp/rand"
)

// TrapSpawner drops a trap on a random cell every cooldown seconds. It does
// not tighten its own pace: the session adjusts the cooldown from outside
// as the run gets older.
type TrapSpawner struct {
	timer    float64
	cooldown float64
	grid     Grid
	rng      *rand.Rand
}

// NewTrapSpawner creates a spawner whose timer starts expired, so the first
// trap appears on the first update.
func NewTrapSpawner(grid Grid, cooldown float64, rng *rand.Rand) *TrapSpawner {
	return &TrapSpawner{cooldown: cooldown, grid: grid, rng: rng}
}

// SetCooldown changes the spawn interval. The running countdown keeps
// whatever time it has left; only future replenishments use the new value.
func (t *TrapSpawner) SetCooldown(seconds float64) {
	t.cooldown = seconds
}

// Update advances the countdown and, when it fires, returns the cell for a
// new trap. Replenishment follows the same carryover rule as
// Movement.Apply: the cooldown is added onto the overshot timer.
func (t *TrapSpawner) Update(elapsedSeconds float64) (Position, bool) {
	t.timer -= elapsedSeconds
	if t.timer >= 0 {
		return Position{}, false
	}
	t.timer += t.cooldown
	return t.grid.RandomCell(t.rng), true
}
