package game

import (
	"golang.org/x/exp/rand"
)

// Movement cooldowns in seconds. Lower means faster.
const (
	bulletMoveCooldown = 0.07
	enemyMoveCooldown  = 0.3
)

// Entity is a positioned object on the grid: food, bullet, trap or enemy.
// Entities without a movement strategy stay where they were put.
type Entity struct {
	Pos      Position
	Kind     EntityKind
	movement Movement
}

// NewFood places an immobile piece of food.
func NewFood(pos Position) Entity {
	return Entity{Pos: pos, Kind: KindFood}
}

// NewBullet spawns a bullet flying in a fixed direction.
func NewBullet(pos Position, dir Direction) Entity {
	return Entity{
		Pos:      pos,
		Kind:     KindBullet,
		movement: StaticMovement(dir, bulletMoveCooldown),
	}
}

// NewTrap places an immobile trap.
func NewTrap(pos Position) Entity {
	return Entity{Pos: pos, Kind: KindTrap}
}

// NewEnemy spawns an enemy that re-rolls its heading on every step.
func NewEnemy(pos Position, dir Direction, rng *rand.Rand) Entity {
	return Entity{
		Pos:      pos,
		Kind:     KindEnemy,
		movement: RandomMovement(dir, enemyMoveCooldown, rng),
	}
}

// Update advances the entity's movement timer and applies the resulting
// displacement, if one fired. Bounds are deliberately not checked here:
// what leaving the grid means differs per kind and is the session's call.
func (e *Entity) Update(elapsedSeconds float64) {
	if d, ok := e.movement.Apply(elapsedSeconds); ok {
		e.Pos = e.Pos.Add(d)
	}
}
