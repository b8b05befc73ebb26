package game

import (
	"golang.org/x/exp/rand"
)

// MovementKind selects a movement behavior. The zero value is MoveNone, so
// an entity without a strategy needs no special casing.
type MovementKind int

const (
	MoveNone MovementKind = iota
	MoveStatic
	MoveRandom
)

// Movement turns elapsed time into occasional one-cell displacements using
// a countdown timer. MoveStatic always emits the same fixed direction;
// MoveRandom re-rolls a fresh random direction each time the timer fires;
// MoveNone never fires at all.
type Movement struct {
	Kind     MovementKind
	dir      Direction
	timer    float64
	cooldown float64
	rng      *rand.Rand
}

// StaticMovement steps in one fixed direction every cooldown seconds.
// The timer starts expired, so the first Apply with positive elapsed time
// already produces a step.
func StaticMovement(dir Direction, cooldown float64) Movement {
	return Movement{Kind: MoveStatic, dir: dir, cooldown: cooldown}
}

// RandomMovement steps in a newly rolled direction every cooldown seconds.
// The given direction is only a placeholder: it is re-rolled before the
// first step is emitted.
func RandomMovement(dir Direction, cooldown float64, rng *rand.Rand) Movement {
	return Movement{Kind: MoveRandom, dir: dir, cooldown: cooldown, rng: rng}
}

// RandomDirection rolls a uniformly random direction. Repeating the current
// direction is allowed.
func RandomDirection(rng *rand.Rand) Direction {
	return Direction(rng.Intn(4))
}

// Apply advances the countdown by elapsed seconds and returns the
// displacement to take now, if any. The timer replenishes by adding the
// cooldown instead of resetting to it, so overshoot from an oversized frame
// carries into the next interval and the long-run step rate stays stable.
// At most one displacement is emitted per call, however large elapsed is.
func (m *Movement) Apply(elapsedSeconds float64) (Position, bool) {
	if m.Kind == MoveNone {
		return Position{}, false
	}
	m.timer -= elapsedSeconds
	if m.timer >= 0 {
		return Position{}, false
	}
	m.timer += m.cooldown
	if m.Kind == MoveRandom {
		m.dir = RandomDirection(m.rng)
	}
	return m.dir.Vector(), true
}
