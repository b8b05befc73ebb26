package game

import (
	"time"

	"golang.org/x/exp/rand"
)

// Trap spawner pacing. After each elapsed-time threshold the session
// switches the spawner to a tighter cooldown; because elapsed time only
// grows, each switch happens exactly once per run.
const (
	trapBaseCooldown   = 5.0
	trapMediumCooldown = 2.0
	trapFastCooldown   = 0.5
	rampMediumAt       = 30.0
	rampFastAt         = 60.0
)

// foodAmmoBonus is how many rounds one piece of food refunds.
const foodAmmoBonus = 3

// Session is one play-through of the game. It owns every entity on the
// grid and is the only place where they interact: entities never see each
// other, they only report their own movement.
//
// A session is driven from the outside, one Update per frame and one
// HandleKey per key press, and is not safe for concurrent use. The front
// end calls it from a single goroutine.
type Session struct {
	cfg     Config
	grid    Grid
	rng     *rand.Rand
	playing bool
	snake   *Snake
	food    Entity
	bullet  *Entity // nil when no bullet is in flight
	traps   []Entity
	enemy   *Entity // nil tolerated everywhere, though Reset always spawns one
	spawner *TrapSpawner
	elapsed float64
}

// NewSession creates a session and starts its first run. A zero seed in
// the config picks one from the wall clock; any other value makes entity
// placement and enemy roaming reproducible.
func NewSession(cfg Config) *Session {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	s := &Session{
		cfg:  cfg,
		grid: Grid{Width: cfg.Width, Height: cfg.Height},
		rng:  rand.New(rand.NewSource(seed)),
	}
	s.Reset()
	return s
}

// Reset throws the previous run away and rebuilds the starting state: a
// one-segment snake on the left edge facing right with no ammo, food on a
// random cell, no bullet, no traps, the enemy at the grid center and the
// spawner back at its base cooldown. The random source is kept, so
// placement stays fresh across restarts.
func (s *Session) Reset() {
	s.playing = true
	s.snake = NewSnake(Position{X: 0, Y: s.grid.Height / 2}, s.cfg.MaxAmmo)
	s.food = NewFood(s.grid.RandomCell(s.rng))
	s.bullet = nil
	s.traps = nil
	enemy := NewEnemy(Position{X: s.grid.Width / 2, Y: s.grid.Height / 2}, DirDown, s.rng)
	s.enemy = &enemy
	s.spawner = NewTrapSpawner(s.grid, trapBaseCooldown, s.rng)
	s.elapsed = 0
}

// Playing reports whether the run is still going.
func (s *Session) Playing() bool {
	return s.playing
}

// Update advances the simulation by dt seconds. After game over it is a
// no-op; the board freezes until the player restarts.
//
// While playing it runs, in this order: the difficulty ramp, the enemy,
// the snake (step, then fatality checks, then food), the bullet, and the
// trap spawner. A fatal step does not cut the tick short — the remaining
// phases still run once, so the tail is trimmed and the bullet flies even
// on the tick the snake dies.
func (s *Session) Update(dt float64) {
	if !s.playing {
		return
	}

	if s.elapsed < rampMediumAt && s.elapsed+dt >= rampMediumAt {
		s.spawner.SetCooldown(trapMediumCooldown)
	}
	if s.elapsed < rampFastAt && s.elapsed+dt >= rampFastAt {
		s.spawner.SetCooldown(trapFastCooldown)
	}
	s.elapsed += dt

	if s.enemy != nil {
		s.enemy.Update(dt)
	}

	if s.snake.Update(dt) {
		head := s.snake.Head()
		if s.isFatal(head) {
			s.gameOver()
		}
		if head == s.food.Pos {
			s.food.Pos = s.grid.RandomCell(s.rng)
			s.snake.GainAmmo(foodAmmoBonus)
		} else {
			s.snake.RemoveTail()
		}
	}

	if s.bullet != nil {
		s.bullet.Update(dt)
		// A bullet passing over food steals it: the food relocates but no
		// ammo is refunded. The bullet itself never despawns, it just
		// keeps flying, even far off the grid.
		if s.bullet.Pos == s.food.Pos {
			s.food.Pos = s.grid.RandomCell(s.rng)
		}
		s.destroyTrapsAt(s.bullet.Pos)
	}

	if pos, ok := s.spawner.Update(dt); ok {
		s.traps = append(s.traps, NewTrap(pos))
	}
}

// HandleKey applies one discrete key press. While playing, direction keys
// buffer a turn and KeyFire spends a round to spawn a bullet one step ahead
// of the head. Firing replaces any bullet already in flight, so at most one
// exists. After game over only KeyConfirm does anything: it starts a fresh
// run.
func (s *Session) HandleKey(k Key) InputEvent {
	if !s.playing {
		if k == KeyConfirm {
			s.Reset()
			return InputRestarted
		}
		return InputIgnored
	}

	switch k {
	case KeyUp:
		s.snake.TrySetDirection(DirUp)
		return InputTurned
	case KeyDown:
		s.snake.TrySetDirection(DirDown)
		return InputTurned
	case KeyLeft:
		s.snake.TrySetDirection(DirLeft)
		return InputTurned
	case KeyRight:
		s.snake.TrySetDirection(DirRight)
		return InputTurned
	case KeyFire:
		pos, dir, ok := s.snake.TryShoot()
		if !ok {
			return InputNoAmmo
		}
		bullet := NewBullet(pos, dir)
		s.bullet = &bullet
		return InputFired
	default:
		return InputIgnored
	}
}

// isFatal reports whether a snake head at pos ends the run: leaving the
// grid, biting the body, stepping on a trap, or touching the enemy.
func (s *Session) isFatal(pos Position) bool {
	if !s.grid.Contains(pos) {
		return true
	}
	if s.snake.SelfCollision() {
		return true
	}
	for _, trap := range s.traps {
		if trap.Pos == pos {
			return true
		}
	}
	return s.enemy != nil && s.enemy.Pos == pos
}

// gameOver freezes the run. Traps are cleared right away so the death
// screen shows the snake, not the minefield that killed it.
func (s *Session) gameOver() {
	s.traps = nil
	s.playing = false
}

// destroyTrapsAt removes every trap sitting on the given cell.
func (s *Session) destroyTrapsAt(pos Position) {
	remaining := make([]Entity, 0, len(s.traps))
	for _, trap := range s.traps {
		if trap.Pos != pos {
			remaining = append(remaining, trap)
		}
	}
	s.traps = remaining
}

// Snapshot is a value copy of everything a renderer needs. Mutating it has
// no effect on the session.
type Snapshot struct {
	Grid    Grid
	Playing bool
	Snake   []Position
	Food    Position
	Bullet  *Position // nil when no bullet is in flight
	Traps   []Position
	Enemy   *Position // nil when no enemy exists
	Ammo    int
	MaxAmmo int
	Elapsed float64
}

// Snapshot returns a deep copy of the render-relevant state. The snake
// body and trap list are copied; bullet and enemy are optional and nil
// when absent.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Grid:    s.grid,
		Playing: s.playing,
		Snake:   make([]Position, len(s.snake.Positions)),
		Food:    s.food.Pos,
		Traps:   make([]Position, 0, len(s.traps)),
		Ammo:    s.snake.Ammo,
		MaxAmmo: s.snake.MaxAmmo,
		Elapsed: s.elapsed,
	}
	copy(snap.Snake, s.snake.Positions)
	for _, trap := range s.traps {
		snap.Traps = append(snap.Traps, trap.Pos)
	}
	if s.bullet != nil {
		pos := s.bullet.Pos
		snap.Bullet = &pos
	}
	if s.enemy != nil {
		pos := s.enemy.Pos
		snap.Enemy = &pos
	}
	return snap
}
