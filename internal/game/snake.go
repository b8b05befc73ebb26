package game

// snakeMoveCooldown is the fixed interval between snake steps in seconds.
const snakeMoveCooldown = 0.1

// Snake is the player: an ordered list of body segments with the tail
// first and the head last, plus buffered steering and an ammo pool.
type Snake struct {
	Positions []Position
	dir       Direction
	nextDir   Direction
	moveTimer float64
	Ammo      int
	MaxAmmo   int
}

// NewSnake creates a single-segment snake facing right with an empty ammo
// pool. The move timer starts expired, so the first update already steps.
func NewSnake(start Position, maxAmmo int) *Snake {
	return &Snake{
		Positions: []Position{start},
		dir:       DirRight,
		nextDir:   DirRight,
		MaxAmmo:   maxAmmo,
	}
}

// Head returns the leading segment. The body is never empty while the
// session drives the snake; an empty body means a bug in the update logic,
// not a recoverable condition.
func (s *Snake) Head() Position {
	if len(s.Positions) == 0 {
		panic("game: snake has no body")
	}
	return s.Positions[len(s.Positions)-1]
}

// TrySetDirection buffers a steering request for the next step. A request
// to reverse straight into the body, i.e. the opposite of the direction of
// the last committed step, is silently dropped. Requests between two steps
// overwrite each other; only the latest one counts.
func (s *Snake) TrySetDirection(d Direction) {
	if s.dir.Opposite() != d {
		s.nextDir = d
	}
}

// Update advances the move countdown and reports whether the snake stepped.
// On a step the buffered direction is committed and a new head appended.
// The tail is not trimmed here: growing is the default, and the caller
// removes the oldest segment when nothing was eaten.
func (s *Snake) Update(elapsedSeconds float64) bool {
	s.moveTimer -= elapsedSeconds
	if s.moveTimer >= 0 {
		return false
	}
	s.moveTimer += snakeMoveCooldown
	s.dir = s.nextDir
	s.Positions = append(s.Positions, s.stepAhead())
	return true
}

// RemoveTail drops the oldest body segment.
func (s *Snake) RemoveTail() {
	s.Positions = s.Positions[1:]
}

// SelfCollision reports whether the head overlaps any other body segment.
// It must run right after a step and before any tail trim: trimming can
// hide an overlap that existed at the moment of the step.
func (s *Snake) SelfCollision() bool {
	head := s.Head()
	for _, p := range s.Positions[:len(s.Positions)-1] {
		if p == head {
			return true
		}
	}
	return false
}

// TryShoot spends one round and returns the spawn cell for a bullet (one
// step ahead of the head) together with its heading. It reports false with
// no state change when the pool is empty; that is a player-facing notice,
// not an error. The heading is the last committed step direction, so a
// buffered turn that has not happened yet does not bend the shot.
func (s *Snake) TryShoot() (Position, Direction, bool) {
	if s.Ammo <= 0 {
		return Position{}, 0, false
	}
	s.Ammo--
	return s.stepAhead(), s.dir, true
}

// GainAmmo adds rounds to the pool, saturating at the configured maximum.
func (s *Snake) GainAmmo(amount int) {
	s.Ammo += amount
	if s.Ammo > s.MaxAmmo {
		s.Ammo = s.MaxAmmo
	}
}

// stepAhead is the cell one step from the head along the committed
// direction.
func (s *Snake) stepAhead() Position {
	return s.Head().Add(s.dir.Vector())
}
