package game

// Position represents a coordinate on the grid. It doubles as a displacement
// vector, and it is not bounded by construction: whether a position lies on
// the grid is answered by Grid.Contains, never by the type itself.
type Position struct {
	X int
	Y int
}

// Add returns the position shifted by the given displacement.
func (p Position) Add(d Position) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// Direction represents a movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirLeft
	DirUp
	DirDown
)

// Vector returns the unit displacement for the direction. Y grows downward
// (screen coordinates).
func (d Direction) Vector() Position {
	switch d {
	case DirRight:
		return Position{X: 1, Y: 0}
	case DirLeft:
		return Position{X: -1, Y: 0}
	case DirUp:
		return Position{X: 0, Y: -1}
	case DirDown:
		return Position{X: 0, Y: 1}
	default:
		return Position{}
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirRight:
		return DirLeft
	case DirLeft:
		return DirRight
	case DirUp:
		return DirDown
	default:
		return DirUp
	}
}

// EntityKind tags what a grid entity is. Rendering picks glyphs and colors
// by kind; the session picks collision meaning by it.
type EntityKind int

const (
	KindFood EntityKind = iota
	KindBullet
	KindTrap
	KindEnemy
)

// Key identifies a discrete input the simulation reacts to. Mapping real
// keyboard events onto these is the front end's job.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyFire
	KeyConfirm
)

// InputEvent reports what a key press did, so the front end can surface
// player-facing notices without the core knowing how they are displayed.
type InputEvent int

const (
	InputIgnored InputEvent = iota
	InputTurned
	InputFired
	InputNoAmmo
	InputRestarted
)

// Config holds configurable parameters for a game session.
type Config struct {
	Width    int    `toml:"width"`
	Height   int    `toml:"height"`
	MaxAmmo  int    `toml:"max_ammo"`
	TickRate int    `toml:"tick_rate"` // simulation frames per second
	Seed     uint64 `toml:"seed"`      // 0 picks a seed from the wall clock
}

// DefaultConfig returns the classic 32x32 session setup.
func DefaultConfig() Config {
	return Config{
		Width:    32,
		Height:   32,
		MaxAmmo:  5,
		TickRate: 60,
		Seed:     0,
	}
}
