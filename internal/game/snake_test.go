package game

import (
	"testing"
)

func TestNewSnake(t *testing.T) {
	s := NewSnake(Position{X: 0, Y: 16}, 5)
	if len(s.Positions) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(s.Positions))
	}
	if s.Head() != (Position{X: 0, Y: 16}) {
		t.Errorf("expected head at (0,16), got (%d,%d)", s.Head().X, s.Head().Y)
	}
	if s.Ammo != 0 {
		t.Errorf("expected empty ammo pool, got %d", s.Ammo)
	}
	if s.MaxAmmo != 5 {
		t.Errorf("expected max ammo 5, got %d", s.MaxAmmo)
	}
}

func TestSnakeStepTiming(t *testing.T) {
	s := NewSnake(Position{X: 0, Y: 16}, 5)

	// The move timer starts expired, so the first update already steps.
	if !s.Update(0.01) {
		t.Fatal("first update should step")
	}
	if s.Head() != (Position{X: 1, Y: 16}) {
		t.Fatalf("expected head at (1,16), got (%d,%d)", s.Head().X, s.Head().Y)
	}
	// Body grows on a step; the caller is responsible for trimming.
	if len(s.Positions) != 2 {
		t.Fatalf("expected 2 segments after a step, got %d", len(s.Positions))
	}

	// 0.09s remain on the timer: 0.05 is not enough, another 0.05 is.
	if s.Update(0.05) {
		t.Error("update before the cooldown elapsed should not step")
	}
	if !s.Update(0.05) {
		t.Error("update crossing the cooldown should step")
	}
}

func TestTrySetDirectionRejectsReversal(t *testing.T) {
	s := NewSnake(Position{X: 5, Y: 5}, 5)

	// Facing right: a left turn would fold the snake onto itself.
	s.TrySetDirection(DirLeft)
	if s.nextDir != DirRight {
		t.Errorf("reversal should be dropped, buffered direction is %d", s.nextDir)
	}

	s.TrySetDirection(DirUp)
	if s.nextDir != DirUp {
		t.Errorf("perpendicular turn should be buffered, got %d", s.nextDir)
	}
}

func TestTrySetDirectionLatestRequestWins(t *testing.T) {
	s := NewSnake(Position{X: 5, Y: 5}, 5)

	// Two requests between steps: both are checked against the committed
	// direction (still right), and the later one overwrites the earlier.
	s.TrySetDirection(DirUp)
	s.TrySetDirection(DirDown)
	if s.nextDir != DirDown {
		t.Fatalf("expected buffered direction down, got %d", s.nextDir)
	}

	s.Update(0.01)
	if s.Head() != (Position{X: 5, Y: 6}) {
		t.Errorf("expected step down to (5,6), got (%d,%d)", s.Head().X, s.Head().Y)
	}

	// Down is committed now, so up is the forbidden reversal.
	s.TrySetDirection(DirUp)
	if s.nextDir != DirDown {
		t.Errorf("reversal against the committed direction should be dropped, got %d", s.nextDir)
	}
}

func TestSelfCollision(t *testing.T) {
	s := &Snake{Positions: []Position{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 0}}}
	if !s.SelfCollision() {
		t.Error("head overlapping a body segment should collide")
	}

	s = &Snake{Positions: []Position{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}}
	if s.SelfCollision() {
		t.Error("distinct segments should not collide")
	}

	s = &Snake{Positions: []Position{{X: 4, Y: 4}}}
	if s.SelfCollision() {
		t.Error("single segment cannot collide with itself")
	}
}

func TestTryShoot(t *testing.T) {
	s := NewSnake(Position{X: 5, Y: 5}, 5)
	s.GainAmmo(2)

	pos, dir, ok := s.TryShoot()
	if !ok {
		t.Fatal("shot with ammo available should succeed")
	}
	if pos != (Position{X: 6, Y: 5}) {
		t.Errorf("bullet should spawn one step ahead at (6,5), got (%d,%d)", pos.X, pos.Y)
	}
	if dir != DirRight {
		t.Errorf("bullet should inherit the committed direction, got %d", dir)
	}
	if s.Ammo != 1 {
		t.Errorf("expected 1 round left, got %d", s.Ammo)
	}

	if _, _, ok := s.TryShoot(); !ok {
		t.Fatal("second shot should succeed")
	}
	if _, _, ok := s.TryShoot(); ok {
		t.Error("shot with an empty pool should fail")
	}
	if s.Ammo != 0 {
		t.Errorf("failed shot should not change ammo, got %d", s.Ammo)
	}
}

func TestTryShootUsesCommittedDirection(t *testing.T) {
	s := NewSnake(Position{X: 5, Y: 5}, 5)
	s.GainAmmo(1)

	// A buffered turn that has not stepped yet must not bend the shot.
	s.TrySetDirection(DirDown)
	pos, dir, ok := s.TryShoot()
	if !ok {
		t.Fatal("shot should succeed")
	}
	if dir != DirRight || pos != (Position{X: 6, Y: 5}) {
		t.Errorf("shot should follow the committed direction, got dir %d at (%d,%d)", dir, pos.X, pos.Y)
	}
}

func TestGainAmmoSaturates(t *testing.T) {
	s := NewSnake(Position{X: 0, Y: 0}, 5)
	s.GainAmmo(3)
	if s.Ammo != 3 {
		t.Fatalf("expected 3 rounds, got %d", s.Ammo)
	}
	s.GainAmmo(3)
	if s.Ammo != 5 {
		t.Errorf("ammo should saturate at 5, got %d", s.Ammo)
	}
	s.GainAmmo(1)
	if s.Ammo != 5 {
		t.Errorf("ammo should stay at 5, got %d", s.Ammo)
	}
}

func TestRemoveTailDropsOldestSegment(t *testing.T) {
	s := &Snake{Positions: []Position{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}}
	s.RemoveTail()
	if len(s.Positions) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(s.Positions))
	}
	if s.Positions[0] != (Position{X: 1, Y: 0}) {
		t.Errorf("oldest segment should be gone, tail is (%d,%d)", s.Positions[0].X, s.Positions[0].Y)
	}
	if s.Head() != (Position{X: 1, Y: 1}) {
		t.Errorf("head should be untouched, got (%d,%d)", s.Head().X, s.Head().Y)
	}
}

func TestHeadPanicsOnEmptyBody(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for an empty body")
		}
	}()
	s := &Snake{}
	s.Head()
}
