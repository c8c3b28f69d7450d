package sim

import (
	"testing"

	"github.com/vovakirdan/tui-robbo/internal/core"
)

func TestPushMovingBox(t *testing.T) {
	w := newTestWorld(t, Options{},
		at(KindRobbo, 4, 4),
		at(KindMovingBox, 5, 4),
	)
	robbo := mustEntityAt(t, w, 4, 4)
	box := mustEntityAt(t, w, 5, 4)

	w.Step(input(core.ActionRight))

	if pos, _ := w.PositionOf(robbo); pos != core.C(5, 4) {
		t.Errorf("robbo at %v, expected (5,4)", pos)
	}
	if pos, _ := w.PositionOf(box); pos != core.C(6, 4) {
		t.Errorf("box at %v, expected (6,4)", pos)
	}
	if dir, _ := w.Components.MovingDir.Get(box); dir != core.DirRight {
		t.Errorf("pushed moving box should slide right, dir = %v", dir)
	}
}

func TestPushBlockedByWall(t *testing.T) {
	w := newTestWorld(t, Options{},
		at(KindRobbo, 4, 4),
		at(KindMovingBox, 5, 4),
		at(KindWall, 6, 4),
	)

	w.Step(input(core.ActionRight))

	if kindAt(w, 4, 4) != KindRobbo {
		t.Error("robbo should not move when the push is blocked")
	}
	if kindAt(w, 5, 4) != KindMovingBox {
		t.Error("box should not move when its destination is a wall")
	}
	if kindAt(w, 6, 4) != KindWall {
		t.Error("wall should be untouched")
	}
}

func TestPushBlockedAtGridEdge(t *testing.T) {
	w := newTestWorld(t, Options{Width: 6, Height: 6},
		at(KindRobbo, 4, 2),
		at(KindBox, 5, 2),
	)

	w.Step(input(core.ActionRight))

	if kindAt(w, 4, 2) != KindRobbo || kindAt(w, 5, 2) != KindBox {
		t.Error("push off the grid must be blocked")
	}
}

func TestOnlyRobboPushes(t *testing.T) {
	w := newTestWorld(t, Options{},
		heading(KindBird, 3, 3, core.DirRight),
		at(KindBox, 4, 3),
	)

	w.Step(core.InputFrame{})

	if kindAt(w, 3, 3) != KindBird || kindAt(w, 4, 3) != KindBox {
		t.Error("creatures must not push boxes")
	}
	bird := mustEntityAt(t, w, 3, 3)
	if dir, _ := w.Components.MovingDir.Get(bird); dir != core.DirLeft {
		t.Errorf("blocked bird should reverse, dir = %v", dir)
	}
}

func TestRobboBlockedOutOfBounds(t *testing.T) {
	w := newTestWorld(t, Options{}, at(KindRobbo, 0, 0))

	w.Step(input(core.ActionLeft))

	if kindAt(w, 0, 0) != KindRobbo {
		t.Error("robbo must stay in place at the grid edge")
	}
	if w.Violations() != 0 {
		t.Errorf("unexpected contract violations: %d", w.Violations())
	}
}

func TestContestedCellGoesToEarlierEntity(t *testing.T) {
	w := newTestWorld(t, Options{},
		heading(KindBird, 1, 1, core.DirRight),
		heading(KindBird, 3, 1, core.DirLeft),
	)
	first := mustEntityAt(t, w, 1, 1)
	second := mustEntityAt(t, w, 3, 1)

	w.Step(core.InputFrame{})

	if pos, _ := w.PositionOf(first); pos != core.C(2, 1) {
		t.Errorf("earlier bird at %v, expected (2,1)", pos)
	}
	if pos, _ := w.PositionOf(second); pos != core.C(3, 1) {
		t.Errorf("later bird at %v, expected to stay at (3,1)", pos)
	}
	if dir, _ := w.Components.MovingDir.Get(second); dir != core.DirRight {
		t.Errorf("later bird should reverse to the right, dir = %v", dir)
	}
}

func TestVacatedCellStaysBlockedForTheTick(t *testing.T) {
	w := newTestWorld(t, Options{},
		heading(KindBird, 1, 1, core.DirRight),
		heading(KindBird, 2, 1, core.DirRight),
	)
	follower := mustEntityAt(t, w, 1, 1)
	leader := mustEntityAt(t, w, 2, 1)

	w.Step(core.InputFrame{})

	if pos, _ := w.PositionOf(leader); pos != core.C(3, 1) {
		t.Errorf("leader at %v, expected (3,1)", pos)
	}
	if pos, _ := w.PositionOf(follower); pos != core.C(1, 1) {
		t.Errorf("follower at %v, must not enter a cell vacated this tick", pos)
	}
}

func TestLBearFollowsLeftWall(t *testing.T) {
	w := newTestWorld(t, Options{Width: 5, Height: 5},
		at(KindWall, 0, 2),
		at(KindWall, 0, 1),
		heading(KindLBear, 1, 2, core.DirUp),
	)
	bear := mustEntityAt(t, w, 1, 2)

	w.Step(core.InputFrame{})
	if pos, _ := w.PositionOf(bear); pos != core.C(1, 1) {
		t.Fatalf("bear at %v, expected to walk up along the wall to (1,1)", pos)
	}

	// Wall ends; the left cell (0,0) is free so the bear turns left into it.
	w.Step(core.InputFrame{})
	if pos, _ := w.PositionOf(bear); pos != core.C(1, 0) {
		t.Fatalf("bear at %v, expected (1,0)", pos)
	}
	w.Step(core.InputFrame{})
	if pos, _ := w.PositionOf(bear); pos != core.C(0, 0) {
		t.Errorf("bear at %v, expected to turn left to (0,0)", pos)
	}
}

func TestCreatureCadence(t *testing.T) {
	w := newTestWorld(t, Options{CreatureMoveEvery: 2},
		heading(KindBird, 1, 1, core.DirRight),
		at(KindRobbo, 5, 5),
	)
	bird := mustEntityAt(t, w, 1, 1)
	robbo := mustEntityAt(t, w, 5, 5)

	w.Step(input(core.ActionDown)) // tick 1: only robbo moves
	if pos, _ := w.PositionOf(bird); pos != core.C(1, 1) {
		t.Errorf("bird moved on a non-move tick: %v", pos)
	}
	if pos, _ := w.PositionOf(robbo); pos != core.C(5, 6) {
		t.Errorf("robbo at %v, expected (5,6)", pos)
	}

	w.Step(core.InputFrame{}) // tick 2
	if pos, _ := w.PositionOf(bird); pos != core.C(2, 1) {
		t.Errorf("bird at %v, expected (2,1) on a move tick", pos)
	}
}

func TestCreatureContactKillsRobbo(t *testing.T) {
	w := newTestWorld(t, Options{},
		heading(KindBird, 3, 3, core.DirRight),
		at(KindRobbo, 4, 3),
	)

	res := w.Step(core.InputFrame{})

	if res.PlayerAlive {
		t.Fatal("robbo should be destroyed by contact with a bird")
	}
	if len(res.Destroyed) != 1 || res.Destroyed[0].Kind != KindRobbo || res.Destroyed[0].Cause != CauseContact {
		t.Errorf("Destroyed = %+v, expected one robbo by contact", res.Destroyed)
	}
}

func TestBulletImpactDestroysBoth(t *testing.T) {
	w := newTestWorld(t, Options{},
		heading(KindBullet, 2, 2, core.DirRight),
		heading(KindBird, 3, 2, core.DirNone),
	)

	res := w.Step(core.InputFrame{})

	if len(res.Destroyed) != 2 {
		t.Fatalf("Destroyed = %+v, expected bird and bullet", res.Destroyed)
	}
	if w.Count(KindBird) != 0 || w.Count(KindBullet) != 0 {
		t.Error("bird and bullet should both be gone")
	}
}

func TestBulletAgainstWall(t *testing.T) {
	w := newTestWorld(t, Options{},
		heading(KindBullet, 2, 2, core.DirRight),
		at(KindWall, 3, 2),
	)

	w.Step(core.InputFrame{})

	if w.Count(KindBullet) != 0 {
		t.Error("bullet should be destroyed on impact")
	}
	if w.Count(KindWall) != 1 {
		t.Error("walls are immune to damage")
	}
}

func TestLaserPiercesDestroyables(t *testing.T) {
	w := newTestWorld(t, Options{},
		heading(KindLaserHead, 1, 2, core.DirRight),
		heading(KindBird, 2, 2, core.DirNone),
		at(KindWall, 4, 2),
	)
	laser := mustEntityAt(t, w, 1, 2)

	w.Step(core.InputFrame{})
	if w.Count(KindBird) != 0 {
		t.Fatal("laser should destroy the bird")
	}
	if !w.Alive(laser) {
		t.Fatal("laser should survive hitting a destroyable")
	}

	w.Step(core.InputFrame{}) // into the freed cell
	if pos, _ := w.PositionOf(laser); pos != core.C(2, 2) {
		t.Fatalf("laser at %v, expected (2,2)", pos)
	}
	w.Step(core.InputFrame{}) // (3,2)
	w.Step(core.InputFrame{}) // hits the wall
	if w.Alive(laser) {
		t.Error("laser should stop at a wall")
	}
	if w.Count(KindWall) != 1 {
		t.Error("wall should survive the laser")
	}
}

func TestProjectileLeavingGridIsRemoved(t *testing.T) {
	w := newTestWorld(t, Options{Width: 4, Height: 4},
		heading(KindBullet, 3, 1, core.DirRight),
	)

	w.Step(core.InputFrame{})

	if w.Count(KindBullet) != 0 {
		t.Error("bullet leaving the grid should be destroyed")
	}
}
