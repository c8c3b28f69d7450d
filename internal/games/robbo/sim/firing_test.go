package sim

import (
	"testing"

	"github.com/vovakirdan/tui-robbo/internal/core"
)

func solidRobbo(x, y int) Spawn {
	return Spawn{Kind: KindRobbo, Pos: core.C(x, y), Gun: &Gun{Probability: 1, Type: GunSolid}}
}

func TestSolidGunSpawnsLaserOnlyOnShootingTick(t *testing.T) {
	w := newTestWorld(t, Options{ShootEvery: 2}, solidRobbo(3, 3))

	res := w.Step(input(core.ActionFire)) // tick 1: not a shooting tick
	if res.Spawned != 0 || w.Count(KindLaserHead) != 0 {
		t.Fatalf("non-shooting tick spawned %d projectiles", res.Spawned)
	}

	res = w.Step(input(core.ActionFire)) // tick 2
	if res.Spawned != 1 {
		t.Fatalf("shooting tick spawned %d projectiles, expected 1", res.Spawned)
	}
	if w.Count(KindLaserHead) != 1 || w.Count(KindBullet) != 0 {
		t.Fatalf("expected exactly one laser head, got lasers=%d bullets=%d",
			w.Count(KindLaserHead), w.Count(KindBullet))
	}
	if kindAt(w, 4, 3) != KindLaserHead {
		t.Error("laser head should appear in the facing cell (4,3)")
	}
	laser := mustEntityAt(t, w, 4, 3)
	if dir, _ := w.Components.MovingDir.Get(laser); dir != core.DirRight {
		t.Errorf("laser dir = %v, expected right", dir)
	}
	if !w.Components.Destroyable.Has(laser) {
		t.Error("projectiles must be destroyable")
	}
}

func TestBurstGunSpawnsBulletInFacingDirection(t *testing.T) {
	w := newTestWorld(t, Options{}, at(KindRobbo, 5, 5))

	w.Step(input(core.ActionUp)) // face up, move to (5,4)
	w.Step(input(core.ActionFire))

	if kindAt(w, 5, 3) != KindBullet {
		t.Errorf("expected a bullet at (5,3), found %v", kindAt(w, 5, 3))
	}
}

func TestFiringIntoDestroyableRaisesOneEvent(t *testing.T) {
	w := newTestWorld(t, Options{},
		at(KindRobbo, 2, 2),
		heading(KindBird, 3, 2, core.DirNone),
	)
	robbo := mustEntityAt(t, w, 2, 2)

	w.Clock.Advance()
	f := w.BeginFrame()
	w.TranslateInput(input(core.ActionFire))
	spawned := w.Fire(f)

	if spawned != 0 {
		t.Errorf("spawned %d projectiles into an occupied cell", spawned)
	}
	if w.Events.Len() != 1 {
		t.Fatalf("Events.Len() = %d, expected 1", w.Events.Len())
	}

	destroyed := w.ApplyDamage()
	if len(destroyed) != 1 || destroyed[0].Kind != KindBird || destroyed[0].Cause != CauseBlockedShot {
		t.Errorf("destroyed = %+v, expected the bird by a blocked shot", destroyed)
	}
	if !w.Alive(robbo) {
		t.Error("the firer must be unaffected")
	}
	if pos, _ := w.PositionOf(robbo); pos != core.C(2, 2) {
		t.Errorf("firer moved to %v", pos)
	}
}

func TestFiringIntoWallLeavesItStanding(t *testing.T) {
	w := newTestWorld(t, Options{},
		at(KindRobbo, 2, 2),
		at(KindWall, 3, 2),
	)

	res := w.Step(input(core.ActionFire))

	if len(res.Destroyed) != 0 || w.Count(KindWall) != 1 {
		t.Error("walls are immune to blocked shots")
	}
}

func TestFiringProbability(t *testing.T) {
	tests := []struct {
		name        string
		draw        float64
		probability float64
		fires       bool
	}{
		{"draw below probability fires", 0.3, 0.5, true},
		{"draw equal to probability skips", 0.5, 0.5, false},
		{"draw above probability skips", 0.7, 0.5, false},
		{"probability one always fires", 0.999, 1, true},
		{"probability zero never fires", 0, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gun := Gun{Dir: core.DirDown, Probability: tc.probability}
			w := newTestWorld(t, Options{Rand: always(tc.draw)},
				Spawn{Kind: KindGun, Pos: core.C(4, 1), Gun: &gun},
			)

			res := w.Step(core.InputFrame{})

			if fired := res.Spawned == 1; fired != tc.fires {
				t.Errorf("fired = %v, expected %v", fired, tc.fires)
			}
		})
	}
}

func TestShootingDirNeverSurvivesTheTick(t *testing.T) {
	w := newTestWorld(t, Options{ShootEvery: 3},
		at(KindRobbo, 5, 5),
		Spawn{Kind: KindGun, Pos: core.C(1, 1), Gun: &Gun{Dir: core.DirDown, Probability: 0.5}},
	)
	robbo := mustEntityAt(t, w, 5, 5)

	for i := 0; i < 6; i++ {
		w.Step(input(core.ActionFire))
		if w.Components.ShootingDir.Has(robbo) {
			t.Fatalf("tick %d: robbo kept its ShootingDir", w.Clock.Tick())
		}
		if n := w.Components.ShootingDir.Len(); n != 0 {
			t.Fatalf("tick %d: %d firing intents survived", w.Clock.Tick(), n)
		}
	}
}

func TestFireScaleAffectsOnlyNonPlayerShooters(t *testing.T) {
	w := newTestWorld(t, Options{Rand: always(0.5)},
		at(KindRobbo, 5, 5),
		Spawn{Kind: KindGun, Pos: core.C(1, 1), Gun: &Gun{Dir: core.DirDown, Probability: 0.4}},
	)
	w.SetFireScale(2) // 0.4 -> 0.8

	res := w.Step(input(core.ActionFire))

	if res.Spawned != 2 {
		t.Errorf("Spawned = %d, expected the scaled turret and robbo to fire", res.Spawned)
	}

	w.SetFireScale(0)
	res = w.Step(core.InputFrame{})
	if res.Spawned != 0 {
		t.Errorf("Spawned = %d with fire scale 0", res.Spawned)
	}
}

func TestTwoShootersCannotSpawnIntoTheSameCell(t *testing.T) {
	w := newTestWorld(t, Options{},
		Spawn{Kind: KindGun, Pos: core.C(3, 1), Gun: &Gun{Dir: core.DirDown, Probability: 1}},
		Spawn{Kind: KindGun, Pos: core.C(2, 2), Gun: &Gun{Dir: core.DirRight, Probability: 1}},
	)

	res := w.Step(core.InputFrame{})

	if res.Spawned != 1 {
		t.Errorf("Spawned = %d, expected the second shot to be refused", res.Spawned)
	}
	if w.Violations() != 0 {
		t.Errorf("unexpected contract violations: %d", w.Violations())
	}
}
