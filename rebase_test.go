package bounce

import "testing"

func TestRebase_SkippedWhenEventImminent(t *testing.T) {
	space := NewSpace()
	// touches the wall at local 5.52
	body := space.AddBody(newTestBody(t, 10, Vector{562, 100}, Vector{-100, 0}))
	space.AddWall(newTestWall(t, Vector{0, 0}, Vector{1, 0}))

	space.Step(100)
	space.Step(105.5)
	if space.Rebases() != 0 {
		t.Fatalf("Expected no rebase 0.02s before a collision")
	}
	if !near(space.Time(), 5.5, 1e-12) || space.Origin() != 100 {
		t.Errorf("Expected local time 5.5 at origin 100, got %v at %v", space.Time(), space.Origin())
	}

	space.Step(105.6)
	if space.Rebases() != 1 {
		t.Fatalf("Expected a rebase once the collision passed")
	}
	if space.Time() != 0 || !near(space.Origin(), 105.6, 1e-9) {
		t.Errorf("Expected local time 0 at origin 105.6, got %v at %v", space.Time(), space.Origin())
	}
	if body.ReferenceTime() != 0 || !nearVector(body.PositionAt(0), Vector{18, 100}, 1e-9) {
		t.Errorf("Expected body at 18,100 at local 0, got %v", body.PositionAt(0))
	}
	if !body.Velocity().Equal(Vector{100, 0}) {
		t.Errorf("Rebase changed velocity: %v", body.Velocity())
	}
}

func TestRebase_DisabledWithInfiniteInterval(t *testing.T) {
	space := NewSpace()
	space.RebaseInterval = INFINITY
	space.AddBody(newTestBody(t, 10, Vector{100, 100}, Vector{1, 0}))

	space.Step(0)
	space.Step(50)
	if space.Rebases() != 0 || space.Time() != 50 {
		t.Errorf("Expected no rebase, got %v rebases at %v", space.Rebases(), space.Time())
	}
}

func TestRebase_KeepsTrajectories(t *testing.T) {
	space := boxedSpace(t, 4, 2, 3)
	space.RebaseInterval = INFINITY
	space.Step(0)
	space.Step(2.5)

	const probe = 2.75
	before := make([]Vector, 0)
	velocities := make([]Vector, 0)
	for _, body := range space.Bodies() {
		before = append(before, body.PositionAt(probe))
		velocities = append(velocities, body.Velocity())
	}
	events := space.Events()

	space.Rebase()

	if space.Time() != 0 || space.Origin() != 2.5 {
		t.Fatalf("Expected origin 2.5, got %v", space.Origin())
	}
	for i, body := range space.Bodies() {
		if !nearVector(body.PositionAt(probe-2.5), before[i], 1e-9) {
			t.Errorf("%v moved: %v -> %v", body, before[i], body.PositionAt(probe-2.5))
		}
		if !body.Velocity().Equal(velocities[i]) {
			t.Errorf("%v changed velocity", body)
		}
	}

	after := space.Events()
	if len(after) != len(events) {
		t.Fatalf("Expected %d events after rebase, got %d", len(events), len(after))
	}
	for i := range events {
		if after[i].A != events[i].A || after[i].B != events[i].B || after[i].Wall != events[i].Wall ||
			!near(after[i].Time+2.5, events[i].Time, 1e-9) {
			t.Errorf("Event %d shifted incorrectly: %v -> %v", i, events[i], after[i])
		}
	}
}

func TestRebase_MatchesUnrebasedRun(t *testing.T) {
	build := func() *Space {
		space := NewSpace()
		space.AddBody(newTestBody(t, 20, Vector{200, 150}, Vector{130, 70}))
		space.AddBody(newTestBody(t, 30, Vector{500, 300}, Vector{-90, 40}))
		space.AddWall(newTestWall(t, Vector{0, 0}, Vector{1, 0}))
		space.AddWall(newTestWall(t, Vector{0, 0}, Vector{0, 1}))
		space.AddWall(newTestWall(t, Vector{640, 0}, Vector{-1, 0}))
		space.AddWall(newTestWall(t, Vector{0, 480}, Vector{0, -1}))
		return space
	}

	rebased, plain := build(), build()
	rebased.RebaseInterval = 1
	plain.RebaseInterval = INFINITY

	for tick := 0; tick <= 300; tick++ {
		clock := float64(tick) / 60
		rebased.Step(clock)
		plain.Step(clock)

		for i := range plain.Bodies() {
			p1 := rebased.Body(i).PositionAt(clock - rebased.Origin())
			p2 := plain.Body(i).PositionAt(clock - plain.Origin())
			if !nearVector(p1, p2, 1e-6) {
				t.Fatalf("tick %d body %d: %v vs %v", tick, i, p1, p2)
			}
		}
	}
	if rebased.Rebases() == 0 {
		t.Error("Expected the rebased run to rebase")
	}
}

func TestRebase_PanicsWhileLocked(t *testing.T) {
	space := NewSpace()
	space.Lock()
	defer space.Unlock()
	defer func() {
		if recover() == nil {
			t.Error("Expected panic")
		}
	}()
	space.Rebase()
}
