package bounce

import "testing"

type recordingDrawer struct {
	flags    int
	circles  []Vector
	segments int
	walls    int
}

func (d *recordingDrawer) DrawCircle(pos Vector, radius float64, outline, fill FColor, data interface{}) {
	d.circles = append(d.circles, pos)
}

func (d *recordingDrawer) DrawSegment(a, b Vector, fill FColor, data interface{}) {
	d.segments++
}

func (d *recordingDrawer) DrawWall(anchor, normal Vector, fill FColor, data interface{}) {
	d.walls++
}

func (d *recordingDrawer) Flags() int                                    { return d.flags }
func (d *recordingDrawer) OutlineColor() FColor                          { return FColor{A: 1} }
func (d *recordingDrawer) BodyColor(body *Body, data interface{}) FColor { return FColor{R: 1, A: 1} }
func (d *recordingDrawer) WallColor() FColor                             { return FColor{G: 1, A: 1} }
func (d *recordingDrawer) EventColor() FColor                            { return FColor{B: 1, A: 1} }
func (d *recordingDrawer) Data() interface{}                             { return nil }

func TestDrawSpace(t *testing.T) {
	space := NewSpace()
	space.AddBody(newTestBody(t, 20, Vector{100, 100}, Vector{-100, 0}))
	space.AddBody(newTestBody(t, 20, Vector{300, 100}, Vector{0, 0}))
	space.AddWall(newTestWall(t, Vector{0, 0}, Vector{1, 0}))
	settle(space, 0.5)

	d := &recordingDrawer{flags: DRAW_BODIES | DRAW_WALLS}
	DrawSpace(space, 0.5, d)
	if len(d.circles) != 2 || d.walls != 1 || d.segments != 0 {
		t.Fatalf("Unexpected draw calls: %+v", d)
	}
	if !nearVector(d.circles[0], Vector{50, 100}, 1e-9) {
		t.Errorf("Expected body drawn at its position at 0.5, got %v", d.circles[0])
	}

	d = &recordingDrawer{flags: DRAW_VELOCITIES | DRAW_NEXT_EVENT}
	DrawSpace(space, 0.5, d)
	if len(d.circles) != 0 || d.segments != 3 {
		t.Errorf("Expected one velocity per body plus the next event, got %+v", d)
	}
}
