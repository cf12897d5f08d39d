package bounce

// Draw flags
const (
	DRAW_BODIES     = 1 << 0
	DRAW_WALLS      = 1 << 1
	DRAW_VELOCITIES = 1 << 2
	DRAW_NEXT_EVENT = 1 << 3
)

// 16 bytes
type FColor struct {
	R, G, B, A float32
}

// Drawer renders a space. Implementations live in the drivers; the library
// only decides what gets drawn where.
type Drawer interface {
	DrawCircle(pos Vector, radius float64, outline, fill FColor, data interface{})
	DrawSegment(a, b Vector, fill FColor, data interface{})
	DrawWall(anchor, normal Vector, fill FColor, data interface{})

	Flags() int
	OutlineColor() FColor
	BodyColor(body *Body, data interface{}) FColor
	WallColor() FColor
	EventColor() FColor
	Data() interface{}
}

// DrawBody draws body where it is at local time t.
func DrawBody(body *Body, t float64, options Drawer) {
	data := options.Data()
	pos := body.PositionAt(t)
	options.DrawCircle(pos, body.r, options.OutlineColor(), options.BodyColor(body, data), data)
}

// DrawSpace draws the space at local time t, normally space.Time().
func DrawSpace(space *Space, t float64, options Drawer) {
	flags := options.Flags()
	data := options.Data()

	if flags&DRAW_WALLS != 0 {
		for _, wall := range space.walls {
			options.DrawWall(wall.p, wall.n, options.WallColor(), data)
		}
	}

	if flags&DRAW_BODIES != 0 {
		for _, body := range space.bodies {
			DrawBody(body, t, options)
		}
	}

	if flags&DRAW_VELOCITIES != 0 {
		for _, body := range space.bodies {
			p := body.PositionAt(t)
			// a quarter second of travel
			options.DrawSegment(p, p.Add(body.v.Mult(0.25)), options.OutlineColor(), data)
		}
	}

	if flags&DRAW_NEXT_EVENT != 0 {
		next, ok := space.NextEvent()
		if !ok {
			return
		}
		a := space.bodies[next.A]
		if next.IsWall() {
			wall := space.walls[next.Wall]
			contact := a.PositionAt(next.Time).Sub(wall.n.Mult(a.r))
			options.DrawSegment(a.PositionAt(t), contact, options.EventColor(), data)
		} else {
			b := space.bodies[next.B]
			options.DrawSegment(a.PositionAt(t), b.PositionAt(t), options.EventColor(), data)
		}
	}
}
