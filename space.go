package bounce

import (
	"log"
	"math"
	"slices"
)

// CollisionHandler is called after each resolved collision, with the
// participants' post-collision velocities already in place. Handlers must not
// add bodies or walls or change a body's trajectory.
type CollisionHandler func(space *Space, event Event)

// Space owns bodies and walls and keeps the ordered list of their future
// collisions. It is not safe for concurrent use.
type Space struct {
	// RebaseInterval is the local time after which Step shifts the clock origin.
	RebaseInterval float64
	// RebaseMargin is how far away the next event must be for a rebase to run.
	RebaseMargin float64

	bodies []*Body
	walls  []*Wall
	events []Event

	handlers []CollisionHandler

	// clock value that maps to local time 0
	origin  float64
	started bool

	// local time of the last settled tick
	now float64
	// contact intervals starting at or before this time were already handled
	settled float64
	// time of the last resolved batch, for ordering checks
	lastResolved float64

	dirty  bool
	locked int

	resolved uint
	batches  uint
	rebases  uint
}

func NewSpace() *Space {
	return &Space{
		RebaseInterval: DefaultRebaseInterval,
		RebaseMargin:   DefaultRebaseMargin,
		settled:        math.Inf(-1),
		lastResolved:   math.Inf(-1),
	}
}

// AddBody adds body to the space. Its reference position is taken to be its
// position at the space's current local time.
func (space *Space) AddBody(body *Body) *Body {
	if space.locked > 0 {
		panic("bounce: space is locked")
	}
	if body.space != nil {
		panic("bounce: body already added to a space")
	}

	body.id = len(space.bodies)
	body.space = space
	body.t0 = space.now
	space.bodies = append(space.bodies, body)
	space.dirty = true
	return body
}

func (space *Space) AddWall(wall *Wall) *Wall {
	if space.locked > 0 {
		panic("bounce: space is locked")
	}
	if wall.space != nil {
		panic("bounce: wall already added to a space")
	}

	wall.id = len(space.walls)
	wall.space = space
	space.walls = append(space.walls, wall)
	space.dirty = true
	return wall
}

// AddCollisionHandler registers f to be called for every resolved collision.
func (space *Space) AddCollisionHandler(f CollisionHandler) {
	space.handlers = append(space.handlers, f)
}

func (space *Space) Bodies() []*Body {
	return space.bodies
}

func (space *Space) Walls() []*Wall {
	return space.walls
}

func (space *Space) Body(i int) *Body {
	return space.bodies[i]
}

func (space *Space) Wall(i int) *Wall {
	return space.walls[i]
}

// Events returns a copy of the scheduled collisions in resolution order.
func (space *Space) Events() []Event {
	return slices.Clone(space.events)
}

// NextEvent returns the earliest scheduled collision.
func (space *Space) NextEvent() (Event, bool) {
	if len(space.events) == 0 {
		return Event{}, false
	}
	return space.events[0], true
}

// Time is the local time the space last settled at.
func (space *Space) Time() float64 {
	return space.now
}

// Origin is the clock value corresponding to local time 0.
func (space *Space) Origin() float64 {
	return space.origin
}

// Resolved is the number of collisions resolved so far.
func (space *Space) Resolved() uint {
	return space.resolved
}

// Batches is the number of distinct collision instants resolved so far.
func (space *Space) Batches() uint {
	return space.batches
}

func (space *Space) Rebases() uint {
	return space.rebases
}

func (space *Space) KineticEnergy() float64 {
	var e float64
	for _, body := range space.bodies {
		e += body.KineticEnergy()
	}
	return e
}

func (space *Space) Momentum() Vector {
	var p Vector
	for _, body := range space.bodies {
		p = p.Add(body.Momentum())
	}
	return p
}

func (space *Space) Lock() {
	space.locked++
}

func (space *Space) Unlock() {
	space.locked--
	assert(space.locked >= 0, "Space lock underflow")
}

// FindFutureCollisions rebuilds the event list with every collision the
// current trajectories produce at or after from.
func (space *Space) FindFutureCollisions(from float64) {
	space.events = space.events[:0]
	space.dirty = false

	bodies := space.bodies
	for i, a := range bodies {
		for _, b := range bodies[i+1:] {
			enter, exit := ContactInterval(a, b)
			if math.IsInf(enter, 1) {
				continue
			}
			// closest approach at or before from: the pair is not approaching
			mid := (enter + exit) * 0.5
			if mid <= from || enter <= space.settled {
				continue
			}

			t := enter
			if enter < from {
				if StaleOverlap(a, b, enter, exit) {
					debugf("discarding stale overlap %v / %v at %v", a, b, from)
					continue
				}
				// still approaching: bounce now rather than in the past
				t = from
			}
			space.events = append(space.events, newBodyEvent(t, a.id, b.id))
		}

		for _, wall := range space.walls {
			t := WallContactTime(a, wall)
			if t >= from && !math.IsInf(t, 1) {
				space.events = append(space.events, newWallEvent(t, a.id, wall.id))
			}
		}
	}

	slices.SortFunc(space.events, compareEvents)
}

// Advance resolves the earliest batch of simultaneous collisions if it is
// due by now and reschedules. It returns false once nothing is due; call it
// until then before reading positions at now.
func (space *Space) Advance(now float64) bool {
	if space.dirty {
		space.FindFutureCollisions(space.now)
	}

	if len(space.events) == 0 || space.events[0].Time > now {
		space.now = now
		space.settled = now
		return false
	}

	t := space.events[0].Time
	assert(t >= space.lastResolved, "collision resolved out of order: ", t, " < ", space.lastResolved)
	space.lastResolved = t
	space.batches++

	space.Lock()
	{
		for _, event := range space.events {
			if event.Time > t {
				break
			}
			space.resolve(t, event)
			space.resolved++

			for _, handler := range space.handlers {
				handler(space, event)
			}
		}
	}
	space.Unlock()

	space.FindFutureCollisions(t)
	return true
}

func (space *Space) resolve(t float64, event Event) {
	a := space.bodies[event.A]
	a.rebase(t, a.PositionAt(t))

	if event.IsWall() {
		a.v = a.v.Reflect(space.walls[event.Wall].n)
		return
	}

	b := space.bodies[event.B]
	b.rebase(t, b.PositionAt(t))

	// line of centers at contact
	d := b.p.Sub(a.p)
	if d.LengthSq() == 0 {
		log.Printf("bounce: %v and %v share a center at %v, collision skipped", a, b, t)
		return
	}
	n := d.Normalize()
	va, vb := a.v, b.v
	msum := a.m + b.m

	a.v = va.Sub(n.Mult(2 * b.m / msum * va.Sub(vb).Dot(n)))
	b.v = vb.Sub(n.Mult(2 * a.m / msum * vb.Sub(va).Dot(n)))
	assert(a.v.IsFinite() && b.v.IsFinite(), "non-finite velocity after ", event)
}

// Step advances the space to clock, an absolute time in seconds from any
// fixed epoch. The first call maps clock to local time 0. After all due
// collisions are resolved the clock origin may be rebased.
func (space *Space) Step(clock float64) {
	if !space.started {
		space.started = true
		space.origin = clock
	}

	now := clock - space.origin
	for space.Advance(now) {
	}
	space.maybeRebase(now)
}
