package bounce

import (
	"fmt"

	"github.com/pkg/errors"
)

// Body is a moving circle. Between collisions it follows the affine
// trajectory p(t) = p + v*(t - t0).
type Body struct {
	// index in the owning space, -1 until added
	id int

	// radius and mass, fixed at creation
	r float64
	m float64

	// reference position, reference time and velocity
	p  Vector
	t0 float64
	v  Vector

	UserData interface{}

	space *Space
}

func (body *Body) String() string {
	return fmt.Sprint("Body ", body.id)
}

// NewBody creates a free body with the given radius and mass at the origin, at rest.
func NewBody(radius, mass float64) (*Body, error) {
	if !positiveFinite(radius) {
		return nil, errors.Wrapf(ErrInvalidRadius, "new body: radius %v", radius)
	}
	if !positiveFinite(mass) {
		return nil, errors.Wrapf(ErrInvalidMass, "new body: mass %v", mass)
	}
	return &Body{id: -1, r: radius, m: mass}, nil
}

// NewBall creates a body whose mass is proportional to its area (radius squared).
func NewBall(radius float64) (*Body, error) {
	return NewBody(radius, radius*radius)
}

// ID is the body's creation index in its space. Ties between simultaneous
// collisions are broken on it.
func (body *Body) ID() int {
	return body.id
}

func (body *Body) Space() *Space {
	return body.space
}

func (body *Body) Radius() float64 {
	return body.r
}

func (body *Body) Mass() float64 {
	return body.m
}

// Position returns the reference position, where the body was at ReferenceTime.
func (body *Body) Position() Vector {
	return body.p
}

// SetPosition moves the reference position without touching the reference time.
// Use it to place a body before adding it to a space.
func (body *Body) SetPosition(p Vector) {
	body.touch()
	body.p = p
}

func (body *Body) ReferenceTime() float64 {
	return body.t0
}

func (body *Body) Velocity() Vector {
	return body.v
}

// SetVelocity replaces the velocity from the reference time forward.
func (body *Body) SetVelocity(v Vector) {
	body.touch()
	body.v = v
}

// PositionAt extrapolates the trajectory to time t. Only t >= ReferenceTime
// is physically meaningful.
func (body *Body) PositionAt(t float64) Vector {
	return body.p.Add(body.v.Mult(t - body.t0))
}

// BB returns the body's bounding box at local time t.
func (body *Body) BB(t float64) BB {
	return NewBBForCircle(body.PositionAt(t), body.r)
}

// Rebase moves the reference point of the trajectory to (t, p). Velocity is kept.
func (body *Body) Rebase(t float64, p Vector) {
	body.touch()
	body.rebase(t, p)
}

func (body *Body) rebase(t float64, p Vector) {
	body.t0 = t
	body.p = p
}

// touch marks the owning space's events stale. Trajectories cannot change
// while the space is resolving.
func (body *Body) touch() {
	if body.space == nil {
		return
	}
	if body.space.locked > 0 {
		panic("bounce: space is locked")
	}
	body.space.dirty = true
}

// origin returns where the trajectory would have been at global time 0.
func (body *Body) origin() Vector {
	return body.p.Sub(body.v.Mult(body.t0))
}

func (body *Body) KineticEnergy() float64 {
	return 0.5 * body.m * body.v.LengthSq()
}

func (body *Body) Momentum() Vector {
	return body.v.Mult(body.m)
}
