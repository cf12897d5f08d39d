package bounce

import "math"

// ContactInterval returns the global times at which the surfaces of a and b
// start and stop overlapping on their current trajectories, enter <= exit.
// Both are INFINITY when the bodies never touch, including when they share a
// velocity.
func ContactInterval(a, b *Body) (enter, exit float64) {
	// D(t) = d0 + dv*t, solve |D(t)|^2 = (ra+rb)^2
	d0 := a.origin().Sub(b.origin())
	dv := a.v.Sub(b.v)
	rsum := a.r + b.r

	qa := dv.Dot(dv)
	qb := 2 * d0.Dot(dv)
	qc := d0.Dot(d0) - rsum*rsum

	if qa == 0 {
		return INFINITY, INFINITY
	}

	disc := qb*qb - 4*qa*qc
	if disc < 0 {
		return INFINITY, INFINITY
	}

	// q carries the sign of qb so the two roots never subtract nearly equal values.
	sq := math.Sqrt(disc)
	var q float64
	if qb >= 0 {
		q = -0.5 * (qb + sq)
	} else {
		q = -0.5 * (qb - sq)
	}
	if q == 0 {
		t := -qb / (2 * qa)
		return t, t
	}

	enter, exit = q/qa, qc/q
	if enter > exit {
		enter, exit = exit, enter
	}
	return enter, exit
}

// WallContactTime returns the global time at which body's surface reaches the
// wall boundary, or INFINITY when the body is at rest or moving away along
// the normal.
func WallContactTime(body *Body, wall *Wall) float64 {
	vn := body.v.Dot(wall.n)
	if vn >= 0 {
		return INFINITY
	}

	f0 := body.origin().Sub(wall.p).Dot(wall.n) - body.r
	return -f0 / vn
}

// StaleOverlap reports whether a contact interval that began in the past is
// residue of an earlier contact rather than a new bounce: the bodies' relative
// displacement over the whole interval is smaller than both radii.
func StaleOverlap(a, b *Body, enter, exit float64) bool {
	swept := a.v.Sub(b.v).Mult(exit - enter).Length()
	return swept < a.r && swept < b.r
}

// Separation is the gap between the surfaces of a and b at time t, negative
// when they overlap.
func Separation(a, b *Body, t float64) float64 {
	return a.PositionAt(t).Distance(b.PositionAt(t)) - a.r - b.r
}
