package bounce

// maybeRebase shifts the clock origin once enough local time has
// accumulated and no collision is imminent.
func (space *Space) maybeRebase(now float64) {
	if now <= space.RebaseInterval {
		return
	}
	if next, ok := space.NextEvent(); ok && next.Time-now <= space.RebaseMargin {
		return
	}
	space.Rebase()
}

// Rebase moves local time 0 to the time the space last settled at. Every
// body's trajectory is re-anchored there, so positions observed through the
// clock do not change; only the magnitudes fed to PositionAt shrink.
func (space *Space) Rebase() {
	if space.locked > 0 {
		panic("bounce: space is locked")
	}

	shift := space.now
	for _, body := range space.bodies {
		body.rebase(0, body.PositionAt(shift))
	}

	space.origin += shift
	space.settled -= shift
	space.lastResolved -= shift
	space.now = 0
	space.rebases++

	space.FindFutureCollisions(0)
}
