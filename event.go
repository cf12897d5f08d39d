package bounce

import "fmt"

// Event is a predicted collision. A is always a body index. Exactly one of
// B (a second body) and Wall is set; the other is -1. Indices refer to the
// space that produced the event.
type Event struct {
	Time float64
	A    int
	B    int
	Wall int
}

func newBodyEvent(t float64, a, b int) Event {
	return Event{Time: t, A: a, B: b, Wall: -1}
}

func newWallEvent(t float64, a, wall int) Event {
	return Event{Time: t, A: a, B: -1, Wall: wall}
}

func (e Event) IsWall() bool {
	return e.Wall >= 0
}

func (e Event) String() string {
	if e.IsWall() {
		return fmt.Sprintf("%.6f: body %d / wall %d", e.Time, e.A, e.Wall)
	}
	return fmt.Sprintf("%.6f: body %d / body %d", e.Time, e.A, e.B)
}

// compareEvents orders by time, then by first body, then body pairs before
// wall hits, then by the other participant.
func compareEvents(x, y Event) int {
	switch {
	case x.Time < y.Time:
		return -1
	case x.Time > y.Time:
		return 1
	case x.A != y.A:
		return x.A - y.A
	case x.IsWall() != y.IsWall():
		if x.IsWall() {
			return 1
		}
		return -1
	case x.IsWall():
		return x.Wall - y.Wall
	default:
		return x.B - y.B
	}
}
