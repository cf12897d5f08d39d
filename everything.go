package bounce

import (
	"math"

	"github.com/pkg/errors"
)

// INFINITY is the "never" time returned by contact queries that have no answer.
var INFINITY = math.Inf(1)

const (
	// DefaultRebaseInterval is how much local time may accumulate before the
	// space shifts its clock origin.
	DefaultRebaseInterval = 5.0
	// DefaultRebaseMargin is the minimum gap to the next event for a rebase to run.
	DefaultRebaseMargin = 0.05
)

var (
	ErrInvalidRadius = errors.New("radius must be positive and finite")
	ErrInvalidMass   = errors.New("mass must be positive and finite")
	ErrInvalidNormal = errors.New("wall normal must be non-zero and finite")
)

func positiveFinite(f float64) bool {
	return f > 0 && !math.IsInf(f, 1)
}
