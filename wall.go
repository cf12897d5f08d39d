package bounce

import (
	"fmt"

	"github.com/pkg/errors"
)

// Wall is an infinite static half-plane. Bodies are kept on the side the
// normal points to.
type Wall struct {
	id int

	p Vector
	n Vector

	UserData interface{}

	space *Space
}

// NewWall creates a wall through anchor. The normal is normalized.
func NewWall(anchor, normal Vector) (*Wall, error) {
	if !anchor.IsFinite() {
		return nil, errors.Errorf("new wall: anchor %v is not finite", anchor)
	}
	if !normal.IsFinite() || normal.LengthSq() == 0 {
		return nil, errors.Wrapf(ErrInvalidNormal, "new wall: normal %v", normal)
	}
	return &Wall{id: -1, p: anchor, n: normal.Normalize()}, nil
}

func (wall *Wall) String() string {
	return fmt.Sprint("Wall ", wall.id)
}

func (wall *Wall) ID() int {
	return wall.id
}

func (wall *Wall) Anchor() Vector {
	return wall.p
}

func (wall *Wall) Normal() Vector {
	return wall.n
}

// Distance is the signed distance from p to the boundary, positive on the inside.
func (wall *Wall) Distance(p Vector) float64 {
	return p.Sub(wall.p).Dot(wall.n)
}

func (wall *Wall) Contains(p Vector) bool {
	return wall.Distance(p) >= 0
}
