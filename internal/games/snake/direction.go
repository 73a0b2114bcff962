package snake

import "github.com/vovakirdan/arcade-classics/internal/core"

// Direction is a unit step on the grid. Only the four named values below
// are valid headings; the zero value means "no change requested".
type Direction struct {
	DX, DY int
}

var (
	Up    = Direction{DX: 0, DY: -1}
	Down  = Direction{DX: 0, DY: 1}
	Left  = Direction{DX: -1, DY: 0}
	Right = Direction{DX: 1, DY: 0}
)

// None is the zero Direction.
var None Direction

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// IsNone reports whether d is the zero Direction.
func (d Direction) IsNone() bool {
	return d == None
}

// Step returns p moved one cell along d.
func (d Direction) Step(p core.Point) core.Point {
	return p.Add(d.DX, d.DY)
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case None:
		return "none"
	default:
		return "unknown"
	}
}

// DirectionFor maps a movement action to its heading.
func DirectionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return Up, true
	case core.ActionDown:
		return Down, true
	case core.ActionLeft:
		return Left, true
	case core.ActionRight:
		return Right, true
	}
	return None, false
}
