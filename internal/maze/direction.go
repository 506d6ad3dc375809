package maze

import "fmt"

// Heading is an absolute compass direction. Row indices grow to the North
// and column indices grow to the East.
type Heading uint8

const (
	North Heading = iota
	East
	South
	West
)

var Headings = [4]Heading{North, East, South, West}

func (h Heading) String() string {
	switch h {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	default:
		return fmt.Sprintf("Heading(%d)", uint8(h))
	}
}

// Rotate returns the heading after taking turn t.
func (h Heading) Rotate(t Turn) Heading {
	return Heading((uint8(h) + uint8(t)) % 4)
}

func (h Heading) Opposite() Heading {
	return h.Rotate(Reverse)
}

// Turn is a move relative to the current heading. Its numeric value is the
// number of right-angle turns clockwise, which is what the robot's turn
// counter accumulates.
type Turn uint8

const (
	Straight Turn = iota
	Right
	Reverse
	Left
)

func (t Turn) String() string {
	switch t {
	case Straight:
		return "straight"
	case Right:
		return "right"
	case Reverse:
		return "reverse"
	case Left:
		return "left"
	default:
		return fmt.Sprintf("Turn(%d)", uint8(t))
	}
}

// Pos is a cell address. (0, 0) is the start cell in the south-west corner.
type Pos struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

type delta struct{ row, col int }

// deltas[heading][turn] is the offset of the neighbour reached by taking
// turn while facing heading.
var deltas = [4][4]delta{
	North: {Straight: {1, 0}, Right: {0, 1}, Reverse: {-1, 0}, Left: {0, -1}},
	East:  {Straight: {0, 1}, Right: {-1, 0}, Reverse: {0, -1}, Left: {1, 0}},
	South: {Straight: {-1, 0}, Right: {0, -1}, Reverse: {1, 0}, Left: {0, 1}},
	West:  {Straight: {0, -1}, Right: {1, 0}, Reverse: {0, 1}, Left: {-1, 0}},
}

// Neighbour returns the cell reached from p by taking turn t while facing h.
func (p Pos) Neighbour(h Heading, t Turn) Pos {
	d := deltas[h%4][t%4]
	return Pos{Row: p.Row + d.row, Col: p.Col + d.col}
}

// Step returns the adjacent cell in absolute direction h.
func (p Pos) Step(h Heading) Pos {
	return p.Neighbour(h, Straight)
}
