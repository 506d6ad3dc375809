package maze

import "strconv"

// Reading is the 3-bit wall report of the sensor head, relative to the
// robot's heading.
type Reading uint8

const (
	RightBlocked Reading = 1 << iota
	FrontBlocked
	LeftBlocked

	Open    Reading = 0
	DeadEnd         = RightBlocked | FrontBlocked | LeftBlocked
)

// ParseReading validates a raw sensor value. Anything outside 0..7 is an
// InvalidReadingError.
func ParseReading(v int) (Reading, error) {
	if v < 0 || v > int(DeadEnd) {
		return 0, &InvalidReadingError{Value: v}
	}
	return Reading(v), nil
}

func (r Reading) Blocked(t Turn) bool {
	switch t {
	case Right:
		return r&RightBlocked != 0
	case Straight:
		return r&FrontBlocked != 0
	case Left:
		return r&LeftBlocked != 0
	default:
		return false
	}
}

// Absolute rotates the reading into compass walls for heading h.
func (r Reading) Absolute(h Heading) Walls {
	var w Walls
	w[h.Rotate(Right)] = r&RightBlocked != 0
	w[h] = r&FrontBlocked != 0
	w[h.Rotate(Left)] = r&LeftBlocked != 0
	return w
}

func (r Reading) String() string {
	return strconv.Itoa(int(r))
}
