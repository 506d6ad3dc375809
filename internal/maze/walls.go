package maze

import "strings"

// Walls records which sides of a cell are known to be blocked, indexed by
// absolute heading.
type Walls [4]bool

// AllWalls is the mask of a cell that must never be entered again.
var AllWalls = Walls{true, true, true, true}

// Merge adds the walls of other. Bits are never cleared.
func (w *Walls) Merge(other Walls) {
	for _, h := range Headings {
		w[h] = w[h] || other[h]
	}
}

func (w Walls) Open(h Heading) bool {
	return !w[h%4]
}

func (w Walls) Full() bool {
	return w == AllWalls
}

// Covers reports whether every wall of other is also set in w.
func (w Walls) Covers(other Walls) bool {
	for _, h := range Headings {
		if other[h] && !w[h] {
			return false
		}
	}
	return true
}

// Relative rotates the walls into a reading taken while facing h. The wall
// behind is not part of a reading.
func (w Walls) Relative(h Heading) Reading {
	var r Reading
	if w[h.Rotate(Right)] {
		r |= RightBlocked
	}
	if w[h] {
		r |= FrontBlocked
	}
	if w[h.Rotate(Left)] {
		r |= LeftBlocked
	}
	return r
}

// String lists the blocked sides in NESW order, '.' for open ones.
func (w Walls) String() string {
	var b strings.Builder
	for _, h := range Headings {
		if w[h] {
			b.WriteString(h.String())
		} else {
			b.WriteByte('.')
		}
	}
	return b.String()
}
