// Package render draws session snapshots as tab-separated text grids with
// north at the top.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/vancomm/micromouse/internal/maze"
)

// Costs draws the cost field. The robot's cell reads "cost*heading".
func Costs(s maze.Snapshot) string {
	var b strings.Builder
	for row := s.Size - 1; row >= 0; row-- {
		for col := range s.Size {
			if (maze.Pos{Row: row, Col: col}) == s.Robot {
				fmt.Fprintf(&b, "\t%d*%s", s.Costs[row][col], s.Heading)
			} else {
				fmt.Fprintf(&b, "\t%d", s.Costs[row][col])
			}
		}
		b.WriteString("\n\n")
	}
	return b.String()
}

// Walls draws the wall knowledge; visited cells are suffixed with '+'.
func Walls(s maze.Snapshot) string {
	var b strings.Builder
	b.WriteString("\tWALLS\n")
	for row := s.Size - 1; row >= 0; row-- {
		for col := range s.Size {
			c := s.Cells[row][col]
			fmt.Fprintf(&b, "\t%s", c.Walls)
			if c.Visited {
				b.WriteByte('+')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Trace draws the cost field with path cells replaced by "**", followed by
// both virtual path lengths.
func Trace(s maze.Snapshot) string {
	var b strings.Builder
	b.WriteString("\tTRACE\n")
	for row := s.Size - 1; row >= 0; row-- {
		for col := range s.Size {
			if s.Cells[row][col].OnPath {
				b.WriteString("\t**")
			} else {
				fmt.Fprintf(&b, "\t%d", s.Costs[row][col])
			}
		}
		b.WriteString("\n\n")
	}
	fmt.Fprintf(&b, "forward path length %d, reverse path length %d\n", s.Forward, s.Reverse)
	return b.String()
}

// Text is a [maze.Display] writing to w.
type Text struct {
	w io.Writer
}

func New(w io.Writer) *Text {
	return &Text{w: w}
}

func (t *Text) ShowCosts(s *maze.Session) {
	fmt.Fprintln(t.w, Costs(s.Snapshot()))
}

func (t *Text) ShowWalls(s *maze.Session) {
	fmt.Fprintln(t.w, Walls(s.Snapshot()))
}

func (t *Text) ShowTrace(s *maze.Session) {
	fmt.Fprintln(t.w, Trace(s.Snapshot()))
}
