// Package sensor provides wall sensors for the navigation core: a simulated
// one backed by a known maze layout and a serial-attached sensor head.
package sensor

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vancomm/micromouse/internal/maze"
)

// Layout is a fully known maze. It answers wall readings for any pose,
// which makes it a stand-in for the physical sensor head.
//
// The text form is the usual ASCII maze drawing with north at the top:
//
//	+---+---+
//	|       |
//	+   +---+
//	|       |
//	+---+---+
//
// Cells are three characters wide. A '|' between cells is a vertical wall;
// any non-blank run on a '+' line is a horizontal wall.
type Layout struct {
	size  int
	walls []maze.Walls
}

// OpenLayout returns an n×n maze without interior walls.
func OpenLayout(n int) *Layout {
	l := &Layout{size: n, walls: make([]maze.Walls, n*n)}
	l.enclose()
	return l
}

func LoadLayout(path string) (*Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open layout: %w", err)
	}
	defer f.Close()
	return ParseLayout(f)
}

func ParseLayout(r io.Reader) (*Layout, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if line == "" && len(lines) == 0 {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("unable to read layout: %w", err)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("empty layout")
	}

	n := (len(lines[0]) - 1) / 4
	if n < 1 || len(lines[0]) != 4*n+1 {
		return nil, fmt.Errorf("malformed top border %q", lines[0])
	}
	if len(lines) != 2*n+1 {
		return nil, fmt.Errorf("layout has %d lines, want %d for a %dx%d maze",
			len(lines), 2*n+1, n, n)
	}

	l := &Layout{size: n, walls: make([]maze.Walls, n*n)}
	for t := range n {
		row := n - 1 - t
		above, middle, below := lines[2*t], lines[2*t+1], lines[2*t+2]
		for col := range n {
			w := l.at(maze.Pos{Row: row, Col: col})
			w[maze.North] = horizontalWall(above, col)
			w[maze.South] = horizontalWall(below, col)
			w[maze.West] = charAt(middle, 4*col) == '|'
			w[maze.East] = charAt(middle, 4*col+4) == '|'
		}
	}
	l.enclose()
	return l, nil
}

func charAt(line string, i int) byte {
	if i < len(line) {
		return line[i]
	}
	return ' '
}

func horizontalWall(line string, col int) bool {
	for i := 4*col + 1; i <= 4*col+3; i++ {
		if charAt(line, i) != ' ' {
			return true
		}
	}
	return false
}

func (l *Layout) at(p maze.Pos) *maze.Walls {
	return &l.walls[p.Row*l.size+p.Col]
}

// enclose adds the outer boundary, which is never optional.
func (l *Layout) enclose() {
	for i := range l.walls {
		row, col := i/l.size, i%l.size
		w := &l.walls[i]
		w[maze.South] = w[maze.South] || row == 0
		w[maze.North] = w[maze.North] || row == l.size-1
		w[maze.West] = w[maze.West] || col == 0
		w[maze.East] = w[maze.East] || col == l.size-1
	}
}

func (l *Layout) Size() int { return l.size }

// Walls returns the true walls around p.
func (l *Layout) Walls(p maze.Pos) maze.Walls {
	return *l.at(p)
}

// ReadWalls implements [maze.Sensor].
func (l *Layout) ReadWalls(ctx context.Context, at maze.Pos, h maze.Heading) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if at.Row < 0 || at.Row >= l.size || at.Col < 0 || at.Col >= l.size {
		return 0, fmt.Errorf("position %s outside %dx%d layout", at, l.size, l.size)
	}
	return int(l.Walls(at).Relative(h)), nil
}

// String draws the layout in the format ParseLayout accepts.
func (l *Layout) String() string {
	var b strings.Builder
	for t := range l.size {
		row := l.size - 1 - t
		b.WriteByte('+')
		for col := range l.size {
			if l.Walls(maze.Pos{Row: row, Col: col})[maze.North] {
				b.WriteString("---+")
			} else {
				b.WriteString("   +")
			}
		}
		b.WriteByte('\n')
		for col := range l.size {
			if l.Walls(maze.Pos{Row: row, Col: col})[maze.West] {
				b.WriteString("|   ")
			} else {
				b.WriteString("    ")
			}
		}
		b.WriteString("|\n")
	}
	b.WriteByte('+')
	for range l.size {
		b.WriteString("---+")
	}
	b.WriteByte('\n')
	return b.String()
}
