package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vancomm/micromouse/internal/maze"
)

func snapshot() maze.Snapshot {
	return maze.Snapshot{
		Phase:   "outbound",
		Size:    2,
		Robot:   maze.Pos{Row: 0, Col: 1},
		Heading: "E",
		Forward: 14,
		Reverse: 10,
		Costs:   [][]int{{3, 2}, {200, 0}},
		Cells: [][]maze.Cell{
			{
				{Walls: maze.Walls{South: true, West: true}, Visited: true, OnPath: true},
				{Walls: maze.Walls{South: true, East: true}},
			},
			{
				{Walls: maze.Walls{North: true, West: true}},
				{Walls: maze.Walls{North: true, East: true}, OnPath: true},
			},
		},
	}
}

func TestCosts(t *testing.T) {
	want := "\t200\t0\n\n" +
		"\t3\t2*E\n\n"
	assert.Equal(t, want, Costs(snapshot()))
}

func TestWalls(t *testing.T) {
	want := "\tWALLS\n" +
		"\tN..W\tNE..\n" +
		"\t..SW+\t.ES.\n"
	assert.Equal(t, want, Walls(snapshot()))
}

func TestTrace(t *testing.T) {
	got := Trace(snapshot())
	assert.True(t, strings.HasPrefix(got, "\tTRACE\n\t200\t**\n\n\t**\t2\n\n"), got)
	assert.True(t, strings.HasSuffix(got, "forward path length 14, reverse path length 10\n"), got)
}

func TestTextDisplay(t *testing.T) {
	s, err := maze.NewSession(4, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	d := New(&out)

	d.ShowCosts(s)
	d.ShowWalls(s)
	d.ShowTrace(s)

	text := out.String()
	assert.Contains(t, text, "\t0*N")
	assert.Contains(t, text, "\tWALLS\n")
	assert.Contains(t, text, "forward path length 0, reverse path length 0")
}
