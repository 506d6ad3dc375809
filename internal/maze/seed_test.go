package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoalDistance(t *testing.T) {
	tests := []struct {
		n    int
		p    Pos
		want Cost
	}{
		{16, Pos{0, 0}, 14},
		{16, Pos{15, 15}, 14},
		{16, Pos{0, 15}, 14},
		{16, Pos{15, 0}, 14},
		{16, Pos{7, 7}, 0},
		{16, Pos{8, 8}, 0},
		{16, Pos{7, 0}, 7},
		{16, Pos{8, 3}, 4},
		{16, Pos{3, 12}, 8},
		{4, Pos{0, 0}, 2},
		{4, Pos{1, 0}, 1},
		{4, Pos{2, 0}, 1},
		{4, Pos{3, 3}, 2},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, GoalDistance(test.n, test.p), "%d %s", test.n, test.p)
	}
}

func TestSeedGoalHasFourZeros(t *testing.T) {
	for _, n := range []int{4, 8, 16, 32} {
		f := NewCostField(n)
		seedGoal(f)
		var zeros []Pos
		for p, c := range f.All() {
			if c == 0 {
				zeros = append(zeros, p)
			}
		}
		goals := GoalCells(n)
		assert.ElementsMatch(t, goals[:], zeros, "n=%d", n)
		for _, p := range goals {
			assert.True(t, IsGoal(n, p))
		}
	}
}

// The quadrant seed is the plain Manhattan distance to the nearest goal
// cell.
func TestSeedGoalIsNearestManhattan(t *testing.T) {
	n := 16
	f := NewCostField(n)
	seedGoal(f)
	goals := GoalCells(n)
	for p, c := range f.All() {
		best := 1 << 30
		for _, g := range goals {
			d := abs(p.Row-g.Row) + abs(p.Col-g.Col)
			best = min(best, d)
		}
		assert.Equal(t, Cost(best), c, "%s", p)
	}
}

func TestSeedStart(t *testing.T) {
	f := NewCostField(16)
	seedStart(f)
	assert.Equal(t, Cost(0), f.At(Start))
	assert.Equal(t, Cost(30), f.At(Pos{15, 15}))
	assert.Equal(t, Cost(9), f.At(Pos{4, 5}))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
