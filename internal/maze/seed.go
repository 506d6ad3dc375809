package maze

// Start is where every session begins, facing North.
var Start = Pos{Row: 0, Col: 0}

// GoalCells returns the four centre cells of an n×n grid.
func GoalCells(n int) [4]Pos {
	h := n / 2
	return [4]Pos{
		{Row: h - 1, Col: h - 1},
		{Row: h - 1, Col: h},
		{Row: h, Col: h - 1},
		{Row: h, Col: h},
	}
}

func IsGoal(n int, p Pos) bool {
	h := n / 2
	return (p.Row == h-1 || p.Row == h) && (p.Col == h-1 || p.Col == h)
}

// GoalDistance is the Manhattan distance from p to the nearest centre cell.
// Each quadrant measures from its own inner corner.
func GoalDistance(n int, p Pos) Cost {
	h := n / 2
	dr := p.Row - h
	if p.Row < h {
		dr = h - 1 - p.Row
	}
	dc := p.Col - h
	if p.Col < h {
		dc = h - 1 - p.Col
	}
	return costOf(dr + dc)
}

// StartDistance is the Manhattan distance from p to the start cell.
func StartDistance(p Pos) Cost {
	return costOf(p.Row - Start.Row + p.Col - Start.Col)
}

func seedGoal(f *CostField) {
	f.Map(func(p Pos, _ Cost) Cost { return GoalDistance(f.size, p) })
}

func seedStart(f *CostField) {
	f.Map(func(p Pos, _ Cost) Cost { return StartDistance(p) })
}
