package maze

// Snapshot is a detached copy of the session state for renderers and
// observers running outside the orchestrator.
type Snapshot struct {
	Session string `json:"session"`
	Phase   string `json:"phase"`
	Size    int    `json:"size"`
	Robot   Pos    `json:"robot"`
	Heading string `json:"heading"`
	Steps   int    `json:"steps"`
	Forward int    `json:"forward"`
	Reverse int    `json:"reverse"`

	// Costs and Cells are indexed [row][col], row 0 south.
	Costs [][]int  `json:"costs"`
	Cells [][]Cell `json:"cells"`
}

func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Session: s.ID.String(),
		Phase:   s.phase.String(),
		Size:    s.size,
		Robot:   s.robot.Pos,
		Heading: s.robot.Heading().String(),
		Steps:   int(s.robot.Steps),
		Forward: int(s.forward),
		Reverse: int(s.reverse),
		Costs:   make([][]int, s.size),
		Cells:   make([][]Cell, s.size),
	}
	for row := range s.size {
		snap.Costs[row] = make([]int, s.size)
		snap.Cells[row] = make([]Cell, s.size)
	}
	for p, c := range s.active.All() {
		snap.Costs[p.Row][p.Col] = int(c)
	}
	for p, c := range s.cells.All() {
		snap.Cells[p.Row][p.Col] = *c
	}
	return snap
}
