package maze

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// neighbourCost is the active cost of the cell reached by t. Cells outside
// the grid read as MaxCost.
func (s *Session) neighbourCost(t Turn) Cost {
	p := s.robot.Pos.Neighbour(s.robot.Heading(), t)
	if !s.cells.Contains(p) {
		return MaxCost
	}
	return s.active.At(p)
}

// reading asks the sensor in live phases and falls back to the wall
// knowledge of the current cell otherwise.
func (s *Session) reading(ctx context.Context) (Reading, error) {
	p, h := s.robot.Pos, s.robot.Heading()
	if !s.phase.Live() {
		return s.cells.At(p).Walls.Relative(h), nil
	}
	s.display.ShowCosts(s)
	v, err := s.sensor.ReadWalls(ctx, p, h)
	if err != nil {
		return 0, fmt.Errorf("unable to read walls at %s: %w", p, err)
	}
	return ParseReading(v)
}

// advance applies the flood-fill update to the cell being vacated, fuses
// the reading (live) or marks the path (replay), then moves one cell.
func (s *Session) advance(t Turn, r Reading) error {
	from, h := s.robot.Pos, s.robot.Heading()
	to := from.Neighbour(h, t)
	if !s.cells.Contains(to) {
		return &OutOfBoundsError{From: from, Heading: h, Turn: t}
	}

	if cur, next := s.active.At(from), s.active.At(to); cur <= next {
		s.active.Set(from, next.Add(1))
	}

	if s.phase.Live() {
		s.fuse(r)
	} else {
		s.cells.At(from).OnPath = true
	}

	s.robot.Pos = to
	s.robot.Steps = s.robot.Steps.Add(1)
	s.robot.TurnCount += uint(t)

	s.log.WithFields(logrus.Fields{
		"phase":   s.phase,
		"from":    from,
		"to":      to,
		"turn":    t,
		"heading": s.robot.Heading(),
		"reading": r,
		"cost":    s.active.At(from),
	}).Debug("step")
	return nil
}

// fuse merges a live reading into the current cell, charges the visit and
// relaxes the cell behind.
func (s *Session) fuse(r Reading) {
	p, h := s.robot.Pos, s.robot.Heading()
	c := s.cells.At(p)
	cost := s.active.At(p)

	if r == DeadEnd {
		// Cells off the start row and column are trapped for good.
		if p.Row != Start.Row && p.Col != Start.Col {
			c.Walls.Merge(AllWalls)
		} else {
			c.Walls.Merge(r.Absolute(h))
		}
		cost = cost.Add(DeadEndPenalty)
		s.log.WithFields(logrus.Fields{
			"pos":     p,
			"trapped": c.Walls.Full(),
		}).Debug("dead end")
	} else {
		c.Walls.Merge(r.Absolute(h))
	}
	s.active.Set(p, cost.Add(VisitIncrement))

	s.relax()
	c.Visited = true
}

// relax lowers the cost of the cell just vacated when the current cell is
// entered for the first time and the vacated cost sits at least
// relaxMargin above its seed distance.
func (s *Session) relax() {
	p := s.robot.Pos
	if s.cells.At(p).Visited {
		return
	}
	back := p.Step(s.robot.Heading().Opposite())
	if !s.cells.Contains(back) {
		return
	}
	ideal := StartDistance(back)
	if s.phase == Outbound {
		ideal = GoalDistance(s.size, back)
	}
	if cost := s.active.At(back); cost >= ideal.Add(relaxMargin) {
		s.active.Set(back, cost.Sub(RelaxStep))
	}
}

// trace drives the robot until it stands on a zero-cost cell and returns
// the number of steps taken.
func (s *Session) trace(ctx context.Context) (Cost, error) {
	s.robot.Steps = 0
	if !s.phase.Live() {
		s.cells.clearPath()
	}
	for s.active.At(s.robot.Pos) != 0 {
		r, err := s.reading(ctx)
		if err != nil {
			return s.robot.Steps, err
		}
		t, err := Decide(r, s.neighbourCost)
		if err != nil {
			return s.robot.Steps, err
		}
		if err := s.advance(t, r); err != nil {
			return s.robot.Steps, err
		}
	}
	return s.robot.Steps, nil
}
