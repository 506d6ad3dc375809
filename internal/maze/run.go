package maze

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Phase counts completed runs. It only ever grows.
type Phase uint

const (
	Outbound Phase = iota
	Inbound
	VirtualCompare
)

// Live reports whether runs in this phase consult the sensor.
func (p Phase) Live() bool {
	return p < VirtualCompare
}

func (p Phase) String() string {
	switch {
	case p == Outbound:
		return "outbound"
	case p == Inbound:
		return "inbound"
	case p == VirtualCompare:
		return "virtual-compare"
	case p%2 == 0:
		return fmt.Sprintf("replay-outbound(%d)", uint(p))
	default:
		return fmt.Sprintf("replay-inbound(%d)", uint(p))
	}
}

// Next performs one run of the cycle and advances the phase counter.
func (s *Session) Next(ctx context.Context) error {
	log := s.log.WithField("phase", s.phase)

	if s.phase == VirtualCompare {
		if err := s.virtualCompare(ctx); err != nil {
			return err
		}
	}

	s.swap()
	switch s.phase {
	case Outbound:
		seedGoal(s.active)
	case Inbound:
		seedStart(s.active)
	}

	log.WithFields(logrus.Fields{
		"pos":     s.robot.Pos,
		"heading": s.robot.Heading(),
	}).Info("run started")

	steps, err := s.trace(ctx)
	if err != nil {
		return fmt.Errorf("%s run: %w", s.phase, err)
	}
	s.filter()
	s.display.ShowCosts(s)

	log.WithFields(logrus.Fields{
		"steps":   steps,
		"pos":     s.robot.Pos,
		"heading": s.robot.Heading(),
	}).Info("run finished")

	s.phase++
	return nil
}

// Run repeats Next until the prompt declines or a run fails.
func (s *Session) Run(ctx context.Context, prompt Prompt) error {
	for {
		if err := s.Next(ctx); err != nil {
			return err
		}
		more, err := prompt.Continue(ctx)
		if err != nil {
			return fmt.Errorf("unable to prompt: %w", err)
		}
		if !more {
			s.log.WithField("phase", s.phase).Info("session ended")
			return nil
		}
	}
}

// filter marks every cell whose cost still equals its seed as unknown.
// Even runs are seeded toward the goal, odd runs toward the start.
func (s *Session) filter() {
	n := s.size
	if s.phase%2 == 0 {
		s.active.Map(func(p Pos, c Cost) Cost {
			switch {
			case IsGoal(n, p):
				return 0
			case c == GoalDistance(n, p):
				return UnknownCost
			default:
				return c
			}
		})
	} else {
		s.active.Map(func(p Pos, c Cost) Cost {
			switch {
			case p == Start:
				return 0
			case c == StartDistance(p):
				return UnknownCost
			default:
				return c
			}
		})
	}
	s.display.ShowWalls(s)
}

// virtualCompare replays both explored directions on wall knowledge alone
// and keeps the cost field and orientation of the shorter one.
func (s *Session) virtualCompare(ctx context.Context) error {
	log := s.log.WithField("phase", s.phase)

	s.swap()
	s.robot.faceNorth()
	forward, err := s.trace(ctx)
	if err != nil {
		return fmt.Errorf("forward virtual pass: %w", err)
	}
	s.forward = forward
	s.display.ShowTrace(s)

	s.swap()
	reverse, err := s.trace(ctx)
	if err != nil {
		return fmt.Errorf("reverse virtual pass: %w", err)
	}
	s.reverse = reverse.Sub(reverseCorrection)
	s.display.ShowTrace(s)

	log = log.WithFields(logrus.Fields{
		"forward": s.forward,
		"reverse": s.reverse,
	})

	if s.forward <= s.reverse {
		s.robot.faceNorth()
		log.Info("keeping forward orientation")
		return nil
	}

	n := s.size
	s.active.Map(func(p Pos, c Cost) Cost {
		switch {
		case IsGoal(n, p):
			return 0
		case s.cells.At(p).OnPath:
			return InversionBase.Sub(c)
		default:
			return UnknownCost
		}
	})
	s.swap()
	s.robot.TurnCount += uint(Reverse)
	log.Info("switching to reverse orientation")
	return nil
}
