package maze

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// Sensor reports the walls around the robot as a raw relative mask
// (1 right, 2 front, 4 left). Values are validated by the session.
type Sensor interface {
	ReadWalls(ctx context.Context, at Pos, heading Heading) (int, error)
}

// Display renders session state for a human. It must not mutate the
// session.
type Display interface {
	ShowCosts(s *Session)
	ShowWalls(s *Session)
	ShowTrace(s *Session)
}

// Prompt asks whether another run should follow.
type Prompt interface {
	Continue(ctx context.Context) (bool, error)
}

type NopDisplay struct{}

func (NopDisplay) ShowCosts(*Session) {}
func (NopDisplay) ShowWalls(*Session) {}
func (NopDisplay) ShowTrace(*Session) {}

// Displays fans every call out to each display in order.
type Displays []Display

func (ds Displays) ShowCosts(s *Session) {
	for _, d := range ds {
		d.ShowCosts(s)
	}
}

func (ds Displays) ShowWalls(s *Session) {
	for _, d := range ds {
		d.ShowWalls(s)
	}
}

func (ds Displays) ShowTrace(s *Session) {
	for _, d := range ds {
		d.ShowTrace(s)
	}
}

// Robot is the pose and odometry of the mouse. Heading is derived from
// the accumulated turn counter.
type Robot struct {
	Pos       Pos
	TurnCount uint
	Steps     Cost
}

func (r Robot) Heading() Heading {
	return Heading(r.TurnCount % 4)
}

// faceNorth advances the turn counter to the next multiple of four.
func (r *Robot) faceNorth() {
	r.TurnCount += 4 - r.TurnCount%4
}

// Session owns all state of one maze: wall knowledge, the two cost
// buffers, the robot and the phase counter. It is not safe for concurrent
// use.
type Session struct {
	ID uuid.UUID

	size     int
	cells    *Grid
	active   *CostField
	previous *CostField
	robot    Robot
	phase    Phase

	// corrected path lengths recorded by the virtual comparison
	forward, reverse Cost

	sensor  Sensor
	display Display
	log     *logrus.Entry
}

func NewSession(size int, sensor Sensor, display Display) (*Session, error) {
	if err := validateSize(size); err != nil {
		return nil, err
	}
	if display == nil {
		display = NopDisplay{}
	}
	id := uuid.New()
	s := &Session{
		ID:       id,
		size:     size,
		cells:    NewGrid(size),
		active:   NewCostField(size),
		previous: NewCostField(size),
		robot:    Robot{Pos: Start},
		sensor:   sensor,
		display:  display,
		log:      Log.WithField("session", id.String()),
	}
	return s, nil
}

func (s *Session) Size() int    { return s.size }
func (s *Session) Phase() Phase { return s.phase }
func (s *Session) Robot() Robot { return s.robot }

func (s *Session) Cost(p Pos) Cost         { return s.active.At(p) }
func (s *Session) PreviousCost(p Pos) Cost { return s.previous.At(p) }
func (s *Session) Cell(p Pos) Cell         { return *s.cells.At(p) }

// Lengths returns the forward and corrected reverse path lengths of the
// last virtual comparison.
func (s *Session) Lengths() (forward, reverse Cost) {
	return s.forward, s.reverse
}

// swap exchanges the active and previous cost buffers.
func (s *Session) swap() {
	s.active, s.previous = s.previous, s.active
}
