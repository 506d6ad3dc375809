package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func costs(straight, right, left Cost) func(Turn) Cost {
	return func(t Turn) Cost {
		switch t {
		case Straight:
			return straight
		case Right:
			return right
		case Left:
			return left
		}
		panic("reverse cost is never consulted")
	}
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name                  string
		reading               Reading
		straight, right, left Cost
		want                  Turn
	}{
		{"all open, straight cheapest", Open, 3, 4, 5, Straight},
		{"all open, straight ties lower side", Open, 3, 3, 5, Straight},
		{"all open, straight ties both", Open, 3, 3, 3, Straight},
		{"all open, right cheaper", Open, 5, 2, 4, Right},
		{"all open, left cheaper", Open, 5, 4, 2, Left},
		{"all open, sides tie", Open, 5, 2, 2, Right},
		{"right blocked, straight", RightBlocked, 3, 0, 3, Straight},
		{"right blocked, left", RightBlocked, 4, 0, 3, Left},
		{"left blocked, straight", LeftBlocked, 3, 3, 0, Straight},
		{"left blocked, right", LeftBlocked, 4, 3, 0, Right},
		{"front blocked, tie goes right", FrontBlocked, 0, 6, 6, Right},
		{"front blocked, right cheaper", FrontBlocked, 0, 5, 6, Right},
		{"front blocked, left cheaper", FrontBlocked, 0, 7, 6, Left},
		{"corridor", RightBlocked | LeftBlocked, 9, 0, 0, Straight},
		{"only left", RightBlocked | FrontBlocked, 0, 0, 9, Left},
		{"only right", LeftBlocked | FrontBlocked, 0, 9, 0, Right},
		{"dead end", DeadEnd, 0, 0, 0, Reverse},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := Decide(test.reading, costs(test.straight, test.right, test.left))
			assert.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestDecideRejectsUnknownReading(t *testing.T) {
	_, err := Decide(Reading(8), costs(0, 0, 0))
	assert.ErrorIs(t, err, ErrInvalidReading)
}
