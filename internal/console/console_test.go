package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/micromouse/internal/maze"
)

func TestReadWalls(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader("\n  3 trailing\n6\n"), &out)
	ctx := context.Background()

	v, err := c.ReadWalls(ctx, maze.Pos{Row: 2, Col: 1}, maze.West)
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	v, err = c.ReadWalls(ctx, maze.Start, maze.North)
	require.NoError(t, err)
	assert.Equal(t, 6, v)

	assert.Contains(t, out.String(), "walls at (2,1) facing W")

	_, err = c.ReadWalls(ctx, maze.Start, maze.North)
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadWallsRejectsWords(t *testing.T) {
	c := New(strings.NewReader("left\n"), io.Discard)

	_, err := c.ReadWalls(context.Background(), maze.Start, maze.North)

	assert.ErrorIs(t, err, maze.ErrInvalidReading)
}

// Out-of-range numbers are left to the session to reject.
func TestReadWallsPassesRawValue(t *testing.T) {
	c := New(strings.NewReader("9\n"), io.Discard)

	v, err := c.ReadWalls(context.Background(), maze.Start, maze.North)

	require.NoError(t, err)
	assert.Equal(t, 9, v)
}

func TestContinue(t *testing.T) {
	testCases := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Yes please\n", true},
		{"n\n", false},
		{"whatever\n", false},
		{"", false},
	}
	for _, test := range testCases {
		c := New(strings.NewReader(test.input), io.Discard)
		more, err := c.Continue(context.Background())
		if err != nil {
			t.Fatalf("Continue(%q) returned %v", test.input, err)
		}
		if more != test.want {
			t.Errorf("Continue(%q): have %v, want %v", test.input, more, test.want)
		}
	}
}

func TestCancelAbandonsPendingRead(t *testing.T) {
	in, w := io.Pipe()
	defer w.Close()
	c := New(in, io.Discard)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := c.ReadWalls(ctx, maze.Start, maze.North)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCycles(t *testing.T) {
	c := NewCycles(3)
	ctx := context.Background()

	var answers []bool
	for range 3 {
		more, err := c.Continue(ctx)
		require.NoError(t, err)
		answers = append(answers, more)
	}
	assert.Equal(t, []bool{true, true, false}, answers)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err := NewCycles(5).Continue(cancelled)
	assert.ErrorIs(t, err, context.Canceled)
}
