// Package console emulates the wall sensor and the continuation prompt on
// a text terminal. Both read from the same input stream.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vancomm/micromouse/internal/maze"
)

type line struct {
	text string
	err  error
}

type Console struct {
	out   io.Writer
	lines chan line
}

// New starts reading in on a background goroutine so that a pending read
// can be abandoned when the context is cancelled.
func New(in io.Reader, out io.Writer) *Console {
	c := &Console{out: out, lines: make(chan line)}
	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			c.lines <- line{text: scanner.Text()}
		}
		err := scanner.Err()
		if err == nil {
			err = io.EOF
		}
		for {
			c.lines <- line{err: err}
		}
	}()
	return c
}

// token returns the next whitespace-delimited word, skipping blank lines.
func (c *Console) token(ctx context.Context) (string, error) {
	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case l := <-c.lines:
			if l.err != nil {
				return "", l.err
			}
			if fields := strings.Fields(l.text); len(fields) > 0 {
				return fields[0], nil
			}
		}
	}
}

// ReadWalls implements [maze.Sensor].
func (c *Console) ReadWalls(ctx context.Context, at maze.Pos, h maze.Heading) (int, error) {
	fmt.Fprintf(c.out, "\nwalls at %s facing %s (1 right, 2 front, 4 left): ", at, h)
	tok, err := c.token(ctx)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", maze.ErrInvalidReading, tok)
	}
	return v, nil
}

// Continue implements [maze.Prompt]. Only an answer starting with 'y'
// continues; end of input stops.
func (c *Console) Continue(ctx context.Context) (bool, error) {
	fmt.Fprint(c.out, "Do you want to continue? ")
	tok, err := c.token(ctx)
	if err == io.EOF {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return strings.HasPrefix(strings.ToLower(tok), "y"), nil
}

// Cycles answers yes until n runs have completed.
type Cycles struct {
	remaining int
}

func NewCycles(n int) *Cycles {
	return &Cycles{remaining: n}
}

// Continue implements [maze.Prompt].
func (c *Cycles) Continue(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	c.remaining--
	return c.remaining > 0, nil
}
