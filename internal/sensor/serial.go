package sensor

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"go.bug.st/serial"

	"github.com/vancomm/micromouse/internal/maze"
)

var Log = logrus.New()

// PortOptions describes the serial link to the sensor head.
type PortOptions struct {
	BaudRate int    `json:"baud_rate"`
	DataBits int    `json:"data_bits"`
	StopBits int    `json:"stop_bits"`
	Parity   string `json:"parity"`
}

// Normalize validates the options and fills in defaults (9600 8N1).
func (o PortOptions) Normalize() (PortOptions, error) {
	opts := o

	if opts.BaudRate <= 0 {
		opts.BaudRate = 9600
	}

	if opts.DataBits == 0 {
		opts.DataBits = 8
	}
	if opts.DataBits < 5 || opts.DataBits > 8 {
		return opts, fmt.Errorf("invalid data bits %d: must be between 5 and 8", opts.DataBits)
	}

	if opts.StopBits == 0 {
		opts.StopBits = 1
	}
	if opts.StopBits != 1 && opts.StopBits != 2 {
		return opts, fmt.Errorf("invalid stop bits %d: supported values are 1 or 2", opts.StopBits)
	}

	parity := strings.TrimSpace(strings.ToUpper(opts.Parity))
	switch parity {
	case "", "N", "NONE":
		parity = "N"
	case "E", "EVEN":
		parity = "E"
	case "O", "ODD":
		parity = "O"
	default:
		return opts, fmt.Errorf("unsupported parity %q: expected N, E, or O", opts.Parity)
	}
	opts.Parity = parity

	return opts, nil
}

// Mode converts the options into the go.bug.st/serial port mode.
func (o PortOptions) Mode() (*serial.Mode, error) {
	opts, err := o.Normalize()
	if err != nil {
		return nil, err
	}

	mode := &serial.Mode{
		BaudRate: opts.BaudRate,
		DataBits: opts.DataBits,
		StopBits: serial.OneStopBit,
		Parity:   serial.NoParity,
	}
	if opts.StopBits == 2 {
		mode.StopBits = serial.TwoStopBits
	}
	switch opts.Parity {
	case "E":
		mode.Parity = serial.EvenParity
	case "O":
		mode.Parity = serial.OddParity
	}
	return mode, nil
}

// Opener opens a serial port. It exists so tests can swap the hardware out.
type Opener func(path string, mode *serial.Mode) (io.ReadWriteCloser, error)

func OpenPort(path string, mode *serial.Mode) (io.ReadWriteCloser, error) {
	return serial.Open(path, mode)
}

// Serial talks to a sensor head that answers one request line
// "W <heading>\n" with one line holding the relative wall mask.
type Serial struct {
	port io.ReadWriteCloser
	r    *bufio.Reader
	log  *logrus.Entry
}

func NewSerial(port io.ReadWriteCloser) *Serial {
	return &Serial{
		port: port,
		r:    bufio.NewReader(port),
		log:  Log.WithField("sensor", "serial"),
	}
}

// OpenSerial opens path with opts. A nil open uses the real serial driver.
func OpenSerial(path string, opts PortOptions, open Opener) (*Serial, error) {
	if open == nil {
		open = OpenPort
	}
	mode, err := opts.Mode()
	if err != nil {
		return nil, err
	}
	port, err := open(path, mode)
	if err != nil {
		return nil, fmt.Errorf("unable to open serial port %s: %w", path, err)
	}
	Log.WithFields(logrus.Fields{
		"port": path,
		"baud": mode.BaudRate,
	}).Info("sensor head connected")
	return NewSerial(port), nil
}

// ReadWalls implements [maze.Sensor]. It blocks until the head replies.
func (s *Serial) ReadWalls(ctx context.Context, at maze.Pos, h maze.Heading) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if _, err := fmt.Fprintf(s.port, "W %s\n", h); err != nil {
		return 0, fmt.Errorf("unable to send request: %w", err)
	}
	line, err := s.r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return 0, fmt.Errorf("unable to read reply: %w", err)
	}
	line = strings.TrimSpace(line)
	v, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%w: reply %q", maze.ErrInvalidReading, line)
	}
	s.log.WithFields(logrus.Fields{
		"pos":     at,
		"heading": h,
		"reply":   v,
	}).Debug("walls read")
	return v, nil
}

func (s *Serial) Close() error {
	return s.port.Close()
}
