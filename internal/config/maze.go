package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	SensorConsole = "console"
	SensorLayout  = "layout"
	SensorSerial  = "serial"
)

type Serial struct {
	Port     string
	BaudRate int
	DataBits int
	StopBits int
	Parity   string
}

type Maze struct {
	Size   int
	Sensor string
	Layout string
	Serial Serial
}

func lookupInt(name string, fallback int) (int, error) {
	s, ok := os.LookupEnv(name)
	if !ok || strings.TrimSpace(s) == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("unable to convert %s to int: %w", name, err)
	}
	return v, nil
}

func NewMaze() (*Maze, error) {
	size, err := lookupInt("MAZE_SIZE", 16)
	if err != nil {
		return nil, err
	}

	sensor, ok := os.LookupEnv("SENSOR")
	if !ok || sensor == "" {
		sensor = SensorConsole
	}

	baud, err := lookupInt("SERIAL_BAUD", 0)
	if err != nil {
		return nil, err
	}
	dataBits, err := lookupInt("SERIAL_DATA_BITS", 0)
	if err != nil {
		return nil, err
	}
	stopBits, err := lookupInt("SERIAL_STOP_BITS", 0)
	if err != nil {
		return nil, err
	}

	config := &Maze{
		Size:   size,
		Sensor: strings.ToLower(sensor),
		Layout: os.Getenv("MAZE_LAYOUT"),
		Serial: Serial{
			Port:     os.Getenv("SERIAL_PORT"),
			BaudRate: baud,
			DataBits: dataBits,
			StopBits: stopBits,
			Parity:   os.Getenv("SERIAL_PARITY"),
		},
	}

	return config, nil
}

// Validate checks the combination of settings once flags have been applied.
func (c Maze) Validate() error {
	switch c.Sensor {
	case SensorConsole:
	case SensorLayout:
		if c.Layout == "" {
			return fmt.Errorf("layout sensor needs MAZE_LAYOUT or -layout")
		}
	case SensorSerial:
		if c.Serial.Port == "" {
			return fmt.Errorf("serial sensor needs SERIAL_PORT")
		}
	default:
		return fmt.Errorf("unknown sensor %q", c.Sensor)
	}
	return nil
}
