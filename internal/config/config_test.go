package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMazeDefaults(t *testing.T) {
	for _, name := range []string{"MAZE_SIZE", "SENSOR", "MAZE_LAYOUT", "SERIAL_PORT", "SERIAL_BAUD"} {
		t.Setenv(name, "")
	}

	cfg, err := NewMaze()
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.Size)
	assert.Equal(t, SensorConsole, cfg.Sensor)
	assert.NoError(t, cfg.Validate())
}

func TestNewMazeFromEnv(t *testing.T) {
	t.Setenv("MAZE_SIZE", " 8 ")
	t.Setenv("SENSOR", "Serial")
	t.Setenv("SERIAL_PORT", "/dev/ttyACM0")
	t.Setenv("SERIAL_BAUD", "115200")
	t.Setenv("SERIAL_STOP_BITS", "2")
	t.Setenv("SERIAL_PARITY", "E")
	t.Setenv("SERIAL_DATA_BITS", "")
	t.Setenv("MAZE_LAYOUT", "")

	cfg, err := NewMaze()
	require.NoError(t, err)
	assert.Equal(t, &Maze{
		Size:   8,
		Sensor: SensorSerial,
		Serial: Serial{
			Port:     "/dev/ttyACM0",
			BaudRate: 115200,
			StopBits: 2,
			Parity:   "E",
		},
	}, cfg)
	assert.NoError(t, cfg.Validate())
}

func TestNewMazeRejectsBadNumbers(t *testing.T) {
	t.Setenv("MAZE_SIZE", "sixteen")
	_, err := NewMaze()
	assert.ErrorContains(t, err, "MAZE_SIZE")
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		cfg Maze
		ok  bool
	}{
		{Maze{Sensor: SensorConsole}, true},
		{Maze{Sensor: SensorLayout}, false},
		{Maze{Sensor: SensorLayout, Layout: "maze.txt"}, true},
		{Maze{Sensor: SensorSerial}, false},
		{Maze{Sensor: SensorSerial, Serial: Serial{Port: "COM3"}}, true},
		{Maze{Sensor: "sonar"}, false},
	}
	for _, test := range testCases {
		err := test.cfg.Validate()
		if test.ok != (err == nil) {
			t.Errorf("Validate(%+v) returned %v", test.cfg, err)
		}
	}
}

func TestDevelopment(t *testing.T) {
	t.Setenv("DEVELOPMENT", "1")
	assert.True(t, Development())
	t.Setenv("DEVELOPMENT", "0")
	assert.False(t, Development())
}
