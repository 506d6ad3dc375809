package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/micromouse/internal/config"
	"github.com/vancomm/micromouse/internal/console"
	"github.com/vancomm/micromouse/internal/maze"
	"github.com/vancomm/micromouse/internal/render"
	"github.com/vancomm/micromouse/internal/sensor"
	"github.com/vancomm/micromouse/internal/viewer"
)

var log = logrus.New()

// loggers shares one configuration across every package logger.
var loggers = []*logrus.Logger{log, maze.Log, sensor.Log, viewer.Log}

func setupLogging() {
	level := logrus.InfoLevel
	if config.Development() {
		level = logrus.DebugLevel
	}

	var hook logrus.Hook
	if path := config.LogFile(); path != "" {
		var err error
		hook, err = rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   path,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
			Level:      level,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			log.Fatal("unable to set up log file: ", err)
		}
	}

	for _, l := range loggers {
		l.SetLevel(level)
		l.SetFormatter(&logrus.TextFormatter{ForceColors: true})
		l.SetOutput(os.Stderr)
		if hook != nil {
			l.AddHook(hook)
		}
	}
}

func openSensor(cfg *config.Maze, term *console.Console) (maze.Sensor, io.Closer, error) {
	switch cfg.Sensor {
	case config.SensorLayout:
		layout, err := sensor.LoadLayout(cfg.Layout)
		if err != nil {
			return nil, nil, err
		}
		if layout.Size() != cfg.Size {
			log.WithFields(logrus.Fields{
				"layout": layout.Size(),
				"config": cfg.Size,
			}).Warn("grid size taken from layout")
			cfg.Size = layout.Size()
		}
		return layout, nil, nil
	case config.SensorSerial:
		s, err := sensor.OpenSerial(cfg.Serial.Port, sensor.PortOptions{
			BaudRate: cfg.Serial.BaudRate,
			DataBits: cfg.Serial.DataBits,
			StopBits: cfg.Serial.StopBits,
			Parity:   cfg.Serial.Parity,
		}, nil)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	default:
		return term, nil, nil
	}
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.NewMaze()
	if err != nil {
		log.Fatal("unable to read config: ", err)
	}

	var (
		viewerAddr = config.ViewerAddr()
		cycles     int
	)
	flag.IntVar(&cfg.Size, "size", cfg.Size, "maze side length (even)")
	flag.StringVar(&cfg.Sensor, "sensor", cfg.Sensor, "wall sensor: console, layout or serial")
	flag.StringVar(&cfg.Layout, "layout", cfg.Layout, "maze layout file for the layout sensor")
	flag.StringVar(&cfg.Serial.Port, "port", cfg.Serial.Port, "serial port of the sensor head")
	flag.StringVar(&viewerAddr, "viewer", viewerAddr, "live viewer listen address (empty disables)")
	flag.IntVar(&cycles, "cycles", 0, "run this many times without prompting (0 prompts)")
	flag.Parse()

	setupLogging()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	term := console.New(os.Stdin, os.Stdout)
	wallSensor, closer, err := openSensor(cfg, term)
	if err != nil {
		log.Fatal("unable to open sensor: ", err)
	}
	if closer != nil {
		defer closer.Close()
	}

	displays := maze.Displays{render.New(os.Stdout)}
	var hub *viewer.Hub
	if viewerAddr != "" {
		hub = viewer.NewHub()
		displays = append(displays, hub)
	}

	session, err := maze.NewSession(cfg.Size, wallSensor, displays)
	if err != nil {
		log.Fatal(err)
	}

	var prompt maze.Prompt = term
	if cycles > 0 {
		prompt = console.NewCycles(cycles)
	}

	log.WithFields(logrus.Fields{
		"session": session.ID.String(),
		"size":    cfg.Size,
		"sensor":  cfg.Sensor,
		"viewer":  viewerAddr,
	}).Info("starting up")

	g, gCtx := errgroup.WithContext(mainCtx)
	viewerCtx, stopViewer := context.WithCancel(gCtx)
	defer stopViewer()

	if hub != nil {
		g.Go(func() error {
			return viewer.Serve(viewerCtx, viewerAddr, hub)
		})
	}
	g.Go(func() error {
		defer stopViewer()
		return session.Run(gCtx, prompt)
	})

	if err := g.Wait(); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Info("interrupted")
			return
		}
		if errors.Is(err, maze.ErrInvalidReading) {
			log.WithError(err).Fatal("sensor fault")
		}
		log.Fatal(err)
	}
}
