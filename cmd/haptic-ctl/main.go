// Command haptic-ctl is an interactive console for exercising the haptic-go
// pulse controller against a simulated backend.
//
// It drives a single motor on a simulated gamepad through timed pulses,
// presets (built-in or loaded from a pattern file), and capability toggles,
// mirroring how a game engine integration would use the library.
//
// Usage:
//
//	haptic-ctl [flags]
//
// Flags:
//
//	-device string     Device reference to drive (default "gamepad0")
//	-motor string      Motor to drive: strong, weak (default "strong")
//	-presets string    Pattern file with additional presets (YAML)
//	-event-log string  Write haptic events to this .hlog file
//	-log-level string  Log level: debug, info, warn, error (default "info")
//
// Examples:
//
//	# Drive the strong motor with default presets
//	haptic-ctl
//
//	# Drive the weak motor, capture events, load custom presets
//	haptic-ctl -motor weak -event-log session.hlog -presets tuning.yaml
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/haptic-kit/haptic-go/cmd/haptic-ctl/interactive"
	"github.com/haptic-kit/haptic-go/pkg/examples"
	"github.com/haptic-kit/haptic-go/pkg/haptics"
	hlog "github.com/haptic-kit/haptic-go/pkg/log"
	"github.com/haptic-kit/haptic-go/pkg/patterns"
	"github.com/haptic-kit/haptic-go/pkg/scheduler"
)

func main() {
	var (
		deviceFlag   = flag.String("device", "gamepad0", "device reference to drive")
		motorFlag    = flag.String("motor", "strong", "motor to drive: strong, weak")
		presetsFlag  = flag.String("presets", "", "pattern file with additional presets (YAML)")
		eventLogFlag = flag.String("event-log", "", "write haptic events to this .hlog file")
		logLevelFlag = flag.String("log-level", "info", "log level: debug, info, warn, error")
	)
	flag.Parse()

	if err := run(*deviceFlag, *motorFlag, *presetsFlag, *eventLogFlag, *logLevelFlag); err != nil {
		fmt.Fprintf(os.Stderr, "haptic-ctl: %v\n", err)
		os.Exit(1)
	}
}

func run(device, motorName, presetsPath, eventLogPath, logLevel string) error {
	motor, err := parseMotor(motorName)
	if err != nil {
		return err
	}

	level, err := parseLogLevel(logLevel)
	if err != nil {
		return err
	}
	slogger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	library := patterns.NewLibrary()
	if presetsPath != "" {
		library, err = patterns.Load(presetsPath)
		if err != nil {
			return fmt.Errorf("loading presets: %w", err)
		}
		slogger.Info("loaded pattern file", "path", presetsPath, "presets", library.Len())
	}

	// Simulated gamepad with both rumble motors
	backend := examples.NewSimBackend()
	backend.AddMotor(haptics.DeviceRef(device), haptics.MotorStrong)
	backend.AddMotor(haptics.DeviceRef(device), haptics.MotorWeak)

	ctrl := haptics.NewPulseController(backend, scheduler.NewStd(), haptics.DeviceRef(device), motor)

	// Event logging: always to slog, optionally to file
	eventLoggers := []hlog.Logger{hlog.NewSlogAdapter(slogger)}
	if eventLogPath != "" {
		fl, err := hlog.NewFileLogger(eventLogPath)
		if err != nil {
			return fmt.Errorf("opening event log: %w", err)
		}
		defer fl.Close()
		eventLoggers = append(eventLoggers, fl)
		slogger.Info("writing haptic events", "path", eventLogPath)
	}
	ctrl.SetEventLogger(hlog.NewMultiLogger(eventLoggers...))

	console, err := interactive.New(ctrl, backend, library)
	if err != nil {
		return fmt.Errorf("creating console: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Ctrl-C and SIGTERM end the session
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	console.Run(ctx, cancel)
	return nil
}

func parseMotor(name string) (haptics.MotorRef, error) {
	switch name {
	case "strong":
		return haptics.MotorStrong, nil
	case "weak":
		return haptics.MotorWeak, nil
	default:
		return 0, fmt.Errorf("unknown motor %q (want strong or weak)", name)
	}
}

func parseLogLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", level)
	}
}
