// Package interactive provides the interactive command-line interface
// for haptic-ctl.
package interactive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"github.com/haptic-kit/haptic-go/pkg/examples"
	"github.com/haptic-kit/haptic-go/pkg/haptics"
	"github.com/haptic-kit/haptic-go/pkg/patterns"
)

// Console handles interactive mode for haptic-ctl.
type Console struct {
	ctrl    *haptics.PulseController
	backend *examples.SimBackend
	library *patterns.Library
	rl      *readline.Instance
}

// New creates a new interactive console.
func New(ctrl *haptics.PulseController, backend *examples.SimBackend, library *patterns.Library) (*Console, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "haptic> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	return &Console{
		ctrl:    ctrl,
		backend: backend,
		library: library,
		rl:      rl,
	}, nil
}

// Stdout returns a writer that properly coordinates with the readline input.
func (c *Console) Stdout() io.Writer {
	return c.rl.Stdout()
}

// Run starts the interactive command loop.
func (c *Console) Run(ctx context.Context, cancel context.CancelFunc) {
	defer c.rl.Close()

	c.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := c.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(c.rl.Stdout(), "Exiting...")
			cancel()
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		parts := strings.Fields(input)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "help", "?":
			c.printHelp()

		case "status", "st":
			c.cmdStatus()

		case "pulse", "p":
			c.cmdPulse(args)

		case "short":
			c.cmdPreset("short", args)

		case "long":
			c.cmdPreset("long", args)

		case "play":
			if len(args) == 0 {
				fmt.Fprintln(c.rl.Stdout(), "Usage: play <preset> [wait]")
				continue
			}
			c.cmdPreset(args[0], args[1:])

		case "presets":
			c.cmdPresets()

		case "stop":
			c.ctrl.Stop()
			fmt.Fprintln(c.rl.Stdout(), "Motor stopped")

		case "support":
			c.cmdSupport(args)

		case "quit", "exit", "q":
			fmt.Fprintln(c.rl.Stdout(), "Exiting...")
			cancel()
			return

		default:
			fmt.Fprintf(c.rl.Stdout(), "Unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}
}

func (c *Console) printHelp() {
	fmt.Fprintln(c.rl.Stdout(), `
Haptic Console Commands:
  Pulses:
    pulse <duration> [wait]  - Play a timed pulse (e.g. pulse 250ms wait)
    short [wait]             - Play the short built-in preset (25ms)
    long [wait]              - Play the long built-in preset (1s)
    play <preset> [wait]     - Play a preset from the loaded library
    stop                     - Stop the motor now (timer keeps running)

  Inspection:
    status                   - Show capabilities and current intensity
    presets                  - List available presets

  Simulation:
    support device on|off    - Toggle device vibration support
    support motor on|off     - Toggle motor support

  General:
    help                     - Show this help
    quit                     - Exit

  With 'wait', the command returns after the pulse completes; without it,
  the motor stops in the background.`)
}

// cmdStatus shows capabilities and the current motor intensity.
func (c *Console) cmdStatus() {
	w := c.rl.Stdout()

	fmt.Fprintf(w, "Device:     %s\n", c.ctrl.Device())
	fmt.Fprintf(w, "Motor:      %s\n", c.ctrl.Motor())
	fmt.Fprintf(w, "Vibration:  %s\n", supportedStr(c.ctrl.VibrationSupported()))
	fmt.Fprintf(w, "Motor cap:  %s\n", supportedStr(c.ctrl.MotorSupported()))

	if v, ok := c.ctrl.Intensity(); ok {
		fmt.Fprintf(w, "Intensity:  %.2f\n", v)
	} else {
		fmt.Fprintln(w, "Intensity:  (never set)")
	}
}

// cmdPulse plays a raw timed pulse.
func (c *Console) cmdPulse(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(c.rl.Stdout(), "Usage: pulse <duration> [wait]")
		return
	}

	d, err := time.ParseDuration(args[0])
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Invalid duration: %v\n", err)
		return
	}

	c.play(d, hasWait(args[1:]))
}

// cmdPreset plays a preset by name.
func (c *Console) cmdPreset(name string, args []string) {
	p, ok := c.library.Preset(name)
	if !ok {
		fmt.Fprintf(c.rl.Stdout(), "Unknown preset: %s (see 'presets')\n", name)
		return
	}
	c.play(p.Duration, hasWait(args))
}

// play starts a pulse and reports the result.
func (c *Console) play(d time.Duration, wait bool) {
	w := c.rl.Stdout()

	if wait {
		start := time.Now()
		err := c.ctrl.PlayPulseWait(context.Background(), d)
		switch {
		case errors.Is(err, haptics.ErrSuperseded):
			fmt.Fprintln(w, "Pulse superseded by a newer pulse")
		case err != nil:
			fmt.Fprintf(w, "Pulse failed: %v\n", err)
		default:
			fmt.Fprintf(w, "Pulse completed after %v\n", time.Since(start).Round(time.Millisecond))
		}
		return
	}

	pulse, err := c.ctrl.PlayPulse(d)
	if err != nil {
		fmt.Fprintf(w, "Pulse failed: %v\n", err)
		return
	}
	if pulse == nil {
		fmt.Fprintln(w, "Pulse skipped: capability absent (see 'status')")
		return
	}
	fmt.Fprintf(w, "Pulse %s playing for %v\n", shortID(pulse.ID()), d)
}

// cmdPresets lists the preset library.
func (c *Console) cmdPresets() {
	w := c.rl.Stdout()
	for _, name := range c.library.Names() {
		p, _ := c.library.Preset(name)
		fmt.Fprintf(w, "  %-12s %v\n", name, p.Duration)
	}
}

// cmdSupport toggles simulated capability flags.
func (c *Console) cmdSupport(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(c.rl.Stdout(), "Usage: support device|motor on|off")
		return
	}

	var on bool
	switch args[1] {
	case "on":
		on = true
	case "off":
		on = false
	default:
		fmt.Fprintln(c.rl.Stdout(), "Usage: support device|motor on|off")
		return
	}

	switch args[0] {
	case "device":
		c.backend.SetDeviceSupported(c.ctrl.Device(), on)
		fmt.Fprintf(c.rl.Stdout(), "Device support: %s\n", supportedStr(on))
	case "motor":
		c.backend.SetMotorSupported(c.ctrl.Device(), c.ctrl.Motor(), on)
		fmt.Fprintf(c.rl.Stdout(), "Motor support: %s\n", supportedStr(on))
	default:
		fmt.Fprintln(c.rl.Stdout(), "Usage: support device|motor on|off")
	}
}

func hasWait(args []string) bool {
	return len(args) > 0 && strings.EqualFold(args[0], "wait")
}

func supportedStr(b bool) string {
	if b {
		return "supported"
	}
	return "unsupported"
}

func shortID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}
