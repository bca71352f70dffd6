// Package commands implements the haptic-log CLI commands.
package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/haptic-kit/haptic-go/pkg/log"
)

// ViewFilter specifies criteria for filtering events in the view command.
type ViewFilter struct {
	Category *log.Category
	Device   string
	PulseID  string
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [ctrl:id] CATEGORY device/motor
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	ctrlID := shortenID(event.ControllerID)

	fmt.Fprintf(w, "%s [ctrl:%s] %-17s %s/%d\n", ts, ctrlID, event.Category.String(), event.Device, event.Motor)

	if event.PulseID != "" {
		fmt.Fprintf(w, "  Pulse: %s\n", shortenID(event.PulseID))
	}
	if event.Intensity != nil {
		fmt.Fprintf(w, "  Intensity: %.2f\n", *event.Intensity)
	}
	if event.PulseDuration != nil {
		fmt.Fprintf(w, "  Duration: %s\n", event.PulseDuration)
	}
	if event.Reason != "" {
		fmt.Fprintf(w, "  Reason: %s\n", event.Reason)
	}

	fmt.Fprintln(w) // Blank line between events
}

// shortenID returns the first 8 characters of a UUID-style ID.
func shortenID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

// ParseCategoryFlag parses a category string from command-line flag (case-insensitive).
func ParseCategoryFlag(s string) (log.Category, error) {
	return parseCategory(s)
}

// parseCategory parses a category string (case-insensitive).
func parseCategory(s string) (log.Category, error) {
	switch strings.ToLower(s) {
	case "start":
		return log.CategoryPulseStart, nil
	case "stop":
		return log.CategoryPulseStop, nil
	case "superseded":
		return log.CategoryPulseSuperseded, nil
	case "rejected":
		return log.CategoryPulseRejected, nil
	case "intensity":
		return log.CategoryIntensityChange, nil
	default:
		return 0, fmt.Errorf("invalid category: %s (must be start, stop, superseded, rejected, or intensity)", s)
	}
}

// RunView reads the log file and writes matching events in human-readable
// format to output.
func RunView(path string, filter ViewFilter, output io.Writer) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		// Apply filter
		if filter.Category != nil && event.Category != *filter.Category {
			continue
		}
		if filter.Device != "" && event.Device != filter.Device {
			continue
		}
		if filter.PulseID != "" && event.PulseID != filter.PulseID {
			continue
		}

		formatEvent(output, event)
	}

	return nil
}
