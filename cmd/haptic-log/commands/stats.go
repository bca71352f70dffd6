package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/haptic-kit/haptic-go/pkg/log"
)

// Stats holds aggregate statistics about a log file.
type Stats struct {
	TotalEvents      int
	EventsByCategory map[log.Category]int
	Controllers      map[string]*ControllerStats
	TimeRange        struct {
		Start time.Time
		End   time.Time
	}
}

// ControllerStats holds statistics for a single pulse controller.
type ControllerStats struct {
	FirstSeen     time.Time
	LastSeen      time.Time
	Events        int
	Device        string
	Started       int
	Completed     int
	Superseded    int
	Rejected      int
	RequestedTime time.Duration
}

// RunStats analyzes the log file and prints statistics.
func RunStats(path string, w io.Writer) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByCategory: make(map[log.Category]int),
		Controllers:      make(map[string]*ControllerStats),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		stats.TotalEvents++
		stats.EventsByCategory[event.Category]++

		// Track time range
		if stats.TimeRange.Start.IsZero() || event.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = event.Timestamp
		}
		if event.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = event.Timestamp
		}

		// Track per-controller stats
		ctrl, ok := stats.Controllers[event.ControllerID]
		if !ok {
			ctrl = &ControllerStats{
				FirstSeen: event.Timestamp,
				LastSeen:  event.Timestamp,
			}
			stats.Controllers[event.ControllerID] = ctrl
		}
		ctrl.Events++
		if event.Timestamp.After(ctrl.LastSeen) {
			ctrl.LastSeen = event.Timestamp
		}
		if event.Device != "" && ctrl.Device == "" {
			ctrl.Device = event.Device
		}

		switch event.Category {
		case log.CategoryPulseStart:
			ctrl.Started++
			if event.PulseDuration != nil {
				ctrl.RequestedTime += *event.PulseDuration
			}
		case log.CategoryPulseStop:
			ctrl.Completed++
		case log.CategoryPulseSuperseded:
			ctrl.Superseded++
		case log.CategoryPulseRejected:
			ctrl.Rejected++
		}
	}

	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== Haptic Log Statistics ===")
	fmt.Fprintln(w)

	// Time range
	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	// Total events
	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	// Events by category
	fmt.Fprintln(w, "Events by Category:")
	for _, cat := range []log.Category{log.CategoryPulseStart, log.CategoryPulseStop, log.CategoryPulseSuperseded, log.CategoryPulseRejected, log.CategoryIntensityChange} {
		if count := stats.EventsByCategory[cat]; count > 0 {
			fmt.Fprintf(w, "  %-18s %d\n", cat.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	// Controllers
	fmt.Fprintf(w, "Controllers: %d\n", len(stats.Controllers))
	if len(stats.Controllers) > 0 {
		// Sort by first seen time
		type ctrlInfo struct {
			id    string
			stats *ControllerStats
		}
		ctrls := make([]ctrlInfo, 0, len(stats.Controllers))
		for id, cs := range stats.Controllers {
			ctrls = append(ctrls, ctrlInfo{id, cs})
		}
		sort.Slice(ctrls, func(i, j int) bool {
			return ctrls[i].stats.FirstSeen.Before(ctrls[j].stats.FirstSeen)
		})

		fmt.Fprintln(w, "")
		for _, c := range ctrls {
			duration := c.stats.LastSeen.Sub(c.stats.FirstSeen).Round(time.Millisecond)
			fmt.Fprintf(w, "  [%s] %d events, duration %s\n", shortenID(c.id), c.stats.Events, duration)
			if c.stats.Device != "" {
				fmt.Fprintf(w, "           Device: %s\n", c.stats.Device)
			}
			if c.stats.Started > 0 {
				fmt.Fprintf(w, "           Pulses: %d started, %d completed, %d superseded\n",
					c.stats.Started, c.stats.Completed, c.stats.Superseded)
				fmt.Fprintf(w, "           Requested: %s\n", c.stats.RequestedTime)
			}
			if c.stats.Rejected > 0 {
				fmt.Fprintf(w, "           Rejected: %d\n", c.stats.Rejected)
			}
		}
	}
}
