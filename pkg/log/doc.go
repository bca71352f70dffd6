// Package log provides structured haptic event logging for haptic-go.
//
// This package defines the Logger interface and Event type for capturing
// pulse-level events emitted by PulseController instances. It is separate
// from operational logging (slog) - event capture provides a complete
// machine-readable trace of motor activity for debugging and tuning.
//
// # Basic Usage
//
// Applications configure logging by providing a Logger implementation:
//
//	// For development: log to console via slog
//	ctrl.SetEventLogger(log.NewSlogAdapter(slog.Default()))
//
//	// For production analysis: write to binary file
//	fl, _ := log.NewFileLogger("/var/log/haptics/session.hlog")
//	ctrl.SetEventLogger(fl)
//
//	// Both: use MultiLogger
//	ctrl.SetEventLogger(log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fl,
//	))
//
// # Event Categories
//
//   - PulseStart: a pulse activated the motor and scheduled its stop
//   - PulseStop: a scheduled stop fired and zeroed the motor
//   - PulseSuperseded: a pending pulse was replaced by a newer one
//   - PulseRejected: a pulse request was dropped (capability absent)
//   - IntensityChange: a direct intensity write outside the pulse cycle
//
// # File Format
//
// Log files use CBOR encoding with .hlog extension. The haptic-log CLI tool
// provides viewing, filtering, and export capabilities.
package log
