// Package scheduler provides delayed callback execution for timed haptic
// pulses.
//
// The Scheduler interface is deliberately small: schedule a callback after a
// delay, and cancel it best-effort through the returned Handle. Two
// implementations are provided:
//
//   - Std runs callbacks on the process clock via time.AfterFunc. This is
//     what applications use in production.
//   - Sim runs callbacks on a virtual clock advanced explicitly by the test
//     (or demo) driving it. Firing order is deterministic: by deadline, then
//     by scheduling order for equal deadlines.
//
// # Cancellation
//
// Handle.Stop is best-effort. A callback that has already fired (or started
// firing) cannot be recalled; Stop then returns false and the caller is
// expected to tolerate the late callback. PulseController relies on this:
// a stop callback that loses the race against a superseding pulse detects
// it and does nothing.
package scheduler
