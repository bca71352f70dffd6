// Package examples provides reference implementations for working with the
// haptic-go library without real hardware.
//
// SimBackend is an in-memory haptics.Backend with configurable capability
// flags and a journal of every intensity write. It backs the haptic-ctl
// demo tool and the library's own tests, and can serve as a template for
// real backend implementations (host engine bindings, HID drivers, ...).
package examples
