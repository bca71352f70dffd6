package patterns

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/haptic-kit/haptic-go/pkg/haptics"
)

// LoadError describes a failure to load or validate a pattern file.
type LoadError struct {
	// File is the file being loaded (empty when parsing raw bytes).
	File string

	// Message describes what went wrong.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	msg := e.Message
	if e.File != "" {
		msg = fmt.Sprintf("%s: %s", e.File, msg)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Library is an immutable collection of named presets.
// Lookups are case-sensitive.
type Library struct {
	presets map[string]haptics.Preset
	order   []string
}

// fileFormat is the YAML schema of a pattern file.
type fileFormat struct {
	Presets []presetEntry `yaml:"presets"`
}

type presetEntry struct {
	Name     string `yaml:"name"`
	Duration string `yaml:"duration"`
}

// NewLibrary creates a library containing only the built-in presets.
func NewLibrary() *Library {
	l := &Library{presets: make(map[string]haptics.Preset)}
	for _, p := range haptics.BuiltinPresets() {
		l.presets[p.Name] = p
		l.order = append(l.order, p.Name)
	}
	return l
}

// Parse parses a pattern file from YAML bytes. The result contains the
// built-in presets plus the file's entries; a file entry may override a
// built-in by reusing its name. Duplicate names within the file are an
// error, as are empty names and non-positive durations.
func Parse(data []byte) (*Library, error) {
	var ff fileFormat
	if err := yaml.Unmarshal(data, &ff); err != nil {
		return nil, &LoadError{Message: "failed to parse YAML", Cause: err}
	}

	l := NewLibrary()
	seen := make(map[string]bool)

	for i, entry := range ff.Presets {
		if entry.Name == "" {
			return nil, &LoadError{Message: fmt.Sprintf("preset %d: name is required", i)}
		}
		if seen[entry.Name] {
			return nil, &LoadError{Message: fmt.Sprintf("preset %q: duplicate name", entry.Name)}
		}
		seen[entry.Name] = true

		d, err := time.ParseDuration(entry.Duration)
		if err != nil {
			return nil, &LoadError{
				Message: fmt.Sprintf("preset %q: invalid duration %q", entry.Name, entry.Duration),
				Cause:   err,
			}
		}
		if d <= 0 {
			return nil, &LoadError{
				Message: fmt.Sprintf("preset %q: duration must be positive, got %v", entry.Name, d),
			}
		}

		if _, overriding := l.presets[entry.Name]; !overriding {
			l.order = append(l.order, entry.Name)
		}
		l.presets[entry.Name] = haptics.Preset{Name: entry.Name, Duration: d}
	}

	return l, nil
}

// Load loads a pattern file from disk.
func Load(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{File: path, Message: "failed to read file", Cause: err}
	}

	l, err := Parse(data)
	if err != nil {
		if le, ok := err.(*LoadError); ok {
			le.File = path
			return nil, le
		}
		return nil, &LoadError{File: path, Message: err.Error()}
	}

	return l, nil
}

// Preset returns the named preset. ok is false if the name is unknown.
func (l *Library) Preset(name string) (haptics.Preset, bool) {
	p, ok := l.presets[name]
	return p, ok
}

// Names returns all preset names: built-ins first, then file entries in
// declaration order.
func (l *Library) Names() []string {
	out := make([]string, len(l.order))
	copy(out, l.order)
	return out
}

// Len returns the number of presets in the library.
func (l *Library) Len() int {
	return len(l.presets)
}
