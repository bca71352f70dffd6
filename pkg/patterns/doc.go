// Package patterns loads named pulse presets from YAML files.
//
// Games and tools often want to tune feedback strengths without recompiling.
// A pattern file maps preset names to pulse durations:
//
//	presets:
//	  - name: tick
//	    duration: 15ms
//	  - name: impact
//	    duration: 400ms
//	  - name: long
//	    duration: 2s
//
// Every library starts with the built-in presets (short, long); file entries
// with the same name override them. Durations use Go duration syntax and
// must be positive.
package patterns
