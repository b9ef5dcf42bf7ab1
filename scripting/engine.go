// Package scripting lets a host attach user-supplied cleanup rules to the
// scanner for card template quirks the built-in normalizer does not cover.
// Rules are JavaScript and run between OCR and the normalization pipeline.
package scripting

import "context"

// Engine represents a scripting engine (e.g., JavaScript).
type Engine interface {
	// Load compiles and evaluates a rule script. The script must define a
	// function clean(text) that returns the rewritten text.
	Load(ctx context.Context, src string) error

	// Clean applies the loaded rules to recognized text. Calling Clean
	// before a successful Load is an error.
	Clean(ctx context.Context, text string) (string, error)
}
