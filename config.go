package regfsm

import (
	"log/slog"

	"github.com/kolkov/regfsm/internal/parser"
)

// DefaultMaxDepth is the group and set nesting limit used when
// Config.MaxDepth is zero.
const DefaultMaxDepth = parser.DefaultMaxDepth

// Config holds options for parsing and compiling a pattern.
type Config struct {
	// Filename names the pattern's origin in error messages.
	// Empty means no filename.
	Filename string

	// MaxDepth limits how deeply groups may nest (default: DefaultMaxDepth).
	// Alternation chains do not count against it.
	MaxDepth int

	// Logger receives debug records for each parse failure and compilation.
	// If nil, nothing is logged.
	Logger *slog.Logger
}

// applyDefaults fills in default values for unset Config fields.
func (c *Config) applyDefaults() {
	if c.MaxDepth <= 0 {
		c.MaxDepth = DefaultMaxDepth
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}
}
