package regfsm

import (
	"errors"

	"github.com/kolkov/regfsm/internal/parser"
)

// Parse parses a pattern with the default configuration.
//
// Example:
//
//	p, err := regfsm.Parse(`[a-z]*\d`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	f := p.Compile()
func Parse(pattern string) (*Pattern, error) {
	return ParseWithConfig(pattern, nil)
}

// ParseWithConfig parses a pattern. A nil config uses the defaults.
func ParseWithConfig(pattern string, config *Config) (*Pattern, error) {
	var cfg Config
	if config != nil {
		cfg = *config
	}
	cfg.applyDefaults()

	tree, err := parser.ParseWithOptions(pattern, parser.Options{
		Filename: cfg.Filename,
		MaxDepth: cfg.MaxDepth,
	})
	if err != nil {
		err = convertError(err)
		var pe *ParseError
		if errors.As(err, &pe) {
			cfg.Logger.Debug("parse failed",
				"pattern", pattern,
				"kind", pe.Kind.String(),
				"offset", pe.Offset,
			)
		}
		return nil, err
	}
	return &Pattern{source: pattern, tree: tree, logger: cfg.Logger}, nil
}

// Compile parses and compiles a pattern with the default configuration.
//
// Example:
//
//	f, err := regfsm.Compile(`a|b*`)
func Compile(pattern string) (*FSM, error) {
	return CompileWithConfig(pattern, nil)
}

// CompileWithConfig parses and compiles a pattern. A nil config uses the
// defaults.
func CompileWithConfig(pattern string, config *Config) (*FSM, error) {
	p, err := ParseWithConfig(pattern, config)
	if err != nil {
		return nil, err
	}
	return p.Compile(), nil
}

// MustCompile is like Compile but panics if the pattern cannot be parsed.
func MustCompile(pattern string) *FSM {
	f, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return f
}
