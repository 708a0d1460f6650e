package parser_test

import (
	"errors"
	"testing"

	"github.com/kolkov/regfsm/internal/ast"
	"github.com/kolkov/regfsm/internal/compiler"
	"github.com/kolkov/regfsm/internal/parser"
)

// FuzzParser tests the parser with random inputs to find crashes.
// Every input must either fail with a *parser.ParseError or parse into
// a tree that compiles to a valid automaton.
func FuzzParser(f *testing.F) {
	seeds := []string{
		// Empty and minimal
		"",
		"a",
		"()",
		"[]",

		// Operators
		"ab",
		"a|b",
		"a*",
		"a**",
		"(a|b)*c",
		"a|b*c",
		"u(w|o)!",
		"(a|b)[cd]",
		"(a*|)*",

		// Escapes
		`\w+`,
		`\d\d`,
		`\*\\`,

		// Sets
		"[a-z]",
		"[a-]",
		"[-a]",
		`[\]]`,

		// Errors
		"(",
		")",
		"[",
		`\`,
		"*",
		"[z-a]",
		`\q`,
		"\xff",
	}

	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, src string) {
		node, err := parser.Parse(src)
		if err != nil {
			var pe *parser.ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("Parse(%q) error type = %T", src, err)
			}
			if pe.Kind == 0 {
				t.Errorf("Parse(%q) error without kind: %v", src, err)
			}
			return
		}
		if node == nil {
			t.Fatalf("Parse(%q) returned nil node without error", src)
		}

		// Every parsed tree compiles to a valid, deterministic automaton.
		f := compiler.Compile(node)
		if err := f.Validate(); err != nil {
			t.Fatalf("Compile(%q) invalid: %v\n%s", src, err, f.Disassemble())
		}
		if !f.Equal(compiler.Compile(node)) {
			t.Errorf("Compile(%q) differs between runs", src)
		}

		// The canonical rendering must parse again.
		if _, err := parser.Parse(ast.String(node)); err != nil {
			t.Errorf("Parse(String(%q)) = %v", src, err)
		}
	})
}
