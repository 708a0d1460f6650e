package regfsm

import (
	"fmt"
	"go/token"
	"io"

	"github.com/dave/jennifer/jen"
)

// importPath is the path generated code uses to refer to this package.
const importPath = "github.com/kolkov/regfsm"

// WriteGo writes a Go source file for package pkg that declares the
// automaton f as the package-level variable name:
//
//	var name = regfsm.MustNew([]regfsm.Node{...})
func WriteGo(w io.Writer, f *FSM, pkg, name string) error {
	if !token.IsIdentifier(pkg) {
		return fmt.Errorf("regfsm: invalid package name %q", pkg)
	}
	if !token.IsIdentifier(name) {
		return fmt.Errorf("regfsm: invalid variable name %q", name)
	}

	file := jen.NewFile(pkg)
	file.HeaderComment("Code generated by regfsm. DO NOT EDIT.")

	nodes := make([]jen.Code, f.Len())
	for i := range nodes {
		n := f.Node(i)
		fields := jen.Dict{}
		if n.Accept {
			fields[jen.Id("Accept")] = jen.True()
		}
		if len(n.Out) > 0 {
			out := make([]jen.Code, len(n.Out))
			for j, t := range n.Out {
				out[j] = jen.Values(jen.Dict{
					jen.Id("Target"): jen.Lit(t.Target),
					jen.Id("Cond"):   conditionCode(t.Cond),
				})
			}
			fields[jen.Id("Out")] = jen.Index().Qual(importPath, "Transition").Values(out...)
		}
		nodes[i] = jen.Values(fields)
	}

	file.Var().Id(name).Op("=").Qual(importPath, "MustNew").Call(
		jen.Index().Qual(importPath, "Node").Values(nodes...),
	)
	return file.Render(w)
}

func conditionCode(c Condition) jen.Code {
	switch c.Kind {
	case KindChar:
		return jen.Qual(importPath, "OnChar").Call(jen.LitRune(c.Lo))
	case KindRange:
		return jen.Qual(importPath, "OnRange").Call(jen.LitRune(c.Lo), jen.LitRune(c.Hi))
	case KindClass:
		return jen.Qual(importPath, "OnClass").Call(jen.Qual(importPath, c.Class.Name()))
	default:
		return jen.Qual(importPath, "Epsilon").Call()
	}
}
