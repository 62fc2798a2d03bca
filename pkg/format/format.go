// Package format renders Lox expression trees.
//
// Every renderer is an ast.Visitor, so adding a new output format never
// touches the node definitions:
//
//	PrettyPrinter  prefix form, e.g. (* (- 123) (group 12.5))
//	TreePrinter    indented tree drawn with go-pretty
//	Encoder        Node documents for JSON and YAML output
package format

import "github.com/leapstack-labs/lox/pkg/ast"

// Print renders expr in prefix form.
func Print(expr ast.Expr) string {
	return ast.Accept[string](expr, PrettyPrinter{})
}
