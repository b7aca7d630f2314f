// Package yangparse provides a front-end for the YANG data modeling
// language (RFC 7950): comment stripping, lexing, statement parsing into a
// typed AST, and definition/use resolution for typedef and grouping
// identifiers. It does not evaluate XPath expressions, check type-restriction
// satisfiability, apply augment/deviation statements, resolve cross-module
// import/include, or encode/decode instance data.
//
// Example usage:
//
//	module, _, errs := yangparse.Parse(source)
//	if len(errs) > 0 {
//	    // handle errors
//	}
//	// walk module.Body
package yangparse

import (
	"github.com/gkantsidis/yangparse/ast"
	"github.com/gkantsidis/yangparse/lexer"
	"github.com/gkantsidis/yangparse/parser"
	"github.com/gkantsidis/yangparse/resolver"
	"github.com/gkantsidis/yangparse/token"
)

// Parse strips comments from raw YANG source and parses the result into
// either a Module or a Submodule, matching the top-level keyword.
func Parse(input string) (module *ast.Module, submodule *ast.Submodule, errs []error) {
	stripped, _, err := lexer.StripComments(input)
	if err != nil {
		return nil, nil, []error{err}
	}
	return parser.Parse(stripped)
}

// Tokenize returns every token the lexer produces for already
// comment-stripped input.
func Tokenize(input string) []token.Token {
	return lexer.Tokenize(input)
}

// Re-exported types, for callers that want to depend only on the top-level
// package.
type (
	Module     = ast.Module
	Submodule  = ast.Submodule
	Statement  = ast.Statement
	Node       = ast.Node
	Identifier = ast.Identifier
	Token      = token.Token
)

// Visitor is called once per statement during Walk, depth-first,
// pre-order.
type Visitor func(ast.Statement)

// Walk traverses the statements of a module's body, invoking visit for each
// one before descending into its children. Children are discovered via a
// type switch over the concrete ast types, as the resolver's Collect does;
// only child bodies are descended into, so sub-statements held in typed
// fields (a leaf's type, a description, Extra) are not visited.
func Walk(body ast.Body, visit Visitor) {
	for _, stmt := range body {
		walkStatement(stmt, visit)
	}
}

func walkStatement(stmt ast.Statement, visit Visitor) {
	if stmt == nil {
		return
	}
	visit(stmt)

	switch n := stmt.(type) {
	case *ast.Container:
		Walk(n.Children, visit)
	case *ast.List:
		Walk(n.Children, visit)
	case *ast.Case:
		Walk(n.Children, visit)
	case *ast.Choice:
		for _, c := range n.Cases {
			walkStatement(c, visit)
		}
	case *ast.Grouping:
		Walk(n.Children, visit)
	case *ast.Rpc:
		Walk(n.Children, visit)
		if n.Input != nil {
			Walk(n.Input.Children, visit)
		}
		if n.Output != nil {
			Walk(n.Output.Children, visit)
		}
	case *ast.Action:
		Walk(n.Children, visit)
		if n.Input != nil {
			Walk(n.Input.Children, visit)
		}
		if n.Output != nil {
			Walk(n.Output.Children, visit)
		}
	case *ast.Notification:
		Walk(n.Children, visit)
	case *ast.Augment:
		Walk(n.Children, visit)
	case *ast.Unknown:
		for _, c := range n.Body {
			walkStatement(c, visit)
		}
	}
}

// Inspector collects statements of interest from a module body in a single
// traversal, the way tsqlparser.Inspector collects variables/calls/selects
// from a T-SQL program.
type Inspector struct {
	Typedefs  []*ast.Typedef
	Groupings []*ast.Grouping
	Leaves    []*ast.Leaf
	Lists     []*ast.List
	Rpcs      []*ast.Rpc
}

// Inspect walks body once and returns every statement of interest.
func Inspect(body ast.Body) *Inspector {
	insp := &Inspector{}
	Walk(body, func(stmt ast.Statement) {
		switch n := stmt.(type) {
		case *ast.Typedef:
			insp.Typedefs = append(insp.Typedefs, n)
		case *ast.Grouping:
			insp.Groupings = append(insp.Groupings, n)
		case *ast.Leaf:
			insp.Leaves = append(insp.Leaves, n)
		case *ast.List:
			insp.Lists = append(insp.Lists, n)
		case *ast.Rpc:
			insp.Rpcs = append(insp.Rpcs, n)
		}
	})
	return insp
}

// Resolve runs definition/use resolution over a module body (typedef and
// grouping names only, per spec.md section 5). See package resolver for the
// node kinds and sequence-disambiguation rules.
func Resolve(body ast.Body) ([]resolver.Node, []error) {
	return resolver.Resolve(body)
}
