// Package resolver implements the definition/use resolver of spec.md
// section 4.5: it walks a parsed module body, assigns identity to typedef
// and grouping definitions, and links type/uses references back to the
// definition they resolve to via scoped, path-based name lookup. It does
// not perform cross-module import/include resolution, XPath evaluation, or
// type-restriction satisfiability checking.
package resolver

import (
	"github.com/google/uuid"

	"github.com/gkantsidis/yangparse/ast"
	"github.com/gkantsidis/yangparse/yangerr"
)

// Kind identifies which of the four resolver node shapes a Node is.
type Kind int

const (
	TypeDefinition Kind = iota
	GroupingDefinition
	TypeUse
	GroupingUse
)

func (k Kind) String() string {
	switch k {
	case TypeDefinition:
		return "type-definition"
	case GroupingDefinition:
		return "grouping-definition"
	case TypeUse:
		return "type-use"
	case GroupingUse:
		return "grouping-use"
	}
	return "unknown"
}

// Node is one entry emitted by the resolver. Definitions get a Sequence
// the moment they're collected; uses start with a nil Sequence that the
// name-resolution pass fills in (or leaves nil, if unresolved).
type Node struct {
	ID       uuid.UUID
	Kind     Kind
	Name     ast.Identifier
	Path     []ast.Identifier // from the module root; a definition's path ends with its own name, a use's is its enclosing scope
	Sequence *int
	Pos      token_Position
}

// token_Position avoids importing package token here purely for a position
// struct; Node.Pos mirrors ast node positions in the same (line, column)
// shape resolver callers already see from yangerr.
type token_Position struct {
	Line   int
	Column int
}

// Predicate decides whether a statement should itself produce a Node.
// Statements the predicate rejects are skipped, but their children are
// still traversed (spec.md section 4.5's filtering rule).
type Predicate func(ast.Statement) bool

// AcceptAll is the default Predicate: every statement is eligible.
func AcceptAll(ast.Statement) bool { return true }

// collector carries the walk's mutable state: per-identifier-name sequence
// counters (scoped per resolver run, not per module — spec.md describes a
// single monotonic counter per name for the whole traversal) and the
// accumulated node list.
type collector struct {
	predicate Predicate
	sequence  map[string]int
	nodes     []Node
}

// Collect walks body depth-first per spec.md section 4.5's traversal
// rules, emitting a Node for every typedef/grouping definition and every
// type/uses reference that predicate accepts.
func Collect(body ast.Body, predicate Predicate) []Node {
	if predicate == nil {
		predicate = AcceptAll
	}
	c := &collector{predicate: predicate, sequence: make(map[string]int)}
	c.walkBody(body, nil)
	return c.nodes
}

func (c *collector) nextSequence(name string) int {
	c.sequence[name]++
	return c.sequence[name]
}

func (c *collector) emit(kind Kind, name ast.Identifier, path []ast.Identifier, seq *int, pos token_Position) {
	c.nodes = append(c.nodes, Node{
		ID:       uuid.New(),
		Kind:     kind,
		Name:     name,
		Path:     append([]ast.Identifier(nil), path...),
		Sequence: seq,
		Pos:      pos,
	})
}

func push(path []ast.Identifier, name ast.Identifier) []ast.Identifier {
	out := make([]ast.Identifier, len(path), len(path)+1)
	copy(out, path)
	return append(out, name)
}

func (c *collector) walkBody(body ast.Body, path []ast.Identifier) {
	for _, stmt := range body {
		c.walkStatement(stmt, path)
	}
}

// walkStatement dispatches on concrete AST type, applying the push/pop,
// definition, or reference rule that applies to that statement (spec.md
// section 4.5).
func (c *collector) walkStatement(stmt ast.Statement, path []ast.Identifier) {
	if stmt == nil {
		return
	}
	accepted := c.predicate(stmt)

	switch n := stmt.(type) {
	case *ast.Typedef:
		scoped := push(path, n.Name)
		if accepted {
			seq := c.nextSequence(n.Name.String())
			c.emit(TypeDefinition, n.Name, scoped, &seq, posOf(n))
		}
		if n.Type != nil {
			c.walkStatement(n.Type, scoped)
		}

	case *ast.Grouping:
		scoped := push(path, n.Name)
		if accepted {
			seq := c.nextSequence(n.Name.String())
			c.emit(GroupingDefinition, n.Name, scoped, &seq, posOf(n))
		}
		c.walkBody(n.Children, scoped)

	case *ast.TypeStmt:
		if accepted {
			c.emit(TypeUse, n.Name, path, nil, posOf(n))
		}
		for _, m := range n.Members {
			c.walkStatement(&m, path)
		}

	case *ast.Uses:
		if accepted {
			c.emit(GroupingUse, n.Grouping, path, nil, posOf(n))
		}
		for _, r := range n.Refines {
			c.walkStatement(&r, path)
		}
		for _, a := range n.Augments {
			c.walkStatement(&a, path)
		}

	case *ast.Container:
		c.walkBody(n.Children, push(path, n.Name))
	case *ast.Leaf:
		if n.Type != nil {
			c.walkStatement(n.Type, push(path, n.Name))
		}
	case *ast.LeafList:
		if n.Type != nil {
			c.walkStatement(n.Type, push(path, n.Name))
		}
	case *ast.List:
		c.walkBody(n.Children, push(path, n.Name))
	case *ast.Choice:
		p := push(path, n.Name)
		for _, cs := range n.Cases {
			c.walkStatement(cs, p)
		}
	case *ast.Case:
		c.walkBody(n.Children, push(path, n.Name))
	case *ast.Anydata, *ast.Anyxml:
		// leaf nodes with no further typed children to walk.

	case *ast.Rpc:
		p := push(path, n.Name)
		c.walkBody(n.Children, p)
		if n.Input != nil {
			c.walkBody(n.Input.Children, p)
		}
		if n.Output != nil {
			c.walkBody(n.Output.Children, p)
		}
	case *ast.Action:
		p := push(path, n.Name)
		c.walkBody(n.Children, p)
		if n.Input != nil {
			c.walkBody(n.Input.Children, p)
		}
		if n.Output != nil {
			c.walkBody(n.Output.Children, p)
		}
	case *ast.Notification:
		c.walkBody(n.Children, push(path, n.Name))

	case *ast.Augment:
		// Label-less in the grammar, but SPEC_FULL.md section 6 decision 4
		// resolves the open question: the target path contributes a single
		// synthetic path segment built from its rendered text, so that
		// typedefs/groupings nested under an augment still get a
		// meaningfully distinct scope from the module root.
		c.walkBody(n.Children, push(path, ast.Identifier{Name: n.Target.String()}))

	case *ast.Refine:
		// Label-less; Target is a schema-node path, not a resolver
		// identity. Refine carries no typedef/grouping/type/uses children.

	case *ast.Deviation:
		for _, d := range n.Deviates {
			if d.Type != nil {
				c.walkStatement(d.Type, push(path, ast.Identifier{Name: n.Target.String()}))
			}
		}

	case *ast.Unknown:
		for _, child := range n.Body {
			c.walkStatement(child, path)
		}
	}
}

func posOf(n ast.Node) token_Position {
	p := n.Pos()
	return token_Position{Line: p.Line, Column: p.Column}
}

// -----------------------------------------------------------------------------
// Name resolution pass
// -----------------------------------------------------------------------------

// Resolve runs Collect with the default predicate and then fills in the
// Sequence of every Use node by searching upward along its Path for the
// nearest Definition with a matching name (spec.md section 4.5's "name
// resolution pass"). Unresolved uses are reported as errors but do not
// prevent the rest of the pass from completing. A type use naming an
// unprefixed RFC 7950 built-in type (string, uint8, ...) keeps a nil
// Sequence and is not reported.
func Resolve(body ast.Body) ([]Node, []error) {
	nodes := Collect(body, AcceptAll)
	return resolveNames(nodes)
}

func resolveNames(nodes []Node) ([]Node, []error) {
	var errs []error
	for i := range nodes {
		n := &nodes[i]
		if n.Sequence != nil {
			continue // already a definition, or a pre-resolved use
		}
		var wantDefKind Kind
		switch n.Kind {
		case TypeUse:
			wantDefKind = TypeDefinition
		case GroupingUse:
			wantDefKind = GroupingDefinition
		default:
			continue
		}
		if n.Kind == TypeUse && n.Name.Prefix == "" {
			switch n.Name.Name {
			case "binary", "bits", "boolean", "decimal64", "empty", "enumeration",
				"identityref", "instance-identifier", "int8", "int16", "int32", "int64",
				"leafref", "string", "uint8", "uint16", "uint32", "uint64", "union":
				continue // RFC 7950 built-in type: there is no typedef to link to
			}
		}
		seq, ok := nearestDefinition(nodes, wantDefKind, n.Name, n.Path)
		if !ok {
			errs = append(errs, yangerr.UnresolvedReference(yangerr.Position{Line: n.Pos.Line, Column: n.Pos.Column},
				"unresolved %s %q", n.Kind, n.Name.String()))
			continue
		}
		n.Sequence = &seq
	}
	return nodes, errs
}

// nearestDefinition searches for the matching-name definition whose
// defining scope (its recorded Path with the trailing self-name segment
// dropped, i.e. the path as it stood before entering the typedef/grouping)
// is the longest prefix of the use's path — the nearest enclosing scope,
// per spec.md section 4.5. Ties prefer the highest sequence number (the
// last such definition registered at that scope, i.e. the one that shadows
// earlier same-name siblings).
func nearestDefinition(nodes []Node, kind Kind, name ast.Identifier, usePath []ast.Identifier) (int, bool) {
	bestDepth := -1
	bestSeq := 0
	found := false

	for _, n := range nodes {
		if n.Kind != kind || n.Sequence == nil {
			continue
		}
		if n.Name.Compare(name) != 0 {
			continue
		}
		scope := n.Path[:len(n.Path)-1]
		if !isPrefix(scope, usePath) {
			continue
		}
		depth := len(scope)
		if depth > bestDepth || (depth == bestDepth && *n.Sequence > bestSeq) {
			bestDepth = depth
			bestSeq = *n.Sequence
			found = true
		}
	}
	return bestSeq, found
}

func isPrefix(prefix, path []ast.Identifier) bool {
	if len(prefix) > len(path) {
		return false
	}
	for i, id := range prefix {
		if id.Compare(path[i]) != 0 {
			return false
		}
	}
	return true
}
