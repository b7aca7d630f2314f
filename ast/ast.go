// Package ast defines the Abstract Syntax Tree for the YANG statement
// grammar (RFC 7950). Every statement is, per spec.md section 3, a triple
// (keyword, optional argument, optional body); this package gives each
// RFC 7950 keyword its own Go type with an argument of the semantically
// appropriate type, and preserves unrecognized `prefix:keyword` statements
// as Unknown nodes that may appear in any body.
package ast

import (
	"strings"

	"github.com/gkantsidis/yangparse/token"
)

// Node is the common interface implemented by every AST node.
type Node interface {
	// Keyword is the statement's keyword as it appeared in source:
	// a bare name ("container") for built-in statements, or "prefix:name"
	// for an Unknown (vendor extension) statement.
	Keyword() string
	// Pos is the source position of the statement's keyword.
	Pos() token.Position
}

// Statement is the marker interface for anything that can appear in a
// statement body. All Node implementations in this package also implement
// Statement; the distinction exists so that expression-like helper types
// (e.g. Bound, Interval in values.go) are not mistakenly treated as
// statements.
type Statement interface {
	Node
	statementNode()
}

// base is embedded by every concrete statement type to provide Pos().
type base struct {
	pos token.Position
}

func (b base) Pos() token.Position { return b.pos }

func newBase(line, col int) base {
	return base{pos: token.Position{Line: line, Column: col}}
}

// SetPos stamps a node's source position. The parser calls this once, right
// after allocating a concrete node, since base's own field is unexported
// across package boundaries.
func (b *base) SetPos(line, col int) {
	b.pos = token.Position{Line: line, Column: col}
}

// Unknown represents a vendor-extension statement: a `prefix:keyword`
// statement not recognized by any typed production. Its body, when
// present, is itself an ordered list of Statements — every child of an
// Unknown is also Unknown, per spec.md scenario D, even when it reuses a
// known keyword inside a vendor extension's body.
type Unknown struct {
	base
	Identifier Identifier // the "prefix:keyword" pair
	Argument   *string
	Body       []Statement
}

func (u *Unknown) Keyword() string { return u.Identifier.String() }
func (u *Unknown) statementNode()  {}

// -----------------------------------------------------------------------------
// Data-definition statements (spec.md section 4.4's reusable alternation:
// container | leaf | leaf-list | list | choice | anydata | anyxml | uses)
// -----------------------------------------------------------------------------

// DataDefinition is implemented by every statement that may appear wherever
// the grammar says "data-definition-stmt".
type DataDefinition interface {
	Statement
	dataDefinitionNode()
}

// Body is a generic, ordered child-statement list used by statements whose
// legal children are an open alternation (the module's top-level body,
// grouping bodies, etc.) rather than a small fixed set of typed fields.
// Children keep their own concrete type; callers type-switch as needed,
// the same way tsqlparser.Walk type-switches over ast.Statement/Expression.
type Body []Statement

// CommonClauses bundles the if-feature/status/description/reference
// sub-statements legal under almost every data-definition and many other
// statements, so the typed nodes below expose them by name once instead of
// repeating four fields in every struct.
type CommonClauses struct {
	IfFeatures  []IfFeature
	Status      *StatusStmt
	Description *Description
	Reference   *Reference
}

type Container struct {
	base
	Name     Identifier
	When     *When
	Musts    []Must
	Presence *Presence
	Config   *Config
	Children Body // data-definition statements + typedef/grouping/action/notification
	CommonClauses
	Extra []Statement // unrecognized/duplicate children, preserved verbatim
}

func (c *Container) Keyword() string     { return "container" }
func (c *Container) statementNode()      {}
func (c *Container) dataDefinitionNode() {}

type Leaf struct {
	base
	Name      Identifier
	When      *When
	Musts     []Must
	Type      *TypeStmt
	Units     *Units
	Default   *Default
	Config    *Config
	Mandatory *Mandatory
	CommonClauses
	Extra []Statement
}

func (l *Leaf) Keyword() string     { return "leaf" }
func (l *Leaf) statementNode()      {}
func (l *Leaf) dataDefinitionNode() {}

type LeafList struct {
	base
	Name        Identifier
	When        *When
	Musts       []Must
	Type        *TypeStmt
	Units       *Units
	Defaults    []Default
	Config      *Config
	MinElements *MinElements
	MaxElements *MaxElements
	OrderedBy   *OrderedByStmt
	CommonClauses
	Extra []Statement
}

func (l *LeafList) Keyword() string     { return "leaf-list" }
func (l *LeafList) statementNode()      {}
func (l *LeafList) dataDefinitionNode() {}

type List struct {
	base
	Name        Identifier
	When        *When
	Musts       []Must
	Key         *Key
	Uniques     []Unique
	Config      *Config
	MinElements *MinElements
	MaxElements *MaxElements
	OrderedBy   *OrderedByStmt
	Children    Body
	CommonClauses
	Extra []Statement
}

func (l *List) Keyword() string     { return "list" }
func (l *List) statementNode()      {}
func (l *List) dataDefinitionNode() {}

type Choice struct {
	base
	Name      Identifier
	When      *When
	Default   *Default
	Config    *Config
	Mandatory *Mandatory
	Cases     []Statement // Case nodes, or shorthand data-definition nodes
	CommonClauses
	Extra []Statement
}

func (c *Choice) Keyword() string     { return "choice" }
func (c *Choice) statementNode()      {}
func (c *Choice) dataDefinitionNode() {}

type Case struct {
	base
	Name     Identifier
	When     *When
	Children Body
	CommonClauses
	Extra []Statement
}

func (c *Case) Keyword() string     { return "case" }
func (c *Case) statementNode()      {}
func (c *Case) dataDefinitionNode() {}

type Anydata struct {
	base
	Name      Identifier
	When      *When
	Musts     []Must
	Config    *Config
	Mandatory *Mandatory
	CommonClauses
	Extra []Statement
}

func (a *Anydata) Keyword() string     { return "anydata" }
func (a *Anydata) statementNode()      {}
func (a *Anydata) dataDefinitionNode() {}

type Anyxml struct {
	base
	Name      Identifier
	When      *When
	Musts     []Must
	Config    *Config
	Mandatory *Mandatory
	CommonClauses
	Extra []Statement
}

func (a *Anyxml) Keyword() string     { return "anyxml" }
func (a *Anyxml) statementNode()      {}
func (a *Anyxml) dataDefinitionNode() {}

type Uses struct {
	base
	Grouping Identifier
	When     *When
	Refines  []Refine
	Augments []Augment
	CommonClauses
	Extra []Statement
}

func (u *Uses) Keyword() string     { return "uses" }
func (u *Uses) statementNode()      {}
func (u *Uses) dataDefinitionNode() {}

// -----------------------------------------------------------------------------
// Debug rendering
// -----------------------------------------------------------------------------

// String renders Body as one keyword per line. This is a debugging aid,
// not a round-trippable YANG serializer — materializing source text back
// out of the AST is downstream code-generator work per spec.md section 1.
func (b Body) String() string {
	var s strings.Builder
	for _, stmt := range b {
		s.WriteString(stmt.Keyword())
		s.WriteByte('\n')
	}
	return s.String()
}
