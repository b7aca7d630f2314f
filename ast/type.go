package ast

// TypeStmt represents a `type` statement. Its Name identifies the base or
// derived type being referenced (spec.md section 4.4: "argument is an
// identifier reference"); TypeBody holds whichever sub-statements apply to
// that particular primitive type. Cardinality is not enforced here (spec.md
// relaxed grammar) — Range, Length etc. are single pointers because they
// are the common case; a repeated singular sub-statement has its prior
// occurrence pushed into Extra by the parser instead of being silently
// overwritten (spec.md section 4.3's lenient-parse, expose-duplicates
// policy).
type TypeStmt struct {
	base
	Name Identifier
	TypeBody
	Extra []Statement
}

func (t *TypeStmt) Keyword() string { return "type" }
func (t *TypeStmt) statementNode()  {}

// TypeBody groups every legal child of a `type` statement, regardless of
// which primitive type they apply to. A concrete type only ever populates
// the subset relevant to its base type; downstream validation (out of
// scope per spec.md non-goals) is responsible for rejecting the rest.
type TypeBody struct {
	Range           *RangeStmt
	FractionDigits  *FractionDigitsStmt
	Length          *LengthStmt
	Patterns        []PatternStmt
	Enums           []EnumStmt
	Bits            []BitStmt
	Path            *PathStmt
	RequireInstance *RequireInstanceStmt
	Bases           []BaseStmt // identityref (1 in 1.0, 1+ in 1.1) or leaf's type base
	Members         []TypeStmt // union
}

type RangeStmt struct {
	base
	Expr         IntervalExpr
	ErrorMessage *ErrorMessage
	ErrorAppTag  *ErrorAppTag
	Description  *Description
	Reference    *Reference
	Extra        []Statement
}

func (r *RangeStmt) Keyword() string { return "range" }
func (r *RangeStmt) statementNode()  {}

type LengthStmt struct {
	base
	Expr         IntervalExpr
	ErrorMessage *ErrorMessage
	ErrorAppTag  *ErrorAppTag
	Description  *Description
	Reference    *Reference
	Extra        []Statement
}

func (l *LengthStmt) Keyword() string { return "length" }
func (l *LengthStmt) statementNode()  {}

type PatternStmt struct {
	base
	Regex        string
	Modifier     string // "invert-match" or ""
	ErrorMessage *ErrorMessage
	ErrorAppTag  *ErrorAppTag
	Description  *Description
	Reference    *Reference
	Extra        []Statement
}

func (p *PatternStmt) Keyword() string { return "pattern" }
func (p *PatternStmt) statementNode()  {}

type FractionDigitsStmt struct {
	base
	Value int // 1..18
}

func (f *FractionDigitsStmt) Keyword() string { return "fraction-digits" }
func (f *FractionDigitsStmt) statementNode()  {}

type EnumStmt struct {
	base
	Name  string
	Value *int64
	CommonClauses
	Extra []Statement
}

func (e *EnumStmt) Keyword() string { return "enum" }
func (e *EnumStmt) statementNode()  {}

type BitStmt struct {
	base
	Name     string
	Position *uint64
	CommonClauses
	Extra    []Statement
}

func (b *BitStmt) Keyword() string { return "bit" }
func (b *BitStmt) statementNode()  {}

type PathStmt struct {
	base
	Value PathArg
}

func (p *PathStmt) Keyword() string { return "path" }
func (p *PathStmt) statementNode()  {}

type RequireInstanceStmt struct {
	base
	Value bool
}

func (r *RequireInstanceStmt) Keyword() string { return "require-instance" }
func (r *RequireInstanceStmt) statementNode()  {}

type BaseStmt struct {
	base
	Name Identifier
}

func (b *BaseStmt) Keyword() string { return "base" }
func (b *BaseStmt) statementNode()  {}

// Typedef represents a `typedef` statement — a TypeDefinition site per the
// resolver (spec.md section 4.5).
type Typedef struct {
	base
	Name    Identifier
	Type    *TypeStmt
	Units   *Units
	Default *Default
	CommonClauses
	Extra []Statement
}

func (t *Typedef) Keyword() string { return "typedef" }
func (t *Typedef) statementNode()  {}

// Grouping represents a `grouping` statement — a GroupingDefinition site
// per the resolver.
type Grouping struct {
	base
	Name     Identifier
	Children Body // typedef | grouping | data-definition | action | notification
	CommonClauses
	Extra []Statement
}

func (g *Grouping) Keyword() string { return "grouping" }
func (g *Grouping) statementNode()  {}
