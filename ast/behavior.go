package ast

// Rpc, Action, Notification, Input, and Output (spec.md section 4.4).

type Rpc struct {
	base
	Name     Identifier
	Input    *Input
	Output   *Output
	Children Body // typedef | grouping
	CommonClauses
	Extra []Statement
}

func (r *Rpc) Keyword() string { return "rpc" }
func (r *Rpc) statementNode()  {}

type Action struct {
	base
	Name     Identifier
	Input    *Input
	Output   *Output
	Children Body
	CommonClauses
	Extra []Statement
}

func (a *Action) Keyword() string { return "action" }
func (a *Action) statementNode()  {}

type Notification struct {
	base
	Name     Identifier
	Children Body // typedef | grouping | data-definition
	CommonClauses
	Extra []Statement
}

func (n *Notification) Keyword() string { return "notification" }
func (n *Notification) statementNode()  {}

type Input struct {
	base
	Children Body // typedef | grouping | data-definition
	Musts    []Must
	Extra    []Statement
}

func (i *Input) Keyword() string { return "input" }
func (i *Input) statementNode()  {}

type Output struct {
	base
	Children Body
	Musts    []Must
	Extra    []Statement
}

func (o *Output) Keyword() string { return "output" }
func (o *Output) statementNode()  {}

// Augment (spec.md SPEC_FULL.md section 4: target-path contributes a
// single synthetic resolver-path segment).
type Augment struct {
	base
	Target   PathArg
	When     *When
	Children Body // data-definition | case | action | notification
	CommonClauses
	Extra []Statement
}

func (a *Augment) Keyword() string { return "augment" }
func (a *Augment) statementNode()  {}

// Refine adjusts properties of a node instantiated via `uses`.
type Refine struct {
	base
	Target      SchemaNodePath
	Musts       []Must
	Presence    *Presence
	Default     []Default
	Config      *Config
	Mandatory   *Mandatory
	MinElements *MinElements
	MaxElements *MaxElements
	Description *Description
	Reference   *Reference
	IfFeatures  []IfFeature
	Extra       []Statement
}

func (r *Refine) Keyword() string { return "refine" }
func (r *Refine) statementNode()  {}

// -----------------------------------------------------------------------------
// Identity / feature / extension (SPEC_FULL.md section 4)
// -----------------------------------------------------------------------------

type Identity struct {
	base
	Name  Identifier
	Bases []BaseStmt
	CommonClauses
	Extra []Statement
}

func (i *Identity) Keyword() string { return "identity" }
func (i *Identity) statementNode()  {}

type Feature struct {
	base
	Name Identifier
	CommonClauses
	Extra []Statement
}

func (f *Feature) Keyword() string { return "feature" }
func (f *Feature) statementNode()  {}

type Extension struct {
	base
	Name     Identifier
	Argument *ExtensionArgument
	CommonClauses
	Extra []Statement
}

func (e *Extension) Keyword() string { return "extension" }
func (e *Extension) statementNode()  {}

type ExtensionArgument struct {
	base
	Name       string
	YinElement *bool
	Extra      []Statement
}

func (a *ExtensionArgument) Keyword() string { return "argument" }
func (a *ExtensionArgument) statementNode()  {}

// -----------------------------------------------------------------------------
// Deviation (spec.md non-goals exclude deviation *application*; the parse
// tree for `deviation` itself is still part of the grammar, per spec.md
// section 4.4 listing `deviation` among typed module bodies).
// -----------------------------------------------------------------------------

type Deviation struct {
	base
	Target      PathArg
	Description *Description
	Reference   *Reference
	Deviates    []Deviate
	Extra       []Statement
}

func (d *Deviation) Keyword() string { return "deviation" }
func (d *Deviation) statementNode()  {}

type Deviate struct {
	base
	Arg         string // "not-supported" | "add" | "delete" | "replace"
	Type        *TypeStmt
	Units       *Units
	Must        []Must
	Default     []Default
	Config      *Config
	Mandatory   *Mandatory
	MinElements *MinElements
	MaxElements *MaxElements
	Extra       []Statement
}

func (d *Deviate) Keyword() string { return "deviate" }
func (d *Deviate) statementNode()  {}
