package ast

// This file holds the module/submodule aggregation types produced by the
// module aggregator (spec.md section 4.6): Header, linkage (import /
// include), meta statements, the revision list, and the Module/Submodule
// records themselves.

type YangVersionStmt struct {
	base
	Value Version
}

func (y *YangVersionStmt) Keyword() string { return "yang-version" }
func (y *YangVersionStmt) statementNode()  {}

type Namespace struct {
	base
	URI URI
}

func (n *Namespace) Keyword() string { return "namespace" }
func (n *Namespace) statementNode()  {}

type PrefixStmt struct {
	base
	Value string
}

func (p *PrefixStmt) Keyword() string { return "prefix" }
func (p *PrefixStmt) statementNode()  {}

type BelongsTo struct {
	base
	Module Identifier
	Prefix *PrefixStmt
	Extra  []Statement
}

func (b *BelongsTo) Keyword() string { return "belongs-to" }
func (b *BelongsTo) statementNode()  {}

// Header bundles the statements RFC 7950 requires near the top of a
// module/submodule body. Extras preserves any unknown statements found
// interleaved with the header (spec.md section 4.6: "Unknown statements
// may appear anywhere").
type Header struct {
	YangVersion *YangVersionStmt // module only
	Namespace   *Namespace       // module only
	Prefix      *PrefixStmt      // module only
	BelongsTo   *BelongsTo       // submodule only
	Extras      []Statement
}

type RevisionDateStmt struct {
	base
	Value Date
}

func (r *RevisionDateStmt) Keyword() string { return "revision-date" }
func (r *RevisionDateStmt) statementNode()  {}

type Import struct {
	base
	Module       Identifier
	Prefix       *PrefixStmt
	RevisionDate *RevisionDateStmt
	Description  *Description
	Reference    *Reference
	Extra        []Statement
}

func (i *Import) Keyword() string { return "import" }
func (i *Import) statementNode()  {}

type Include struct {
	base
	Submodule    Identifier
	RevisionDate *RevisionDateStmt
	Description  *Description
	Reference    *Reference
	Extra        []Statement
}

func (i *Include) Keyword() string { return "include" }
func (i *Include) statementNode()  {}

// Linkage bundles import/include statements (spec.md section 4.6).
type Linkage struct {
	Imports  []Import
	Includes []Include
	Extras   []Statement
}

type Organization struct {
	base
	Text string
}

func (o *Organization) Keyword() string { return "organization" }
func (o *Organization) statementNode()  {}

type Contact struct {
	base
	Text string
}

func (c *Contact) Keyword() string { return "contact" }
func (c *Contact) statementNode()  {}

// Meta bundles organization/contact/description/reference (spec.md
// section 4.6).
type Meta struct {
	Organization *Organization
	Contact      *Contact
	Description  *Description
	Reference    *Reference
	Extras       []Statement
}

// Revision is a single entry of a module's revision list.
type Revision struct {
	base
	Date        Date
	Description *Description
	Reference   *Reference
	Extra       []Statement
}

func (r *Revision) Keyword() string { return "revision" }
func (r *Revision) statementNode()  {}

// Module is the top-level record produced by parsing `module name { ... }`
// (spec.md section 3).
type Module struct {
	Name      Identifier
	Header    Header
	Linkage   Linkage
	Meta      Meta
	Revisions []Revision
	Body      Body
}

// Submodule is the top-level record produced by parsing
// `submodule name { ... }`. It differs from Module only in its header
// (`belongs-to` replaces `namespace`/`prefix`).
type Submodule struct {
	Name      Identifier
	Header    Header
	Linkage   Linkage
	Meta      Meta
	Revisions []Revision
	Body      Body
}
