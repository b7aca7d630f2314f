package parser

import (
	"github.com/gkantsidis/yangparse/ast"
	"github.com/gkantsidis/yangparse/lexer"
	"github.com/gkantsidis/yangparse/token"
	"github.com/gkantsidis/yangparse/yangerr"
)

// Parse parses a complete module or submodule from comment-stripped YANG
// source. It returns whichever of (*ast.Module, *ast.Submodule) matches the
// top-level keyword, and every error accumulated along the way. Callers
// that need comment-stripping warnings too should call lexer.StripComments
// themselves and pass the result in.
func Parse(input string) (module *ast.Module, submodule *ast.Submodule, errs []error) {
	p := New(lexer.New(input))
	switch {
	case p.curIs("module"):
		m := p.parseModule()
		return m, nil, p.errors
	case p.curIs("submodule"):
		s := p.parseSubmodule()
		return nil, s, p.errors
	default:
		p.errorf("expected 'module' or 'submodule', got %s %q", p.curToken.Type, p.curToken.Literal)
		return nil, nil, p.errors
	}
}

// ParseStatement parses exactly one statement starting at the current
// token and returns it, generically. This is the entry point used by
// tests that exercise a single statement production in isolation (spec.md
// section 8's per-statement scenarios) without wrapping it in a module.
func (p *Parser) ParseStatement() ast.Statement {
	if p.curToken.Type != token.IDENT {
		p.errorf("expected a statement keyword, got %s %q", p.curToken.Type, p.curToken.Literal)
		return nil
	}
	switch p.curToken.Literal {
	case "container":
		return p.parseContainer()
	case "leaf":
		return p.parseLeaf()
	case "leaf-list":
		return p.parseLeafList()
	case "list":
		return p.parseList()
	case "choice":
		return p.parseChoice()
	case "case":
		return p.parseCase()
	case "anydata":
		return p.parseAnydata()
	case "anyxml":
		return p.parseAnyxml()
	case "uses":
		return p.parseUses()
	case "typedef":
		return p.parseTypedef()
	case "grouping":
		return p.parseGrouping()
	case "type":
		return p.parseType()
	case "rpc":
		return p.parseRpc()
	case "action":
		return p.parseAction()
	case "notification":
		return p.parseNotification()
	case "input":
		return p.parseInput()
	case "output":
		return p.parseOutput()
	case "augment":
		return p.parseAugment()
	case "refine":
		return p.parseRefine()
	case "identity":
		return p.parseIdentity()
	case "feature":
		return p.parseFeature()
	case "extension":
		return p.parseExtension()
	case "deviation":
		return p.parseDeviation()
	case "deviate":
		return p.parseDeviate()
	case "when":
		return p.parseWhen()
	case "must":
		return p.parseMust()
	case "description":
		return p.parseDescription()
	case "reference":
		return p.parseReference()
	case "if-feature":
		return p.parseIfFeature()
	default:
		return p.parseGenericStatement()
	}
}

func (p *Parser) parseModule() *ast.Module {
	p.next() // consume "module"
	val, _, ok := p.readArgument()
	var name ast.Identifier
	if ok {
		var err error
		name, err = ast.NewIdentifier(val)
		if err != nil {
			p.errors = append(p.errors, err)
		}
	}
	m := &ast.Module{Name: name}

	agg := newModuleAggregator(false)
	p.expect(token.LBRACE)
	for p.curToken.Type != token.RBRACE && p.curToken.Type != token.EOF {
		if p.curToken.Type == token.SEMICOLON {
			p.next()
			continue
		}
		agg.consume(p)
	}
	p.expect(token.RBRACE)

	m.Header = agg.header
	m.Linkage = agg.linkage
	m.Meta = agg.meta
	m.Revisions = agg.revisions
	m.Body = agg.body
	return m
}

func (p *Parser) parseSubmodule() *ast.Submodule {
	p.next() // consume "submodule"
	val, _, ok := p.readArgument()
	var name ast.Identifier
	if ok {
		var err error
		name, err = ast.NewIdentifier(val)
		if err != nil {
			p.errors = append(p.errors, err)
		}
	}
	s := &ast.Submodule{Name: name}

	agg := newModuleAggregator(true)
	p.expect(token.LBRACE)
	for p.curToken.Type != token.RBRACE && p.curToken.Type != token.EOF {
		if p.curToken.Type == token.SEMICOLON {
			p.next()
			continue
		}
		agg.consume(p)
	}
	p.expect(token.RBRACE)

	s.Header = agg.header
	s.Linkage = agg.linkage
	s.Meta = agg.meta
	s.Revisions = agg.revisions
	s.Body = agg.body
	return s
}

// moduleAggregator partitions top-level module/submodule statements into
// their RFC 7950 section 7.1 sections (header, linkage, meta, revision,
// body). Unknown statements attach to whichever section is "current" when
// they're encountered, per spec.md section 4.6's "unknown statements may
// appear anywhere" note: a vendor extension right after `namespace` reads
// as header-adjacent, one right after the last `import` reads as
// linkage-adjacent, and so on. Section order between the recognized
// sections themselves IS enforced (spec.md section 4.6: header precedes
// linkage precedes meta precedes revisions precedes body) via maxStage.
type moduleAggregator struct {
	isSubmodule bool
	header      ast.Header
	linkage     ast.Linkage
	meta        ast.Meta
	revisions   []ast.Revision
	body        ast.Body
	stage       int // 0=header 1=linkage 2=meta 3=revision 4=body
	maxStage    int // highest stage seen so far, for order enforcement
}

func newModuleAggregator(isSubmodule bool) *moduleAggregator {
	return &moduleAggregator{isSubmodule: isSubmodule}
}

// enter records that a statement belonging to stage was just encountered.
// If a lower-numbered section shows up after a higher one was already
// seen (e.g. "import" after "revision"), it's out of order: emit a
// diagnostic but keep parsing (lenient-parse policy), and still attach
// the statement to its proper section rather than pretending it's body.
func (a *moduleAggregator) enter(p *Parser, stage int, kw string) {
	if stage < a.maxStage {
		p.errors = append(p.errors, yangerr.UnexpectedStatement(p.errPos(),
			"%q statement out of order: belongs before statements already seen", kw))
	} else {
		a.maxStage = stage
	}
	a.stage = stage
}

func (a *moduleAggregator) consume(p *Parser) {
	switch {
	case p.curIs("yang-version"):
		a.enter(p, 0, "yang-version")
		tok := p.curToken
		p.next()
		val, pos, ok := p.readArgument()
		v := &ast.YangVersionStmt{}
		v.SetPos(tok.Line, tok.Column)
		if ok {
			ver, err := ast.ParseVersion(val)
			if err != nil {
				p.errors = append(p.errors, err)
			}
			v.Value = ver
		}
		_ = pos
		p.endOfStatement(func() { p.skipUnknownChild() })
		if a.header.YangVersion != nil {
			p.recordDuplicate(&a.header.Extras, a.header.YangVersion, "yang-version")
		}
		a.header.YangVersion = v
	case p.curIs("namespace") && !a.isSubmodule:
		a.enter(p, 0, "namespace")
		tok := p.curToken
		p.next()
		text, _, ok := p.readArgument()
		n := &ast.Namespace{}
		n.SetPos(tok.Line, tok.Column)
		if ok {
			uri, err := ast.ParseURI(text)
			if err != nil {
				p.errors = append(p.errors, err)
			}
			n.URI = uri
		}
		p.endOfStatement(func() { p.skipUnknownChild() })
		if a.header.Namespace != nil {
			p.recordDuplicate(&a.header.Extras, a.header.Namespace, "namespace")
		}
		a.header.Namespace = n
	case p.curIs("prefix") && !a.isSubmodule:
		a.enter(p, 0, "prefix")
		tok := p.curToken
		p.next()
		text, _, _ := p.readArgument()
		pf := &ast.PrefixStmt{Value: text}
		pf.SetPos(tok.Line, tok.Column)
		p.endOfStatement(func() { p.skipUnknownChild() })
		if a.header.Prefix != nil {
			p.recordDuplicate(&a.header.Extras, a.header.Prefix, "prefix")
		}
		a.header.Prefix = pf
	case p.curIs("belongs-to") && a.isSubmodule:
		a.enter(p, 0, "belongs-to")
		if a.header.BelongsTo != nil {
			p.recordDuplicate(&a.header.Extras, a.header.BelongsTo, "belongs-to")
		}
		a.header.BelongsTo = p.parseBelongsTo()
	case p.curIs("import"):
		a.enter(p, 1, "import")
		a.linkage.Imports = append(a.linkage.Imports, *p.parseImport())
	case p.curIs("include"):
		a.enter(p, 1, "include")
		a.linkage.Includes = append(a.linkage.Includes, *p.parseInclude())
	case p.curIs("organization"):
		a.enter(p, 2, "organization")
		tok := p.curToken
		p.next()
		text, _, _ := p.readArgument()
		o := &ast.Organization{Text: text}
		o.SetPos(tok.Line, tok.Column)
		p.endOfStatement(func() { p.skipUnknownChild() })
		if a.meta.Organization != nil {
			p.recordDuplicate(&a.meta.Extras, a.meta.Organization, "organization")
		}
		a.meta.Organization = o
	case p.curIs("contact"):
		a.enter(p, 2, "contact")
		tok := p.curToken
		p.next()
		text, _, _ := p.readArgument()
		c := &ast.Contact{Text: text}
		c.SetPos(tok.Line, tok.Column)
		p.endOfStatement(func() { p.skipUnknownChild() })
		if a.meta.Contact != nil {
			p.recordDuplicate(&a.meta.Extras, a.meta.Contact, "contact")
		}
		a.meta.Contact = c
	case p.curIs("description"):
		a.enter(p, 2, "description")
		if a.meta.Description != nil {
			p.recordDuplicate(&a.meta.Extras, a.meta.Description, "description")
		}
		a.meta.Description = p.parseDescription()
	case p.curIs("reference"):
		a.enter(p, 2, "reference")
		if a.meta.Reference != nil {
			p.recordDuplicate(&a.meta.Extras, a.meta.Reference, "reference")
		}
		a.meta.Reference = p.parseReference()
	case p.curIs("revision"):
		a.enter(p, 3, "revision")
		a.revisions = append(a.revisions, *p.parseRevision())
	case p.curIs("typedef"):
		a.enter(p, 4, "typedef")
		a.body = append(a.body, p.parseTypedef())
	case p.curIs("grouping"):
		a.enter(p, 4, "grouping")
		a.body = append(a.body, p.parseGrouping())
	case p.curIs("identity"):
		a.enter(p, 4, "identity")
		a.body = append(a.body, p.parseIdentity())
	case p.curIs("feature"):
		a.enter(p, 4, "feature")
		a.body = append(a.body, p.parseFeature())
	case p.curIs("extension"):
		a.enter(p, 4, "extension")
		a.body = append(a.body, p.parseExtension())
	case p.curIs("rpc"):
		a.enter(p, 4, "rpc")
		a.body = append(a.body, p.parseRpc())
	case p.curIs("notification"):
		a.enter(p, 4, "notification")
		a.body = append(a.body, p.parseNotification())
	case p.curIs("augment"):
		a.enter(p, 4, "augment")
		a.body = append(a.body, p.parseAugment())
	case p.curIs("deviation"):
		a.enter(p, 4, "deviation")
		a.body = append(a.body, p.parseDeviation())
	case p.isDataDefinitionKeyword():
		a.enter(p, 4, p.curToken.Literal)
		a.body = append(a.body, p.parseDataDefinition())
	default:
		stmt := p.parseGenericStatement()
		switch a.stage {
		case 0:
			a.header.Extras = append(a.header.Extras, stmt)
		case 1:
			a.linkage.Extras = append(a.linkage.Extras, stmt)
		case 2:
			a.meta.Extras = append(a.meta.Extras, stmt)
		default:
			a.body = append(a.body, stmt)
		}
	}
}

func (p *Parser) parseBelongsTo() *ast.BelongsTo {
	tok := p.curToken
	p.next()
	val, _, ok := p.readArgument()
	var mod ast.Identifier
	if ok {
		var err error
		mod, err = ast.NewIdentifier(val)
		if err != nil {
			p.errors = append(p.errors, err)
		}
	}
	b := &ast.BelongsTo{Module: mod}
	b.SetPos(tok.Line, tok.Column)
	p.endOfStatement(func() {
		if p.curIs("prefix") {
			ptok := p.curToken
			p.next()
			text, _, _ := p.readArgument()
			pf := &ast.PrefixStmt{Value: text}
			pf.SetPos(ptok.Line, ptok.Column)
			p.endOfStatement(func() { p.skipUnknownChild() })
			if b.Prefix != nil {
				p.recordDuplicate(&b.Extra, b.Prefix, "prefix")
			}
			b.Prefix = pf
			return
		}
		p.skipUnknownChild()
	})
	return b
}

func (p *Parser) parseRevisionDate() *ast.RevisionDateStmt {
	tok := p.curToken
	p.next()
	val, pos, ok := p.readArgument()
	var date ast.Date
	if ok {
		var err error
		date, err = ast.ParseDate(val)
		if err != nil {
			p.errors = append(p.errors, err)
		}
	}
	_ = pos
	r := &ast.RevisionDateStmt{Value: date}
	r.SetPos(tok.Line, tok.Column)
	p.endOfStatement(func() { p.skipUnknownChild() })
	return r
}

func (p *Parser) parseImport() *ast.Import {
	tok := p.curToken
	p.next()
	val, _, ok := p.readArgument()
	var mod ast.Identifier
	if ok {
		var err error
		mod, err = ast.NewIdentifier(val)
		if err != nil {
			p.errors = append(p.errors, err)
		}
	}
	im := &ast.Import{Module: mod}
	im.SetPos(tok.Line, tok.Column)
	p.endOfStatement(func() {
		switch {
		case p.curIs("prefix"):
			ptok := p.curToken
			p.next()
			text, _, _ := p.readArgument()
			pf := &ast.PrefixStmt{Value: text}
			pf.SetPos(ptok.Line, ptok.Column)
			p.endOfStatement(func() { p.skipUnknownChild() })
			if im.Prefix != nil {
				p.recordDuplicate(&im.Extra, im.Prefix, "prefix")
			}
			im.Prefix = pf
		case p.curIs("revision-date"):
			if im.RevisionDate != nil {
				p.recordDuplicate(&im.Extra, im.RevisionDate, "revision-date")
			}
			im.RevisionDate = p.parseRevisionDate()
		case p.curIs("description"):
			if im.Description != nil {
				p.recordDuplicate(&im.Extra, im.Description, "description")
			}
			im.Description = p.parseDescription()
		case p.curIs("reference"):
			if im.Reference != nil {
				p.recordDuplicate(&im.Extra, im.Reference, "reference")
			}
			im.Reference = p.parseReference()
		default:
			p.skipUnknownChild()
		}
	})
	return im
}

func (p *Parser) parseInclude() *ast.Include {
	tok := p.curToken
	p.next()
	val, _, ok := p.readArgument()
	var sub ast.Identifier
	if ok {
		var err error
		sub, err = ast.NewIdentifier(val)
		if err != nil {
			p.errors = append(p.errors, err)
		}
	}
	inc := &ast.Include{Submodule: sub}
	inc.SetPos(tok.Line, tok.Column)
	p.endOfStatement(func() {
		switch {
		case p.curIs("revision-date"):
			if inc.RevisionDate != nil {
				p.recordDuplicate(&inc.Extra, inc.RevisionDate, "revision-date")
			}
			inc.RevisionDate = p.parseRevisionDate()
		case p.curIs("description"):
			if inc.Description != nil {
				p.recordDuplicate(&inc.Extra, inc.Description, "description")
			}
			inc.Description = p.parseDescription()
		case p.curIs("reference"):
			if inc.Reference != nil {
				p.recordDuplicate(&inc.Extra, inc.Reference, "reference")
			}
			inc.Reference = p.parseReference()
		default:
			p.skipUnknownChild()
		}
	})
	return inc
}

func (p *Parser) parseRevision() *ast.Revision {
	tok := p.curToken
	p.next()
	val, pos, ok := p.readArgument()
	var date ast.Date
	if ok {
		var err error
		date, err = ast.ParseDate(val)
		if err != nil {
			p.errors = append(p.errors, err)
		}
	}
	_ = pos
	r := &ast.Revision{Date: date}
	r.SetPos(tok.Line, tok.Column)
	p.endOfStatement(func() {
		switch {
		case p.curIs("description"):
			if r.Description != nil {
				p.recordDuplicate(&r.Extra, r.Description, "description")
			}
			r.Description = p.parseDescription()
		case p.curIs("reference"):
			if r.Reference != nil {
				p.recordDuplicate(&r.Extra, r.Reference, "reference")
			}
			r.Reference = p.parseReference()
		default:
			p.skipUnknownChild()
		}
	})
	return r
}
