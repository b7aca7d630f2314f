package parser

import (
	"strconv"

	"github.com/gkantsidis/yangparse/ast"
	"github.com/gkantsidis/yangparse/yangerr"
)

// parseType parses a `type` statement, dispatching its sub-statement set by
// whichever body children show up (spec.md section 4.4: a type's legal
// children depend on the built-in type its argument names, but the parser
// itself stays type-agnostic and simply collects whatever is present).
func (p *Parser) parseType() *ast.TypeStmt {
	tok := p.curToken
	p.next()
	val, pos, ok := p.readArgument()
	var name ast.Identifier
	if ok {
		var err error
		name, err = ast.NewIdentifier(val)
		if err != nil {
			p.errors = append(p.errors, err)
		}
	}
	t := &ast.TypeStmt{Name: name}
	t.SetPos(tok.Line, tok.Column)
	_ = pos

	p.endOfStatement(func() {
		switch {
		case p.curIs("range"):
			if t.Range != nil {
				p.recordDuplicate(&t.Extra, t.Range, "range")
			}
			t.Range = p.parseRange()
		case p.curIs("fraction-digits"):
			if t.FractionDigits != nil {
				p.recordDuplicate(&t.Extra, t.FractionDigits, "fraction-digits")
			}
			t.FractionDigits = p.parseFractionDigits()
		case p.curIs("length"):
			if t.Length != nil {
				p.recordDuplicate(&t.Extra, t.Length, "length")
			}
			t.Length = p.parseLength()
		case p.curIs("pattern"):
			t.Patterns = append(t.Patterns, *p.parsePattern())
		case p.curIs("enum"):
			t.Enums = append(t.Enums, *p.parseEnum())
		case p.curIs("bit"):
			t.Bits = append(t.Bits, *p.parseBit())
		case p.curIs("path"):
			if t.Path != nil {
				p.recordDuplicate(&t.Extra, t.Path, "path")
			}
			t.Path = p.parsePath()
		case p.curIs("require-instance"):
			if t.RequireInstance != nil {
				p.recordDuplicate(&t.Extra, t.RequireInstance, "require-instance")
			}
			t.RequireInstance = p.parseRequireInstance()
		case p.curIs("base"):
			t.Bases = append(t.Bases, *p.parseBase())
		case p.curIs("type"):
			t.Members = append(t.Members, *p.parseType())
		default:
			t.Extra = append(t.Extra, p.parseGenericStatement())
		}
	})
	return t
}

func (p *Parser) parseIntervalStmt(kw string) (ast.IntervalExpr, *ast.ErrorMessage, *ast.ErrorAppTag, *ast.Description, *ast.Reference, []ast.Statement) {
	p.next()
	val, pos, ok := p.readArgument()
	var expr ast.IntervalExpr
	if ok {
		var err error
		expr, err = ast.ParseIntervalExpr(val)
		if err != nil {
			p.errors = append(p.errors, yangerr.InvalidArgument(toYangerrPos(pos), "invalid %s %q: %v", kw, val, err))
		}
	}
	var em *ast.ErrorMessage
	var eat *ast.ErrorAppTag
	var desc *ast.Description
	var ref *ast.Reference
	var extra []ast.Statement
	p.endOfStatement(func() {
		switch {
		case p.curIs("error-message"):
			if em != nil {
				p.recordDuplicate(&extra, em, "error-message")
			}
			em = p.parseErrorMessage()
		case p.curIs("error-app-tag"):
			if eat != nil {
				p.recordDuplicate(&extra, eat, "error-app-tag")
			}
			eat = p.parseErrorAppTag()
		case p.curIs("description"):
			if desc != nil {
				p.recordDuplicate(&extra, desc, "description")
			}
			desc = p.parseDescription()
		case p.curIs("reference"):
			if ref != nil {
				p.recordDuplicate(&extra, ref, "reference")
			}
			ref = p.parseReference()
		default:
			p.skipUnknownChild()
		}
	})
	return expr, em, eat, desc, ref, extra
}

func (p *Parser) parseRange() *ast.RangeStmt {
	tok := p.curToken
	expr, em, eat, desc, ref, extra := p.parseIntervalStmt("range")
	r := &ast.RangeStmt{Expr: expr, ErrorMessage: em, ErrorAppTag: eat, Description: desc, Reference: ref, Extra: extra}
	r.SetPos(tok.Line, tok.Column)
	return r
}

func (p *Parser) parseLength() *ast.LengthStmt {
	tok := p.curToken
	expr, em, eat, desc, ref, extra := p.parseIntervalStmt("length")
	l := &ast.LengthStmt{Expr: expr, ErrorMessage: em, ErrorAppTag: eat, Description: desc, Reference: ref, Extra: extra}
	l.SetPos(tok.Line, tok.Column)
	return l
}

func (p *Parser) parsePattern() *ast.PatternStmt {
	tok := p.curToken
	p.next()
	regex, _, _ := p.readArgument()
	ps := &ast.PatternStmt{Regex: regex}
	ps.SetPos(tok.Line, tok.Column)
	modifierSeen := false
	p.endOfStatement(func() {
		switch {
		case p.curIs("modifier"):
			mtok := p.curToken
			p.next()
			val, pos, ok := p.readArgument()
			if ok {
				mod, err := ast.ParseModifier(val)
				if err != nil {
					p.errors = append(p.errors, yangerr.InvalidArgument(toYangerrPos(pos), "invalid modifier %q", val))
				}
				if modifierSeen {
					p.warnings = append(p.warnings, yangerr.Warning{
						Kind:    yangerr.KindDuplicateStatement,
						Pos:     p.errPos(),
						Message: "duplicate \"modifier\" statement, keeping the last occurrence",
					})
				}
				modifierSeen = true
				ps.Modifier = mod
			}
			p.endOfStatement(func() { p.skipUnknownChild() })
			_ = mtok
		case p.curIs("error-message"):
			if ps.ErrorMessage != nil {
				p.recordDuplicate(&ps.Extra, ps.ErrorMessage, "error-message")
			}
			ps.ErrorMessage = p.parseErrorMessage()
		case p.curIs("error-app-tag"):
			if ps.ErrorAppTag != nil {
				p.recordDuplicate(&ps.Extra, ps.ErrorAppTag, "error-app-tag")
			}
			ps.ErrorAppTag = p.parseErrorAppTag()
		case p.curIs("description"):
			if ps.Description != nil {
				p.recordDuplicate(&ps.Extra, ps.Description, "description")
			}
			ps.Description = p.parseDescription()
		case p.curIs("reference"):
			if ps.Reference != nil {
				p.recordDuplicate(&ps.Extra, ps.Reference, "reference")
			}
			ps.Reference = p.parseReference()
		default:
			p.skipUnknownChild()
		}
	})
	return ps
}

func (p *Parser) parseFractionDigits() *ast.FractionDigitsStmt {
	tok := p.curToken
	p.next()
	val, pos, ok := p.readArgument()
	var n int
	if ok {
		var err error
		n, err = strconv.Atoi(val)
		if err != nil || n < 1 || n > 18 {
			p.errors = append(p.errors, yangerr.InvalidArgument(toYangerrPos(pos), "fraction-digits %q out of range 1..18", val))
		}
	}
	f := &ast.FractionDigitsStmt{Value: n}
	f.SetPos(tok.Line, tok.Column)
	p.endOfStatement(func() { p.skipUnknownChild() })
	return f
}

func (p *Parser) parseEnum() *ast.EnumStmt {
	tok := p.curToken
	p.next()
	name, _, _ := p.readArgument()
	e := &ast.EnumStmt{Name: name}
	e.SetPos(tok.Line, tok.Column)
	valueSeen := false
	p.endOfStatement(func() {
		switch {
		case p.curIs("value"):
			p.next()
			val, pos, ok := p.readArgument()
			if ok {
				n, err := strconv.ParseInt(val, 10, 64)
				if err != nil {
					p.errors = append(p.errors, yangerr.InvalidArgument(toYangerrPos(pos), "invalid enum value %q", val))
				} else {
					if valueSeen {
						p.warnings = append(p.warnings, yangerr.Warning{
							Kind:    yangerr.KindDuplicateStatement,
							Pos:     p.errPos(),
							Message: "duplicate \"value\" statement, keeping the last occurrence",
						})
					}
					valueSeen = true
					e.Value = &n
				}
			}
			p.endOfStatement(func() { p.skipUnknownChild() })
		case p.curIs("if-feature"):
			e.IfFeatures = append(e.IfFeatures, *p.parseIfFeature())
		case p.curIs("status"):
			if e.Status != nil {
				p.recordDuplicate(&e.Extra, e.Status, "status")
			}
			e.Status = p.parseStatus()
		case p.curIs("description"):
			if e.Description != nil {
				p.recordDuplicate(&e.Extra, e.Description, "description")
			}
			e.Description = p.parseDescription()
		case p.curIs("reference"):
			if e.Reference != nil {
				p.recordDuplicate(&e.Extra, e.Reference, "reference")
			}
			e.Reference = p.parseReference()
		default:
			p.skipUnknownChild()
		}
	})
	return e
}

func (p *Parser) parseBit() *ast.BitStmt {
	tok := p.curToken
	p.next()
	name, _, _ := p.readArgument()
	b := &ast.BitStmt{Name: name}
	b.SetPos(tok.Line, tok.Column)
	positionSeen := false
	p.endOfStatement(func() {
		switch {
		case p.curIs("position"):
			p.next()
			val, pos, ok := p.readArgument()
			if ok {
				n, err := strconv.ParseUint(val, 10, 64)
				if err != nil {
					p.errors = append(p.errors, yangerr.InvalidArgument(toYangerrPos(pos), "invalid bit position %q", val))
				} else {
					if positionSeen {
						p.warnings = append(p.warnings, yangerr.Warning{
							Kind:    yangerr.KindDuplicateStatement,
							Pos:     p.errPos(),
							Message: "duplicate \"position\" statement, keeping the last occurrence",
						})
					}
					positionSeen = true
					b.Position = &n
				}
			}
			p.endOfStatement(func() { p.skipUnknownChild() })
		case p.curIs("if-feature"):
			b.IfFeatures = append(b.IfFeatures, *p.parseIfFeature())
		case p.curIs("status"):
			if b.Status != nil {
				p.recordDuplicate(&b.Extra, b.Status, "status")
			}
			b.Status = p.parseStatus()
		case p.curIs("description"):
			if b.Description != nil {
				p.recordDuplicate(&b.Extra, b.Description, "description")
			}
			b.Description = p.parseDescription()
		case p.curIs("reference"):
			if b.Reference != nil {
				p.recordDuplicate(&b.Extra, b.Reference, "reference")
			}
			b.Reference = p.parseReference()
		default:
			p.skipUnknownChild()
		}
	})
	return b
}

func (p *Parser) parsePath() *ast.PathStmt {
	tok := p.curToken
	p.next()
	val, pos, ok := p.readArgument()
	var path ast.PathArg
	if ok {
		var err error
		path, err = ast.ParsePathArg(val)
		if err != nil {
			p.errors = append(p.errors, yangerr.InvalidArgument(toYangerrPos(pos), "invalid path %q: %v", val, err))
		}
	}
	ps := &ast.PathStmt{Value: path}
	ps.SetPos(tok.Line, tok.Column)
	p.endOfStatement(func() { p.skipUnknownChild() })
	return ps
}

func (p *Parser) parseBase() *ast.BaseStmt {
	tok := p.curToken
	p.next()
	val, _, ok := p.readArgument()
	var name ast.Identifier
	if ok {
		var err error
		name, err = ast.NewIdentifier(val)
		if err != nil {
			p.errors = append(p.errors, err)
		}
	}
	b := &ast.BaseStmt{Name: name}
	b.SetPos(tok.Line, tok.Column)
	p.endOfStatement(func() { p.skipUnknownChild() })
	return b
}

// parseTypedef parses a `typedef` statement — a TypeDefinition site for the
// resolver.
func (p *Parser) parseTypedef() *ast.Typedef {
	tok := p.curToken
	p.next()
	val, _, ok := p.readArgument()
	var name ast.Identifier
	if ok {
		var err error
		name, err = ast.NewIdentifier(val)
		if err != nil {
			p.errors = append(p.errors, err)
		}
	}
	td := &ast.Typedef{Name: name}
	td.SetPos(tok.Line, tok.Column)
	p.endOfStatement(func() {
		switch {
		case p.curIs("type"):
			if td.Type != nil {
				p.recordDuplicate(&td.Extra, td.Type, "type")
			}
			td.Type = p.parseType()
		case p.curIs("units"):
			if td.Units != nil {
				p.recordDuplicate(&td.Extra, td.Units, "units")
			}
			td.Units = p.parseUnits()
		case p.curIs("default"):
			if td.Default != nil {
				p.recordDuplicate(&td.Extra, td.Default, "default")
			}
			td.Default = p.parseDefault()
		case p.curIs("status"):
			if td.Status != nil {
				p.recordDuplicate(&td.Extra, td.Status, "status")
			}
			td.Status = p.parseStatus()
		case p.curIs("description"):
			if td.Description != nil {
				p.recordDuplicate(&td.Extra, td.Description, "description")
			}
			td.Description = p.parseDescription()
		case p.curIs("reference"):
			if td.Reference != nil {
				p.recordDuplicate(&td.Extra, td.Reference, "reference")
			}
			td.Reference = p.parseReference()
		default:
			td.Extra = append(td.Extra, p.parseGenericStatement())
		}
	})
	return td
}

// parseGrouping parses a `grouping` statement — a GroupingDefinition site
// for the resolver.
func (p *Parser) parseGrouping() *ast.Grouping {
	tok := p.curToken
	p.next()
	val, _, ok := p.readArgument()
	var name ast.Identifier
	if ok {
		var err error
		name, err = ast.NewIdentifier(val)
		if err != nil {
			p.errors = append(p.errors, err)
		}
	}
	g := &ast.Grouping{Name: name}
	g.SetPos(tok.Line, tok.Column)
	p.endOfStatement(func() {
		switch {
		case p.curIs("status"):
			if g.Status != nil {
				p.recordDuplicate(&g.Extra, g.Status, "status")
			}
			g.Status = p.parseStatus()
		case p.curIs("description"):
			if g.Description != nil {
				p.recordDuplicate(&g.Extra, g.Description, "description")
			}
			g.Description = p.parseDescription()
		case p.curIs("reference"):
			if g.Reference != nil {
				p.recordDuplicate(&g.Extra, g.Reference, "reference")
			}
			g.Reference = p.parseReference()
		case p.curIs("typedef"):
			g.Children = append(g.Children, p.parseTypedef())
		case p.curIs("grouping"):
			g.Children = append(g.Children, p.parseGrouping())
		case p.curIs("action"):
			g.Children = append(g.Children, p.parseAction())
		case p.curIs("notification"):
			g.Children = append(g.Children, p.parseNotification())
		case p.isDataDefinitionKeyword():
			g.Children = append(g.Children, p.parseDataDefinition())
		default:
			g.Extra = append(g.Extra, p.parseGenericStatement())
		}
	})
	return g
}
