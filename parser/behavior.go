package parser

import (
	"github.com/gkantsidis/yangparse/ast"
	"github.com/gkantsidis/yangparse/yangerr"
)

func (p *Parser) parseRpc() *ast.Rpc {
	tok := p.curToken
	p.next()
	name := p.parseName()
	r := &ast.Rpc{Name: name}
	r.SetPos(tok.Line, tok.Column)
	p.endOfStatement(func() {
		switch {
		case p.curIs("if-feature"):
			r.IfFeatures = append(r.IfFeatures, *p.parseIfFeature())
		case p.curIs("status"):
			if r.Status != nil {
				p.recordDuplicate(&r.Extra, r.Status, "status")
			}
			r.Status = p.parseStatus()
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
		case p.curIs("typedef"):
			r.Children = append(r.Children, p.parseTypedef())
		case p.curIs("grouping"):
			r.Children = append(r.Children, p.parseGrouping())
		case p.curIs("input"):
			if r.Input != nil {
				p.recordDuplicate(&r.Extra, r.Input, "input")
			}
			r.Input = p.parseInput()
		case p.curIs("output"):
			if r.Output != nil {
				p.recordDuplicate(&r.Extra, r.Output, "output")
			}
			r.Output = p.parseOutput()
		default:
			r.Extra = append(r.Extra, p.parseGenericStatement())
		}
	})
	return r
}

func (p *Parser) parseAction() *ast.Action {
	tok := p.curToken
	p.next()
	name := p.parseName()
	a := &ast.Action{Name: name}
	a.SetPos(tok.Line, tok.Column)
	p.endOfStatement(func() {
		switch {
		case p.curIs("if-feature"):
			a.IfFeatures = append(a.IfFeatures, *p.parseIfFeature())
		case p.curIs("status"):
			if a.Status != nil {
				p.recordDuplicate(&a.Extra, a.Status, "status")
			}
			a.Status = p.parseStatus()
		case p.curIs("description"):
			if a.Description != nil {
				p.recordDuplicate(&a.Extra, a.Description, "description")
			}
			a.Description = p.parseDescription()
		case p.curIs("reference"):
			if a.Reference != nil {
				p.recordDuplicate(&a.Extra, a.Reference, "reference")
			}
			a.Reference = p.parseReference()
		case p.curIs("typedef"):
			a.Children = append(a.Children, p.parseTypedef())
		case p.curIs("grouping"):
			a.Children = append(a.Children, p.parseGrouping())
		case p.curIs("input"):
			if a.Input != nil {
				p.recordDuplicate(&a.Extra, a.Input, "input")
			}
			a.Input = p.parseInput()
		case p.curIs("output"):
			if a.Output != nil {
				p.recordDuplicate(&a.Extra, a.Output, "output")
			}
			a.Output = p.parseOutput()
		default:
			a.Extra = append(a.Extra, p.parseGenericStatement())
		}
	})
	return a
}

func (p *Parser) parseNotification() *ast.Notification {
	tok := p.curToken
	p.next()
	name := p.parseName()
	n := &ast.Notification{Name: name}
	n.SetPos(tok.Line, tok.Column)
	p.endOfStatement(func() {
		switch {
		case p.curIs("if-feature"):
			n.IfFeatures = append(n.IfFeatures, *p.parseIfFeature())
		case p.curIs("status"):
			if n.Status != nil {
				p.recordDuplicate(&n.Extra, n.Status, "status")
			}
			n.Status = p.parseStatus()
		case p.curIs("description"):
			if n.Description != nil {
				p.recordDuplicate(&n.Extra, n.Description, "description")
			}
			n.Description = p.parseDescription()
		case p.curIs("reference"):
			if n.Reference != nil {
				p.recordDuplicate(&n.Extra, n.Reference, "reference")
			}
			n.Reference = p.parseReference()
		case p.curIs("typedef"):
			n.Children = append(n.Children, p.parseTypedef())
		case p.curIs("grouping"):
			n.Children = append(n.Children, p.parseGrouping())
		case p.isDataDefinitionKeyword():
			n.Children = append(n.Children, p.parseDataDefinition())
		default:
			n.Extra = append(n.Extra, p.parseGenericStatement())
		}
	})
	return n
}

func (p *Parser) parseInput() *ast.Input {
	tok := p.curToken
	p.next()
	i := &ast.Input{}
	i.SetPos(tok.Line, tok.Column)
	p.endOfStatement(func() {
		switch {
		case p.curIs("must"):
			i.Musts = append(i.Musts, *p.parseMust())
		case p.curIs("typedef"):
			i.Children = append(i.Children, p.parseTypedef())
		case p.curIs("grouping"):
			i.Children = append(i.Children, p.parseGrouping())
		case p.isDataDefinitionKeyword():
			i.Children = append(i.Children, p.parseDataDefinition())
		default:
			i.Extra = append(i.Extra, p.parseGenericStatement())
		}
	})
	return i
}

func (p *Parser) parseOutput() *ast.Output {
	tok := p.curToken
	p.next()
	o := &ast.Output{}
	o.SetPos(tok.Line, tok.Column)
	p.endOfStatement(func() {
		switch {
		case p.curIs("must"):
			o.Musts = append(o.Musts, *p.parseMust())
		case p.curIs("typedef"):
			o.Children = append(o.Children, p.parseTypedef())
		case p.curIs("grouping"):
			o.Children = append(o.Children, p.parseGrouping())
		case p.isDataDefinitionKeyword():
			o.Children = append(o.Children, p.parseDataDefinition())
		default:
			o.Extra = append(o.Extra, p.parseGenericStatement())
		}
	})
	return o
}

// parseAugment parses `augment target-node { ... }`. Per SPEC_FULL.md
// section 6 decision 4, the target path itself contributes one synthetic
// segment to the resolver path of every definition nested underneath —
// that contribution is implemented in the resolver, not here; the parser
// only records Target verbatim.
func (p *Parser) parseAugment() *ast.Augment {
	tok := p.curToken
	p.next()
	val, pos, ok := p.readArgument()
	var target ast.PathArg
	if ok {
		var err error
		target, err = ast.ParsePathArg(val)
		if err != nil {
			p.errors = append(p.errors, err)
		}
	}
	_ = pos
	a := &ast.Augment{Target: target}
	a.SetPos(tok.Line, tok.Column)
	p.endOfStatement(func() {
		switch {
		case p.curIs("when"):
			if a.When != nil {
				p.recordDuplicate(&a.Extra, a.When, "when")
			}
			a.When = p.parseWhen()
		case p.curIs("if-feature"):
			a.IfFeatures = append(a.IfFeatures, *p.parseIfFeature())
		case p.curIs("status"):
			if a.Status != nil {
				p.recordDuplicate(&a.Extra, a.Status, "status")
			}
			a.Status = p.parseStatus()
		case p.curIs("description"):
			if a.Description != nil {
				p.recordDuplicate(&a.Extra, a.Description, "description")
			}
			a.Description = p.parseDescription()
		case p.curIs("reference"):
			if a.Reference != nil {
				p.recordDuplicate(&a.Extra, a.Reference, "reference")
			}
			a.Reference = p.parseReference()
		case p.curIs("case"):
			a.Children = append(a.Children, p.parseCase())
		case p.curIs("action"):
			a.Children = append(a.Children, p.parseAction())
		case p.curIs("notification"):
			a.Children = append(a.Children, p.parseNotification())
		case p.isDataDefinitionKeyword():
			a.Children = append(a.Children, p.parseDataDefinition())
		default:
			a.Extra = append(a.Extra, p.parseGenericStatement())
		}
	})
	return a
}

func (p *Parser) parseRefine() *ast.Refine {
	tok := p.curToken
	p.next()
	val, _, ok := p.readArgument()
	var target ast.SchemaNodePath
	if ok {
		var err error
		target, err = ast.ParseSchemaNodePath(val)
		if err != nil {
			p.errors = append(p.errors, err)
		}
	}
	r := &ast.Refine{Target: target}
	r.SetPos(tok.Line, tok.Column)
	p.endOfStatement(func() {
		switch {
		case p.curIs("must"):
			r.Musts = append(r.Musts, *p.parseMust())
		case p.curIs("presence"):
			if r.Presence != nil {
				p.recordDuplicate(&r.Extra, r.Presence, "presence")
			}
			r.Presence = p.parsePresence()
		case p.curIs("default"):
			r.Default = append(r.Default, *p.parseDefault())
		case p.curIs("config"):
			if r.Config != nil {
				p.recordDuplicate(&r.Extra, r.Config, "config")
			}
			r.Config = p.parseConfig()
		case p.curIs("mandatory"):
			if r.Mandatory != nil {
				p.recordDuplicate(&r.Extra, r.Mandatory, "mandatory")
			}
			r.Mandatory = p.parseMandatory()
		case p.curIs("min-elements"):
			if r.MinElements != nil {
				p.recordDuplicate(&r.Extra, r.MinElements, "min-elements")
			}
			r.MinElements = p.parseMinElements()
		case p.curIs("max-elements"):
			if r.MaxElements != nil {
				p.recordDuplicate(&r.Extra, r.MaxElements, "max-elements")
			}
			r.MaxElements = p.parseMaxElements()
		case p.curIs("if-feature"):
			r.IfFeatures = append(r.IfFeatures, *p.parseIfFeature())
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
			r.Extra = append(r.Extra, p.parseGenericStatement())
		}
	})
	return r
}

func (p *Parser) parseIdentity() *ast.Identity {
	tok := p.curToken
	p.next()
	name := p.parseName()
	i := &ast.Identity{Name: name}
	i.SetPos(tok.Line, tok.Column)
	p.endOfStatement(func() {
		switch {
		case p.curIs("base"):
			i.Bases = append(i.Bases, *p.parseBase())
		case p.curIs("if-feature"):
			i.IfFeatures = append(i.IfFeatures, *p.parseIfFeature())
		case p.curIs("status"):
			if i.Status != nil {
				p.recordDuplicate(&i.Extra, i.Status, "status")
			}
			i.Status = p.parseStatus()
		case p.curIs("description"):
			if i.Description != nil {
				p.recordDuplicate(&i.Extra, i.Description, "description")
			}
			i.Description = p.parseDescription()
		case p.curIs("reference"):
			if i.Reference != nil {
				p.recordDuplicate(&i.Extra, i.Reference, "reference")
			}
			i.Reference = p.parseReference()
		default:
			i.Extra = append(i.Extra, p.parseGenericStatement())
		}
	})
	return i
}

func (p *Parser) parseFeature() *ast.Feature {
	tok := p.curToken
	p.next()
	name := p.parseName()
	f := &ast.Feature{Name: name}
	f.SetPos(tok.Line, tok.Column)
	p.endOfStatement(func() {
		switch {
		case p.curIs("if-feature"):
			f.IfFeatures = append(f.IfFeatures, *p.parseIfFeature())
		case p.curIs("status"):
			if f.Status != nil {
				p.recordDuplicate(&f.Extra, f.Status, "status")
			}
			f.Status = p.parseStatus()
		case p.curIs("description"):
			if f.Description != nil {
				p.recordDuplicate(&f.Extra, f.Description, "description")
			}
			f.Description = p.parseDescription()
		case p.curIs("reference"):
			if f.Reference != nil {
				p.recordDuplicate(&f.Extra, f.Reference, "reference")
			}
			f.Reference = p.parseReference()
		default:
			f.Extra = append(f.Extra, p.parseGenericStatement())
		}
	})
	return f
}

func (p *Parser) parseExtension() *ast.Extension {
	tok := p.curToken
	p.next()
	name := p.parseName()
	e := &ast.Extension{Name: name}
	e.SetPos(tok.Line, tok.Column)
	p.endOfStatement(func() {
		switch {
		case p.curIs("argument"):
			if e.Argument != nil {
				p.recordDuplicate(&e.Extra, e.Argument, "argument")
			}
			e.Argument = p.parseExtensionArgument()
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
			e.Extra = append(e.Extra, p.parseGenericStatement())
		}
	})
	return e
}

func (p *Parser) parseExtensionArgument() *ast.ExtensionArgument {
	tok := p.curToken
	p.next()
	name, _, _ := p.readArgument()
	a := &ast.ExtensionArgument{Name: name}
	a.SetPos(tok.Line, tok.Column)
	yinElementSeen := false
	p.endOfStatement(func() {
		if p.curIs("yin-element") {
			p.next()
			v, _ := p.parseBoolArg()
			if yinElementSeen {
				p.warnings = append(p.warnings, yangerr.Warning{
					Kind:    yangerr.KindDuplicateStatement,
					Pos:     p.errPos(),
					Message: "duplicate \"yin-element\" statement, keeping the last occurrence",
				})
			}
			yinElementSeen = true
			a.YinElement = &v
			p.endOfStatement(func() { p.skipUnknownChild() })
			return
		}
		p.skipUnknownChild()
	})
	return a
}

// parseDeviation parses `deviation target-node { ... }`. Per spec.md
// non-goals, only the parse tree is built here — nothing applies the
// deviation to the target's definition.
func (p *Parser) parseDeviation() *ast.Deviation {
	tok := p.curToken
	p.next()
	val, _, ok := p.readArgument()
	var target ast.PathArg
	if ok {
		var err error
		target, err = ast.ParsePathArg(val)
		if err != nil {
			p.errors = append(p.errors, err)
		}
	}
	d := &ast.Deviation{Target: target}
	d.SetPos(tok.Line, tok.Column)
	p.endOfStatement(func() {
		switch {
		case p.curIs("description"):
			if d.Description != nil {
				p.recordDuplicate(&d.Extra, d.Description, "description")
			}
			d.Description = p.parseDescription()
		case p.curIs("reference"):
			if d.Reference != nil {
				p.recordDuplicate(&d.Extra, d.Reference, "reference")
			}
			d.Reference = p.parseReference()
		case p.curIs("deviate"):
			d.Deviates = append(d.Deviates, *p.parseDeviate())
		default:
			d.Extra = append(d.Extra, p.parseGenericStatement())
		}
	})
	return d
}

func (p *Parser) parseDeviate() *ast.Deviate {
	tok := p.curToken
	p.next()
	arg, _, _ := p.readArgument()
	dv := &ast.Deviate{Arg: arg}
	dv.SetPos(tok.Line, tok.Column)
	p.endOfStatement(func() {
		switch {
		case p.curIs("type"):
			if dv.Type != nil {
				p.recordDuplicate(&dv.Extra, dv.Type, "type")
			}
			dv.Type = p.parseType()
		case p.curIs("units"):
			if dv.Units != nil {
				p.recordDuplicate(&dv.Extra, dv.Units, "units")
			}
			dv.Units = p.parseUnits()
		case p.curIs("must"):
			dv.Must = append(dv.Must, *p.parseMust())
		case p.curIs("default"):
			dv.Default = append(dv.Default, *p.parseDefault())
		case p.curIs("config"):
			if dv.Config != nil {
				p.recordDuplicate(&dv.Extra, dv.Config, "config")
			}
			dv.Config = p.parseConfig()
		case p.curIs("mandatory"):
			if dv.Mandatory != nil {
				p.recordDuplicate(&dv.Extra, dv.Mandatory, "mandatory")
			}
			dv.Mandatory = p.parseMandatory()
		case p.curIs("min-elements"):
			if dv.MinElements != nil {
				p.recordDuplicate(&dv.Extra, dv.MinElements, "min-elements")
			}
			dv.MinElements = p.parseMinElements()
		case p.curIs("max-elements"):
			if dv.MaxElements != nil {
				p.recordDuplicate(&dv.Extra, dv.MaxElements, "max-elements")
			}
			dv.MaxElements = p.parseMaxElements()
		default:
			dv.Extra = append(dv.Extra, p.parseGenericStatement())
		}
	})
	return dv
}
