package parser

import (
	"github.com/gkantsidis/yangparse/ast"
	"github.com/gkantsidis/yangparse/token"
)

// dataDefinitionKeywords is the alternation named "data-definition-stmt" in
// spec.md section 4.4: container | leaf | leaf-list | list | choice |
// anydata | anyxml | uses.
var dataDefinitionKeywords = map[string]bool{
	"container": true,
	"leaf":      true,
	"leaf-list": true,
	"list":      true,
	"choice":    true,
	"anydata":   true,
	"anyxml":    true,
	"uses":      true,
}

func (p *Parser) isDataDefinitionKeyword() bool {
	return p.curToken.Type == token.IDENT && dataDefinitionKeywords[p.curToken.Literal]
}

// parseDataDefinition dispatches to the concrete data-definition parser for
// the current keyword. Callers must already know isDataDefinitionKeyword
// is true.
func (p *Parser) parseDataDefinition() ast.DataDefinition {
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
	case "anydata":
		return p.parseAnydata()
	case "anyxml":
		return p.parseAnyxml()
	case "uses":
		return p.parseUses()
	}
	panic("parseDataDefinition: unreachable keyword " + p.curToken.Literal)
}

func (p *Parser) parseName() ast.Identifier {
	val, _, ok := p.readArgument()
	if !ok {
		return ast.Identifier{}
	}
	name, err := ast.NewIdentifier(val)
	if err != nil {
		p.errors = append(p.errors, err)
	}
	return name
}

func (p *Parser) parseContainer() *ast.Container {
	tok := p.curToken
	p.next()
	name := p.parseName()
	c := &ast.Container{Name: name}
	c.SetPos(tok.Line, tok.Column)
	p.endOfStatement(func() {
		switch {
		case p.curIs("when"):
			if c.When != nil {
				p.recordDuplicate(&c.Extra, c.When, "when")
			}
			c.When = p.parseWhen()
		case p.curIs("must"):
			c.Musts = append(c.Musts, *p.parseMust())
		case p.curIs("presence"):
			if c.Presence != nil {
				p.recordDuplicate(&c.Extra, c.Presence, "presence")
			}
			c.Presence = p.parsePresence()
		case p.curIs("config"):
			if c.Config != nil {
				p.recordDuplicate(&c.Extra, c.Config, "config")
			}
			c.Config = p.parseConfig()
		case p.curIs("if-feature"):
			c.IfFeatures = append(c.IfFeatures, *p.parseIfFeature())
		case p.curIs("status"):
			if c.Status != nil {
				p.recordDuplicate(&c.Extra, c.Status, "status")
			}
			c.Status = p.parseStatus()
		case p.curIs("description"):
			if c.Description != nil {
				p.recordDuplicate(&c.Extra, c.Description, "description")
			}
			c.Description = p.parseDescription()
		case p.curIs("reference"):
			if c.Reference != nil {
				p.recordDuplicate(&c.Extra, c.Reference, "reference")
			}
			c.Reference = p.parseReference()
		case p.curIs("typedef"):
			c.Children = append(c.Children, p.parseTypedef())
		case p.curIs("grouping"):
			c.Children = append(c.Children, p.parseGrouping())
		case p.curIs("action"):
			c.Children = append(c.Children, p.parseAction())
		case p.curIs("notification"):
			c.Children = append(c.Children, p.parseNotification())
		case p.isDataDefinitionKeyword():
			c.Children = append(c.Children, p.parseDataDefinition())
		default:
			c.Extra = append(c.Extra, p.parseGenericStatement())
		}
	})
	return c
}

func (p *Parser) parseLeaf() *ast.Leaf {
	tok := p.curToken
	p.next()
	name := p.parseName()
	l := &ast.Leaf{Name: name}
	l.SetPos(tok.Line, tok.Column)
	p.endOfStatement(func() {
		switch {
		case p.curIs("when"):
			if l.When != nil {
				p.recordDuplicate(&l.Extra, l.When, "when")
			}
			l.When = p.parseWhen()
		case p.curIs("must"):
			l.Musts = append(l.Musts, *p.parseMust())
		case p.curIs("type"):
			if l.Type != nil {
				p.recordDuplicate(&l.Extra, l.Type, "type")
			}
			l.Type = p.parseType()
		case p.curIs("units"):
			if l.Units != nil {
				p.recordDuplicate(&l.Extra, l.Units, "units")
			}
			l.Units = p.parseUnits()
		case p.curIs("default"):
			if l.Default != nil {
				p.recordDuplicate(&l.Extra, l.Default, "default")
			}
			l.Default = p.parseDefault()
		case p.curIs("config"):
			if l.Config != nil {
				p.recordDuplicate(&l.Extra, l.Config, "config")
			}
			l.Config = p.parseConfig()
		case p.curIs("mandatory"):
			if l.Mandatory != nil {
				p.recordDuplicate(&l.Extra, l.Mandatory, "mandatory")
			}
			l.Mandatory = p.parseMandatory()
		case p.curIs("if-feature"):
			l.IfFeatures = append(l.IfFeatures, *p.parseIfFeature())
		case p.curIs("status"):
			if l.Status != nil {
				p.recordDuplicate(&l.Extra, l.Status, "status")
			}
			l.Status = p.parseStatus()
		case p.curIs("description"):
			if l.Description != nil {
				p.recordDuplicate(&l.Extra, l.Description, "description")
			}
			l.Description = p.parseDescription()
		case p.curIs("reference"):
			if l.Reference != nil {
				p.recordDuplicate(&l.Extra, l.Reference, "reference")
			}
			l.Reference = p.parseReference()
		default:
			l.Extra = append(l.Extra, p.parseGenericStatement())
		}
	})
	return l
}

func (p *Parser) parseLeafList() *ast.LeafList {
	tok := p.curToken
	p.next()
	name := p.parseName()
	l := &ast.LeafList{Name: name}
	l.SetPos(tok.Line, tok.Column)
	p.endOfStatement(func() {
		switch {
		case p.curIs("when"):
			if l.When != nil {
				p.recordDuplicate(&l.Extra, l.When, "when")
			}
			l.When = p.parseWhen()
		case p.curIs("must"):
			l.Musts = append(l.Musts, *p.parseMust())
		case p.curIs("type"):
			if l.Type != nil {
				p.recordDuplicate(&l.Extra, l.Type, "type")
			}
			l.Type = p.parseType()
		case p.curIs("units"):
			if l.Units != nil {
				p.recordDuplicate(&l.Extra, l.Units, "units")
			}
			l.Units = p.parseUnits()
		case p.curIs("default"):
			l.Defaults = append(l.Defaults, *p.parseDefault())
		case p.curIs("config"):
			if l.Config != nil {
				p.recordDuplicate(&l.Extra, l.Config, "config")
			}
			l.Config = p.parseConfig()
		case p.curIs("min-elements"):
			if l.MinElements != nil {
				p.recordDuplicate(&l.Extra, l.MinElements, "min-elements")
			}
			l.MinElements = p.parseMinElements()
		case p.curIs("max-elements"):
			if l.MaxElements != nil {
				p.recordDuplicate(&l.Extra, l.MaxElements, "max-elements")
			}
			l.MaxElements = p.parseMaxElements()
		case p.curIs("ordered-by"):
			if l.OrderedBy != nil {
				p.recordDuplicate(&l.Extra, l.OrderedBy, "ordered-by")
			}
			l.OrderedBy = p.parseOrderedBy()
		case p.curIs("if-feature"):
			l.IfFeatures = append(l.IfFeatures, *p.parseIfFeature())
		case p.curIs("status"):
			if l.Status != nil {
				p.recordDuplicate(&l.Extra, l.Status, "status")
			}
			l.Status = p.parseStatus()
		case p.curIs("description"):
			if l.Description != nil {
				p.recordDuplicate(&l.Extra, l.Description, "description")
			}
			l.Description = p.parseDescription()
		case p.curIs("reference"):
			if l.Reference != nil {
				p.recordDuplicate(&l.Extra, l.Reference, "reference")
			}
			l.Reference = p.parseReference()
		default:
			l.Extra = append(l.Extra, p.parseGenericStatement())
		}
	})
	return l
}

func (p *Parser) parseList() *ast.List {
	tok := p.curToken
	p.next()
	name := p.parseName()
	l := &ast.List{Name: name}
	l.SetPos(tok.Line, tok.Column)
	p.endOfStatement(func() {
		switch {
		case p.curIs("when"):
			if l.When != nil {
				p.recordDuplicate(&l.Extra, l.When, "when")
			}
			l.When = p.parseWhen()
		case p.curIs("must"):
			l.Musts = append(l.Musts, *p.parseMust())
		case p.curIs("key"):
			if l.Key != nil {
				p.recordDuplicate(&l.Extra, l.Key, "key")
			}
			l.Key = p.parseKey()
		case p.curIs("unique"):
			l.Uniques = append(l.Uniques, *p.parseUnique())
		case p.curIs("config"):
			if l.Config != nil {
				p.recordDuplicate(&l.Extra, l.Config, "config")
			}
			l.Config = p.parseConfig()
		case p.curIs("min-elements"):
			if l.MinElements != nil {
				p.recordDuplicate(&l.Extra, l.MinElements, "min-elements")
			}
			l.MinElements = p.parseMinElements()
		case p.curIs("max-elements"):
			if l.MaxElements != nil {
				p.recordDuplicate(&l.Extra, l.MaxElements, "max-elements")
			}
			l.MaxElements = p.parseMaxElements()
		case p.curIs("ordered-by"):
			if l.OrderedBy != nil {
				p.recordDuplicate(&l.Extra, l.OrderedBy, "ordered-by")
			}
			l.OrderedBy = p.parseOrderedBy()
		case p.curIs("if-feature"):
			l.IfFeatures = append(l.IfFeatures, *p.parseIfFeature())
		case p.curIs("status"):
			if l.Status != nil {
				p.recordDuplicate(&l.Extra, l.Status, "status")
			}
			l.Status = p.parseStatus()
		case p.curIs("description"):
			if l.Description != nil {
				p.recordDuplicate(&l.Extra, l.Description, "description")
			}
			l.Description = p.parseDescription()
		case p.curIs("reference"):
			if l.Reference != nil {
				p.recordDuplicate(&l.Extra, l.Reference, "reference")
			}
			l.Reference = p.parseReference()
		case p.curIs("typedef"):
			l.Children = append(l.Children, p.parseTypedef())
		case p.curIs("grouping"):
			l.Children = append(l.Children, p.parseGrouping())
		case p.curIs("action"):
			l.Children = append(l.Children, p.parseAction())
		case p.curIs("notification"):
			l.Children = append(l.Children, p.parseNotification())
		case p.isDataDefinitionKeyword():
			l.Children = append(l.Children, p.parseDataDefinition())
		default:
			l.Extra = append(l.Extra, p.parseGenericStatement())
		}
	})
	return l
}

func (p *Parser) parseChoice() *ast.Choice {
	tok := p.curToken
	p.next()
	name := p.parseName()
	c := &ast.Choice{Name: name}
	c.SetPos(tok.Line, tok.Column)
	p.endOfStatement(func() {
		switch {
		case p.curIs("when"):
			if c.When != nil {
				p.recordDuplicate(&c.Extra, c.When, "when")
			}
			c.When = p.parseWhen()
		case p.curIs("default"):
			if c.Default != nil {
				p.recordDuplicate(&c.Extra, c.Default, "default")
			}
			c.Default = p.parseDefault()
		case p.curIs("config"):
			if c.Config != nil {
				p.recordDuplicate(&c.Extra, c.Config, "config")
			}
			c.Config = p.parseConfig()
		case p.curIs("mandatory"):
			if c.Mandatory != nil {
				p.recordDuplicate(&c.Extra, c.Mandatory, "mandatory")
			}
			c.Mandatory = p.parseMandatory()
		case p.curIs("if-feature"):
			c.IfFeatures = append(c.IfFeatures, *p.parseIfFeature())
		case p.curIs("status"):
			if c.Status != nil {
				p.recordDuplicate(&c.Extra, c.Status, "status")
			}
			c.Status = p.parseStatus()
		case p.curIs("description"):
			if c.Description != nil {
				p.recordDuplicate(&c.Extra, c.Description, "description")
			}
			c.Description = p.parseDescription()
		case p.curIs("reference"):
			if c.Reference != nil {
				p.recordDuplicate(&c.Extra, c.Reference, "reference")
			}
			c.Reference = p.parseReference()
		case p.curIs("case"):
			c.Cases = append(c.Cases, p.parseCase())
		case p.isDataDefinitionKeyword():
			// shorthand case: a bare data-definition stands for an
			// implicit case wrapping just that one node (RFC 7950 7.9.2).
			c.Cases = append(c.Cases, p.parseDataDefinition())
		default:
			c.Extra = append(c.Extra, p.parseGenericStatement())
		}
	})
	return c
}

func (p *Parser) parseCase() *ast.Case {
	tok := p.curToken
	p.next()
	name := p.parseName()
	c := &ast.Case{Name: name}
	c.SetPos(tok.Line, tok.Column)
	p.endOfStatement(func() {
		switch {
		case p.curIs("when"):
			if c.When != nil {
				p.recordDuplicate(&c.Extra, c.When, "when")
			}
			c.When = p.parseWhen()
		case p.curIs("if-feature"):
			c.IfFeatures = append(c.IfFeatures, *p.parseIfFeature())
		case p.curIs("status"):
			if c.Status != nil {
				p.recordDuplicate(&c.Extra, c.Status, "status")
			}
			c.Status = p.parseStatus()
		case p.curIs("description"):
			if c.Description != nil {
				p.recordDuplicate(&c.Extra, c.Description, "description")
			}
			c.Description = p.parseDescription()
		case p.curIs("reference"):
			if c.Reference != nil {
				p.recordDuplicate(&c.Extra, c.Reference, "reference")
			}
			c.Reference = p.parseReference()
		case p.isDataDefinitionKeyword():
			c.Children = append(c.Children, p.parseDataDefinition())
		default:
			c.Extra = append(c.Extra, p.parseGenericStatement())
		}
	})
	return c
}

func (p *Parser) parseAnydata() *ast.Anydata {
	tok := p.curToken
	p.next()
	name := p.parseName()
	a := &ast.Anydata{Name: name}
	a.SetPos(tok.Line, tok.Column)
	p.endOfStatement(func() {
		switch {
		case p.curIs("when"):
			if a.When != nil {
				p.recordDuplicate(&a.Extra, a.When, "when")
			}
			a.When = p.parseWhen()
		case p.curIs("must"):
			a.Musts = append(a.Musts, *p.parseMust())
		case p.curIs("config"):
			if a.Config != nil {
				p.recordDuplicate(&a.Extra, a.Config, "config")
			}
			a.Config = p.parseConfig()
		case p.curIs("mandatory"):
			if a.Mandatory != nil {
				p.recordDuplicate(&a.Extra, a.Mandatory, "mandatory")
			}
			a.Mandatory = p.parseMandatory()
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
		default:
			a.Extra = append(a.Extra, p.parseGenericStatement())
		}
	})
	return a
}

func (p *Parser) parseAnyxml() *ast.Anyxml {
	tok := p.curToken
	p.next()
	name := p.parseName()
	a := &ast.Anyxml{Name: name}
	a.SetPos(tok.Line, tok.Column)
	p.endOfStatement(func() {
		switch {
		case p.curIs("when"):
			if a.When != nil {
				p.recordDuplicate(&a.Extra, a.When, "when")
			}
			a.When = p.parseWhen()
		case p.curIs("must"):
			a.Musts = append(a.Musts, *p.parseMust())
		case p.curIs("config"):
			if a.Config != nil {
				p.recordDuplicate(&a.Extra, a.Config, "config")
			}
			a.Config = p.parseConfig()
		case p.curIs("mandatory"):
			if a.Mandatory != nil {
				p.recordDuplicate(&a.Extra, a.Mandatory, "mandatory")
			}
			a.Mandatory = p.parseMandatory()
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
		default:
			a.Extra = append(a.Extra, p.parseGenericStatement())
		}
	})
	return a
}

func (p *Parser) parseUses() *ast.Uses {
	tok := p.curToken
	p.next()
	val, _, ok := p.readArgument()
	var grouping ast.Identifier
	if ok {
		var err error
		grouping, err = ast.NewIdentifier(val)
		if err != nil {
			p.errors = append(p.errors, err)
		}
	}
	u := &ast.Uses{Grouping: grouping}
	u.SetPos(tok.Line, tok.Column)
	p.endOfStatement(func() {
		switch {
		case p.curIs("when"):
			if u.When != nil {
				p.recordDuplicate(&u.Extra, u.When, "when")
			}
			u.When = p.parseWhen()
		case p.curIs("if-feature"):
			u.IfFeatures = append(u.IfFeatures, *p.parseIfFeature())
		case p.curIs("status"):
			if u.Status != nil {
				p.recordDuplicate(&u.Extra, u.Status, "status")
			}
			u.Status = p.parseStatus()
		case p.curIs("description"):
			if u.Description != nil {
				p.recordDuplicate(&u.Extra, u.Description, "description")
			}
			u.Description = p.parseDescription()
		case p.curIs("reference"):
			if u.Reference != nil {
				p.recordDuplicate(&u.Extra, u.Reference, "reference")
			}
			u.Reference = p.parseReference()
		case p.curIs("refine"):
			u.Refines = append(u.Refines, *p.parseRefine())
		case p.curIs("augment"):
			u.Augments = append(u.Augments, *p.parseAugment())
		default:
			u.Extra = append(u.Extra, p.parseGenericStatement())
		}
	})
	return u
}
