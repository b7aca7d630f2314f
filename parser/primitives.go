package parser

import (
	"strconv"
	"strings"

	"github.com/gkantsidis/yangparse/ast"
	"github.com/gkantsidis/yangparse/token"
	"github.com/gkantsidis/yangparse/yangerr"
)

// This file parses the "simple" statements: single typed argument, body
// restricted to description/reference/error-message/error-app-tag (or
// nothing at all). Each follows the same shape: read the keyword token,
// read+typecheck the argument, then consume the terminator.

func (p *Parser) parseDescription() *ast.Description {
	tok := p.curToken
	p.next()
	text, _, _ := p.readArgument()
	d := &ast.Description{Text: text}
	d.SetPos(tok.Line, tok.Column)
	p.endOfStatement(func() { p.skipUnknownChild() })
	return d
}

func (p *Parser) parseReference() *ast.Reference {
	tok := p.curToken
	p.next()
	text, _, _ := p.readArgument()
	r := &ast.Reference{Text: text}
	r.SetPos(tok.Line, tok.Column)
	p.endOfStatement(func() { p.skipUnknownChild() })
	return r
}

func (p *Parser) parsePresence() *ast.Presence {
	tok := p.curToken
	p.next()
	text, _, _ := p.readArgument()
	n := &ast.Presence{Text: text}
	n.SetPos(tok.Line, tok.Column)
	p.endOfStatement(func() { p.skipUnknownChild() })
	return n
}

func (p *Parser) parseUnits() *ast.Units {
	tok := p.curToken
	p.next()
	text, _, _ := p.readArgument()
	u := &ast.Units{Text: text}
	u.SetPos(tok.Line, tok.Column)
	p.endOfStatement(func() { p.skipUnknownChild() })
	return u
}

func (p *Parser) parseDefault() *ast.Default {
	tok := p.curToken
	p.next()
	text, _, _ := p.readArgument()
	d := &ast.Default{Text: text}
	d.SetPos(tok.Line, tok.Column)
	p.endOfStatement(func() { p.skipUnknownChild() })
	return d
}

func (p *Parser) parseErrorMessage() *ast.ErrorMessage {
	tok := p.curToken
	p.next()
	text, _, _ := p.readArgument()
	e := &ast.ErrorMessage{Text: text}
	e.SetPos(tok.Line, tok.Column)
	p.endOfStatement(func() { p.skipUnknownChild() })
	return e
}

func (p *Parser) parseErrorAppTag() *ast.ErrorAppTag {
	tok := p.curToken
	p.next()
	text, _, _ := p.readArgument()
	e := &ast.ErrorAppTag{Text: text}
	e.SetPos(tok.Line, tok.Column)
	p.endOfStatement(func() { p.skipUnknownChild() })
	return e
}

func (p *Parser) parseBoolArg() (bool, bool) {
	val, pos, ok := p.readArgument()
	if !ok {
		return false, false
	}
	switch val {
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		p.errors = append(p.errors, yangerr.InvalidArgument(toYangerrPos(pos), "expected 'true' or 'false', got %q", val))
		return false, false
	}
}

func (p *Parser) parseConfig() *ast.Config {
	tok := p.curToken
	p.next()
	v, _ := p.parseBoolArg()
	c := &ast.Config{Value: v}
	c.SetPos(tok.Line, tok.Column)
	p.endOfStatement(func() { p.skipUnknownChild() })
	return c
}

func (p *Parser) parseMandatory() *ast.Mandatory {
	tok := p.curToken
	p.next()
	v, _ := p.parseBoolArg()
	m := &ast.Mandatory{Value: v}
	m.SetPos(tok.Line, tok.Column)
	p.endOfStatement(func() { p.skipUnknownChild() })
	return m
}

func (p *Parser) parseRequireInstance() *ast.RequireInstanceStmt {
	tok := p.curToken
	p.next()
	v, _ := p.parseBoolArg()
	r := &ast.RequireInstanceStmt{Value: v}
	r.SetPos(tok.Line, tok.Column)
	p.endOfStatement(func() { p.skipUnknownChild() })
	return r
}

func (p *Parser) parseMinElements() *ast.MinElements {
	tok := p.curToken
	p.next()
	val, pos, ok := p.readArgument()
	var n uint64
	if ok {
		var err error
		n, err = strconv.ParseUint(val, 10, 64)
		if err != nil {
			p.errors = append(p.errors, yangerr.InvalidArgument(toYangerrPos(pos), "invalid min-elements %q", val))
		}
	}
	m := &ast.MinElements{Value: n}
	m.SetPos(tok.Line, tok.Column)
	p.endOfStatement(func() { p.skipUnknownChild() })
	return m
}

func (p *Parser) parseMaxElements() *ast.MaxElements {
	tok := p.curToken
	p.next()
	val, pos, ok := p.readArgument()
	var mv ast.MaxValue
	if ok {
		var err error
		mv, err = ast.ParseMaxValue(val)
		if err != nil {
			p.errors = append(p.errors, yangerr.InvalidArgument(toYangerrPos(pos), "invalid max-elements %q", val))
		}
	}
	m := &ast.MaxElements{Value: mv}
	m.SetPos(tok.Line, tok.Column)
	p.endOfStatement(func() { p.skipUnknownChild() })
	return m
}

func (p *Parser) parseOrderedBy() *ast.OrderedByStmt {
	tok := p.curToken
	p.next()
	val, pos, ok := p.readArgument()
	var ob ast.OrderedBy
	if ok {
		var err error
		ob, err = ast.ParseOrderedBy(val)
		if err != nil {
			p.errors = append(p.errors, yangerr.InvalidArgument(toYangerrPos(pos), "invalid ordered-by %q", val))
		}
	}
	o := &ast.OrderedByStmt{Value: ob}
	o.SetPos(tok.Line, tok.Column)
	p.endOfStatement(func() { p.skipUnknownChild() })
	return o
}

func (p *Parser) parseStatus() *ast.StatusStmt {
	tok := p.curToken
	p.next()
	val, pos, ok := p.readArgument()
	var st ast.Status
	if ok {
		var err error
		st, err = ast.ParseStatus(val)
		if err != nil {
			p.errors = append(p.errors, yangerr.InvalidArgument(toYangerrPos(pos), "invalid status %q", val))
		}
	}
	s := &ast.StatusStmt{Value: st}
	s.SetPos(tok.Line, tok.Column)
	p.endOfStatement(func() { p.skipUnknownChild() })
	return s
}

func (p *Parser) parseKey() *ast.Key {
	tok := p.curToken
	p.next()
	val, pos, ok := p.readArgument()
	var ids []ast.Identifier
	if ok {
		var err error
		ids, err = ast.ParseKeyArg(val)
		if err != nil {
			p.errors = append(p.errors, yangerr.InvalidArgument(toYangerrPos(pos), "invalid key %q: %v", val, err))
		}
	}
	k := &ast.Key{Identifiers: ids}
	k.SetPos(tok.Line, tok.Column)
	p.endOfStatement(func() { p.skipUnknownChild() })
	return k
}

func (p *Parser) parseUnique() *ast.Unique {
	tok := p.curToken
	p.next()
	val, pos, ok := p.readArgument()
	var paths []ast.SchemaNodePath
	if ok {
		var err error
		paths, err = ast.ParseUniqueArg(val)
		if err != nil {
			p.errors = append(p.errors, yangerr.InvalidArgument(toYangerrPos(pos), "invalid unique %q: %v", val, err))
		}
	}
	u := &ast.Unique{Paths: paths}
	u.SetPos(tok.Line, tok.Column)
	p.endOfStatement(func() { p.skipUnknownChild() })
	return u
}

func (p *Parser) parseWhen() *ast.When {
	tok := p.curToken
	p.next()
	cond, _, _ := p.readArgument()
	w := &ast.When{Condition: cond}
	w.SetPos(tok.Line, tok.Column)
	p.endOfStatement(func() {
		switch {
		case p.curIs("description"):
			if w.Description != nil {
				p.recordDuplicate(&w.Extra, w.Description, "description")
			}
			w.Description = p.parseDescription()
		case p.curIs("reference"):
			if w.Reference != nil {
				p.recordDuplicate(&w.Extra, w.Reference, "reference")
			}
			w.Reference = p.parseReference()
		default:
			p.skipUnknownChild()
		}
	})
	return w
}

func (p *Parser) parseMust() *ast.Must {
	tok := p.curToken
	p.next()
	cond, _, _ := p.readArgument()
	m := &ast.Must{Condition: cond}
	m.SetPos(tok.Line, tok.Column)
	p.endOfStatement(func() {
		switch {
		case p.curIs("error-message"):
			if m.ErrorMessage != nil {
				p.recordDuplicate(&m.Extra, m.ErrorMessage, "error-message")
			}
			m.ErrorMessage = p.parseErrorMessage()
		case p.curIs("error-app-tag"):
			if m.ErrorAppTag != nil {
				p.recordDuplicate(&m.Extra, m.ErrorAppTag, "error-app-tag")
			}
			m.ErrorAppTag = p.parseErrorAppTag()
		case p.curIs("description"):
			if m.Description != nil {
				p.recordDuplicate(&m.Extra, m.Description, "description")
			}
			m.Description = p.parseDescription()
		case p.curIs("reference"):
			if m.Reference != nil {
				p.recordDuplicate(&m.Extra, m.Reference, "reference")
			}
			m.Reference = p.parseReference()
		default:
			p.skipUnknownChild()
		}
	})
	return m
}

// parseIfFeature parses `if-feature "expr"`, where expr is a boolean
// combination of feature names with "and"/"or"/"not" and parentheses
// (SPEC_FULL.md section 4). Precedence, low to high: or, and, not.
func (p *Parser) parseIfFeature() *ast.IfFeature {
	tok := p.curToken
	p.next()
	val, pos, ok := p.readArgument()
	f := &ast.IfFeature{}
	if ok {
		expr, err := parseFeatureExpr(val)
		if err != nil {
			p.errors = append(p.errors, yangerr.InvalidArgument(toYangerrPos(pos), "invalid if-feature expression %q: %v", val, err))
		}
		f.Expr = expr
	}
	f.SetPos(tok.Line, tok.Column)
	p.endOfStatement(func() { p.skipUnknownChild() })
	return f
}

// skipUnknownChild consumes one statement inside a statement's body without
// attaching it anywhere: the child does not appear in the caller's Extra,
// even for callers whose node has one (when, must, pattern, enum, bit,
// import, revision). This is the lenient-parse policy of silently
// tolerating but not retaining unrecognized sub-statements here.
func (p *Parser) skipUnknownChild() {
	p.parseGenericStatement()
}

func toYangerrPos(pos token.Position) yangerr.Position {
	return yangerr.Position{Line: pos.Line, Column: pos.Column}
}

// -----------------------------------------------------------------------------
// if-feature expression grammar, a tiny standalone recursive-descent parser
// over the if-feature-expr string (not the statement token stream).
// -----------------------------------------------------------------------------

type featureExprParser struct {
	input string
	pos   int
}

func parseFeatureExpr(s string) (ast.FeatureExpr, error) {
	fp := &featureExprParser{input: s}
	fp.skipSpace()
	expr, err := fp.parseOr()
	if err != nil {
		return ast.FeatureExpr{}, err
	}
	fp.skipSpace()
	if fp.pos != len(fp.input) {
		return ast.FeatureExpr{}, yangerr.InvalidArgument(yangerr.Position{}, "trailing input in if-feature expression %q", s)
	}
	return expr, nil
}

func (fp *featureExprParser) skipSpace() {
	for fp.pos < len(fp.input) && (fp.input[fp.pos] == ' ' || fp.input[fp.pos] == '\t' || fp.input[fp.pos] == '\n' || fp.input[fp.pos] == '\r') {
		fp.pos++
	}
}

func (fp *featureExprParser) peekWord(word string) bool {
	fp.skipSpace()
	rest := fp.input[fp.pos:]
	if !strings.HasPrefix(rest, word) {
		return false
	}
	after := fp.pos + len(word)
	if after < len(fp.input) {
		c := fp.input[after]
		if isFeatureIdentByte(c) {
			return false
		}
	}
	return true
}

func isFeatureIdentByte(c byte) bool {
	return c == '_' || c == '-' || c == '.' || c == ':' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func (fp *featureExprParser) parseOr() (ast.FeatureExpr, error) {
	left, err := fp.parseAnd()
	if err != nil {
		return ast.FeatureExpr{}, err
	}
	for {
		if fp.peekWord("or") {
			fp.pos += len("or")
			right, err := fp.parseAnd()
			if err != nil {
				return ast.FeatureExpr{}, err
			}
			l, r := left, right
			left = ast.FeatureExpr{Left: &l, Op: "or", Right: &r}
			continue
		}
		break
	}
	return left, nil
}

func (fp *featureExprParser) parseAnd() (ast.FeatureExpr, error) {
	left, err := fp.parseNot()
	if err != nil {
		return ast.FeatureExpr{}, err
	}
	for {
		if fp.peekWord("and") {
			fp.pos += len("and")
			right, err := fp.parseNot()
			if err != nil {
				return ast.FeatureExpr{}, err
			}
			l, r := left, right
			left = ast.FeatureExpr{Left: &l, Op: "and", Right: &r}
			continue
		}
		break
	}
	return left, nil
}

func (fp *featureExprParser) parseNot() (ast.FeatureExpr, error) {
	if fp.peekWord("not") {
		fp.pos += len("not")
		inner, err := fp.parseNot()
		if err != nil {
			return ast.FeatureExpr{}, err
		}
		return ast.FeatureExpr{Not: &inner}, nil
	}
	return fp.parseAtom()
}

func (fp *featureExprParser) parseAtom() (ast.FeatureExpr, error) {
	fp.skipSpace()
	if fp.pos >= len(fp.input) {
		return ast.FeatureExpr{}, yangerr.InvalidArgument(yangerr.Position{}, "unexpected end of if-feature expression")
	}
	if fp.input[fp.pos] == '(' {
		fp.pos++
		expr, err := fp.parseOr()
		if err != nil {
			return ast.FeatureExpr{}, err
		}
		fp.skipSpace()
		if fp.pos >= len(fp.input) || fp.input[fp.pos] != ')' {
			return ast.FeatureExpr{}, yangerr.InvalidArgument(yangerr.Position{}, "missing closing parenthesis")
		}
		fp.pos++
		return expr, nil
	}
	start := fp.pos
	for fp.pos < len(fp.input) && isFeatureIdentByte(fp.input[fp.pos]) {
		fp.pos++
	}
	if fp.pos == start {
		return ast.FeatureExpr{}, yangerr.InvalidArgument(yangerr.Position{}, "expected feature name at offset %d", start)
	}
	name := fp.input[start:fp.pos]
	id, err := ast.NewIdentifier(name)
	if err != nil {
		return ast.FeatureExpr{}, err
	}
	return ast.FeatureExpr{Feature: &id}, nil
}
