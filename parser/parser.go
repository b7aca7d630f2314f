// Package parser implements a recursive-descent parser over the YANG
// statement grammar (RFC 7950), producing the typed ast.Statement tree.
package parser

import (
	"fmt"

	"github.com/gkantsidis/yangparse/ast"
	"github.com/gkantsidis/yangparse/lexer"
	"github.com/gkantsidis/yangparse/token"
	"github.com/gkantsidis/yangparse/yangerr"
)

// Parser turns a token stream into a typed ast.Module/ast.Submodule. It
// follows the same accumulate-don't-panic error discipline as
// ha1tch-tsqlparser/parser.Parser: lexical/grammar failures are recorded in
// errors and parsing continues on a best-effort basis so that a single bad
// statement doesn't prevent every other diagnostic from surfacing.
type Parser struct {
	l *lexer.Lexer

	curToken  token.Token
	peekToken token.Token

	errors   []error
	warnings []yangerr.Warning
}

// New creates a Parser over already comment-stripped YANG source text.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	p.next()
	p.next()
	return p
}

// Errors returns every accumulated parse error, in source order.
func (p *Parser) Errors() []error { return p.errors }

// Warnings returns accumulated non-fatal diagnostics (duplicate-statement
// notices under the lenient-parse policy).
func (p *Parser) Warnings() []yangerr.Warning { return p.warnings }

func (p *Parser) next() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) pos() token.Position {
	return token.Position{Line: p.curToken.Line, Column: p.curToken.Column}
}

func (p *Parser) errPos() yangerr.Position {
	return yangerr.Position{Line: p.curToken.Line, Column: p.curToken.Column}
}

func (p *Parser) errorf(format string, args ...any) {
	p.errors = append(p.errors, yangerr.UnexpectedStatement(p.errPos(), format, args...))
}

// curIs reports whether the current token is an IDENT whose literal equals
// kw (YANG keywords are case-sensitive, spec.md section 3's invariants, and
// lex as plain identifiers since they are not reserved words).
func (p *Parser) curIs(kw string) bool {
	return p.curToken.Type == token.IDENT && p.curToken.Literal == kw
}

func (p *Parser) peekIs(kw string) bool {
	return p.peekToken.Type == token.IDENT && p.peekToken.Literal == kw
}

// expect consumes the current token if it matches typ, else records an
// error and does not advance.
func (p *Parser) expect(typ token.Type) bool {
	if p.curToken.Type != typ {
		p.errorf("expected %s, got %s %q", typ, p.curToken.Type, p.curToken.Literal)
		return false
	}
	p.next()
	return true
}

// readArgument consumes the argument of a statement: a STRING, UNQUOTED, or
// IDENT token, honoring "+" concatenation (spec.md section 4.2). Returns
// the concatenated value and its source position (the first fragment's).
func (p *Parser) readArgument() (string, token.Position, bool) {
	if !isArgumentToken(p.curToken) {
		p.errorf("expected statement argument, got %s %q", p.curToken.Type, p.curToken.Literal)
		return "", p.pos(), false
	}
	pos := p.pos()
	value := p.curToken.Literal
	p.next()

	for p.curToken.Type == token.PLUS {
		p.next()
		if !isArgumentToken(p.curToken) {
			p.errorf("expected string fragment after '+', got %s %q", p.curToken.Type, p.curToken.Literal)
			break
		}
		value += p.curToken.Literal
		p.next()
	}
	return value, pos, true
}

func isArgumentToken(tok token.Token) bool {
	switch tok.Type {
	case token.STRING, token.UNQUOTED, token.IDENT, token.INT:
		return true
	}
	return false
}

// endOfStatement consumes either a ";" (no body) or a "{" ... "}" block,
// invoking parseChild for every child statement inside the block. It
// silently absorbs stray ";" (bare empty statements) between children, per
// spec.md section 4.3.
func (p *Parser) endOfStatement(parseChild func()) {
	switch p.curToken.Type {
	case token.SEMICOLON:
		p.next()
		return
	case token.LBRACE:
		p.next()
		for p.curToken.Type != token.RBRACE && p.curToken.Type != token.EOF {
			if p.curToken.Type == token.SEMICOLON {
				p.next()
				continue
			}
			before := p.curToken
			parseChild()
			if p.curToken == before {
				// parseChild made no progress (unrecognized statement with
				// no recognizable shape at all); force advance to avoid an
				// infinite loop and report the stall.
				p.errorf("unable to parse statement starting with %s %q", p.curToken.Type, p.curToken.Literal)
				p.next()
			}
		}
		p.expect(token.RBRACE)
	default:
		p.errorf("expected ';' or '{', got %s %q", p.curToken.Type, p.curToken.Literal)
	}
}

// recordDuplicate is called whenever a 0..1 sub-statement is seen a second
// time: the prior occurrence is preserved in extra rather than silently
// discarded, and a DuplicateStatement diagnostic is appended to Warnings()
// so callers can see it (spec.md section 4.3's lenient-parse policy: never
// fail mid-parse, but expose duplicates rather than dropping them).
func (p *Parser) recordDuplicate(extra *[]ast.Statement, prev ast.Statement, kw string) {
	*extra = append(*extra, prev)
	p.warnings = append(p.warnings, yangerr.Warning{
		Kind:    yangerr.KindDuplicateStatement,
		Pos:     p.errPos(),
		Message: fmt.Sprintf("duplicate %q statement, keeping the last occurrence", kw),
	})
}

// parseGenericStatement is the fallback production of spec.md section 4.3:
// keyword [argument] (";" | "{" body "}"). It is used both for Unknown
// (vendor prefix:keyword) statements and, via ParseStatement, for
// partial-input testing of an arbitrary single statement.
func (p *Parser) parseGenericStatement() ast.Statement {
	tok := p.curToken
	ident := ast.MustIdentifier(tok.Literal)
	p.next()

	var argument *string
	if isArgumentToken(p.curToken) && p.curToken.Type != token.LBRACE && p.curToken.Type != token.SEMICOLON {
		val, _, ok := p.readArgument()
		if ok {
			argument = &val
		}
	}

	u := &ast.Unknown{Identifier: ident, Argument: argument}
	u.SetPos(tok.Line, tok.Column)

	p.endOfStatement(func() {
		u.Body = append(u.Body, p.parseGenericStatement())
	})
	return u
}
