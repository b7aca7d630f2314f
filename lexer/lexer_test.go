package lexer

import (
	"testing"

	"github.com/gkantsidis/yangparse/token"
)

func TestStripCommentsSingleLine(t *testing.T) {
	input := "leaf foo { // a comment\n  type string;\n}"
	out, warnings, err := StripComments(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("expected no warnings, got %v", warnings)
	}
	want := "leaf foo { \n  type string;\n}"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestStripCommentsBlock(t *testing.T) {
	input := "leaf foo /* block\n comment */ { type string; }"
	out, _, err := StripComments(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "leaf foo  { type string; }"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestStripCommentsUnterminatedBlock(t *testing.T) {
	input := "leaf foo /* never closed"
	_, warnings, err := StripComments(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(warnings) != 1 {
		t.Fatalf("expected one warning, got %d", len(warnings))
	}
}

func TestStripCommentsPreservesQuotedSlashes(t *testing.T) {
	input := `leaf foo { default "http://example.com"; }`
	out, _, err := StripComments(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != input {
		t.Errorf("quoted content should be untouched: expected %q, got %q", input, out)
	}
}

func TestStripCommentsEmptyInput(t *testing.T) {
	_, _, err := StripComments("")
	if err == nil {
		t.Fatal("expected an error for empty input")
	}
}

func TestStripCommentsSingleQuotedCommentLookalike(t *testing.T) {
	input := `leaf foo { default '/* not a comment */'; }`
	out, _, err := StripComments(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != input {
		t.Errorf("single-quoted content should be untouched: expected %q, got %q", input, out)
	}
}

func TestNextTokenKeywordsAndPunctuation(t *testing.T) {
	input := `container system { leaf host-name { type string; } }`

	expected := []struct {
		typ     token.Type
		literal string
	}{
		{token.IDENT, "container"},
		{token.IDENT, "system"},
		{token.LBRACE, "{"},
		{token.IDENT, "leaf"},
		{token.IDENT, "host-name"},
		{token.LBRACE, "{"},
		{token.IDENT, "type"},
		{token.IDENT, "string"},
		{token.SEMICOLON, ";"},
		{token.RBRACE, "}"},
		{token.RBRACE, "}"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, e := range expected {
		tok := l.NextToken()
		if tok.Type != e.typ {
			t.Errorf("token %d: expected type %v, got %v (literal %q)", i, e.typ, tok.Type, tok.Literal)
		}
		if tok.Literal != e.literal {
			t.Errorf("token %d: expected literal %q, got %q", i, e.literal, tok.Literal)
		}
	}
}

func TestNextTokenPrefixedIdentifier(t *testing.T) {
	l := New("sys:host-name")
	tok := l.NextToken()
	if tok.Type != token.IDENT || tok.Literal != "sys:host-name" {
		t.Errorf("expected IDENT \"sys:host-name\", got %v %q", tok.Type, tok.Literal)
	}
}

func TestNextTokenColonNotFollowedByIdentifier(t *testing.T) {
	// A bare trailing colon is not a prefix separator if nothing
	// identifier-shaped follows it.
	l := New("foo: ")
	tok := l.NextToken()
	if tok.Type != token.IDENT || tok.Literal != "foo" {
		t.Errorf("expected IDENT \"foo\", got %v %q", tok.Type, tok.Literal)
	}
	tok = l.NextToken()
	if tok.Type != token.UNQUOTED || tok.Literal != ":" {
		t.Errorf("expected UNQUOTED \":\" for bare colon, got %v %q", tok.Type, tok.Literal)
	}
}

func TestNextTokenQuotedStrings(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`"a plain string"`, "a plain string"},
		{`'a single-quoted string'`, "a single-quoted string"},
		{`"line one\nline two"`, "line one\nline two"},
		{`"tab\there"`, "tab\there"},
		{`"escaped \" quote"`, `escaped " quote`},
	}

	for _, tt := range tests {
		l := New(tt.input)
		tok := l.NextToken()
		if tok.Type != token.STRING {
			t.Errorf("input %q: expected STRING, got %v", tt.input, tok.Type)
			continue
		}
		if tok.Literal != tt.expected {
			t.Errorf("input %q: expected %q, got %q", tt.input, tt.expected, tok.Literal)
		}
	}
}

func TestNextTokenStringConcatenation(t *testing.T) {
	l := New(`"ab" + "cd"`)

	expected := []struct {
		typ     token.Type
		literal string
	}{
		{token.STRING, "ab"},
		{token.PLUS, "+"},
		{token.STRING, "cd"},
		{token.EOF, ""},
	}

	for i, e := range expected {
		tok := l.NextToken()
		if tok.Type != e.typ || tok.Literal != e.literal {
			t.Errorf("token %d: expected %v %q, got %v %q", i, e.typ, e.literal, tok.Type, tok.Literal)
		}
	}
}

func TestNextTokenUnquotedArgument(t *testing.T) {
	l := New("1.1")
	tok := l.NextToken()
	if tok.Type != token.UNQUOTED || tok.Literal != "1.1" {
		t.Errorf("expected UNQUOTED \"1.1\", got %v %q", tok.Type, tok.Literal)
	}
}

func TestNextTokenMultilineKeyArgument(t *testing.T) {
	// Scenario B: a key argument spanning multiple lines inside a quoted
	// string must come back as a single STRING token with the interior
	// whitespace intact, so the parser's key-splitting logic can see it.
	input := "\"source-port destination-port\n       source-address destination-address\""
	l := New(input)
	tok := l.NextToken()
	if tok.Type != token.STRING {
		t.Fatalf("expected STRING, got %v", tok.Type)
	}
	ids, err := splitKeyLikeArgument(tok.Literal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 4 {
		t.Fatalf("expected 4 identifiers, got %d: %v", len(ids), ids)
	}
	want := []string{"source-port", "destination-port", "source-address", "destination-address"}
	for i, w := range want {
		if ids[i] != w {
			t.Errorf("identifier %d: expected %q, got %q", i, w, ids[i])
		}
	}
}

// splitKeyLikeArgument mirrors ast.ParseKeyArg's whitespace splitting without
// importing package ast (which imports package token, not lexer), keeping
// this test package-internal to lexer's own output shape.
func splitKeyLikeArgument(s string) ([]string, error) {
	var fields []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			fields = append(fields, string(cur))
			cur = nil
		}
	}
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r':
			flush()
		default:
			cur = append(cur, r)
		}
	}
	flush()
	return fields, nil
}
