package parser

import (
	"errors"
	"testing"

	"github.com/gkantsidis/yangparse/ast"
	"github.com/gkantsidis/yangparse/lexer"
	"github.com/gkantsidis/yangparse/yangerr"
)

func parseStatement(t *testing.T, input string) (ast.Statement, *Parser) {
	t.Helper()
	p := New(lexer.New(input))
	stmt := p.ParseStatement()
	if len(p.errors) != 0 {
		t.Fatalf("input %q: unexpected parse errors: %v", input, p.errors)
	}
	return stmt, p
}

func TestParseLeafSimple(t *testing.T) {
	stmt, _ := parseStatement(t, `leaf host-name { type string; description "the hostname"; }`)
	leaf, ok := stmt.(*ast.Leaf)
	if !ok {
		t.Fatalf("expected *ast.Leaf, got %T", stmt)
	}
	if leaf.Name.String() != "host-name" {
		t.Errorf("expected name host-name, got %q", leaf.Name.String())
	}
	if leaf.Type == nil || leaf.Type.Name.String() != "string" {
		t.Fatalf("expected type string, got %+v", leaf.Type)
	}
	if leaf.Description == nil || leaf.Description.Text != "the hostname" {
		t.Errorf("expected description text, got %+v", leaf.Description)
	}
}

// Scenario B: key argument spanning multiple lines.
func TestParseListKeySpanningMultipleLines(t *testing.T) {
	input := "list user {\n" +
		"  key \"source-port destination-port\n" +
		"       source-address destination-address\";\n" +
		"  leaf source-port { type string; }\n" +
		"}"
	stmt, _ := parseStatement(t, input)
	list, ok := stmt.(*ast.List)
	if !ok {
		t.Fatalf("expected *ast.List, got %T", stmt)
	}
	if list.Key == nil {
		t.Fatal("expected a key statement")
	}
	if len(list.Key.Identifiers) != 4 {
		t.Fatalf("expected 4 key identifiers, got %d: %v", len(list.Key.Identifiers), list.Key.Identifiers)
	}
	want := []string{"source-port", "destination-port", "source-address", "destination-address"}
	for i, w := range want {
		if list.Key.Identifiers[i].String() != w {
			t.Errorf("key identifier %d: expected %q, got %q", i, w, list.Key.Identifiers[i].String())
		}
	}
}

// Scenario C: yang-version in its three legal spellings.
func TestParseYangVersionSpellings(t *testing.T) {
	tests := []struct {
		module string
		want   ast.Version
	}{
		{`module m { yang-version 1; namespace "urn:m"; prefix m; }`, ast.Version{Major: 1, Minor: 0}},
		{`module m { yang-version 1.1; namespace "urn:m"; prefix m; }`, ast.Version{Major: 1, Minor: 1}},
		{`module m { yang-version "1.1"; namespace "urn:m"; prefix m; }`, ast.Version{Major: 1, Minor: 1}},
	}
	for _, tt := range tests {
		m, _, errs := Parse(tt.module)
		if len(errs) != 0 {
			t.Fatalf("input %q: unexpected errors: %v", tt.module, errs)
		}
		if m.Header.YangVersion == nil {
			t.Fatalf("input %q: expected a yang-version statement", tt.module)
		}
		if m.Header.YangVersion.Value != tt.want {
			t.Errorf("input %q: expected %+v, got %+v", tt.module, tt.want, m.Header.YangVersion.Value)
		}
	}
}

// Scenario D: an unknown statement with a nested body, and nested unknown
// children of its own.
func TestParseUnknownStatementNestedBody(t *testing.T) {
	input := `tailf:callpoint "ncs-rfs-service-hook" {
  tailf:transaction-hook "subtree" {
    tailf:invocation-mode "per-transaction";
  }
}`
	stmt, _ := parseStatement(t, input)
	outer, ok := stmt.(*ast.Unknown)
	if !ok {
		t.Fatalf("expected *ast.Unknown, got %T", stmt)
	}
	if outer.Identifier.String() != "tailf:callpoint" {
		t.Errorf("expected identifier tailf:callpoint, got %q", outer.Identifier.String())
	}
	if outer.Argument == nil || *outer.Argument != "ncs-rfs-service-hook" {
		t.Fatalf("expected argument \"ncs-rfs-service-hook\", got %v", outer.Argument)
	}
	if len(outer.Body) != 1 {
		t.Fatalf("expected 1 child, got %d", len(outer.Body))
	}

	middle, ok := outer.Body[0].(*ast.Unknown)
	if !ok {
		t.Fatalf("expected child *ast.Unknown, got %T", outer.Body[0])
	}
	if middle.Identifier.String() != "tailf:transaction-hook" {
		t.Errorf("expected identifier tailf:transaction-hook, got %q", middle.Identifier.String())
	}
	if middle.Argument == nil || *middle.Argument != "subtree" {
		t.Fatalf("expected argument \"subtree\", got %v", middle.Argument)
	}
	if len(middle.Body) != 1 {
		t.Fatalf("expected 1 grandchild, got %d", len(middle.Body))
	}

	inner, ok := middle.Body[0].(*ast.Unknown)
	if !ok {
		t.Fatalf("expected grandchild *ast.Unknown, got %T", middle.Body[0])
	}
	if inner.Identifier.String() != "tailf:invocation-mode" {
		t.Errorf("expected identifier tailf:invocation-mode, got %q", inner.Identifier.String())
	}
	if inner.Argument == nil || *inner.Argument != "per-transaction" {
		t.Fatalf("expected argument \"per-transaction\", got %v", inner.Argument)
	}
	if len(inner.Body) != 0 {
		t.Errorf("expected no grandgrandchildren, got %d", len(inner.Body))
	}
}

// Scenario E: RFC 7950 section 4.2.2.5's example-system module.
func TestParseExampleSystemModule(t *testing.T) {
	input := `module example-system {
  yang-version 1.1;
  namespace "urn:example:system";
  prefix "sys";

  organization "Example Inc.";
  contact "joe@example.com";
  description "The module for entities implementing the Example system.";

  revision 2007-06-09 {
    description "Initial revision.";
  }

  container system {
    leaf host-name {
      type string;
      description "Hostname for this system";
    }

    leaf-list domain-search {
      type string;
      description "List of domain names to search";
    }

    container login {
      leaf message {
        type string;
        description "Message given at start of login session";
      }

      list user {
        key "name";
        leaf name {
          type string;
        }
        leaf full-name {
          type string;
        }
        leaf class {
          type string;
        }
      }
    }
  }
}`
	m, sm, errs := Parse(input)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	if sm != nil {
		t.Fatal("expected a module, got a submodule")
	}
	if m.Name.String() != "example-system" {
		t.Errorf("expected name example-system, got %q", m.Name.String())
	}
	if m.Header.YangVersion == nil || m.Header.YangVersion.Value != (ast.Version{Major: 1, Minor: 1}) {
		t.Errorf("expected yang-version 1.1, got %+v", m.Header.YangVersion)
	}
	if m.Header.Namespace == nil || m.Header.Namespace.URI.String() != "urn:example:system" {
		t.Errorf("expected namespace urn:example:system, got %+v", m.Header.Namespace)
	}
	if m.Header.Prefix == nil || m.Header.Prefix.Value != "sys" {
		t.Errorf("expected prefix sys, got %+v", m.Header.Prefix)
	}
	if len(m.Revisions) != 1 || m.Revisions[0].Date != (ast.Date{Year: 2007, Month: 6, Day: 9}) {
		t.Fatalf("expected one revision dated 2007-06-09, got %+v", m.Revisions)
	}
	if len(m.Body) != 1 {
		t.Fatalf("expected one top-level body statement, got %d", len(m.Body))
	}

	system, ok := m.Body[0].(*ast.Container)
	if !ok {
		t.Fatalf("expected *ast.Container, got %T", m.Body[0])
	}
	if system.Name.String() != "system" {
		t.Errorf("expected container name system, got %q", system.Name.String())
	}
	if len(system.Children) != 3 {
		t.Fatalf("expected 3 children of system, got %d", len(system.Children))
	}

	hostName, ok := system.Children[0].(*ast.Leaf)
	if !ok || hostName.Name.String() != "host-name" {
		t.Fatalf("expected leaf host-name, got %T %+v", system.Children[0], system.Children[0])
	}

	domainSearch, ok := system.Children[1].(*ast.LeafList)
	if !ok || domainSearch.Name.String() != "domain-search" {
		t.Fatalf("expected leaf-list domain-search, got %T %+v", system.Children[1], system.Children[1])
	}

	login, ok := system.Children[2].(*ast.Container)
	if !ok || login.Name.String() != "login" {
		t.Fatalf("expected container login, got %T %+v", system.Children[2], system.Children[2])
	}
	if len(login.Children) != 2 {
		t.Fatalf("expected 2 children of login, got %d", len(login.Children))
	}

	message, ok := login.Children[0].(*ast.Leaf)
	if !ok || message.Name.String() != "message" {
		t.Fatalf("expected leaf message, got %T %+v", login.Children[0], login.Children[0])
	}

	user, ok := login.Children[1].(*ast.List)
	if !ok || user.Name.String() != "user" {
		t.Fatalf("expected list user, got %T %+v", login.Children[1], login.Children[1])
	}
	if user.Key == nil || len(user.Key.Identifiers) != 1 || user.Key.Identifiers[0].String() != "name" {
		t.Fatalf("expected key name, got %+v", user.Key)
	}
	if len(user.Children) != 3 {
		t.Fatalf("expected 3 leaves under user, got %d", len(user.Children))
	}
	wantLeaves := []string{"name", "full-name", "class"}
	for i, want := range wantLeaves {
		leaf, ok := user.Children[i].(*ast.Leaf)
		if !ok || leaf.Name.String() != want {
			t.Errorf("user child %d: expected leaf %q, got %T %+v", i, want, user.Children[i], user.Children[i])
		}
	}
}

func TestParseChoiceWithShorthandCase(t *testing.T) {
	input := `choice transport {
  case udp {
    leaf udp-port { type string; }
  }
  leaf tcp-port { type string; }
}`
	stmt, _ := parseStatement(t, input)
	choice, ok := stmt.(*ast.Choice)
	if !ok {
		t.Fatalf("expected *ast.Choice, got %T", stmt)
	}
	if len(choice.Cases) != 2 {
		t.Fatalf("expected 2 cases, got %d", len(choice.Cases))
	}
	if _, ok := choice.Cases[0].(*ast.Case); !ok {
		t.Errorf("expected first case to be *ast.Case, got %T", choice.Cases[0])
	}
	// The shorthand case is the bare leaf itself, not wrapped in a Case.
	if _, ok := choice.Cases[1].(*ast.Leaf); !ok {
		t.Errorf("expected second case to be the shorthand *ast.Leaf, got %T", choice.Cases[1])
	}
}

func TestParseStringConcatenationArgument(t *testing.T) {
	stmt, _ := parseStatement(t, `description "ab" + "cd";`)
	d, ok := stmt.(*ast.Description)
	if !ok {
		t.Fatalf("expected *ast.Description, got %T", stmt)
	}
	if d.Text != "abcd" {
		t.Errorf("expected concatenated text \"abcd\", got %q", d.Text)
	}
}

func TestParseTypedefAndGrouping(t *testing.T) {
	stmt, _ := parseStatement(t, `typedef percent { type uint8 { range "0..100"; } }`)
	td, ok := stmt.(*ast.Typedef)
	if !ok {
		t.Fatalf("expected *ast.Typedef, got %T", stmt)
	}
	if td.Name.String() != "percent" {
		t.Errorf("expected name percent, got %q", td.Name.String())
	}
	if td.Type == nil || td.Type.Range == nil {
		t.Fatalf("expected a range sub-statement, got %+v", td.Type)
	}

	stmt, _ = parseStatement(t, `grouping target { leaf id { type string; } }`)
	g, ok := stmt.(*ast.Grouping)
	if !ok {
		t.Fatalf("expected *ast.Grouping, got %T", stmt)
	}
	if len(g.Children) != 1 {
		t.Fatalf("expected 1 child, got %d", len(g.Children))
	}
}

// Namespace's argument is an RFC 3986 absolute-URI (spec.md section 4.2),
// parsed into ast.URI rather than stored as a raw string.
func TestParseNamespaceURI(t *testing.T) {
	m, _, errs := Parse(`module m { namespace "urn:example:system"; prefix m; }`)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	if m.Header.Namespace == nil {
		t.Fatal("expected a namespace statement")
	}
	if m.Header.Namespace.URI.Scheme != "urn" {
		t.Errorf("expected scheme urn, got %q", m.Header.Namespace.URI.Scheme)
	}
	if m.Header.Namespace.URI.Rest != "example:system" {
		t.Errorf("expected rest example:system, got %q", m.Header.Namespace.URI.Rest)
	}
	if m.Header.Namespace.URI.String() != "urn:example:system" {
		t.Errorf("expected String() round-trip, got %q", m.Header.Namespace.URI.String())
	}
}

func TestParseNamespaceURIMissingScheme(t *testing.T) {
	_, _, errs := Parse(`module m { namespace "not-a-uri"; prefix m; }`)
	if len(errs) == 0 {
		t.Fatal("expected an error for a namespace argument missing a scheme")
	}
	var yerr *yangerr.Error
	if !errors.As(errs[0], &yerr) {
		t.Fatalf("expected a *yangerr.Error, got %T: %v", errs[0], errs[0])
	}
	if yerr.Kind != yangerr.KindInvalidArgument {
		t.Errorf("expected kind %q, got %q", yangerr.KindInvalidArgument, yerr.Kind)
	}
}

func TestParseNamespaceURIWithFragment(t *testing.T) {
	_, _, errs := Parse(`module m { namespace "urn:example:system#frag"; prefix m; }`)
	if len(errs) == 0 {
		t.Fatal("expected an error for a namespace argument with a fragment")
	}
}

// Top-level sections must appear in order: header, linkage, meta, revisions,
// body (spec.md section 4.6). An import appearing after a revision is out
// of order.
func TestParseModuleSectionsOutOfOrder(t *testing.T) {
	input := `module m {
  namespace "urn:m";
  prefix m;
  revision 2020-01-01;
  import other { prefix o; }
}`
	_, _, errs := Parse(input)
	if len(errs) == 0 {
		t.Fatal("expected an error for an import following a revision")
	}
	var yerr *yangerr.Error
	if !errors.As(errs[0], &yerr) {
		t.Fatalf("expected a *yangerr.Error, got %T: %v", errs[0], errs[0])
	}
	if yerr.Kind != yangerr.KindUnexpectedStatement {
		t.Errorf("expected kind %q, got %q", yangerr.KindUnexpectedStatement, yerr.Kind)
	}
}

func TestParseModuleSectionsInOrderNoError(t *testing.T) {
	input := `module m {
  yang-version 1.1;
  namespace "urn:m";
  prefix m;
  import other { prefix o; }
  organization "Example Inc.";
  revision 2020-01-01;
  leaf top { type string; }
}`
	_, _, errs := Parse(input)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors for a well-ordered module: %v", errs)
	}
}

// A repeated singular sub-statement exposes its prior occurrence in Extra
// and records a warning, rather than silently overwriting it (spec.md
// section 4.3's lenient-parse, expose-duplicates policy).
func TestParseDuplicateDescriptionExposedInExtra(t *testing.T) {
	p := New(lexer.New(`leaf host-name {
  type string;
  description "first";
  description "second";
}`))
	stmt := p.ParseStatement()
	if len(p.errors) != 0 {
		t.Fatalf("unexpected parse errors: %v", p.errors)
	}
	leaf, ok := stmt.(*ast.Leaf)
	if !ok {
		t.Fatalf("expected *ast.Leaf, got %T", stmt)
	}
	if leaf.Description == nil || leaf.Description.Text != "second" {
		t.Fatalf("expected the last description to win, got %+v", leaf.Description)
	}
	found := false
	for _, extra := range leaf.Extra {
		if d, ok := extra.(*ast.Description); ok && d.Text == "first" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected the first description to be preserved in Extra, got %+v", leaf.Extra)
	}
	if len(p.Warnings()) == 0 {
		t.Fatal("expected a duplicate-statement warning")
	}
	if p.Warnings()[0].Kind != yangerr.KindDuplicateStatement {
		t.Errorf("expected kind %q, got %q", yangerr.KindDuplicateStatement, p.Warnings()[0].Kind)
	}
}

func TestParseDuplicateRangeExposedInExtra(t *testing.T) {
	p := New(lexer.New(`type uint8 {
  range "0..10";
  range "0..100";
}`))
	stmt := p.ParseStatement()
	if len(p.errors) != 0 {
		t.Fatalf("unexpected parse errors: %v", p.errors)
	}
	ty, ok := stmt.(*ast.TypeStmt)
	if !ok {
		t.Fatalf("expected *ast.TypeStmt, got %T", stmt)
	}
	if ty.Range == nil {
		t.Fatal("expected a range sub-statement")
	}
	if len(ty.Extra) == 0 {
		t.Errorf("expected the first range to be preserved in Extra, got %+v", ty.Extra)
	}
	if len(p.Warnings()) == 0 {
		t.Fatal("expected a duplicate-statement warning")
	}
}
