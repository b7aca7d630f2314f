package yangparse

import "testing"

const exampleSystemModule = `module example-system {
  yang-version 1.1;
  namespace "urn:example:system";
  prefix "sys";

  revision 2007-06-09 {
    description "Initial revision.";
  }

  typedef percent {
    type uint8 {
      range "0..100";
    }
  }

  container system {
    leaf host-name {
      type string;
    }
    leaf-list domain-search {
      type string;
    }
    container login {
      leaf message {
        type string;
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
          type percent;
        }
      }
    }
  }
}`

func TestParseStripsCommentsFirst(t *testing.T) {
	input := "module m { // trailing comment\n  namespace \"urn:m\"; prefix m; }"
	m, sm, errs := Parse(input)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if sm != nil {
		t.Fatal("expected a module, not a submodule")
	}
	if m.Name.String() != "m" {
		t.Errorf("expected name m, got %q", m.Name.String())
	}
}

func TestInspectCollectsExampleSystem(t *testing.T) {
	m, _, errs := Parse(exampleSystemModule)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	insp := Inspect(m.Body)

	if len(insp.Typedefs) != 1 || insp.Typedefs[0].Name.String() != "percent" {
		t.Fatalf("expected typedef percent, got %+v", insp.Typedefs)
	}
	if len(insp.Lists) != 1 || insp.Lists[0].Name.String() != "user" {
		t.Fatalf("expected list user, got %+v", insp.Lists)
	}
	wantLeaves := map[string]bool{
		"host-name": true, "message": true, "name": true, "full-name": true, "class": true,
	}
	if len(insp.Leaves) != len(wantLeaves) {
		t.Fatalf("expected %d leaves, got %d", len(wantLeaves), len(insp.Leaves))
	}
	for _, l := range insp.Leaves {
		if !wantLeaves[l.Name.String()] {
			t.Errorf("unexpected leaf %q", l.Name.String())
		}
	}
}

func TestResolveExampleSystem(t *testing.T) {
	m, _, errs := Parse(exampleSystemModule)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	nodes, resolveErrs := Resolve(m.Body)
	if len(resolveErrs) != 0 {
		t.Fatalf("unexpected resolve errors: %v", resolveErrs)
	}

	var resolvedPercentUse bool
	for _, n := range nodes {
		if n.Kind.String() == "type-use" && n.Name.String() == "percent" && n.Sequence != nil {
			resolvedPercentUse = true
		}
	}
	if !resolvedPercentUse {
		t.Error("expected the leaf class's type percent to resolve to the module-level typedef")
	}
}

func TestWalkVisitsEveryStatement(t *testing.T) {
	m, _, errs := Parse(exampleSystemModule)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	count := 0
	Walk(m.Body, func(_ Statement) { count++ })
	if count == 0 {
		t.Fatal("expected Walk to visit at least one statement")
	}
}
