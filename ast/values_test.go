package ast

import "testing"

func TestNewDate(t *testing.T) {
	tests := []struct {
		name    string
		y, m, d int
		wantErr bool
	}{
		{"ordinary date", 2007, 6, 9, false},
		{"month out of range", 2010, 13, 4, true},
		{"non-leap february 30", 2010, 2, 30, true},
		{"leap year february 29", 2024, 2, 29, false},
		{"non-leap year february 29", 2023, 2, 29, true},
		{"century non-leap", 1900, 2, 29, true},
		{"century leap", 2000, 2, 29, false},
	}

	for _, tt := range tests {
		_, err := NewDate(tt.y, tt.m, tt.d)
		if tt.wantErr && err == nil {
			t.Errorf("%s: expected error, got nil", tt.name)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("%s: unexpected error: %v", tt.name, err)
		}
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input   string
		want    Date
		wantErr bool
	}{
		{"2007-06-09", Date{Year: 2007, Month: 6, Day: 9}, false},
		{"2010-13-04", Date{}, true},
		{"2010-02-30", Date{}, true},
		{"not-a-date", Date{}, true},
	}

	for _, tt := range tests {
		got, err := ParseDate(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("input %q: expected error, got %v", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("input %q: unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("input %q: expected %+v, got %+v", tt.input, tt.want, got)
		}
	}
}

func TestDateStringRoundTrip(t *testing.T) {
	d, err := NewDate(2007, 6, 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.String() != "2007-06-09" {
		t.Errorf("expected \"2007-06-09\", got %q", d.String())
	}
	reparsed, err := ParseDate(d.String())
	if err != nil {
		t.Fatalf("unexpected error reparsing: %v", err)
	}
	if reparsed.Compare(d) != 0 {
		t.Errorf("round trip mismatch: %+v != %+v", reparsed, d)
	}
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		input   string
		want    Version
		wantErr bool
	}{
		{"1", Version{Major: 1, Minor: 0}, false},
		{"1.1", Version{Major: 1, Minor: 1}, false},
		{"2.0", Version{}, true},
		{"", Version{}, true},
	}

	for _, tt := range tests {
		got, err := ParseVersion(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("input %q: expected error, got %v", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("input %q: unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("input %q: expected %+v, got %+v", tt.input, tt.want, got)
		}
	}
}

func TestVersionStringRoundTrip(t *testing.T) {
	tests := []string{"1", "1.1"}
	for _, in := range tests {
		v, err := ParseVersion(in)
		if err != nil {
			t.Fatalf("input %q: unexpected error: %v", in, err)
		}
		if v.String() != in {
			t.Errorf("input %q: round trip produced %q", in, v.String())
		}
	}
}

func TestNewIdentifier(t *testing.T) {
	tests := []struct {
		input   string
		want    Identifier
		wantErr bool
	}{
		{"host-name", Identifier{Name: "host-name"}, false},
		{"sys:host-name", Identifier{Prefix: "sys", Name: "host-name"}, false},
		{"_leading-underscore", Identifier{Name: "_leading-underscore"}, false},
		{"", Identifier{}, true},
		{"1leading-digit", Identifier{}, true},
		{"sys:", Identifier{}, true},
		{":name", Identifier{}, true},
	}

	for _, tt := range tests {
		got, err := NewIdentifier(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("input %q: expected error, got %+v", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("input %q: unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("input %q: expected %+v, got %+v", tt.input, tt.want, got)
		}
		if !IsValid(tt.input) {
			t.Errorf("input %q: IsValid disagreed with NewIdentifier success", tt.input)
		}
	}
}

func TestIsValidAgreesWithNewIdentifier(t *testing.T) {
	inputs := []string{"a", "sys:a", "", "1a", "a:b:c"}
	for _, in := range inputs {
		_, err := NewIdentifier(in)
		if IsValid(in) != (err == nil) {
			t.Errorf("input %q: IsValid()=%v but NewIdentifier error=%v", in, IsValid(in), err)
		}
	}
}

func TestParseKeyArgMultiline(t *testing.T) {
	input := "source-port destination-port\n       source-address destination-address"
	ids, err := ParseKeyArg(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 4 {
		t.Fatalf("expected 4 identifiers, got %d", len(ids))
	}
	want := []string{"source-port", "destination-port", "source-address", "destination-address"}
	for i, w := range want {
		if ids[i].String() != w {
			t.Errorf("identifier %d: expected %q, got %q", i, w, ids[i].String())
		}
	}
}

func TestParseIntervalExprAlternatives(t *testing.T) {
	expr, err := ParseIntervalExpr("1..4 | 10..20 | 100")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(expr.Alternatives) != 3 {
		t.Fatalf("expected 3 alternatives, got %d", len(expr.Alternatives))
	}
	if expr.Alternatives[2].Lower != expr.Alternatives[2].Upper {
		t.Errorf("single-value alternative should have equal lower/upper bounds")
	}
}

func TestParseIntervalExprMinMax(t *testing.T) {
	expr, err := ParseIntervalExpr("min..max")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(expr.Alternatives) != 1 {
		t.Fatalf("expected 1 alternative, got %d", len(expr.Alternatives))
	}
	if !expr.Alternatives[0].Lower.Min || !expr.Alternatives[0].Upper.Max {
		t.Errorf("expected min..max bounds, got %+v", expr.Alternatives[0])
	}
}

func TestParsePathArgAbsolute(t *testing.T) {
	p, err := ParsePathArg("/sys:system/sys:login")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.Absolute {
		t.Errorf("expected absolute path")
	}
	if len(p.Segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(p.Segments))
	}
	if p.String() != "/sys:system/sys:login" {
		t.Errorf("round trip mismatch: %q", p.String())
	}
}

func TestParsePathArgRelative(t *testing.T) {
	p, err := ParsePathArg("../../a/b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Absolute {
		t.Errorf("expected relative path")
	}
	if p.UpLevels != 2 {
		t.Errorf("expected 2 up-levels, got %d", p.UpLevels)
	}
	if len(p.Segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(p.Segments))
	}
}
