package yangerr

import (
	"errors"
	"testing"
)

func TestErrorMessageFormatting(t *testing.T) {
	err := InvalidDate(Position{Line: 3, Column: 5}, "day %d invalid for %04d-%02d", 30, 2010, 2)
	want := "invalid_date at 3:5: day 30 invalid for 2010-02"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestErrorMessageFormattingZeroPosition(t *testing.T) {
	err := InvalidIdentifier(Position{}, "empty identifier")
	want := "invalid_identifier: empty identifier"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestErrorsAsRecoversKind(t *testing.T) {
	err := UnresolvedReference(Position{Line: 1, Column: 1}, "unresolved type %q", "foo")
	var target *Error
	if !errors.As(err, &target) {
		t.Fatal("expected errors.As to recover *Error")
	}
	if target.Kind != KindUnresolvedReference {
		t.Errorf("expected kind %q, got %q", KindUnresolvedReference, target.Kind)
	}
}

func TestErrorIsComparesOnlyKind(t *testing.T) {
	err := InvalidArgument(Position{Line: 7, Column: 2}, "bad argument")
	if !errors.Is(err, &Error{Kind: KindInvalidArgument}) {
		t.Error("expected errors.Is to match on Kind alone")
	}
	if errors.Is(err, &Error{Kind: KindInvalidDate}) {
		t.Error("expected errors.Is to reject a mismatched Kind")
	}
}

func TestPositionString(t *testing.T) {
	p := Position{Line: 12, Column: 4}
	if p.String() != "12:4" {
		t.Errorf("expected \"12:4\", got %q", p.String())
	}
}
