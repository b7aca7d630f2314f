package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gkantsidis/yangparse/yangerr"
)

// -----------------------------------------------------------------------------
// Identifier (spec.md section 3)
// -----------------------------------------------------------------------------

// Identifier is a YANG identifier: plain ("foo"), prefixed ("pfx:foo"), or
// a bare reference built from either. Equality is structural; comparison is
// ordinal (see Compare).
type Identifier struct {
	Prefix string // empty for a plain identifier
	Name   string
}

// NewIdentifier parses raw into an Identifier, rejecting malformed input
// with yangerr.InvalidIdentifier. This is the "checked" construction form.
func NewIdentifier(raw string) (Identifier, error) {
	if raw == "" {
		return Identifier{}, yangerr.InvalidIdentifier(yangerr.Position{}, "empty identifier")
	}
	if i := strings.IndexByte(raw, ':'); i >= 0 {
		prefix, name := raw[:i], raw[i+1:]
		if !isPlainIdentifier(prefix) || !isPlainIdentifier(name) {
			return Identifier{}, yangerr.InvalidIdentifier(yangerr.Position{}, "malformed prefixed identifier %q", raw)
		}
		return Identifier{Prefix: prefix, Name: name}, nil
	}
	if !isPlainIdentifier(raw) {
		return Identifier{}, yangerr.InvalidIdentifier(yangerr.Position{}, "malformed identifier %q", raw)
	}
	return Identifier{Name: raw}, nil
}

// MustIdentifier is the "unchecked" construction form for caller-guaranteed
// inputs: it skips validation entirely. Callers that pass already-lexed,
// grammar-conformant text (the parser, after the lexer has already rejected
// stray characters) use this to avoid a redundant validation pass.
func MustIdentifier(raw string) Identifier {
	if i := strings.IndexByte(raw, ':'); i >= 0 {
		return Identifier{Prefix: raw[:i], Name: raw[i+1:]}
	}
	return Identifier{Name: raw}
}

// IsValid reports whether raw would be accepted by NewIdentifier.
func IsValid(raw string) bool {
	_, err := NewIdentifier(raw)
	return err == nil
}

func isPlainIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !(r == '_' || isAlpha(r)) {
				return false
			}
			continue
		}
		if !(isAlpha(r) || isDigitRune(r) || r == '_' || r == '-' || r == '.') {
			return false
		}
	}
	return true
}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigitRune(r rune) bool {
	return r >= '0' && r <= '9'
}

// String renders the identifier in its source form.
func (id Identifier) String() string {
	if id.Prefix == "" {
		return id.Name
	}
	return id.Prefix + ":" + id.Name
}

// Compare provides an ordinal ordering over identifiers: by prefix, then
// by name, both case-sensitive byte comparisons.
func (id Identifier) Compare(other Identifier) int {
	if c := strings.Compare(id.Prefix, other.Prefix); c != 0 {
		return c
	}
	return strings.Compare(id.Name, other.Name)
}

// -----------------------------------------------------------------------------
// Date (spec.md section 3, scenario A)
// -----------------------------------------------------------------------------

// Date is a calendar date as used by `revision` and `revision-date`
// statements. Construction enforces civil-calendar validity.
type Date struct {
	Year  int16
	Month uint8
	Day   uint8
}

var daysInMonth = [...]uint8{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func isLeapYear(y int) bool {
	return (y%4 == 0 && y%100 != 0) || y%400 == 0
}

// NewDate validates (y, m, d) against the civil calendar, rejecting e.g.
// month 13, day 32, or Feb 30.
func NewDate(y int, m int, d int) (Date, error) {
	if m < 1 || m > 12 {
		return Date{}, yangerr.InvalidDate(yangerr.Position{}, "month %d out of range", m)
	}
	maxDay := int(daysInMonth[m-1])
	if m == 2 && isLeapYear(y) {
		maxDay = 29
	}
	if d < 1 || d > maxDay {
		return Date{}, yangerr.InvalidDate(yangerr.Position{}, "day %d invalid for %04d-%02d", d, y, m)
	}
	return Date{Year: int16(y), Month: uint8(m), Day: uint8(d)}, nil
}

// ParseDate parses the RFC 7950 date-arg form "YYYY-MM-DD".
func ParseDate(s string) (Date, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 || len(parts[0]) != 4 || len(parts[1]) != 2 || len(parts[2]) != 2 {
		return Date{}, yangerr.InvalidDate(yangerr.Position{}, "malformed date %q", s)
	}
	y, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	d, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return Date{}, yangerr.InvalidDate(yangerr.Position{}, "malformed date %q", s)
	}
	return NewDate(y, m, d)
}

// String renders the date as "YYYY-MM-DD".
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Compare orders dates by (year, month, day).
func (d Date) Compare(other Date) int {
	if d.Year != other.Year {
		return int(d.Year) - int(other.Year)
	}
	if d.Month != other.Month {
		return int(d.Month) - int(other.Month)
	}
	return int(d.Day) - int(other.Day)
}

// -----------------------------------------------------------------------------
// Version (spec.md section 3, scenario C)
// -----------------------------------------------------------------------------

// Version is the yang-version argument: (major, minor).
type Version struct {
	Major int
	Minor int
}

// ParseVersion parses "1" as (1,0) and "1.1" as (1,1); any other value is
// rejected.
func ParseVersion(s string) (Version, error) {
	switch s {
	case "1":
		return Version{Major: 1, Minor: 0}, nil
	case "1.1":
		return Version{Major: 1, Minor: 1}, nil
	}
	return Version{}, yangerr.InvalidArgument(yangerr.Position{}, "unsupported yang-version %q", s)
}

// String renders the version in its textual form ("1" or "1.1").
func (v Version) String() string {
	if v.Minor == 0 {
		return strconv.Itoa(v.Major)
	}
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// -----------------------------------------------------------------------------
// Status / OrderedBy / Modifier (spec.md section 4.2)
// -----------------------------------------------------------------------------

type Status int

const (
	StatusCurrent Status = iota
	StatusDeprecated
	StatusObsolete
)

func ParseStatus(s string) (Status, error) {
	switch s {
	case "current":
		return StatusCurrent, nil
	case "deprecated":
		return StatusDeprecated, nil
	case "obsolete":
		return StatusObsolete, nil
	}
	return 0, yangerr.InvalidArgument(yangerr.Position{}, "invalid status %q", s)
}

func (s Status) String() string {
	switch s {
	case StatusCurrent:
		return "current"
	case StatusDeprecated:
		return "deprecated"
	case StatusObsolete:
		return "obsolete"
	}
	return "unknown"
}

type OrderedBy int

const (
	OrderedBySystem OrderedBy = iota
	OrderedByUser
)

func ParseOrderedBy(s string) (OrderedBy, error) {
	switch s {
	case "system":
		return OrderedBySystem, nil
	case "user":
		return OrderedByUser, nil
	}
	return 0, yangerr.InvalidArgument(yangerr.Position{}, "invalid ordered-by %q", s)
}

func (o OrderedBy) String() string {
	if o == OrderedByUser {
		return "user"
	}
	return "system"
}

// ParseModifier validates the sole legal `modifier` argument.
func ParseModifier(s string) (string, error) {
	if s != "invert-match" {
		return "", yangerr.InvalidArgument(yangerr.Position{}, "invalid modifier %q", s)
	}
	return s, nil
}

// -----------------------------------------------------------------------------
// Max value (spec.md section 4.2): "unbounded" or a positive 64-bit integer
// -----------------------------------------------------------------------------

// MaxValue represents a max-elements or similar "unbounded | positive
// integer" argument.
type MaxValue struct {
	Unbounded bool
	Value     uint64
}

func ParseMaxValue(s string) (MaxValue, error) {
	if s == "unbounded" {
		return MaxValue{Unbounded: true}, nil
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil || n == 0 {
		return MaxValue{}, yangerr.InvalidArgument(yangerr.Position{}, "invalid max-value %q", s)
	}
	return MaxValue{Value: n}, nil
}

func (m MaxValue) String() string {
	if m.Unbounded {
		return "unbounded"
	}
	return strconv.FormatUint(m.Value, 10)
}

// -----------------------------------------------------------------------------
// Length / Range (spec.md section 4.2)
// -----------------------------------------------------------------------------

// Bound is one endpoint of a length/range interval: "min", "max", or a
// literal integer value. Length bounds are non-negative; range bounds may
// be negative for signed numeric types, so Value is a string preserving the
// original lexeme (including an optional sign and decimal point) rather
// than a fixed-width integer.
type Bound struct {
	Min   bool
	Max   bool
	Value string
}

func (b Bound) String() string {
	switch {
	case b.Min:
		return "min"
	case b.Max:
		return "max"
	default:
		return b.Value
	}
}

// Interval is one "lower..upper" or single-value alternative of a
// length/range argument.
type Interval struct {
	Lower Bound
	Upper Bound // equals Lower when the interval is a single value
}

func (iv Interval) String() string {
	if iv.Lower == iv.Upper {
		return iv.Lower.String()
	}
	return iv.Lower.String() + ".." + iv.Upper.String()
}

// IntervalExpr is a parsed length or range argument: alternatives separated
// by "|", each an Interval.
type IntervalExpr struct {
	Alternatives []Interval
}

func (e IntervalExpr) String() string {
	var parts []string
	for _, a := range e.Alternatives {
		parts = append(parts, a.String())
	}
	return strings.Join(parts, " | ")
}

// ParseIntervalExpr parses a length-arg or range-arg string: a sequence of
// `min|max|integer` tokens combined with ".." for intervals and "|" for
// alternatives. It does not (per spec.md non-goals) check satisfiability
// against the restricted base type.
func ParseIntervalExpr(s string) (IntervalExpr, error) {
	var expr IntervalExpr
	for _, alt := range strings.Split(s, "|") {
		alt = strings.TrimSpace(alt)
		if alt == "" {
			return IntervalExpr{}, yangerr.InvalidArgument(yangerr.Position{}, "empty interval alternative in %q", s)
		}
		var lower, upper Bound
		if i := strings.Index(alt, ".."); i >= 0 {
			lo := strings.TrimSpace(alt[:i])
			hi := strings.TrimSpace(alt[i+2:])
			var err error
			lower, err = parseBound(lo)
			if err != nil {
				return IntervalExpr{}, err
			}
			upper, err = parseBound(hi)
			if err != nil {
				return IntervalExpr{}, err
			}
		} else {
			b, err := parseBound(alt)
			if err != nil {
				return IntervalExpr{}, err
			}
			lower, upper = b, b
		}
		expr.Alternatives = append(expr.Alternatives, Interval{Lower: lower, Upper: upper})
	}
	return expr, nil
}

func parseBound(s string) (Bound, error) {
	switch s {
	case "min":
		return Bound{Min: true}, nil
	case "max":
		return Bound{Max: true}, nil
	}
	if s == "" {
		return Bound{}, yangerr.InvalidArgument(yangerr.Position{}, "empty interval bound")
	}
	// Accept signed integers and decimals; full numeric-type-aware
	// validation is out of scope (spec.md non-goals).
	trimmed := strings.TrimPrefix(s, "-")
	trimmed = strings.TrimPrefix(trimmed, "+")
	if trimmed == "" {
		return Bound{}, yangerr.InvalidArgument(yangerr.Position{}, "invalid interval bound %q", s)
	}
	for _, r := range trimmed {
		if !isDigitRune(r) && r != '.' {
			return Bound{}, yangerr.InvalidArgument(yangerr.Position{}, "invalid interval bound %q", s)
		}
	}
	return Bound{Value: s}, nil
}

// -----------------------------------------------------------------------------
// Key / Unique arguments (spec.md section 4.2)
// -----------------------------------------------------------------------------

// ParseKeyArg splits a key-arg string into its whitespace-separated
// identifiers. Tabs, spaces, newlines, and carriage returns all separate
// entries (spec.md scenario B).
func ParseKeyArg(s string) ([]Identifier, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	ids := make([]Identifier, 0, len(fields))
	for _, f := range fields {
		id, err := NewIdentifier(f)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ParseUniqueArg splits a unique-arg string into its whitespace-separated
// descendant schema node paths (each a slash-separated list of, possibly
// prefixed, identifiers).
func ParseUniqueArg(s string) ([]SchemaNodePath, error) {
	fields := strings.Fields(s)
	paths := make([]SchemaNodePath, 0, len(fields))
	for _, f := range fields {
		p, err := ParseSchemaNodePath(f)
		if err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}

// SchemaNodePath is a "/"-separated sequence of (possibly prefixed)
// identifiers, as used by `unique`.
type SchemaNodePath []Identifier

func ParseSchemaNodePath(s string) (SchemaNodePath, error) {
	segs := strings.Split(strings.TrimPrefix(s, "/"), "/")
	path := make(SchemaNodePath, 0, len(segs))
	for _, seg := range segs {
		id, err := NewIdentifier(seg)
		if err != nil {
			return nil, err
		}
		path = append(path, id)
	}
	return path, nil
}

func (p SchemaNodePath) String() string {
	parts := make([]string, len(p))
	for i, id := range p {
		parts[i] = id.String()
	}
	return strings.Join(parts, "/")
}

// -----------------------------------------------------------------------------
// Path argument (spec.md section 4.2): absolute or relative XPath-lite path
// -----------------------------------------------------------------------------

// PathArg is a `path` (leafref) or `augment`/`deviation` target-path
// argument: either absolute ("/a/b/c") or relative ("../../a/b").
type PathArg struct {
	Absolute bool
	UpLevels int // number of leading "../" segments, for relative paths
	Segments []Identifier
}

func ParsePathArg(s string) (PathArg, error) {
	if strings.HasPrefix(s, "/") {
		segs := strings.Split(strings.Trim(s, "/"), "/")
		ids := make([]Identifier, 0, len(segs))
		for _, seg := range segs {
			id, err := NewIdentifier(seg)
			if err != nil {
				return PathArg{}, err
			}
			ids = append(ids, id)
		}
		return PathArg{Absolute: true, Segments: ids}, nil
	}

	rest := s
	upLevels := 0
	for strings.HasPrefix(rest, "../") {
		upLevels++
		rest = strings.TrimPrefix(rest, "../")
	}
	if upLevels == 0 {
		return PathArg{}, yangerr.InvalidArgument(yangerr.Position{}, "path argument %q is neither absolute nor relative", s)
	}
	var ids []Identifier
	if rest != "" {
		for _, seg := range strings.Split(rest, "/") {
			id, err := NewIdentifier(seg)
			if err != nil {
				return PathArg{}, err
			}
			ids = append(ids, id)
		}
	}
	return PathArg{UpLevels: upLevels, Segments: ids}, nil
}

func (p PathArg) String() string {
	if p.Absolute {
		var b strings.Builder
		for _, s := range p.Segments {
			b.WriteByte('/')
			b.WriteString(s.String())
		}
		return b.String()
	}
	var b strings.Builder
	for i := 0; i < p.UpLevels; i++ {
		b.WriteString("../")
	}
	for i, s := range p.Segments {
		if i > 0 {
			b.WriteByte('/')
		}
		b.WriteString(s.String())
	}
	return b.String()
}

// -----------------------------------------------------------------------------
// URI argument (spec.md section 4.2): the `namespace` statement's argument,
// an RFC 3986 absolute-URI
// -----------------------------------------------------------------------------

// URI is a validated `namespace` argument: an RFC 3986 absolute-URI, i.e. a
// scheme followed by ":" and the rest of the URI, with no fragment.
type URI struct {
	Scheme string
	Rest   string
}

func (u URI) String() string { return u.Scheme + ":" + u.Rest }

// ParseURI validates s against RFC 3986's absolute-URI production:
//
//	absolute-URI = scheme ":" hier-part [ "?" query ]
//	scheme       = ALPHA *( ALPHA / DIGIT / "+" / "-" / "." )
//
// It does not fully validate hier-part's authority/path grammar (out of
// scope per spec.md section 1's non-goals around URI resolution); it
// checks the scheme syntax and rejects a fragment ("#"), which
// absolute-URI disallows but URI-reference allows.
func ParseURI(s string) (URI, error) {
	colon := strings.IndexByte(s, ':')
	if colon <= 0 {
		return URI{}, yangerr.InvalidArgument(yangerr.Position{}, "namespace %q is not an absolute-URI: missing scheme", s)
	}
	scheme := s[:colon]
	if !isSchemeStartByte(scheme[0]) {
		return URI{}, yangerr.InvalidArgument(yangerr.Position{}, "namespace %q has an invalid scheme %q", s, scheme)
	}
	for i := 1; i < len(scheme); i++ {
		if !isSchemeByte(scheme[i]) {
			return URI{}, yangerr.InvalidArgument(yangerr.Position{}, "namespace %q has an invalid scheme %q", s, scheme)
		}
	}
	rest := s[colon+1:]
	if strings.ContainsRune(rest, '#') {
		return URI{}, yangerr.InvalidArgument(yangerr.Position{}, "namespace %q has a fragment, not allowed in absolute-URI", s)
	}
	return URI{Scheme: scheme, Rest: rest}, nil
}

func isSchemeStartByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isSchemeByte(c byte) bool {
	return isSchemeStartByte(c) || (c >= '0' && c <= '9') || c == '+' || c == '-' || c == '.'
}
