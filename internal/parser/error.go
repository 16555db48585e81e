package parser

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrNotEntryRule = errors.New("not an entry rule")

// ErrorKind classifies why input was rejected.
type ErrorKind int

const (
	UnexpectedToken ErrorKind = iota
	UnexpectedEndOfInput
	MalformedGroup
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedEndOfInput:
		return "unexpected end of input"
	case MalformedGroup:
		return "malformed group"
	default:
		return "unexpected token"
	}
}

// Error is returned by Parse when the input is rejected. Offset is the
// furthest byte offset any rule reached; Expected lists the rules that were
// being attempted there.
type Error struct {
	Kind     ErrorKind
	Offset   int
	Line     int // 1-based
	Column   int // 1-based, in bytes
	Expected []Rule
}

func (e *Error) Error() string {
	names := make([]string, len(e.Expected))
	for i, r := range e.Expected {
		names[i] = r.String()
	}
	return fmt.Sprintf("%d:%d: %s, expected %s", e.Line, e.Column, e.Kind, strings.Join(names, ", "))
}

// LineCol converts a byte offset into 1-based line and column numbers.
func LineCol(input string, offset int) (line, col int) {
	if offset > len(input) {
		offset = len(input)
	}
	line = 1 + strings.Count(input[:offset], "\n")
	col = offset + 1
	if i := strings.LastIndexByte(input[:offset], '\n'); i >= 0 {
		col = offset - i
	}
	return line, col
}

// failure tracks the furthest failed match attempt of one Parse call.
type failure struct {
	offset   int
	kind     ErrorKind
	expected map[Rule]struct{}
}

func (f *failure) record(offset int, rule Rule, kind ErrorKind) {
	switch {
	case f.expected == nil || offset > f.offset:
		f.offset = offset
		f.kind = kind
		f.expected = map[Rule]struct{}{rule: {}}
	case offset == f.offset:
		if kind == MalformedGroup {
			f.kind = kind
		}
		f.expected[rule] = struct{}{}
	}
}

func (f *failure) err(input string) *Error {
	kind := f.kind
	if kind != MalformedGroup && f.offset >= len(input) {
		kind = UnexpectedEndOfInput
	}
	expected := make([]Rule, 0, len(f.expected))
	for r := range f.expected {
		expected = append(expected, r)
	}
	sort.Slice(expected, func(i, j int) bool { return expected[i] < expected[j] })

	line, col := LineCol(input, f.offset)
	return &Error{
		Kind:     kind,
		Offset:   f.offset,
		Line:     line,
		Column:   col,
		Expected: expected,
	}
}
