package parser

import (
	"fmt"
	"strings"
)

// Parse matches input against rule and returns the resulting match tree.
//
// Every rule except RuleFile matches a prefix of input; RuleFile must reach
// the end of input. On rejection the error is a *Error describing the
// furthest offset reached. Parse keeps no state between calls and is safe
// for concurrent use.
func Parse(rule Rule, input string) (Pairs, error) {
	if !rule.IsEntry() {
		return nil, fmt.Errorf("parse %s: %w", rule, ErrNotEntryRule)
	}

	p := &parser{input: input}

	var (
		node *Node
		ok   bool
	)
	switch rule {
	case RuleString:
		node, _, ok = p.str(0)
	case RulePhone:
		node, _, ok = p.phone(0)
	case RuleDate:
		node, _, ok = p.date(0)
	case RuleContact:
		node, _, ok = p.contact(0)
	case RuleFile:
		node, ok = p.file()
	}
	if !ok {
		return nil, p.fail.err(input)
	}
	return Pairs{node}, nil
}

// parser holds the input and failure tracker of a single Parse call. Match
// methods take the cursor position and return the advanced one; on failure
// they return the position they were given.
type parser struct {
	input string
	fail  failure
}

func (p *parser) at(pos int, c byte) bool {
	return pos < len(p.input) && p.input[pos] == c
}

func (p *parser) expect(pos int, c byte, rule Rule) (int, bool) {
	if p.at(pos, c) {
		return pos + 1, true
	}
	p.fail.record(pos, rule, UnexpectedToken)
	return pos, false
}

func (p *parser) literal(pos int, lit string, rule Rule) (int, bool) {
	if strings.HasPrefix(p.input[pos:], lit) {
		return pos + len(lit), true
	}
	p.fail.record(pos, rule, UnexpectedToken)
	return pos, false
}

// digits counts the ASCII digits starting at pos, stopping after max
// digits when max > 0.
func (p *parser) digits(pos, max int) int {
	n := 0
	for pos+n < len(p.input) && isDigit(p.input[pos+n]) {
		n++
		if n == max {
			break
		}
	}
	return n
}

// space skips spaces and tabs.
func (p *parser) space(pos int) int {
	for pos < len(p.input) && (p.input[pos] == ' ' || p.input[pos] == '\t') {
		pos++
	}
	return pos
}

// newline returns the width of the line break at pos, or 0.
func (p *parser) newline(pos int) int {
	switch {
	case p.at(pos, '\n'):
		return 1
	case p.at(pos, '\r') && p.at(pos+1, '\n'):
		return 2
	}
	return 0
}

func (p *parser) lineBreak(pos int) (int, bool) {
	if n := p.newline(pos); n > 0 {
		return pos + n, true
	}
	p.fail.record(pos, RuleLineBreak, UnexpectedToken)
	return pos, false
}

// lineEnd consumes trailing inline whitespace and the line break.
func (p *parser) lineEnd(pos int) (int, bool) {
	next, ok := p.lineBreak(p.space(pos))
	if !ok {
		return pos, false
	}
	return next, true
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
