package parser

import "strings"

// dateGroups are the digit widths of "YYYY-MM-DD".
var dateGroups = [...]int{4, 2, 2}

// str matches a double-quoted string. Any byte other than '"' is literal.
func (p *parser) str(pos int) (*Node, int, bool) {
	start := pos
	pos, ok := p.expect(pos, '"', RuleString)
	if !ok {
		return nil, start, false
	}
	n := strings.IndexByte(p.input[pos:], '"')
	if n < 0 {
		p.fail.record(len(p.input), RuleString, UnexpectedEndOfInput)
		return nil, start, false
	}
	end := pos + n + 1
	return newNode(RuleString, p.input, start, end), end, true
}

func (p *parser) date(pos int) (*Node, int, bool) {
	start := pos
	pos, ok := p.expect(pos, '"', RuleDate)
	if !ok {
		return nil, start, false
	}
	for i, width := range dateGroups {
		if i > 0 {
			if pos, ok = p.expect(pos, '-', RuleDate); !ok {
				return nil, start, false
			}
		}
		if n := p.digits(pos, width); n != width {
			p.fail.record(pos+n, RuleDate, UnexpectedToken)
			return nil, start, false
		}
		pos += width
	}
	if pos, ok = p.expect(pos, '"', RuleDate); !ok {
		return nil, start, false
	}
	return newNode(RuleDate, p.input, start, pos), pos, true
}
