package parser

const contactHeader = "[contact]"

type valueFunc func(p *parser, pos int) ([]*Node, int, bool)

// contactField is one labeled "label = value" line of a contact block.
type contactField struct {
	rule  Rule
	label string
	value valueFunc
}

// contactFields lists the fields of a contact block in their required order.
var contactFields = [...]contactField{
	{RuleName, "name", single((*parser).str)},
	{RuleSurname, "surname", single((*parser).str)},
	{RulePhones, "phones", (*parser).phoneList},
	{RuleAddress, "address", single((*parser).str)},
	{RuleBirthday, "birthday", single((*parser).date)},
}

func single(match func(*parser, int) (*Node, int, bool)) valueFunc {
	return func(p *parser, pos int) ([]*Node, int, bool) {
		n, next, ok := match(p, pos)
		if !ok {
			return nil, pos, false
		}
		return []*Node{n}, next, true
	}
}

// contact matches a "[contact]" header followed by every field of
// contactFields, each on its own line.
func (p *parser) contact(pos int) (*Node, int, bool) {
	origin := pos
	pos = p.space(pos)
	start := pos

	header, pos, ok := p.header(pos)
	if !ok {
		return nil, origin, false
	}
	children := []*Node{header}
	for _, f := range contactFields {
		var n *Node
		if n, pos, ok = p.field(pos, f); !ok {
			return nil, origin, false
		}
		children = append(children, n)
	}
	return newNode(RuleContact, p.input, start, pos, children...), pos, true
}

func (p *parser) header(pos int) (*Node, int, bool) {
	start := pos
	end, ok := p.literal(pos, contactHeader, RuleHeader)
	if !ok {
		return nil, start, false
	}
	next, ok := p.lineEnd(end)
	if !ok {
		return nil, start, false
	}
	return newNode(RuleHeader, p.input, start, end), next, true
}

// field matches one labeled line. The node spans the label through the end
// of the value; the line break is consumed but not included.
func (p *parser) field(pos int, f contactField) (*Node, int, bool) {
	origin := pos
	pos = p.space(pos)
	start := pos

	pos, ok := p.literal(pos, f.label, f.rule)
	if !ok {
		return nil, origin, false
	}
	if pos, ok = p.expect(p.space(pos), '=', f.rule); !ok {
		return nil, origin, false
	}
	values, end, ok := f.value(p, p.space(pos))
	if !ok {
		return nil, origin, false
	}
	next, ok := p.lineEnd(end)
	if !ok {
		return nil, origin, false
	}
	return newNode(f.rule, p.input, start, end, values...), next, true
}

// phoneList matches a bracketed, comma-separated list of one or more phones.
func (p *parser) phoneList(pos int) ([]*Node, int, bool) {
	origin := pos
	pos, ok := p.expect(pos, '[', RulePhones)
	if !ok {
		return nil, origin, false
	}
	var phones []*Node
	for {
		n, next, ok := p.phone(p.space(pos))
		if !ok {
			return nil, origin, false
		}
		phones = append(phones, n)
		pos = p.space(next)
		if !p.at(pos, ',') {
			break
		}
		pos++
	}
	if pos, ok = p.expect(pos, ']', RulePhones); !ok {
		return nil, origin, false
	}
	return phones, pos, true
}

// file matches zero or more contacts separated by blank lines, up to the
// end of input.
func (p *parser) file() (*Node, bool) {
	var contacts []*Node
	separated := true

	pos, _ := p.blankLines(0)
	for pos < len(p.input) {
		if !separated {
			p.fail.record(pos, RuleLineBreak, UnexpectedToken)
			return nil, false
		}
		p.fail.record(pos, RuleEOI, UnexpectedToken)

		c, next, ok := p.contact(pos)
		if !ok {
			return nil, false
		}
		contacts = append(contacts, c)

		var blanks int
		pos, blanks = p.blankLines(next)
		separated = blanks > 0
	}
	return newNode(RuleFile, p.input, 0, len(p.input), contacts...), true
}

// blankLines skips lines holding only inline whitespace and returns the new
// position and the number of line breaks skipped. Trailing whitespace at the
// end of input is skipped too.
func (p *parser) blankLines(pos int) (int, int) {
	count := 0
	for {
		q := p.space(pos)
		n := p.newline(q)
		if n == 0 {
			if q == len(p.input) {
				return q, count
			}
			return pos, count
		}
		pos = q + n
		count++
	}
}
