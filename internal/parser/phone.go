package parser

import "slices"

const (
	minPhoneDigits  = 8
	maxPhoneDigits  = 15
	maxCountryCode  = 3
	areaCodeDigits  = 3
	phoneSeparator  = '-'
	phoneGroupSpace = ' '
)

// subscriberShapes are the accepted digit group widths after the area code.
var subscriberShapes = [][]int{
	{7},
	{3, 4},
	{3, 2, 2},
}

// phone matches a quoted phone number in either the simple form
// ("+381233456789", "+38 123 345 6789") or the complex form
// ("+38(123)345-67-89").
func (p *parser) phone(pos int) (*Node, int, bool) {
	start := pos
	pos, ok := p.expect(pos, '"', RulePhone)
	if !ok {
		return nil, start, false
	}
	if p.at(pos, '+') {
		pos++
	} else {
		p.fail.record(pos, RuleSign, UnexpectedToken)
	}

	end, ok := p.simpleNumber(pos)
	if !ok {
		end, ok = p.complexNumber(pos)
	}
	if !ok {
		return nil, start, false
	}
	return newNode(RulePhone, p.input, start, end), end, true
}

// simpleNumber matches digit groups separated by single spaces and the
// closing quote.
func (p *parser) simpleNumber(pos int) (int, bool) {
	start := pos
	total := 0
	for {
		n := p.digits(pos, 0)
		if n == 0 {
			p.fail.record(pos, RuleDigits, UnexpectedToken)
			return start, false
		}
		pos += n
		total += n
		if !p.at(pos, phoneGroupSpace) {
			break
		}
		pos++
	}
	if !p.at(pos, '"') {
		p.fail.record(pos, RulePhone, UnexpectedToken)
		return start, false
	}
	if total < minPhoneDigits || total > maxPhoneDigits {
		p.fail.record(pos, RuleDigits, MalformedGroup)
		return start, false
	}
	return pos + 1, true
}

type phoneState int

const (
	stateCountryCode phoneState = iota
	stateAreaOpen
	stateAreaCode
	stateAreaClose
	stateSubscriber
	stateClose
)

// complexNumber matches "CC(AAA)SSS-SS-SS" and the closing quote. Each state
// either advances to the next one or fails.
func (p *parser) complexNumber(pos int) (int, bool) {
	start := pos
	for state := stateCountryCode; ; state++ {
		var ok bool
		switch state {
		case stateCountryCode:
			n := p.digits(pos, maxCountryCode)
			if n == 0 {
				p.fail.record(pos, RuleCountryCode, UnexpectedToken)
				return start, false
			}
			pos += n
		case stateAreaOpen:
			if pos, ok = p.expect(pos, '(', RuleAreaCode); !ok {
				return start, false
			}
		case stateAreaCode:
			n := p.digits(pos, 0)
			switch {
			case n > areaCodeDigits:
				p.fail.record(pos+areaCodeDigits, RuleAreaCode, UnexpectedToken)
				return start, false
			case n < areaCodeDigits:
				kind := UnexpectedToken
				if p.at(pos+n, ')') {
					kind = MalformedGroup
				}
				p.fail.record(pos+n, RuleAreaCode, kind)
				return start, false
			}
			pos += n
		case stateAreaClose:
			if pos, ok = p.expect(pos, ')', RuleAreaCode); !ok {
				return start, false
			}
		case stateSubscriber:
			if pos, ok = p.subscriber(pos); !ok {
				return start, false
			}
		case stateClose:
			if pos, ok = p.expect(pos, '"', RulePhone); !ok {
				return start, false
			}
			return pos, true
		}
	}
}

// subscriber matches hyphen-separated digit groups whose widths form one of
// subscriberShapes.
func (p *parser) subscriber(pos int) (int, bool) {
	start := pos
	var widths []int
	for {
		n := p.digits(pos, 0)
		if n == 0 {
			p.fail.record(pos, RuleSubscriber, UnexpectedToken)
			return start, false
		}
		widths = append(widths, n)
		if !matchesShape(widths, false) {
			p.fail.record(pos, RuleSubscriber, MalformedGroup)
			return start, false
		}
		pos += n
		if !p.at(pos, phoneSeparator) {
			break
		}
		pos++
	}
	if !matchesShape(widths, true) {
		p.fail.record(pos, RuleSubscriber, MalformedGroup)
		return start, false
	}
	return pos, true
}

// matchesShape reports whether widths is a prefix of some subscriber shape,
// or exactly one of them when complete is set.
func matchesShape(widths []int, complete bool) bool {
	for _, shape := range subscriberShapes {
		if len(widths) > len(shape) || complete && len(widths) != len(shape) {
			continue
		}
		if slices.Equal(shape[:len(widths)], widths) {
			return true
		}
	}
	return false
}
