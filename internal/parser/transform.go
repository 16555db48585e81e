package parser

import (
	"fmt"
	"strings"
	"time"
)

const birthdayLayout = "2006-01-02"

// ParsedContact is the application model extracted from a contact node.
type ParsedContact struct {
	Name     string
	Surname  string
	Phones   []string // as written, without quotes
	Address  string
	Birthday time.Time
	Line     int // 1-based line number of the [contact] header
}

// Transform extracts every contact from the result of parsing with RuleFile
// or RuleContact. input must be the text that was parsed.
func Transform(pairs Pairs, input string) ([]ParsedContact, error) {
	var contacts []ParsedContact
	for _, n := range pairs.Find(RuleContact) {
		c, err := TransformContact(n, input)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, nil
}

// TransformContact converts a single contact node.
func TransformContact(n *Node, input string) (ParsedContact, error) {
	if n.Rule != RuleContact {
		return ParsedContact{}, fmt.Errorf("transform: got %s node, want contact", n.Rule)
	}
	line, _ := LineCol(input, n.Span.Start)
	pc := ParsedContact{Line: line}

	for _, field := range n.Children {
		switch field.Rule {
		case RuleName:
			pc.Name = unquote(field.Children[0].Text)
		case RuleSurname:
			pc.Surname = unquote(field.Children[0].Text)
		case RuleAddress:
			pc.Address = unquote(field.Children[0].Text)
		case RulePhones:
			for _, ph := range field.Children {
				pc.Phones = append(pc.Phones, unquote(ph.Text))
			}
		case RuleBirthday:
			raw := unquote(field.Children[0].Text)
			t, err := time.Parse(birthdayLayout, raw)
			if err != nil {
				return ParsedContact{}, fmt.Errorf("line %d: invalid birthday %q: %w", line, raw, err)
			}
			pc.Birthday = t
		}
	}
	return pc, nil
}

// NormalizePhone drops grouping characters, keeping the leading '+' and the
// digits.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for i := 0; i < len(phone); i++ {
		c := phone[i]
		if isDigit(c) || c == '+' && i == 0 {
			b.WriteByte(c)
		}
	}
	return b.String()
}

func unquote(s string) string {
	return strings.TrimSuffix(strings.TrimPrefix(s, `"`), `"`)
}
