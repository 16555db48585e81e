package parser

import "fmt"

// Rule identifies one grammar production.
type Rule int

const (
	RuleString Rule = iota + 1
	RulePhone
	RuleDate
	RuleContact
	RuleFile

	// contact fields
	RuleHeader
	RuleName
	RuleSurname
	RulePhones
	RuleAddress
	RuleBirthday

	// phone components, reported in diagnostics only
	RuleSign
	RuleDigits
	RuleCountryCode
	RuleAreaCode
	RuleSubscriber

	RuleLineBreak
	RuleEOI
)

var ruleNames = map[Rule]string{
	RuleString:      "string",
	RulePhone:       "phone",
	RuleDate:        "date",
	RuleContact:     "contact",
	RuleFile:        "file",
	RuleHeader:      "header",
	RuleName:        "name",
	RuleSurname:     "surname",
	RulePhones:      "phones",
	RuleAddress:     "address",
	RuleBirthday:    "birthday",
	RuleSign:        "sign",
	RuleDigits:      "digits",
	RuleCountryCode: "country_code",
	RuleAreaCode:    "area_code",
	RuleSubscriber:  "subscriber",
	RuleLineBreak:   "line_break",
	RuleEOI:         "EOI",
}

func (r Rule) String() string {
	if name, ok := ruleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Rule(%d)", int(r))
}

// IsEntry reports whether Parse accepts r as a start rule.
func (r Rule) IsEntry() bool {
	switch r {
	case RuleString, RulePhone, RuleDate, RuleContact, RuleFile:
		return true
	}
	return false
}

// LookupRule resolves an entry rule by its identifier.
func LookupRule(name string) (Rule, error) {
	for r, n := range ruleNames {
		if n == name && r.IsEntry() {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown rule %q", name)
}
