package render

import (
	"regexp"
	"strings"

	"github.com/belphemur/weekly-calendar-card/internal/calendar"
)

// unsafeCSSValue matches anything that could end a declaration, open a new
// rule or element, or load a resource.
var unsafeCSSValue = regexp.MustCompile("(?i)[\\x00-\\x1f;{}<>\\\\\"'@`]|/\\*|\\*/|url\\s*\\(|expression\\s*\\(")

// IsSafeCSSValue reports whether value can be placed in a declaration as is.
// It does not check that the value is a valid color.
func IsSafeCSSValue(value string) bool {
	return !unsafeCSSValue.MatchString(value)
}

// Stylesheet renders rules as CSS, one block per run of equal selectors.
// Declarations with unsafe values are left out and returned as dropped.
func Stylesheet(rules []calendar.StyleRule) (css string, dropped []calendar.StyleRule) {
	var sb strings.Builder
	open := ""
	for _, rule := range rules {
		if !IsSafeCSSValue(rule.Value) {
			dropped = append(dropped, rule)
			continue
		}
		if rule.Selector != open {
			if open != "" {
				sb.WriteString(" }\n")
			}
			sb.WriteString(rule.Selector)
			sb.WriteString(" {")
			open = rule.Selector
		}
		sb.WriteString(" ")
		sb.WriteString(rule.Property)
		sb.WriteString(": ")
		sb.WriteString(rule.Value)
		sb.WriteString(";")
	}
	if open != "" {
		sb.WriteString(" }\n")
	}
	return sb.String(), dropped
}
