package airtable

import (
	"fmt"
	"strings"
)

// Eq builds an equality predicate comparing a field against a string literal.
// The literal is quoted and escaped, so values taken from marketplace payloads
// cannot break out of the formula.
func Eq(field, value string) string {
	return fmt.Sprintf("{%s} = %s", field, quote(value))
}

// And conjoins predicates. With a single predicate the AND() wrapper is omitted.
func And(predicates ...string) string {
	if len(predicates) == 1 {
		return predicates[0]
	}
	return "AND(" + strings.Join(predicates, ", ") + ")"
}

// quote wraps a literal in single quotes, escaping embedded quotes and
// backslashes per the Airtable formula grammar.
func quote(value string) string {
	value = strings.ReplaceAll(value, `\`, `\\`)
	value = strings.ReplaceAll(value, `'`, `\'`)
	return "'" + value + "'"
}
