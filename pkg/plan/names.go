package plan

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	titleCaser = cases.Title(language.Und)
	lowerCaser = cases.Lower(language.Und)
)

// splitWords breaks a WSDL/XSD identifier (typically already camelCase or
// PascalCase, occasionally snake_case or kebab-case) into its constituent
// words, so the two target conventions below can be derived uniformly.
func splitWords(s string) []string {
	var words []string
	var cur []rune
	runes := []rune(s)

	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = nil
		}
	}

	for i, r := range runes {
		if r == '_' || r == '-' || r == '.' || r == ' ' {
			flush()
			continue
		}
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()
	return words
}

// upperCamel normalizes name to the target's upper-camel convention, used
// for type and wrapper identifiers.
func upperCamel(name string) string {
	var b strings.Builder
	for _, w := range splitWords(name) {
		b.WriteString(titleCaser.String(w))
	}
	if b.Len() == 0 {
		return name
	}
	return b.String()
}

// lowerSnake normalizes name to the target's lower-snake convention, used
// for field and operation identifiers.
func lowerSnake(name string) string {
	words := splitWords(name)
	lowered := make([]string, len(words))
	for i, w := range words {
		lowered[i] = lowerCaser.String(w)
	}
	joined := strings.Join(lowered, "_")
	if joined == "" {
		return name
	}
	return joined
}
