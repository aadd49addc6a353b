// Package naming provides string case conversion for column names and
// string columns: snake_case, camelCase, PascalCase, kebab-case,
// Train-Case, and Pascal_Snake_Case.
package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/erraggy/coltools/colerrors"
)

// titleCaser performs Unicode-correct title casing (strings.Title is deprecated).
var titleCaser = cases.Title(language.Und, cases.NoLower)

// Case identifies a target naming convention.
type Case int

const (
	// Snake is snake_case.
	Snake Case = iota
	// Camel is camelCase.
	Camel
	// Pascal is PascalCase.
	Pascal
	// Kebab is kebab-case.
	Kebab
	// Train is Train-Case.
	Train
	// PascalSnake is Pascal_Snake_Case.
	PascalSnake
)

// String returns the conventional name of the case, as accepted by ParseCase.
func (c Case) String() string {
	switch c {
	case Snake:
		return "snake"
	case Camel:
		return "camel"
	case Pascal:
		return "pascal"
	case Kebab:
		return "kebab"
	case Train:
		return "train"
	case PascalSnake:
		return "pascal-snake"
	default:
		return "unknown"
	}
}

// ParseCase returns the Case named by s.
// Unknown names fail with colerrors.ErrInvalidInput.
func ParseCase(s string) (Case, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "snake":
		return Snake, nil
	case "camel":
		return Camel, nil
	case "pascal":
		return Pascal, nil
	case "kebab":
		return Kebab, nil
	case "train":
		return Train, nil
	case "pascal-snake", "pascal_snake":
		return PascalSnake, nil
	default:
		return 0, &colerrors.InvalidInputError{
			Op:      "ParseCase",
			Value:   s,
			Message: "unknown case name",
		}
	}
}

// splitWords breaks s into lowercased words. Word boundaries are the
// separators underscore, hyphen, dot, slash, and whitespace, plus camel
// boundaries: a lower-to-upper transition, and the last capital of an
// acronym run followed by a lowercase letter ("HTTPServer" -> http, server).
func splitWords(s string) []string {
	var words []string
	var cur strings.Builder

	flush := func() {
		if cur.Len() > 0 {
			words = append(words, strings.ToLower(cur.String()))
			cur.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if r == '_' || r == '-' || r == '.' || r == '/' || unicode.IsSpace(r) {
			flush()
			continue
		}
		if unicode.IsUpper(r) && i > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}
		cur.WriteRune(r)
	}
	flush()
	return words
}

// capitalize title-cases a single lowercased word.
func capitalize(word string) string {
	return titleCaser.String(word)
}

// ToSnakeCase converts s to snake_case.
// Example: "UserProfile" -> "user_profile"; "HTTPServer" -> "http_server".
func ToSnakeCase(s string) string {
	return strings.Join(splitWords(s), "_")
}

// ToCamelCase converts s to camelCase.
// Example: "user_profile" -> "userProfile".
func ToCamelCase(s string) string {
	words := splitWords(s)
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(words[0])
	for _, w := range words[1:] {
		b.WriteString(capitalize(w))
	}
	return b.String()
}

// ToPascalCase converts s to PascalCase.
// Example: "user_profile" -> "UserProfile".
func ToPascalCase(s string) string {
	words := splitWords(s)
	var b strings.Builder
	for _, w := range words {
		b.WriteString(capitalize(w))
	}
	return b.String()
}

// ToKebabCase converts s to kebab-case.
// Example: "UserProfile" -> "user-profile".
func ToKebabCase(s string) string {
	return strings.Join(splitWords(s), "-")
}

// ToTrainCase converts s to Train-Case.
// Example: "user_profile" -> "User-Profile".
func ToTrainCase(s string) string {
	return joinCapitalized(splitWords(s), "-")
}

// ToPascalSnakeCase converts s to Pascal_Snake_Case.
// Example: "user profile" -> "User_Profile".
func ToPascalSnakeCase(s string) string {
	return joinCapitalized(splitWords(s), "_")
}

// ToTitleCase converts the first letter of s to uppercase.
// Example: "hello" -> "Hello".
func ToTitleCase(s string) string {
	if s == "" {
		return ""
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func joinCapitalized(words []string, sep string) string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = capitalize(w)
	}
	return strings.Join(out, sep)
}

// Convert applies the case conversion to a single string.
// An unknown Case returns s unchanged.
func (c Case) Convert(s string) string {
	fn := converterFor(c)
	if fn == nil {
		return s
	}
	return fn(s)
}

// converterFor returns the scalar conversion function for c.
func converterFor(c Case) func(string) string {
	switch c {
	case Snake:
		return ToSnakeCase
	case Camel:
		return ToCamelCase
	case Pascal:
		return ToPascalCase
	case Kebab:
		return ToKebabCase
	case Train:
		return ToTrainCase
	case PascalSnake:
		return ToPascalSnakeCase
	default:
		return nil
	}
}
