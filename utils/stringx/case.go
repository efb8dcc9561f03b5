// File: case.go
// Title: String Case Conversion Utilities
// Description: Converts between naming conventions and capitalizes words.
//              Used to normalize profile and operation names.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with case conversion utilities
// - 2025-03-02 v0.2.0: Shared word splitting, added Capitalize

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// words splits s into lower-cased words at separators (space, '_', '-')
// and at lower-to-upper case transitions
func words(s string) []string {
	var result []string
	var current strings.Builder
	prevLower := false

	flush := func() {
		if current.Len() > 0 {
			result = append(result, current.String())
			current.Reset()
		}
	}

	for _, r := range s {
		switch {
		case r == '_' || r == '-' || unicode.IsSpace(r):
			flush()
			prevLower = false
		case unicode.IsUpper(r):
			if prevLower {
				flush()
			}
			current.WriteRune(unicode.ToLower(r))
			prevLower = false
		default:
			current.WriteRune(r)
			prevLower = unicode.IsLower(r) || unicode.IsDigit(r)
		}
	}
	flush()
	return result
}

// ToSnakeCase converts a string to snake_case.
// Example: "MyVariableName" -> "my_variable_name"
func ToSnakeCase(s string) string {
	return strings.Join(words(s), "_")
}

// ToKebabCase converts a string to kebab-case.
// Example: "splitInclusive" -> "split-inclusive"
func ToKebabCase(s string) string {
	return strings.Join(words(s), "-")
}

// ToCamelCase converts a string to camelCase.
// Example: "split_retaining" -> "splitRetaining"
func ToCamelCase(s string) string {
	parts := words(s)
	if len(parts) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(parts[0])
	for _, p := range parts[1:] {
		b.WriteString(upperFirst(p))
	}
	return b.String()
}

// ToPascalCase converts a string to PascalCase.
// Example: "split_retaining" -> "SplitRetaining"
func ToPascalCase(s string) string {
	var b strings.Builder
	for _, p := range words(s) {
		b.WriteString(upperFirst(p))
	}
	return b.String()
}

// Capitalize upper-cases the first letter of every space separated word
// and joins the words without the spaces: "hello big world" becomes
// "HelloBigWorld".
func Capitalize(s string) string {
	var b strings.Builder
	for _, w := range strings.Split(s, " ") {
		b.WriteString(upperFirst(w))
	}
	return b.String()
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
