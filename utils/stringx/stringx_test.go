// File: stringx_test.go
// Title: Unit Tests for Core String Utilities
// Description: Tests the general helpers including Unicode handling and the
//              clamped substring and chunk operations.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial test implementation
// - 2025-03-02 v0.2.0: Tests for substring, chunk and predicate helpers

package stringx

import (
	"reflect"
	"testing"

	"github.com/msto63/commons/core/errors"
)

func TestIsBlank(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"empty string", "", true},
		{"single space", " ", true},
		{"mixed whitespace", " \t\n\r ", true},
		{"string with content", "hello", false},
		{"string with spaces around", " hello ", false},
		{"unicode content", "こんにちは", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := IsBlank(tt.input); result != tt.expected {
				t.Errorf("IsBlank(%q) = %v; want %v", tt.input, result, tt.expected)
			}
			if IsNotBlank(tt.input) == tt.expected {
				t.Errorf("IsNotBlank(%q) must be the inverse", tt.input)
			}
		})
	}

	if !IsEmpty("") || IsEmpty(" ") || IsNotEmpty("") {
		t.Error("unexpected IsEmpty/IsNotEmpty result")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		ellipsis string
		expected string
	}{
		{"fits", "short", 10, "...", "short"},
		{"cut with ellipsis", "hello world", 8, "...", "hello..."},
		{"ellipsis too long", "hello", 2, "...", "he"},
		{"zero length", "hello", 0, "...", ""},
		{"unicode", "日本語のテキスト", 4, "…", "日本語…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Truncate(tt.input, tt.maxLen, tt.ellipsis); result != tt.expected {
				t.Errorf("Truncate(%q, %d, %q) = %q; want %q", tt.input, tt.maxLen, tt.ellipsis, result, tt.expected)
			}
		})
	}
}

func TestReverse(t *testing.T) {
	tests := map[string]string{
		"":      "",
		"abc":   "cba",
		"日本語":   "語本日",
		"a,b;c": "c;b,a",
	}
	for input, expected := range tests {
		if result := Reverse(input); result != expected {
			t.Errorf("Reverse(%q) = %q; want %q", input, result, expected)
		}
	}
}

func TestPadding(t *testing.T) {
	tests := []struct {
		name     string
		fn       func(string, int, rune) string
		input    string
		width    int
		pad      rune
		expected string
	}{
		{"left", PadLeft, "7", 3, '0', "007"},
		{"left too long", PadLeft, "1234", 3, '0', "1234"},
		{"right", PadRight, "ab", 4, '.', "ab.."},
		{"right unicode", PadRight, "日", 3, '・', "日・・"},
		{"center even", Center, "ab", 6, '*', "**ab**"},
		{"center odd", Center, "ab", 5, '*', "*ab**"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := tt.fn(tt.input, tt.width, tt.pad); result != tt.expected {
				t.Errorf("%s(%q, %d) = %q; want %q", tt.name, tt.input, tt.width, result, tt.expected)
			}
		})
	}
}

func TestSplitLines(t *testing.T) {
	result := SplitLines("a\r\nb\rc\nd")
	expected := []string{"a", "b", "c", "d"}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("SplitLines() = %q; want %q", result, expected)
	}
}

func TestFirstNonEmptyAndBlank(t *testing.T) {
	if got := FirstNonEmpty("", "a", "b"); got != "a" {
		t.Errorf("FirstNonEmpty() = %q; want a", got)
	}
	if got := FirstNonBlank(" ", "\t", "b"); got != "b" {
		t.Errorf("FirstNonBlank() = %q; want b", got)
	}
	if got := FirstNonEmpty(); got != "" {
		t.Errorf("FirstNonEmpty() = %q; want empty", got)
	}
	if got := FromDefault("", "x"); got != "x" {
		t.Errorf("FromDefault() = %q; want x", got)
	}
}

func TestSafeSubstring(t *testing.T) {
	tests := []struct {
		input    string
		begin    int
		end      int
		expected string
	}{
		{"Hello World!", 6, 10, "Worl"},
		{"Hello World!", 6, 42, "World!"},
		{"Hello World!", 18, 25, ""},
		{"Hello World!", 52, 37, ""},
		{"Hello World!", -3, 5, "Hello"},
		{"日本語", 1, 2, "本"},
	}

	for _, tt := range tests {
		if result := SafeSubstring(tt.input, tt.begin, tt.end); result != tt.expected {
			t.Errorf("SafeSubstring(%q, %d, %d) = %q; want %q", tt.input, tt.begin, tt.end, result, tt.expected)
		}
	}
}

func TestChunk(t *testing.T) {
	tests := []struct {
		input    string
		size     int
		expected []string
	}{
		{"abcdefg", 3, []string{"abc", "def", "g"}},
		{"abcdef", 3, []string{"abc", "def"}},
		{"", 2, []string{}},
		{"日本語", 2, []string{"日本", "語"}},
	}

	for _, tt := range tests {
		result, err := Chunk(tt.input, tt.size)
		if err != nil {
			t.Fatalf("Chunk(%q, %d) returned error: %v", tt.input, tt.size, err)
		}
		if !reflect.DeepEqual(result, tt.expected) {
			t.Errorf("Chunk(%q, %d) = %q; want %q", tt.input, tt.size, result, tt.expected)
		}
	}

	if _, err := Chunk("abc", 0); !errors.HasCode(err, errors.CodeInvalidInput) {
		t.Errorf("Chunk with size 0: got %v", err)
	}
}

func TestInsertAndRemove(t *testing.T) {
	if got := InsertAt("helo", 3, "l"); got != "hello" {
		t.Errorf("InsertAt() = %q", got)
	}
	if got := InsertAt("ab", 10, "c"); got != "abc" {
		t.Errorf("InsertAt() past the end = %q", got)
	}
	if got := RemoveAt("hello", 1, 3); got != "ho" {
		t.Errorf("RemoveAt() = %q", got)
	}
	if got := RemoveAt("hello", 3, 10); got != "hel" {
		t.Errorf("RemoveAt() past the end = %q", got)
	}
	if got := RemoveAt("日本語", 1, 1); got != "日語" {
		t.Errorf("RemoveAt() unicode = %q", got)
	}
}

func TestCountLeadingTrailing(t *testing.T) {
	if got := CountLeading("---a--", '-'); got != 3 {
		t.Errorf("CountLeading() = %d; want 3", got)
	}
	if got := CountTrailing("---a--", '-'); got != 2 {
		t.Errorf("CountTrailing() = %d; want 2", got)
	}
	if got := CountTrailing("ああ", 'あ'); got != 2 {
		t.Errorf("CountTrailing() unicode = %d; want 2", got)
	}
	if CountLeading("", 'x') != 0 || CountTrailing("", 'x') != 0 {
		t.Error("expected zero for empty string")
	}
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		name     string
		fn       func(string) bool
		input    string
		expected bool
	}{
		{"numeric digits", IsNumeric, "0123", true},
		{"numeric sign", IsNumeric, "-1", false},
		{"numeric empty", IsNumeric, "", true},
		{"lowercase", IsLowercase, "abc 1", true},
		{"not lowercase", IsLowercase, "aBc", false},
		{"uppercase", IsUppercase, "ABC-", true},
		{"palindrome phrase", IsPalindrome, "A man, a plan, a canal: Panama", true},
		{"not palindrome", IsPalindrome, "segment", false},
		{"palindrome empty", IsPalindrome, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := tt.fn(tt.input); result != tt.expected {
				t.Errorf("%s(%q) = %v; want %v", tt.name, tt.input, result, tt.expected)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	input := "a b\r\nc\\d"
	tests := []struct {
		flags    int
		expected string
	}{
		{0, input},
		{NormalizeNewlines, "a b\nc\\d"},
		{NormalizeSpaceToUnderscore, "a_b\r\nc\\d"},
		{NormalizePath, "a b\r\nc/d"},
		{NormalizeNewlines | NormalizeSpaceToUnderscore | NormalizePath, "a_b\nc/d"},
	}

	for _, tt := range tests {
		if result := Normalize(input, tt.flags); result != tt.expected {
			t.Errorf("Normalize(%q, %d) = %q; want %q", input, tt.flags, result, tt.expected)
		}
	}
}

func TestValidation(t *testing.T) {
	if ValidateRequired("x") != nil || ValidateRequired("") == nil {
		t.Error("unexpected ValidateRequired result")
	}
	if ValidateNotBlank("x") != nil || ValidateNotBlank(" ") == nil {
		t.Error("unexpected ValidateNotBlank result")
	}
	if err := ValidateLength("abc", 1, 3); err != nil {
		t.Errorf("ValidateLength() = %v", err)
	}
	if err := ValidateLength("abcd", 1, 3); err == nil {
		t.Error("expected error for too long input")
	}
	if err := ValidateLength("", 1, 0); err == nil {
		t.Error("expected error for too short input")
	}
}

func TestIntern(t *testing.T) {
	a := Intern("delimiter")
	b := Intern(string([]byte("delimiter")))
	if a != b {
		t.Error("interned strings differ")
	}
	if Intern("") != "" {
		t.Error("empty string must intern to empty")
	}
}
