// File: extract_test.go
// Title: Unit Tests for Paired Span Extraction
// Description: Tests symmetric and asymmetric extraction, un-escaping and
//              every malformed input rule.
// Author: msto63
// Version: v0.2.0
// Created: 2025-03-02
// Modified: 2025-03-02

package stringx

import (
	stderrors "errors"
	"reflect"
	"testing"

	mdwerror "github.com/msto63/commons/core/error"
	"github.com/msto63/commons/core/errors"
)

func TestExtractSpans(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		start    string
		end      string
		escape   string
		expected []string
	}{
		{"symmetric quotes", `"alpha","beta"`, `"`, `"`, `\`, []string{"alpha", "beta"}},
		{"asymmetric parentheses", "(foo)(bar)", "(", ")", `\`, []string{"foo", "bar"}},
		{"escaped quote unescaped", `"say \"hi\"" and "bye"`, `"`, `"`, `\`, []string{`say "hi"`, "bye"}},
		{"escaped end delimiter", `(a\)b)`, "(", ")", `\`, []string{"a)b"}},
		{"escaped start delimiter", `(a\(b)`, "(", ")", `\`, []string{"a(b"}},
		{"other escapes kept", `"a\nb"`, `"`, `"`, `\`, []string{`a\nb`}},
		{"empty regions", `""()`, `"`, `"`, "", []string{""}},
		{"adjacent asymmetric regions", "()()", "(", ")", "", []string{"", ""}},
		{"multi byte delimiters", "<<a>>x<<b>>", "<<", ">>", "", []string{"a", "b"}},
		{"symmetric multi byte", "--a--b--c--", "--", "--", "", []string{"a", "c"}},
		{"no delimiters", "plain text", `"`, `"`, `\`, []string{}},
		{"empty haystack", "", "(", ")", "", []string{}},
		{"no escape token", `"a\"`, `"`, `"`, "", []string{`a\`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ExtractSpans(tt.haystack, tt.start, tt.end, tt.escape)
			if err != nil {
				t.Fatalf("ExtractSpans(%q) returned error: %v", tt.haystack, err)
			}
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("ExtractSpans(%q, %q, %q, %q) = %q; want %q",
					tt.haystack, tt.start, tt.end, tt.escape, result, tt.expected)
			}
		})
	}
}

func TestExtractSpansMalformed(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		start    string
		end      string
		rule     string
	}{
		{"single quote", `"alpha`, `"`, `"`, RuleUnterminated},
		{"three quotes", `"a"b"`, `"`, `"`, RuleUnterminated},
		{"escaped closing quote", `"a\"`, `"`, `"`, RuleUnterminated},
		{"more starts than ends", "(foo(bar)", "(", ")", RuleUnbalanced},
		{"more ends than starts", "(foo))", "(", ")", RuleUnbalanced},
		{"end before start", ")foo(", "(", ")", RuleOverlapping},
		{"nested regions", "((a))", "(", ")", RuleOverlapping},
		{"crossing regions", "(a(b)c)", "(", ")", RuleOverlapping},
		{"first end before first start", ")(a)(", "(", ")", RuleOverlapping},
		{"overlapping symmetric delimiters", "aaa", "aa", "aa", RuleOverlapping},
		{"delimiters sharing bytes", "ab", "ab", "b", RuleOverlapping},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ExtractSpans(tt.haystack, tt.start, tt.end, `\`)
			if err == nil {
				t.Fatalf("ExtractSpans(%q) = %q; want error", tt.haystack, result)
			}
			if result != nil {
				t.Errorf("partial result returned: %q", result)
			}
			if !IsMalformedInput(err) {
				t.Errorf("IsMalformedInput(%v) = false", err)
			}
			var mdwErr *mdwerror.Error
			if !stderrors.As(err, &mdwErr) {
				t.Fatalf("error is not *mdwerror.Error: %T", err)
			}
			if rule, _ := mdwErr.Detail("rule"); rule != tt.rule {
				t.Errorf("rule = %v; want %q", rule, tt.rule)
			}
			if errors.ExtractOperation(err) != "extract_spans" {
				t.Errorf("operation = %q", errors.ExtractOperation(err))
			}
		})
	}
}

func TestExtractSpansInvalidDelimiters(t *testing.T) {
	for _, pair := range [][2]string{{"", ")"}, {"(", ""}, {"", ""}} {
		_, err := ExtractSpans("(a)", pair[0], pair[1], "")
		if err == nil {
			t.Fatalf("ExtractSpans with delimiters %q returned no error", pair)
		}
		if !errors.HasCode(err, errors.CodeInvalidInput) {
			t.Errorf("expected INVALID_INPUT, got %v", mdwerror.GetCode(err))
		}
		if IsMalformedInput(err) {
			t.Error("empty delimiters must not be reported as malformed input")
		}
	}
}

func TestFindSpans(t *testing.T) {
	haystack := `x "ab" y "c\"d" z`
	spans, err := FindSpans(haystack, `"`, `"`, `\`)
	if err != nil {
		t.Fatalf("FindSpans returned error: %v", err)
	}

	expected := []Span{{Start: 3, End: 5}, {Start: 10, End: 14}}
	if !reflect.DeepEqual(spans, expected) {
		t.Fatalf("FindSpans() = %v; want %v", spans, expected)
	}
	if spans[1].Of(haystack) != `c\"d` {
		t.Errorf("Of() = %q; raw text must keep the escape", spans[1].Of(haystack))
	}
	if spans[0].Len() != 2 {
		t.Errorf("Len() = %d; want 2", spans[0].Len())
	}
}
