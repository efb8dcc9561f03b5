// File: extract.go
// Title: Paired Delimiter Span Extraction
// Description: Validates and extracts the regions enclosed by a start and an
//              end delimiter, honouring an escape token in front of either
//              delimiter.
// Author: msto63
// Version: v0.2.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.2.0: Initial implementation

package stringx

import (
	"strings"

	mdwerror "github.com/msto63/commons/core/error"
	"github.com/msto63/commons/core/errors"
)

// Rules reported by FindSpans and ExtractSpans when the input is malformed
const (
	RuleUnterminated = "unterminated delimiter region"
	RuleUnbalanced   = "unbalanced delimiter counts"
	RuleOverlapping  = "overlapping or out-of-order delimiter regions"
)

// Span is a half-open byte interval [Start, End) of a haystack
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of bytes covered by the span
func (s Span) Len() int {
	return s.End - s.Start
}

// Of returns the text of haystack covered by the span
func (s Span) Of(haystack string) string {
	return haystack[s.Start:s.End]
}

// FindSpans returns the inner bounds of every delimited region, excluding
// the delimiters themselves. When startDelim equals endDelim the unescaped
// occurrences are paired consecutively and their count must be even.
// Otherwise the i-th start is paired with the i-th end; regions must not
// nest, cross or overlap.
//
// Any violation aborts the whole call with a MALFORMED_INPUT error.
func FindSpans(haystack, startDelim, endDelim, escape string) ([]Span, error) {
	if startDelim == "" || endDelim == "" {
		return nil, errors.StringxInvalidInput("extract_spans",
			map[string]string{"start": startDelim, "end": endDelim}, "non-empty start and end delimiters")
	}

	if startDelim == endDelim {
		return findSymmetricSpans(haystack, startDelim, escape)
	}
	return findAsymmetricSpans(haystack, startDelim, endDelim, escape)
}

func findSymmetricSpans(haystack, delim, escape string) ([]Span, error) {
	occ := FindOccurrences(haystack, delim, escape)
	if len(occ)%2 != 0 {
		return nil, errors.StringxMalformedInput("extract_spans", RuleUnterminated, map[string]interface{}{
			"delimiter":   delim,
			"occurrences": len(occ),
			"last_offset": occ[len(occ)-1],
		})
	}

	spans := make([]Span, 0, len(occ)/2)
	for i := 0; i < len(occ); i += 2 {
		inner := occ[i] + len(delim)
		if inner > occ[i+1] {
			// the closing delimiter overlaps the opening one
			return nil, errors.StringxMalformedInput("extract_spans", RuleOverlapping, map[string]interface{}{
				"region": i / 2,
				"start":  occ[i],
				"end":    occ[i+1],
			})
		}
		spans = append(spans, Span{Start: inner, End: occ[i+1]})
	}
	return spans, nil
}

func findAsymmetricSpans(haystack, startDelim, endDelim, escape string) ([]Span, error) {
	starts := FindOccurrences(haystack, startDelim, escape)
	ends := FindOccurrences(haystack, endDelim, escape)
	if len(starts) != len(ends) {
		return nil, errors.StringxMalformedInput("extract_spans", RuleUnbalanced, map[string]interface{}{
			"start_delimiter": startDelim,
			"end_delimiter":   endDelim,
			"starts":          len(starts),
			"ends":            len(ends),
		})
	}

	spans := make([]Span, 0, len(starts))
	previousEnd := -1
	for i := range starts {
		inner := starts[i] + len(startDelim)
		if starts[i] >= ends[i] || starts[i] < previousEnd || inner > ends[i] {
			return nil, errors.StringxMalformedInput("extract_spans", RuleOverlapping, map[string]interface{}{
				"region":       i,
				"start":        starts[i],
				"end":          ends[i],
				"previous_end": previousEnd,
			})
		}
		spans = append(spans, Span{Start: inner, End: ends[i]})
		previousEnd = ends[i]
	}
	return spans, nil
}

// ExtractSpans returns the text of every delimited region with escaped
// delimiters unescaped: each escape+delimiter inside a region becomes the
// bare delimiter. Validation is the same as for FindSpans.
func ExtractSpans(haystack, startDelim, endDelim, escape string) ([]string, error) {
	spans, err := FindSpans(haystack, startDelim, endDelim, escape)
	if err != nil {
		return nil, err
	}

	unescape := unescaper(startDelim, endDelim, escape)
	result := make([]string, len(spans))
	for i, span := range spans {
		result[i] = unescape(span.Of(haystack))
	}
	return result, nil
}

// unescaper builds the replacement for escaped delimiters. Without an
// escape token the text is returned unchanged.
func unescaper(startDelim, endDelim, escape string) func(string) string {
	if escape == "" {
		return func(s string) string { return s }
	}

	pairs := []string{escape + startDelim, startDelim}
	if endDelim != startDelim {
		pairs = append(pairs, escape+endDelim, endDelim)
	}
	replacer := strings.NewReplacer(pairs...)
	return replacer.Replace
}

// IsMalformedInput reports whether err was raised for delimiter input that
// violates a pairing rule
func IsMalformedInput(err error) bool {
	return mdwerror.HasCode(err, mdwerror.Code(errors.CodeMalformedInput))
}
