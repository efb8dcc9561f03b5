// File: split.go
// Title: Delimiter Retaining Splitters
// Description: Splitters that keep every byte of the input: the inclusive
//              multi-delimiter splitter and the regular expression based
//              retaining splitter and chopper.
// Author: msto63
// Version: v0.2.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.2.0: Initial implementation

package stringx

import (
	"regexp"
	"sort"
)

// DefaultEscape is the escape token used by SplitInclusiveDefault
const DefaultEscape = `\`

// boundary is an unescaped delimiter match found while splitting
type boundary struct {
	offset int
	length int
	index  int
}

// SplitInclusive splits haystack after every unescaped occurrence of any of
// the delimiters, so each segment but the last ends with the delimiter that
// terminated it. The last segment holds the remaining text and may be
// empty. Joining the segments yields haystack.
//
// When matches start at the same offset the delimiter listed first wins.
// Matches that begin inside an already consumed delimiter are ignored.
// Empty delimiters are skipped.
func SplitInclusive(haystack string, delimiters []string, escape string) []string {
	var bounds []boundary
	for i, delim := range delimiters {
		if delim == "" {
			continue
		}
		for _, offset := range FindOccurrences(haystack, delim, escape) {
			bounds = append(bounds, boundary{offset: offset, length: len(delim), index: i})
		}
	}

	sort.SliceStable(bounds, func(a, b int) bool {
		if bounds[a].offset != bounds[b].offset {
			return bounds[a].offset < bounds[b].offset
		}
		return bounds[a].index < bounds[b].index
	})

	segments := make([]string, 0, len(bounds)+1)
	cursor := 0
	for _, b := range bounds {
		if b.offset < cursor {
			continue
		}
		end := b.offset + b.length
		segments = append(segments, haystack[cursor:end])
		cursor = end
	}
	return append(segments, haystack[cursor:])
}

// SplitInclusiveDefault is SplitInclusive with a backslash escape token
func SplitInclusiveDefault(haystack string, delimiters []string) []string {
	return SplitInclusive(haystack, delimiters, DefaultEscape)
}

// SplitRetaining splits haystack around matches of pattern and keeps each
// match as its own element: gap, match, gap, ..., gap. Empty gaps between
// adjacent matches are kept. Without a match the result is [haystack].
func SplitRetaining(haystack, pattern string) ([]string, error) {
	re, err := CompilePattern(pattern)
	if err != nil {
		return nil, err
	}
	return SplitRetainingRegexp(haystack, re), nil
}

// SplitRetainingRegexp is SplitRetaining for a compiled expression
func SplitRetainingRegexp(haystack string, re *regexp.Regexp) []string {
	return alternate(haystack, re)
}

// Chop cuts haystack into alternating non-matching and matching pieces of
// pattern. The final element is the text after the last match, which is
// empty exactly when the last match reaches the end of haystack.
func Chop(haystack, pattern string) ([]string, error) {
	re, err := CompilePattern(pattern)
	if err != nil {
		return nil, err
	}
	return ChopRegexp(haystack, re), nil
}

// ChopRegexp is Chop for a compiled expression
func ChopRegexp(haystack string, re *regexp.Regexp) []string {
	return alternate(haystack, re)
}

// alternate emits the gaps and matches of re's leftmost non-overlapping
// matches in order, ending with the remainder after the last match
func alternate(haystack string, re *regexp.Regexp) []string {
	matches := re.FindAllStringIndex(haystack, -1)
	segments := make([]string, 0, 2*len(matches)+1)

	last := 0
	for _, m := range matches {
		segments = append(segments, haystack[last:m[0]], haystack[m[0]:m[1]])
		last = m[1]
	}
	return append(segments, haystack[last:])
}
