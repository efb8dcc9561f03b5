// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides escape-aware delimiter segmentation
//              and general string helpers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-03-02 v0.2.0: Segmentation engine

// Package stringx provides escape-aware delimiter segmentation and general
// string helpers.
//
// # Segmentation
//
// The segmentation functions cut a haystack into ordered parts. All offsets
// are byte offsets into the haystack. Delimiters are literal strings, and an
// escape token placed immediately before a delimiter hides it. Escaping is
// textual only: there is no escaping of the escape token itself.
//
//   - FindOccurrences: offsets of every unescaped needle, overlaps included
//   - FindSpans, ExtractSpans: regions between a start and an end delimiter,
//     validated before anything is returned
//   - SplitInclusive: split after every unescaped delimiter, keeping it at
//     the end of its segment
//   - SplitRetaining, Chop: alternate gaps and regular expression matches
//
// Every splitter keeps all input bytes, so joining the segments yields the
// haystack:
//
//	segments := stringx.SplitInclusive("a,b;c", []string{",", ";"}, "")
//	// ["a," "b;" "c"]
//
//	parts, err := stringx.SplitRetaining("a,b,,c", ",")
//	// ["a" "," "b" "," "" "," "c"]
//
// ExtractSpans rejects input whose delimiters cannot be paired. The error is
// a *core/error.Error with code MALFORMED_INPUT and a "rule" detail naming
// the violation; IsMalformedInput tests for it:
//
//	fields, err := stringx.ExtractSpans(`"a","b\"c"`, `"`, `"`, `\`)
//	// ["a" `b"c`]
//
// Patterns given as strings are compiled with Go's RE2 syntax and cached by
// CompilePattern. Compile errors carry the code STRINGX_INVALID_PATTERN.
//
// # Helpers
//
// The remaining functions cover blank checks, padding, truncation, clamped
// substrings (SafeSubstring), chunking, case conversion and normalization.
// They are Unicode aware and count runes, not bytes.
//
// All functions are safe for concurrent use.
package stringx
