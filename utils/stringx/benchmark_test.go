// File: benchmark_test.go
// Title: Performance Benchmarks for StringX Functions
// Description: Benchmarks for the scanner, extractor and splitters on
//              synthetic CSV-like input.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial benchmark implementation
// - 2025-03-02 v0.2.0: Segmentation benchmarks

package stringx

import (
	"regexp"
	"strings"
	"testing"
)

var benchInput = strings.Repeat(`"field one","field \"two\"",plain;next`+"\n", 200)

func BenchmarkFindOccurrences(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = FindOccurrences(benchInput, `"`, `\`)
	}
}

func BenchmarkExtractSpans(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := ExtractSpans(benchInput, `"`, `"`, `\`); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSplitInclusive(b *testing.B) {
	delimiters := []string{",", ";", "\n"}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = SplitInclusive(benchInput, delimiters, `\`)
	}
}

func BenchmarkSplitRetaining(b *testing.B) {
	b.Run("cached pattern", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := SplitRetaining(benchInput, "[,;\n]"); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("compiled regexp", func(b *testing.B) {
		re := regexp.MustCompile("[,;\n]")
		for i := 0; i < b.N; i++ {
			_ = SplitRetainingRegexp(benchInput, re)
		}
	})
}

func BenchmarkCountSubstringOverlap(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = CountSubstringOverlap(benchInput, "e")
	}
}
