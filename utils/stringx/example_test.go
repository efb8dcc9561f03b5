// File: example_test.go
// Title: Example Tests for StringX Package Documentation
// Description: Executable examples for the segmentation functions.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial example implementation
// - 2025-03-02 v0.2.0: Examples for scanning, extraction and splitting

package stringx_test

import (
	"fmt"

	"github.com/msto63/commons/utils/stringx"
)

func ExampleFindOccurrences() {
	fmt.Println(stringx.FindOccurrences(`a\,b,c`, ",", `\`))
	fmt.Println(stringx.FindOccurrences("aaaa", "aa", ""))
	// Output:
	// [4]
	// [0 1 2]
}

func ExampleExtractSpans() {
	quoted, _ := stringx.ExtractSpans(`"alpha","be\"ta"`, `"`, `"`, `\`)
	fmt.Printf("%q\n", quoted)

	groups, _ := stringx.ExtractSpans("(foo)(bar)", "(", ")", `\`)
	fmt.Printf("%q\n", groups)

	_, err := stringx.ExtractSpans(`"alpha`, `"`, `"`, `\`)
	fmt.Println(stringx.IsMalformedInput(err))
	// Output:
	// ["alpha" "be\"ta"]
	// ["foo" "bar"]
	// true
}

func ExampleSplitInclusive() {
	fmt.Printf("%q\n", stringx.SplitInclusive("a,b;c", []string{",", ";"}, ""))
	fmt.Printf("%q\n", stringx.SplitInclusiveDefault(`x\;y;z`, []string{";"}))
	// Output:
	// ["a," "b;" "c"]
	// ["x\\;y;" "z"]
}

func ExampleSplitRetaining() {
	parts, _ := stringx.SplitRetaining("a,b,,,c", ",")
	fmt.Printf("%q\n", parts)
	// Output:
	// ["a" "," "b" "," "" "," "" "," "c"]
}

func ExampleChop() {
	parts, _ := stringx.Chop("key = value;", `\s*[=;]\s*`)
	fmt.Printf("%q\n", parts)
	// Output:
	// ["key" " = " "value" ";" ""]
}

func ExampleSafeSubstring() {
	fmt.Println(stringx.SafeSubstring("Hello World!", 6, 42))
	// Output:
	// World!
}
