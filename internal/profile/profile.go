// File: profile.go
// Title: Segmentation Profiles
// Description: A profile names one segmentation operation together with its
//              delimiters, pattern and escape token. Profiles are validated
//              before they run and produce a uniform Result.
// Author: msto63
// Version: v0.2.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.2.0: Initial implementation

package profile

import (
	"fmt"

	mdwerror "github.com/msto63/commons/core/error"
	"github.com/msto63/commons/core/errors"
	"github.com/msto63/commons/pkg/core/version"
	"github.com/msto63/commons/utils/stringx"
	"github.com/msto63/commons/utils/versionx"
)

// Operation identifies a segmentation function
type Operation string

const (
	OpScan    Operation = "scan"
	OpExtract Operation = "extract"
	OpSplit   Operation = "split"
	OpRetain  Operation = "retain"
	OpChop    Operation = "chop"
)

// Operations lists every supported operation
var Operations = []Operation{OpScan, OpExtract, OpSplit, OpRetain, OpChop}

var aliases = map[string]Operation{
	"scan":             OpScan,
	"find-occurrences": OpScan,
	"extract":          OpExtract,
	"extract-spans":    OpExtract,
	"split":            OpSplit,
	"split-inclusive":  OpSplit,
	"retain":           OpRetain,
	"split-retaining":  OpRetain,
	"chop":             OpChop,
}

// ParseOperation resolves an operation name. Names are matched in
// kebab-case, so "splitRetaining" and "split_retaining" both select retain.
func ParseOperation(name string) (Operation, error) {
	if op, ok := aliases[stringx.ToKebabCase(name)]; ok {
		return op, nil
	}
	return "", errors.NewErrorBuilder(errors.ModuleProfile).
		Operation("parse_operation").
		Messagef("unknown operation %q", name).
		Code(errors.CodeProfileUnknownOperation).
		Detail("operation", name).
		Severity(mdwerror.SeverityLow).
		Build()
}

// Profile is a named segmentation operation
type Profile struct {
	Name        string           `toml:"-" yaml:"-"`
	Description string           `toml:"description" yaml:"description"`
	Operation   string           `toml:"operation" yaml:"operation"`
	Needle      string           `toml:"needle" yaml:"needle"`
	Start       string           `toml:"start" yaml:"start"`
	End         string           `toml:"end" yaml:"end"`
	Escape      string           `toml:"escape" yaml:"escape"`
	Delimiters  []string         `toml:"delimiters" yaml:"delimiters"`
	Pattern     string           `toml:"pattern" yaml:"pattern"`
	MinVersion  versionx.Version `toml:"min_version" yaml:"min_version"`
}

// Validate checks that the operation is known, that its required fields
// are set, that the pattern compiles and that the library satisfies
// MinVersion.
func (p Profile) Validate() error {
	op, err := ParseOperation(p.Operation)
	if err != nil {
		return mdwerror.Wrap(err, fmt.Sprintf("profile %q", p.Name)).WithDetail("profile", p.Name)
	}

	switch op {
	case OpScan:
		if p.Needle == "" {
			return p.invalid("needle", p.Needle, "scan requires a non-empty needle")
		}
	case OpExtract:
		if p.Start == "" {
			return p.invalid("start", p.Start, "extract requires a start delimiter")
		}
	case OpSplit:
		if len(p.delimiters()) == 0 {
			return p.invalid("delimiters", p.Delimiters, "split requires at least one non-empty delimiter")
		}
	case OpRetain, OpChop:
		if p.Pattern == "" {
			return p.invalid("pattern", p.Pattern, string(op)+" requires a pattern")
		}
		if _, err := stringx.CompilePattern(p.Pattern); err != nil {
			return mdwerror.Wrap(err, fmt.Sprintf("profile %q", p.Name)).WithDetail("profile", p.Name)
		}
	}

	if current := version.Current(); !current.AtLeast(p.MinVersion) {
		return errors.NewErrorBuilder(errors.ModuleProfile).
			Operation("validate").
			Messagef("profile %q requires version %s, running %s", p.Name, p.MinVersion, current).
			Code(errors.CodeProfileIncompatible).
			Detail("profile", p.Name).
			Detail("min_version", p.MinVersion.String()).
			Detail("version", current.String()).
			Severity(mdwerror.SeverityHigh).
			Build()
	}
	return nil
}

func (p Profile) invalid(field string, value interface{}, reason string) error {
	return errors.ValidationFailed(errors.ModuleProfile, field, value, reason).
		WithDetail("profile", p.Name)
}

// delimiters returns the non-empty, interned delimiters
func (p Profile) delimiters() []string {
	result := make([]string, 0, len(p.Delimiters))
	for _, d := range p.Delimiters {
		if d != "" {
			result = append(result, stringx.Intern(d))
		}
	}
	return result
}

// end returns the end delimiter, defaulting to the start delimiter
func (p Profile) end() string {
	return stringx.FirstNonEmpty(p.End, p.Start)
}

// Item is one element of a Result with its byte offset in the input
type Item struct {
	Offset int    `json:"offset"`
	Value  string `json:"value"`
}

// Result is the output of running a profile
type Result struct {
	Profile   string    `json:"profile,omitempty"`
	Operation Operation `json:"operation"`
	Items     []Item    `json:"items"`
}

// Values returns the item values in order
func (r *Result) Values() []string {
	values := make([]string, len(r.Items))
	for i, item := range r.Items {
		values[i] = item.Value
	}
	return values
}

// Offsets returns the item offsets in order
func (r *Result) Offsets() []int {
	offsets := make([]int, len(r.Items))
	for i, item := range r.Items {
		offsets[i] = item.Offset
	}
	return offsets
}

// Run validates the profile and applies it to input
func (p Profile) Run(input string) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	op, _ := ParseOperation(p.Operation)
	result := &Result{Profile: p.Name, Operation: op}

	switch op {
	case OpScan:
		for _, offset := range stringx.FindOccurrences(input, p.Needle, p.Escape) {
			result.Items = append(result.Items, Item{Offset: offset, Value: p.Needle})
		}

	case OpExtract:
		spans, err := stringx.FindSpans(input, p.Start, p.end(), p.Escape)
		if err != nil {
			return nil, err
		}
		values, err := stringx.ExtractSpans(input, p.Start, p.end(), p.Escape)
		if err != nil {
			return nil, err
		}
		for i, span := range spans {
			result.Items = append(result.Items, Item{Offset: span.Start, Value: values[i]})
		}

	case OpSplit:
		result.Items = contiguous(stringx.SplitInclusive(input, p.delimiters(), p.Escape))

	case OpRetain:
		segments, err := stringx.SplitRetaining(input, p.Pattern)
		if err != nil {
			return nil, err
		}
		result.Items = contiguous(segments)

	case OpChop:
		segments, err := stringx.Chop(input, p.Pattern)
		if err != nil {
			return nil, err
		}
		result.Items = contiguous(segments)
	}

	if result.Items == nil {
		result.Items = []Item{}
	}
	return result, nil
}

// contiguous assigns offsets to segments that partition the input
func contiguous(segments []string) []Item {
	items := make([]Item, len(segments))
	offset := 0
	for i, s := range segments {
		items[i] = Item{Offset: offset, Value: s}
		offset += len(s)
	}
	return items
}
