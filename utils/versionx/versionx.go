// File: versionx.go
// Title: Dotted Numeric Version Values
// Description: Immutable version value made of non-negative integer
//              components with ordering, upgrading and text encoding.
// Author: msto63
// Version: v0.2.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.2.0: Initial implementation

package versionx

import (
	"strconv"
	"strings"

	"github.com/msto63/commons/core/errors"
)

// Version is a dotted list of non-negative integers such as 1.8.2.
// Trailing zero components carry no meaning, so 2, 2.0 and 2.0.0 are the
// same version. The zero value is version 0.
type Version struct {
	components []int
}

// New creates a version from its components. Negative components are
// rejected.
func New(components ...int) (Version, error) {
	for i, c := range components {
		if c < 0 {
			return Version{}, errors.OutOfRange(errors.ModuleVersionx, "new", c, 0, "unbounded").
				WithDetail("position", i)
		}
	}
	return Version{components: trim(components)}, nil
}

// MustNew is like New but panics on negative components
func MustNew(components ...int) Version {
	v, err := New(components...)
	if err != nil {
		panic(err)
	}
	return v
}

// Parse parses a dot separated version such as "1.8" or "v2.0.1". A
// leading "v" is accepted.
func Parse(s string) (Version, error) {
	text := strings.TrimPrefix(strings.TrimSpace(s), "v")
	if text == "" {
		return Version{}, errors.VersionxParseError(s)
	}

	parts := strings.Split(text, ".")
	components := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || strings.HasPrefix(part, "+") {
			return Version{}, errors.VersionxParseError(s)
		}
		components[i] = n
	}
	return Version{components: trim(components)}, nil
}

// MustParse is like Parse but panics if the string cannot be parsed
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

func trim(components []int) []int {
	n := len(components)
	for n > 0 && components[n-1] == 0 {
		n--
	}
	if n == 0 {
		return nil
	}
	result := make([]int, n)
	copy(result, components[:n])
	return result
}

// component returns the i-th component, 0 beyond the stored ones
func (v Version) component(i int) int {
	if i < len(v.components) {
		return v.components[i]
	}
	return 0
}

// Components returns a copy of the significant components
func (v Version) Components() []int {
	result := make([]int, len(v.components))
	copy(result, v.components)
	return result
}

// Compare returns -1, 0 or +1 depending on whether v is lower than, equal
// to or higher than other
func (v Version) Compare(other Version) int {
	n := len(v.components)
	if len(other.components) > n {
		n = len(other.components)
	}
	for i := 0; i < n; i++ {
		a, b := v.component(i), other.component(i)
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
	}
	return 0
}

// Equal reports whether both versions are the same
func (v Version) Equal(other Version) bool {
	return v.Compare(other) == 0
}

// Less reports whether v is lower than other
func (v Version) Less(other Version) bool {
	return v.Compare(other) < 0
}

// AtLeast reports whether v is equal to or higher than minimum
func (v Version) AtLeast(minimum Version) bool {
	return v.Compare(minimum) >= 0
}

// Upgrade increments the component at position and drops every later
// component: 3.5.8 upgraded at 1 is 3.6, at 3 it is 3.5.8.1.
func (v Version) Upgrade(position int) (Version, error) {
	if position < 0 {
		return Version{}, errors.OutOfRange(errors.ModuleVersionx, "upgrade", position, 0, "unbounded")
	}

	components := make([]int, position+1)
	copy(components, v.components)
	components[position]++
	return Version{components: trim(components)}, nil
}

// String returns the dotted representation; the zero version is "0"
func (v Version) String() string {
	if len(v.components) == 0 {
		return "0"
	}
	parts := make([]string, len(v.components))
	for i, c := range v.components {
		parts[i] = strconv.Itoa(c)
	}
	return strings.Join(parts, ".")
}

// MarshalText implements encoding.TextMarshaler
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so versions decode
// directly from TOML, YAML and JSON strings
func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
