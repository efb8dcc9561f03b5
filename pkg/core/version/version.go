// ============================================================================
// commons - Escape-aware text segmentation
// ============================================================================
//
// Package:     version
// Description: Release versions of the library and the segment CLI
// Author:      msto63
// Created:     2025-03-02
// License:     MIT
// ============================================================================

package version

import "github.com/msto63/commons/utils/versionx"

// Release versions
const (
	// Library is the version of the segmentation packages. Profiles declare
	// a min_version that is checked against it.
	Library = "1.2.0"

	// CLI is the version of the segment command
	CLI = "1.2.0"
)

// Current returns the library version as a comparable value
func Current() versionx.Version {
	return versionx.MustParse(Library)
}

// Of returns the version of a named component; unknown names report the
// library version
func Of(name string) string {
	switch name {
	case "segment", "cli":
		return CLI
	default:
		return Library
	}
}
