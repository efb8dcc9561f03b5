package version

import (
	"regexp"
	"testing"
)

// semverRegex validates semantic versioning format
var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func TestVersionConstants(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{"Library", Library},
		{"CLI", CLI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !semverRegex.MatchString(tt.version) {
				t.Errorf("%s version %q does not match semver format (x.y.z)", tt.name, tt.version)
			}
		})
	}
}

func TestCurrent(t *testing.T) {
	if Current().String() != "1.2" {
		t.Errorf("Current() = %s, want 1.2", Current())
	}
}

func TestOf(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"segment", CLI},
		{"cli", CLI},
		{"stringx", Library},
		{"", Library},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Of(tt.name); result != tt.expected {
				t.Errorf("Of(%q) = %q, want %q", tt.name, result, tt.expected)
			}
		})
	}
}
