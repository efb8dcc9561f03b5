// File: discovery.go
// Title: Configuration File Discovery
// Description: Searches a list of directories for the first configuration
//              file matching the known base names and extensions.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file discovery
// - 2025-03-02 v0.2.0: Optional discovery returning an empty configuration

package config

import (
	"os"
	"path/filepath"

	mdwerror "github.com/msto63/commons/core/error"
	mdwerrors "github.com/msto63/commons/core/errors"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string // Directories to search for config files
	Filenames  []string // Base filenames to look for (without extension)
	Extensions []string // File extensions to try
	EnvPrefix  string   // Environment variable prefix for overrides
	Required   bool     // Whether finding a config file is required
}

// DefaultDiscoveryOptions returns the search order used by the segment CLI:
// the working directory first, then the user configuration directory.
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "segment"))
	}
	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{".segment", "segment"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  "SEGMENT",
	}
}

// Discover loads the first configuration file found. When nothing is found
// and the file is not required, an empty configuration is returned.
func Discover(options DiscoveryOptions) (*Config, error) {
	path, ok := FindConfigFile(options)
	if ok {
		return LoadWithOptions(path, LoadOptions{EnvPrefix: options.EnvPrefix})
	}

	if options.Required {
		return nil, mdwerrors.ConfigError("discover", mdwerror.CodeMissingConfig, nil, map[string]interface{}{
			"search_paths": ListPossibleConfigFiles(options),
		})
	}
	return Empty(options.EnvPrefix), nil
}

// FindConfigFile returns the first existing candidate path
func FindConfigFile(options DiscoveryOptions) (string, bool) {
	for _, candidate := range ListPossibleConfigFiles(options) {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
	}
	return "", false
}

// ListPossibleConfigFiles returns every candidate path in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	paths := make([]string, 0, len(options.Paths)*len(options.Filenames)*len(options.Extensions))
	for _, dir := range options.Paths {
		for _, name := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(dir, name+ext))
			}
		}
	}
	return paths
}
