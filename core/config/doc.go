// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config loads TOML and YAML configuration for the
//              segment tools.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2025-03-02 v0.2.0: Documentation for Decode and discovery

/*
Package config provides configuration loading with TOML and YAML support.

Values are addressed with dot-separated paths. When an environment prefix is
set, a variable named PREFIX_SECTION_KEY overrides the file value:

	cfg, err := config.LoadWithOptions("segment.toml", config.LoadOptions{EnvPrefix: "SEGMENT"})
	if err != nil {
		return err
	}
	level := cfg.GetString("log.level", "info") // SEGMENT_LOG_LEVEL wins

Tables are bound to structs with Decode, which re-encodes the sub-tree and
decodes it with the configuration's own format, so toml and yaml struct tags
and encoding.TextUnmarshaler implementations are honoured:

	var p Profile
	err := cfg.Decode("profiles.csv", &p)

Discover searches the working directory and the user configuration
directory for .segment.toml, segment.yaml and similar names.

Errors are *core/error.Error values with codes MISSING_CONFIG,
INVALID_CONFIG or CONFIG_ERROR.
*/
package config
