// File: config.go
// Title: Configuration Management
// Description: Loads TOML or YAML configuration files into a navigable tree
//              with dot-path getters, environment overrides and struct
//              binding of sub-trees.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2025-03-02 v0.2.0: Removed file watching, added Decode and Keys

package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/commons/core/error"
	mdwerrors "github.com/msto63/commons/core/errors"
)

// Format represents the configuration file format
type Format int

const (
	FormatAuto Format = iota
	FormatTOML
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "auto"
	}
}

// Config holds a parsed configuration tree
type Config struct {
	mu        sync.RWMutex
	data      map[string]interface{}
	format    Format
	filePath  string
	envPrefix string
}

// LoadOptions controls how a configuration file is loaded
type LoadOptions struct {
	Format    Format                 // FormatAuto detects from the extension
	EnvPrefix string                 // prefix for environment overrides, e.g. "SEGMENT"
	Defaults  map[string]interface{} // top-level defaults merged under the file data
}

// Load loads configuration from a file, detecting the format by extension
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{})
}

// LoadWithOptions loads configuration from a file with options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		code := mdwerror.CodeConfigError
		if os.IsNotExist(err) {
			code = mdwerror.CodeMissingConfig
		}
		return nil, mdwerrors.ConfigError("load", code, err, map[string]interface{}{
			"path": filePath,
		})
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	data, err := parseContent(content, format)
	if err != nil {
		return nil, mdwerrors.ConfigError("load", mdwerror.CodeInvalidConfig, err, map[string]interface{}{
			"path":   filePath,
			"format": format.String(),
		})
	}

	if options.Defaults != nil {
		data = mergeDefaults(data, options.Defaults)
	}

	return &Config{
		data:      data,
		format:    format,
		filePath:  filePath,
		envPrefix: options.EnvPrefix,
	}, nil
}

// LoadFromString loads configuration from a string with specified format
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	data, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, mdwerrors.ConfigError("load_string", mdwerror.CodeInvalidConfig, err, map[string]interface{}{
			"format": format.String(),
		})
	}

	return &Config{data: data, format: format}, nil
}

// Empty returns a configuration without any values. Getters fall back to
// their defaults and environment overrides.
func Empty(envPrefix string) *Config {
	return &Config{
		data:      make(map[string]interface{}),
		format:    FormatTOML,
		envPrefix: envPrefix,
	}
}

// WithEnvPrefix returns the same configuration reading overrides from
// variables named PREFIX_SECTION_KEY
func (c *Config) WithEnvPrefix(prefix string) *Config {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.envPrefix = prefix
	return c
}

// detectFormat determines the configuration format from file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// parseContent parses configuration content based on format
func parseContent(content []byte, format Format) (map[string]interface{}, error) {
	data := make(map[string]interface{})

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, mdwerror.Wrap(err, "TOML parse error").
				WithCode(mdwerror.CodeInvalidFormat).
				WithOperation("config.parseContent")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, mdwerror.Wrap(err, "YAML parse error").
				WithCode(mdwerror.CodeInvalidFormat).
				WithOperation("config.parseContent")
		}
		if data == nil {
			data = make(map[string]interface{})
		}
	default:
		return nil, mdwerror.New(fmt.Sprintf("unsupported format: %s", format)).
			WithCode(mdwerror.CodeInvalidFormat).
			WithOperation("config.parseContent")
	}

	return data, nil
}

// mergeDefaults merges default values into configuration data
func mergeDefaults(data, defaults map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{}, len(defaults)+len(data))
	for k, v := range defaults {
		result[k] = v
	}
	for k, v := range data {
		result[k] = v
	}
	return result
}

// Format returns the format the configuration was parsed with
func (c *Config) Format() Format {
	return c.format
}

// FilePath returns the file the configuration was loaded from, if any
func (c *Config) FilePath() string {
	return c.filePath
}

// GetString returns a string configuration value with optional default
func (c *Config) GetString(key string, defaultValue ...string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue, ok := c.getEnvValue(key); ok {
		return envValue
	}

	switch v := c.getValue(key).(type) {
	case string:
		return v
	case nil:
	default:
		return fmt.Sprintf("%v", v)
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return ""
}

// GetInt returns an integer configuration value with optional default
func (c *Config) GetInt(key string, defaultValue ...int) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue, ok := c.getEnvValue(key); ok {
		if i, err := strconv.Atoi(envValue); err == nil {
			return i
		}
	}

	switch v := c.getValue(key).(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}

// GetBool returns a boolean configuration value with optional default
func (c *Config) GetBool(key string, defaultValue ...bool) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue, ok := c.getEnvValue(key); ok {
		if b, err := strconv.ParseBool(envValue); err == nil {
			return b
		}
	}

	switch v := c.getValue(key).(type) {
	case bool:
		return v
	case string:
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return false
}

// GetStringSlice returns a string slice configuration value. Environment
// overrides are comma separated.
func (c *Config) GetStringSlice(key string, defaultValue ...[]string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue, ok := c.getEnvValue(key); ok {
		parts := strings.Split(envValue, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}

	switch v := c.getValue(key).(type) {
	case []string:
		return append([]string(nil), v...)
	case []interface{}:
		result := make([]string, 0, len(v))
		for _, item := range v {
			result = append(result, fmt.Sprintf("%v", item))
		}
		return result
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return nil
}

// Has checks if a configuration key exists
func (c *Config) Has(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.getValue(key) != nil
}

// Keys returns the sorted child keys of the table at key. An empty key
// lists the top-level keys.
func (c *Config) Keys(key string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	table := c.data
	if key != "" {
		sub, ok := c.getValue(key).(map[string]interface{})
		if !ok {
			return nil
		}
		table = sub
	}

	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Set sets a configuration value (runtime only, not persisted)
func (c *Config) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := strings.Split(key, ".")
	current := c.data
	for _, k := range keys[:len(keys)-1] {
		next, ok := current[k].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			current[k] = next
		}
		current = next
	}
	current[keys[len(keys)-1]] = value
}

// Decode binds the sub-tree at key into target using the decoder of the
// configuration's own format, so toml or yaml struct tags apply.
func (c *Config) Decode(key string, target interface{}) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var sub interface{} = c.data
	if key != "" {
		sub = c.getValue(key)
		if sub == nil {
			return mdwerrors.ConfigError("decode", mdwerror.CodeMissingConfig, nil, map[string]interface{}{
				"key": key,
			})
		}
	}

	var err error
	switch c.format {
	case FormatYAML:
		var raw []byte
		if raw, err = yaml.Marshal(sub); err == nil {
			err = yaml.Unmarshal(raw, target)
		}
	default:
		var buf bytes.Buffer
		table, ok := sub.(map[string]interface{})
		if !ok {
			return mdwerrors.ConfigError("decode", mdwerror.CodeInvalidConfig, nil, map[string]interface{}{
				"key":    key,
				"reason": "not a table",
			})
		}
		if err = toml.NewEncoder(&buf).Encode(table); err == nil {
			_, err = toml.NewDecoder(&buf).Decode(target)
		}
	}

	if err != nil {
		return mdwerrors.ConfigError("decode", mdwerror.CodeInvalidConfig, err, map[string]interface{}{
			"key":    key,
			"format": c.format.String(),
		})
	}
	return nil
}

// getValue retrieves a configuration value by dot-separated key
func (c *Config) getValue(key string) interface{} {
	current := c.data
	keys := strings.Split(key, ".")

	for i, k := range keys {
		if i == len(keys)-1 {
			return current[k]
		}
		next, ok := current[k].(map[string]interface{})
		if !ok {
			return nil
		}
		current = next
	}
	return nil
}

// getEnvValue looks up the environment override for a key. Without a
// prefix no overrides are consulted.
func (c *Config) getEnvValue(key string) (string, bool) {
	if c.envPrefix == "" {
		return "", false
	}
	value, ok := os.LookupEnv(c.formatEnvKey(key))
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// formatEnvKey converts a config key to environment variable format:
// log.level with prefix SEGMENT becomes SEGMENT_LOG_LEVEL
func (c *Config) formatEnvKey(key string) string {
	envKey := strings.ToUpper(strings.NewReplacer(".", "_", "-", "_").Replace(key))
	return strings.ToUpper(c.envPrefix) + "_" + envKey
}
