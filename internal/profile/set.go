// File: set.go
// Title: Profile Set
// Description: Loads the [profiles] table of a configuration into named
//              profiles and runs them with logging.
// Author: msto63
// Version: v0.2.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.2.0: Initial implementation

package profile

import (
	"sort"

	"github.com/msto63/commons/core/config"
	"github.com/msto63/commons/core/errors"
	"github.com/msto63/commons/core/log"
)

// ConfigKey is the configuration table holding the profiles
const ConfigKey = "profiles"

// Set holds the configured profiles by name
type Set struct {
	profiles map[string]Profile
	logger   *log.Logger
}

// NewSet creates a set from the given profiles. A nil logger uses the
// package default.
func NewSet(logger *log.Logger, profiles ...Profile) *Set {
	if logger == nil {
		logger = log.GetDefault()
	}
	s := &Set{
		profiles: make(map[string]Profile, len(profiles)),
		logger:   logger.WithName("profile"),
	}
	for _, p := range profiles {
		s.profiles[p.Name] = p
	}
	return s
}

// Load decodes every entry of the profiles table. Profiles are not
// validated here; invalid ones fail when run or when ValidateAll is called.
func Load(cfg *config.Config, logger *log.Logger) (*Set, error) {
	s := NewSet(logger)
	for _, name := range cfg.Keys(ConfigKey) {
		var p Profile
		if err := cfg.Decode(ConfigKey+"."+name, &p); err != nil {
			return nil, err
		}
		p.Name = name
		s.profiles[name] = p
	}
	s.logger.Debug("profiles loaded", log.Int("count", len(s.profiles)))
	return s, nil
}

// Names returns the sorted profile names
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.profiles))
	for name := range s.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns the profiles sorted by name
func (s *Set) List() []Profile {
	names := s.Names()
	result := make([]Profile, len(names))
	for i, name := range names {
		result[i] = s.profiles[name]
	}
	return result
}

// Get returns the profile with the given name
func (s *Set) Get(name string) (Profile, error) {
	p, ok := s.profiles[name]
	if !ok {
		return Profile{}, errors.NotFound(errors.ModuleProfile, "get", name).
			WithDetail("available", s.Names())
	}
	return p, nil
}

// ValidateAll validates every profile and returns the failures by name
func (s *Set) ValidateAll() map[string]error {
	failures := make(map[string]error)
	for name, p := range s.profiles {
		if err := p.Validate(); err != nil {
			failures[name] = err
		}
	}
	return failures
}

// Run executes the named profile on input
func (s *Set) Run(name, input string) (*Result, error) {
	p, err := s.Get(name)
	if err != nil {
		return nil, err
	}
	return RunLogged(s.logger, p, input)
}

// RunLogged runs p and logs its duration and item count at debug level
func RunLogged(logger *log.Logger, p Profile, input string) (*Result, error) {
	timer := logger.StartTimer(p.Operation).
		WithField("profile", p.Name).
		WithField("input_bytes", len(input))

	result, err := p.Run(input)
	if err != nil {
		logger.Debug("profile rejected input", log.String("profile", p.Name), log.Err(err))
		return nil, err
	}

	timer.WithField("items", len(result.Items)).Stop()
	return result, nil
}
