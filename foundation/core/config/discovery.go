// File: discovery.go
// Title: Configuration Discovery
// Description: Locates the interpreter configuration file in the working
//              directory or the user's home directory and falls back to the
//              built-in defaults when none exists.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation
// - 2026-10-17 v0.2.0: Dotfile names, optional discovery with defaults

package config

import (
	"os"
	"path/filepath"

	sbmlerror "github.com/msto63/sbml/foundation/core/error"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string // Directories to search
	Filenames  []string // Base filenames without extension
	Extensions []string
	EnvPrefix  string
	Defaults   map[string]interface{}
	Required   bool
}

// DefaultDiscoveryOptions searches ./.sbml.{toml,yaml,yml} then the same
// names in the home directory.
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, home)
	}
	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{".sbml"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  EnvPrefix,
		Defaults:   Defaults(),
	}
}

// Discover finds and loads the first matching configuration file. Without a
// match it returns the defaults, or a NOT_FOUND error when Required is set.
func Discover(options DiscoveryOptions) (*Config, error) {
	path, err := FindConfigFile(options)
	if err == nil {
		cfg, loadErr := LoadWithOptions(path, LoadOptions{
			Format:    FormatAuto,
			EnvPrefix: options.EnvPrefix,
			Defaults:  options.Defaults,
		})
		if loadErr != nil {
			return nil, sbmlerror.Wrap(loadErr, "found config file but failed to load").
				WithOperation("config.Discover").
				WithDetail("configPath", path)
		}
		return cfg, nil
	}

	if options.Required {
		return nil, sbmlerror.Wrap(err, "no configuration file found").
			WithOperation("config.Discover").
			WithDetail("searchPaths", ListPossibleConfigFiles(options))
	}

	return FromMap(options.Defaults, options.EnvPrefix), nil
}

// FindConfigFile searches for a configuration file without loading it
func FindConfigFile(options DiscoveryOptions) (string, error) {
	for _, candidate := range ListPossibleConfigFiles(options) {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", sbmlerror.New("configuration file not found").
		WithCode(sbmlerror.CodeNotFound).
		WithOperation("config.FindConfigFile")
}

// ListPossibleConfigFiles returns every candidate path in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	var paths []string
	for _, dir := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(dir, filename+ext))
			}
		}
	}
	return paths
}
