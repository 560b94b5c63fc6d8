// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"strings"

	"carvel.dev/yamlformat/pkg/spell"
	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-version"
)

var (
	DefaultExtensions = []string{"yml", "yaml"}

	knownKeys = []string{"extensions", "required_version"}
)

// Config is read from a TOML file, for example:
//
//	extensions = ["yml", "yaml", "yml.tpl"]
//	required_version = ">= 0.2.0"
type Config struct {
	Extensions      []string `toml:"extensions"`
	RequiredVersion string   `toml:"required_version"`
}

func Default() Config {
	return Config{Extensions: append([]string{}, DefaultExtensions...)}
}

// LoadFile returns default config when path is empty.
func LoadFile(path string) (Config, error) {
	if len(path) == 0 {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("Reading config file '%s': %s", path, err)
	}

	return Parse(data, path)
}

func Parse(data []byte, name string) (Config, error) {
	cfg := Default()

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("Parsing config file '%s': %s", name, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		var keys []string
		for _, key := range undecoded {
			if hint := spell.Nearest(key.String(), knownKeys); len(hint) > 0 {
				keys = append(keys, fmt.Sprintf("%s (did you mean '%s'?)", key, hint))
				continue
			}
			keys = append(keys, key.String())
		}
		return Config{}, fmt.Errorf("Parsing config file '%s': Unknown keys: %s", name, strings.Join(keys, ", "))
	}

	err = cfg.normalize()
	if err != nil {
		return Config{}, fmt.Errorf("Validating config file '%s': %s", name, err)
	}

	return cfg, nil
}

func (c *Config) normalize() error {
	if len(c.Extensions) == 0 {
		return fmt.Errorf("Expected 'extensions' to have at least one value")
	}

	for i, ext := range c.Extensions {
		ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
		if len(ext) == 0 {
			return fmt.Errorf("Expected 'extensions' to not contain empty values")
		}
		c.Extensions[i] = ext
	}

	if len(c.RequiredVersion) > 0 {
		_, err := version.NewConstraint(c.RequiredVersion)
		if err != nil {
			return fmt.Errorf("Parsing 'required_version': %s", err)
		}
	}

	return nil
}

// CheckVersion verifies that binaryVersion satisfies required_version.
// Development builds (non-semver versions) satisfy any constraint.
func (c Config) CheckVersion(binaryVersion string) error {
	if len(c.RequiredVersion) == 0 {
		return nil
	}

	constraints, err := version.NewConstraint(c.RequiredVersion)
	if err != nil {
		return fmt.Errorf("Parsing 'required_version': %s", err)
	}

	current, err := version.NewVersion(binaryVersion)
	if err != nil {
		return nil
	}

	if !constraints.Check(current) {
		return fmt.Errorf("Expected yamlformat version to satisfy '%s', but was '%s'", c.RequiredVersion, binaryVersion)
	}

	return nil
}
