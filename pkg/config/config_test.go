// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"carvel.dev/yamlformat/pkg/config"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte(""), "empty.toml")
	require.NoError(t, err)
	require.Equal(t, []string{"yml", "yaml"}, cfg.Extensions)
	require.Empty(t, cfg.RequiredVersion)
}

func TestParseValues(t *testing.T) {
	data := `
extensions = [".yml", "YAML", "yml.tpl"]
required_version = ">= 0.2.0, < 1.0.0"
`
	cfg, err := config.Parse([]byte(data), "cfg.toml")
	require.NoError(t, err)
	require.Equal(t, []string{"yml", "YAML", "yml.tpl"}, cfg.Extensions)
	require.Equal(t, ">= 0.2.0, < 1.0.0", cfg.RequiredVersion)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := config.Parse([]byte("indent = 2\n"), "cfg.toml")
	require.EqualError(t, err, "Parsing config file 'cfg.toml': Unknown keys: indent")

	_, err = config.Parse([]byte("extension = [\"yml\"]\nindent = 2\n"), "cfg.toml")
	require.EqualError(t, err, "Parsing config file 'cfg.toml': Unknown keys: extension (did you mean 'extensions'?), indent")
}

func TestParseRejectsInvalidValues(t *testing.T) {
	_, err := config.Parse([]byte("extensions = []\n"), "cfg.toml")
	require.EqualError(t, err, "Validating config file 'cfg.toml': Expected 'extensions' to have at least one value")

	_, err = config.Parse([]byte(`extensions = [" "]`), "cfg.toml")
	require.EqualError(t, err, "Validating config file 'cfg.toml': Expected 'extensions' to not contain empty values")

	_, err = config.Parse([]byte(`required_version = "not a version"`), "cfg.toml")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Parsing 'required_version'")

	_, err = config.Parse([]byte("extensions = \n"), "cfg.toml")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Parsing config file 'cfg.toml'")
}

func TestCheckVersion(t *testing.T) {
	cfg := config.Config{RequiredVersion: ">= 0.2.0"}

	require.NoError(t, cfg.CheckVersion("0.2.1"))
	require.NoError(t, cfg.CheckVersion("develop"))
	require.EqualError(t, cfg.CheckVersion("0.1.0"), "Expected yamlformat version to satisfy '>= 0.2.0', but was '0.1.0'")

	require.NoError(t, config.Default().CheckVersion("0.0.1"))
}

func TestLoadFile(t *testing.T) {
	cfg, err := config.LoadFile("")
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)

	path := filepath.Join(t.TempDir(), "yamlformat.toml")
	require.NoError(t, os.WriteFile(path, []byte(`extensions = ["conf"]`), 0600))

	cfg, err = config.LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, []string{"conf"}, cfg.Extensions)

	_, err = config.LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "Reading config file")
}
