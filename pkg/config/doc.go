// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

// Package config loads optional TOML configuration for the fmt command.
package config
