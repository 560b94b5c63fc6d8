// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"carvel.dev/yamlformat/pkg/cmd/ui"
	"carvel.dev/yamlformat/pkg/version"
	"github.com/cppforlife/cobrautil"
	"github.com/spf13/cobra"
)

// acceptsArgsAnnotation marks commands that take positional arguments
const acceptsArgsAnnotation = "yamlformat/accepts-args"

type YamlformatOptions struct {
	// UI overrides the TTY constructed from --debug (used in tests)
	UI ui.UI
}

func NewDefaultYamlformatOptions() *YamlformatOptions {
	return &YamlformatOptions{}
}

func NewDefaultYamlformatCmd() *cobra.Command {
	return NewYamlformatCmd(NewDefaultYamlformatOptions())
}

func NewYamlformatCmd(o *YamlformatOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "yamlformat",
		Version: version.Version,
		Short:   "yamlformat reformats YAML files keeping comments in place",
		Long: `yamlformat reformats YAML files to block style with 4-space indentation.

Full-line comments are kept above the same data lines; inline comments,
blank lines and trailing comments are not preserved.`,
	}

	// Affects children as well
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	// Disable docs header
	cmd.DisableAutoGenTag = true

	fmtOpts := NewFmtOptions()
	fmtOpts.ui = o.UI

	versionOpts := NewVersionOptions()
	versionOpts.ui = o.UI

	cmd.AddCommand(NewFmtCmd(fmtOpts))
	cmd.AddCommand(NewVersionCmd(versionOpts))

	// Reconfigure Commands
	cobrautil.VisitCommands(cmd, cobrautil.ReconfigureCmdWithSubcmd,
		disallowExtraArgs, cobrautil.WrapRunEForCmd(cobrautil.ResolveFlagsForCmd))

	return cmd
}

func disallowExtraArgs(cmd *cobra.Command) {
	if cmd.Annotations[acceptsArgsAnnotation] == "true" {
		return
	}
	cobrautil.DisallowExtraArgs(cmd)
}
