// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"strings"
	"time"

	"carvel.dev/yamlformat/pkg/cmd/ui"
	"carvel.dev/yamlformat/pkg/config"
	"carvel.dev/yamlformat/pkg/files"
	"carvel.dev/yamlformat/pkg/version"
	"carvel.dev/yamlformat/pkg/yamlfmt"
	"github.com/k14s/difflib"
	"github.com/spf13/cobra"
)

type FmtOptions struct {
	Files      []string
	Stdout     bool
	Diff       bool
	Check      bool
	ConfigPath string
	Debug      bool

	SymlinkAllowOpts files.SymlinkAllowOpts

	ui ui.UI
}

func NewFmtOptions() *FmtOptions {
	return &FmtOptions{}
}

func NewFmtCmd(o *FmtOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt [paths...]",
		Short: "Format YAML files",
		Long: `Format YAML files and directories in place.

Directories are walked recursively; only files with configured extensions
(yml, yaml by default) are formatted. Use '-' to read from stdin.`,
		Annotations: map[string]string{acceptsArgsAnnotation: "true"},
		RunE:        func(_ *cobra.Command, args []string) error { return o.Run(args) },
	}
	cmd.Flags().StringArrayVarP(&o.Files, "file", "f", nil, "File or directory (ie local path, -) (can be specified multiple times)")
	cmd.Flags().BoolVar(&o.Stdout, "stdout", false, "Print formatted content instead of writing files")
	cmd.Flags().BoolVar(&o.Diff, "diff", false, "Print changes instead of writing files")
	cmd.Flags().BoolVar(&o.Check, "check", false, "Fail if any file is not formatted (files are not written)")
	cmd.Flags().StringVarP(&o.ConfigPath, "config", "c", "", "Path to TOML config file")
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	cmd.Flags().BoolVar(&o.SymlinkAllowOpts.AllowAll, "dangerous-allow-all-symlink-destinations", false,
		"Symlinks to all destinations are allowed")
	cmd.Flags().StringSliceVar(&o.SymlinkAllowOpts.AllowedDstPaths, "allow-symlink-destination", nil,
		"File paths to which symlinks are allowed to point (can be specified multiple times)")
	return cmd
}

func (o *FmtOptions) Run(args []string) error {
	if o.ui == nil {
		o.ui = ui.NewTTY(o.Debug)
	}
	t1 := time.Now()

	defer func() {
		o.ui.Debugf("total: %s\n", time.Now().Sub(t1))
	}()

	paths := append(append([]string{}, o.Files...), args...)
	if len(paths) == 0 {
		return fmt.Errorf("Expected at least one file or directory to be specified (via arguments or --file)")
	}

	cfg, err := config.LoadFile(o.ConfigPath)
	if err != nil {
		return err
	}

	err = cfg.CheckVersion(version.Version)
	if err != nil {
		return err
	}

	srcs, err := files.NewSourcesFromPaths(paths, o.SymlinkAllowOpts)
	if err != nil {
		return err
	}

	formatter := yamlfmt.NewFormatter(o.ui, o.ui, files.DirectTransactions{}, yamlfmt.FormatterOpts{
		Extensions: cfg.Extensions,
		DryRun:     o.Stdout || o.Diff || o.Check,
	})

	var failed, unformatted []string

	// stdin is never written back
	stdinFormatter := yamlfmt.NewFormatter(o.ui, o.ui, files.DirectTransactions{}, yamlfmt.FormatterOpts{
		Extensions: cfg.Extensions,
		DryRun:     true,
	})

	// reject unsupported files before any file is written
	for i, src := range srcs {
		if paths[i] != "-" && !formatter.IsFormattable(src) {
			return fmt.Errorf("Expected file '%s' to have one of extensions: %s",
				src.Path(), strings.Join(cfg.Extensions, ", "))
		}
	}

	for i, src := range srcs {
		var results []yamlfmt.Result

		if paths[i] == "-" {
			o.ui.Notify(yamlfmt.FormatMsgPrefix + src.Path())
			results = append(results, stdinFormatter.FormatFile(src))
		} else {
			results = formatter.Format(src)
		}

		for _, result := range results {
			switch {
			case result.Err != nil:
				failed = append(failed, result.Path)

			case o.Check:
				if result.Changed() {
					unformatted = append(unformatted, result.Path)
					o.ui.Printf("%s\n", result.Path)
				}

			case o.Diff:
				if result.Changed() {
					o.printDiff(result)
				}

			case o.Stdout || paths[i] == "-":
				o.ui.Debugf("### %s\n", result.Path)
				o.ui.Printf("%s", result.Formatted) // no newline

			case result.Changed():
				o.ui.Debugf("formatted '%s'\n", result.Path)
			}
		}
	}

	if len(failed) > 0 {
		return fmt.Errorf("Expected all files to be formatted, but failed to format: %s", strings.Join(failed, ", "))
	}
	if len(unformatted) > 0 {
		return fmt.Errorf("Expected all files to be formatted, but found unformatted: %s", strings.Join(unformatted, ", "))
	}

	return nil
}

func (o *FmtOptions) printDiff(result yamlfmt.Result) {
	o.ui.Printf("--- %s\n", result.Path)
	o.ui.Printf("%s\n", difflib.PPDiff(strings.Split(string(result.Original), "\n"), strings.Split(string(result.Formatted), "\n")))
}
