package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"phpfix/internal/fix"
	"phpfix/internal/ruleset"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List rules and presets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		fixers, err := ruleset.Default().EnabledFixers()
		if err != nil {
			return err
		}
		return renderList(cmd.OutOrStdout(), fixers, ruleset.PresetNames())
	},
}

func renderList(out io.Writer, fixers []fix.Fixer, presets []string) error {
	if _, err := fmt.Fprintln(out, "Rules (in run order):"); err != nil {
		return err
	}
	for _, f := range fix.Sorted(fixers) {
		risky := ""
		if f.IsRisky() {
			risky = " [risky]"
		}
		if _, err := fmt.Fprintf(out, "  %-32s priority %2d%s  %s\n", f.Name(), f.Priority(), risky, f.Definition().Summary); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(out, "\nPresets:"); err != nil {
		return err
	}
	for _, p := range presets {
		if _, err := fmt.Fprintf(out, "  %s\n", p); err != nil {
			return err
		}
	}
	return nil
}
