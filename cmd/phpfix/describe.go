package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"phpfix/internal/driver"
	"phpfix/internal/fix"
	"phpfix/internal/ruleset"
	"phpfix/internal/textdiff"
)

var describeCmd = &cobra.Command{
	Use:   "describe <rule>",
	Short: "Describe a rule and show its examples",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fixers, err := ruleset.Default().EnabledFixers()
		if err != nil {
			return err
		}
		f, err := fix.Lookup(fixers, args[0])
		if err != nil {
			// разрешаем короткое имя без префикса
			f, err = fix.Lookup(fixers, fix.CustomName(args[0]))
		}
		if err != nil {
			return fmt.Errorf("describe: %w", err)
		}
		return renderDescription(cmd.OutOrStdout(), f, !color.NoColor)
	},
}

var ruleTitle = color.New(color.Bold)

func renderDescription(out io.Writer, f fix.Fixer, colored bool) error {
	def := f.Definition()
	if _, err := fmt.Fprintf(out, "Description of the %s rule.\n\n%s\n", ruleTitle.Sprint(f.Name()), def.Summary); err != nil {
		return err
	}
	if def.Description != "" {
		if _, err := fmt.Fprintf(out, "%s\n", def.Description); err != nil {
			return err
		}
	}
	if f.IsRisky() {
		if _, err := fmt.Fprintf(out, "\nFixer applying this rule is RISKY.\n%s\n", def.RiskDescription); err != nil {
			return err
		}
	}
	if len(def.Samples) == 0 {
		return nil
	}

	if _, err := fmt.Fprintln(out, "\nFixing examples:"); err != nil {
		return err
	}
	for i, sample := range def.Samples {
		name := fmt.Sprintf("Example #%d", i+1)
		fixed, err := driver.FixContent(name, []byte(sample.Code), []fix.Fixer{f}, fix.ApplyOptions{AllowRisky: true}, 0)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		header := " * " + name + "."
		if sample.MinPHP > 0 {
			header += fmt.Sprintf(" (PHP >= %d)", sample.MinPHP)
		}
		d := textdiff.Unified(name, sample.Code, string(fixed.Fixed), textdiff.Options{Color: colored})
		if d == "" {
			d = "   (no changes)\n"
		}
		if _, err := fmt.Fprintf(out, "\n%s\n%s", header, d); err != nil {
			return err
		}
	}
	return nil
}
