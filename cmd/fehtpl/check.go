package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/loopcontext/fehtpl"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
)

func newCheckCmd(a *app) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Report untranslated, missing and stale entries of a translated file",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.runCheck(args[0], strict)
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when any field is untranslated or any entry is missing.")
	return cmd
}

// checkReport compares a translated file with the template the data files build now.
type checkReport struct {
	untranslated []string
	missing      []string
	stale        []string
}

func (r checkReport) incomplete() bool {
	return len(r.untranslated) > 0 || len(r.missing) > 0
}

func (a *app) runCheck(path string, strict bool) error {
	path, err := homedir.Expand(path)
	if err != nil {
		return err
	}
	translated, err := fehtpl.LoadFile(path)
	if err != nil {
		return err
	}
	fresh, err := a.builder().Build()
	if err != nil {
		return err
	}

	missing, stale := fehtpl.Missing, fehtpl.Stale
	if a.cfg.Structured {
		missing, stale = fehtpl.MissingSections, fehtpl.StaleSections
	}
	report := checkReport{
		untranslated: fehtpl.Untranslated(translated),
		missing:      missing(fresh, translated),
		stale:        stale(fresh, translated),
	}
	report.print(a.out, path)

	if strict && report.incomplete() {
		return fmt.Errorf("%s is incomplete: %d untranslated, %d missing",
			path, len(report.untranslated), len(report.missing))
	}
	return nil
}

func (r checkReport) print(w io.Writer, path string) {
	if !r.incomplete() && len(r.stale) == 0 {
		color.New(color.FgGreen).Fprintf(w, "%s is complete\n", path)
		return
	}
	printList(w, color.New(color.FgYellow), "untranslated", r.untranslated)
	printList(w, color.New(color.FgRed), "missing", r.missing)
	printList(w, color.New(color.FgCyan), "stale", r.stale)
}

func printList(w io.Writer, c *color.Color, label string, items []string) {
	if len(items) == 0 {
		return
	}
	c.Fprintf(w, "%s (%d):\n", label, len(items))
	for _, item := range items {
		fmt.Fprintf(w, "  %s\n", item)
	}
}
