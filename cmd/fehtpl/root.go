package main

import (
	"github.com/loopcontext/fehtpl"
	"github.com/loopcontext/fehtpl/internal/prompt"
	"github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// generateFlags are the flags of the root command only.
type generateFlags struct {
	update string
	force  bool
	// outSet records an explicit --out.
	outSet bool
}

func newRootCmd(a *app) *cobra.Command {
	global := &globalFlags{}
	flags := &generateFlags{}

	cmd := &cobra.Command{
		Use:   "fehtpl",
		Short: "Translation template generator for the inheritance tool data files",
		Long: `fehtpl reads units.json, weapons.json, assists.json, specials.json and passives.json
from the data directory and writes a translation template with a blank name (and effect)
for every entry.

With --update the template is merged into an existing translated file instead: entries
already translated are kept as they are, new entries are added blank.`,
		Args:          usageArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.setup(global)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags.outSet = cmd.Flags().Changed("out")
			return a.runGenerate(flags)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fehtpl.Usagef("%v", err)
	})

	pf := cmd.PersistentFlags()
	pf.StringVar(&global.configPath, "config", "", "Config file (default: fehtpl.yaml, fehtpl.yml or fehtpl.toml if present).")
	pf.BoolVarP(&global.verbose, "verbose", "v", false, "Print progress messages.")
	pf.StringVar(&global.overrides.DataDir, "data", "", "Directory holding the English data files (default \"data\").")
	pf.BoolVar(&global.overrides.Structured, "structured", false, "Nest entries under HEROES, WEAPONS, ASSISTS, SPECIALS and PASSIVE_<X>.")
	pf.StringVar((*string)(&global.overrides.Collisions), "collisions", "", "What to do when two sections share an entry key: warn or fail (default \"warn\").")
	pf.BoolVar(&global.overrides.Atomic, "atomic", false, "Write through a temporary file and rename it into place.")
	pf.StringVar((*string)(&global.overrides.Indent), "indent", "", "Spaces per level, or a literal indent string (default 4).")
	pf.StringVar(&global.overrides.LogFile, "log-file", "", "Append JSON logs to this file instead of stderr.")

	f := cmd.Flags()
	f.StringVar(&global.overrides.Out, "out", "", "Where to write a new blank template (default \"lang/template.json\").")
	f.StringVarP(&flags.update, "update", "u", "", "Existing translated file to merge the new template into.")
	f.BoolVarP(&flags.force, "force", "f", false, "Overwrite an existing blank template without asking.")

	cmd.AddCommand(newCheckCmd(a), newSortCmd(a))
	return cmd
}

// runGenerate builds the template and writes it, either as a new blank template or
// merged into the file given with --update.
func (a *app) runGenerate(flags *generateFlags) error {
	update := flags.update
	if update != "" && flags.outSet {
		return fehtpl.Usagef("--out and --update cannot be used together, --update writes to the file it merges into")
	}
	if update != "" {
		var err error
		if update, err = homedir.Expand(update); err != nil {
			return err
		}
		exists, err := fileExists(update)
		if err != nil {
			return err
		}
		if !exists {
			return fehtpl.Usagef("update file %s does not exist", update)
		}
	} else if err := a.checkTarget(a.cfg.Out, flags.force); err != nil {
		return err
	}

	a.log.WithField("data", a.cfg.DataDir).Info("building template")
	template, err := a.builder().Build()
	if err != nil {
		return err
	}

	target := a.cfg.Out
	if update != "" {
		old, err := fehtpl.LoadFile(update)
		if err != nil {
			return err
		}
		summarize, merge := fehtpl.Summarize, fehtpl.Merge
		if a.cfg.Structured {
			summarize, merge = fehtpl.SummarizeSections, fehtpl.MergeSections
		}
		summary := summarize(template, old)
		a.log.WithFields(logrus.Fields{
			"kept":  summary.Kept,
			"added": summary.Added,
			"stale": summary.Stale,
		}).Info("merged existing translations")
		template = merge(template, old)
		target = update
	}

	if err := fehtpl.Save(target, template, a.saveOptions()); err != nil {
		return err
	}
	a.log.WithFields(logrus.Fields{"path": target, "entries": template.Len()}).Info("wrote template")
	return nil
}

// checkTarget refuses to replace an existing blank template unless the user agrees or
// --force is given. Without a terminal to ask on, it refuses.
func (a *app) checkTarget(path string, force bool) error {
	exists, err := fileExists(path)
	if err != nil {
		return err
	}
	choice := prompt.ChoiceNone
	if exists {
		switch {
		case force:
			choice = prompt.ChoiceOverride
		case a.interactive:
			if choice, err = prompt.Ask(a.in, a.errOut, path); err != nil {
				return err
			}
		default:
			a.log.WithField("path", path).Warn("not a terminal, leaving the existing template alone")
		}
	}
	if prompt.Decide(exists, choice) == prompt.Abort {
		return &fehtpl.TargetExistsError{Path: path}
	}
	return nil
}
