package main

import (
	"github.com/loopcontext/fehtpl"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
)

func newSortCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sort <file>",
		Short: "Rewrite a translated file with its keys sorted at every level",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.runSort(args[0])
		},
	}
}

func (a *app) runSort(path string) error {
	path, err := homedir.Expand(path)
	if err != nil {
		return err
	}
	obj, err := fehtpl.LoadFile(path)
	if err != nil {
		return err
	}
	if fehtpl.IsSorted(obj) {
		a.log.WithField("path", path).Info("already sorted")
	}
	if err := fehtpl.Save(path, fehtpl.SortKeys(obj), a.saveOptions()); err != nil {
		return err
	}
	a.log.WithField("path", path).Info("sorted")
	return nil
}
