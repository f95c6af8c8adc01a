package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	goerrors "github.com/go-errors/errors"
	"github.com/loopcontext/fehtpl"
	"github.com/loopcontext/fehtpl/internal/config"
	"github.com/loopcontext/fehtpl/internal/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// app carries what every command needs once flags and config are resolved.
type app struct {
	in          io.Reader
	out         io.Writer
	errOut      io.Writer
	interactive bool

	cfg      *config.Config
	log      *logrus.Entry
	closeLog func() error
}

// globalFlags are shared by every command.
type globalFlags struct {
	configPath string
	verbose    bool
	// overrides holds the flags that map onto config.Config; set ones win over the file.
	overrides config.Config
}

func newApp(in io.Reader, out, errOut io.Writer) *app {
	a := &app{in: in, out: out, errOut: errOut}
	a.log, a.closeLog, _ = logging.NewLogger(logging.Options{Out: errOut})
	return a
}

// setup loads the configuration and the logger before any command runs.
func (a *app) setup(flags *globalFlags) error {
	cfg, path, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}
	if err := cfg.Override(flags.overrides); err != nil {
		return fehtpl.Usagef("%v", err)
	}
	log, closeLog, err := logging.NewLogger(logging.Options{Verbose: flags.verbose, File: cfg.LogFile, Out: a.errOut})
	if err != nil {
		return err
	}
	a.closeLog = closeLog
	if path != "" {
		log.WithField("path", path).Info("loaded config file")
	}
	a.cfg = cfg
	a.log = log
	return nil
}

func (a *app) builder() *fehtpl.Builder {
	return fehtpl.NewBuilder(fehtpl.Config{
		DataDir:    a.cfg.DataDir,
		Structured: a.cfg.Structured,
		Collisions: a.cfg.Collisions,
		Log:        a.log,
	})
}

func (a *app) saveOptions() fehtpl.SaveOptions {
	return fehtpl.SaveOptions{Indent: a.cfg.Indent.String(), Atomic: a.cfg.Atomic}
}

// execute runs the command line and returns the process exit status.
func (a *app) execute(args []string) int {
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetIn(a.in)
	cmd.SetOut(a.out)
	cmd.SetErr(a.errOut)
	code := a.exitCode(cmd.Execute())
	if err := a.closeLog(); err != nil {
		fmt.Fprintf(a.errOut, "fehtpl: close log file: %v\n", err)
	}
	return code
}

// exitCode reports err and maps it to 0, 1 for failures or 2 for usage errors.
func (a *app) exitCode(err error) int {
	if err == nil {
		return 0
	}
	var traced *goerrors.Error
	if errors.As(err, &traced) {
		a.log.Debug(traced.ErrorStack())
	}
	color.New(color.FgRed).Fprintf(a.errOut, "fehtpl: %v\n", err)

	var ferr fehtpl.Error
	if errors.As(err, &ferr) && ferr.Kind() == fehtpl.KindUsage {
		fmt.Fprintln(a.errOut, "Run 'fehtpl --help' for usage.")
		return 2
	}
	return 1
}

// usageArgs marks positional argument errors as usage errors.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return fehtpl.Usagef("%v", err)
		}
		return nil
	}
}

func fileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return !info.IsDir(), nil
}
