package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/tomekjarosik/tildesweep/pkg/config"
	"github.com/tomekjarosik/tildesweep/pkg/sweep"
)

type flags struct {
	recursive   bool
	verbose     bool
	interactive bool
	level       uint
	configPath  string
	logLevel    string
	noColor     bool

	log *logrus.Logger
}

func (f *flags) register(fs *pflag.FlagSet) {
	fs.BoolVarP(&f.recursive, "recursive", "r", false, "descend into subdirectories")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "print every directory entered and file removed")
	fs.BoolVarP(&f.interactive, "interactive", "i", false, "prompt before every removal")
	fs.UintVarP(&f.level, "level", "l", 0,
		"deepest directory level still searched, the root being level 0 (0 means unlimited)")
	fs.StringVar(&f.configPath, "config", "",
		"YAML file with default values for the flags above (default $"+config.EnvVar+")")
	fs.StringVar(&f.logLevel, "log-level", "warn", "diagnostic log level (debug, info, warn, error)")
	fs.BoolVar(&f.noColor, "no-color", false, "disable colored output")
}

func (f *flags) setupOutput(cmd *cobra.Command) error {
	log, err := newLogger(f.logLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	f.log = log
	return nil
}

// resolveOptions merges the defaults file with the flags set on the command
// line, which take precedence.
func (f *flags) resolveOptions(fs *pflag.FlagSet) (sweep.Options, error) {
	var opts sweep.Options

	path := f.configPath
	if path == "" {
		path = os.Getenv(config.EnvVar)
	}
	if path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return opts, fmt.Errorf("failed to load config %s: %w", path, err)
		}
		cfg.Apply(&opts)
		f.log.Debugf("loaded defaults from %s", path)
	}

	if fs.Changed("recursive") {
		opts.Recursive = f.recursive
	}
	if fs.Changed("verbose") {
		opts.Verbose = f.verbose
	}
	if fs.Changed("interactive") {
		opts.Confirm = f.interactive
	}
	if fs.Changed("level") {
		opts.MaxDepth = f.level
	}
	f.log.WithFields(logrus.Fields{
		"recursive": opts.Recursive,
		"verbose":   opts.Verbose,
		"confirm":   opts.Confirm,
		"maxDepth":  opts.MaxDepth,
	}).Debug("resolved options")
	return opts, nil
}
