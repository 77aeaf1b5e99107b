package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

// Version is overridden at build time with -ldflags "-X ...".
var Version = "0.1.0"

func InitializeCommands() *cobra.Command {
	var f flags
	rootCmd := &cobra.Command{
		Use:   "tildesweep [options] [files | dirs]",
		Short: "Remove editor backup files ending with '~'",
		Long: `Tildesweep removes editor backup files, the ones whose name ends with '~'.
Files given as arguments are checked directly. Directories are only
searched with -r, except for the current directory '.', which is also
the default when no argument is given.

Removed files are gone for good. Use -i to confirm every removal.`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		Version:       Version,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return f.setupOutput(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			opts, err := f.resolveOptions(cmd.Flags())
			if err != nil {
				return err
			}
			f.log.WithField("roots", args).Debug("starting sweep")
			return runSweep(cmd, opts, args, f.noColor)
		},
	}
	f.register(rootCmd.Flags())
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	return rootCmd
}

func Execute(rootCmd *cobra.Command) {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		cancel()
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
