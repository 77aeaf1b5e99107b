package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tomekjarosik/tildesweep/pkg/candidate"
	"github.com/tomekjarosik/tildesweep/pkg/prompt"
	"github.com/tomekjarosik/tildesweep/pkg/report"
	"github.com/tomekjarosik/tildesweep/pkg/sweep"
	"github.com/tomekjarosik/tildesweep/pkg/traverse"
	"github.com/tomekjarosik/tildesweep/pkg/ui"
)

// runSweep visits every root in order. Problems on single entries are only
// printed; the returned error is set when the run was interrupted.
func runSweep(cmd *cobra.Command, opts sweep.Options, roots []string, noColor bool) error {
	if len(roots) == 0 {
		roots = []string{sweep.CurrentDir}
	}

	var consoleOpts []ui.Option
	var promptOpts []prompt.Option
	if noColor {
		consoleOpts = append(consoleOpts, ui.WithoutColor())
		promptOpts = append(promptOpts, prompt.WithoutColor())
	}

	out := cmd.OutOrStdout()
	console := ui.NewConsole(out, consoleOpts...)
	stats := report.NewStats(console)

	fsys := sweep.OS{}
	evaluator := candidate.New(opts, fsys,
		candidate.WithReporter(stats),
		candidate.WithConfirmer(prompt.New(cmd.InOrStdin(), out, promptOpts...)))
	engine := traverse.New(opts, fsys, evaluator, stats)

	if opts.Verbose {
		console.Banner("=== VERBOSE MODE ===")
	}
	for _, root := range roots {
		if err := engine.Walk(cmd.Context(), root); err != nil {
			console.PrintWarning("interrupted, %s and the remaining roots were not fully swept", root)
			return err
		}
	}
	if opts.Verbose {
		console.PrintSummary(stats)
	}
	return nil
}
