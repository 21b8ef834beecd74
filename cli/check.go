package cli

import (
	"github.com/spf13/cobra"

	"github.com/technologicalMayhem/human-date-parser/entry"
	"github.com/technologicalMayhem/human-date-parser/parser"
	"github.com/technologicalMayhem/human-date-parser/watcher"
)

func (a *app) newCheckCmd() *cobra.Command {
	var sorted bool

	cmd := &cobra.Command{
		Use:   "check <file-or-dir>",
		Short: "Resolve every line of expression files",
		Long: `check resolves each expression in a ` + parser.Extension + ` file, or in every such file
under a directory, and prints one result per line. It exits with status 1
when any expression fails.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, _, err := watcher.ParseInitial(args[0], a.parser, a.reference())
			if err != nil {
				return err
			}
			if sorted {
				entry.SortByValue(entries)
			}

			p := newPrinter(cmd.OutOrStdout(), a.cfg.JSON)
			for _, e := range entries {
				if err := p.located(e); err != nil {
					return err
				}
			}

			failed := entry.CountFailed(entries)
			logger.Info("checked", "path", args[0], "entries", len(entries), "failed", failed)
			if failed > 0 {
				return errFailures
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&sorted, "sort", false, "order output by resolved value")
	return cmd
}
