package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/technologicalMayhem/human-date-parser/entry"
)

func (a *app) newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <expression...>",
		Short: "Resolve a single expression",
		Example: `  human-date resolve last friday at 19:45
  human-date --ref "2024-05-08 12:00:00" resolve "in 3 days"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := entry.Resolve(a.parser, strings.Join(args, " "), a.reference())
			if e.Err != nil && !a.cfg.JSON {
				return e.Err
			}
			if err := newPrinter(cmd.OutOrStdout(), a.cfg.JSON).value(e); err != nil {
				return err
			}
			if e.Err != nil {
				return errFailures
			}
			return nil
		},
	}
}
