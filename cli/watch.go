package cli

import (
	"github.com/spf13/cobra"

	"github.com/technologicalMayhem/human-date-parser/watcher"
)

func (a *app) newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <file-or-dir>",
		Short: "Re-resolve expression files whenever they change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			p := newPrinter(cmd.OutOrStdout(), a.cfg.JSON)

			entries, _, err := watcher.ParseInitial(path, a.parser, a.reference())
			if err != nil {
				return err
			}
			for _, e := range entries {
				if err := p.located(e); err != nil {
					return err
				}
			}

			w, err := watcher.New(a.parser, a.clock)
			if err != nil {
				return err
			}
			defer w.Stop()
			if err := w.Watch(path); err != nil {
				return err
			}
			w.Start()
			logger.Info("watching", "path", path)

			ctx := cmd.Context()
			for {
				select {
				case <-ctx.Done():
					return nil
				case event, ok := <-w.Events:
					if !ok {
						return nil
					}
					if event.Err != nil {
						logger.Warn("could not resolve file", "path", event.FilePath, "err", event.Err)
						continue
					}
					for _, e := range event.Entries {
						if err := p.located(e); err != nil {
							return err
						}
					}
				}
			}
		},
	}
}
