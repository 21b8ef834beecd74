package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/technologicalMayhem/human-date-parser/entry"
	"github.com/technologicalMayhem/human-date-parser/tui"
	"github.com/technologicalMayhem/human-date-parser/watcher"
)

func (a *app) newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui [file-or-dir]",
		Short: "Resolve expressions interactively, optionally alongside watched files",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			cfg := tui.Config{
				Parser:    a.parser,
				Clock:     a.clock,
				Reference: a.pinned,
			}

			if len(args) == 1 {
				path := args[0]
				entries, _, err := watcher.ParseInitial(path, a.parser, a.reference())
				if err != nil {
					return err
				}
				cfg.Entries = entries

				w, err := watcher.New(a.parser, a.clock)
				if err != nil {
					return err
				}
				defer w.Stop()
				if err := w.Watch(path); err != nil {
					return err
				}
				w.Start()

				events := make(chan tui.FileUpdateMsg, 10)
				go forwardEvents(ctx, w.Events, events)
				cfg.Events = events
			}

			program := tea.NewProgram(tui.New(cfg),
				tea.WithAltScreen(),
				tea.WithContext(ctx),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err := program.Run()
			return err
		},
	}
}

// forwardEvents converts watcher events into TUI messages until in is closed
// or ctx is done, then closes out. Files that could not be read are logged
// and skipped.
func forwardEvents(ctx context.Context, in <-chan watcher.FileEvent, out chan<- tui.FileUpdateMsg) {
	defer close(out)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-in:
			if !ok {
				return
			}
			if event.Err != nil {
				logger.Warn("could not resolve file", "path", event.FilePath, "err", event.Err)
				continue
			}
			msg := tui.FileUpdateMsg{
				FilePath: event.FilePath,
				Entries:  append([]*entry.Entry(nil), event.Entries...),
			}
			select {
			case out <- msg:
			case <-ctx.Done():
				return
			}
		}
	}
}
