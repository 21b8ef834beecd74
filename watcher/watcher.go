package watcher

import (
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"

	"github.com/technologicalMayhem/human-date-parser/datetime"
	"github.com/technologicalMayhem/human-date-parser/entry"
	"github.com/technologicalMayhem/human-date-parser/parser"
)

// FileEvent is sent when an expression file has been re-resolved
type FileEvent struct {
	FilePath string
	Entries  []*entry.Entry
	Err      error
}

// Watcher watches expression files and re-resolves them on change. Events is
// closed once the watcher has stopped.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	parser    *datetime.Parser
	clock     clockwork.Clock
	Events    chan FileEvent
	done      chan struct{}
	stopOnce  sync.Once
}

// New creates a Watcher that resolves against clock.Now() at the moment a
// file changes
func New(p *datetime.Parser, clock clockwork.Clock) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "creating fsnotify watcher")
	}

	return &Watcher{
		fsWatcher: fsw,
		parser:    p,
		clock:     clock,
		Events:    make(chan FileEvent, 10),
		done:      make(chan struct{}),
	}, nil
}

// Watch adds a file or a directory tree to the watch list
func (w *Watcher) Watch(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrapf(err, "watching %s", path)
	}
	if info.IsDir() {
		return w.WatchDirectory(path)
	}
	return w.WatchFile(path)
}

// WatchFile adds a single file to the watch list
func (w *Watcher) WatchFile(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	return w.fsWatcher.Add(absPath)
}

// WatchDirectory adds every subdirectory of dir to the watch list, so new
// expression files are picked up as they appear
func (w *Watcher) WatchDirectory(dir string) error {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return err
	}

	return filepath.Walk(absDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if err := w.fsWatcher.Add(path); err != nil {
				slog.Warn("could not watch directory", "path", path, "err", err)
			}
		}
		return nil
	})
}

// Start begins watching for file changes
func (w *Watcher) Start() {
	go w.run()
}

// Stop stops the watcher. It is safe to call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		w.fsWatcher.Close()
	})
}

func (w *Watcher) run() {
	defer close(w.Events)
	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.WatchDirectory(event.Name); err != nil {
						slog.Warn("could not watch new directory", "path", event.Name, "err", err)
					}
					continue
				}
			}

			if filepath.Ext(event.Name) != parser.Extension {
				continue
			}

			ref := datetime.FromTime(w.clock.Now())
			entries, err := parser.ParseFile(event.Name, w.parser, ref)
			slog.Debug("file re-resolved", "path", event.Name, "entries", len(entries), "failed", entry.CountFailed(entries))

			select {
			case w.Events <- FileEvent{FilePath: event.Name, Entries: entries, Err: err}:
			case <-w.done:
				return
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			slog.Error("watcher error", "err", err)
		}
	}
}

// ParseInitial resolves a file, or every expression file under a directory,
// against ref. The bool reports whether path is a directory.
func ParseInitial(path string, p *datetime.Parser, ref datetime.DateTime) ([]*entry.Entry, bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, false, errors.WithStack(err)
	}

	if !info.IsDir() {
		entries, err := parser.ParseFile(path, p, ref)
		return entries, false, err
	}

	var all []*entry.Entry
	err = filepath.Walk(path, func(filePath string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && filepath.Ext(filePath) == parser.Extension {
			entries, parseErr := parser.ParseFile(filePath, p, ref)
			if parseErr != nil {
				slog.Warn("could not parse file", "path", filePath, "err", parseErr)
				return nil
			}
			all = append(all, entries...)
		}
		return nil
	})

	return all, true, err
}
