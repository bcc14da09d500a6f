// File: watch.go
// Title: Source File Watcher
// Description: Re-runs a callback whenever a watched source file changes.
//              The parent directory is watched so editors that replace the
//              file on save are still noticed. Bursts of events collapse
//              into one callback after the debounce delay.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	sbmlerror "github.com/msto63/sbml/foundation/core/error"
	sbmllog "github.com/msto63/sbml/foundation/core/log"
)

// DefaultDebounce is used when Options.Debounce is zero
const DefaultDebounce = 200 * time.Millisecond

// Options configures a Watcher
type Options struct {
	Logger   *sbmllog.Logger
	Debounce time.Duration
}

// Watcher watches a single file
type Watcher struct {
	path     string
	debounce time.Duration
	logger   *sbmllog.Logger
}

// New creates a watcher for path
func New(path string, opts Options) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, sbmlerror.Wrap(err, "invalid watch path").
			WithCode(sbmlerror.CodeInvalidInput).
			WithOperation("watch.New")
	}
	if opts.Logger == nil {
		opts.Logger = sbmllog.GetDefault()
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}

	return &Watcher{
		path:     abs,
		debounce: opts.Debounce,
		logger:   opts.Logger.WithField("component", "watch").WithField("file", abs),
	}, nil
}

// Path returns the absolute path being watched
func (w *Watcher) Path() string {
	return w.path
}

// Run calls onChange after each settled burst of changes to the file and
// blocks until ctx is done.
func (w *Watcher) Run(ctx context.Context, onChange func(ctx context.Context)) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return sbmlerror.Wrap(err, "failed to create watcher").
			WithCode(sbmlerror.CodeInternal).
			WithOperation("watch.Run")
	}
	defer fsw.Close()

	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		return sbmlerror.Wrap(err, "failed to watch directory").
			WithCode(sbmlerror.CodeNotFound).
			WithOperation("watch.Run").
			WithDetail("directory", filepath.Dir(w.path))
	}
	w.logger.Debug("watching for changes")

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Debug("stopped watching")
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.logger.Trace("file event", sbmllog.Fields{"op": event.Op.String()})
			timer.Reset(w.debounce)

		case <-timer.C:
			w.logger.Debug("file changed")
			onChange(ctx)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.WarnWithErr("watcher error", err)
		}
	}
}
