// ============================================================================
// mcalc - MCL Statement Evaluator
// ============================================================================
//
// Package:     watcher
// Description: Notifies when a single file changes on disk
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package watcher

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	mcerror "github.com/msto63/mcalc/foundation/core/error"
	mclog "github.com/msto63/mcalc/foundation/core/log"
)

// DefaultDebounce collapses the event burst of a single save
const DefaultDebounce = 200 * time.Millisecond

// Options configures a Watcher
type Options struct {
	Logger   *mclog.Logger
	Debounce time.Duration
}

// Watcher reports changes to one file. It watches the parent directory so
// that editors replacing the file by rename are noticed too.
type Watcher struct {
	path     string
	name     string
	watcher  *fsnotify.Watcher
	logger   *mclog.Logger
	debounce time.Duration
}

// New starts watching the directory of path. Events are delivered by Run.
func New(path string, opts Options) (*Watcher, error) {
	if opts.Logger == nil {
		opts.Logger = mclog.GetDefault()
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, mcerror.Wrap(err, "failed to resolve path").
			WithCode(mcerror.CodeIOError).
			WithOperation("watcher.New").
			WithDetail("path", path)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, mcerror.Wrap(err, "failed to create watcher").
			WithCode(mcerror.CodeIOError).
			WithOperation("watcher.New")
	}

	dir := filepath.Dir(abs)
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, mcerror.Wrap(err, "failed to watch directory").
			WithCode(mcerror.CodeIOError).
			WithOperation("watcher.New").
			WithDetail("dir", dir)
	}

	return &Watcher{
		path:     abs,
		name:     filepath.Base(abs),
		watcher:  fw,
		logger:   opts.Logger.WithField("component", "watcher"),
		debounce: opts.Debounce,
	}, nil
}

// Path returns the absolute path of the watched file
func (w *Watcher) Path() string {
	return w.path
}

// Run calls onChange once per burst of write, create or rename events on
// the file, after the burst has been quiet for the debounce delay. It
// blocks until ctx is done and closes the watcher on return.
func (w *Watcher) Run(ctx context.Context, onChange func(path string)) error {
	defer w.watcher.Close()

	// Stopped timer; armed by the first relevant event
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Debug("stopping file watcher", mclog.Fields{"file": w.path})
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != w.name {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			w.logger.Trace("file event", mclog.Fields{"file": event.Name, "op": event.Op.String()})
			timer.Reset(w.debounce)

		case <-timer.C:
			onChange(w.path)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.ErrorWithErr("watcher error", err)
		}
	}
}
