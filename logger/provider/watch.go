package provider

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/mordilloSan/go-labellog/logger"
)

// Watcher reloads a File whenever it is written or replaced.
type Watcher struct {
	file    *File
	watcher *fsnotify.Watcher

	// Log, when set, receives reload notices and errors.
	Log *logger.Logger
	// OnReload, when set, is called after every reload attempt.
	OnReload func(error)
}

// NewWatcher starts watching the file's directory, so editors that replace
// the file by renaming are seen too. Call Run to process events and Close
// when done.
func (f *File) NewWatcher() (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	dir := filepath.Dir(f.path)
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}
	return &Watcher{file: f, watcher: w}, nil
}

// Run processes file events until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	name := filepath.Clean(w.file.path)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != name {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				w.report(w.file.Load())
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.report(fmt.Errorf("watching %s: %w", name, err))
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func (w *Watcher) report(err error) {
	if w.Log != nil {
		if err != nil {
			w.Log.Error(logger.ErrorChain(err))
		} else {
			w.Log.Info("reloaded", w.file.path)
		}
	}
	if w.OnReload != nil {
		w.OnReload(err)
	}
}

// Watch reloads f on every change until ctx is done.
func (f *File) Watch(ctx context.Context, log *logger.Logger) error {
	w, err := f.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	w.Log = log
	return w.Run(ctx)
}
