package settings

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
)

// Watcher keeps Settings in sync with a YAML file. The file's directory is
// watched rather than the file itself so that editors that replace the file
// by rename are picked up.
type Watcher struct {
	path   string
	dotenv []string
	log    *slog.Logger
	fsw    *fsnotify.Watcher

	cur atomic.Pointer[Settings]

	mu   sync.Mutex
	subs []func(Settings)
}

// NewWatcher loads path and starts watching it. Call Run to process changes
// and Close to release the watch. A nil logger discards output.
func NewWatcher(path string, log *slog.Logger, dotenv ...string) (*Watcher, error) {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("settings: resolve %s: %w", path, err)
	}
	s, err := Load(abs, dotenv...)
	if err != nil {
		return nil, err
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("settings: watch: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("settings: watch %s: %w", filepath.Dir(abs), err)
	}
	w := &Watcher{path: abs, dotenv: dotenv, log: log, fsw: fsw}
	w.cur.Store(&s)
	return w, nil
}

// Current returns the latest successfully loaded settings.
func (w *Watcher) Current() Settings { return *w.cur.Load() }

// OnChange registers fn to be called with the new settings after each
// successful reload.
func (w *Watcher) OnChange(fn func(Settings)) {
	w.mu.Lock()
	w.subs = append(w.subs, fn)
	w.mu.Unlock()
}

// Run processes file events until ctx is done or the watcher is closed.
// A reload that fails keeps the previous settings.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.reload()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("settings.watch.err", slog.String("err", err.Error()))
		}
	}
}

func (w *Watcher) reload() {
	s, err := Load(w.path, w.dotenv...)
	if err != nil {
		w.log.Warn("settings.reload.err", slog.String("path", w.path), slog.String("err", err.Error()))
		return
	}
	w.cur.Store(&s)
	w.log.Info("settings.reload.ok", slog.String("path", w.path), slog.String("language_code", s.LanguageCode))

	w.mu.Lock()
	subs := append([]func(Settings){}, w.subs...)
	w.mu.Unlock()
	for _, fn := range subs {
		fn(s)
	}
}

// Close stops watching.
func (w *Watcher) Close() error { return w.fsw.Close() }
