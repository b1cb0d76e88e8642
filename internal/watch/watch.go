// Package watch reports changes to corpus files so a check can be re-run.
// Events are collected until the directories have been quiet for the
// debounce delay and then delivered as one batch.
package watch

import (
	"context"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/pthm/scenariolint/internal/logger"
)

const defaultDebounce = 300 * time.Millisecond

// Extensions are the file types that trigger a re-check.
var Extensions = []string{".yaml", ".yml", ".json", ".md"}

// Watcher watches a fixed set of directories (not recursively).
type Watcher struct {
	fsw      *fsnotify.Watcher
	log      *logger.Logger
	debounce time.Duration
	exts     map[string]bool
}

// New watches dirs. A zero debounce uses the default delay.
func New(log *logger.Logger, debounce time.Duration, dirs ...string) (*Watcher, error) {
	if log == nil {
		log = logger.Nop()
	}
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, err
		}
		log.Debug("watching directory", "path", dir)
	}

	exts := make(map[string]bool, len(Extensions))
	for _, ext := range Extensions {
		exts[ext] = true
	}
	return &Watcher{fsw: fsw, log: log, debounce: debounce, exts: exts}, nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// Run blocks until ctx is done, calling onChange with the sorted paths that
// changed in each quiet period. onChange runs on the Run goroutine, so
// events arriving while it runs are batched for the next call.
func (w *Watcher) Run(ctx context.Context, onChange func(paths []string)) error {
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	pending := make(map[string]bool)
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.log.Debug("corpus change detected", "path", event.Name, "op", event.Op.String())
			pending[event.Name] = true
			timer.Reset(w.debounce)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watcher error", "error", err)

		case <-timer.C:
			if len(pending) == 0 {
				continue
			}
			paths := make([]string, 0, len(pending))
			for p := range pending {
				paths = append(paths, p)
			}
			sort.Strings(paths)
			pending = make(map[string]bool)
			onChange(paths)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Has(fsnotify.Chmod) && !event.Has(fsnotify.Write) {
		return false
	}
	base := filepath.Base(event.Name)
	// Editor swap and backup files
	if strings.HasPrefix(base, ".") || strings.HasSuffix(base, "~") {
		return false
	}
	return w.exts[strings.ToLower(filepath.Ext(base))]
}

// Dirs returns the distinct parent directories of files, sorted.
func Dirs(files ...string) []string {
	seen := make(map[string]bool)
	var dirs []string
	for _, f := range files {
		d := filepath.Dir(f)
		if !seen[d] {
			seen[d] = true
			dirs = append(dirs, d)
		}
	}
	sort.Strings(dirs)
	return dirs
}
