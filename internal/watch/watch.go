// Package watch re-runs generation when spec or settings files change.
package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/bianoble/unity-assets/internal/errors"
	"github.com/bianoble/unity-assets/internal/logger"
)

// DefaultDebounce coalesces bursts of editor saves into one run.
const DefaultDebounce = 300 * time.Millisecond

// ChangeFunc is called after a debounced change. Calls never overlap.
type ChangeFunc func(ctx context.Context, changed []string) error

// Watcher watches a fixed set of files. It watches their parent
// directories so atomic replace-on-save is still seen.
type Watcher struct {
	files    map[string]bool
	fs       *fsnotify.Watcher
	debounce time.Duration
	onChange ChangeFunc
	logger   *zap.SugaredLogger
}

// New creates a Watcher for files. A zero debounce uses DefaultDebounce.
func New(files []string, debounce time.Duration, onChange ChangeFunc, l *zap.SugaredLogger) (*Watcher, error) {
	if len(files) == 0 {
		return nil, errors.New("no files to watch")
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "creating file watcher")
	}

	w := &Watcher{
		files:    make(map[string]bool, len(files)),
		fs:       fsw,
		debounce: debounce,
		onChange: onChange,
		logger:   logger.OrComponent(l, "watch"),
	}

	dirs := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			fsw.Close()
			return nil, errors.Wrapf(err, "resolving %s", f)
		}
		w.files[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, errors.Wrapf(err, "watching %s", dir)
		}
		dirs[dir] = true
	}
	return w, nil
}

// Run blocks until ctx is done, invoking the change callback on the
// calling goroutine after each debounced burst of changes.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fs.Close()

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	var fire <-chan time.Time
	pending := make(map[string]bool)

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debugw("Watched file changed", logger.FieldPath, event.Name, "op", event.Op.String())
			pending[event.Name] = true
			timer.Reset(w.debounce)
			fire = timer.C

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.logger.Warnw("File watcher error", logger.FieldError, err)

		case <-fire:
			fire = nil
			changed := make([]string, 0, len(pending))
			for p := range pending {
				changed = append(changed, p)
			}
			clear(pending)

			w.logger.Infow("Change detected, regenerating", logger.FieldCount, len(changed))
			if err := w.onChange(ctx, changed); err != nil {
				w.logger.Errorw("Regeneration failed", logger.FieldError, err)
			}
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return w.files[abs]
}
