package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	m "reckon.dev/pkg/reckon/internal/model"
)

// debounceWindow coalesces editor save bursts into a single reload.
const debounceWindow = 250 * time.Millisecond

// FileWatcher invokes a callback when a watched file changes on disk.
type FileWatcher interface {
	// Watch blocks until ctx is cancelled, calling onChange after every write
	// to path. Events arriving within the debounce window collapse into one
	// call.
	Watch(ctx context.Context, path m.Path, onChange func()) error
}

type fileWatcher struct{}

// NewFileWatcher creates a FileWatcher backed by fsnotify.
func NewFileWatcher() FileWatcher {
	return &fileWatcher{}
}

func (w *fileWatcher) Watch(ctx context.Context, path m.Path, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		slog.Error("Failed to create file watcher", "error", err)
		return fmt.Errorf("create file watcher: %w", err)
	}

	defer func() { _ = watcher.Close() }()

	// Watch the directory rather than the file: editors replace files on
	// save, which drops watches registered on the file itself.
	dir := filepath.Dir(string(path))
	if err := watcher.Add(dir); err != nil {
		slog.Error("Failed to watch directory", "dir", dir, "error", err)
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	target, err := filepath.Abs(string(path))
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}

	slog.Debug("Watching jobs file", "path", target)

	var debounce <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			abs, absErr := filepath.Abs(event.Name)
			if absErr != nil || abs != target {
				continue
			}

			slog.Debug("Watched file changed", "path", target, "op", event.Op.String())
			debounce = time.After(debounceWindow)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			slog.Warn("File watcher error", "error", err)
		case <-debounce:
			debounce = nil

			onChange()
		}
	}
}
