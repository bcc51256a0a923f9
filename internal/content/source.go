package content

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
)

// Source serves the current content and swaps it atomically on reload.
type Source struct {
	fs   afero.Fs
	path string

	current atomic.Pointer[Site]

	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	onReload []func(*Site)
}

// NewSource loads content from path on fs. An empty path serves the embedded
// default only.
func NewSource(fs afero.Fs, path string) (*Source, error) {
	s := &Source{fs: fs, path: path}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Current returns the content to render. Callers must not modify it.
func (s *Source) Current() *Site {
	return s.current.Load()
}

// OnReload registers fn to run after every successful reload.
func (s *Source) OnReload(fn func(*Site)) {
	s.mu.Lock()
	s.onReload = append(s.onReload, fn)
	s.mu.Unlock()
}

// Reload reads the override file again. On error the previous content stays in place.
func (s *Source) Reload() error {
	var (
		site *Site
		err  error
	)
	if s.path == "" {
		site, err = Default()
	} else {
		site, err = Load(s.fs, s.path)
	}
	if err != nil {
		return err
	}
	s.current.Store(site)

	s.mu.Lock()
	hooks := append([]func(*Site){}, s.onReload...)
	s.mu.Unlock()
	for _, fn := range hooks {
		fn(site)
	}
	return nil
}

// Load reads and parses an override file.
func Load(fs afero.Fs, path string) (*Site, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read content %s: %w", path, err)
	}
	return Parse(data)
}

// Watch reloads the override file whenever it changes on disk, until ctx is done.
// It watches the parent directory so editors that replace the file are seen too.
// Watching requires the source to be backed by the OS filesystem.
func (s *Source) Watch(ctx context.Context) error {
	if s.path == "" {
		slog.Debug("No content file configured, skipping watcher setup")
		return nil
	}

	s.mu.Lock()
	if s.watcher != nil {
		s.mu.Unlock()
		slog.Debug("Content watcher already active")
		return nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("failed to create file system watcher: %w", err)
	}
	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		s.mu.Unlock()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	s.watcher = watcher
	s.mu.Unlock()

	slog.Info("Watching content file for changes", "path", s.path)
	go s.watchFiles(ctx, watcher)
	return nil
}

func (s *Source) watchFiles(ctx context.Context, watcher *fsnotify.Watcher) {
	defer func() {
		s.mu.Lock()
		watcher.Close()
		s.watcher = nil
		s.mu.Unlock()
		slog.Info("Content watcher stopped")
	}()

	target := filepath.Clean(s.path)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := s.Reload(); err != nil {
				slog.Error("Failed to reload content, keeping previous version", "path", s.path, "error", err)
				continue
			}
			slog.Info("Content reloaded", "path", s.path)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			slog.Error("Content watcher error", "error", err)
		}
	}
}
