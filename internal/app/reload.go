package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/five82/folio/internal/content"
	"github.com/five82/folio/internal/state"
)

const (
	defaultPollInterval = 2 * time.Second
	maxBackoff          = 30 * time.Second
	reloadDebounce      = 200 * time.Millisecond
)

// Reloader publishes a fresh portfolio whenever the content file changes.
// Invalid edits are logged and the previous portfolio stays in place.
type Reloader struct {
	path     string
	value    *state.Value[*content.Portfolio]
	logger   *zap.Logger
	interval time.Duration
	debounce time.Duration

	// newWatcher is replaced in tests to force the polling fallback.
	newWatcher func() (*fsnotify.Watcher, error)
}

// NewReloader watches path and sets value on every valid change.
func NewReloader(path string, value *state.Value[*content.Portfolio], logger *zap.Logger) *Reloader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reloader{
		path:       filepath.Clean(path),
		value:      value,
		logger:     logger.Named("reload"),
		interval:   defaultPollInterval,
		debounce:   reloadDebounce,
		newWatcher: fsnotify.NewWatcher,
	}
}

// Run blocks until ctx is cancelled. It watches the file's directory with
// fsnotify, and falls back to polling the modification time if the watcher
// cannot start.
func (r *Reloader) Run(ctx context.Context) error {
	w, err := r.newWatcher()
	if err == nil {
		if err = w.Add(filepath.Dir(r.path)); err != nil {
			_ = w.Close()
		}
	}
	if err != nil {
		r.logger.Warn("content watcher unavailable, polling instead",
			zap.String("path", r.path),
			zap.Error(err))
		return r.poll(ctx)
	}
	defer w.Close()

	r.logger.Debug("watching content", zap.String("path", r.path))
	return r.watch(ctx, w)
}

func (r *Reloader) watch(ctx context.Context, w *fsnotify.Watcher) error {
	// Bursts of events collapse into one reload after a quiet period.
	timer := time.NewTimer(r.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != r.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			timer.Reset(r.debounce)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			r.logger.Warn("content watcher error", zap.Error(err))

		case <-timer.C:
			_ = r.reload()
		}
	}
}

func (r *Reloader) poll(ctx context.Context) error {
	var (
		lastMod  time.Time
		failures int
	)
	if info, err := os.Stat(r.path); err == nil {
		lastMod = info.ModTime()
	}

	timer := time.NewTimer(r.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
		}

		info, err := os.Stat(r.path)
		switch {
		case err != nil:
			failures++
			r.logger.Debug("content stat failed",
				zap.Error(err),
				zap.Int("failures", failures))
		case info.ModTime().Equal(lastMod):
			failures = 0
		default:
			lastMod = info.ModTime()
			if r.reload() != nil {
				failures++
			} else {
				failures = 0
			}
		}
		timer.Reset(calculateBackoff(failures, r.interval))
	}
}

func (r *Reloader) reload() error {
	p, err := content.Load(r.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			r.logger.Warn("content reload failed, keeping previous content",
				zap.String("path", r.path),
				zap.Error(err))
		}
		return fmt.Errorf("reload content: %w", err)
	}
	r.value.Set(p)
	r.logger.Info("content reloaded",
		zap.String("path", r.path),
		zap.Int("projects", len(p.Projects)))
	return nil
}

// calculateBackoff returns the delay before the next poll after failures
// consecutive errors: base doubled per failure, capped at maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	d := base
	for i := 0; i < failures; i++ {
		d *= 2
		if d >= maxBackoff {
			return maxBackoff
		}
	}
	return d
}
