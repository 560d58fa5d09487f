package pipeline

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/forgeworks/glyphgen/config"
	"github.com/forgeworks/glyphgen/errors"
	"github.com/forgeworks/glyphgen/logger"
)

// Watcher re-runs the pipeline when the catalog changes. Changes are
// debounced so a burst of writes triggers one run, and runs are rate limited
// so a pathological editor cannot spin the pipeline continuously.
//
// Watch failures log and continue; a failed pipeline run is reported through
// the emitter and does not stop the watcher.
type Watcher struct {
	cfg     *config.Config
	emitter Emitter
	watcher *fsnotify.Watcher
	limiter *rate.Limiter

	debounce time.Duration
	mu       sync.Mutex
	timer    *time.Timer

	// runFn executes one pipeline run; replaced in tests
	runFn func(ctx context.Context) *RunResult
}

// NewWatcher creates a watcher over the configured catalog source, which must
// be a local directory. Every subdirectory of the catalog is watched.
func NewWatcher(cfg *config.Config, emitter Emitter) (*Watcher, error) {
	info, err := os.Stat(cfg.Catalog.Source)
	if err != nil || !info.IsDir() {
		return nil, errors.NewCatalogError(
			"watch mode needs a local catalog directory, %q is not one", cfg.Catalog.Source)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	err = filepath.WalkDir(cfg.Catalog.Source, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return fsw.Add(path)
		}
		return nil
	})
	if err != nil {
		fsw.Close()
		return nil, errors.Wrapf(err, "failed to watch catalog %s", cfg.Catalog.Source)
	}

	debounceMS := cfg.Watch.DebounceMS
	if debounceMS <= 0 {
		debounceMS = config.DefaultDebounceMS
	}
	runsPerMin := cfg.Watch.RunsPerMin
	if runsPerMin <= 0 {
		runsPerMin = config.DefaultRunsPerMin
	}

	if emitter == nil {
		emitter = quietEmitter{}
	}

	w := &Watcher{
		cfg:      cfg,
		emitter:  emitter,
		watcher:  fsw,
		limiter:  rate.NewLimiter(rate.Every(time.Minute/time.Duration(runsPerMin)), 1),
		debounce: time.Duration(debounceMS) * time.Millisecond,
	}
	w.runFn = w.runOnce
	return w, nil
}

// Start watches until ctx is cancelled. It blocks.
func (w *Watcher) Start(ctx context.Context) error {
	defer w.watcher.Close()

	log := logger.ComponentLogger("pipeline.watch")
	log.Infow("watching catalog",
		logger.FieldCatalog, w.cfg.Catalog.Source,
		logger.FieldDurationMS, w.debounce.Milliseconds())

	for {
		select {
		case <-ctx.Done():
			w.stopTimer()
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			// New category directories need watching too
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.watcher.Add(event.Name); err != nil {
						log.Warnw("cannot watch new directory",
							logger.FieldPath, event.Name,
							logger.FieldError, err)
					}
				}
			}
			log.Debugw("catalog changed",
				logger.FieldFile, event.Name,
				"op", event.Op.String())
			w.schedule(ctx)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			log.Warnw("watcher error", logger.FieldError, err)
		}
	}
}

// schedule arms the debounce timer, restarting it on every new event.
func (w *Watcher) schedule(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		if ctx.Err() != nil {
			return
		}
		if !w.limiter.Allow() {
			logger.ComponentLogger("pipeline.watch").Warnw("run rate limit hit, skipping",
				logger.FieldCatalog, w.cfg.Catalog.Source)
			return
		}
		result := w.runFn(ctx)
		if err := result.Err(); err != nil {
			logger.ComponentLogger("pipeline.watch").Errorw("pipeline run failed",
				logger.FieldRunID, result.RunID,
				logger.FieldStage, result.FailedStage(),
				logger.FieldError, err)
		}
	})
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
}

// runOnce executes one full pipeline run in a throwaway workspace.
func (w *Watcher) runOnce(ctx context.Context) *RunResult {
	workspace, err := os.MkdirTemp("", "glyphgen-watch-*")
	if err != nil {
		return &RunResult{State: StateFailed, Steps: []StepResult{{
			Stage: "generate",
			State: StateFailed,
			Err:   errors.Wrap(errors.ErrGeneratorFailed, err.Error()),
		}}}
	}
	defer os.RemoveAll(workspace)

	return NewRunner(w.cfg, workspace, w.emitter).Run(ctx)
}
