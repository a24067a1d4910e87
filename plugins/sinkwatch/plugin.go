// Package sinkwatch reloads a persisted sink when another process rewrites it.
// It watches the sink's directory and calls a reload function, debounced,
// after the sink file is written or replaced.
package sinkwatch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/stockroom/pkg/log"
)

// ReloadFunc is called after the watched sink changes. Calls never overlap.
type ReloadFunc func(ctx context.Context)

// Plugin watches one sink file.
type Plugin struct {
	mu sync.Mutex

	// Configuration
	path          string
	debounceDelay time.Duration
	reload        ReloadFunc
	logger        log.Logger

	// Runtime state
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	debounce *time.Timer
	reloadMu sync.Mutex
}

// Config holds configuration options for the sink watcher.
type Config struct {
	// DebounceDelay is the delay to wait after a change before reloading.
	// Default: 100 milliseconds
	DebounceDelay time.Duration

	// Logger receives watcher diagnostics. Default: no-op.
	Logger log.Logger
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		DebounceDelay: 100 * time.Millisecond,
	}
}

// New creates a watcher for the sink at path.
func New(path string, reload ReloadFunc, cfg Config) *Plugin {
	if cfg.DebounceDelay <= 0 {
		cfg.DebounceDelay = 100 * time.Millisecond
	}
	if cfg.Logger == nil {
		cfg.Logger = log.NewNoopLogger()
	}
	return &Plugin{
		path:          filepath.Clean(path),
		debounceDelay: cfg.DebounceDelay,
		reload:        reload,
		logger:        cfg.Logger,
	}
}

// Name returns the plugin identifier.
func (p *Plugin) Name() string {
	return "sinkwatch"
}

// Start begins watching. The sink's directory must exist; the sink itself
// need not. Watching stops when ctx is done or Shutdown is called.
func (p *Plugin) Start(ctx context.Context) error {
	if p.reload == nil {
		return errors.New("sinkwatch: nil reload func")
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("sinkwatch: create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(p.path)); err != nil {
		watcher.Close()
		return fmt.Errorf("sinkwatch: watch %s: %w", filepath.Dir(p.path), err)
	}

	watchCtx, cancel := context.WithCancel(ctx)
	p.mu.Lock()
	p.cancel = cancel
	p.mu.Unlock()

	p.logger.Info("sink watcher started", log.String("path", p.path))

	p.wg.Add(1)
	go p.watchLoop(watchCtx, watcher)
	return nil
}

// Shutdown stops the watcher and waits for a pending reload to finish.
func (p *Plugin) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
	}
	if p.debounce != nil {
		p.debounce.Stop()
	}
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		p.reloadMu.Lock()
		p.reloadMu.Unlock()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Plugin) watchLoop(ctx context.Context, watcher *fsnotify.Watcher) {
	defer p.wg.Done()
	defer watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			// Atomic saves rename a temp file over the sink, which shows up
			// as Create on the sink's name.
			if filepath.Clean(event.Name) != p.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			p.logger.Debug("sink changed", log.String("path", p.path), log.String("op", event.Op.String()))
			p.debounceReload(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			p.logger.Error("sink watcher error", log.String("path", p.path), log.Err(err))
		}
	}
}

func (p *Plugin) debounceReload(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.debounce != nil {
		p.debounce.Stop()
	}

	p.debounce = time.AfterFunc(p.debounceDelay, func() {
		p.reloadMu.Lock()
		defer p.reloadMu.Unlock()
		if ctx.Err() != nil {
			return
		}
		p.reload(ctx)
	})
}
