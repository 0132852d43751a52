// Copyright 2026 Teradata
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/teradata-labs/chartsense/pkg/visualization"
)

// LexiconReloadCallback observes reload outcomes. err is nil on success.
type LexiconReloadCallback func(path string, err error)

// LexiconReloadConfig configures LexiconReloader.
type LexiconReloadConfig struct {
	Path       string                // Lexicon YAML file to watch
	DebounceMs int                   // Debounce delay in milliseconds (default: 500ms)
	Logger     *zap.Logger           // Logger for reload events
	OnReload   LexiconReloadCallback // Callback after each reload attempt (optional)
}

// LexiconReloader rebuilds the server's engine when the lexicon file changes.
// An invalid file is logged and the current engine stays in place.
type LexiconReloader struct {
	server  *Server
	watcher *fsnotify.Watcher
	config  LexiconReloadConfig
	logger  *zap.Logger

	timer   *time.Timer
	timerMu sync.Mutex

	doneCh chan struct{}
}

// NewLexiconReloader creates a reloader for server. Call Start to begin watching.
func NewLexiconReloader(server *Server, config LexiconReloadConfig) (*LexiconReloader, error) {
	if config.Path == "" {
		return nil, fmt.Errorf("lexicon reload requires a file path")
	}
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}
	if config.DebounceMs == 0 {
		config.DebounceMs = 500
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	return &LexiconReloader{
		server:  server,
		watcher: watcher,
		config:  config,
		logger:  config.Logger,
		doneCh:  make(chan struct{}),
	}, nil
}

// Start watches the lexicon's directory until ctx is cancelled. Editors
// often replace files by rename, so the directory is watched, not the file.
func (lr *LexiconReloader) Start(ctx context.Context) error {
	dir := filepath.Dir(lr.config.Path)
	if err := lr.watcher.Add(dir); err != nil {
		_ = lr.watcher.Close()
		close(lr.doneCh)
		return fmt.Errorf("failed to watch lexicon directory: %w", err)
	}

	lr.logger.Info("Started lexicon hot-reload watcher",
		zap.String("path", lr.config.Path),
		zap.Int("debounce_ms", lr.config.DebounceMs))

	go lr.watchLoop(ctx)
	return nil
}

// Done is closed once the watch loop has exited.
func (lr *LexiconReloader) Done() <-chan struct{} {
	return lr.doneCh
}

func (lr *LexiconReloader) watchLoop(ctx context.Context) {
	defer close(lr.doneCh)
	defer func() { _ = lr.watcher.Close() }()

	target := filepath.Clean(lr.config.Path)
	for {
		select {
		case event, ok := <-lr.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			lr.debounce()

		case err, ok := <-lr.watcher.Errors:
			if !ok {
				return
			}
			lr.logger.Error("File watcher error", zap.Error(err))

		case <-ctx.Done():
			lr.timerMu.Lock()
			if lr.timer != nil {
				lr.timer.Stop()
			}
			lr.timerMu.Unlock()
			lr.logger.Info("Lexicon hot-reload stopped")
			return
		}
	}
}

func (lr *LexiconReloader) debounce() {
	lr.timerMu.Lock()
	defer lr.timerMu.Unlock()

	if lr.timer != nil {
		lr.timer.Stop()
	}
	lr.timer = time.AfterFunc(time.Duration(lr.config.DebounceMs)*time.Millisecond, lr.Reload)
}

// Label values of lexicon_reloads_total.
const (
	reloadResultSuccess = "success"
	reloadResultError   = "error"
)

// Reload loads the lexicon file now and swaps in a new engine on success.
func (lr *LexiconReloader) Reload() {
	lexicon, err := visualization.LoadLexicon(lr.config.Path)
	if err != nil {
		lexiconReloads.WithLabelValues(reloadResultError).Inc()
		lr.logger.Error("Lexicon validation failed, keeping current engine",
			zap.String("path", lr.config.Path),
			zap.Error(err))
	} else {
		lr.server.SetEngine(visualization.NewEngine(lr.server.logger, visualization.WithLexicon(lexicon)))
		lexiconReloads.WithLabelValues(reloadResultSuccess).Inc()
		lr.logger.Info("Lexicon reloaded", zap.String("path", lr.config.Path))
	}

	if lr.config.OnReload != nil {
		lr.config.OnReload(lr.config.Path, err)
	}
}
