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

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/teradata-labs/chartsense/internal/log"
	"github.com/teradata-labs/chartsense/pkg/server"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve chart suggestions over HTTP",
	Long: heredoc.Doc(`
		Start the HTTP API.

		Endpoints:
		  POST /api/suggest-charts  {"data": [...], "question": "..."}
		  POST /api/analyze         same body, returns the structural analysis
		  GET  /health
		  GET  /metrics             Prometheus metrics

		When a lexicon file is configured and hot reload is on, edits to the
		file take effect without a restart.`),
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("host", "0.0.0.0", "HTTP listen host")
	serveCmd.Flags().Int("port", 8080, "HTTP listen port")
	serveCmd.Flags().Bool("hot-reload", true, "reload the lexicon file when it changes")

	_ = viper.BindPFlag("server.host", serveCmd.Flags().Lookup("host"))
	_ = viper.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))
	_ = viper.BindPFlag("lexicon.hot_reload", serveCmd.Flags().Lookup("hot-reload"))

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return serve(ctx, config, log.Logger())
}

// serve runs the HTTP server (and the lexicon watcher, when configured)
// until ctx is cancelled or the server fails.
func serve(ctx context.Context, cfg *Config, logger *zap.Logger) error {
	engine, err := newEngine(cfg, logger)
	if err != nil {
		return err
	}

	srvCfg := server.DefaultConfig()
	srvCfg.Addr = cfg.Server.Addr()
	srvCfg.MaxBodyBytes = cfg.Server.MaxBodyBytes
	srvCfg.Metrics = cfg.Server.Metrics
	srvCfg.CORS.Enabled = cfg.Server.CORS.Enabled
	if len(cfg.Server.CORS.AllowedOrigins) > 0 {
		srvCfg.CORS.AllowedOrigins = cfg.Server.CORS.AllowedOrigins
	}
	srv := server.NewServer(engine, srvCfg, logger)

	g, gctx := errgroup.WithContext(ctx)

	if cfg.Lexicon.Path != "" && cfg.Lexicon.HotReload {
		reloader, err := server.NewLexiconReloader(srv, server.LexiconReloadConfig{
			Path:       cfg.Lexicon.Path,
			DebounceMs: cfg.Lexicon.DebounceMs,
			Logger:     logger,
		})
		if err != nil {
			return err
		}
		if err := reloader.Start(gctx); err != nil {
			return err
		}
		g.Go(func() error {
			<-reloader.Done()
			return nil
		})
	}

	g.Go(func() error {
		return srv.Start(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Stop(shutdownCtx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("shutdown failed: %w", err)
		}
		return nil
	})

	return g.Wait()
}
