// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/luxfi/teleport/healthcheck"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the event indexer with metrics and health endpoints",
	Args:  cobra.NoArgs,
	RunE: withEnv(func(cmd *cobra.Command, e *env) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		idx, err := e.newIndexer()
		if err != nil {
			return err
		}

		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(e.registry, promhttp.HandlerOpts{}))
		healthcheck.HandleHealthCheckRequest(mux,
			healthcheck.Check{
				Name: "database",
				Check: func(ctx context.Context) error {
					_, err := e.db.HealthCheck(ctx)
					return err
				},
			},
			healthcheck.Check{
				Name: "indexer",
				Check: func(context.Context) error {
					_, err := idx.Next()
					return err
				},
			},
		)

		e.logger.Info("Initialization complete",
			zap.Stringer("chain", e.cfg.GetChain()),
			zap.Uint16("metricsPort", e.cfg.MetricsPort),
		)

		errGroup, ctx := errgroup.WithContext(ctx)
		errGroup.Go(func() error {
			err := idx.Run(ctx, e.cfg.IndexInterval)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		})
		errGroup.Go(func() error {
			httpServer := &http.Server{
				Addr:    fmt.Sprintf(":%d", e.cfg.MetricsPort),
				Handler: mux,
			}
			// Handle Graceful shutdown
			go func() {
				<-ctx.Done()
				_ = httpServer.Shutdown(context.Background())
			}()

			if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return fmt.Errorf("failed to start metrics server: %w", err)
			}
			return nil
		})

		if err := errGroup.Wait(); err != nil {
			e.logger.Error("Exited with error", zap.Error(err))
			return err
		}
		e.logger.Info("Shut down")
		return nil
	}),
}
