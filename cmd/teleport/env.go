// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"os"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/prefixdb"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/nats-io/nats.go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/luxfi/teleport/bridge"
	"github.com/luxfi/teleport/config"
	"github.com/luxfi/teleport/events"
	"github.com/luxfi/teleport/indexer"
	"github.com/luxfi/teleport/state"
)

var indexerPrefix = []byte("indexer")

// env is everything a command that touches the store needs
type env struct {
	cfg      config.Config
	logger   logging.Logger
	registry *prometheus.Registry
	db       database.Database
	conn     *nats.Conn
	bridge   *bridge.Bridge
}

func openEnv(cmd *cobra.Command) (*env, error) {
	v, err := config.BuildViper(cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("couldn't configure flags: %w", err)
	}
	cfg, err := config.NewConfig(v)
	if err != nil {
		return nil, fmt.Errorf("couldn't build config: %w", err)
	}

	logLevel, err := logging.ToLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("error reading log level from config: %w", err)
	}
	logger := logging.NewLogger(
		"teleport",
		logging.NewWrappedCore(
			logLevel,
			os.Stderr,
			logging.JSON.ConsoleEncoder(),
		),
	)

	e := &env{
		cfg:      cfg,
		logger:   logger,
		registry: prometheus.NewRegistry(),
	}

	e.db, err = state.Open(cfg.DBType, cfg.DBDir, logger, prometheus.WrapRegistererWithPrefix("db_", e.registry))
	if err != nil {
		return nil, err
	}

	var notifier events.Notifier = events.NoNotifier{}
	if cfg.NATSURL != "" {
		e.conn, err = events.ConnectNATS(cfg.NATSURL, logger)
		if err != nil {
			_ = e.db.Close()
			return nil, err
		}
		notifier = events.NewNATSNotifier(logger, e.conn, cfg.NATSSubject)
	}

	e.bridge, err = bridge.New(e.db, bridge.Config{
		Chain:      cfg.GetChain(),
		Approver:   cfg.GetApprover(),
		Logger:     logger,
		Registerer: prometheus.WrapRegistererWithPrefix("bridge_", e.registry),
		Notifier:   notifier,
	})
	if err != nil {
		_ = e.Close()
		return nil, err
	}
	return e, nil
}

func (e *env) newIndexer() (*indexer.Indexer, error) {
	return indexer.New(
		e.logger,
		e.bridge,
		prefixdb.New(indexerPrefix, e.db),
		indexer.Config{BatchSize: e.cfg.IndexBatchSize},
	)
}

func (e *env) Close() error {
	errs := wrappers.Errs{}
	if e.conn != nil {
		errs.Add(e.conn.Drain())
	}
	errs.Add(e.db.Close())
	e.logger.Stop()
	return errs.Err
}
