// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/spf13/pflag"

	"github.com/luxfi/teleport/state"
	"github.com/luxfi/teleport/types"
)

const (
	defaultLogLevel       = "info"
	defaultDBType         = state.LevelDB
	defaultDBDir          = ".teleport/db"
	defaultChainType      = "native"
	defaultChainID        = 1010
	defaultNATSSubject    = "teleport"
	defaultMetricsPort    = 9090
	defaultIndexInterval  = 5 * time.Second
	defaultIndexBatchSize = 256
)

var errMissingApprover = errors.New("approver is required")

// Config is the configuration of a single bridge deployment.
type Config struct {
	LogLevel       string        `mapstructure:"log-level" json:"log-level"`
	DBType         string        `mapstructure:"db-type" json:"db-type"`
	DBDir          string        `mapstructure:"db-dir" json:"db-dir"`
	ChainType      string        `mapstructure:"chain-type" json:"chain-type"`
	ChainID        uint32        `mapstructure:"chain-id" json:"chain-id"`
	Approver       string        `mapstructure:"approver" json:"approver"`
	NATSURL        string        `mapstructure:"nats-url" json:"nats-url"`
	NATSSubject    string        `mapstructure:"nats-subject" json:"nats-subject"`
	MetricsPort    uint16        `mapstructure:"metrics-port" json:"metrics-port"`
	IndexInterval  time.Duration `mapstructure:"index-interval" json:"index-interval"`
	IndexBatchSize int           `mapstructure:"index-batch-size" json:"index-batch-size"`

	// convenience fields to access parsed data after validation
	chain    types.Chain
	approver ids.ID
}

// Validate parses the derived fields. It must be called before GetChain or
// GetApprover.
func (c *Config) Validate() error {
	if _, err := logging.ToLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid %s: %w", LogLevelKey, err)
	}
	switch c.DBType {
	case state.LevelDB:
		if c.DBDir == "" {
			return fmt.Errorf("%s is required for %s", DBDirKey, state.LevelDB)
		}
	case state.MemDB:
	default:
		return fmt.Errorf("invalid %s %q", DBTypeKey, c.DBType)
	}

	chainType, err := types.ChainTypeFromString(c.ChainType)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", ChainTypeKey, err)
	}
	c.chain = types.Chain{Type: chainType, ID: c.ChainID}

	if c.Approver == "" {
		return errMissingApprover
	}
	approver, err := ids.FromString(c.Approver)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", ApproverKey, err)
	}
	c.approver = approver

	if c.IndexInterval <= 0 {
		return fmt.Errorf("%s must be positive", IndexIntervalKey)
	}
	if c.IndexBatchSize <= 0 {
		return fmt.Errorf("%s must be positive", IndexBatchSizeKey)
	}
	return nil
}

func (c *Config) GetChain() types.Chain {
	return c.chain
}

func (c *Config) GetApprover() ids.ID {
	return c.approver
}

// AddFlags registers every configuration key on fs.
func AddFlags(fs *pflag.FlagSet) {
	fs.String(ConfigFileKey, "", "Specifies the JSON config file")
	fs.String(LogLevelKey, defaultLogLevel, "Log level")
	fs.String(DBTypeKey, defaultDBType, "Database backend, leveldb or memdb")
	fs.String(DBDirKey, defaultDBDir, "LevelDB directory")
	fs.String(ChainTypeKey, defaultChainType, "Local chain type")
	fs.Uint32(ChainIDKey, defaultChainID, "Local chain id")
	fs.String(ApproverKey, "", "Approver identity")
	fs.String(NATSURLKey, "", "NATS server to publish events to, disabled if empty")
	fs.String(NATSSubjectKey, defaultNATSSubject, "Subject prefix of published events")
	fs.Uint16(MetricsPortKey, defaultMetricsPort, "Port of the /metrics and /health endpoints")
	fs.Duration(IndexIntervalKey, defaultIndexInterval, "Interval between index syncs")
	fs.Int(IndexBatchSizeKey, defaultIndexBatchSize, "Events indexed per atomic batch")
}
