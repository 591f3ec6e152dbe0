// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package config

const (
	// Command line option keys
	ConfigFileKey = "config-file"

	// Environment variable keys
	ConfigFileEnvKey = "CONFIG_FILE"

	// Top-level configuration keys
	LogLevelKey       = "log-level"
	DBTypeKey         = "db-type"
	DBDirKey          = "db-dir"
	ChainTypeKey      = "chain-type"
	ChainIDKey        = "chain-id"
	ApproverKey       = "approver"
	NATSURLKey        = "nats-url"
	NATSSubjectKey    = "nats-subject"
	MetricsPortKey    = "metrics-port"
	IndexIntervalKey  = "index-interval"
	IndexBatchSizeKey = "index-batch-size"
)
