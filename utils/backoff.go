// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"context"
	"time"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// WithRetriesTimeout uses an exponential backoff to run the operation until it
// succeeds, returns a permanent error, ctx is cancelled or timeout limit has
// been reached.
func WithRetriesTimeout(
	ctx context.Context,
	logger logging.Logger,
	operation backoff.Operation,
	timeout time.Duration,
	logMessage string,
	fields ...zap.Field,
) error {
	expBackOff := backoff.NewExponentialBackOff(
		backoff.WithMaxElapsedTime(timeout),
	)
	notify := func(err error, duration time.Duration) {
		logger.Warn(logMessage,
			append(fields, zap.Duration("retryIn", duration), zap.Error(err))...,
		)
	}
	return backoff.RetryNotify(operation, backoff.WithContext(expBackOff, ctx), notify)
}

// Permanent stops WithRetriesTimeout from retrying err.
func Permanent(err error) error {
	return backoff.Permanent(err)
}
