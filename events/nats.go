// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/luxfi/teleport/payload"
	"github.com/luxfi/teleport/utils"
)

const (
	defaultConnectTimeout = 10 * time.Second
	defaultPublishTimeout = 5 * time.Second
)

// Publisher is the part of *nats.Conn the notifier needs
type Publisher interface {
	Publish(subject string, data []byte) error
}

var _ Publisher = (*nats.Conn)(nil)

// ConnectNATS dials url and keeps reconnecting for the life of the process.
func ConnectNATS(url string, logger logging.Logger) (*nats.Conn, error) {
	conn, err := nats.Connect(url,
		nats.Name("teleport"),
		nats.Timeout(defaultConnectTimeout),
		nats.ReconnectWait(5*time.Second),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			logger.Warn("NATS disconnected", zap.Error(err))
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", zap.String("url", nc.ConnectedUrl()))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS at %s: %w", url, err)
	}
	return conn, nil
}

// NATSNotifier publishes each raw record on <subject>.<event name>.
type NATSNotifier struct {
	logger  logging.Logger
	conn    Publisher
	subject string
	timeout time.Duration
}

func NewNATSNotifier(logger logging.Logger, conn Publisher, subject string) *NATSNotifier {
	return &NATSNotifier{
		logger:  logger,
		conn:    conn,
		subject: subject,
		timeout: defaultPublishTimeout,
	}
}

// Subject returns the subject events named name are published on.
func (n *NATSNotifier) Subject(name string) string {
	return n.subject + "." + name
}

func (n *NATSNotifier) Notify(ctx context.Context, seq uint64, e payload.Event) {
	subject := n.Subject(e.Name())
	data := e.Bytes()
	err := utils.WithRetriesTimeout(
		ctx,
		n.logger,
		func() error {
			err := n.conn.Publish(subject, data)
			if errors.Is(err, nats.ErrConnectionClosed) {
				return utils.Permanent(err)
			}
			return err
		},
		n.timeout,
		"Failed to publish event, retrying",
		zap.String("subject", subject),
		zap.Uint64("seq", seq),
	)
	if err != nil {
		n.logger.Error(
			"Failed to publish event",
			zap.String("subject", subject),
			zap.Uint64("seq", seq),
			zap.Error(err),
		)
	}
}
