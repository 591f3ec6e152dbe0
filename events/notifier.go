// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package events

import (
	"context"

	"github.com/luxfi/teleport/payload"
)

// Notifier is told about events after the operation that emitted them has
// committed. Delivery is best effort: the log stays the source of truth.
type Notifier interface {
	Notify(ctx context.Context, seq uint64, e payload.Event)
}

// NoNotifier drops every event.
type NoNotifier struct{}

func (NoNotifier) Notify(context.Context, uint64, payload.Event) {}
