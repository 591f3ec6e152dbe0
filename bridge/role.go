// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package bridge

import (
	"fmt"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/luxfi/teleport"
)

// roleGuard authorizes the single approver fixed at construction.
type roleGuard struct {
	approver ids.ID
}

func (r roleGuard) require(caller ids.ID) error {
	if caller != r.approver {
		return fmt.Errorf("%w: caller %s", teleport.ErrMissingApproverRole, caller)
	}
	return nil
}
