// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package healthcheck

import (
	"context"
	"net/http"

	"github.com/alexliesenfeld/health"
)

// Check is one named health check
type Check struct {
	Name  string
	Check func(context.Context) error
}

// HandleHealthCheckRequest serves the combined result of checks on /health.
func HandleHealthCheckRequest(mux *http.ServeMux, checks ...Check) {
	opts := make([]health.CheckerOption, 0, len(checks))
	for _, c := range checks {
		opts = append(opts, health.WithCheck(health.Check{
			Name:  c.Name,
			Check: c.Check,
		}))
	}
	healthChecker := health.NewChecker(opts...)

	mux.Handle("/health", health.NewHandler(healthChecker))
}
