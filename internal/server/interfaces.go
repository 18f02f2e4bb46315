// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server is the lifecycle contract of the development API server.
type Server interface {
	// RunServer serves requests until a stop signal arrives.
	RunServer()

	// Run serves requests until ctx is done, then shuts down.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server.
	Shutdown()
}
