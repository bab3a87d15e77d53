// SPDX-License-Identifier: MIT

// Package service runs merges on behalf of the CLI and the HTTP server.
//
// A Service parses raw rankings, applies its configured object ceiling,
// calls consensus.Merge, and reports each merge to slog, OpenTelemetry and an
// optional metrics.Collector. MergeBatch fans independent merges out over a
// bounded errgroup; merges share no state, so items never coordinate.
//
// Classify maps any error the package returns to a Kind that the transports
// translate into HTTP statuses or exit codes.
package service
