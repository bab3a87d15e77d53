// SPDX-License-Identifier: MIT

// Package server exposes the merge service over HTTP with gin.
//
// Routes:
//
//	POST /v1/merge        {"a": <ranking>, "b": <ranking>}
//	POST /v1/merge/batch  {"items": [{"a": ..., "b": ...}, ...]}
//	GET  /healthz
//	GET  /metrics         (when a metrics.Collector is configured)
//
// A ranking is a JSON array such as [1, [2, 3]] or a string holding loose
// JSON. Every response carries the request id, echoed from X-Request-ID or
// generated.
package server
