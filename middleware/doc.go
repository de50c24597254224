// Copyright (c) 2025 Democracy Club CIC.
// See LICENSE for copying information.

// Package middleware provides the HTTP middleware chain: request
// logging with correlation ids, Prometheus metrics, basic auth,
// X-Forwarded-Host rewriting and panic recovery, plus small response
// helpers shared by handlers.
package middleware
