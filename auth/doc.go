// Copyright (c) 2025 Democracy Club CIC.
// See LICENSE for copying information.

// Package auth implements the constant-time credential check behind the
// optional basic auth gate used before launch.
package auth
