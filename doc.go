// Copyright (c) 2025 Democracy Club CIC.
// See LICENSE for copying information.

/*
Package main provides the entry point for the postcode lookup server.

The service takes a UK postcode and shows upcoming elections for that
area: the ballots, the registration and postal vote deadlines, and the
polling station, in English or in Welsh. Data comes from the Democracy
Club elections API; this service holds no state of its own.

# Starting the Server

	API_KEY=... go run main.go

Or with flags:

	go run main.go -p 8010 -api-key "..."

# Configuration

Optional settings (flags or environment):

  - PORT (-p): Server port (default: 8010)
  - API_KEY (-api-key): Elections API key
  - API_BASE_URL (-api-base-url): Override the live API base URL
  - SANDBOX_BASE_URL (-sandbox-base-url): Override the sandbox base URL
  - DEBUG (-debug): Serve the debug index at /
  - AUTH_USERNAME / AUTH_PASSWORD: Enable basic auth when both are set

A .env file in the working directory is loaded if present.

# Architecture

  - handlers: HTTP request handlers (search, results, contact lookup)
  - router: Route definitions using Go 1.22+ routing, English and Welsh
  - middleware: Logging, metrics, basic auth, panic recovery
  - sorter: Classifies API responses and orders page sections
  - timetable: Statutory election timetable arithmetic
  - dcapi: Elections API client plus sandbox and mock backends
  - models: API response types
  - templates, i18n: Rendering and the bilingual string catalog
  - postalvotes: Postal vote dispatch date data
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
