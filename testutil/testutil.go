// Copyright (c) 2025 Democracy Club CIC.
// See LICENSE for copying information.

// Package testutil builds a fully wired test server around the mock
// backend so handler and router tests never touch the network.
package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DemocracyClub/ec-postcode-lookup-pages/cliparse"
	"github.com/DemocracyClub/ec-postcode-lookup-pages/dcapi"
	"github.com/DemocracyClub/ec-postcode-lookup-pages/handlers"
	"github.com/DemocracyClub/ec-postcode-lookup-pages/router"
	"github.com/DemocracyClub/ec-postcode-lookup-pages/templates"
)

// Baseline is the fixed "today" used across tests. A Friday, well clear
// of bank holidays.
var Baseline = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

// NewApp builds an App backed entirely by the mock backend, pinned to
// Baseline.
func NewApp(t *testing.T, cfg cliparse.Config) *handlers.App {
	t.Helper()

	tmpl, err := templates.New()
	if err != nil {
		t.Fatalf("parsing templates: %v", err)
	}

	mock := dcapi.NewMockBackend(Baseline)
	app := handlers.NewApp(cfg, tmpl, mock, mock)
	app.Now = func() time.Time { return Baseline }
	return app
}

// NewServer wraps NewApp in the full router and middleware chain.
func NewServer(t *testing.T, cfg cliparse.Config) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(router.NewRouter(NewApp(t, cfg)))
	t.Cleanup(srv.Close)
	return srv
}

// Get fetches a URL without following redirects and returns the response
// and its body.
func Get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	resp, err := client.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body for %s: %v", url, err)
	}
	return resp, string(body)
}
