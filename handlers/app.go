// Copyright (c) 2025 Democracy Club CIC.
// See LICENSE for copying information.

package handlers

import (
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"github.com/gorilla/schema"

	"github.com/DemocracyClub/ec-postcode-lookup-pages/cliparse"
	"github.com/DemocracyClub/ec-postcode-lookup-pages/dcapi"
	"github.com/DemocracyClub/ec-postcode-lookup-pages/i18n"
	"github.com/DemocracyClub/ec-postcode-lookup-pages/templates"
)

// App holds everything the handlers need. It is built once in main and
// shared; all fields are read-only after construction.
type App struct {
	Cfg     cliparse.Config
	Tmpl    *templates.Renderer
	Live    dcapi.Backend
	Sandbox dcapi.Backend

	// Now is replaceable in tests.
	Now func() time.Time
}

func NewApp(cfg cliparse.Config, tmpl *templates.Renderer, live, sandbox dcapi.Backend) *App {
	return &App{
		Cfg:     cfg,
		Tmpl:    tmpl,
		Live:    live,
		Sandbox: sandbox,
		Now:     time.Now,
	}
}

// searchQuery is the decoded query string shared by the search endpoints.
type searchQuery struct {
	Postcode        string `schema:"postcode-search"`
	BaselineDate    string `schema:"baseline_date"`
	Format          string `schema:"format"`
	InvalidPostcode bool   `schema:"invalid-postcode"`
	APIError        bool   `schema:"api-error"`
}

var queryDecoder = func() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}()

func decodeQuery(r *http.Request) searchQuery {
	var q searchQuery
	if err := queryDecoder.Decode(&q, r.URL.Query()); err != nil {
		slog.Debug("ignoring bad query params", "error", err)
	}
	return q
}

// validPostcode matches plausible UK postcodes after normalization.
var validPostcode = regexp.MustCompile(`^[A-Z]{1,2}[0-9][A-Z0-9]?[0-9][A-Z]{2}$`)

func localePrefix(loc i18n.Locale) string {
	if loc == i18n.Cy {
		return "/cy"
	}
	return ""
}

// resultsPath builds the results URL for a postcode against the given
// backend, in the request's language.
func resultsPath(loc i18n.Locale, backend dcapi.Backend, postcode string) string {
	pc := url.PathEscape(dcapi.NormalizePostcode(postcode))
	switch backend.URLPrefix() {
	case "sandbox":
		return localePrefix(loc) + "/sandbox/polling-stations/" + pc
	case "mock":
		return localePrefix(loc) + "/mock/" + pc
	}
	return localePrefix(loc) + "/polling-stations/" + pc
}

// addressPath builds the address results URL for a picker entry.
func addressPath(loc i18n.Locale, backend dcapi.Backend, slug string) string {
	s := url.PathEscape(slug)
	switch backend.URLPrefix() {
	case "sandbox":
		return localePrefix(loc) + "/sandbox/address/" + s
	case "mock":
		return localePrefix(loc) + "/mock/address/" + s
	}
	return localePrefix(loc) + "/address/" + s
}

// baseline parses the baseline_date override used by the mock pages.
// Anything unparseable means "today".
func (a *App) baseline(q searchQuery) time.Time {
	if q.BaselineDate != "" {
		if t, err := time.Parse(time.DateOnly, q.BaselineDate); err == nil {
			return t
		}
	}
	now := a.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func (a *App) render(w http.ResponseWriter, r *http.Request, name string, data map[string]any) {
	loc := i18n.FromPath(r.URL.Path)
	if data == nil {
		data = map[string]any{}
	}
	// Welsh speakers landing on an English page get a link to the same
	// path under /cy.
	if loc == i18n.En && i18n.Match(r.Header.Get("Accept-Language")) == i18n.Cy {
		data["WelshAlternate"] = "/cy" + r.URL.Path
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := a.Tmpl.Render(w, loc, name, data); err != nil {
		slog.Error("template render failed", "template", name, "error", err)
	}
}
