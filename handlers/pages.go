// Copyright (c) 2025 Democracy Club CIC.
// See LICENSE for copying information.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/DemocracyClub/ec-postcode-lookup-pages/dcapi"
	"github.com/DemocracyClub/ec-postcode-lookup-pages/i18n"
	"github.com/DemocracyClub/ec-postcode-lookup-pages/models"
	"github.com/DemocracyClub/ec-postcode-lookup-pages/sorter"
)

// Failover drill postcodes. The CDN's failover behaviour is rehearsed by
// requesting these against production; one exercises the 400 path, the
// other an unhandled error.
const (
	drillPostcode400   = "FA1LL"
	drillPostcodePanic = "FA2LL"
)

// Index handles GET / and GET /cy/. In debug mode the root shows the
// debug index instead of the search form.
func (a *App) Index(w http.ResponseWriter, r *http.Request) {
	if a.Cfg.Debug {
		a.DebugIndex(w, r)
		return
	}
	a.renderSearchForm(w, r, decodeQuery(r))
}

func (a *App) renderSearchForm(w http.ResponseWriter, r *http.Request, q searchQuery) {
	loc := i18n.FromPath(r.URL.Path)
	a.render(w, r, "index.html", map[string]any{
		"Title":           i18n.T(loc, "title.index"),
		"SearchAction":    localePrefix(loc) + "/search",
		"InvalidPostcode": q.InvalidPostcode,
		"APIError":        q.APIError,
	})
}

// Search handles the postcode form submission and redirects to the
// canonical results URL. Obviously bad postcodes never reach the API.
func (a *App) Search(w http.ResponseWriter, r *http.Request) {
	loc := i18n.FromPath(r.URL.Path)
	q := decodeQuery(r)
	if q.Postcode == "" {
		http.Redirect(w, r, localePrefix(loc)+"/", http.StatusFound)
		return
	}
	if !validPostcode.MatchString(dcapi.NormalizePostcode(q.Postcode)) {
		q.InvalidPostcode = true
		a.renderSearchForm(w, r, q)
		return
	}
	http.Redirect(w, r, resultsPath(loc, a.Live, q.Postcode), http.StatusFound)
}

// PostcodeView handles the live results page.
func (a *App) PostcodeView(w http.ResponseWriter, r *http.Request) {
	a.postcodeResults(w, r, a.Live)
}

// SandboxPostcodeView serves the same page against the sandbox API.
func (a *App) SandboxPostcodeView(w http.ResponseWriter, r *http.Request) {
	a.postcodeResults(w, r, a.Sandbox)
}

// MockPostcodeView serves canned responses without touching the network.
// Fixture poll dates are anchored to today; a baseline_date query moves
// the classification date instead, so every timetable stage can be
// previewed by stepping it backwards or forwards.
func (a *App) MockPostcodeView(w http.ResponseWriter, r *http.Request) {
	a.postcodeResults(w, r, dcapi.NewMockBackend(a.baseline(searchQuery{})))
}

func (a *App) postcodeResults(w http.ResponseWriter, r *http.Request, backend dcapi.Backend) {
	postcode := dcapi.NormalizePostcode(r.PathValue("postcode"))

	switch postcode {
	case drillPostcode400:
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	case drillPostcodePanic:
		panic("failover drill postcode requested")
	}

	root, err := backend.GetPostcode(r.Context(), postcode)
	if err != nil {
		a.redirectForError(w, r, err)
		return
	}
	a.renderResults(w, r, backend, root)
}

// UPRNView handles the live per-address results page.
func (a *App) UPRNView(w http.ResponseWriter, r *http.Request) {
	a.uprnResults(w, r, a.Live)
}

func (a *App) SandboxUPRNView(w http.ResponseWriter, r *http.Request) {
	a.uprnResults(w, r, a.Sandbox)
}

func (a *App) MockUPRNView(w http.ResponseWriter, r *http.Request) {
	a.uprnResults(w, r, dcapi.NewMockBackend(a.baseline(searchQuery{})))
}

func (a *App) uprnResults(w http.ResponseWriter, r *http.Request, backend dcapi.Backend) {
	root, err := backend.GetUPRN(r.Context(), r.PathValue("uprn"))
	if err != nil {
		a.redirectForError(w, r, err)
		return
	}
	a.renderResults(w, r, backend, root)
}

// referenceDate is the date the sorter classifies against: the mock
// pages honour a baseline_date override, everything else uses today.
func (a *App) referenceDate(r *http.Request, backend dcapi.Backend) time.Time {
	query := decodeQuery(r)
	if backend.URLPrefix() != "mock" {
		query.BaselineDate = ""
	}
	return a.baseline(query)
}

// redirectForError sends the user back to the search form with a flag the
// form can explain. Unknown postcodes and addresses read as input errors,
// anything else as an API problem.
func (a *App) redirectForError(w http.ResponseWriter, r *http.Request, err error) {
	loc := i18n.FromPath(r.URL.Path)
	var badPostcode *dcapi.InvalidPostcodeError
	var badUPRN *dcapi.InvalidUPRNError
	if errors.As(err, &badPostcode) || errors.As(err, &badUPRN) {
		http.Redirect(w, r, localePrefix(loc)+"/?invalid-postcode=1", http.StatusFound)
		return
	}
	slog.Error("elections api lookup failed", "path", r.URL.Path, "error", err)
	http.Redirect(w, r, localePrefix(loc)+"/?api-error=1", http.StatusFound)
}

func (a *App) renderResults(w http.ResponseWriter, r *http.Request, backend dcapi.Backend, root *models.RootModel) {
	loc := i18n.FromPath(r.URL.Path)

	if root.AddressPicker {
		for i := range root.Addresses {
			root.Addresses[i].URL = addressPath(loc, backend, root.Addresses[i].Slug)
		}
		a.render(w, r, "address_picker.html", map[string]any{
			"Title": i18n.T(loc, "title.address_picker"),
			"Root":  root,
		})
		return
	}

	s, err := sorter.New(root, sorter.UpcomingElections, a.referenceDate(r, backend))
	if err != nil {
		slog.Error("classifying response failed", "path", r.URL.Path, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	name, err := s.MainTemplateName()
	if err != nil {
		slog.Error("no template for response", "path", r.URL.Path, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	a.render(w, r, name, map[string]any{
		"Title":         s.PageTitle(loc),
		"TOC":           s.TOCItems(loc),
		"Sorter":        s,
		"Root":          root,
		"SplitContacts": root.Registration != nil && !root.Registration.SameAddress(root.ElectoralServices),
	})
}
