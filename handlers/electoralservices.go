// Copyright (c) 2025 Democracy Club CIC.
// See LICENSE for copying information.

package handlers

import (
	"errors"
	"net/http"

	"github.com/DemocracyClub/ec-postcode-lookup-pages/dcapi"
	"github.com/DemocracyClub/ec-postcode-lookup-pages/i18n"
	"github.com/DemocracyClub/ec-postcode-lookup-pages/middleware"
	"github.com/DemocracyClub/ec-postcode-lookup-pages/models"
	"github.com/DemocracyClub/ec-postcode-lookup-pages/sorter"
)

// contactsResponse is the JSON shape for the electoral services team
// lookup: contact details only, nothing about elections.
type contactsResponse struct {
	ElectoralServices *models.ElectoralServices `json:"electoral_services"`
	Registration      *models.Registration      `json:"registration,omitempty"`
}

// ElectoralServicesSearch shows the team lookup form, or redirects to the
// results page when the form was submitted.
func (a *App) ElectoralServicesSearch(w http.ResponseWriter, r *http.Request) {
	loc := i18n.FromPath(r.URL.Path)
	q := decodeQuery(r)
	if q.Postcode != "" {
		if validPostcode.MatchString(dcapi.NormalizePostcode(q.Postcode)) {
			target := localePrefix(loc) + "/electoral-services/" + dcapi.NormalizePostcode(q.Postcode)
			http.Redirect(w, r, target, http.StatusFound)
			return
		}
		q.InvalidPostcode = true
	}
	a.renderContactSearchForm(w, r, q)
}

func (a *App) renderContactSearchForm(w http.ResponseWriter, r *http.Request, q searchQuery) {
	loc := i18n.FromPath(r.URL.Path)
	var errMsg string
	if q.InvalidPostcode {
		errMsg = i18n.T(loc, "form.postcode_error")
	}
	a.render(w, r, "electoral_services_team_search.html", map[string]any{
		"Title":  i18n.T(loc, "title.electoral_services_search"),
		"Action": localePrefix(loc) + "/electoral-services",
		"Error":  errMsg,
	})
}

// ElectoralServicesResults shows the team contact details for a postcode,
// as HTML or as JSON with ?format=json.
func (a *App) ElectoralServicesResults(w http.ResponseWriter, r *http.Request) {
	loc := i18n.FromPath(r.URL.Path)
	q := decodeQuery(r)
	postcode := dcapi.NormalizePostcode(r.PathValue("postcode"))

	root, err := a.Live.GetPostcode(r.Context(), postcode)
	if err != nil {
		var badPostcode *dcapi.InvalidPostcodeError
		if errors.As(err, &badPostcode) {
			if q.Format == "json" {
				middleware.JSONResponse(w, http.StatusNotFound, map[string]string{"detail": "postcode not found"})
				return
			}
			q.InvalidPostcode = true
			a.renderContactSearchForm(w, r, q)
			return
		}
		if q.Format == "json" {
			middleware.JSONResponse(w, http.StatusServiceUnavailable, map[string]string{"detail": "upstream error"})
			return
		}
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	}

	// A split postcode still resolves to one council most of the time;
	// only fall back to the picker when the council itself is ambiguous.
	if root.AddressPicker && root.ElectoralServices == nil {
		if q.Format == "json" {
			middleware.JSONResponse(w, http.StatusNotFound, map[string]string{"detail": "postcode is split between councils"})
			return
		}
		for i := range root.Addresses {
			root.Addresses[i].URL = localePrefix(loc) + "/electoral-services/address/" + root.Addresses[i].Slug
		}
		a.render(w, r, "address_picker.html", map[string]any{
			"Title": i18n.T(loc, "title.address_picker"),
			"Root":  root,
		})
		return
	}

	if q.Format == "json" {
		resp := contactsResponse{ElectoralServices: root.ElectoralServices}
		if root.Registration != nil && !root.Registration.SameAddress(root.ElectoralServices) {
			resp.Registration = root.Registration
		}
		middleware.JSONResponse(w, http.StatusOK, resp)
		return
	}

	s, err := sorter.New(root, sorter.ContactDetails, a.Now())
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	a.render(w, r, "electoral_services_team_results.html", map[string]any{
		"Title":         s.PageTitle(loc),
		"Root":          root,
		"SplitContacts": root.Registration != nil && !root.Registration.SameAddress(root.ElectoralServices),
	})
}

// ElectoralServicesUPRNResults resolves a picker choice to its council.
func (a *App) ElectoralServicesUPRNResults(w http.ResponseWriter, r *http.Request) {
	loc := i18n.FromPath(r.URL.Path)
	root, err := a.Live.GetUPRN(r.Context(), r.PathValue("uprn"))
	if err != nil {
		a.renderContactSearchForm(w, r, searchQuery{InvalidPostcode: true})
		return
	}
	a.render(w, r, "electoral_services_team_results.html", map[string]any{
		"Title":         i18n.T(loc, "title.contact_details"),
		"Root":          root,
		"SplitContacts": root.Registration != nil && !root.Registration.SameAddress(root.ElectoralServices),
	})
}
