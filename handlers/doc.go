// Copyright (c) 2025 Democracy Club CIC.
// See LICENSE for copying information.

/*
Package handlers contains the HTTP request handlers.

All handlers are methods on App, which carries the configuration, the
template renderer and the API backends. Build one in main and hand it to
the router:

	app := handlers.NewApp(cfg, tmpl, live, sandbox)

# Page Flow

The search form submits to /search, which redirects to the canonical
results URL for the postcode:

	GET /                                → search form (debug index in debug mode)
	GET /search?postcode-search=...      → redirect to results
	GET /polling-stations/{postcode}     → results
	GET /address/{uprn}                  → results for one address

Split postcodes render an address picker whose links resolve through the
uprn route. The same views exist under /sandbox (sandbox API) and /mock
(canned in-process responses); mock pages accept a baseline_date query
to preview timetable stages. Welsh versions of every page live under
/cy.

# Electoral Services Lookup

	GET /electoral-services                 → lookup form
	GET /electoral-services/{postcode}      → council contact details

Append ?format=json for a machine-readable version stripped to the
contact fields.

# Failover Drills

Two reserved postcodes rehearse the CDN's error handling: FA1LL answers
400 and FA2LL panics, surfacing as a 500 through the recovery
middleware.
*/
package handlers
