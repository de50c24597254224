// Copyright (c) 2025 Democracy Club CIC.
// See LICENSE for copying information.

/*
Package router defines the HTTP routes.

# Route Registration

NewRouter returns the full handler chain:

	handler := router.NewRouter(app)

# Endpoints

System:

	GET /healthz  - deploy health probe
	GET /failover - always 400, for CDN failover checks
	GET /metrics  - Prometheus metrics
	GET /static/  - embedded css/js

Pages (each also available under /cy):

	GET /                                  - search form
	GET /search                            - form target, redirects
	GET /polling-stations/{postcode}       - election results
	GET /address/{uprn}                    - results for one address
	GET /sandbox/polling-stations/{postcode}
	GET /sandbox/address/{uprn}
	GET /mock/{postcode}
	GET /mock/address/{uprn}
	GET /electoral-services                - council lookup form
	GET /electoral-services/{postcode}     - council contact details
	GET /electoral-services/address/{uprn}

# Middleware

Requests pass through recovery, logging, metrics, X-Forwarded-Host
rewriting and, when credentials are configured, basic auth. The health
probe bypasses auth.
*/
package router
