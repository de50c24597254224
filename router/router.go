// Copyright (c) 2025 Democracy Club CIC.
// See LICENSE for copying information.

package router

import (
	"io/fs"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/DemocracyClub/ec-postcode-lookup-pages/auth"
	"github.com/DemocracyClub/ec-postcode-lookup-pages/handlers"
	"github.com/DemocracyClub/ec-postcode-lookup-pages/middleware"
	"github.com/DemocracyClub/ec-postcode-lookup-pages/templates"
)

// NewRouter wires every route, with the Welsh site mirrored under /cy.
func NewRouter(app *handlers.App) http.Handler {
	mux := http.NewServeMux()

	// Health check and CDN failover probe
	mux.HandleFunc("GET /healthz", app.Healthz)
	mux.HandleFunc("GET /failover", app.Failover)

	mux.Handle("GET /metrics", promhttp.Handler())

	staticRoot, err := fs.Sub(templates.StaticFS, "static")
	if err != nil {
		panic(err)
	}
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(staticRoot)))

	// Search form and results, English and Welsh
	for _, prefix := range []string{"", "/cy"} {
		mux.HandleFunc("GET "+prefix+"/{$}", app.Index)
		mux.HandleFunc("GET "+prefix+"/search", app.Search)

		mux.HandleFunc("GET "+prefix+"/polling-stations/{postcode}", app.PostcodeView)
		mux.HandleFunc("GET "+prefix+"/address/{uprn}", app.UPRNView)

		mux.HandleFunc("GET "+prefix+"/sandbox/polling-stations/{postcode}", app.SandboxPostcodeView)
		mux.HandleFunc("GET "+prefix+"/sandbox/address/{uprn}", app.SandboxUPRNView)

		mux.HandleFunc("GET "+prefix+"/mock/{postcode}", app.MockPostcodeView)
		mux.HandleFunc("GET "+prefix+"/mock/address/{uprn}", app.MockUPRNView)

		mux.HandleFunc("GET "+prefix+"/electoral-services", app.ElectoralServicesSearch)
		mux.HandleFunc("GET "+prefix+"/electoral-services/{postcode}", app.ElectoralServicesResults)
		mux.HandleFunc("GET "+prefix+"/electoral-services/address/{uprn}", app.ElectoralServicesUPRNResults)
	}

	var handler http.Handler = mux
	if app.Cfg.EnableAuth {
		creds := auth.NewCredentials(app.Cfg.AuthUsername, app.Cfg.AuthPassword)
		handler = middleware.WithBasicAuth(creds, handler)
	}
	handler = middleware.WithForwardedHost(handler)
	handler = middleware.WithMetrics(handler)
	handler = middleware.WithLogging(handler)
	handler = middleware.WithRecovery(handler)
	return handler
}
