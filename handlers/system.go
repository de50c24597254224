// Copyright (c) 2025 Democracy Club CIC.
// See LICENSE for copying information.

package handlers

import (
	"net/http"

	"github.com/DemocracyClub/ec-postcode-lookup-pages/middleware"
)

// Healthz is the deploy health probe.
func (a *App) Healthz(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Failover always answers 400. The CDN points at this path to verify its
// error page behaviour without breaking a real route.
func (a *App) Failover(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "bad request", http.StatusBadRequest)
}
