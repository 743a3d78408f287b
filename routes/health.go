/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"net/http"

	"github.com/flamego/flamego"

	"github.com/humaidq/clinicalc/db"
)

// Healthz reports liveness and, when configured, database reachability.
func Healthz(c flamego.Context) {
	status := map[string]string{"status": "ok", "database": "disabled"}

	if db.Enabled() {
		if err := db.Ping(c.Request().Context()); err != nil {
			logger.Warn("Database health check failed", "error", err)

			status["status"] = "degraded"
			status["database"] = "unreachable"

			writeJSONStatus(c, http.StatusServiceUnavailable, status)

			return
		}

		status["database"] = "ok"
	}

	writeJSON(c, status)
}
