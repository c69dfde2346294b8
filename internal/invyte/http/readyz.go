package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/invyte/internal/invyte/store"
	"github.com/aussiebroadwan/invyte/pkg/httpx"
	"github.com/aussiebroadwan/invyte/pkg/invytesdk"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe that also pings the database
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	invytesdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	invytesdk.HealthResponse	"service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &invytesdk.HealthChecks{Database: "ok"}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, statusCode, invytesdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
