package api

import (
	"net/http"

	"idgate/internal/api/helpers"
)

// HealthHandler returns the enhanced health check handler.
// This validates both API liveness AND database connectivity.
func (s *Server) HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.Pool == nil {
			// No database in this assembly (trap-store mode); liveness only.
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("OK"))
			return
		}

		ctx := r.Context()
		if err := s.Pool.Ping(ctx); err != nil {
			// Log the full error internally, return a generic body.
			s.Logger.Error("health_check_failed", "error", err, "detail", "database_unreachable")
			helpers.RespondJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "unhealthy",
				"error":  "service temporarily unavailable",
			})
			return
		}

		helpers.RespondJSON(w, http.StatusOK, map[string]string{
			"status": "healthy",
		})
	}
}
