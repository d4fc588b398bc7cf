package health

import (
	"log/slog"
	"net/http"

	"labshop/internal/handlers/respond"
)

type status struct {
	Status string `json:"status"`
}

// Handler answers liveness probes. It does not look at storage.
func Handler(log *slog.Logger) http.HandlerFunc {
	log = log.With("op", "handlers.health")

	return func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, log, http.StatusOK, status{Status: "ok"})
	}
}
