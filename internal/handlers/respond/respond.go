package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	serviceerrors "labshop/internal/service"
	"labshop/pkg/lib/logger/sl"
)

const StatusClientClosedRequest = 499

// MaxBodyBytes caps request bodies read by the handlers.
const MaxBodyBytes = 1 << 20

func JSON(w http.ResponseWriter, log *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		// headers are already out, nothing left to tell the client
		log.Error("Failed to respond to user", sl.Err(err))
	}
}

// ServiceError writes the status matching a service error. msg is used for
// errors without a dedicated status.
func ServiceError(w http.ResponseWriter, log *slog.Logger, err error, msg string) {
	switch {
	case errors.Is(err, serviceerrors.ErrContextCanceled):
		log.Warn("Context canceled", sl.Err(err))
		http.Error(w, "Context canceled", StatusClientClosedRequest)
	case errors.Is(err, serviceerrors.ErrDeadlineExceeded):
		log.Warn("Deadline exceeded", sl.Err(err))
		http.Error(w, "Deadline exceeded", http.StatusGatewayTimeout)
	case errors.Is(err, serviceerrors.ErrStorageUnavailable):
		log.Error("Storage unavailable", sl.Err(err))
		http.Error(w, "Storage unavailable", http.StatusServiceUnavailable)
	default:
		log.Error(msg, sl.Err(err))
		http.Error(w, msg, http.StatusInternalServerError)
	}
}
