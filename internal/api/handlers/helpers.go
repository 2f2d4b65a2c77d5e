package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"pickup-route-service/internal/api/dto"
	"pickup-route-service/internal/platform/obs"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: req_id=%s path=%s err=%v", obs.RequestID(r.Context()), r.URL.Path, err)
	}
}

// writeError answers with an error body that carries the request ID, so a
// client report can be matched with the server log.
func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, dto.ErrorResponse{
		Error:     msg,
		RequestID: obs.RequestID(r.Context()),
	})
}

// writeInternal logs err, which may expose storage details, and sends the
// client a generic 500.
func writeInternal(w http.ResponseWriter, r *http.Request, op string, err error) {
	log.Printf("req_id=%s op=%s status=500 err=%v", obs.RequestID(r.Context()), op, err)
	writeError(w, r, http.StatusInternalServerError, "internal server error")
}
