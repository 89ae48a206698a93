// internal/web/respond.go
//
// JSON response helpers shared by the admin API and the search
// endpoint.
package web

import (
	"encoding/json"
	"net/http"

	"github.com/amchibidi13/artful-data-folio-sub000/internal/admin"
)

type errorResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Message: message})
}

// writeServiceError maps a service error to its HTTP status, hiding
// internal detail behind a generic message for 500s.
func writeServiceError(w http.ResponseWriter, err error) {
	status := admin.StatusOf(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal error"
	}
	writeError(w, status, msg)
}
