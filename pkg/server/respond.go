package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"selam-hq/callisto/pkg/loader"
)

// errorResponse is the JSON body for failed requests.
type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON encodes v as the response body.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error body.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeLoaderError maps loader errors to HTTP statuses: missing documents
// become 404, validation failures 422, everything else 500.
func writeLoaderError(w http.ResponseWriter, err error) {
	var le *loader.LoadError
	if errors.As(err, &le) && le.IsNotFound() {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	var ve *loader.ValidationError
	if errors.As(err, &ve) {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	writeError(w, http.StatusInternalServerError, err.Error())
}
