package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/AlvaroRaul7/wpz-test/internal/upstream"
)

// respondWithError sends a JSON error payload.
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

// respondWithJSON sends a JSON response.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		log.Printf("ERROR: Failed to marshal JSON response: %v", payload)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Failed to marshal JSON response"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		log.Printf("ERROR: Failed to write JSON response: %v", err)
	}
}

func mapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, upstream.ErrUnavailable), errors.Is(err, upstream.ErrMalformed):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
