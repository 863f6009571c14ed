package server

import (
	"encoding/json"
	"net/http"
	"strings"
)

// ErrorResponse is the client-error format for REST API responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ServerErrorResponse is the server-error format, exposing the raw error
// text under the "server error" key.
type ServerErrorResponse struct {
	ServerError string `json:"server error"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// WriteError writes a 4xx JSON error response.
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, ErrorResponse{Error: message})
}

// WriteServerError writes a 500 JSON response carrying the raw error text.
func WriteServerError(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusInternalServerError, ServerErrorResponse{ServerError: message})
}

// RequireMethod validates the HTTP method and returns true if it matches.
// If it doesn't match, it writes a 405 response and returns false.
func RequireMethod(w http.ResponseWriter, r *http.Request, methods ...string) bool {
	for _, m := range methods {
		if r.Method == m {
			return true
		}
	}
	w.Header().Set("Allow", strings.Join(methods, ", "))
	WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
	return false
}

// RequireJSONContentType checks that the request carries an application/json
// content type, writing a 415 response otherwise. Media type parameters
// (charset) are tolerated.
func RequireJSONContentType(w http.ResponseWriter, r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	if mediaType, _, found := strings.Cut(ct, ";"); found {
		ct = mediaType
	}
	if strings.TrimSpace(ct) != "application/json" {
		WriteError(w, http.StatusUnsupportedMediaType, "Expected application/json media type")
		return false
	}
	return true
}

// DecodeJSON reads and decodes JSON from the request body into v.
// Returns false and writes a 400 malformed-data error if decoding fails.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if r.Body == nil {
		WriteError(w, http.StatusBadRequest, "Malformed data")
		return false
	}
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB limit
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		WriteError(w, http.StatusBadRequest, "Malformed data")
		return false
	}
	return true
}
