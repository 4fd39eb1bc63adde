package response

import (
	"encoding/json"
	"net/http"
)

// JSON sends a JSON response with the given status code
func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// Text sends a plain-text response with the given status code
func Text(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(message))
}

// Error responses are short plain-text bodies, matching the original
// mock API contract rather than a structured error envelope.

func BadRequest(w http.ResponseWriter, message string) {
	Text(w, http.StatusBadRequest, message)
}

func NotFound(w http.ResponseWriter, message string) {
	Text(w, http.StatusNotFound, message)
}

func Forbidden(w http.ResponseWriter, message string) {
	Text(w, http.StatusForbidden, message)
}

func InternalError(w http.ResponseWriter, message string) {
	Text(w, http.StatusInternalServerError, message)
}
