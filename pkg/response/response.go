// Package response writes the API's JSON bodies. The shapes are part of the
// wire contract (clients key on fields like access, role, done), so handlers
// always emit payloads verbatim rather than wrapping them in an envelope.
package response

import (
	"encoding/json"
	"net/http"
)

// JSON writes v as the response body with the given status.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// Denied answers 401 {"access":"denied"} — missing or invalid credential.
func Denied(w http.ResponseWriter) {
	JSON(w, http.StatusUnauthorized, map[string]string{"access": "denied"})
}

// Forbidden answers 403 {"access":"forbidden"} — valid credential, wrong
// identity or role.
func Forbidden(w http.ResponseWriter) {
	JSON(w, http.StatusForbidden, map[string]string{"access": "forbidden"})
}

// Internal answers a generic 500. Store failures are logged at the request
// scope and collapse to this body; no structured error detail leaves the
// process.
func Internal(w http.ResponseWriter) {
	JSON(w, http.StatusInternalServerError, map[string]string{"message": "Internal Server Error"})
}

// BadRequest answers 400 with a short message.
func BadRequest(w http.ResponseWriter, message string) {
	JSON(w, http.StatusBadRequest, map[string]string{"message": message})
}
