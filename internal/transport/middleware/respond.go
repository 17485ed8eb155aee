package middleware

import (
	"encoding/json"
	"net/http"
)

// writeErrorJSON writes the same {"error": msg} body the REST handlers use.
func writeErrorJSON(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
