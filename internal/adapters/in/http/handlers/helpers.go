// internal/adapters/in/http/handlers/helpers.go
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErrorMsg(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

func methodNotAllowed(w http.ResponseWriter) {
	writeErrorMsg(w, http.StatusMethodNotAllowed, "method_not_allowed")
}

func notFoundRoute(w http.ResponseWriter) {
	writeErrorMsg(w, http.StatusNotFound, "not_found")
}

func invalidJSON(w http.ResponseWriter) {
	writeErrorMsg(w, http.StatusBadRequest, "invalid json")
}

func forbidden(w http.ResponseWriter, msg string) {
	writeErrorMsg(w, http.StatusForbidden, msg)
}

func parseIntDefault(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

// pathTail strips prefix from the path and returns the remainder without a
// leading slash: pathTail("/products/p1/related", "/products/") = "p1/related".
func pathTail(path, prefix string) string {
	return strings.Trim(strings.TrimPrefix(path, prefix), "/")
}
