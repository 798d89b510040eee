// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the JSON API for the extension catalog.
// Handlers translate store and manifest failures into the API's error
// categories: bad request for malformed caller input, not found for
// normal absence, and an opaque internal error for everything else.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// respondJSON writes v as a JSON response with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response failed", "error", err)
	}
}

// respondError writes a JSON error body. The message is user-facing;
// internal details belong in logs, not here.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondInternalError logs the failure with context and returns an
// opaque 500 to the caller.
func respondInternalError(w http.ResponseWriter, r *http.Request, msg string, err error, args ...any) {
	args = append([]any{"error", err, "method", r.Method, "path", r.URL.Path}, args...)
	slog.Error(msg, args...)
	respondError(w, http.StatusInternalServerError, "Internal server error")
}
