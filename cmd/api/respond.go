package main

import (
	"encoding/json"
	"net/http"

	"bugstore/pkg/response"
)

// respond writes the envelope as JSON. A failure envelope always maps to
// 400 regardless of the status the caller intended for success.
func respond[T any](w http.ResponseWriter, status int, resp response.Response[T]) {
	if !resp.IsSuccess() {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
