package api

import (
	"encoding/json"
	"net/http"

	"upc-extension/vinculacion/internal/logging"
	"upc-extension/vinculacion/internal/models/dtos/responses"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Error("failed to encode response", "error", err)
	}
}

func respondDetail(w http.ResponseWriter, status int, detail string) {
	respondJSON(w, status, responses.Detail{Detail: detail})
}
