package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/RawAuto/CoffeeShop-API/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("ERROR: failed to encode JSON response: %v", err)
	}
}

// writeValidationFailure maps a failed ValidationResult to a client
// status: not-found failures become 404, everything else 422.
func writeValidationFailure(w http.ResponseWriter, result domain.ValidationResult) {
	status := http.StatusUnprocessableEntity
	if result.IsNotFound() {
		status = http.StatusNotFound
	}
	writeJSON(w, status, map[string]string{"error": result.Message()})
}
