package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/christngono/backend-vocit/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, message string, status int) {
	writeJSON(w, status, map[string]string{"message": message})
}

// serviceError mappe les erreurs sentinelles du service vers un statut HTTP.
// Toute erreur inattendue est loguée côté serveur et masquée au client.
func serviceError(w http.ResponseWriter, err error) {
	switch {
	case service.IsValidationError(err):
		jsonError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrIdentifiantsInvalides):
		jsonError(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, service.ErrVocitIntrouvable):
		jsonError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrConflitVote):
		jsonError(w, err.Error(), http.StatusConflict)
	default:
		log.Printf("[http] erreur interne : %v", err)
		jsonError(w, "Erreur serveur.", http.StatusInternalServerError)
	}
}
