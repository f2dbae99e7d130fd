package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"spellquest/internal/service"
	"spellquest/internal/validation"
)

// respondJSON writes a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// respondError writes a JSON error body with the given status code
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{"error": message})
}

// respondWithError logs the underlying error and sends a JSON error to
// the client
func respondWithError(w http.ResponseWriter, status int, userMsg, logMsg string, err error) {
	if err != nil {
		if logMsg == "" {
			logMsg = userMsg
		}
		log.Printf("%s: %v", logMsg, err)
	}
	respondError(w, status, userMsg)
}

// respondServiceError maps service-layer errors onto the HTTP error
// taxonomy: validation failures are 400 with the offending field,
// auth failures 401, missing resources 404, already-consumed
// resources 409, and anything unexpected a logged 500 with a generic
// message.
func respondServiceError(w http.ResponseWriter, err error) {
	var validationErr validation.ValidationError
	if errors.As(err, &validationErr) {
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error": validationErr.Message,
			"field": validationErr.Field,
		})
		return
	}

	switch {
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, service.ErrSessionExpired):
		respondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrEmailTaken):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrQuizNotFound),
		errors.Is(err, service.ErrExerciseNotFound),
		errors.Is(err, service.ErrUnknownProject),
		errors.Is(err, service.ErrChallengeNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrQuizAlreadyGraded),
		errors.Is(err, service.ErrExerciseCompleted):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrUnknownSegment),
		errors.Is(err, service.ErrInvalidResetToken):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		respondWithError(w, http.StatusInternalServerError, "Internal server error", "Unhandled service error", err)
	}
}

// decodeJSON parses a request body into dst, rejecting unknown fields
func decodeJSON(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}
