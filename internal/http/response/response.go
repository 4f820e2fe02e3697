// Package response writes the JSON bodies of the booking API. The shapes
// are part of the public contract of the form frontend: success carries
// "message", a single failure carries "error", aggregated field failures
// carry "errors".
package response

import (
	"encoding/json"
	"net/http"

	"github.com/seeeye/area710-booking/pkg/logger"
)

type successBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type errorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type errorsBody struct {
	Success bool     `json:"success"`
	Errors  []string `json:"errors"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

// Success writes 200 with a localized confirmation message.
func Success(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, successBody{Success: true, Message: message})
}

// Error writes a single-error body with the given status.
func Error(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorBody{Success: false, Error: message})
}

// ValidationErrors writes 400 with every violated field, so the form can
// show all problems at once.
func ValidationErrors(w http.ResponseWriter, messages []string) {
	writeJSON(w, http.StatusBadRequest, errorsBody{Success: false, Errors: messages})
}

func BadRequest(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, message)
}

func Forbidden(w http.ResponseWriter, message string) {
	Error(w, http.StatusForbidden, message)
}

func MethodNotAllowed(w http.ResponseWriter) {
	Error(w, http.StatusMethodNotAllowed, "Method not allowed")
}

func TooManyRequests(w http.ResponseWriter) {
	Error(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")
}

func InternalError(w http.ResponseWriter, message string) {
	Error(w, http.StatusInternalServerError, message)
}
