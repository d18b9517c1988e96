// Package response writes the JSON bodies of the public API.
//
// Errors always carry a human-readable message:
//
//	{"message":"User not found"}
//
// Success payloads are written as-is ({"token":...}, {"orders":[...]}).
package response

import (
	"encoding/json"
	"net/http"
)

type messageBody struct {
	Message string `json:"message"`
}

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// Success sends a 200 with the given payload.
func Success(w http.ResponseWriter, v interface{}) {
	JSON(w, http.StatusOK, v)
}

// Created sends a 201 with the given payload.
func Created(w http.ResponseWriter, v interface{}) {
	JSON(w, http.StatusCreated, v)
}

// Message sends a bare acknowledgement body with the given status.
func Message(w http.ResponseWriter, status int, message string) {
	JSON(w, status, messageBody{Message: message})
}

// Error sends a JSON error body with the given status.
func Error(w http.ResponseWriter, status int, message string) {
	Message(w, status, message)
}

// ValidationFailed sends a 400 with field-level error messages.
func ValidationFailed(w http.ResponseWriter, errs map[string]string) {
	JSON(w, http.StatusBadRequest, struct {
		Message string            `json:"message"`
		Errors  map[string]string `json:"errors"`
	}{Message: "Validation failed", Errors: errs})
}

// Internal sends a 500 without leaking the underlying cause.
func Internal(w http.ResponseWriter) {
	Error(w, http.StatusInternalServerError, "Internal server error")
}

// NotFound sends a 404.
func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, message)
}
