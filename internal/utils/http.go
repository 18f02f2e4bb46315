// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data to JSON and writes it to the response
// with the given status code.
//
// Behavior:
//   - Marshals data with encoding/json
//   - On marshal failure responds with 500 and returns the wrapped error
//   - Otherwise sets "Content-Type: application/json", writes the status
//     code and then the body
//
// Parameters:
//
//	w          - response writer
//	data       - value to encode
//	statusCode - HTTP status code to send
//
// Returns:
//
//	int   - number of body bytes written
//	error - marshal or write error
//
// Example usage:
//
//	utils.WriteJSON(w, laptops, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteMessage writes a {"message": ...} body with the given status code.
// Every non-entity response of the inventory API, errors included, uses
// this shape.
//
// Example usage:
//
//	utils.WriteMessage(w, "Laptop deleted", http.StatusOK)
func WriteMessage(w http.ResponseWriter, message string, statusCode int) (int, error) {
	return WriteJSON(w, map[string]string{"message": message}, statusCode)
}
