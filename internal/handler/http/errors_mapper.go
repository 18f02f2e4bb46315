// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-equip-keeper/internal/service"
	"github.com/MKhiriev/go-equip-keeper/internal/store"
	"github.com/MKhiriev/go-equip-keeper/internal/utils"
	"github.com/MKhiriev/go-equip-keeper/internal/validators"
)

const msgInvalidJSON = "Invalid request body"

type errorResponse struct {
	status  int
	message string
}

// errorResponses is checked in order; the first sentinel matched by
// errors.Is decides the response.
var errorResponses = []struct {
	target error
	errorResponse
}{
	{validators.ErrValidation, errorResponse{http.StatusBadRequest, ""}},
	{service.ErrInvalidDataProvided, errorResponse{http.StatusBadRequest, "Invalid data provided"}},
	{service.ErrWrongPassword, errorResponse{http.StatusUnauthorized, "Invalid email or password"}},
	{service.ErrTokenIsExpiredOrInvalid, errorResponse{http.StatusUnauthorized, "Unauthorized"}},
	{service.ErrLaptopAlreadyDistributed, errorResponse{http.StatusConflict, "Laptop is already distributed"}},
	{service.ErrLaptopNotDistributed, errorResponse{http.StatusConflict, "Laptop is not distributed"}},

	{store.ErrUserAlreadyExists, errorResponse{http.StatusConflict, "User already exists"}},
	{store.ErrUserNotFound, errorResponse{http.StatusNotFound, "User not found"}},
	{store.ErrLaptopNotFound, errorResponse{http.StatusNotFound, "Laptop not found"}},
	{store.ErrSerialNumberTaken, errorResponse{http.StatusConflict, "A laptop with this serial number already exists"}},
}

func responseFromError(err error) errorResponse {
	for _, e := range errorResponses {
		if !errors.Is(err, e.target) {
			continue
		}
		if e.target == validators.ErrValidation {
			return errorResponse{e.status, validators.Message(err)}
		}
		return e.errorResponse
	}
	return errorResponse{http.StatusInternalServerError, "Internal server error"}
}

func statusFromError(err error) int {
	return responseFromError(err).status
}

// writeError answers with the status and message mapped from err.
func writeError(w http.ResponseWriter, err error) {
	resp := responseFromError(err)
	utils.WriteMessage(w, resp.message, resp.status)
}
