// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		code int
		want error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnprocessableEntity, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusBadGateway, ErrBadGateway},
		{http.StatusServiceUnavailable, ErrBadGateway},
		{http.StatusInternalServerError, ErrInternalServerError},
		{http.StatusTeapot, ErrUnexpectedStatus},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, kindOf(tt.code))
		})
	}
}

func TestExtractMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"json message", `{"message":" Laptop not found "}`, "Laptop not found"},
		{"json without message", `{"error":"x"}`, ""},
		{"plain text", "service down", "service down"},
		{"html", "<html><body>502</body></html>", ""},
		{"array", `[1,2]`, ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractMessage([]byte(tt.body)))
		})
	}
}

func TestAPIError(t *testing.T) {
	err := error(&APIError{StatusCode: 404, Message: "Laptop not found", kind: ErrNotFound})

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "not found (http 404): Laptop not found", err.Error())

	bare := &APIError{StatusCode: 500, kind: ErrInternalServerError}
	assert.Equal(t, "internal server error (http 500)", bare.Error())
	_, ok := ServerMessage(bare)
	assert.False(t, ok)
}
