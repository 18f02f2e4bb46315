// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AuthResponse is the success body of the login and register endpoints.
type AuthResponse struct {
	Token   string `json:"token"`
	User    User   `json:"user"`
	Message string `json:"message"`
}

// MessageResponse is the body of endpoints that only report an outcome
// (logout, delete) and of every error response.
type MessageResponse struct {
	Message string `json:"message"`
}

// LaptopResponse is the body returned by the distribute and return endpoints:
// the updated laptop plus an outcome message.
type LaptopResponse struct {
	Laptop  Laptop `json:"laptop"`
	Message string `json:"message"`
}
