// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Account is a user as stored by the development server.
type Account struct {
	User

	// PasswordHash is the HMAC-SHA256 of the password, never sent to clients.
	PasswordHash string `json:"-"`
}
