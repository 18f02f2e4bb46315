// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Default roles accepted by the inventory API on registration.
const (
	RoleUser    = "user"
	RoleITStaff = "it_staff"
	RoleAdmin   = "admin"
)

// User is the identity record returned by the API after a successful login or
// registration. It is cached locally next to the bearer token and restored on
// the next start.
type User struct {
	// ID is the server-side identifier of the account. Not every backend
	// returns it, so it is optional.
	ID string `json:"_id,omitempty"`

	// Username is the display name of the account.
	Username string `json:"username"`

	// Email is the login e-mail of the account.
	Email string `json:"email,omitempty"`

	// Role is the access role ("user", "it_staff" or "admin").
	Role string `json:"role"`
}

// Credentials is the body of POST /api/auth/login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the body of POST /api/auth/register.
type Registration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// CachedSession is what the client persists between restarts: the opaque
// bearer token and the identity it was issued for.
type CachedSession struct {
	Token string
	User  *User
}

// Empty reports whether no token is cached.
func (c CachedSession) Empty() bool {
	return c.Token == ""
}
