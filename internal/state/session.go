// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import (
	"time"

	"github.com/MKhiriev/go-equip-keeper/internal/utils"
	"github.com/MKhiriev/go-equip-keeper/models"
)

// Session is the authentication state of the current user. Authentication is
// derived from the token, so there is no separate flag that could drift.
type Session struct {
	token string
	user  *models.User

	Lifecycle
}

// NewSession restores a session from the credential cache.
func NewSession(cached models.CachedSession) Session {
	var s Session
	if !cached.Empty() {
		s.SignIn(cached.Token, cached.User)
	}
	return s
}

// Token returns the bearer token or an empty string.
func (s Session) Token() string { return s.token }

// User returns the identity of the signed in user.
func (s Session) User() (models.User, bool) {
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// IsAuthenticated reports whether a token is present.
func (s Session) IsAuthenticated() bool { return s.token != "" }

// SignIn sets token and user in one step.
func (s *Session) SignIn(token string, user *models.User) {
	s.token = token
	s.user = nil
	if token == "" {
		return
	}
	if user != nil {
		u := *user
		s.user = &u
	}
}

// SignOut drops token and user in one step.
func (s *Session) SignOut() {
	s.token = ""
	s.user = nil
}

// Clone returns a copy that shares no memory with s.
func (s Session) Clone() Session {
	c := s
	if s.user != nil {
		u := *s.user
		c.user = &u
	}
	return c
}

// SessionValid reports whether s may access protected views: a token must be
// held in memory and in the credential cache, and, when the token is a JWT,
// it must not be expired at now.
func SessionValid(s Session, cached models.CachedSession, now time.Time) bool {
	if !s.IsAuthenticated() || cached.Empty() {
		return false
	}
	return !utils.TokenExpired(s.token, now)
}
