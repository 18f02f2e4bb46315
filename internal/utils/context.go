// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "context"

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserEmailCtxKey is the key used to store the email of the caller
// authenticated by a bearer token. Used together with [WithUserEmail] and
// [GetUserEmailFromContext] for type-safe access.
var UserEmailCtxKey = contextKey("userEmail")

// WithUserEmail returns a copy of ctx carrying the authenticated caller's
// email under [UserEmailCtxKey].
//
// Example usage:
//
//	next.ServeHTTP(w, r.WithContext(utils.WithUserEmail(ctx, email)))
func WithUserEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, UserEmailCtxKey, email)
}

// GetUserEmailFromContext retrieves the caller's email stored by
// [WithUserEmail].
//
// Returns the email and an ok flag:
//   - ok == true:  value is found, is a string and is not empty
//   - ok == false: value is missing, empty or has an unexpected type
//
// Example usage:
//
//	email, ok := utils.GetUserEmailFromContext(r.Context())
//	if !ok {
//	    // request did not pass the auth middleware
//	}
func GetUserEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(UserEmailCtxKey).(string)
	return email, ok && email != ""
}
