// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-equip-keeper/internal/adapter"
)

// Banner texts shown by the client.
const (
	MsgSessionExpired = "Session expired or unauthorized. Please log in again."

	MsgRequestFailed = "Request failed"
	MsgNetworkError  = "Network error"

	MsgLoginFailed               = "Login failed"
	MsgLoginNetworkError         = "Network error during login"
	MsgRegistrationFailed        = "Registration failed"
	MsgRegistrationNetworkError  = "Network error during registration"
	MsgLogoutFailed              = "Logout failed on server, but client state cleared."
	MsgLogoutNetworkError        = "Network error during logout, client state cleared."
	MsgCredentialCacheWriteError = "Could not save your session on this computer."

	MsgLaptopAdded       = "Laptop added successfully!"
	MsgLaptopUpdated     = "Laptop updated successfully!"
	MsgLaptopDeleted     = "Laptop deleted successfully!"
	MsgLaptopDistributed = "Laptop distributed successfully!"
	MsgLaptopReturned    = "Laptop returned successfully!"
)

// fallbacks are the texts used when the server gave no message.
type fallbacks struct {
	rejected string
	network  string
}

var (
	laptopFallbacks   = fallbacks{rejected: MsgRequestFailed, network: MsgNetworkError}
	loginFallbacks    = fallbacks{rejected: MsgLoginFailed, network: MsgLoginNetworkError}
	registerFallbacks = fallbacks{rejected: MsgRegistrationFailed, network: MsgRegistrationNetworkError}
	logoutFallbacks   = fallbacks{rejected: MsgLogoutFailed, network: MsgLogoutNetworkError}
)

// errorText turns an adapter error into the banner text. With expireOn401 a
// 401 always reads as an expired session, whatever the server said.
func errorText(err error, fb fallbacks, expireOn401 bool) string {
	if expireOn401 && errors.Is(err, adapter.ErrUnauthorized) {
		return MsgSessionExpired
	}
	if msg, ok := adapter.ServerMessage(err); ok {
		return msg
	}
	if errors.Is(err, adapter.ErrTransport) {
		return fb.network
	}
	return fb.rejected
}

// successText prefers the server's message over the default one.
func successText(serverMsg, fallback string) string {
	if serverMsg != "" {
		return serverMsg
	}
	return fallback
}
