// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// client side
var (
	ErrLoginOnServer    = errors.New("login on server failed")
	ErrRegisterOnServer = errors.New("registration on server failed")
	ErrLogoutOnServer   = errors.New("logout on server failed")
	ErrLaptopRequest    = errors.New("laptop request failed")
	ErrCredentialCache  = errors.New("credential cache failure")
	ErrStaleResult      = errors.New("inventory was reset while the request was in flight")
)

// server side
var (
	ErrInvalidDataProvided     = errors.New("invalid data provided")
	ErrWrongPassword           = errors.New("wrong password")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrVersionIsNotSpecified   = errors.New("app version is not specified")

	ErrLaptopAlreadyDistributed = errors.New("laptop is already distributed")
	ErrLaptopNotDistributed     = errors.New("laptop is not distributed")
)
