// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors of the in-memory repositories. Callers should use
// [errors.Is] to match against these values.
var (
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrUserNotFound      = errors.New("user was not found")

	ErrLaptopNotFound      = errors.New("laptop was not found")
	ErrSerialNumberTaken   = errors.New("serial number is already registered")
	ErrLaptopIDNotAssigned = errors.New("laptop id is not assigned")
)

// Low-level database operation errors of the credential cache.

var (
	ErrBuildingSQLQuery = errors.New("error building sql query")

	ErrExecutingQuery = errors.New("error executing sql query")

	ErrBeginningTransaction = errors.New("failed to begin transaction")

	ErrCommitingTransaction = errors.New("failed to commit transaction")

	ErrScanningRows = errors.New("failed to scan credential rows")

	ErrEncodingUser = errors.New("failed to encode cached user")
)
