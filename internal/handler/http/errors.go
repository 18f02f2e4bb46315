// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrEmptyAuthorizationHeader is logged by the auth middleware when a request
// to a protected route carries no "Authorization" header.
var ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")
