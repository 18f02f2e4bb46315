// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared by the client and the dev server:
// the resty client wrapper, request and entity id generation, JWT issuing and
// expiry inspection, password hashing, JSON responses and context keys.
package utils
