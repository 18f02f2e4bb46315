// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input before it is dispatched to a store.
//
// A [Validator] accepts any supported value and an optional list of field
// names. With no names every rule for the value's type applies; with names
// only the rules of those fields run. Failures wrap [ErrValidation] and one
// field-specific sentinel whose text is shown to the user as is.
package validators

import "context"

// Validator validates a value, optionally restricted to the named fields.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
