// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

// ErrValidation is wrapped by every rule violation.
var ErrValidation = errors.New("validation failed")

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

var (
	ErrEmptyName         = errors.New("name is required")
	ErrEmptySerialNumber = errors.New("serial number is required")
	ErrEmptyModel        = errors.New("model is required")
	ErrInvalidPrice      = errors.New("price must be positive")
	ErrEmptyOrigin       = errors.New("origin is required")

	ErrNoLaptopSelected = errors.New("no laptop selected")
	ErrEmptyUserName    = errors.New("user name is required")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrEmptyPosition    = errors.New("user position is required")
	ErrEmptyReason      = errors.New("return reason is required")

	ErrEmptyUsername = errors.New("username is required")
	ErrEmptyPassword = errors.New("password is required")
	ErrInvalidRole   = errors.New("invalid role")
)

// messages are the texts shown to the user for each rule violation.
var messages = map[error]string{
	ErrEmptyName:         "Name is required.",
	ErrEmptySerialNumber: "Serial number is required.",
	ErrEmptyModel:        "Model is required.",
	ErrInvalidPrice:      "Price must be a positive number.",
	ErrEmptyOrigin:       "Origin is required.",
	ErrNoLaptopSelected:  "Please select a laptop.",
	ErrEmptyUserName:     "User name is required.",
	ErrInvalidEmail:      "A valid email is required.",
	ErrEmptyPosition:     "User position is required.",
	ErrEmptyReason:       "Return reason is required.",
	ErrEmptyUsername:     "Username is required.",
	ErrEmptyPassword:     "Password is required.",
	ErrInvalidRole:       "Role must be one of user, it_staff or admin.",
}

// Message returns the user-facing text of a validation error.
func Message(err error) string {
	for sentinel, text := range messages {
		if errors.Is(err, sentinel) {
			return text
		}
	}
	return err.Error()
}
