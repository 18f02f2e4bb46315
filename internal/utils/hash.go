// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword computes an HMAC-SHA256 signature over the given password
// using the provided hash key and returns it as a hex-encoded string.
//
// Behavior:
//   - Creates a new HMAC instance keyed with hashKey on each call
//   - Writes the password bytes and computes the sum
//   - Encodes the digest as lowercase hex
//
// The same password and key always produce the same hash, so the result can
// be stored and later compared with [CheckPassword].
//
// Parameters:
//
//	password - plain-text password to hash
//	hashKey  - secret key for the HMAC
//
// Returns:
//
//	string - 64-character hex-encoded HMAC-SHA256 digest
//
// Example usage:
//
//	hashed := utils.HashPassword("secret", cfg.PasswordHashKey)
func HashPassword(password, hashKey string) string {
	h := hmac.New(sha256.New, []byte(hashKey))
	h.Write([]byte(password))
	return hex.EncodeToString(h.Sum(nil))
}

// CheckPassword reports whether password matches a hash previously produced
// by [HashPassword] with the same hashKey.
//
// Behavior:
//   - Re-hashes password with hashKey
//   - Compares both hex strings with [hmac.Equal], which runs in constant
//     time and does not leak the position of the first mismatch
//
// Parameters:
//
//	password - plain-text password supplied by the caller
//	hashed   - stored hex-encoded hash
//	hashKey  - secret key that was used to produce hashed
//
// Returns:
//
//	bool - true if the password matches, false otherwise
//
// Example usage:
//
//	if !utils.CheckPassword(req.Password, user.PasswordHash, cfg.PasswordHashKey) {
//	    return service.ErrWrongPassword
//	}
func CheckPassword(password, hashed, hashKey string) bool {
	return hmac.Equal([]byte(HashPassword(password, hashKey)), []byte(hashed))
}
