// Copyright (c) 2026 Clinicore. All rights reserved.
// Author: dev@clinicore.health

package sec

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a plain-text password using the bcrypt algorithm.
//
// bcrypt embeds a per-password salt and an adaptive cost factor into the
// resulting string. The default cost (10) is the balance point between
// offline brute-force resistance and CPU usage during registration spikes.
// Errors are internal only; input content never causes a failure.
func HashPassword(plainTextPassword string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plainTextPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("sec: failed to hash password: %w", err)
	}
	return string(hashedBytes), nil
}

// CheckPassword compares a plain-text password with its stored hash.
//
// It returns false for a wrong password. The comparison inside bcrypt is
// constant-time over the derived key.
func CheckPassword(plainTextPassword, existingHash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(existingHash), []byte(plainTextPassword))
	return err == nil
}

// VerifyPassword is the error-aware variant of [CheckPassword].
//
// A wrong password returns (false, nil). A malformed stored hash returns a
// non-nil error so callers can surface it as an internal failure instead of
// silently treating corrupt data as "wrong password".
func VerifyPassword(plainTextPassword, existingHash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(existingHash), []byte(plainTextPassword))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("sec: malformed password hash: %w", err)
	}
}
