// Copyright (c) 2026 Clinicore. All rights reserved.
// Author: dev@clinicore.health

package sec

import (
	"crypto/rand"
	"fmt"
)

// ResetTokenLength is the character length of generated password-reset tokens.
const ResetTokenLength = 32

// resetTokenAlphabet is the lowercase-alphanumeric alphabet reset tokens are
// drawn from. 36^32 possible values — unguessable by construction.
const resetTokenAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// GenerateResetToken produces a random opaque token for password-reset links.
//
// The token is drawn from crypto/rand and is a function of nothing else:
// not the user's email, id, or the current time. Rejection sampling keeps
// the alphabet distribution uniform.
func GenerateResetToken() (string, error) {
	return generateRandomString(ResetTokenLength, resetTokenAlphabet)
}

// generateRandomString fills a buffer of the given length from the alphabet
// using the OS cryptographic random source.
func generateRandomString(length int, alphabet string) (string, error) {
	// Largest multiple of len(alphabet) below 256, for unbiased sampling.
	limit := byte(256 / len(alphabet) * len(alphabet))

	out := make([]byte, 0, length)
	buf := make([]byte, length)

	for len(out) < length {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("sec: random source unavailable: %w", err)
		}
		for _, b := range buf {
			if b >= limit {
				continue
			}
			out = append(out, alphabet[int(b)%len(alphabet)])
			if len(out) == length {
				break
			}
		}
	}

	return string(out), nil
}
