// Copyright (c) 2026 Clinicore. All rights reserved.
// Author: dev@clinicore.health

package sec_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicore/clinicore/internal/platform/sec"
)

/*
TestHashPassword verifies the one-way hashing round trip.
*/
func TestHashPassword(t *testing.T) {
	hash, err := sec.HashPassword("s3cret1")
	require.NoError(t, err)

	// bcrypt hashes are salted and self-describing
	assert.True(t, strings.HasPrefix(hash, "$2"))
	assert.NotEqual(t, "s3cret1", hash)

	// Same password hashes differently each time (unique salt)
	hash2, err := sec.HashPassword("s3cret1")
	require.NoError(t, err)
	assert.NotEqual(t, hash, hash2)
}

/*
TestCheckPassword verifies correct and incorrect candidates.
*/
func TestCheckPassword(t *testing.T) {
	hash, err := sec.HashPassword("s3cret1")
	require.NoError(t, err)

	assert.True(t, sec.CheckPassword("s3cret1", hash))
	assert.False(t, sec.CheckPassword("wrong-password", hash))
	assert.False(t, sec.CheckPassword("", hash))
}

/*
TestVerifyPassword distinguishes a wrong password from a corrupted hash.
*/
func TestVerifyPassword(t *testing.T) {
	hash, err := sec.HashPassword("s3cret1")
	require.NoError(t, err)

	ok, err := sec.VerifyPassword("s3cret1", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	// Wrong password: false without error
	ok, err = sec.VerifyPassword("wrong", hash)
	require.NoError(t, err)
	assert.False(t, ok)

	// Malformed stored hash: surfaced as an error
	_, err = sec.VerifyPassword("s3cret1", "not-a-bcrypt-hash")
	assert.Error(t, err)
}
