// Copyright (c) 2026 Clinicore. All rights reserved.
// Author: dev@clinicore.health

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicore/clinicore/internal/platform/sec"
)

/*
TestGenerateResetToken verifies length, alphabet, and uniqueness.
*/
func TestGenerateResetToken(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		token, err := sec.GenerateResetToken()
		require.NoError(t, err)

		assert.Len(t, token, sec.ResetTokenLength)
		for _, r := range token {
			isLowerAlnum := (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z')
			assert.True(t, isLowerAlnum, "unexpected character %q", r)
		}

		assert.False(t, seen[token], "token collision")
		seen[token] = true
	}
}
