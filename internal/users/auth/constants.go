// Copyright (c) 2026 Clinicore. All rights reserved.
// Author: dev@clinicore.health

package auth

import "time"

// # Authentication Constraints

const (
	// ResetTokenTTL is the duration a password reset token remains valid.
	// Short-lived (1 hour) for security.
	ResetTokenTTL = 1 * time.Hour

	// MinPasswordLength is the minimum accepted password length for
	// registration and password reset.
	MinPasswordLength = 6
)
