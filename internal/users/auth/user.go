// Copyright (c) 2026 Clinicore. All rights reserved.
// Author: dev@clinicore.health

/*
Package auth implements the user identity and credential lifecycle layer.

It defines the core domain entity (User) and logic for registration, login,
token rotation, and password recovery.

# Architecture

This layer is the "Truth" of the system. The entity defined here has no
external dependencies and encapsulates all business rules related to user
identity.
*/
package auth

import "time"

// # Domain Entities

// User represents a registered member of the Clinicore platform.
//
// A user holds at most one currently-valid refresh token at a time. Issuing
// a new one replaces the prior value immediately and unconditionally.
// ResetToken and ResetTokenExpiry are set and cleared together, never one
// without the other.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // Explicitly omitted from JSON for security.
	Name         string `json:"name"`

	// RefreshToken is the single accepted refresh token for this user, or nil
	// when no session is active. Omitted from JSON for security.
	RefreshToken *string `json:"-"`

	// ResetToken and ResetTokenExpiry form the time-boxed password recovery
	// pair. Both present or both absent.
	ResetToken       *string    `json:"-"`
	ResetTokenExpiry *time.Time `json:"-"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// # Field Identifiers

// Global field names for validation and identity mapping in the authentication domain.
const (
	FieldEmail        = "email"
	FieldPassword     = "password"
	FieldName         = "name"
	FieldToken        = "token"
	FieldRefreshToken = "refresh_token"
)
