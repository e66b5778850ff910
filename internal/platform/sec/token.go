// Copyright (c) 2026 Clinicore. All rights reserved.
// Author: dev@clinicore.health

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing,
// reset-token generation) from the domain logic. It acts as an Infrastructure
// service injected into the Application layer via narrow interfaces.
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenKind tags a JWT as belonging to one of the two token families.
//
// Access and refresh tokens are signed with independent secrets AND carry
// this tag in their payload, so a token of one kind can never be presented
// where the other is expected — even if both secrets were identical.
type TokenKind string

const (
	// TokenKindAccess is the short-lived bearer credential validated on every
	// protected request.
	TokenKindAccess TokenKind = "access"

	// TokenKindRefresh is the long-lived credential exchanged for a new pair.
	TokenKindRefresh TokenKind = "refresh"
)

// Sentinel errors returned by [TokenService.Validate].
var (
	// ErrInvalidToken covers signature, structure, and expiry failures.
	ErrInvalidToken = errors.New("sec: invalid or expired token")

	// ErrTokenKindMismatch is returned when a structurally valid token carries
	// the wrong kind tag (e.g. a refresh token presented as an access token).
	ErrTokenKindMismatch = errors.New("sec: token kind mismatch")
)

// AuthClaims is the signed payload embedded inside every Clinicore JWT.
//
// # Why custom claims?
//
// By embedding the email and display name directly inside the token,
// the authentication gate can reconstruct the active user identity
// WITHOUT querying the database on every single API request. The flip side
// is that tokens stay valid until expiry regardless of logout — the gate
// trusts signature and expiry alone.
type AuthClaims struct {
	jwt.RegisteredClaims

	Email string `json:"email"`
	Name  string `json:"name"`

	// TokenType is the kind tag, serialized as "access" or "refresh".
	TokenType string `json:"token_type"`
}

// UserID returns the subject claim (the user's ID).
func (c *AuthClaims) UserID() string {
	return c.Subject
}

// Kind returns the embedded token kind tag.
func (c *AuthClaims) Kind() TokenKind {
	return TokenKind(c.TokenType)
}

// TokenService issues and validates the dual-token scheme using HS256.
//
// One instance serves both kinds; the signing secret and TTL are selected
// per call from the kind. It is safe for concurrent use.
type TokenService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	issuer        string
}

// NewTokenService creates a [TokenService] with independent secrets and
// lifetimes for the two token kinds.
func NewTokenService(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *TokenService {
	return &TokenService{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		issuer:        "clinicore.health",
	}
}

// AccessTTL returns the configured access token lifetime.
func (service *TokenService) AccessTTL() time.Duration { return service.accessTTL }

// RefreshTTL returns the configured refresh token lifetime.
func (service *TokenService) RefreshTTL() time.Duration { return service.refreshTTL }

// tokenIDLength is the character length of the per-issuance 'jti' nonce.
const tokenIDLength = 16

/*
Issue builds, signs, and serializes a JWT of the given kind.

Description: Claims are constructed fresh on every issuance with
issued_at = now, expires_at = now + the kind's TTL, and a random token ID,
then signed with the kind's secret. The ID guarantees that no two issued
tokens are ever equal, which rotation-by-replacement depends on.

Parameters:
  - kind: TokenKind (access or refresh)
  - userID: string (becomes the 'sub' claim)
  - email: string
  - name: string

Returns:
  - string: Signed compact JWT
  - error: Signing failures only
*/
func (service *TokenService) Issue(kind TokenKind, userID, email, name string) (string, error) {
	currentTime := time.Now()

	// Per-issuance nonce. Timestamps have second granularity, so without it
	// two tokens minted in the same second for the same user would be
	// byte-identical and rotation-by-replacement would be a no-op.
	tokenID, err := generateRandomString(tokenIDLength, resetTokenAlphabet)
	if err != nil {
		return "", fmt.Errorf("sec: failed to generate %s token id: %w", kind, err)
	}

	claims := AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			Subject:   userID,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(service.ttl(kind))),
		},
		Email:     email,
		Name:      name,
		TokenType: string(kind),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret(kind))
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign %s token: %w", kind, err)
	}

	return signedToken, nil
}

/*
Validate parses a JWT and verifies it against the expected kind.

Description: Signature is checked with the secret keyed by expectedKind;
expiry is checked against wall-clock time with no grace period. A token that
verifies cryptographically but carries the wrong kind tag fails with
[ErrTokenKindMismatch] — everything else fails with [ErrInvalidToken].

Parameters:
  - tokenString: string (compact JWT)
  - expectedKind: TokenKind

Returns:
  - *AuthClaims: Verified claims
  - error: ErrInvalidToken or ErrTokenKindMismatch
*/
func (service *TokenService) Validate(tokenString string, expectedKind TokenKind) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.secret(expectedKind), nil
	})

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	// Kind tag check. Distinct from signature failure so callers can tell
	// a cross-kind replay apart from a forged or expired token.
	if claims.Kind() != expectedKind {
		return nil, ErrTokenKindMismatch
	}

	return claims, nil
}

// secret selects the signing key for a kind.
func (service *TokenService) secret(kind TokenKind) []byte {
	if kind == TokenKindRefresh {
		return service.refreshSecret
	}
	return service.accessSecret
}

// ttl selects the lifetime for a kind.
func (service *TokenService) ttl(kind TokenKind) time.Duration {
	if kind == TokenKindRefresh {
		return service.refreshTTL
	}
	return service.accessTTL
}
