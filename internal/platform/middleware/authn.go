// Copyright (c) 2026 Clinicore. All rights reserved.
// Author: dev@clinicore.health

package middleware

import (
	"net/http"
	"strings"

	"github.com/clinicore/clinicore/internal/platform/apperr"
	"github.com/clinicore/clinicore/internal/platform/constants"
	"github.com/clinicore/clinicore/internal/platform/ctxutil"
	"github.com/clinicore/clinicore/internal/platform/respond"
	"github.com/clinicore/clinicore/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify access tokens in
// the authentication gate.
//
// # Why an interface?
//
// It decouples the middleware from the concrete [sec.TokenService],
// allowing mocks to be injected during unit testing.
type TokenVerifier interface {
	Validate(tokenString string, expectedKind sec.TokenKind) (*sec.AuthClaims, error)
}

// Authenticate is the authentication gate for protected route groups.
//
// # Flow
//  1. Check for 'Authorization: Bearer <token>' header.
//  2. If absent or malformed, reject with HTTP 401 immediately.
//  3. Validate the JWT as an access token via [TokenVerifier].
//  4. On failure, reject with HTTP 401.
//  5. On success, inject [*sec.AuthClaims] into the request context and proceed.
//
// The gate performs no database lookup: it trusts the token's signature and
// expiry alone. A consequence is that logout can never invalidate an access
// token before its own expiry.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			// ── 1. Header Extraction ──────────────────────────────────────────
			authHeader := request.Header.Get(constants.HeaderAuthorization)
			if authHeader == "" {
				respond.Error(writer, request, apperr.Unauthorized("Missing or invalid Authorization header"))
				return
			}

			// ── 2. Format Validation ──────────────────────────────────────────
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], constants.BearerScheme) || parts[1] == "" {
				respond.Error(writer, request, apperr.Unauthorized("Missing or invalid Authorization header"))
				return
			}

			// ── 3. Token Verification (kind = access) ─────────────────────────
			claims, err := verifier.Validate(parts[1], sec.TokenKindAccess)
			if err != nil {
				respond.Error(writer, request, apperr.Unauthorized("Invalid or expired token"))
				return
			}

			// ── 4. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithAuthUser(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}
