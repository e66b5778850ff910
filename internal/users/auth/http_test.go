// Copyright (c) 2026 Clinicore. All rights reserved.
// Author: dev@clinicore.health

package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicore/clinicore/internal/platform/sec"
	"github.com/clinicore/clinicore/internal/users/auth"
)

// newTestRouter mounts the auth routes the way the server does, backed by the
// in-memory repository and a real token service. The Redis client points at a
// closed port so the login throttle exercises its fail-open path.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	repo := newMemoryUserRepository()
	tokens := sec.NewTokenService("access-secret", "refresh-secret", time.Hour, 7*24*time.Hour)
	service := auth.NewService(repo, tokens)

	cache := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	t.Cleanup(func() { _ = cache.Close() })

	router := chi.NewRouter()
	router.Mount("/auth", auth.NewHandler(service, tokens, cache).Routes())
	return router
}

// doJSON posts a JSON body and decodes the JSON response into a generic map.
func doJSON(t *testing.T, router http.Handler, method, path string, body any, headers map[string]string) (int, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	request := httptest.NewRequest(method, path, reader)
	request.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		request.Header.Set(key, value)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	decoded := map[string]any{}
	if recorder.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &decoded))
	}
	return recorder.Code, decoded
}

/*
TestAuthRoutes_FullLifecycle drives one account through the complete HTTP
lifecycle: register, login, refresh with rotation, password recovery, and
identity lookup.
*/
func TestAuthRoutes_FullLifecycle(t *testing.T) {
	router := newTestRouter(t)

	// ── Register ──────────────────────────────────────────────────────────
	status, body := doJSON(t, router, http.MethodPost, "/auth/register", map[string]string{
		"email":    "alice@example.com",
		"password": "s3cret1",
		"name":     "Alice",
	}, nil)
	require.Equal(t, http.StatusCreated, status)
	assert.NotEmpty(t, body["id"])
	assert.Equal(t, "alice@example.com", body["email"])
	assert.Equal(t, "Alice", body["name"])
	assert.NotEmpty(t, body["access_token"])
	assert.NotEmpty(t, body["refresh_token"])
	assert.Equal(t, "Bearer", body["token_type"])
	assert.Equal(t, float64(3600), body["expires_in"])
	assert.NotEmpty(t, body["created_at"])

	userID := body["id"].(string)

	// ── Login ─────────────────────────────────────────────────────────────
	status, body = doJSON(t, router, http.MethodPost, "/auth/login", map[string]string{
		"email":    "alice@example.com",
		"password": "s3cret1",
	}, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, userID, body["id"])
	require.NotEmpty(t, body["refresh_token"])
	loginRefreshToken := body["refresh_token"].(string)
	accessToken := body["access_token"].(string)

	// ── Refresh (rotation) ────────────────────────────────────────────────
	status, body = doJSON(t, router, http.MethodPost, "/auth/refresh", map[string]string{
		"refresh_token": loginRefreshToken,
	}, nil)
	require.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, body["access_token"])
	assert.NotEqual(t, loginRefreshToken, body["refresh_token"])

	// Replaying the consumed token must fail.
	status, body = doJSON(t, router, http.MethodPost, "/auth/refresh", map[string]string{
		"refresh_token": loginRefreshToken,
	}, nil)
	require.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid or expired refresh token", body["error"])

	// ── Identity ──────────────────────────────────────────────────────────
	status, body = doJSON(t, router, http.MethodGet, "/auth/me", nil, map[string]string{
		"Authorization": "Bearer " + accessToken,
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, userID, body["id"])
	assert.Equal(t, "alice@example.com", body["email"])
	assert.Equal(t, "Alice", body["name"])

	// ── Forgot password ───────────────────────────────────────────────────
	status, body = doJSON(t, router, http.MethodPost, "/auth/forgot-password", map[string]string{
		"email": "alice@example.com",
	}, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])
	require.NotEmpty(t, body["reset_token"])
	resetToken := body["reset_token"].(string)

	// ── Reset password ────────────────────────────────────────────────────
	status, body = doJSON(t, router, http.MethodPost, "/auth/reset-password", map[string]string{
		"token":    resetToken,
		"password": "n3wpass1",
	}, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])

	// Old password rejected, new one accepted.
	status, _ = doJSON(t, router, http.MethodPost, "/auth/login", map[string]string{
		"email":    "alice@example.com",
		"password": "s3cret1",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = doJSON(t, router, http.MethodPost, "/auth/login", map[string]string{
		"email":    "alice@example.com",
		"password": "n3wpass1",
	}, nil)
	assert.Equal(t, http.StatusOK, status)
}

/*
TestAuthRoutes_Register_Validation rejects malformed registration payloads
before the service layer is reached.
*/
func TestAuthRoutes_Register_Validation(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name    string
		payload map[string]string
	}{
		{"missing_email", map[string]string{"password": "s3cret1", "name": "Alice"}},
		{"bad_email", map[string]string{"email": "not-an-email", "password": "s3cret1", "name": "Alice"}},
		{"short_password", map[string]string{"email": "alice@example.com", "password": "abc", "name": "Alice"}},
		{"missing_name", map[string]string{"email": "alice@example.com", "password": "s3cret1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doJSON(t, router, http.MethodPost, "/auth/register", tt.payload, nil)
			assert.Equal(t, http.StatusBadRequest, status)
			assert.Equal(t, "VALIDATION_ERROR", body["code"])
		})
	}
}

/*
TestAuthRoutes_Register_DuplicateEmail returns 409 when the email is taken.
*/
func TestAuthRoutes_Register_DuplicateEmail(t *testing.T) {
	router := newTestRouter(t)

	payload := map[string]string{"email": "alice@example.com", "password": "s3cret1", "name": "Alice"}
	status, _ := doJSON(t, router, http.MethodPost, "/auth/register", payload, nil)
	require.Equal(t, http.StatusCreated, status)

	status, body := doJSON(t, router, http.MethodPost, "/auth/register", payload, nil)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "Email is already registered", body["error"])
}

/*
TestAuthRoutes_ForgotPassword_UnknownEmail keeps the response shape identical
for unregistered addresses: 200 with an empty token.
*/
func TestAuthRoutes_ForgotPassword_UnknownEmail(t *testing.T) {
	router := newTestRouter(t)

	status, body := doJSON(t, router, http.MethodPost, "/auth/forgot-password", map[string]string{
		"email": "ghost@example.com",
	}, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "", body["reset_token"])
}

/*
TestAuthRoutes_Logout clears the session: 204 on logout, then the refresh
token is dead while the access token still opens the gate.
*/
func TestAuthRoutes_Logout(t *testing.T) {
	router := newTestRouter(t)

	status, body := doJSON(t, router, http.MethodPost, "/auth/register", map[string]string{
		"email":    "alice@example.com",
		"password": "s3cret1",
		"name":     "Alice",
	}, nil)
	require.Equal(t, http.StatusCreated, status)
	accessToken := body["access_token"].(string)
	refreshToken := body["refresh_token"].(string)

	status, _ = doJSON(t, router, http.MethodPost, "/auth/logout", nil, map[string]string{
		"Authorization": "Bearer " + accessToken,
	})
	require.Equal(t, http.StatusNoContent, status)

	// Stateless gate: the access token outlives the session.
	status, _ = doJSON(t, router, http.MethodGet, "/auth/me", nil, map[string]string{
		"Authorization": "Bearer " + accessToken,
	})
	assert.Equal(t, http.StatusOK, status)

	// The refresh token does not.
	status, _ = doJSON(t, router, http.MethodPost, "/auth/refresh", map[string]string{
		"refresh_token": refreshToken,
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

/*
TestAuthRoutes_Me_RequiresToken rejects unauthenticated identity lookups.
*/
func TestAuthRoutes_Me_RequiresToken(t *testing.T) {
	router := newTestRouter(t)

	status, body := doJSON(t, router, http.MethodGet, "/auth/me", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Missing or invalid Authorization header", body["error"])
}
