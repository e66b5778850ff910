// Copyright (c) 2026 Clinicore. All rights reserved.
// Author: dev@clinicore.health

package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicore/clinicore/internal/platform/apperr"
	"github.com/clinicore/clinicore/internal/platform/sec"
	"github.com/clinicore/clinicore/internal/users/auth"
)

// memoryUserRepository is an in-memory UserRepository used to exercise the
// service without Postgres. It mirrors the storage semantics the service
// depends on: exact-match token lookups and UpdatePassword clearing the
// reset token pair in the same write.
type memoryUserRepository struct {
	users map[string]*auth.User
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{users: make(map[string]*auth.User)}
}

func (r *memoryUserRepository) FindByID(_ context.Context, id string) (*auth.User, error) {
	if user, ok := r.users[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, apperr.NotFound("User")
}

func (r *memoryUserRepository) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (r *memoryUserRepository) FindByRefreshToken(_ context.Context, token string) (*auth.User, error) {
	for _, user := range r.users {
		if user.RefreshToken != nil && *user.RefreshToken == token {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("Session")
}

func (r *memoryUserRepository) FindByResetToken(_ context.Context, token string) (*auth.User, error) {
	for _, user := range r.users {
		if user.ResetToken != nil && *user.ResetToken == token {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("Reset token")
}

func (r *memoryUserRepository) Create(_ context.Context, user *auth.User) error {
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *memoryUserRepository) UpdateRefreshToken(_ context.Context, userID string, token *string) error {
	user, ok := r.users[userID]
	if !ok {
		return apperr.NotFound("User")
	}
	user.RefreshToken = token
	return nil
}

func (r *memoryUserRepository) UpdatePassword(_ context.Context, userID, newHash string) error {
	user, ok := r.users[userID]
	if !ok {
		return apperr.NotFound("User")
	}
	user.PasswordHash = newHash
	user.ResetToken = nil
	user.ResetTokenExpiry = nil
	return nil
}

func (r *memoryUserRepository) UpdateResetToken(_ context.Context, userID string, token *string, expiry *time.Time) error {
	user, ok := r.users[userID]
	if !ok {
		return apperr.NotFound("User")
	}
	user.ResetToken = token
	user.ResetTokenExpiry = expiry
	return nil
}

// newTestService wires a Service against the in-memory repository and a real
// TokenService with short-but-valid lifetimes.
func newTestService() (*auth.Service, *memoryUserRepository) {
	repo := newMemoryUserRepository()
	tokens := sec.NewTokenService("access-secret", "refresh-secret", time.Hour, 7*24*time.Hour)
	return auth.NewService(repo, tokens), repo
}

func registerAlice(t *testing.T, service *auth.Service) *auth.Credentials {
	t.Helper()
	credentials, err := service.Register(context.Background(), auth.RegisterInput{
		Email:    "alice@example.com",
		Password: "s3cret1",
		Name:     "Alice",
	})
	require.NoError(t, err)
	require.NotNil(t, credentials)
	return credentials
}

/*
TestService_RegisterThenLogin checks that a freshly registered account can
immediately authenticate with the same credentials.
*/
func TestService_RegisterThenLogin(t *testing.T) {
	service, _ := newTestService()

	created := registerAlice(t, service)
	assert.NotEmpty(t, created.User.ID)
	assert.Equal(t, "alice@example.com", created.User.Email)
	assert.NotEmpty(t, created.AccessToken)
	assert.NotEmpty(t, created.RefreshToken)
	assert.Equal(t, int64(3600), created.ExpiresIn)

	session, err := service.Login(context.Background(), auth.LoginInput{
		Email:    "alice@example.com",
		Password: "s3cret1",
	})
	require.NoError(t, err)
	assert.Equal(t, created.User.ID, session.User.ID)
	assert.NotEmpty(t, session.AccessToken)
}

/*
TestService_Register_DuplicateEmail verifies the uniqueness conflict,
including case-insensitive matching on the address.
*/
func TestService_Register_DuplicateEmail(t *testing.T) {
	service, _ := newTestService()
	registerAlice(t, service)

	_, err := service.Register(context.Background(), auth.RegisterInput{
		Email:    "  ALICE@Example.COM ",
		Password: "another1",
		Name:     "Alice Again",
	})
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "CONFLICT", ae.Code)
	assert.Equal(t, "Email is already registered", ae.Message)
}

/*
TestService_Login_IndistinguishableFailures asserts that an unknown email and
a wrong password produce byte-identical errors, so clients cannot enumerate
registered addresses.
*/
func TestService_Login_IndistinguishableFailures(t *testing.T) {
	service, _ := newTestService()
	registerAlice(t, service)

	_, unknownErr := service.Login(context.Background(), auth.LoginInput{
		Email:    "nobody@example.com",
		Password: "s3cret1",
	})
	_, wrongErr := service.Login(context.Background(), auth.LoginInput{
		Email:    "alice@example.com",
		Password: "not-the-password",
	})

	require.Error(t, unknownErr)
	require.Error(t, wrongErr)

	unknownAE := apperr.As(unknownErr)
	wrongAE := apperr.As(wrongErr)
	require.NotNil(t, unknownAE)
	require.NotNil(t, wrongAE)

	assert.Equal(t, "UNAUTHORIZED", unknownAE.Code)
	assert.Equal(t, unknownAE.Code, wrongAE.Code)
	assert.Equal(t, unknownAE.Message, wrongAE.Message)
	assert.Equal(t, "Invalid email or password", wrongAE.Message)
}

/*
TestService_Refresh_Rotation verifies rotation-by-replacement: a refresh token
works exactly once, and replaying the consumed token fails.
*/
func TestService_Refresh_Rotation(t *testing.T) {
	service, _ := newTestService()
	created := registerAlice(t, service)

	rotated, err := service.Refresh(context.Background(), created.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, rotated.AccessToken)
	assert.NotEqual(t, created.RefreshToken, rotated.RefreshToken)

	// The original token validates cryptographically but no longer matches
	// the stored copy.
	_, err = service.Refresh(context.Background(), created.RefreshToken)
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "UNAUTHORIZED", ae.Code)
	assert.Equal(t, "Invalid or expired refresh token", ae.Message)

	// The rotated token is still live.
	_, err = service.Refresh(context.Background(), rotated.RefreshToken)
	assert.NoError(t, err)
}

/*
TestService_Refresh_RejectsAccessToken checks that an access token cannot be
exchanged for a new pair.
*/
func TestService_Refresh_RejectsAccessToken(t *testing.T) {
	service, _ := newTestService()
	created := registerAlice(t, service)

	_, err := service.Refresh(context.Background(), created.AccessToken)
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "UNAUTHORIZED", ae.Code)
}

/*
TestService_Logout clears the stored refresh token so the session cannot be
extended afterwards.
*/
func TestService_Logout(t *testing.T) {
	service, repo := newTestService()
	created := registerAlice(t, service)

	require.NoError(t, service.Logout(context.Background(), created.User.ID))
	assert.Nil(t, repo.users[created.User.ID].RefreshToken)

	_, err := service.Refresh(context.Background(), created.RefreshToken)
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)
}

/*
TestService_PasswordRecovery runs the full forgot/reset loop: the old password
stops working, the new one authenticates, and the reset token is single-use.
*/
func TestService_PasswordRecovery(t *testing.T) {
	service, repo := newTestService()
	created := registerAlice(t, service)

	resetToken, err := service.ForgotPassword(context.Background(), "alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, resetToken)

	require.NoError(t, service.ResetPassword(context.Background(), resetToken, "n3wpass1"))

	// The reset severed the refresh session, before any new login opens one.
	assert.Nil(t, repo.users[created.User.ID].RefreshToken)
	_, err = service.Refresh(context.Background(), created.RefreshToken)
	assert.Error(t, err)

	// Old password is dead.
	_, err = service.Login(context.Background(), auth.LoginInput{
		Email:    "alice@example.com",
		Password: "s3cret1",
	})
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)

	// New password works.
	_, err = service.Login(context.Background(), auth.LoginInput{
		Email:    "alice@example.com",
		Password: "n3wpass1",
	})
	assert.NoError(t, err)

	// The token was consumed by the reset.
	err = service.ResetPassword(context.Background(), resetToken, "anoth3r1")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

/*
TestService_ForgotPassword_UnknownEmail must not reveal whether the address is
registered: empty token, no error.
*/
func TestService_ForgotPassword_UnknownEmail(t *testing.T) {
	service, _ := newTestService()

	token, err := service.ForgotPassword(context.Background(), "ghost@example.com")
	require.NoError(t, err)
	assert.Empty(t, token)
}

/*
TestService_ResetPassword_ExpiredToken checks that an expired token is
rejected and leaves the password untouched.
*/
func TestService_ResetPassword_ExpiredToken(t *testing.T) {
	service, repo := newTestService()
	created := registerAlice(t, service)

	resetToken, err := service.ForgotPassword(context.Background(), "alice@example.com")
	require.NoError(t, err)

	// Age the token past its window.
	expired := time.Now().Add(-time.Minute)
	repo.users[created.User.ID].ResetTokenExpiry = &expired

	err = service.ResetPassword(context.Background(), resetToken, "n3wpass1")
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	assert.Equal(t, "Reset token has expired", ae.Message)

	// Original password still authenticates.
	_, err = service.Login(context.Background(), auth.LoginInput{
		Email:    "alice@example.com",
		Password: "s3cret1",
	})
	assert.NoError(t, err)
}

/*
TestService_GetUserByID resolves a principal by ID and surfaces NotFound for
unknown IDs.
*/
func TestService_GetUserByID(t *testing.T) {
	service, _ := newTestService()
	created := registerAlice(t, service)

	user, err := service.GetUserByID(context.Background(), created.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)

	_, err = service.GetUserByID(context.Background(), "missing-id")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

/*
TestService_ResetPassword_WeakPassword rejects passwords below the minimum
length before touching storage.
*/
func TestService_ResetPassword_WeakPassword(t *testing.T) {
	service, _ := newTestService()
	registerAlice(t, service)

	err := service.ResetPassword(context.Background(), "whatever", "abc")
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	require.NotEmpty(t, ae.Details)
	assert.Equal(t, auth.FieldPassword, ae.Details[0].Field)
}

var errStorageDown = errors.New("connection refused")

// outageUserRepository fails every lookup the way a storage outage would.
type outageUserRepository struct {
	*memoryUserRepository
}

func (r *outageUserRepository) FindByEmail(_ context.Context, _ string) (*auth.User, error) {
	return nil, errStorageDown
}

func (r *outageUserRepository) FindByRefreshToken(_ context.Context, _ string) (*auth.User, error) {
	return nil, errStorageDown
}

func (r *outageUserRepository) FindByResetToken(_ context.Context, _ string) (*auth.User, error) {
	return nil, errStorageDown
}

/*
TestService_StorageOutage keeps storage failures distinct from credential
failures: an outage must never be reported as Unauthorized, as a Conflict,
or as the forgot-password empty-token success.
*/
func TestService_StorageOutage(t *testing.T) {
	tokens := sec.NewTokenService("access-secret", "refresh-secret", time.Hour, 7*24*time.Hour)
	service := auth.NewService(&outageUserRepository{newMemoryUserRepository()}, tokens)

	_, err := service.Register(context.Background(), auth.RegisterInput{
		Email: "alice@example.com", Password: "s3cret1", Name: "Alice",
	})
	require.Error(t, err)
	assert.False(t, apperr.IsAppError(err))

	_, err = service.Login(context.Background(), auth.LoginInput{
		Email: "alice@example.com", Password: "s3cret1",
	})
	require.Error(t, err)
	assert.False(t, apperr.IsAppError(err), "outage surfaced as a credential failure")

	// A cryptographically valid refresh token whose possession check hits the
	// outage must also not collapse into Unauthorized.
	refreshToken, err := tokens.Issue(sec.TokenKindRefresh, "user-123", "alice@example.com", "Alice")
	require.NoError(t, err)
	_, err = service.Refresh(context.Background(), refreshToken)
	require.Error(t, err)
	assert.False(t, apperr.IsAppError(err))

	token, err := service.ForgotPassword(context.Background(), "alice@example.com")
	require.Error(t, err)
	assert.Empty(t, token)

	err = service.ResetPassword(context.Background(), "some-reset-token", "n3wpass1")
	require.Error(t, err)
	assert.False(t, apperr.IsAppError(err))
}

// revokeFailRepository accepts every write except clearing the refresh token.
type revokeFailRepository struct {
	*memoryUserRepository
}

func (r *revokeFailRepository) UpdateRefreshToken(_ context.Context, _ string, _ *string) error {
	return errStorageDown
}

/*
TestService_ResetPassword_RevokeFailure verifies a failed session revocation
does not roll back an already-applied password change: the reset still
reports success and the new hash is in place.
*/
func TestService_ResetPassword_RevokeFailure(t *testing.T) {
	repo := newMemoryUserRepository()
	tokens := sec.NewTokenService("access-secret", "refresh-secret", time.Hour, 7*24*time.Hour)
	service := auth.NewService(&revokeFailRepository{repo}, tokens)

	hash, err := sec.HashPassword("s3cret1")
	require.NoError(t, err)
	resetToken := "reset-token-value"
	expiry := time.Now().Add(time.Hour)
	repo.users["user-123"] = &auth.User{
		ID:               "user-123",
		Email:            "alice@example.com",
		PasswordHash:     hash,
		Name:             "Alice",
		ResetToken:       &resetToken,
		ResetTokenExpiry: &expiry,
	}

	require.NoError(t, service.ResetPassword(context.Background(), resetToken, "n3wpass1"))
	assert.True(t, sec.CheckPassword("n3wpass1", repo.users["user-123"].PasswordHash))
	assert.Nil(t, repo.users["user-123"].ResetToken)
}
