// Copyright (c) 2026 Clinicore. All rights reserved.
// Author: dev@clinicore.health

/*
Package auth implements the core identity and access management (IAM) system.

It handles everything from user registration and secure password hashing to
the dual-token (access/refresh) lifecycle and time-boxed password recovery.

Architecture:

  - Service: Orchestrates business logic (Register, Login, Refresh, Reset).
  - Repository: Abstracted interface over Postgres for user records.
  - Security: Leverages bcrypt hashing and HS256-signed JWTs with
    independent secrets per token kind.

The package ensures that identity data remains consistent and secure
throughout the platform's lifecycle.
*/
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/clinicore/clinicore/internal/platform/apperr"
	"github.com/clinicore/clinicore/internal/platform/ctxutil"
	"github.com/clinicore/clinicore/internal/platform/sec"
	"github.com/clinicore/clinicore/pkg/pointer"
	"github.com/clinicore/clinicore/pkg/uuidv7"
)

// # Contracts & Types

// TokenProvider defines the contract for issuing and validating security tokens.
type TokenProvider interface {
	// Issue creates a signed JWT of the given kind for the user.
	//
	// # Parameters
	//   - kind: The token family (access or refresh).
	//   - userID: The ID of the account, stored as the subject claim.
	//   - email: The account email, embedded in the claims.
	//   - name: The display name, embedded in the claims.
	//
	// # Returns
	//   - A signed JWT string, or an err if signing fails.
	Issue(kind sec.TokenKind, userID, email, name string) (string, error)

	// Validate parses a JWT and verifies signature, expiry, and kind tag.
	Validate(tokenString string, expectedKind sec.TokenKind) (*sec.AuthClaims, error)

	// AccessTTL returns the configured access token lifetime.
	AccessTTL() time.Duration
}

// Service implements the credential lifecycle use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, registration,
// or login logic must be reviewed by the security team.
type Service struct {
	userRepository UserRepository
	tokenProvider  TokenProvider
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(userRepo UserRepository, tokenProv TokenProvider) *Service {
	return &Service{
		userRepository: userRepo,
		tokenProvider:  tokenProv,
	}
}

// TokenPair carries a freshly issued access/refresh pair.
type TokenPair struct {
	AccessToken  string
	RefreshToken string

	// ExpiresIn is the access token lifetime in whole seconds.
	ExpiresIn int64
}

// Credentials represents a successfully established authentication session.
type Credentials struct {
	TokenPair
	User *User
}

// normalizeEmail lowercases and trims the address. Every lookup and every
// write goes through this, so uniqueness is case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new member.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

/*
Register validates, hashes, and persists a brand new user account.

Description: Deep-enrollment of a new member. On success the account is
immediately authenticated: an access/refresh pair is issued and the refresh
token is persisted onto the record.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *Credentials: Created entity plus transport-ready tokens
  - err: Conflict (if the email exists) or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*Credentials, error) {
	email := normalizeEmail(input.Email)

	// Verify email uniqueness. Return a client-safe Conflict err.
	// Check-then-insert: a concurrent duplicate slips through to the unique
	// index, which still rejects it at write time.
	_, err := service.userRepository.FindByEmail(context, email)
	if err == nil {
		return nil, apperr.Conflict("Email is already registered")
	}
	if !apperr.IsNotFound(err) {
		return nil, fmt.Errorf("auth_service_register_lookup_failed: %w", err)
	}

	// Prevent storing plain-text passwords. Default cost is used for balance
	// between security and CPU utilization during registration spikes.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	// Construct the new User entity. Time-sortable ID to prevent PG index fragmentation.
	user := &User{
		ID:           uuidv7.Must().String(),
		Email:        email,
		PasswordHash: hashedPassword,
		Name:         input.Name,
		CreatedAt:    time.Now(),
	}

	// Persist the user to the database
	if err := service.userRepository.Create(context, user); err != nil {
		return nil, fmt.Errorf("auth_service_register_failed: %w", err)
	}

	return service.issueSession(context, user)
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email    string
	Password string
}

/*
Login validates user credentials and issues security tokens.

Description: Verifies identity, performs constant-time password comparison,
and establishes a fresh session. The prior refresh token is never reused,
even if the prior session's access token is still live.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *Credentials: Transport-ready session identifiers
  - err: Unauthorized or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*Credentials, error) {
	user, err := service.userRepository.FindByEmail(context, normalizeEmail(input.Email))

	// Unknown email gets the generic message to prevent enumeration. A storage
	// failure is not a credential failure and must surface as a 500 instead.
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.Unauthorized("Invalid email or password")
		}
		return nil, fmt.Errorf("auth_service_login_lookup_failed: %w", err)
	}

	// Verify the password hash using bcrypt's constant-time comparison. The
	// failure message is byte-identical to the unknown-email case above.
	if !sec.CheckPassword(input.Password, user.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid email or password")
	}

	return service.issueSession(context, user)
}

/*
Logout clears the user's stored refresh token.

Description: Prevents any future refresh for the current session. Access
tokens already issued remain valid until their embedded expiry; stateless
validation has no revocation list.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - err: Persistence failures
*/
func (service *Service) Logout(context context.Context, userID string) error {
	if err := service.userRepository.UpdateRefreshToken(context, userID, nil); err != nil {
		return fmt.Errorf("auth_service_logout_failed: %w", err)
	}
	return nil
}

// # Session Management

/*
Refresh implements the refresh token rotation mechanism.

Description: Verifies the presented token cryptographically, then requires
that it still matches the user's stored copy exactly. A token that validates
but has been rotated out is rejected. On success a brand-new pair is issued
and the new refresh token overwrites the old one.

Parameters:
  - context: context.Context
  - refreshToken: string

Returns:
  - *TokenPair: Rotated credentials
  - err: Unauthorized or storage failures
*/
func (service *Service) Refresh(context context.Context, refreshToken string) (*TokenPair, error) {

	// 1. Cryptographic check: signature, expiry, and kind tag.
	claims, err := service.tokenProvider.Validate(refreshToken, sec.TokenKindRefresh)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid or expired refresh token")
	}

	// 2. Possession check: the stored copy must still equal the presented value.
	user, err := service.userRepository.FindByRefreshToken(context, refreshToken)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.Unauthorized("Invalid or expired refresh token")
		}
		return nil, fmt.Errorf("auth_service_refresh_lookup_failed: %w", err)
	}

	// 3. Identity check: the subject inside the claims must match the row we
	// found. Guards against a stored value colliding across accounts.
	if claims.UserID() != user.ID {
		return nil, apperr.Unauthorized("Invalid or expired refresh token")
	}

	credentials, err := service.issueSession(context, user)
	if err != nil {
		return nil, err
	}

	return &credentials.TokenPair, nil
}

// issueSession generates a fresh access/refresh pair and persists the new
// refresh token, replacing whatever was stored before (rotation-by-replacement).
//
// Two concurrent rotations for the same user can both reach the write; the
// last one wins and the loser's pair is orphaned on its next use. Conflicting
// writes serialize on the single-row update, nothing more.
func (service *Service) issueSession(context context.Context, user *User) (*Credentials, error) {
	accessToken, err := service.tokenProvider.Issue(sec.TokenKindAccess, user.ID, user.Email, user.Name)
	if err != nil {
		return nil, fmt.Errorf("auth_service_access_token_failed: %w", err)
	}

	refreshToken, err := service.tokenProvider.Issue(sec.TokenKindRefresh, user.ID, user.Email, user.Name)
	if err != nil {
		return nil, fmt.Errorf("auth_service_refresh_token_failed: %w", err)
	}

	if err := service.userRepository.UpdateRefreshToken(context, user.ID, pointer.To(refreshToken)); err != nil {
		return nil, fmt.Errorf("auth_service_persist_refresh_token_failed: %w", err)
	}
	user.RefreshToken = pointer.To(refreshToken)

	return &Credentials{
		TokenPair: TokenPair{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
			ExpiresIn:    int64(service.tokenProvider.AccessTTL() / time.Second),
		},
		User: user,
	}, nil
}

// # Password Recovery

/*
ForgotPassword initiates the password recovery flow.

Description: Generates a secure token with a one-hour expiry and persists
both onto the user record. An unknown email yields an empty token and no
error, so the response shape never reveals whether the address is registered.

Parameters:
  - context: context.Context
  - email: string

Returns:
  - string: Reset token, or "" for unknown emails
  - err: Generation or persistence errors
*/
func (service *Service) ForgotPassword(context context.Context, email string) (string, error) {
	user, err := service.userRepository.FindByEmail(context, normalizeEmail(email))
	if err != nil {
		// Only an actual miss maps to the silent empty-token success; a
		// storage failure must not impersonate an unknown email.
		if apperr.IsNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("auth_service_forgot_password_lookup_failed: %w", err)
	}

	token, err := sec.GenerateResetToken()
	if err != nil {
		return "", fmt.Errorf("auth_service_generate_reset_token_failed: %w", err)
	}

	expiry := time.Now().Add(ResetTokenTTL)
	if err := service.userRepository.UpdateResetToken(context, user.ID, pointer.To(token), pointer.To(expiry)); err != nil {
		return "", fmt.Errorf("auth_service_save_reset_token_failed: %w", err)
	}

	return token, nil
}

/*
ResetPassword completes the forgot-password flow.

Description: Resolves the token to a user, verifies it has not expired,
hashes the new password, and replaces the hash while clearing the reset
token pair in one write. The stored refresh token is also cleared so the
reset cuts off any live session at its next refresh.

Parameters:
  - context: context.Context
  - token: string
  - newPassword: string

Returns:
  - err: Validation or update failures
*/
func (service *Service) ResetPassword(context context.Context, token, newPassword string) error {
	if len(newPassword) < MinPasswordLength {
		return apperr.ValidationError(
			fmt.Sprintf("Password must be at least %d characters", MinPasswordLength),
			apperr.FieldError{Field: FieldPassword, Message: "too short"},
		)
	}

	user, err := service.userRepository.FindByResetToken(context, token)
	if err != nil {
		if apperr.IsNotFound(err) {
			return apperr.ValidationError("Invalid or expired reset token")
		}
		return fmt.Errorf("auth_service_reset_password_lookup_failed: %w", err)
	}

	// Expiry is checked against wall-clock time at validation time.
	if user.ResetTokenExpiry == nil || time.Now().After(*user.ResetTokenExpiry) {
		return apperr.ValidationError("Reset token has expired")
	}

	hashedPassword, err := sec.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("auth_service_reset_password_hash_failed: %w", err)
	}

	// Single write: the new hash lands and the reset pair clears together.
	if err := service.userRepository.UpdatePassword(context, user.ID, hashedPassword); err != nil {
		return fmt.Errorf("auth_service_reset_password_update_failed: %w", err)
	}

	// Security cleanup: cut off the active refresh session. The password is
	// already changed at this point, so a failed revocation is reported to
	// the operator rather than failing the whole reset back to the client.
	if err := service.userRepository.UpdateRefreshToken(context, user.ID, nil); err != nil {
		ctxutil.GetLogger(context).ErrorContext(context, "auth_reset_password_revoke_failed",
			slog.String("user_id", user.ID),
			slog.Any("error", err),
		)
	}

	return nil
}

// # Identity Resolution

/*
GetUserByID returns the account with the given ID.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *User: Hydrated entity
  - err: apperr.NotFound or storage failures
*/
func (service *Service) GetUserByID(context context.Context, id string) (*User, error) {
	return service.userRepository.FindByID(context, id)
}
