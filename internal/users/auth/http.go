// Copyright (c) 2026 Clinicore. All rights reserved.
// Author: dev@clinicore.health

/*
HTTP delivery layer for user identity management.

It implements the gateway for the authentication lifecycle, from account
creation to token rotation and password recovery.

# Architecture

The handler acts as a thin mediation layer between the web and domain services:
  - Protocol: Standard RESTful JSON interface.
  - Security: Orchestrates the dual-token scheme and the Redis-backed
    brute-force throttle on credential endpoints.
  - Verification: Enforces strict input validation before passing to [Service].

This layer is strictly responsible for transport concerns (status codes, headers, JSON).
*/
package auth

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"github.com/clinicore/clinicore/internal/platform/constants"
	"github.com/clinicore/clinicore/internal/platform/middleware"
	requestutil "github.com/clinicore/clinicore/internal/platform/request"
	"github.com/clinicore/clinicore/internal/platform/respond"
	"github.com/clinicore/clinicore/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements authentication-related HTTP endpoints.
//
// # Scope
//
// This handler manages everything related to the user lifecycle entry points
// (Registration, Login, Token Refresh, Password Reset callbacks).
type Handler struct {
	authService *Service
	verifier    middleware.TokenVerifier
	cache       *redis.Client
}

// NewHandler constructs a new [Handler] with its service dependencies.
func NewHandler(service *Service, verifier middleware.TokenVerifier, cache *redis.Client) *Handler {
	return &Handler{
		authService: service,
		verifier:    verifier,
		cache:       cache,
	}
}

// Routes returns a [chi.Router] configured with authentication-specific routes.
//
// # Endpoints
//   - POST /register        : Creates a new account and returns a token pair.
//   - POST /login           : Authenticates and returns a token pair.
//   - POST /refresh         : Rotates a refresh token.
//   - POST /forgot-password : Starts the password recovery flow.
//   - POST /reset-password  : Completes the password recovery flow.
//   - GET  /me              : Returns the authenticated identity.
//   - POST /logout          : Clears the stored refresh token.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public endpoints
	router.Post("/register", handler.register)
	router.Post("/refresh", handler.refresh)
	router.Post("/reset-password", handler.resetPassword)

	// Brute-forceable endpoints get a per-IP throttle on top.
	router.Group(func(r chi.Router) {
		r.Use(middleware.Throttle(handler.cache, "credentials", constants.LoginThrottleLimit, constants.LoginThrottleWindow))
		r.Post("/login", handler.login)
		r.Post("/forgot-password", handler.forgotPassword)
	})

	// Protected endpoints
	router.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(handler.verifier))
		r.Get("/me", handler.me)
		r.Post("/logout", handler.logout)
	})

	return router
}

// # Request Payloads

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// # Response Payloads

type registerResponse struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	TokenType    string    `json:"token_type"`
	ExpiresIn    int64     `json:"expires_in"`
	CreatedAt    time.Time `json:"created_at"`
}

type loginResponse struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

type forgotPasswordResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	ResetToken string `json:"reset_token"`
}

type statusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type identityResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

/*
Register handles the creation of a new user account.

POST /auth/register

Description: Validates input, checks for identity conflicts, persists a new
user profile, and returns the profile with a freshly issued token pair.

Request:
  - Body: registerRequest (Email, Password, Name)

Response:
  - 201: registerResponse: Profile plus tokens
  - 400: ErrInvalidJSON: Bad input or validation failure
  - 409: ErrConflict: Email already exists
*/
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input registerRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		Required(FieldPassword, input.Password).
		MinLen(FieldPassword, input.Password, MinPasswordLength).
		Required(FieldName, input.Name)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	credentials, err := handler.authService.Register(request.Context(), RegisterInput{
		Email:    input.Email,
		Password: input.Password,
		Name:     input.Name,
	})

	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, registerResponse{
		ID:           credentials.User.ID,
		Email:        credentials.User.Email,
		Name:         credentials.User.Name,
		AccessToken:  credentials.AccessToken,
		RefreshToken: credentials.RefreshToken,
		TokenType:    constants.BearerScheme,
		ExpiresIn:    credentials.ExpiresIn,
		CreatedAt:    credentials.User.CreatedAt,
	})
}

/*
Login authenticates a user and establishes a session.

POST /auth/login

Description: Verifies credentials and returns a fresh access/refresh pair.
The prior refresh token, if any, is rotated out.

Request:
  - Body: loginRequest (Email, Password)

Response:
  - 200: loginResponse: Profile plus tokens
  - 401: ErrUnauthorized: Invalid credentials
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldEmail, input.Email)
	validator.Required(FieldPassword, input.Password)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	credentials, err := handler.authService.Login(request.Context(), LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, loginResponse{
		ID:           credentials.User.ID,
		Email:        credentials.User.Email,
		Name:         credentials.User.Name,
		AccessToken:  credentials.AccessToken,
		RefreshToken: credentials.RefreshToken,
		TokenType:    constants.BearerScheme,
		ExpiresIn:    credentials.ExpiresIn,
	})
}

/*
Refresh issues a new token pair using a valid refresh token.

POST /auth/refresh

Description: Rotates the session. The presented token must validate
cryptographically AND still match the stored copy; a rotated-out token is
rejected even if unexpired.

Request:
  - Body: refreshRequest (RefreshToken)

Response:
  - 200: tokenResponse: New credentials
  - 401: ErrUnauthorized: Missing, invalid, or rotated-out refresh token
*/
func (handler *Handler) refresh(writer http.ResponseWriter, request *http.Request) {
	var input refreshRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldRefreshToken, input.RefreshToken)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	pair, err := handler.authService.Refresh(request.Context(), input.RefreshToken)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, tokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    constants.BearerScheme,
		ExpiresIn:    pair.ExpiresIn,
	})
}

/*
ForgotPassword initiates the password recovery flow.

POST /auth/forgot-password

Description: Generates a time-boxed reset token for the account. The
response shape is identical for known and unknown emails; unknown addresses
receive an empty token.

Request:
  - Body: forgotPasswordRequest (Email)

Response:
  - 200: forgotPasswordResponse: Always success, token empty for unknown email
  - 400: ErrInvalidJSON: Invalid email format
*/
func (handler *Handler) forgotPassword(writer http.ResponseWriter, request *http.Request) {
	var input forgotPasswordRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	v := &validate.Validator{}
	v.Required(FieldEmail, input.Email).Email(FieldEmail, input.Email)

	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	token, err := handler.authService.ForgotPassword(request.Context(), input.Email)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, forgotPasswordResponse{
		Success:    true,
		Message:    "If this email is registered, a reset token has been issued.",
		ResetToken: token,
	})
}

/*
ResetPassword completes the password recovery flow.

POST /auth/reset-password

Description: Validates the reset token and updates the user's password.

Request:
  - Body: resetPasswordRequest (Token, Password)

Response:
  - 200: statusResponse: Password updated
  - 400: ErrInvalidJSON: Bad token, expired token, or weak password
*/
func (handler *Handler) resetPassword(writer http.ResponseWriter, request *http.Request) {
	var input resetPasswordRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	v := &validate.Validator{}
	v.Required(FieldToken, input.Token).
		Required(FieldPassword, input.Password)

	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.authService.ResetPassword(request.Context(), input.Token, input.Password); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, statusResponse{
		Success: true,
		Message: "Password updated successfully",
	})
}

/*
Me returns the authenticated user's identity.

GET /auth/me

Description: Reconstructs the identity directly from the validated token
claims injected by the authentication gate. No database lookup is performed.

Response:
  - 200: identityResponse: Subject, email, and name
  - 401: ErrUnauthorized: Gate rejected the token
*/
func (handler *Handler) me(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, identityResponse{
		ID:    claims.UserID(),
		Email: claims.Email,
		Name:  claims.Name,
	})
}

/*
Logout terminates the current session.

POST /auth/logout

Description: Clears the stored refresh token so no future refresh succeeds.
The presented access token remains valid until its own expiry.

Response:
  - 204: No Content: Session terminated
  - 401: ErrUnauthorized: Gate rejected the token
*/
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.authService.Logout(request.Context(), userID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
