// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_dashboard/internal/api"
	"stock_dashboard/internal/feature/auth/domain/entity"
	"stock_dashboard/internal/feature/auth/transport/http/dto"
	"stock_dashboard/internal/feature/auth/usecase"
	jwtmw "stock_dashboard/internal/platform/jwt"
)

// AuthUsecase defines the authentication operations consumed by this handler.
// Following Go convention, the interface is defined by the consumer (handler),
// not the provider (usecase).
type AuthUsecase interface {
	// Register creates a new user with the given credentials.
	Register(ctx context.Context, username, email, password string) (*entity.User, error)
	// Login authenticates a user and returns a signed token on success.
	Login(ctx context.Context, username, password string) (*usecase.LoginResult, error)
	// GetUserByUsername resolves a user for the identity endpoint.
	GetUserByUsername(ctx context.Context, username string) (*entity.User, error)
}

// AuthHandler handles HTTP requests for authentication operations.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles the user registration endpoint.
//   - 400 on validation errors
//   - 409 on duplicate username or email
//   - 201 with the created user summary on success
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.Fail(api.CodeInvalidRequest, err.Error()))
		return
	}

	user, err := h.auth.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUsernameAlreadyExists),
			errors.Is(err, usecase.ErrEmailAlreadyExists):
			slog.Warn("register conflict", "username", req.Username, "remote_addr", c.ClientIP())
			c.JSON(http.StatusConflict, api.Fail(api.CodeConflict, err.Error()))
		default:
			slog.Error("register failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, api.Fail(api.CodeInternal, "registration failed"))
		}
		return
	}

	slog.Info("user registered", "username", user.Username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, api.OK(userSummary(user), "user registered successfully"))
}

// Login handles the login endpoint.
//   - 400 on validation errors
//   - 401 with a WWW-Authenticate challenge on bad credentials
//   - 200 with {token, token_type, user} on success
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.Fail(api.CodeInvalidRequest, err.Error()))
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		// Same response for unknown user and wrong password
		slog.Warn("login failed", "username", req.Username, "remote_addr", c.ClientIP())
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, api.Fail(api.CodeUnauthorized, "incorrect username or password"))
		return
	}

	slog.Info("user login successful", "username", req.Username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.OK(dto.TokenResponse{
		Token:     result.Token,
		TokenType: result.TokenType,
		User:      userSummary(result.User),
	}, "login successful"))
}

// Me resolves the current user from the validated bearer token.
// It runs behind the JWT middleware, which stores the subject in the context.
func (h *AuthHandler) Me(c *gin.Context) {
	username := c.GetString(jwtmw.ContextUsername)
	if username == "" {
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, api.Fail(api.CodeUnauthorized, "could not validate credentials"))
		return
	}

	user, err := h.auth.GetUserByUsername(c.Request.Context(), username)
	if err != nil {
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, api.Fail(api.CodeUnauthorized, "user not found"))
		return
	}

	c.JSON(http.StatusOK, api.OK(userSummary(user), ""))
}

func userSummary(u *entity.User) dto.UserSummary {
	return dto.UserSummary{ID: u.ID, Username: u.Username, Email: u.Email}
}
