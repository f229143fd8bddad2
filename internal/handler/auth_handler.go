package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/os10prep/os10-backend/internal/middleware"
	"github.com/os10prep/os10-backend/internal/model"
	"github.com/os10prep/os10-backend/internal/response"
	"github.com/os10prep/os10-backend/internal/service"
	"github.com/os10prep/os10-backend/internal/validator"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService    *service.AuthService
	accountService *service.AccountService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService, accountService *service.AccountService) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		accountService: accountService,
	}
}

// Register godoc
// POST /api/v1/auth/register
// Creates a pending account; the instructor must approve it before login.
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	account, err := h.accountService.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"username": account.Username,
		"status":   account.Status,
	})
}

// Login godoc
// POST /api/v1/auth/login
// Validates username + password and account status, then issues a JWT.
// Regular users are single-device: a second login is rejected until the
// first session expires, logs out, or an admin resets it.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	account, err := h.accountService.GetByUsername(c.Request.Context(), req.Username)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
		return
	}
	if err := h.authService.CheckPassword(account.Password, req.Password); err != nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
		return
	}

	if account.IsAdmin {
		token, err := h.authService.GenerateAdminToken(account.Username)
		if err != nil {
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
			return
		}
		response.Success(c, http.StatusOK, gin.H{"token": token, "is_admin": true})
		return
	}

	if err := h.authService.Authorize(account); err != nil {
		switch {
		case errors.Is(err, service.ErrAccountPending):
			response.Fail(c, http.StatusForbidden, response.ErrAccountPending)
		case errors.Is(err, service.ErrAccountBlocked):
			response.Fail(c, http.StatusForbidden, response.ErrAccountBlocked)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	token, err := h.authService.GenerateUserToken(c.Request.Context(), account.Username)
	if err != nil {
		if errors.Is(err, service.ErrSessionAlreadyActive) {
			response.Fail(c, http.StatusConflict, response.ErrSessionActive)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"token": token, "is_admin": false})
}

// Logout godoc
// POST /api/v1/auth/logout
// Releases the user's single-device session.
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	if err := h.authService.ResetUserSession(c.Request.Context(), claims.Username); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}

// Me godoc
// GET /api/v1/auth/me
// Returns the profile of the currently authenticated account.
func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	account, err := h.accountService.GetByUsername(c.Request.Context(), claims.Username)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"username":   account.Username,
		"status":     account.Status,
		"is_admin":   account.IsAdmin,
		"created_at": account.CreatedAt,
	})
}
