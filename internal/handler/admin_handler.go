package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/os10prep/os10-backend/internal/response"
	"github.com/os10prep/os10-backend/internal/service"
)

// AdminHandler handles the instructor-side moderation endpoints.
type AdminHandler struct {
	accountService *service.AccountService
	authService    *service.AuthService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(accountService *service.AccountService, authService *service.AuthService) *AdminHandler {
	return &AdminHandler{
		accountService: accountService,
		authService:    authService,
	}
}

// ListUsers godoc
// GET /api/v1/admin/users
// Returns all non-admin accounts for the moderation panel.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	accounts, err := h.accountService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	users := make([]gin.H, 0, len(accounts))
	for _, a := range accounts {
		users = append(users, gin.H{
			"username":   a.Username,
			"status":     a.Status,
			"created_at": a.CreatedAt,
		})
	}
	response.Success(c, http.StatusOK, gin.H{"users": users})
}

// StatusCounts godoc
// GET /api/v1/admin/users/counts
// Returns account totals per moderation status.
func (h *AdminHandler) StatusCounts(c *gin.Context) {
	counts, err := h.accountService.StatusCounts(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"counts": counts})
}

// ApproveUser godoc
// POST /api/v1/admin/users/:username/approve
// Moves a pending or blocked account to approved.
func (h *AdminHandler) ApproveUser(c *gin.Context) {
	username := c.Param("username")
	if err := h.accountService.Approve(c.Request.Context(), username); err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"username": username, "status": "approved"})
}

// BlockUser godoc
// POST /api/v1/admin/users/:username/block
// Blocks an account and cuts its live session so the block takes effect on
// the next request.
func (h *AdminHandler) BlockUser(c *gin.Context) {
	username := c.Param("username")
	if err := h.accountService.Block(c.Request.Context(), username); err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	if err := h.authService.ResetUserSession(c.Request.Context(), username); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"username": username, "status": "blocked"})
}

// ResetUserSession godoc
// POST /api/v1/admin/users/:username/reset-session
// Releases a user's single-device session so they can log in again.
func (h *AdminHandler) ResetUserSession(c *gin.Context) {
	username := c.Param("username")
	if err := h.authService.ResetUserSession(c.Request.Context(), username); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"username": username})
}
