package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/os10prep/os10-backend/internal/middleware"
	"github.com/os10prep/os10-backend/internal/response"
	"github.com/os10prep/os10-backend/internal/service"
)

const (
	defaultHistoryPerPage = 20
	maxHistoryPerPage     = 100
)

// ResultsHandler serves attempt history and derived statistics.
type ResultsHandler struct {
	resultsService *service.ResultsService
}

// NewResultsHandler creates a new ResultsHandler.
func NewResultsHandler(resultsService *service.ResultsService) *ResultsHandler {
	return &ResultsHandler{resultsService: resultsService}
}

// History godoc
// GET /api/v1/results/history?page=1&per_page=20
// Returns one page of the user's recorded attempts, newest first.
func (h *ResultsHandler) History(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	page := queryInt(c, "page", 1)
	if page < 1 {
		page = 1
	}
	perPage := queryInt(c, "per_page", defaultHistoryPerPage)
	if perPage < 1 || perPage > maxHistoryPerPage {
		perPage = defaultHistoryPerPage
	}

	attempts, total, err := h.resultsService.History(c.Request.Context(), claims.Username, page, perPage)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, gin.H{"attempts": attempts},
		response.NewPagination(page, perPage, total))
}

// queryInt reads an integer query parameter, falling back on absence or junk.
func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

// Summary godoc
// GET /api/v1/results/summary
// Returns per-category accuracy and the overall average.
func (h *ResultsHandler) Summary(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	summary, err := h.resultsService.Summary(c.Request.Context(), claims.Username)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"summary": summary})
}
