package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/os10prep/os10-backend/internal/response"
	"github.com/os10prep/os10-backend/internal/study"
)

// StudyHandler serves the static study catalog.
type StudyHandler struct{}

// NewStudyHandler creates a new StudyHandler.
func NewStudyHandler() *StudyHandler {
	return &StudyHandler{}
}

// ListModules godoc
// GET /api/v1/study/modules
// Returns all study modules in course order.
func (h *StudyHandler) ListModules(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"modules": study.Modules()})
}

// GetModule godoc
// GET /api/v1/study/modules/:id
// Returns one study module.
func (h *StudyHandler) GetModule(c *gin.Context) {
	module, ok := study.ModuleByID(c.Param("id"))
	if !ok {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"module": module})
}

// OfficialLinks godoc
// GET /api/v1/study/links
// Returns the curated legal reference links.
func (h *StudyHandler) OfficialLinks(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"links": study.OfficialLinks()})
}
