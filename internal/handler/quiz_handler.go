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

// QuizHandler handles the REST quiz endpoints. The same state machine is
// reachable over the WebSocket stream; both go through QuizService.
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler creates a new QuizHandler.
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// Start godoc
// POST /api/v1/quiz/start
// Assembles a question set and opens a session, replacing any previous one.
func (h *QuizHandler) Start(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	var req model.StartQuizRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	session, err := h.quizService.Start(c.Request.Context(), claims.Username, &req)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"session": sessionView(session)})
}

// State godoc
// GET /api/v1/quiz/state
// Returns the live session snapshot, resuming an interrupted quiz.
func (h *QuizHandler) State(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	session, err := h.quizService.State(c.Request.Context(), claims.Username)
	if err != nil {
		failQuiz(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"session": sessionView(session)})
}

// Answer godoc
// POST /api/v1/quiz/answer
// Confirms an option on the current question and returns the grading.
func (h *QuizHandler) Answer(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	var req model.AnswerRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	result, err := h.quizService.Answer(c.Request.Context(), claims.Username, *req.Selected)
	if err != nil {
		failQuiz(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"result": result})
}

// Advance godoc
// POST /api/v1/quiz/advance
// Moves past an answered question. Advancing off the last question
// finalizes the session and returns the finish summary instead.
func (h *QuizHandler) Advance(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	session, finish, err := h.quizService.Advance(c.Request.Context(), claims.Username)
	if err != nil {
		failQuiz(c, err)
		return
	}

	if finish != nil {
		response.Success(c, http.StatusOK, gin.H{"finished": finishView(finish.Attempt, finish.Passed)})
		return
	}
	response.Success(c, http.StatusOK, gin.H{"session": sessionView(session)})
}

// Abandon godoc
// DELETE /api/v1/quiz
// Discards the live session without recording an attempt.
func (h *QuizHandler) Abandon(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	if err := h.quizService.Abandon(c.Request.Context(), claims.Username); err != nil {
		failQuiz(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}

// failQuiz maps quiz state machine errors onto HTTP statuses.
func failQuiz(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNoActiveQuiz):
		response.Fail(c, http.StatusNotFound, response.ErrNoActiveQuiz)
	case errors.Is(err, service.ErrQuizExpired):
		response.Fail(c, http.StatusGone, response.ErrQuizExpired)
	case errors.Is(err, service.ErrAlreadyAnswered):
		response.Fail(c, http.StatusConflict, response.ErrAlreadyAnswered)
	case errors.Is(err, service.ErrNotAnswered):
		response.Fail(c, http.StatusConflict, response.ErrNotAnswered)
	default:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
