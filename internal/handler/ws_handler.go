package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/os10prep/os10-backend/internal/middleware"
	"github.com/os10prep/os10-backend/internal/service"
	ws "github.com/os10prep/os10-backend/internal/websocket"
	"github.com/rs/zerolog"
)

// buildUpgrader creates a WebSocket upgrader with origin validation.
// allowedOrigins comes from config.Config.AllowedOrigins.
// An empty slice permits all origins (development mode).
func buildUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if strings.EqualFold(allowed, origin) {
					return true
				}
			}
			return false
		},
	}
}

// WSHandler handles WebSocket quiz streaming: a live countdown pushed every
// second plus the answer/advance actions over the same connection.
type WSHandler struct {
	quizService *service.QuizService
	log         zerolog.Logger
	upgrader    websocket.Upgrader
}

// NewWSHandler creates a new WSHandler.
func NewWSHandler(quizService *service.QuizService, log zerolog.Logger, allowedOrigins []string) *WSHandler {
	return &WSHandler{
		quizService: quizService,
		log:         log.With().Str("component", "ws_handler").Logger(),
		upgrader:    buildUpgrader(allowedOrigins),
	}
}

// QuizStream godoc
// WS /ws/v1/quiz/stream?token=...
// Upgrades to WebSocket for the live quiz: the server pushes a tick every
// second and grades answers as they come in.
func (h *WSHandler) QuizStream(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	raw, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	conn := ws.NewConn(raw)
	defer conn.Close()

	username := claims.Username
	wsLog := h.log.With().Str("username", username).Logger()

	session, err := h.quizService.State(context.Background(), username)
	if err != nil {
		conn.WriteError(quizErrCode(err))
		return
	}

	wsLog.Info().Str("topic", session.Topic).Msg("Quiz stream connected")
	conn.WriteTyped(ws.StateResponse{Event: ws.EventState, State: sessionView(session)})

	streamCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go h.tickLoop(streamCtx, conn, username, session.Deadline, wsLog)

	for {
		payload, err := conn.ReadRaw()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				wsLog.Warn().Err(err).Msg("Unexpected close")
			} else {
				wsLog.Debug().Msg("Connection closed")
			}
			return
		}

		var envelope ws.RequestEnvelope
		if err := json.Unmarshal(payload, &envelope); err != nil {
			conn.WriteError("invalid payload")
			continue
		}

		switch envelope.Action {
		case ws.ActionAnswer:
			h.handleAnswer(conn, username, payload)
		case ws.ActionAdvance:
			if done := h.handleAdvance(conn, username); done {
				return
			}
		case ws.ActionAbandon:
			h.quizService.Abandon(context.Background(), username)
			conn.WriteTyped(ws.AbandonedResponse{Event: ws.EventAbandoned})
			return
		case ws.ActionPing:
			conn.WriteTyped(ws.PongResponse{Event: ws.EventPong})
		default:
			wsLog.Warn().Str("action", string(envelope.Action)).Msg("Unknown action")
			conn.WriteError("unknown action: " + string(envelope.Action))
		}
	}
}

// tickLoop pushes the remaining seconds every second. When the countdown
// hits zero it finalizes the session (racing the timeout worker is fine,
// the guard settles it) and tells the client the quiz expired.
func (h *WSHandler) tickLoop(ctx context.Context, conn *ws.Conn, username string, deadline time.Time, wsLog zerolog.Logger) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			remaining := int(deadline.Sub(now.UTC()).Seconds())
			if remaining <= 0 {
				conn.WriteTyped(ws.TickResponse{Event: ws.EventTick, RemainingSeconds: 0})
				if err := h.quizService.Expire(context.Background(), username); err != nil {
					wsLog.Error().Err(err).Msg("Failed to expire quiz from stream")
				}
				conn.WriteTyped(ws.ExpiredResponse{Event: ws.EventExpired})
				conn.Close()
				return
			}
			if err := conn.WriteTyped(ws.TickResponse{Event: ws.EventTick, RemainingSeconds: remaining}); err != nil {
				return
			}
		}
	}
}

func (h *WSHandler) handleAnswer(conn *ws.Conn, username string, payload []byte) {
	var req ws.AnswerRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		conn.WriteError("invalid answer payload")
		return
	}
	if req.Selected < 0 || req.Selected > 3 {
		conn.WriteError("selected option out of range")
		return
	}

	result, err := h.quizService.Answer(context.Background(), username, req.Selected)
	if err != nil {
		conn.WriteError(quizErrCode(err))
		return
	}

	conn.WriteTyped(ws.AnsweredResponse{
		Event:         ws.EventAnswered,
		Correct:       result.Correct,
		CorrectAnswer: result.CorrectAnswer,
		Explanation:   result.Explanation,
		Score:         result.Score,
	})
}

// handleAdvance moves the session forward. It reports true when the quiz
// finished and the connection should close.
func (h *WSHandler) handleAdvance(conn *ws.Conn, username string) bool {
	session, finish, err := h.quizService.Advance(context.Background(), username)
	if err != nil {
		conn.WriteError(quizErrCode(err))
		return false
	}

	if finish != nil {
		conn.WriteTyped(ws.FinishedResponse{
			Event:  ws.EventFinished,
			Result: finishView(finish.Attempt, finish.Passed),
		})
		return true
	}

	conn.WriteTyped(ws.StateResponse{Event: ws.EventState, State: sessionView(session)})
	return false
}

// quizErrCode turns state machine errors into stable codes for the stream.
func quizErrCode(err error) string {
	switch {
	case errors.Is(err, service.ErrNoActiveQuiz):
		return "NO_ACTIVE_QUIZ"
	case errors.Is(err, service.ErrQuizExpired):
		return "QUIZ_EXPIRED"
	case errors.Is(err, service.ErrAlreadyAnswered):
		return "ALREADY_ANSWERED"
	case errors.Is(err, service.ErrNotAnswered):
		return "NOT_ANSWERED"
	default:
		return "INTERNAL_ERROR"
	}
}
