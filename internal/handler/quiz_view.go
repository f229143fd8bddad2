package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/os10prep/os10-backend/internal/model"
)

// sessionView shapes a live session for the client. The correct answer and
// explanation of the current question are only revealed once it has been
// confirmed; questions ahead of the pointer are never sent at all.
func sessionView(s *model.QuizSession) gin.H {
	view := gin.H{
		"id":                s.ID,
		"topic":             s.Topic,
		"difficulty":        s.Difficulty,
		"current_index":     s.CurrentIndex,
		"total":             len(s.Questions),
		"state":             s.State,
		"score":             s.Score,
		"remaining_seconds": s.RemainingSeconds(time.Now().UTC()),
		"started_at":        s.StartedAt,
	}

	if q := s.CurrentQuestion(); q != nil {
		question := gin.H{
			"question": q.QuestionText,
			"options":  q.Options,
		}
		if s.State == model.SessionStateAnswered {
			question["correct_answer"] = q.CorrectAnswer
			question["explanation"] = q.Explanation
			view["last_selected"] = s.LastSelected
			view["last_correct"] = s.LastCorrect
		}
		view["current_question"] = question
	}

	return view
}

// finishView shapes a finalize summary for the client.
func finishView(f *model.QuizAttempt, passed bool) gin.H {
	return gin.H{
		"attempt_id": f.ID,
		"topic":      f.Topic,
		"score":      f.Score,
		"total":      f.Total,
		"passed":     passed,
		"taken_at":   f.TakenAt,
		"details":    f.Details,
	}
}
