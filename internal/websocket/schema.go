package websocket

// ─── Actions (Client → Server) ──────────────────────────────────────

type Action string

const (
	ActionAnswer  Action = "answer"
	ActionAdvance Action = "advance"
	ActionAbandon Action = "abandon"
	ActionPing    Action = "ping"
)

// RequestEnvelope is used to peek at the action before full parsing.
type RequestEnvelope struct {
	Action Action `json:"action"`
}

// AnswerRequest is sent by the client to confirm an option on the current
// question.
type AnswerRequest struct {
	Action   Action `json:"action"`
	Selected int    `json:"selected"`
}

// AdvanceRequest is sent by the client to move to the next question.
type AdvanceRequest struct {
	Action Action `json:"action"`
}

// ─── Events (Server → Client) ───────────────────────────────────────

type Event string

const (
	EventError     Event = "error"
	EventState     Event = "state"
	EventTick      Event = "tick"
	EventAnswered  Event = "answered"
	EventFinished  Event = "finished"
	EventAbandoned Event = "abandoned"
	EventExpired   Event = "expired"
	EventPong      Event = "pong"
)

// AbandonedResponse confirms the session was discarded.
type AbandonedResponse struct {
	Event Event `json:"event"`
}

// ExpiredResponse tells the client the countdown ran out; the attempt was
// recorded with the answers given so far.
type ExpiredResponse struct {
	Event Event `json:"event"`
}

// StateResponse carries the presentable session snapshot after connecting
// or advancing.
type StateResponse struct {
	Event Event       `json:"event"`
	State interface{} `json:"state"`
}

// TickResponse is pushed every second while the quiz runs.
type TickResponse struct {
	Event            Event `json:"event"`
	RemainingSeconds int   `json:"remaining_seconds"`
}

// AnsweredResponse echoes the grading of a confirmed answer.
type AnsweredResponse struct {
	Event         Event  `json:"event"`
	Correct       bool   `json:"correct"`
	CorrectAnswer int    `json:"correct_answer"`
	Explanation   string `json:"explanation"`
	Score         int    `json:"score"`
}

// FinishedResponse closes out the quiz with the recorded attempt.
type FinishedResponse struct {
	Event  Event       `json:"event"`
	Result interface{} `json:"result"`
}

type ErrorResponse struct {
	Event Event  `json:"event"`
	Error string `json:"error"`
}

type PongResponse struct {
	Event Event `json:"event"`
}
