package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
	ErrAccountPending     ErrCode = "ACCOUNT_PENDING"
	ErrAccountBlocked     ErrCode = "ACCOUNT_BLOCKED"
	ErrSessionActive      ErrCode = "SESSION_ALREADY_ACTIVE"
	ErrSessionInvalidated ErrCode = "SESSION_INVALIDATED"
	ErrTokenRequired      ErrCode = "TOKEN_REQUIRED"
	ErrTokenInvalid       ErrCode = "TOKEN_INVALID"
	ErrTokenExpired       ErrCode = "TOKEN_EXPIRED"

	// ─── Authorization ─────────────────────────────────────────────────
	ErrForbidden       ErrCode = "FORBIDDEN"
	ErrAdminAccessOnly ErrCode = "ADMIN_ACCESS_ONLY"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound        ErrCode = "NOT_FOUND"
	ErrConflict        ErrCode = "CONFLICT"
	ErrActionForbidden ErrCode = "ACTION_FORBIDDEN"

	// ─── Quiz-specific ─────────────────────────────────────────────────
	ErrNoActiveQuiz    ErrCode = "NO_ACTIVE_QUIZ"
	ErrAlreadyAnswered ErrCode = "ALREADY_ANSWERED"
	ErrNotAnswered     ErrCode = "NOT_ANSWERED"
	ErrQuizExpired     ErrCode = "QUIZ_EXPIRED"

	// ─── Assistant ─────────────────────────────────────────────────────
	ErrAssistantUnavailable ErrCode = "ASSISTANT_UNAVAILABLE"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Authentication ────────────────────────────────────────────────
	case ErrInvalidCredentials:
		return "Usuario o contraseña incorrectos."
	case ErrAccountPending:
		return "Tu acceso está pendiente de aprobación por el instructor."
	case ErrAccountBlocked:
		return "Tu cuenta ha sido suspendida."
	case ErrSessionActive:
		return "Ya tienes una sesión activa en otro dispositivo."
	case ErrSessionInvalidated:
		return "Tu sesión ha finalizado. Inicia sesión nuevamente."
	case ErrTokenRequired:
		return "Se requiere un token de autenticación."
	case ErrTokenInvalid:
		return "El token de autenticación no es válido."
	case ErrTokenExpired:
		return "El token de autenticación ha expirado."

	// ─── Authorization ─────────────────────────────────────────────────
	case ErrForbidden:
		return "No tienes permiso para acceder a este recurso."
	case ErrAdminAccessOnly:
		return "Este recurso está reservado para administradores."

	// ─── Validation ────────────────────────────────────────────────────
	case ErrValidation:
		return "La validación falló. Revisa los datos ingresados."
	case ErrInvalidPayload:
		return "El cuerpo de la solicitud no es válido."

	// ─── Resources ─────────────────────────────────────────────────────
	case ErrNotFound:
		return "Recurso no encontrado."
	case ErrConflict:
		return "El recurso ya existe."
	case ErrActionForbidden:
		return "Esta acción no está permitida."

	// ─── Quiz-specific ─────────────────────────────────────────────────
	case ErrNoActiveQuiz:
		return "No tienes una evaluación en curso."
	case ErrAlreadyAnswered:
		return "Ya respondiste esta pregunta. Avanza a la siguiente."
	case ErrNotAnswered:
		return "Debes responder la pregunta antes de avanzar."
	case ErrQuizExpired:
		return "El tiempo de la evaluación ha terminado."

	// ─── Assistant ─────────────────────────────────────────────────────
	case ErrAssistantUnavailable:
		return "El instructor virtual no está disponible en este momento."

	// ─── Rate Limiting ─────────────────────────────────────────────────
	case ErrRateLimitExceeded:
		return "Demasiadas solicitudes. Inténtalo de nuevo más tarde."

	// ─── Server ────────────────────────────────────────────────────────
	case ErrInternal:
		return "Ocurrió un error interno del servidor."
	default:
		return "Ocurrió un error inesperado."
	}
}
