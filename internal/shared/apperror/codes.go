package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput = "INVALID_INPUT"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeAlreadyUsed  = "ALREADY_USED"
	CodeExpired      = "EXPIRED"
	CodeInvalidState = "INVALID_STATE"

	// Server errors (5xx)
	CodePersistenceFailed  = "PERSISTENCE_FAILED"
	CodeInternalError      = "INTERNAL_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)
