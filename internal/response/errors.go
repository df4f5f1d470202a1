package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
	ErrSessionInvalidated ErrCode = "SESSION_INVALIDATED"
	ErrTokenRequired      ErrCode = "TOKEN_REQUIRED"
	ErrTokenInvalid       ErrCode = "TOKEN_INVALID"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidID      ErrCode = "INVALID_ID"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"
	ErrInvalidDate    ErrCode = "INVALID_DATE"
	ErrInvalidStatus  ErrCode = "INVALID_STATUS"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound         ErrCode = "NOT_FOUND"
	ErrConflict         ErrCode = "CONFLICT"
	ErrDependencyExists ErrCode = "DEPENDENCY_EXISTS"

	// ─── Attendance ────────────────────────────────────────────────────
	ErrNothingToSave  ErrCode = "NOTHING_TO_SAVE"
	ErrUnknownStudent ErrCode = "UNKNOWN_STUDENT"
	ErrSaveFailed     ErrCode = "SAVE_FAILED"

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
		return "Email or password is incorrect."
	case ErrSessionInvalidated:
		return "Your session has ended. Please sign in again."
	case ErrTokenRequired:
		return "An authentication token is required."
	case ErrTokenInvalid:
		return "The authentication token is invalid."

	// ─── Validation ────────────────────────────────────────────────────
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidID:
		return "The ID format is invalid."
	case ErrInvalidPayload:
		return "The request payload is invalid."
	case ErrInvalidDate:
		return "The date must be in YYYY-MM-DD format."
	case ErrInvalidStatus:
		return "The status value is not allowed."

	// ─── Resources ─────────────────────────────────────────────────────
	case ErrNotFound:
		return "The resource was not found."
	case ErrConflict:
		return "A resource with this identifier already exists."
	case ErrDependencyExists:
		return "This record cannot be deleted while other data still references it."

	// ─── Attendance ────────────────────────────────────────────────────
	case ErrNothingToSave:
		return "No attendance records to save."
	case ErrUnknownStudent:
		return "One or more students are not in the active roster."
	case ErrSaveFailed:
		return "Saving attendance failed. No records were changed."

	// ─── Rate Limiting ─────────────────────────────────────────────────
	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."

	// ─── Server ────────────────────────────────────────────────────────
	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}
