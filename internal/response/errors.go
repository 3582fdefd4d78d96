package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
	ErrSessionInvalidated ErrCode = "SESSION_INVALIDATED"
	ErrTokenRequired      ErrCode = "TOKEN_REQUIRED"
	ErrTokenInvalid       ErrCode = "TOKEN_INVALID"

	// ─── Authorization ─────────────────────────────────────────────────
	ErrForbidden         ErrCode = "FORBIDDEN"
	ErrTeacherAccessOnly ErrCode = "TEACHER_ACCESS_ONLY"
	ErrStudentAccessOnly ErrCode = "STUDENT_ACCESS_ONLY"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidID      ErrCode = "INVALID_ID"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound         ErrCode = "NOT_FOUND"
	ErrEmailTaken       ErrCode = "EMAIL_TAKEN"
	ErrQuestionNotFound ErrCode = "QUESTION_NOT_FOUND"

	// ─── Quiz-specific ─────────────────────────────────────────────────
	ErrQuizCompleted     ErrCode = "QUIZ_COMPLETED"
	ErrNotQuizOwner      ErrCode = "NOT_QUIZ_OWNER"
	ErrQuestionNotInQuiz ErrCode = "QUESTION_NOT_IN_QUIZ"
	ErrQuestionNotInExam ErrCode = "QUESTION_NOT_IN_EXAM"
	ErrNoQuestions       ErrCode = "NO_QUESTIONS"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Authentication ────────────────────────────────────────────────
	case ErrInvalidCredentials:
		return "Invalid email or password."
	case ErrSessionInvalidated:
		return "Your session has ended. Please log in again."
	case ErrTokenRequired:
		return "An authentication token is required."
	case ErrTokenInvalid:
		return "The authentication token is invalid or expired."

	// ─── Authorization ─────────────────────────────────────────────────
	case ErrForbidden:
		return "You do not have permission to access this resource."
	case ErrTeacherAccessOnly:
		return "This resource is restricted to teachers."
	case ErrStudentAccessOnly:
		return "This resource is restricted to students."

	// ─── Validation ────────────────────────────────────────────────────
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidID:
		return "Invalid ID format."
	case ErrInvalidPayload:
		return "Invalid request payload."

	// ─── Resources ─────────────────────────────────────────────────────
	case ErrNotFound:
		return "Resource not found."
	case ErrEmailTaken:
		return "An account with this email already exists."
	case ErrQuestionNotFound:
		return "A referenced question does not exist."

	// ─── Quiz-specific ─────────────────────────────────────────────────
	case ErrQuizCompleted:
		return "This quiz has already been submitted."
	case ErrNotQuizOwner:
		return "This quiz does not belong to you."
	case ErrQuestionNotInQuiz:
		return "A submitted answer references a question that is not part of this quiz."
	case ErrQuestionNotInExam:
		return "The question is not part of this exam."
	case ErrNoQuestions:
		return "No questions are available."

	// ─── Server ────────────────────────────────────────────────────────
	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}
