package api

const (
	ErrCodeTeamExists   = "TEAM_EXISTS"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeValidation   = "VALIDATION_FAILED"
	ErrCodeInvalidState = "INVALID_STATE"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeUnauthorized = "UNAUTHORIZED"

	ErrCodeInternalError  = "INTERNAL_ERROR"
	ErrCodeInvalidRequest = "INVALID_REQUEST"
)

// Error represents a standardized error structure
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Error Error `json:"error"`
}

// NewErrorResponse собирает тело ошибки
func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{Error: Error{Code: code, Message: message}}
}
