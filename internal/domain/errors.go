package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode - код ошибки для API
type ErrorCode string

const (
	ErrorCodeNotFound       ErrorCode = "NOT_FOUND"
	ErrorCodeValidation     ErrorCode = "VALIDATION_FAILED"
	ErrorCodeInvalidState   ErrorCode = "INVALID_STATE"
	ErrorCodeForbidden      ErrorCode = "FORBIDDEN"
	ErrorCodeTeamExists     ErrorCode = "TEAM_EXISTS"
	ErrorCodeInternalError  ErrorCode = "INTERNAL_ERROR"
	ErrorCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
)

// Error - доменная ошибка с HTTP статусом и кодом
type Error struct {
	Status  int       // HTTP status code
	Code    ErrorCode // Код ошибки для API
	Message string    // Сообщение об ошибке
	Err     error     // Wrapped error для контекста
}

// Error реализует интерфейс error
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap позволяет использовать errors.Is и errors.As
func (e *Error) Unwrap() error {
	return e.Err
}

// Is сравнивает доменные ошибки по коду, сообщение может отличаться
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// NewError создаёт новую доменную ошибку
func NewError(status int, code ErrorCode, message string, err error) *Error {
	return &Error{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Предопределённые доменные ошибки
var (
	// ErrResourceNotFound - ресурс не найден
	ErrResourceNotFound = NewError(
		http.StatusNotFound,
		ErrorCodeNotFound,
		"resource not found",
		nil,
	)

	// ErrValidation - нарушены ограничения состава команды или входных данных
	ErrValidation = NewError(
		http.StatusBadRequest,
		ErrorCodeValidation,
		"validation failed",
		nil,
	)

	// ErrInvalidState - операция недопустима в текущем состоянии заявки или назначения
	ErrInvalidState = NewError(
		http.StatusConflict,
		ErrorCodeInvalidState,
		"operation is not allowed in the current state",
		nil,
	)

	// ErrForbidden - у пользователя нет прав на операцию
	ErrForbidden = NewError(
		http.StatusForbidden,
		ErrorCodeForbidden,
		"operation is not permitted for this user",
		nil,
	)

	// ErrTeamExists - у проекта уже есть команда
	ErrTeamExists = NewError(
		http.StatusConflict,
		ErrorCodeTeamExists,
		"team already exists for this project",
		nil,
	)

	// ErrInternal - внутренняя ошибка сервера
	ErrInternal = NewError(
		http.StatusInternalServerError,
		ErrorCodeInternalError,
		"internal server error",
		nil,
	)
)

// NotFound создаёт ошибку NOT_FOUND с уточнённым сообщением
func NotFound(message string) *Error {
	return NewError(http.StatusNotFound, ErrorCodeNotFound, message, nil)
}

// Validation создаёт ошибку VALIDATION_FAILED с уточнённым сообщением
func Validation(message string) *Error {
	return NewError(http.StatusBadRequest, ErrorCodeValidation, message, nil)
}

// InvalidState создаёт ошибку INVALID_STATE с уточнённым сообщением
func InvalidState(message string) *Error {
	return NewError(http.StatusConflict, ErrorCodeInvalidState, message, nil)
}

// Forbidden создаёт ошибку FORBIDDEN с уточнённым сообщением
func Forbidden(message string) *Error {
	return NewError(http.StatusForbidden, ErrorCodeForbidden, message, nil)
}

// IsDomainError проверяет, является ли ошибка доменной
func IsDomainError(err error) bool {
	var e *Error
	return errors.As(err, &e)
}

// WrapError оборачивает обычную ошибку в доменную с контекстом
func WrapError(err error, status int, code ErrorCode, message string) *Error {
	return NewError(status, code, message, err)
}
