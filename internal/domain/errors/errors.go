// Package errors defines the typed application errors of the service.
// Every failure that can cross the delivery boundary carries an HTTP status
// and a stable business error code instead of a bare string.
package errors

import (
	"net/http"

	"github.com/AjaXium2/greenolivechain/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Waste lifecycle errors
	ErrWasteNotFound = NewBaseError(
		http.StatusNotFound,
		"WASTE_NOT_FOUND",
		"waste batch not found",
		"",
	)

	ErrInvalidWasteType = NewBaseError(
		http.StatusBadRequest,
		"INVALID_WASTE_TYPE",
		"unknown waste type",
		"",
	)

	ErrInvalidStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_STATUS",
		"unknown status value",
		"",
	)

	// Recycling workflow errors
	ErrRecordNotFound = NewBaseError(
		http.StatusNotFound,
		"RECORD_NOT_FOUND",
		"waste record not found",
		"",
	)

	ErrProcessNotFound = NewBaseError(
		http.StatusNotFound,
		"PROCESS_NOT_FOUND",
		"recycling process not found",
		"",
	)

	ErrNoSelection = NewBaseError(
		http.StatusConflict,
		"NO_SELECTION",
		"no waste record selected for processing",
		"",
	)

	ErrRecordNotReceivable = NewBaseError(
		http.StatusConflict,
		"RECORD_NOT_RECEIVABLE",
		"waste record is not ready for processing",
		"",
	)

	ErrProcessAlreadyExists = NewBaseError(
		http.StatusConflict,
		"PROCESS_ALREADY_EXISTS",
		"waste record already has a recycling process",
		"",
	)

	// Extraction errors
	ErrExtractionNotFound = NewBaseError(
		http.StatusNotFound,
		"EXTRACTION_NOT_FOUND",
		"extraction record not found",
		"",
	)

	// Recycling record errors
	ErrRecyclingNotFound = NewBaseError(
		http.StatusNotFound,
		"RECYCLING_NOT_FOUND",
		"recycling record not found",
		"",
	)

	// Traceability errors
	ErrTraceabilityIncomplete = NewBaseError(
		http.StatusBadGateway,
		"TRACEABILITY_INCOMPLETE",
		"traceability chain could not be fully assembled",
		"",
	)

	// Ledger gateway errors
	ErrLedgerUnavailable = NewBaseError(
		http.StatusBadGateway,
		"LEDGER_UNAVAILABLE",
		"blockchain gateway is unreachable",
		"",
	)

	ErrLedgerRejected = NewBaseError(
		http.StatusBadGateway,
		"LEDGER_REJECTED",
		"blockchain gateway rejected the request",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"resource conflict",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
