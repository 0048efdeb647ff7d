package failure

import (
	"errors"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
// Field names the offending input field for validation failures. It is set,
// possibly to the empty path, only on validation failures.
type Failure struct {
	Code    int     `json:"code"`
	Message string  `json:"message"`
	Field   *string `json:"field,omitempty"`
}

var InvalidRequestBody = &Failure{Code: http.StatusBadRequest, Message: "Invalid request body"}

// Error returns the error message.
func (e *Failure) Error() string {
	return e.Message
}

// Validation returns a bad request Failure pointing at a single input field.
func Validation(msg, field string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
		Field:   &field,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(message string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: message,
	}
}

// TooManyRequests returns a new Failure for callers over their request budget.
func TooManyRequests(message string) error {
	return &Failure{
		Code:    http.StatusTooManyRequests,
		Message: message,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetField returns the offending field of a validation failure, or an empty string.
func GetField(err error) string {
	var fail *Failure
	if errors.As(err, &fail) && fail.Field != nil {
		return *fail.Field
	}

	return ""
}
