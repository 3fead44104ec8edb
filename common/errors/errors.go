package errors

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error represents an application error
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// JSON returns the error as a JSON string
func (e *Error) JSON() string {
	b, _ := json.Marshal(e)
	return string(b)
}

// New creates a new Error
func New(code int, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error types
var (
	ErrBadRequest      = New(http.StatusBadRequest, "Bad request", nil)
	ErrUnauthenticated = New(http.StatusUnauthorized, "Unauthenticated", nil)
	ErrForbidden       = New(http.StatusForbidden, "Forbidden", nil)
	ErrNotFound        = New(http.StatusNotFound, "Not found", nil)
	ErrInternalServer  = New(http.StatusInternalServerError, "Internal server error", nil)
)

// Unauthenticated reports a missing or invalid principal.
func Unauthenticated() *Error {
	return New(http.StatusUnauthorized, "Unauthenticated.", nil)
}

// Forbidden reports a principal lacking the role a mutation requires.
func Forbidden(required string) *Error {
	return New(http.StatusForbidden,
		fmt.Sprintf("Unauthorized Access: %s Privileges Required for Entry.", required), nil)
}

// NotFound reports a missing referenced entity.
func NotFound(entity string) *Error {
	return New(http.StatusNotFound, fmt.Sprintf("%s not found.", entity), nil)
}

// NotFoundf reports a missing entity with a formatted detail message.
func NotFoundf(format string, args ...interface{}) *Error {
	return New(http.StatusNotFound, fmt.Sprintf(format, args...), nil)
}

// Conflict reports a uniqueness violation detected by a pre-write check,
// naming the colliding field.
func Conflict(entity, field string) *Error {
	return New(http.StatusConflict,
		fmt.Sprintf("A %s with the same %s already exists.", entity, field), nil)
}

// Validation reports invalid caller-supplied input.
func Validation(message string) *Error {
	return New(http.StatusBadRequest, message, nil)
}

// Internal wraps an unexpected transport or database failure.
func Internal(message string, err error) *Error {
	return New(http.StatusInternalServerError, message, err)
}

// HandleError writes an error response on a bare http.ResponseWriter.
func HandleError(w http.ResponseWriter, err error) {
	var appErr *Error
	if e, ok := err.(*Error); ok {
		appErr = e
	} else {
		appErr = Internal("Internal server error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.Code)
	w.Write([]byte(appErr.JSON()))
}

// ErrorMiddleware maps errors attached to the gin context onto JSON responses.
func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *Error
			if e, ok := err.(*Error); ok {
				appErr = e
			} else {
				appErr = Internal("Internal server error", err)
			}

			c.JSON(appErr.Code, appErr)
			c.Abort()
		}
	}
}
