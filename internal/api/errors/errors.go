// Package errors defines errors that are safe to return to API clients.
package errors

import (
	"fmt"
	"net/http"
	"strings"
)

// FieldError describes a single rejected input field.
type FieldError struct {
	Msg   string `json:"msg"`
	Param string `json:"param,omitempty"`
}

// APIError is an error with an HTTP status and a client-facing message.
// When Fields is set the body is rendered as a list of errors.
type APIError struct {
	HTTPCode int
	Message  string
	Fields   []FieldError
}

func (e *APIError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Msg)
	}
	return strings.Join(msgs, "; ")
}

// Body returns the JSON response body for the error.
func (e *APIError) Body() any {
	if len(e.Fields) > 0 {
		return map[string][]FieldError{"errors": e.Fields}
	}
	return map[string]string{"msg": e.Message}
}

func newListed(code int, msg string) *APIError {
	return &APIError{HTTPCode: code, Message: msg, Fields: []FieldError{{Msg: msg}}}
}

// NewErrValidation reports rejected input fields.
func NewErrValidation(fields ...FieldError) *APIError {
	return &APIError{HTTPCode: http.StatusBadRequest, Message: "validation failed", Fields: fields}
}

// NewErrMalformedBody reports a request body that could not be decoded.
func NewErrMalformedBody() *APIError {
	return newListed(http.StatusBadRequest, "Malformed request body")
}

func NewErrAccountExists() *APIError {
	return newListed(http.StatusBadRequest, "User already exists")
}

// NewErrInvalidCredentials is shared by unknown email and wrong password.
func NewErrInvalidCredentials() *APIError {
	return newListed(http.StatusBadRequest, "Invalid Credentials")
}

func NewErrMissingAuthorizationToken() *APIError {
	return &APIError{HTTPCode: http.StatusUnauthorized, Message: "No token, authorization denied"}
}

func NewErrInvalidAuthorizationToken() *APIError {
	return &APIError{HTTPCode: http.StatusUnauthorized, Message: "Token is not valid"}
}

func NewErrForbidden() *APIError {
	return &APIError{HTTPCode: http.StatusForbidden, Message: "User not authorized"}
}

func NewErrAccountNotFound() *APIError {
	return &APIError{HTTPCode: http.StatusNotFound, Message: "User not found"}
}

// NewErrOwnProfileNotFound is returned when the caller has no profile yet.
func NewErrOwnProfileNotFound() *APIError {
	return &APIError{HTTPCode: http.StatusNotFound, Message: "There is no profile for this user"}
}

func NewErrProfileNotFound() *APIError {
	return &APIError{HTTPCode: http.StatusNotFound, Message: "Profile not found"}
}

func NewErrSubItemNotFound(kind string) *APIError {
	return &APIError{HTTPCode: http.StatusNotFound, Message: fmt.Sprintf("%s entry not found", kind)}
}

func NewErrPostNotFound() *APIError {
	return &APIError{HTTPCode: http.StatusNotFound, Message: "Post not found"}
}

func NewErrCommentNotFound() *APIError {
	return &APIError{HTTPCode: http.StatusNotFound, Message: "Comment does not exist"}
}

func NewErrAlreadyLiked() *APIError {
	return &APIError{HTTPCode: http.StatusBadRequest, Message: "Post already liked"}
}

func NewErrNotLiked() *APIError {
	return &APIError{HTTPCode: http.StatusBadRequest, Message: "Post has not yet been liked"}
}

// NewErrGithubProfileNotFound is returned for any failed upstream repository lookup.
func NewErrGithubProfileNotFound() *APIError {
	return &APIError{HTTPCode: http.StatusNotFound, Message: "No Github profile found"}
}

// NewErrInternal hides the cause of an unexpected failure.
func NewErrInternal() *APIError {
	return &APIError{HTTPCode: http.StatusInternalServerError, Message: "Server Error"}
}
