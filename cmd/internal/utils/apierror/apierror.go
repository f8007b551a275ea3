package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is what every failed request serializes back to the client.
type ErrorResponse interface {
	error
	Code() int
}

type simpleError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"error"`
}

func (e *simpleError) Error() string {
	return e.Message
}

func (e *simpleError) Code() int {
	return e.StatusCode
}

func NewSimple(code int, message string) ErrorResponse {
	return &simpleError{StatusCode: code, Message: message}
}

func NewMissingParamError(name string) ErrorResponse {
	return NewSimple(http.StatusBadRequest, fmt.Sprintf("Missing required parameter: %s", name))
}

// notFoundError carries a path the client can fall back to, so an unknown
// id renders as a dead end with a way out rather than a bare 404.
type notFoundError struct {
	simpleError
	BackTo string `json:"back"`
}

func NewNotFound(message, backTo string) ErrorResponse {
	return &notFoundError{
		simpleError: simpleError{StatusCode: http.StatusNotFound, Message: message},
		BackTo:      backTo,
	}
}

// FromValidationError flattens validator failures into one client message.
func FromValidationError(err error) ErrorResponse {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return MalformedBodyError
	}

	fields := make([]string, len(verrs))
	for i, verr := range verrs {
		fields[i] = verr.Field()
	}
	msg := fmt.Sprintf("Invalid value for: %s", strings.Join(fields, ", "))
	return NewSimple(http.StatusBadRequest, msg)
}

var (
	InternalServerError = NewSimple(http.StatusInternalServerError, "Internal server error")
	NotFoundError       = NewSimple(http.StatusNotFound, "Not found")
	MalformedBodyError  = NewSimple(http.StatusBadRequest, "Malformed request body")
)
