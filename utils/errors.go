package utils

import "net/http"

// ErrorKind classifies a request failure. Each kind maps to exactly one
// HTTP status at the response boundary.
type ErrorKind int

const (
	KindUnauthorized ErrorKind = iota
	KindForbidden
	KindNotFound
	KindBadRequest
	KindInternal
)

// Error carries a failure kind plus a client-facing message.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

// Status maps the kind to its HTTP status code.
func (e *Error) Status() int {
	switch e.Kind {
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindBadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func NewError(kind ErrorKind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// RespondWithAppError writes the error as a JSON envelope with the
// status its kind maps to.
func RespondWithAppError(w http.ResponseWriter, err *Error) {
	RespondWithError(w, err.Status(), err.Message)
}
