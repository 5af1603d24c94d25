package apperror

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindNotAcceptable
)

// Error is a domain error whose message is a dotted localization key.
// Detail is appended verbatim after the localized message.
type Error struct {
	Kind   Kind
	Key    string
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return e.Key
	}
	return e.Key + " " + e.Detail
}

// Is matches on kind and key so sentinel values survive WithDetail
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Key == t.Key
}

// WithDetail returns a copy carrying an extra message suffix
func (e *Error) WithDetail(detail string) *Error {
	return &Error{Kind: e.Kind, Key: e.Key, Detail: detail}
}

func (e *Error) StatusCode() int {
	switch e.Kind {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindNotAcceptable:
		return http.StatusNotAcceptable
	default:
		return http.StatusInternalServerError
	}
}

func BadRequest(key string) *Error      { return &Error{Kind: KindBadRequest, Key: key} }
func Unauthenticated(key string) *Error { return &Error{Kind: KindUnauthenticated, Key: key} }
func Forbidden(key string) *Error       { return &Error{Kind: KindForbidden, Key: key} }
func NotFound(key string) *Error        { return &Error{Kind: KindNotFound, Key: key} }
func NotAcceptable(key string) *Error   { return &Error{Kind: KindNotAcceptable, Key: key} }
func Internal(key string) *Error        { return &Error{Kind: KindInternal, Key: key} }

// As extracts an *Error from err's chain
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
