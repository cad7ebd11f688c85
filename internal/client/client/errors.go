package client

import (
	"errors"

	"github.com/dmitrijs2005/calckeeper/internal/netx"
)

var (
	ErrUnavailable  = netx.ErrUnavailable
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrBadRequest   = errors.New("bad request")
	ErrInvalidInput = errors.New("invalid input")
)

// APIError carries the server's message together with the sentinel that
// matches its status code.
type APIError struct {
	Kind   error
	Detail string
}

func (e *APIError) Error() string {
	return e.Detail
}

func (e *APIError) Unwrap() error {
	return e.Kind
}

func mapError(err error) error {
	var se *netx.StatusError
	if !errors.As(err, &se) {
		return err
	}

	var kind error
	switch se.StatusCode {
	case 400:
		kind = ErrBadRequest
	case 401, 403:
		kind = ErrUnauthorized
	case 404:
		kind = ErrNotFound
	case 422:
		kind = ErrInvalidInput
	default:
		return err
	}

	return &APIError{Kind: kind, Detail: se.Detail}
}
