package service

import "errors"

// The four failure kinds every service operation maps to. The HTTP layer has
// a single translator from these to response status codes; nothing else about
// an internal failure crosses the request boundary.
var (
	ErrBadRequest   = errors.New("bad_request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not_found")
)
