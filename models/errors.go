package models

import (
	"github.com/cockroachdb/errors"
)

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")

	// ConflictError is rendered with the http status code 409
	ConflictError = errors.New("duplicate value")
)

// DB related errors
var (
	ErrIgnoreRollBackError = errors.New("ignore rollback error")
)

// Audit mapping related errors
var (
	ErrUnknownProperty = errors.Wrap(BadParameterError, "unknown audited property")
	ErrUnknownRelation = errors.Wrap(BadParameterError, "unknown audited relation")
	ErrUnknownStrategy = errors.Wrap(BadParameterError, "unknown audit strategy")
)
