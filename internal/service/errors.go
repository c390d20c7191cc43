// Package service contains the business logic for the postage comparator.
package service

import (
	"errors"
	"fmt"
)

var (
	// ErrRepositoryNotConfigured is returned when the repository is not configured.
	ErrRepositoryNotConfigured = errors.New("repository not configured")
	// ErrNotFound matches every NotFoundError.
	ErrNotFound = errors.New("not found")
	// ErrOriginNotConfigured is returned by quoting before origin settings are saved.
	ErrOriginNotConfigured = errors.New("origin settings not configured")
	// ErrNoCarrierQuote is returned when no enabled carrier could price the shipment.
	ErrNoCarrierQuote = errors.New("no carrier quote available")
)

// ValidationError is a rejected input. Message is shown to the user as is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError names the missing record.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// Is lets errors.Is(err, ErrNotFound) match.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func notFound(kind, id string) error {
	return &NotFoundError{Message: fmt.Sprintf("%s with id %s not found", kind, id)}
}
