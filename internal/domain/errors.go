// Package domain contains business logic types and errors.
// Domain errors represent business-level failures, NOT HTTP errors.
// They are infrastructure-agnostic and can be mapped to HTTP/gRPC/etc by adapters.
package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a state conflict such as duplicate entry.
	ErrConflict = errors.New("conflict")

	// ErrValidation indicates request validation failed.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidCategory indicates an unrecognized category name.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrInvalidTagSet indicates an empty tag set or blank tag names.
	ErrInvalidTagSet = errors.New("invalid tag set")

	// ErrMalformedID indicates an identifier that is not a well-formed UUID.
	ErrMalformedID = errors.New("malformed identifier")

	// ErrUnavailable indicates a required dependency is unavailable.
	ErrUnavailable = errors.New("unavailable")
)

// NotFoundError provides context for not found errors.
type NotFoundError struct {
	Entity string
	ID     string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s with id: %s not found", e.Entity, e.ID)
	}

	return e.Entity + " not found"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a not found error with context.
func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// ConflictError provides context for conflict errors.
type ConflictError struct {
	Entity string
	Reason string
}

// Error implements the error interface.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s conflict: %s", e.Entity, e.Reason)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// NewConflictError creates a conflict error with context.
func NewConflictError(entity, reason string) error {
	return &ConflictError{Entity: entity, Reason: reason}
}

// ValidationError carries the collected field-level failures of a request.
// All field failures are gathered before this error is returned, so a
// single bad request reports every problem at once.
type ValidationError struct {
	Messages []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Messages) == 0 {
		return "validation failed"
	}

	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a validation error from collected messages.
func NewValidationError(messages ...string) error {
	return &ValidationError{Messages: messages}
}

// InvalidCategoryError reports an unrecognized category display name.
type InvalidCategoryError struct {
	Name string
}

// Error implements the error interface. The message enumerates the
// allowed display names so clients can self-correct.
func (e *InvalidCategoryError) Error() string {
	return "Invalid category. Allowed values: " + AllowedCategoryNames()
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *InvalidCategoryError) Unwrap() error {
	return ErrInvalidCategory
}

// NewInvalidCategoryError creates an invalid category error.
func NewInvalidCategoryError(name string) error {
	return &InvalidCategoryError{Name: name}
}

// InvalidTagSetError reports an empty tag set or blank tag names.
type InvalidTagSetError struct{}

// Error implements the error interface.
func (e *InvalidTagSetError) Error() string {
	return "At least one tag is required and must not contain blank values"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *InvalidTagSetError) Unwrap() error {
	return ErrInvalidTagSet
}

// NewInvalidTagSetError creates an invalid tag set error.
func NewInvalidTagSetError() error {
	return &InvalidTagSetError{}
}

// MalformedIDError reports an identifier that could not be parsed.
type MalformedIDError struct {
	Value string
}

// Error implements the error interface.
func (e *MalformedIDError) Error() string {
	return "Invalid post ID format. Must be a valid UUID."
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *MalformedIDError) Unwrap() error {
	return ErrMalformedID
}

// NewMalformedIDError creates a malformed identifier error.
func NewMalformedIDError(value string) error {
	return &MalformedIDError{Value: value}
}

// UnavailableError provides context for unavailable errors.
type UnavailableError struct {
	Service string
	Reason  string
}

// Error implements the error interface.
func (e *UnavailableError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("service %q unavailable: %s", e.Service, e.Reason)
	}

	return fmt.Sprintf("service %q unavailable", e.Service)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *UnavailableError) Unwrap() error {
	return ErrUnavailable
}

// NewUnavailableError creates an unavailable error with context.
func NewUnavailableError(service, reason string) error {
	return &UnavailableError{Service: service, Reason: reason}
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConflict checks if an error is a conflict error.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsInvalidCategory checks if an error is an invalid category error.
func IsInvalidCategory(err error) bool {
	return errors.Is(err, ErrInvalidCategory)
}

// IsInvalidTagSet checks if an error is an invalid tag set error.
func IsInvalidTagSet(err error) bool {
	return errors.Is(err, ErrInvalidTagSet)
}

// IsMalformedID checks if an error is a malformed identifier error.
func IsMalformedID(err error) bool {
	return errors.Is(err, ErrMalformedID)
}

// IsUnavailable checks if an error is an unavailable error.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
