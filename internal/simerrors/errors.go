// Package simerrors defines the typed error kinds surfaced by the simulation
// core's CRUD and snapshot paths. Pipeline engines never fail; only the world
// manager's registry and serialisation operations and the location graph's
// add/remove operations return these.
package simerrors

import (
	"errors"
	"fmt"
)

// Code identifies one of the error kinds the core can surface.
type Code string

const (
	CodeCapacityExceeded Code = "capacity_exceeded"
	CodeDuplicateID      Code = "duplicate_id"
	CodeNotFound         Code = "not_found"
	CodeDimensionMismatch Code = "dimension_mismatch"
	CodeInvalidSnapshot  Code = "invalid_snapshot"
)

// AppError is the core's uniform error shape: a stable code, a human message,
// and an optional wrapped cause.
type AppError struct {
	Code    Code
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New builds an AppError with no wrapped cause.
func New(code Code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap builds an AppError around an existing error.
func Wrap(code Code, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// Is reports whether err is an *AppError with the given code.
func Is(err error, code Code) bool {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code == code
	}
	return false
}

func CapacityExceeded(message string) *AppError {
	return New(CodeCapacityExceeded, message)
}

func DuplicateID(message string) *AppError {
	return New(CodeDuplicateID, message)
}

func NotFound(message string) *AppError {
	return New(CodeNotFound, message)
}

func DimensionMismatch(message string) *AppError {
	return New(CodeDimensionMismatch, message)
}

func InvalidSnapshot(message string) *AppError {
	return New(CodeInvalidSnapshot, message)
}
