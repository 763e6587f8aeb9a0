package apperrors

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/x/mongo/driver/topology"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrDuplicateKey       = errors.New("duplicate key")
	ErrEmptyAggregation   = errors.New("no data to aggregate")
	ErrBackendUnavailable = errors.New("backend unavailable")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
)

// AppError carries a sentinel plus a caller-facing message.
type AppError struct {
	Err     error
	Message string
}

func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewValidationError(format string, args ...interface{}) error {
	return &AppError{Err: ErrValidation, Message: fmt.Sprintf(format, args...)}
}

func NewDuplicateKeyError(message string) error {
	return &AppError{Err: ErrDuplicateKey, Message: message}
}

func NewEmptyAggregationError(stat string) error {
	return &AppError{Err: ErrEmptyAggregation, Message: fmt.Sprintf("%s: no students to aggregate", stat)}
}

// FromStore classifies a driver error. nil stays nil.
func FromStore(op string, err error) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return err
	}
	if mongo.IsDuplicateKeyError(err) {
		return &AppError{Err: errors.Join(ErrDuplicateKey, err), Message: op + ": duplicate key"}
	}
	if IsBackendUnavailable(err) {
		return &AppError{Err: errors.Join(ErrBackendUnavailable, err), Message: op + ": " + err.Error()}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// IsBackendUnavailable reports connectivity style failures.
func IsBackendUnavailable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrBackendUnavailable) {
		return true
	}
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) {
		return true
	}
	if errors.Is(err, mongo.ErrClientDisconnected) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var selErr topology.ServerSelectionError
	return errors.As(err, &selErr)
}
