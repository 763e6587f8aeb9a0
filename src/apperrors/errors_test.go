package apperrors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestAppErrorWrapsSentinel(t *testing.T) {
	err := NewValidationError("age must be at least %d", 0)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "age must be at least 0", err.Error())

	wrapped := fmt.Errorf("handler: %w", NewEmptyAggregationError("average cgpa"))
	assert.ErrorIs(t, wrapped, ErrEmptyAggregation)
	assert.Contains(t, wrapped.Error(), "average cgpa")
}

func TestFromStore(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, FromStore("op", nil))
	})

	t.Run("duplicate key", func(t *testing.T) {
		driverErr := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000"}}}
		err := FromStore("insert", driverErr)
		assert.ErrorIs(t, err, ErrDuplicateKey)
	})

	t.Run("deadline is backend unavailable", func(t *testing.T) {
		err := FromStore("find", context.DeadlineExceeded)
		assert.ErrorIs(t, err, ErrBackendUnavailable)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("disconnected client", func(t *testing.T) {
		err := FromStore("find", mongo.ErrClientDisconnected)
		assert.ErrorIs(t, err, ErrBackendUnavailable)
	})

	t.Run("other errors keep the operation name", func(t *testing.T) {
		base := errors.New("boom")
		err := FromStore("aggregate", base)
		assert.ErrorIs(t, err, base)
		assert.NotErrorIs(t, err, ErrBackendUnavailable)
		assert.Equal(t, "aggregate: boom", err.Error())
	})

	t.Run("app errors pass through", func(t *testing.T) {
		in := NewValidationError("bad")
		assert.Same(t, in, FromStore("op", in))
	})
}
