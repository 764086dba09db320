package shared

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_StatusCodes(t *testing.T) {
	assert.Equal(t, 400, NewBadRequestError(nil, "bad").StatusCode)
	assert.Equal(t, 401, NewUnauthorizedError(nil, "no").StatusCode)
	assert.Equal(t, 403, NewForbiddenError(nil, "no").StatusCode)
	assert.Equal(t, 404, NewNotFoundError(nil, "gone").StatusCode)
	assert.Equal(t, 409, NewConflictError(nil, "dup").StatusCode)
	assert.Equal(t, 429, NewTooManyRequestsError(nil, "slow down").StatusCode)
	assert.Equal(t, 500, NewInternalError(nil, "boom").StatusCode)
}

func TestAppError_WrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewInternalError(cause, "Failed to load habits")

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "Failed to load habits")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestGetAppError_FindsErrorInChain(t *testing.T) {
	inner := NewNotFoundError(nil, "Habit not found")
	wrapped := fmt.Errorf("handling request: %w", inner)

	appErr, ok := GetAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.StatusCode)
	assert.Equal(t, "Habit not found", appErr.Message)
}

func TestGetAppError_PlainError(t *testing.T) {
	_, ok := GetAppError(errors.New("plain"))
	assert.False(t, ok)
}

func TestMarshalRoundTrip(t *testing.T) {
	in := Response{Code: 200, Message: "Success", Data: map[string]interface{}{"pong": true}}

	data, err := MarshalJSON(in)
	require.NoError(t, err)

	var out Response
	require.NoError(t, UnmarshalJSON(data, &out))
	assert.Equal(t, in.Code, out.Code)
	assert.Equal(t, in.Message, out.Message)
}
