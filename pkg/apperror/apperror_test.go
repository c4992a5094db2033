package apperror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusCodeMapping(t *testing.T) {
	tests := []struct {
		kind   Kind
		status int
	}{
		{Validation, http.StatusBadRequest},
		{Duplicate, http.StatusBadRequest},
		{InvalidCredentials, http.StatusBadRequest},
		{MissingToken, http.StatusUnauthorized},
		{InvalidToken, http.StatusUnauthorized},
		{TokenExpired, http.StatusUnauthorized},
		{UserNotFound, http.StatusUnauthorized},
		{NotFound, http.StatusNotFound},
		{Unavailable, http.StatusServiceUnavailable},
		{Internal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		require.Equal(t, tt.status, New(tt.kind, "x").StatusCode())
	}
}

func TestFromWrapsUnknownErrors(t *testing.T) {
	cause := errors.New("connection reset")
	appErr := From(cause)
	require.Equal(t, Internal, appErr.Kind)
	require.Equal(t, "Server error", appErr.Message)
	require.ErrorIs(t, appErr, cause)
}

func TestFromPreservesAppErrors(t *testing.T) {
	orig := NewNotFound("Task not found")
	require.Same(t, orig, From(orig))
}

func TestIsKindThroughWrapping(t *testing.T) {
	err := NewTokenExpired()
	require.True(t, IsKind(err, TokenExpired))
	require.False(t, IsKind(err, InvalidToken))
	require.False(t, IsKind(errors.New("plain"), TokenExpired))
}
