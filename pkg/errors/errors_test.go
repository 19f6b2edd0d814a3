package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorType
	}{
		{name: "nil", err: nil, want: ErrorTypeUnknown},
		{name: "plain", err: errors.New("boom"), want: ErrorTypeUnknown},
		{name: "validation", err: NewValidationError("bad"), want: ErrorTypeValidation},
		{name: "not found", err: NewNotFoundError("missing"), want: ErrorTypeNotFound},
		{name: "unavailable", err: NewUnavailableError("down"), want: ErrorTypeUnavailable},
		{name: "internal", err: NewInternalError("oops"), want: ErrorTypeInternal},
		{name: "wrapped", err: fmt.Errorf("%w: timeout", NewUnavailableError("down")), want: ErrorTypeUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TypeOf(tt.err))
		})
	}
}

func TestWrappedSentinelKeepsIdentity(t *testing.T) {
	sentinel := NewNotFoundError("session not found")
	wrapped := fmt.Errorf("%w: user 42", sentinel)

	assert.True(t, errors.Is(wrapped, sentinel))
	assert.True(t, IsNotFoundError(wrapped))
	assert.False(t, IsInternalError(wrapped))
	assert.Equal(t, "session not found: user 42", wrapped.Error())
}

func TestErrorTypeString(t *testing.T) {
	assert.Equal(t, "validation", ErrorTypeValidation.String())
	assert.Equal(t, "not_found", ErrorTypeNotFound.String())
	assert.Equal(t, "unavailable", ErrorTypeUnavailable.String())
	assert.Equal(t, "internal", ErrorTypeInternal.String())
	assert.Equal(t, "unknown", ErrorType(99).String())
}
