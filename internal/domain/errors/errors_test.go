package errors

import (
	"net/http"
	"testing"

	"mediahub/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsMatchesDerivedCopies(t *testing.T) {
	derived := ErrNotFound.WithDetails("video 42").WithMessage("Video not found")
	wrapped := errors.Wrap(derived, "update video")

	assert.True(t, errors.Is(wrapped, ErrNotFound))
	assert.False(t, errors.Is(wrapped, ErrForbidden))
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"validation", ErrIdentityAlreadyExists, KindValidation},
		{"wrapped unauthorized", errors.Wrap(ErrRefreshTokenReused, "refresh"), KindUnauthorized},
		{"forbidden", ErrForbidden.WrapMessage("update playlist"), KindForbidden},
		{"invalid operation", ErrSelfSubscription, KindInvalidOperation},
		{"database", NewDatabaseExecuteError(errors.New("boom"), "insert"), KindInternal},
		{"plain error", errors.New("boom"), KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestNewErrorResponse(t *testing.T) {
	resp := NewErrorResponse(ErrSelfSubscription)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, resp.Success)
	assert.Nil(t, resp.Data)
	assert.Equal(t, "You cannot subscribe to yourself", resp.Message)
}
