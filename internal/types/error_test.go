package types

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	t.Run("wraps the cause", func(t *testing.T) {
		cause := errors.New("boom")
		err := NewError(http.StatusConflict, AlreadyStaked, cause)
		assert.Equal(t, http.StatusConflict, err.StatusCode)
		assert.Equal(t, AlreadyStaked, err.ErrorCode)
		assert.Equal(t, "boom", err.Error())
	})

	t.Run("internal service error defaults", func(t *testing.T) {
		err := NewInternalServiceError(errors.New("db down"))
		assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
		assert.Equal(t, InternalServiceError, err.ErrorCode)
	})

	t.Run("nil cause still prints", func(t *testing.T) {
		err := &Error{StatusCode: http.StatusBadRequest, ErrorCode: ValidationError}
		assert.Equal(t, "no error message provided", err.Error())
	})
}

func TestQualifiedStatesForWithdraw(t *testing.T) {
	// only ACTIVE stakes can be withdrawn, a settled record is final
	assert.Equal(t, []StakeState{StateActive}, QualifiedStatesForWithdraw())
}
