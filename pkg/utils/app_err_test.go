package utils

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NotFoundError("missing")))
	assert.Equal(t, KindConflict, KindOf(ConflictError("taken")))
	assert.Equal(t, KindValidation, KindOf(ValidationError("bad")))
	assert.Equal(t, KindNotAuthenticated, KindOf(NotAuthenticatedError("who?")))
	assert.Equal(t, KindNotAuthorized, KindOf(NotAuthorizedError("no")))
}

func TestKindOfWrappedError(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", ConflictError("taken"))

	assert.Equal(t, KindConflict, KindOf(wrapped))
}

func TestKindOfPlainErrorIsInternal(t *testing.T) {
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
}

func TestErrorMessageFormatting(t *testing.T) {
	err := NotFoundError("Student %s is missing.", "abc")

	assert.Equal(t, "Student abc is missing.", err.Error())
}
