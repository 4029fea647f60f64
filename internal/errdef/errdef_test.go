package errdef_test

import (
	"errors"
	"testing"

	"github.com/clubops/club-manager/internal/errdef"

	"github.com/stretchr/testify/assert"
)

func TestIsValidation(t *testing.T) {
	assert.False(t, errdef.IsValidation(errors.New("some error")))
	assert.True(t, errdef.IsValidation(errdef.NewValidation("some error")))
}

func TestIsDuplicated(t *testing.T) {
	assert.False(t, errdef.IsDuplicated(errors.New("some error")))
	assert.True(t, errdef.IsDuplicated(errdef.NewDuplicated("some error")))
}

func TestIsUnauthorized(t *testing.T) {
	assert.False(t, errdef.IsUnauthorized(errors.New("some error")))
	assert.True(t, errdef.IsUnauthorized(errdef.NewUnauthorized("some error")))
}

func TestIsNotFound(t *testing.T) {
	assert.False(t, errdef.IsNotFound(errors.New("some error")))
	assert.True(t, errdef.IsNotFound(errdef.NewNotFound("some error")))
}

func TestIsConflict(t *testing.T) {
	assert.False(t, errdef.IsConflict(errors.New("some error")))
	assert.True(t, errdef.IsConflict(errdef.NewConflict("some error")))
}

func TestIsUnsupportedMediaType(t *testing.T) {
	assert.False(t, errdef.IsUnsupportedMediaType(errors.New("some error")))
	assert.True(t, errdef.IsUnsupportedMediaType(errdef.NewUnsupportedMediaType("some error")))
}

func TestWrappedErrorsAreStillRecognized(t *testing.T) {
	err := errdef.NewNotFound("no event with id %d", 42)
	wrapped := errors.Join(errors.New("outer"), err)
	assert.True(t, errdef.IsNotFound(wrapped))
}
