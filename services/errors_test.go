package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestLookupErrorMapsRecordNotFound(t *testing.T) {
	err := lookupError("order", 7, gorm.ErrRecordNotFound)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "not found: order 7")
}

func TestStorageErrorKeepsKinds(t *testing.T) {
	assert.Nil(t, storageError("noop", nil))

	conflict := &conflictError{tableNumber: 3, at: dinnerTime}
	assert.Same(t, conflict, storageError("commit", conflict))

	cause := errors.New("connection reset")
	err := storageError("insert booking", cause)
	assert.ErrorIs(t, err, ErrStorage)
	assert.ErrorIs(t, err, cause)
	assert.False(t, errors.Is(err, ErrNotFound))
}
