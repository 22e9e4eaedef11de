package errors

import (
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapError(t *testing.T) {
	cause := fs.ErrNotExist
	err := WrapError(cause, ErrMissingConfiguration, "read session")

	assert.True(t, Is(err, ErrMissingConfiguration))
	assert.True(t, Is(err, fs.ErrNotExist))
	assert.False(t, Is(err, ErrConfiguration))
	assert.Equal(t, "missing configuration: read session: file does not exist", err.Error())
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, "nothing"))

	err := Wrap(WrapError(fmt.Errorf("boom"), ErrValidation, "parse"), "outer")
	assert.True(t, Is(err, ErrValidation))
	assert.Contains(t, err.Error(), "outer: validation error: parse: boom")
}

type codeError struct{ code int }

func (e *codeError) Error() string { return fmt.Sprintf("code %d", e.code) }

func TestAs(t *testing.T) {
	err := WrapError(&codeError{code: 7}, ErrHTTPResponse, "decode")

	var ce *codeError
	assert.True(t, As(err, &ce))
	assert.Equal(t, 7, ce.code)
}
