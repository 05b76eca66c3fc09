package mcpserver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeSlice(t *testing.T) {
	assert.Nil(t, makeSlice[int](0))

	s := makeSlice[string](3)
	require.NotNil(t, s)
	assert.Len(t, s, 0)
	assert.Equal(t, 3, cap(s))
}

func TestSanitizeError_Nil(t *testing.T) {
	assert.Empty(t, sanitizeError(nil))
}

func TestSanitizeError_PlainMessage(t *testing.T) {
	err := errors.New("exactly one of file, url, or content must be provided")
	assert.Equal(t, err.Error(), sanitizeError(err))
}

func TestErrResult(t *testing.T) {
	result := errResult(errors.New("boom"))
	require.NotNil(t, result)
	assert.True(t, result.IsError)
	require.Len(t, result.Content, 1)
}
