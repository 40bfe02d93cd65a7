package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(CodeAstronomyFetch, "fetch failed", cause)

	require.EqualError(t, err, "fetch failed: boom")
	require.ErrorIs(t, err, cause)
	require.True(t, IsCode(err, CodeAstronomyFetch))
	require.False(t, IsCode(err, CodeInvalidInput))
}

func TestCodeOfWrappedChain(t *testing.T) {
	err := fmt.Errorf("handler: %w", Wrap(CodeInvalidInput, "bad date", nil))

	require.Equal(t, CodeInvalidInput, CodeOf(err))
	require.Equal(t, "", CodeOf(errors.New("plain")))
	require.False(t, IsCode(errors.New("plain"), ""))
}
