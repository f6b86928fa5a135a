package apperr_test

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/kicks/internal/apperr"
)

var errSample = &apperr.Error{
	Message: "unknown intensity: %s",
}

func TestFmtMatchesSentinel(t *testing.T) {
	err := errSample.Fmt("loud")

	assert.Equal(t, "unknown intensity: loud", err.Error())
	assert.ErrorIs(t, err, errSample)
}

func TestWrapKeepsCause(t *testing.T) {
	err := errSample.Fmt("loud").Wrap(io.EOF)

	assert.Equal(t, "unknown intensity: loud: EOF", err.Error())
	assert.ErrorIs(t, err, io.EOF)
	assert.ErrorIs(t, err, errSample)
}

func TestDistinctSentinels(t *testing.T) {
	other := &apperr.Error{Message: "something else"}

	assert.False(t, errors.Is(errSample.Fmt("x"), other))
}

func TestSameMessageDifferentSentinels(t *testing.T) {
	twin := &apperr.Error{Message: errSample.Message}

	assert.False(t, errors.Is(errSample.Fmt("loud"), twin))
	assert.False(t, errors.Is(twin.Wrap(io.EOF), errSample))
	assert.ErrorIs(t, twin.Wrap(io.EOF), twin)
}

func TestChainedDerivationsMatchSentinel(t *testing.T) {
	err := errSample.Fmt("loud").Wrap(io.EOF).Fmt()

	assert.ErrorIs(t, err, errSample)
	assert.ErrorIs(t, errSample, errSample)
}
