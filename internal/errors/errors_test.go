package errors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/fbstat/internal/errors"
)

func TestNilParam(t *testing.T) {
	err := errors.NilParam()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNilParam))
	assert.False(t, errors.Is(err, errors.ErrNilReceiver))
	assert.Contains(t, err.Error(), `TestNilParam`)

	assert.NoError(t, errors.NilParam(1, `a`))
	assert.True(t, errors.Is(errors.NilParam(1, nil), errors.ErrNilParam))
}

func TestNilReceiver(t *testing.T) {
	err := errors.NilReceiver()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNilReceiver))
}

func TestNew(t *testing.T) {
	assert.Nil(t, errors.New(nil))
	e := errors.New(`boom`)
	require.NotNil(t, e)
	assert.Same(t, e, errors.New(e))
}
