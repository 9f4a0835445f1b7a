package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errRoot = New("root cause")

func TestWrapfRendersOutermostFirst(t *testing.T) {
	err := Wrapf(Wrapf(errRoot, "resolve %s", "author"), "between %s", "price")

	assert.Equal(t, "between price: resolve author: root cause", err.Error())
	assert.True(t, Is(err, errRoot))
}

func TestWrapfDoesNotModifyWrappedChain(t *testing.T) {
	base := Errorf("bad value %d", 3)
	first := Wrapf(base, "first")
	second := Wrapf(base, "second")

	assert.Equal(t, "bad value 3", base.Error())
	assert.Equal(t, "first: bad value 3", first.Error())
	assert.Equal(t, "second: bad value 3", second.Error())
}

func TestWrapfNil(t *testing.T) {
	require.NoError(t, Wrapf(nil, "nothing"))
}

func TestAs(t *testing.T) {
	err := Wrapf(Errorf("inner"), "outer")

	var chain *ErrorChain
	require.True(t, As(err, &chain))
	assert.Len(t, chain.Unwrap(), 2)
}
