package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domwrap/domwrap/dom/markup"
)

func TestDataSharedAcrossWrappers(t *testing.T) {
	n := markup.Element("div")

	first, err := Wrap(n, nil).Data()
	require.NoError(t, err)
	first["count"] = 7

	second, err := Wrap(n, nil).Data()
	require.NoError(t, err)
	assert.Equal(t, 7, second["count"])
}

func TestDataOnCollection(t *testing.T) {
	w := Wrap(mustParse(t, "<i></i><b></b>"), nil)
	_, err := w.Data()
	assert.ErrorIs(t, err, ErrInvalidOperation)
}

func TestDataOnInvalidInstance(t *testing.T) {
	store, err := Wrap(nil, nil).Data()
	require.NoError(t, err)
	assert.Nil(t, store)
}
