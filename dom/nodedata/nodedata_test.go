package nodedata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestForCreatesAndShares(t *testing.T) {
	n := &html.Node{Type: html.ElementNode, Data: "div"}

	s := For(n)
	require.NotNil(t, s)
	s["k"] = "v"

	again := For(n)
	assert.Equal(t, "v", again["k"])

	other := &html.Node{Type: html.ElementNode, Data: "div"}
	assert.Empty(t, For(other))
}

func TestPeek(t *testing.T) {
	n := &html.Node{Type: html.ElementNode, Data: "div"}

	_, ok := Peek(n)
	assert.False(t, ok)

	For(n)["x"] = 1
	s, ok := Peek(n)
	require.True(t, ok)
	assert.Equal(t, 1, s["x"])
}

func TestDrop(t *testing.T) {
	n := &html.Node{Type: html.ElementNode, Data: "div"}
	For(n)["x"] = 1

	Drop(n)
	_, ok := Peek(n)
	assert.False(t, ok)

	// a fresh store appears on next access
	assert.Empty(t, For(n))
}

func TestNilNode(t *testing.T) {
	assert.Nil(t, For(nil))
	Drop(nil)
}
