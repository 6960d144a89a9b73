package insert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domwrap/domwrap/dom/markup"
)

func TestPositions(t *testing.T) {
	tests := []struct {
		pos  Position
		want string
	}{
		{BeforeBegin, "<div><i></i><p>anchor</p></div>"},
		{AfterBegin, "<div><p><i></i>anchor</p></div>"},
		{BeforeEnd, "<div><p>anchor<i></i></p></div>"},
		{AfterEnd, "<div><p>anchor</p><i></i></div>"},
		{"", "<div><p>anchor<i></i></p></div>"},
	}
	for _, tt := range tests {
		t.Run(string(tt.pos), func(t *testing.T) {
			nodes, err := markup.Parse("<div><p>anchor</p></div>", markup.Options{})
			require.NoError(t, err)
			anchor := nodes[0].FirstChild

			require.NoError(t, Node(anchor, markup.Element("i"), tt.pos))
			got, err := markup.Render(nodes[0])
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNodesPreserveOrder(t *testing.T) {
	for _, pos := range Positions {
		nodes, err := markup.Parse("<div><p>anchor</p></div>", markup.Options{})
		require.NoError(t, err)
		anchor := nodes[0].FirstChild

		content, err := markup.Parse("<i>1</i><i>2</i><i>3</i>", markup.Options{})
		require.NoError(t, err)
		require.NoError(t, Nodes(anchor, content, pos))

		got, err := markup.Render(nodes[0])
		require.NoError(t, err)
		assert.Containsf(t, got, "<i>1</i><i>2</i><i>3</i>", "position %s", pos)
	}
}

func TestSiblingPositionNeedsParent(t *testing.T) {
	orphan := markup.Element("div")
	assert.ErrorIs(t, Node(orphan, markup.Element("i"), BeforeBegin), ErrNoParent)
	assert.ErrorIs(t, Node(orphan, markup.Element("i"), AfterEnd), ErrNoParent)

	// child-relative positions are fine on an orphan
	assert.NoError(t, Node(orphan, markup.Element("i"), AfterBegin))
	assert.NoError(t, Node(orphan, markup.Element("i"), BeforeEnd))
}

func TestUnknownPosition(t *testing.T) {
	err := Node(markup.Element("div"), markup.Element("i"), "sideways")
	assert.ErrorIs(t, err, ErrPosition)
}

func TestContentIsDetachedFirst(t *testing.T) {
	nodes, err := markup.Parse("<div><span>mover</span></div><div></div>", markup.Options{})
	require.NoError(t, err)
	mover := nodes[0].FirstChild

	require.NoError(t, Node(nodes[1], mover, BeforeEnd))
	assert.Nil(t, nodes[0].FirstChild)
	assert.Same(t, mover, nodes[1].FirstChild)
}

func TestHTMLAndText(t *testing.T) {
	target := markup.Element("div")
	require.NoError(t, HTML(target, "<b>bold</b>", BeforeEnd))
	require.NoError(t, Text(target, "<b>literal</b>", BeforeEnd))

	got, err := markup.Render(target)
	require.NoError(t, err)
	assert.Equal(t, "<div><b>bold</b>&lt;b&gt;literal&lt;/b&gt;</div>", got)
}

func TestNoopInputs(t *testing.T) {
	assert.NoError(t, Node(nil, markup.Element("i"), BeforeEnd))
	assert.NoError(t, Nodes(markup.Element("div"), nil, BeforeEnd))
}
