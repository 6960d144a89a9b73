package dom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/domwrap/domwrap/dom/insert"
	"github.com/domwrap/domwrap/dom/markup"
)

func render(t *testing.T, n *html.Node) string {
	t.Helper()
	s, err := markup.Render(n)
	require.NoError(t, err)
	return s
}

func TestAddFanOutClonesNodes(t *testing.T) {
	members := mustParse(t, "<div></div><div></div>")
	w := Wrap(members, nil)

	x := mustParse(t, `<span id="x">payload</span>`)[0]
	_, err := w.Add(x, insert.BeforeEnd)
	require.NoError(t, err)

	first := members[0].FirstChild
	second := members[1].FirstChild
	require.NotNil(t, first)
	require.NotNil(t, second)

	// structurally equal, reference distinct, and the original node
	// was never moved into either member
	assert.Empty(t, cmp.Diff(render(t, first), render(t, second)))
	assert.NotSame(t, first, second)
	assert.NotSame(t, x, first)
	assert.NotSame(t, x, second)
	assert.Nil(t, x.Parent)
}

func TestAddSingleTargetTakesNodeItself(t *testing.T) {
	target := markup.Element("div")
	w := Wrap(target, nil)

	x := markup.Element("span")
	_, err := w.Add(x, insert.BeforeEnd)
	require.NoError(t, err)
	assert.Same(t, x, target.FirstChild)
	assert.Same(t, target, x.Parent)
}

func TestAddNodeListFanOut(t *testing.T) {
	members := mustParse(t, "<div></div><div></div>")
	w := Wrap(members, nil)

	list := mustParse(t, `<i id="1"></i><i id="2"></i>`)
	_, err := w.Add(list, insert.BeforeEnd)
	require.NoError(t, err)

	for _, m := range members {
		var got []string
		for c := m.FirstChild; c != nil; c = c.NextSibling {
			got = append(got, getAttr(c, "id"))
		}
		assert.Equal(t, []string{"1", "2"}, got)
	}
	// originals stayed detached
	assert.Nil(t, list[0].Parent)
	assert.Nil(t, list[1].Parent)
}

func TestAddWrapperContent(t *testing.T) {
	target := markup.Element("div")
	content := Wrap("<em>wrapped</em>", nil)

	_, err := Wrap(target, nil).Add(content, insert.BeforeEnd)
	require.NoError(t, err)
	require.NotNil(t, target.FirstChild)
	assert.Equal(t, "em", target.FirstChild.Data)
}

func TestAddStringContent(t *testing.T) {
	members := mustParse(t, "<div></div><div></div>")
	w := Wrap(members, nil)

	_, err := w.Add("<em>hi</em>", "")
	require.NoError(t, err)
	for _, m := range members {
		require.NotNil(t, m.FirstChild)
		assert.Equal(t, "em", m.FirstChild.Data)
	}
}

func TestAddRejectsUnsupportedContent(t *testing.T) {
	w := Wrap(markup.Element("div"), nil)
	_, err := w.Add(42, insert.BeforeEnd)
	assert.ErrorIs(t, err, ErrArgumentType)
}

func TestAddOnInvalidInstanceIsNoop(t *testing.T) {
	w := Wrap(nil, nil)
	out, err := w.Add(markup.Element("i"), insert.BeforeEnd)
	require.NoError(t, err)
	assert.Same(t, w, out)
}

func TestAddHTMLPositions(t *testing.T) {
	root := mustParse(t, "<div><p>anchor</p></div>")[0]
	p := root.FirstChild
	w := Wrap(p, nil)

	_, err := w.AddHTML("<i>in-front</i>", insert.BeforeBegin)
	require.NoError(t, err)
	_, err = w.AddHTML("<i>behind</i>", insert.AfterEnd)
	require.NoError(t, err)
	_, err = w.AddHTML("<i>head</i>", insert.AfterBegin)
	require.NoError(t, err)

	assert.Equal(t,
		"<div><i>in-front</i><p><i>head</i>anchor</p><i>behind</i></div>",
		render(t, root))
}

func TestAddTextIsNotParsed(t *testing.T) {
	members := mustParse(t, "<div></div><div></div>")
	w := Wrap(members, nil)

	_, err := w.AddText("<b>literal</b>", insert.BeforeEnd)
	require.NoError(t, err)
	for _, m := range members {
		require.NotNil(t, m.FirstChild)
		assert.Equal(t, html.TextNode, m.FirstChild.Type)
		assert.Equal(t, "<b>literal</b>", m.FirstChild.Data)
	}
}
