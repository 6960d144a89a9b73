package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domwrap/domwrap/dom/markup"
)

func TestOptionOverridePrecedence(t *testing.T) {
	w := Wrap(markup.Element("div"), nil)
	require.True(t, w.opts.WrapQueries)

	c := w.Compile(&Options{WrapQueries: Bool(false)})
	assert.False(t, c.WrapQueries)
	// untouched fields keep the base value
	assert.True(t, c.Collapse)
	assert.False(t, c.ExpandChildren)

	// omitting the override preserves the base
	assert.True(t, w.Compile(nil).WrapQueries)
	assert.True(t, w.Compile(&Options{}).WrapQueries)
}

func TestCompiledPassesThrough(t *testing.T) {
	w := Wrap(markup.Element("div"), nil)
	c := w.Compile(&Options{QueryDetails: Bool(true)})

	// threading a compiled result back in short-circuits
	assert.Same(t, c, w.Compile(c))
}

func TestRecompileForcesMerge(t *testing.T) {
	w := Wrap(markup.Element("div"), &Options{Recompile: Bool(true)})
	c := w.compile(&Options{QueryDetails: Bool(true)}, false)

	out := w.Compile(c)
	assert.NotSame(t, c, out)
	assert.True(t, out.QueryDetails)
	assert.True(t, out.Recompile)
}

func TestDerivedInstanceBaseOptions(t *testing.T) {
	w := Wrap(mustParse(t, "<div><p>only</p></div>")[0], nil)
	children := w.Children()
	require.True(t, children.IsValid())

	// the child set's own base has collapse forced off, and no
	// stale call-site state beyond that
	base := children.Compile(nil)
	assert.False(t, base.Collapse)
	assert.True(t, base.WrapQueries)
}

func TestBaseOptionsImmutablePerInstance(t *testing.T) {
	w := Wrap(markup.Element("div"), nil)
	before := *w.opts
	_ = w.Compile(&Options{WrapQueries: Bool(false), ExpandChildren: Bool(true)})
	assert.Equal(t, before.WrapQueries, w.opts.WrapQueries)
	assert.Equal(t, before.ExpandChildren, w.opts.ExpandChildren)
}
