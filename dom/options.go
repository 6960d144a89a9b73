package dom

import (
	"golang.org/x/net/html"

	"github.com/domwrap/domwrap/dom/markup"
	"github.com/domwrap/domwrap/dom/sel"
)

// NodeFilter is the capability predicate deciding which values
// qualify as wrapped nodes.
type NodeFilter func(*html.Node) bool

// IsElement is the default capability filter.
func IsElement(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode
}

// Engine is the query-engine contract lookup operations delegate to.
// sel.Engine is the default implementation.
type Engine interface {
	Search(n *html.Node, multiple bool, args ...interface{}) ([]*html.Node, error)
	SearchDetails(n *html.Node, multiple bool, args ...interface{}) (*sel.Details, error)
}

// Opts is the option sum accepted wherever configuration can be
// supplied: a raw *Options to merge over an instance's base, or an
// already-effective *Compiled passed through untouched. The type
// split replaces any need for a hidden "already compiled" marker.
type Opts interface {
	opts()
}

// Options is raw caller configuration. Boolean fields are tri-state:
// nil leaves the base value alone, so an override only touches what
// it names.
type Options struct {
	// Collapse reduces a one-member collection to its sole node at
	// construction. Default true.
	Collapse *bool
	// ExpandChildren makes traversal on a collection descend into
	// each member's children instead of addressing the members
	// themselves. Default false.
	ExpandChildren *bool
	// WrapQueries returns lookup results as fresh wrappers rather
	// than raw nodes. Default true.
	WrapQueries *bool
	// QueryDetails asks the engine for its diagnostics envelope.
	// Default false.
	QueryDetails *bool
	// Recompile forces option merging even when handed an
	// already-compiled value. Default false.
	Recompile *bool

	Filter NodeFilter
	Engine Engine
	// Parse configures the markup parser for snippet targets.
	Parse *markup.Options
}

func (*Options) opts() {}

// Bool is a convenience for the tri-state option fields.
func Bool(v bool) *bool { return &v }

// Compiled is an effective, fully-resolved option set. Instances hold
// one as their base; lookup operations thread one through derived
// calls without re-merging.
type Compiled struct {
	Collapse       bool
	ExpandChildren bool
	WrapQueries    bool
	QueryDetails   bool
	Recompile      bool

	Filter NodeFilter
	Engine Engine
	Parse  markup.Options
}

func (*Compiled) opts() {}

func defaultOptions() *Compiled {
	return &Compiled{
		Collapse:    true,
		WrapQueries: true,
		Filter:      IsElement,
		Engine:      sel.Engine{},
	}
}

// clone returns a shallow copy; Filter and Engine are shared on
// purpose, the boolean state is what derived instances specialize.
func (c *Compiled) clone() *Compiled {
	cp := *c
	return &cp
}

// merge lays a raw override on top of the receiver, override winning
// where set.
func (c *Compiled) merge(o *Options) *Compiled {
	out := c.clone()
	if o == nil {
		return out
	}
	if o.Collapse != nil {
		out.Collapse = *o.Collapse
	}
	if o.ExpandChildren != nil {
		out.ExpandChildren = *o.ExpandChildren
	}
	if o.WrapQueries != nil {
		out.WrapQueries = *o.WrapQueries
	}
	if o.QueryDetails != nil {
		out.QueryDetails = *o.QueryDetails
	}
	if o.Recompile != nil {
		out.Recompile = *o.Recompile
	}
	if o.Filter != nil {
		out.Filter = o.Filter
	}
	if o.Engine != nil {
		out.Engine = o.Engine
	}
	if o.Parse != nil {
		out.Parse = *o.Parse
	}
	return out
}

// Compile produces the effective options for an operation: a raw
// local override merges over the instance's base, an already-compiled
// local passes through unchanged. The instance's Recompile default
// forces a re-merge of compiled input over the base.
func (w *Wrapper) Compile(local Opts) *Compiled {
	return w.compile(local, w.opts.Recompile)
}

func (w *Wrapper) compile(local Opts, force bool) *Compiled {
	switch o := local.(type) {
	case nil:
		return w.opts
	case *Options:
		return w.opts.merge(o)
	case *Compiled:
		if o == nil {
			return w.opts
		}
		if !force {
			return o
		}
		return o.clone()
	default:
		return w.opts
	}
}
