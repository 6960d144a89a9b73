package dom

import (
	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

// FirstElement returns the first relevant element as a raw node: the
// single target's first child element, a collection's first member,
// or, with ExpandChildren on, the first member's first child
// element. Nil when invalid or when there is nothing there.
func (w *Wrapper) FirstElement() *html.Node {
	if !w.valid {
		return nil
	}
	if w.isCollection {
		if !w.opts.ExpandChildren {
			return w.nodes[0]
		}
		return firstChildElement(w.nodes[0], w.opts.Filter)
	}
	return firstChildElement(w.node, w.opts.Filter)
}

// LastElement is FirstElement's mirror.
func (w *Wrapper) LastElement() *html.Node {
	if !w.valid {
		return nil
	}
	if w.isCollection {
		last := w.nodes[len(w.nodes)-1]
		if !w.opts.ExpandChildren {
			return last
		}
		return lastChildElement(last, w.opts.Filter)
	}
	return lastChildElement(w.node, w.opts.Filter)
}

// First returns FirstElement wrapped in a fresh instance with the
// same options.
func (w *Wrapper) First() *Wrapper {
	return w.derive(w.FirstElement(), nil)
}

// Last returns LastElement wrapped in a fresh instance.
func (w *Wrapper) Last() *Wrapper {
	return w.derive(w.LastElement(), nil)
}

// Children returns the immediate child elements as a new collection
// view. The child set stays a collection even with one member (the
// caller asked for children, not a child), so collapse is forced off.
// Two cases return the receiver itself: invalid instances, and
// collection targets without ExpandChildren (the members already are
// the addressed set).
func (w *Wrapper) Children() *Wrapper {
	if !w.valid {
		return w
	}
	local := &Options{
		Collapse:       Bool(false),
		ExpandChildren: Bool(w.opts.ExpandChildren),
	}
	if !w.isCollection {
		return w.derive(childElements(w.node, w.opts.Filter), local)
	}
	if !w.opts.ExpandChildren {
		return w
	}
	var all []*html.Node
	for _, m := range w.nodes {
		if !w.opts.Filter(m) {
			continue
		}
		all = append(all, childElements(m, w.opts.Filter)...)
	}
	return w.derive(all, local)
}

// WrappedChildren returns one fresh single-node wrapper per entry of
// Children, in order. Empty when the receiver or its child set is
// invalid. A valid non-collection child set would mean Children broke
// its own construction rule; that is ErrInternal.
func (w *Wrapper) WrappedChildren() ([]*Wrapper, error) {
	if !w.valid {
		return nil, nil
	}
	children := w.Children()
	if !children.valid {
		return nil, nil
	}
	if !children.isCollection {
		return nil, errors.Wrap(ErrInternal, "child set is not a collection")
	}
	out := make([]*Wrapper, 0, len(children.nodes))
	for _, n := range children.nodes {
		out = append(out, w.derive(n, nil))
	}
	return out, nil
}

func firstChildElement(n *html.Node, filter NodeFilter) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if filter(c) {
			return c
		}
	}
	return nil
}

func lastChildElement(n *html.Node, filter NodeFilter) *html.Node {
	for c := n.LastChild; c != nil; c = c.PrevSibling {
		if filter(c) {
			return c
		}
	}
	return nil
}
