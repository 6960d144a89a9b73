// Package dom wraps one node or many behind a single object so
// callers never branch on cardinality themselves. Every operation
// classifies once at construction and fans out where the target is a
// collection. Parsing, selector matching, insertion mechanics, and
// event plumbing live in the collaborator subpackages; this layer
// only orchestrates them and re-wraps results.
package dom

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/net/html"

	"github.com/domwrap/domwrap/dom/markup"
)

// NodeList is an ordered collection of nodes.
type NodeList []*html.Node

// Wrapper is a view over a single node or an ordered node collection.
// The resolved target, its cardinality, and its validity are fixed at
// construction; derived views are always brand-new instances.
type Wrapper struct {
	wraps        interface{}
	node         *html.Node
	nodes        []*html.Node
	isCollection bool
	valid        bool
	opts         *Compiled
}

// Wrap builds a view over a target: a bare tag name, an HTML snippet,
// a single node, a node collection, or another wrapper (unwrapped to
// its target). Invalid input never raises; the instance reports
// IsValid false and every operation degrades to a neutral value.
func Wrap(target interface{}, opts *Options) *Wrapper {
	return newWrapper(target, defaultOptions().merge(opts))
}

func newWrapper(target interface{}, opts *Compiled) *Wrapper {
	w := &Wrapper{wraps: target, opts: opts}
	w.resolve(target)
	w.classify()
	logrus.WithFields(logrus.Fields{
		"collection": w.isCollection,
		"valid":      w.valid,
	}).Debugf("[WRAP]: %T", target)
	return w
}

func (w *Wrapper) resolve(target interface{}) {
	switch t := target.(type) {
	case string:
		if isTagName(t) {
			w.node = markup.Element(t)
			return
		}
		nodes, err := markup.Parse(t, w.opts.Parse)
		if err != nil {
			logrus.WithError(err).Debug("[WRAP]: parse failed")
			return
		}
		w.nodes = nodes
		w.isCollection = true
	case *html.Node:
		w.node = t
	case []*html.Node:
		w.nodes = t
		w.isCollection = true
	case NodeList:
		w.nodes = t
		w.isCollection = true
	case *Wrapper:
		if t != nil {
			w.resolve(t.target())
		}
	}
}

// classify applies cardinality collapse and derives validity. A
// one-member collection collapses to its sole node when the collapse
// option is on. A collection is valid iff non-empty; member
// capability is enforced lazily wherever members are iterated. A
// single node is valid iff it passes the capability filter.
func (w *Wrapper) classify() {
	if w.isCollection && len(w.nodes) == 1 && w.opts.Collapse {
		w.node = w.nodes[0]
		w.nodes = nil
		w.isCollection = false
	}
	if w.isCollection {
		w.valid = len(w.nodes) > 0
		return
	}
	w.valid = w.node != nil && w.opts.Filter(w.node)
}

// IsCollection reports whether the resolved target is a multi-node
// collection after cardinality collapse.
func (w *Wrapper) IsCollection() bool { return w.isCollection }

// IsValid reports whether the target is usable: a capability-passing
// single node, or a non-empty collection.
func (w *Wrapper) IsValid() bool { return w.valid }

// Wraps returns the raw construction argument, unmodified.
func (w *Wrapper) Wraps() interface{} { return w.wraps }

// Node returns the single resolved node, nil for collections.
func (w *Wrapper) Node() *html.Node {
	if w.isCollection {
		return nil
	}
	return w.node
}

// Nodes returns the resolved members: the collection itself, or the
// single node as a one-element list.
func (w *Wrapper) Nodes() []*html.Node {
	if w.isCollection {
		return w.nodes
	}
	if w.node == nil {
		return nil
	}
	return []*html.Node{w.node}
}

// Len reports the member count: collection length, 1 for a valid
// single node, 0 otherwise.
func (w *Wrapper) Len() int {
	if w.isCollection {
		return len(w.nodes)
	}
	if w.node != nil {
		return 1
	}
	return 0
}

// target returns the resolved target as-is for collaborators that
// fan out themselves.
func (w *Wrapper) target() interface{} {
	if w.isCollection {
		return w.nodes
	}
	return w.node
}

// derive is the single path for building derived views: compile the
// effective options, construct a fresh instance of the same shape
// around the new target. The compiled result becomes the new
// instance's own base, so no stale call-site state leaks forward.
func (w *Wrapper) derive(target interface{}, local Opts) *Wrapper {
	return newWrapper(target, w.compile(local, false))
}

// childElements collects n's immediate children passing the filter.
func childElements(n *html.Node, filter NodeFilter) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if filter(c) {
			out = append(out, c)
		}
	}
	return out
}

// isTagName reports whether s fits the bare tag-name grammar: a
// letter followed by letters, digits, or dashes. Anything else is
// treated as markup and parsed.
func isTagName(s string) bool {
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z':
		case i > 0 && (r >= '0' && r <= '9' || r == '-'):
		default:
			return false
		}
	}
	return s != ""
}
