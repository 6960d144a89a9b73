package dom

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/html"

	"github.com/domwrap/domwrap/dom/sel"
)

// Query is the closed set of lookup kinds. The dynamic dispatch this
// replaces is decided once, at the call boundary, by the value's
// type.
type Query interface {
	queryKind()
}

// Selector locates nodes by CSS selector.
type Selector string

func (Selector) queryKind() {}

// Offset addresses a 0-based position in the child traversal.
type Offset int

func (Offset) queryKind() {}

// Predicate locates nodes by arbitrary judgment, evaluated through
// the query engine.
type Predicate func(*html.Node) bool

func (Predicate) queryKind() {}

// Result is what a lookup produced. Exactly one of Wrapper, Node, or
// Nodes is set, per the effective WrapQueries option. Details and
// Options ride along when diagnostics were requested.
type Result struct {
	Wrapper *Wrapper
	Node    *html.Node
	Nodes   []*html.Node

	Details []*sel.Details
	Options *Compiled
}

// Get locates a single node: an Offset indexes the child traversal
// (for collections, respecting ExpandChildren), a Selector returns
// the first match across members in order (members after the hit are
// never queried), and a Predicate delegates to Search with multiple
// off. Nil when the instance is invalid or nothing matches.
func (w *Wrapper) Get(query Query, local Opts) (*Result, error) {
	opts := w.Compile(local)
	switch q := query.(type) {
	case Offset:
		if !w.valid {
			return nil, nil
		}
		space := w.indexSpace(opts)
		i := int(q)
		if i < 0 || i >= len(space) {
			return nil, nil
		}
		return w.singleResult(space[i], opts), nil
	case Selector:
		if !w.valid {
			return nil, nil
		}
		if w.isCollection {
			for _, m := range w.nodes {
				if !opts.Filter(m) {
					continue
				}
				hits, err := opts.Engine.Search(m, false, string(q))
				if err != nil {
					return nil, err
				}
				if len(hits) > 0 {
					return w.singleResult(hits[0], opts), nil
				}
			}
			return nil, nil
		}
		hits, err := opts.Engine.Search(w.node, false, string(q))
		if err != nil {
			return nil, err
		}
		if len(hits) == 0 {
			return nil, nil
		}
		return w.singleResult(hits[0], opts), nil
	case Predicate:
		return w.search(opts, false, (func(*html.Node) bool)(q))
	case nil:
		return nil, errors.Wrap(ErrArgumentType, "get: nil query")
	default:
		return nil, errors.Wrapf(ErrArgumentType, "get: unsupported query %T", query)
	}
}

// Find locates every match: a Selector runs per capability-passing
// member and flattens the matches in member order, a Predicate
// delegates to Search with multiple on.
func (w *Wrapper) Find(query Query, local Opts) (*Result, error) {
	opts := w.Compile(local)
	switch q := query.(type) {
	case Selector:
		if !w.valid {
			return nil, nil
		}
		var all []*html.Node
		for _, m := range w.Nodes() {
			if w.isCollection && !opts.Filter(m) {
				continue
			}
			hits, err := opts.Engine.Search(m, true, string(q))
			if err != nil {
				return nil, err
			}
			all = append(all, hits...)
		}
		logrus.WithField("matches", len(all)).Debugf("[FIND]: %s", q)
		return w.multiResult(all, opts), nil
	case Predicate:
		return w.search(opts, true, (func(*html.Node) bool)(q))
	case nil:
		return nil, errors.Wrap(ErrArgumentType, "find: nil query")
	default:
		return nil, errors.Wrapf(ErrArgumentType, "find: unsupported query %T", query)
	}
}

// Search is the generalized lookup: engine-specific search arguments
// run against every capability-passing member, hits flattened in
// member order. With QueryDetails on, one diagnostics record per
// member is attached to the result, hit or miss, along with the
// effective options used.
func (w *Wrapper) Search(local Opts, multiple bool, args ...interface{}) (*Result, error) {
	return w.search(w.Compile(local), multiple, args...)
}

func (w *Wrapper) search(opts *Compiled, multiple bool, args ...interface{}) (*Result, error) {
	if opts == nil || !w.valid || len(args) == 0 {
		return nil, nil
	}
	var (
		all     []*html.Node
		details []*sel.Details
	)
	for _, m := range w.Nodes() {
		if w.isCollection && !opts.Filter(m) {
			continue
		}
		if opts.QueryDetails {
			d, err := opts.Engine.SearchDetails(m, multiple, args...)
			if err != nil {
				return nil, err
			}
			details = append(details, d)
			all = append(all, d.Matches...)
		} else {
			hits, err := opts.Engine.Search(m, multiple, args...)
			if err != nil {
				return nil, err
			}
			all = append(all, hits...)
		}
		// A single-result search stops at the first hit, unless
		// diagnostics are on: every member gets a record, hit or miss.
		if !multiple && !opts.QueryDetails && len(all) > 0 {
			break
		}
	}
	if len(all) == 0 && details == nil {
		return nil, nil
	}
	var res *Result
	if multiple {
		res = w.multiResult(all, opts)
	} else {
		var hit *html.Node
		if len(all) > 0 {
			hit = all[0]
		}
		res = w.singleResult(hit, opts)
	}
	if opts.QueryDetails {
		res.Details = details
		res.Options = opts
	}
	return res, nil
}

// indexSpace is the node list an Offset indexes into: immediate child
// elements for a single target, the members themselves for a
// collection, or every member's children flattened when
// ExpandChildren is on.
func (w *Wrapper) indexSpace(opts *Compiled) []*html.Node {
	if !w.isCollection {
		return childElements(w.node, opts.Filter)
	}
	if !opts.ExpandChildren {
		return w.nodes
	}
	var all []*html.Node
	for _, m := range w.nodes {
		if !opts.Filter(m) {
			continue
		}
		all = append(all, childElements(m, opts.Filter)...)
	}
	return all
}

func (w *Wrapper) singleResult(n *html.Node, opts *Compiled) *Result {
	if opts.WrapQueries {
		return &Result{Wrapper: w.derive(n, opts)}
	}
	return &Result{Node: n}
}

func (w *Wrapper) multiResult(nodes []*html.Node, opts *Compiled) *Result {
	if opts.WrapQueries {
		return &Result{Wrapper: w.derive(nodes, opts)}
	}
	return &Result{Nodes: nodes}
}
