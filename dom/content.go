package dom

import (
	"github.com/pkg/errors"
	"golang.org/x/net/html"

	"github.com/domwrap/domwrap/dom/insert"
	"github.com/domwrap/domwrap/dom/markup"
)

// The valid insertion positions, re-exported so callers of Add and
// friends need not import the inserter.
const (
	BeforeBegin = insert.BeforeBegin
	AfterBegin  = insert.AfterBegin
	BeforeEnd   = insert.BeforeEnd
	AfterEnd    = insert.AfterEnd
)

// Add inserts content relative to every member. Accepted content:
// markup string, *html.Node, []*html.Node, or another wrapper
// (unwrapped to its target). A single target receives the content
// as-is; a collection fans out, and because a node has one parent the
// node kinds are deep-cloned fresh per member. Strings are reused
// untouched. Position defaults to append (BeforeEnd). Fan-out is not
// transactional: the first failure propagates with earlier members
// already mutated.
func (w *Wrapper) Add(content interface{}, pos insert.Position) (*Wrapper, error) {
	if !w.valid {
		return w, nil
	}
	if cw, ok := content.(*Wrapper); ok && cw != nil {
		content = cw.target()
	}
	switch c := content.(type) {
	case string:
		return w, w.fanOut(func(m *html.Node) error {
			return insert.HTML(m, c, pos)
		})
	case *html.Node:
		if !w.isCollection {
			return w, insert.Node(w.node, c, pos)
		}
		return w, w.fanOut(func(m *html.Node) error {
			return insert.Node(m, markup.Clone(c), pos)
		})
	case []*html.Node:
		if !w.isCollection {
			return w, insert.Nodes(w.node, c, pos)
		}
		return w, w.fanOut(func(m *html.Node) error {
			fresh := make([]*html.Node, len(c))
			for i, n := range c {
				fresh[i] = markup.Clone(n)
			}
			return insert.Nodes(m, fresh, pos)
		})
	default:
		return w, errors.Wrapf(ErrArgumentType, "add: unsupported content %T", content)
	}
}

// AddHTML inserts a markup snippet per member. No cloning is needed:
// each member parses its own fresh nodes from the text.
func (w *Wrapper) AddHTML(fragment string, pos insert.Position) (*Wrapper, error) {
	if !w.valid {
		return w, nil
	}
	return w, w.fanOut(func(m *html.Node) error {
		return insert.HTML(m, fragment, pos)
	})
}

// AddText inserts a literal text node per member. The text is never
// parsed as markup.
func (w *Wrapper) AddText(text string, pos insert.Position) (*Wrapper, error) {
	if !w.valid {
		return w, nil
	}
	return w, w.fanOut(func(m *html.Node) error {
		return insert.Text(m, text, pos)
	})
}

// fanOut applies op to every capability-passing member in order.
func (w *Wrapper) fanOut(op func(*html.Node) error) error {
	if !w.isCollection {
		return op(w.node)
	}
	for _, m := range w.nodes {
		if !w.opts.Filter(m) {
			continue
		}
		if err := op(m); err != nil {
			return err
		}
	}
	return nil
}
