// Package insert places content at a named position relative to a
// target node. The position vocabulary is insertAdjacentHTML's.
// https://dom.spec.whatwg.org/#dom-element-insertadjacenthtml
package insert

import (
	"github.com/pkg/errors"
	"golang.org/x/net/html"

	"github.com/domwrap/domwrap/dom/markup"
)

// Position names where content lands relative to the target.
type Position string

const (
	// BeforeBegin inserts immediately before the target itself.
	BeforeBegin Position = "beforebegin"
	// AfterBegin inserts as the target's first child.
	AfterBegin Position = "afterbegin"
	// BeforeEnd appends as the target's last child. This is the
	// default position throughout the wrapper layer.
	BeforeEnd Position = "beforeend"
	// AfterEnd inserts immediately after the target itself.
	AfterEnd Position = "afterend"
)

// Positions is the closed set of valid insertion positions.
var Positions = []Position{BeforeBegin, AfterBegin, BeforeEnd, AfterEnd}

// ErrNoParent reports a sibling-relative insertion on a parentless
// target. ErrPosition reports a name outside the closed set.
var (
	ErrNoParent = errors.New("target has no parent for sibling insertion")
	ErrPosition = errors.New("unknown insertion position")
)

// Node inserts a single node at the given position. The content is
// detached from any previous parent first; a DOM node has one parent.
func Node(target, content *html.Node, pos Position) error {
	return Nodes(target, []*html.Node{content}, pos)
}

// Nodes inserts the given nodes in order at the position. The anchor
// is captured once so a multi-node insertion preserves list order for
// the sibling-relative positions too.
func Nodes(target *html.Node, content []*html.Node, pos Position) error {
	if target == nil || len(content) == 0 {
		return nil
	}
	var parent, anchor *html.Node
	switch pos {
	case BeforeBegin:
		if target.Parent == nil {
			return errors.Wrapf(ErrNoParent, "position %s", pos)
		}
		parent, anchor = target.Parent, target
	case AfterBegin:
		parent, anchor = target, target.FirstChild
	case BeforeEnd, "":
		parent, anchor = target, nil
	case AfterEnd:
		if target.Parent == nil {
			return errors.Wrapf(ErrNoParent, "position %s", pos)
		}
		parent, anchor = target.Parent, target.NextSibling
	default:
		return errors.Wrapf(ErrPosition, "%q", pos)
	}
	for _, c := range content {
		if c == nil {
			continue
		}
		markup.Detach(c)
		parent.InsertBefore(c, anchor)
	}
	return nil
}

// HTML parses a markup snippet and inserts the resulting nodes.
func HTML(target *html.Node, fragment string, pos Position) error {
	nodes, err := markup.Parse(fragment, markup.Options{})
	if err != nil {
		return err
	}
	return Nodes(target, nodes, pos)
}

// Text inserts a literal text node. The text is never parsed.
func Text(target *html.Node, text string, pos Position) error {
	return Node(target, markup.TextNode(text), pos)
}
