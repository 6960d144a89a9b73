// Package markup parses HTML fragments into detached node trees and
// provides the node-copy primitives the wrapper layer fans out with.
package markup

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Options controls fragment parsing.
type Options struct {
	// Context is the element the fragment is parsed "inside of". The
	// zero value means body, which is what callers want for generic
	// snippets; table fragments need atom.Table and so on.
	Context atom.Atom
}

// Parse parses an HTML fragment and returns its top-level nodes,
// detached from any document.
func Parse(fragment string, opts Options) ([]*html.Node, error) {
	ctx := opts.Context
	if ctx == 0 {
		ctx = atom.Body
	}
	container := &html.Node{
		Type:     html.ElementNode,
		Data:     ctx.String(),
		DataAtom: ctx,
	}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), container)
	if err != nil {
		return nil, errors.Wrapf(err, "parse fragment %q", clip(fragment))
	}
	for _, n := range nodes {
		Detach(n)
	}
	return nodes, nil
}

// Element returns a fresh, empty element node with the given tag name.
func Element(tag string) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
}

// TextNode returns a detached text node.
func TextNode(text string) *html.Node {
	return &html.Node{
		Type: html.TextNode,
		Data: text,
	}
}

// Clone deep-copies a node and its subtree. The copy is detached: no
// parent, no siblings. Attribute slices are copied, never shared.
func Clone(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	c := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
	}
	if len(n.Attr) > 0 {
		c.Attr = make([]html.Attribute, len(n.Attr))
		copy(c.Attr, n.Attr)
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.AppendChild(Clone(child))
	}
	return c
}

// Detach removes a node from its parent, if it has one. Siblings and
// parent pointers are cleared so the node can be re-inserted anywhere.
func Detach(n *html.Node) {
	if n == nil {
		return
	}
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
	n.PrevSibling = nil
	n.NextSibling = nil
}

// Render serializes a node subtree back to HTML.
func Render(n *html.Node) (string, error) {
	var b strings.Builder
	if err := html.Render(&b, n); err != nil {
		return "", errors.Wrap(err, "render node")
	}
	return b.String(), nil
}

// Text collects the concatenated text content of a subtree in
// document order.
func Text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func clip(s string) string {
	if len(s) > 40 {
		return s[:40] + "..."
	}
	return s
}
