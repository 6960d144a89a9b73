package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// ClassList is a live handle over an element's class attribute, in
// the shape of DOMTokenList.
// https://dom.spec.whatwg.org/#interface-domtokenlist
type ClassList struct {
	node *html.Node
}

// classListOf returns a handle for the node, or nil when the node has
// no class capability (anything that is not an element).
func classListOf(n *html.Node) *ClassList {
	if !IsElement(n) {
		return nil
	}
	return &ClassList{node: n}
}

// Node returns the element the handle is live against.
func (c *ClassList) Node() *html.Node { return c.node }

// Values returns the current class tokens in attribute order.
func (c *ClassList) Values() []string {
	return strings.Fields(getAttr(c.node, "class"))
}

// String returns the literal class attribute value.
func (c *ClassList) String() string {
	return getAttr(c.node, "class")
}

// Contains reports whether the token is present.
func (c *ClassList) Contains(token string) bool {
	for _, t := range c.Values() {
		if t == token {
			return true
		}
	}
	return false
}

// Add appends tokens not already present.
func (c *ClassList) Add(tokens ...string) {
	vals := c.Values()
	for _, token := range tokens {
		if token == "" || c.Contains(token) {
			continue
		}
		vals = append(vals, token)
	}
	setAttr(c.node, "class", strings.Join(vals, " "))
}

// Remove drops the given tokens.
func (c *ClassList) Remove(tokens ...string) {
	vals := c.Values()
	kept := vals[:0]
	for _, v := range vals {
		drop := false
		for _, token := range tokens {
			if v == token {
				drop = true
				break
			}
		}
		if !drop {
			kept = append(kept, v)
		}
	}
	setAttr(c.node, "class", strings.Join(kept, " "))
}

// Toggle flips a token's presence and reports whether it is present
// afterwards.
func (c *ClassList) Toggle(token string) bool {
	if c.Contains(token) {
		c.Remove(token)
		return false
	}
	c.Add(token)
	return true
}

func getAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func setAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}
