// Package nodedata attaches private associative state to nodes. The
// store lives in an identity-keyed side table, not on any wrapper, so
// it is shared by every wrapper built around the same node and
// survives all of them.
package nodedata

import (
	"sync"

	"golang.org/x/net/html"
)

// Store is a node's private key/value state.
type Store map[string]interface{}

var (
	mu    sync.RWMutex
	table = map[*html.Node]Store{}
)

// For returns the node's store, creating it on first access.
func For(n *html.Node) Store {
	if n == nil {
		return nil
	}
	mu.RLock()
	s, ok := table[n]
	mu.RUnlock()
	if ok {
		return s
	}
	mu.Lock()
	defer mu.Unlock()
	if s, ok := table[n]; ok {
		return s
	}
	s = Store{}
	table[n] = s
	return s
}

// Peek returns the node's store without creating one.
func Peek(n *html.Node) (Store, bool) {
	mu.RLock()
	defer mu.RUnlock()
	s, ok := table[n]
	return s, ok
}

// Drop discards a node's store. The table holds strong references;
// callers discarding nodes should drop their entries too.
func Drop(n *html.Node) {
	mu.Lock()
	defer mu.Unlock()
	delete(table, n)
}
