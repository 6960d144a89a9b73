package dom

import (
	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

// EachFunc visits one member: its position, the node itself, and the
// wrapper being iterated.
type EachFunc func(index int, n *html.Node, w *Wrapper) interface{}

// EachResult records one visit.
type EachResult struct {
	Index int
	Node  *html.Node
	Value interface{}
}

// Each invokes fn once per member in order and collects one record
// per call. A single target gets exactly one visit, with index 0. A nil fn
// is ErrArgumentType; an invalid instance yields an empty list.
func (w *Wrapper) Each(fn EachFunc) ([]EachResult, error) {
	if fn == nil {
		return nil, errors.Wrap(ErrArgumentType, "each: nil func")
	}
	if !w.valid {
		return []EachResult{}, nil
	}
	nodes := w.Nodes()
	results := make([]EachResult, 0, len(nodes))
	for i, n := range nodes {
		results = append(results, EachResult{
			Index: i,
			Node:  n,
			Value: fn(i, n, w),
		})
	}
	return results, nil
}
