package dom

import (
	"github.com/pkg/errors"

	"github.com/domwrap/domwrap/dom/nodedata"
)

// Data returns the private store attached to the underlying node
// itself, shared by every wrapper around that node and outliving all
// of them. A collection has no single node identity to attach a
// store to, so collection targets are ErrInvalidOperation. Invalid
// instances yield nil.
func (w *Wrapper) Data() (nodedata.Store, error) {
	if w.isCollection {
		return nil, errors.Wrap(ErrInvalidOperation, "data on collection")
	}
	if !w.valid {
		return nil, nil
	}
	return nodedata.For(w.node), nil
}
