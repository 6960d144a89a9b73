package dom

import "github.com/pkg/errors"

// ID returns the single target's id attribute. Collections have no
// single identity; the second return is false for them and for
// invalid instances.
func (w *Wrapper) ID() (string, bool) {
	if !w.valid || w.isCollection {
		return "", false
	}
	return getAttr(w.node, "id"), true
}

// SetID assigns the target's id. Identifiers are inherently singular,
// so a collection target is ErrInvalidOperation. Invalid instances
// no-op.
func (w *Wrapper) SetID(id string) error {
	if w.isCollection {
		return errors.Wrap(ErrInvalidOperation, "set id on collection")
	}
	if !w.valid {
		return nil
	}
	setAttr(w.node, "id", id)
	return nil
}

// Class returns the single target's live class-list handle, nil for
// collections and invalid instances.
func (w *Wrapper) Class() *ClassList {
	if !w.valid || w.isCollection {
		return nil
	}
	return classListOf(w.node)
}

// Classes returns one live class-list handle per member, in order,
// skipping members without one. A single target yields one entry.
func (w *Wrapper) Classes() []*ClassList {
	if !w.valid {
		return nil
	}
	var out []*ClassList
	for _, n := range w.Nodes() {
		if c := classListOf(n); c != nil {
			out = append(out, c)
		}
	}
	return out
}

// SetClass assigns the literal class string to every member. The
// value must be a string; anything else is ErrArgumentType and leaves
// every class list untouched. Invalid instances no-op.
func (w *Wrapper) SetClass(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return errors.Wrapf(ErrArgumentType, "class value must be a string, got %T", value)
	}
	if !w.valid {
		return nil
	}
	for _, n := range w.Nodes() {
		if !w.opts.Filter(n) {
			continue
		}
		setAttr(n, "class", s)
	}
	return nil
}
