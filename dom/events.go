package dom

import (
	"github.com/domwrap/domwrap/dom/event"
)

// On attaches a listener to every member through the event facility,
// detachable by default, and returns the registration records in
// member order, exactly one for a single target. Nil when invalid.
func (w *Wrapper) On(typ string, fn event.Listener) []*event.Registration {
	if !w.valid {
		return nil
	}
	defaults := event.Options{Detachable: true}
	nodes := w.Nodes()
	regs := make([]*event.Registration, 0, len(nodes))
	for _, n := range nodes {
		if r := event.On(n, defaults, typ, fn); r != nil {
			regs = append(regs, r)
		}
	}
	return regs
}

// Trigger dispatches a synthetic event against the wrapped target
// as-is; the facility handles single-vs-collection fan-out. The
// facility's result list is returned unchanged.
func (w *Wrapper) Trigger(typ string, opts *event.Options) []*event.Result {
	if !w.valid {
		return nil
	}
	return event.Trigger(w.target(), typ, opts)
}
