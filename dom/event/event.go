// Package event is a listener registry and synthetic-event dispatcher
// for x/net/html node trees. Registrations key on node identity, so
// every wrapper built around the same node sees the same listeners.
package event

import (
	"sync"

	"github.com/google/uuid"
	"golang.org/x/net/html"
)

// Event is a synthesized event delivered to listeners.
type Event struct {
	Type    string
	Target  *html.Node
	Data    map[string]interface{}
	stopped bool
}

// Stop prevents later listeners on the same node from running.
func (e *Event) Stop() { e.stopped = true }

// Stopped reports whether Stop was called.
func (e *Event) Stopped() bool { return e.stopped }

// Listener handles a dispatched event.
type Listener func(*Event)

// Options configures a registration or a dispatch.
type Options struct {
	// Detachable registrations can be removed with Off. The wrapper
	// layer passes true by default.
	Detachable bool
	// Once registrations are removed after their first dispatch.
	Once bool
	// Data rides along on the dispatched event.
	Data map[string]interface{}
}

// Registration records one attached listener.
type Registration struct {
	ID         uuid.UUID
	Node       *html.Node
	Type       string
	Detachable bool
	Once       bool
	fn         Listener
}

// Result records one dispatch against one node.
type Result struct {
	Node    *html.Node
	Event   *Event
	Handled int
}

var (
	mu        sync.Mutex
	listeners = map[*html.Node][]*Registration{}
)

// On attaches a listener to a node and returns its registration
// record. defaults supplies the detachment and once flags.
func On(n *html.Node, defaults Options, typ string, fn Listener) *Registration {
	if n == nil || fn == nil {
		return nil
	}
	r := &Registration{
		ID:         uuid.New(),
		Node:       n,
		Type:       typ,
		Detachable: defaults.Detachable,
		Once:       defaults.Once,
		fn:         fn,
	}
	mu.Lock()
	listeners[n] = append(listeners[n], r)
	mu.Unlock()
	return r
}

// Off removes a registration. Returns false when the registration is
// not detachable or is no longer present.
func Off(r *Registration) bool {
	if r == nil || !r.Detachable {
		return false
	}
	mu.Lock()
	defer mu.Unlock()
	return remove(r)
}

func remove(r *Registration) bool {
	regs := listeners[r.Node]
	for i, reg := range regs {
		if reg.ID == r.ID {
			listeners[r.Node] = append(regs[:i], regs[i+1:]...)
			if len(listeners[r.Node]) == 0 {
				delete(listeners, r.Node)
			}
			return true
		}
	}
	return false
}

// Trigger dispatches a synthetic event against the target, which may
// be a single *html.Node or a []*html.Node. The fan-out over a
// collection happens here, one result per member.
func Trigger(target interface{}, typ string, opts *Options) []*Result {
	if opts == nil {
		opts = &Options{}
	}
	switch t := target.(type) {
	case *html.Node:
		if t == nil {
			return nil
		}
		return []*Result{dispatch(t, typ, opts)}
	case []*html.Node:
		results := make([]*Result, 0, len(t))
		for _, n := range t {
			if n == nil {
				continue
			}
			results = append(results, dispatch(n, typ, opts))
		}
		return results
	default:
		return nil
	}
}

func dispatch(n *html.Node, typ string, opts *Options) *Result {
	ev := &Event{Type: typ, Target: n, Data: opts.Data}
	res := &Result{Node: n, Event: ev}

	mu.Lock()
	regs := make([]*Registration, 0, len(listeners[n]))
	for _, r := range listeners[n] {
		if r.Type == typ {
			regs = append(regs, r)
		}
	}
	mu.Unlock()

	for _, r := range regs {
		if ev.Stopped() {
			break
		}
		r.fn(ev)
		res.Handled++
		if r.Once {
			mu.Lock()
			remove(r)
			mu.Unlock()
		}
	}
	return res
}

// Count reports how many listeners of the given type a node carries.
// An empty type counts them all.
func Count(n *html.Node, typ string) int {
	mu.Lock()
	defer mu.Unlock()
	if typ == "" {
		return len(listeners[n])
	}
	c := 0
	for _, r := range listeners[n] {
		if r.Type == typ {
			c++
		}
	}
	return c
}
