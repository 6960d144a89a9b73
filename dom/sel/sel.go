// Package sel is the selector engine behind the wrapper's lookup
// operations. Selectors compile through cascadia; predicate searches
// walk the subtree directly. Both run against x/net/html node trees.
package sel

import (
	"github.com/andybalholm/cascadia"
	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

// Matcher is anything that can judge a single node. cascadia's
// compiled selectors satisfy it, as do bare predicates via Predicate.
type Matcher interface {
	Match(*html.Node) bool
}

// Predicate adapts a node predicate into a Matcher.
type Predicate func(*html.Node) bool

func (p Predicate) Match(n *html.Node) bool { return p(n) }

// Details is the diagnostics envelope returned by the detailed search
// entry points.
type Details struct {
	Found   bool
	Matches []*html.Node
	// Checked counts the descendants examined before the search
	// finished, short-circuits included.
	Checked int
}

// Compile turns a search argument into a Matcher. Accepted kinds:
// selector string, pre-compiled Matcher, node predicate.
func Compile(arg interface{}) (Matcher, error) {
	switch a := arg.(type) {
	case string:
		s, err := cascadia.ParseGroup(a)
		if err != nil {
			return nil, errors.Wrapf(err, "compile selector %q", a)
		}
		return s, nil
	case Matcher:
		return a, nil
	case func(*html.Node) bool:
		return Predicate(a), nil
	default:
		return nil, errors.Errorf("unsupported search argument %T", arg)
	}
}

// Find returns every descendant of n matching the selector, in
// document order. n itself is never a candidate.
func Find(n *html.Node, selector string) ([]*html.Node, error) {
	m, err := Compile(selector)
	if err != nil {
		return nil, err
	}
	matches, _ := search(n, m, true)
	return matches, nil
}

// First returns the first matching descendant, or nil.
func First(n *html.Node, selector string) (*html.Node, error) {
	m, err := Compile(selector)
	if err != nil {
		return nil, err
	}
	matches, _ := search(n, m, false)
	if len(matches) == 0 {
		return nil, nil
	}
	return matches[0], nil
}

// Engine is the default query-engine implementation handed to
// wrappers. It is stateless; the zero value is ready to use.
type Engine struct{}

// Search runs the given search arguments against n's descendants.
// Multiple arguments refine: each stage searches within the previous
// stage's matches. With multiple false the final stage stops at its
// first hit.
func (Engine) Search(n *html.Node, multiple bool, args ...interface{}) ([]*html.Node, error) {
	matches, _, err := run(n, multiple, args...)
	return matches, err
}

// SearchDetails is Search plus the diagnostics envelope.
func (Engine) SearchDetails(n *html.Node, multiple bool, args ...interface{}) (*Details, error) {
	matches, checked, err := run(n, multiple, args...)
	if err != nil {
		return nil, err
	}
	return &Details{
		Found:   len(matches) > 0,
		Matches: matches,
		Checked: checked,
	}, nil
}

func run(n *html.Node, multiple bool, args ...interface{}) ([]*html.Node, int, error) {
	if n == nil || len(args) == 0 {
		return nil, 0, nil
	}
	roots := []*html.Node{n}
	checked := 0
	for i, arg := range args {
		m, err := Compile(arg)
		if err != nil {
			return nil, checked, err
		}
		// Only the last stage may short-circuit; earlier stages feed
		// the next one and need their full match set.
		all := multiple || i < len(args)-1
		var next []*html.Node
		for _, root := range roots {
			matches, c := search(root, m, all)
			checked += c
			next = append(next, matches...)
			if !all && len(next) > 0 {
				break
			}
		}
		roots = next
		if len(roots) == 0 {
			break
		}
	}
	return roots, checked, nil
}

// search walks n's descendants in document order. With all false it
// stops at the first match.
func search(n *html.Node, m Matcher, all bool) ([]*html.Node, int) {
	var matches []*html.Node
	checked := 0
	var walk func(*html.Node) bool
	walk = func(cur *html.Node) bool {
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode {
				checked++
				if m.Match(c) {
					matches = append(matches, c)
					if !all {
						return true
					}
				}
			}
			if walk(c) {
				return true
			}
		}
		return false
	}
	walk(n)
	return matches, checked
}
