package router

import (
	"fmt"
	"net/http"
	"sort"
	"sync"

	"github.com/gin-gonic/gin"
)

// SupportedMethods are the only verbs the API answers
var SupportedMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete}

// Params holds path parameters captured by a route pattern
type Params map[string]string

// Get returns the named parameter verbatim, or "" when absent
func (p Params) Get(name string) string {
	return p[name]
}

// HandlerFunc serves a matched route. A returned error is rendered by the
// dispatcher; handlers that already wrote a response return nil.
type HandlerFunc func(c *gin.Context, params Params) error

// Route maps a method and path pattern to a handler
type Route struct {
	Method  string
	Pattern string
	Handler HandlerFunc
	Auth    bool

	pattern pattern
	order   int
}

// Outcome classifies the result of resolving a request
type Outcome int

const (
	Matched Outcome = iota
	MethodNotAllowed
	NoRoute
)

// Resolution is the result of Table.Resolve
type Resolution struct {
	Outcome Outcome
	Route   *Route
	Params  Params
	Allowed []string // set for MethodNotAllowed
}

// Table is an ordered set of routes. Registration order only breaks ties;
// resolution always tries more specific patterns first, so a suffix route
// like /x/{id}/soft-delete is never shadowed by /x/{id}.
type Table struct {
	mu     sync.RWMutex
	routes []*Route
	sorted bool
}

// NewTable creates an empty route table
func NewTable() *Table {
	return &Table{}
}

// Handle registers a route. It panics on a malformed pattern, an
// unsupported method or a duplicate (method, pattern) pair.
func (t *Table) Handle(method, path string, handler HandlerFunc, auth bool) *Table {
	if !supported(method) {
		panic(fmt.Sprintf("router: unsupported method %q for %s", method, path))
	}
	if handler == nil {
		panic(fmt.Sprintf("router: nil handler for %s %s", method, path))
	}
	p, err := parsePattern(path)
	if err != nil {
		panic("router: " + err.Error())
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	for _, r := range t.routes {
		if r.Method == method && r.Pattern == path {
			panic(fmt.Sprintf("router: duplicate route %s %s", method, path))
		}
	}

	t.routes = append(t.routes, &Route{
		Method:  method,
		Pattern: path,
		Handler: handler,
		Auth:    auth,
		pattern: p,
		order:   len(t.routes),
	})
	t.sorted = false
	return t
}

// Public registers a route reachable without a session
func (t *Table) Public(method, path string, handler HandlerFunc) *Table {
	return t.Handle(method, path, handler, false)
}

// Private registers a route that requires a valid session
func (t *Table) Private(method, path string, handler HandlerFunc) *Table {
	return t.Handle(method, path, handler, true)
}

// Routes returns the routes in resolution order
func (t *Table) Routes() []Route {
	t.sort()

	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]Route, len(t.routes))
	for i, r := range t.routes {
		out[i] = *r
	}
	return out
}

func (t *Table) sort() {
	t.mu.RLock()
	sorted := t.sorted
	t.mu.RUnlock()
	if sorted {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	sort.SliceStable(t.routes, func(i, j int) bool {
		a, b := t.routes[i], t.routes[j]
		if a.pattern.moreSpecific(b.pattern) {
			return true
		}
		if b.pattern.moreSpecific(a.pattern) {
			return false
		}
		return a.order < b.order
	})
	t.sorted = true
}

// Resolve selects the single route for method and path
func (t *Table) Resolve(method, path string) Resolution {
	t.sort()

	t.mu.RLock()
	defer t.mu.RUnlock()

	if !supported(method) {
		return Resolution{Outcome: MethodNotAllowed, Allowed: append([]string(nil), SupportedMethods...)}
	}

	parts := splitPath(path)
	allowed := map[string]bool{}
	for _, r := range t.routes {
		params, ok := r.pattern.match(parts)
		if !ok {
			continue
		}
		if r.Method == method {
			return Resolution{Outcome: Matched, Route: r, Params: params}
		}
		allowed[r.Method] = true
	}

	if len(allowed) > 0 {
		return Resolution{Outcome: MethodNotAllowed, Allowed: orderMethods(allowed)}
	}
	return Resolution{Outcome: NoRoute}
}

func supported(method string) bool {
	for _, m := range SupportedMethods {
		if m == method {
			return true
		}
	}
	return false
}

func orderMethods(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for _, m := range SupportedMethods {
		if set[m] {
			out = append(out, m)
		}
	}
	return out
}
