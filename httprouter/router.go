package httprouter

import (
	"sync"

	"github.com/archbell/picoframework/httpx"
)

// Handler dispatches a matched request.
type Handler func(req *httpx.Request, res *httpx.Response, match RouteMatch)

// Middleware runs before a route's Handler. Returning false short-
// circuits the chain; the middleware is responsible for writing a
// response in that case.
type Middleware func(req *httpx.Request, res *httpx.Response, match RouteMatch) bool

// AuthGate decides whether req may proceed to a route flagged
// RequiresAuth.
type AuthGate func(req *httpx.Request) bool

// Router is a method-keyed route table. The original guards this table
// with a recursive mutex so a handler may register or inspect routes
// from within request handling; Go's sync.Mutex is not reentrant, so
// Router instead takes a consistent snapshot of the matching method's
// routes under lock and releases it before running any handler or
// middleware, letting those safely call Use/AddRoute themselves.
type Router struct {
	mu               sync.Mutex
	routes           map[string][]*Route
	globalMiddleware []Middleware
	authGate         AuthGate
}

// New creates an empty Router.
func New() *Router {
	return &Router{routes: make(map[string][]*Route)}
}

// Use appends mw to the global middleware list, run for every route
// ahead of any route-specific middleware.
func (r *Router) Use(mw Middleware) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.globalMiddleware = append(r.globalMiddleware, mw)
}

// SetAuthGate installs the callback consulted for routes registered with
// RequiresAuth true. A nil gate (the default) allows every request.
func (r *Router) SetAuthGate(gate AuthGate) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.authGate = gate
}

// AddRoute compiles pattern and registers handler for method. pattern
// may use "{name}" placeholders (named captures, the common case) or be
// a raw anchored regex with positional captures.
func (r *Router) AddRoute(method, pattern string, handler Handler, middleware ...Middleware) error {
	return r.addRoute(method, pattern, handler, false, middleware)
}

// AddProtectedRoute is AddRoute with RequiresAuth set, so HandleRequest
// consults the auth gate before running any middleware.
func (r *Router) AddProtectedRoute(method, pattern string, handler Handler, middleware ...Middleware) error {
	return r.addRoute(method, pattern, handler, true, middleware)
}

func (r *Router) addRoute(method, pattern string, handler Handler, requiresAuth bool, middleware []Middleware) error {
	if method == "" {
		return ErrMethodRequired
	}
	if pattern == "" {
		return ErrPathRequired
	}
	if handler == nil {
		return ErrHandlerRequired
	}
	regex, names, dynamic, err := compilePattern(pattern)
	if err != nil {
		return err
	}
	route := &Route{
		Method:       method,
		Pattern:      pattern,
		regex:        regex,
		paramNames:   names,
		Handler:      handler,
		Middleware:   middleware,
		RequiresAuth: requiresAuth,
		Dynamic:      dynamic,
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes[method] = append(r.routes[method], route)
	return nil
}

// HandleRequest finds the first route matching req's method and path,
// runs the auth gate, global middleware, and route middleware in order,
// and invokes the handler. Returns false if no route matched, so the
// caller (httpserver) can write a 404.
func (r *Router) HandleRequest(req *httpx.Request, res *httpx.Response) bool {
	r.mu.Lock()
	candidates := append([]*Route(nil), r.routes[req.Method]...)
	global := append([]Middleware(nil), r.globalMiddleware...)
	gate := r.authGate
	r.mu.Unlock()

	for _, route := range candidates {
		groups := route.regex.FindStringSubmatch(req.Path)
		if groups == nil {
			continue
		}
		match := route.matchFrom(groups)

		if route.RequiresAuth && gate != nil && !gate(req) {
			res.SendError(401, "unauthorized")
			return true
		}

		if !runChain(global, req, res, match) {
			return true
		}
		if !runChain(route.Middleware, req, res, match) {
			return true
		}

		route.Handler(req, res, match)
		return true
	}
	return false
}

func runChain(chain []Middleware, req *httpx.Request, res *httpx.Response, match RouteMatch) bool {
	for _, mw := range chain {
		if !mw(req, res, match) {
			return false
		}
	}
	return true
}
