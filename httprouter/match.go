// Package httprouter implements PicoFramework's HTTP router: a
// method-keyed table of regex-compiled routes with ordered and named
// capture extraction, global and per-route middleware, and an auth gate
// evaluated before middleware. Grounded on original_source's
// http/Router.h and http/RouteTypes.h.
package httprouter

// RouteMatch holds the captures extracted from a matched route: Ordered
// mirrors every capture group in left-to-right order (matching the
// original's std::regex-positional paramNames contract), Named holds the
// subset of groups given a name (via Go's (?P<name>...) syntax, produced
// automatically for `{name}` path templates).
type RouteMatch struct {
	Ordered []string
	Named   map[string]string
}

// Param returns the named capture, and whether it was present.
func (m RouteMatch) Param(name string) (string, bool) {
	v, ok := m.Named[name]
	return v, ok
}
