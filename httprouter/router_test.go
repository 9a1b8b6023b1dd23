package httprouter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archbell/picoframework/httpx"
)

func newTestRequest(method, path string) *httpx.Request {
	return httpx.NewRequest("\r\n", method, path)
}

func TestAddRouteExtractsNamedParams(t *testing.T) {
	r := New()
	var got RouteMatch
	err := r.AddRoute("GET", "/device/{id}/reading/{kind}", func(req *httpx.Request, res *httpx.Response, m RouteMatch) {
		got = m
	})
	require.NoError(t, err)

	matched := r.HandleRequest(newTestRequest("GET", "/device/42/reading/temp"), nil)
	assert.True(t, matched)
	v, ok := got.Param("id")
	assert.True(t, ok)
	assert.Equal(t, "42", v)
	v, ok = got.Param("kind")
	assert.True(t, ok)
	assert.Equal(t, "temp", v)
	assert.Equal(t, []string{"42", "temp"}, got.Ordered)
}

func TestHandleRequestReturnsFalseWhenNoRouteMatches(t *testing.T) {
	r := New()
	require.NoError(t, r.AddRoute("GET", "/known", func(*httpx.Request, *httpx.Response, RouteMatch) {}))

	assert.False(t, r.HandleRequest(newTestRequest("GET", "/unknown"), nil))
}

func TestGlobalMiddlewareRunsBeforeRouteMiddleware(t *testing.T) {
	r := New()
	var order []string
	r.Use(func(*httpx.Request, *httpx.Response, RouteMatch) bool {
		order = append(order, "global")
		return true
	})
	err := r.AddRoute("GET", "/x", func(*httpx.Request, *httpx.Response, RouteMatch) {
		order = append(order, "handler")
	}, func(*httpx.Request, *httpx.Response, RouteMatch) bool {
		order = append(order, "route")
		return true
	})
	require.NoError(t, err)

	r.HandleRequest(newTestRequest("GET", "/x"), nil)
	assert.Equal(t, []string{"global", "route", "handler"}, order)
}

func TestMiddlewareShortCircuitsOnFalse(t *testing.T) {
	r := New()
	handlerRan := false
	err := r.AddRoute("GET", "/x", func(*httpx.Request, *httpx.Response, RouteMatch) {
		handlerRan = true
	}, func(*httpx.Request, *httpx.Response, RouteMatch) bool {
		return false
	})
	require.NoError(t, err)

	matched := r.HandleRequest(newTestRequest("GET", "/x"), nil)
	assert.True(t, matched)
	assert.False(t, handlerRan)
}

func TestProtectedRouteDeniesWithoutGatePassing(t *testing.T) {
	r := New()
	r.SetAuthGate(func(*httpx.Request) bool { return false })
	handlerRan := false
	err := r.AddProtectedRoute("GET", "/secret", func(*httpx.Request, *httpx.Response, RouteMatch) {
		handlerRan = true
	})
	require.NoError(t, err)

	r.HandleRequest(newTestRequest("GET", "/secret"), httpx.NewResponse(discard{}))
	assert.False(t, handlerRan)
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
