package httpserver

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archbell/picoframework/httprouter"
	"github.com/archbell/picoframework/httpx"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Debug(string, ...any) {}

func startTestServer(t *testing.T, cfg Config, router *httprouter.Router) *Server {
	t.Helper()
	cfg.Host = "127.0.0.1"
	cfg.Port = 0
	srv := New(cfg, router, nopLogger{})
	require.NoError(t, srv.Start(context.Background()))
	t.Cleanup(func() { srv.Stop(context.Background()) })
	return srv
}

func doGet(t *testing.T, addr net.Addr, path string) string {
	t.Helper()
	conn, err := net.DialTimeout("tcp", addr.String(), time.Second)
	require.NoError(t, err)
	defer conn.Close()
	fmt.Fprintf(conn, "GET %s HTTP/1.1\r\nHost: test\r\n\r\n", path)
	conn.SetReadDeadline(time.Now().Add(time.Second))
	reader := bufio.NewReader(conn)
	statusLine, err := reader.ReadString('\n')
	require.NoError(t, err)
	return statusLine
}

func TestServerDispatchesMatchedRoute(t *testing.T) {
	router := httprouter.New()
	require.NoError(t, router.AddRoute("GET", "/ok", func(req *httpx.Request, res *httpx.Response, _ httprouter.RouteMatch) {
		res.Send([]byte("ok"))
	}))
	srv := startTestServer(t, Config{MaxConnections: 4}, router)

	status := doGet(t, srv.listener.Addr(), "/ok")
	assert.Contains(t, status, "200")
}

func TestServerReturns404ForUnknownRoute(t *testing.T) {
	router := httprouter.New()
	srv := startTestServer(t, Config{MaxConnections: 4}, router)

	status := doGet(t, srv.listener.Addr(), "/missing")
	assert.Contains(t, status, "404")
}

func TestServerRefusesConnectionsBeyondPoolSize(t *testing.T) {
	p := newPool(1)
	assert.True(t, p.tryAcquire())
	assert.False(t, p.tryAcquire())
	p.release()
	assert.True(t, p.tryAcquire())
}
