package httpx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsesHeadersCorrectly(t *testing.T) {
	req := NewRequest("Host: localhost\r\nUser-Agent: test-agent\r\nContent-Length: 11\r\n\r\n", "POST", "/test")
	headers := req.GetHeaders()
	assert.Equal(t, "localhost", headers["host"])
	assert.Equal(t, "test-agent", headers["user-agent"])
	assert.Equal(t, "11", headers["content-length"])
}

func TestParsesQueryParams(t *testing.T) {
	req := NewRequest("\r\n", "GET", "/api?foo=bar&baz=qux")
	params := req.GetQueryParams()
	assert.Equal(t, "bar", params.Get("foo"))
	assert.Equal(t, "qux", params.Get("baz"))
}

func TestParsesCookies(t *testing.T) {
	req := NewRequest("Cookie: session=abc123; theme=dark\r\n\r\n", "GET", "/")
	cookies := req.GetCookies()
	assert.Equal(t, "abc123", cookies["session"])
	assert.Equal(t, "dark", cookies["theme"])
}

func TestHandlesMissingHeadersGracefully(t *testing.T) {
	req := NewRequest("\r\n", "GET", "/")
	assert.Empty(t, req.GetHeaders())
	assert.Equal(t, "", req.GetHeader("does-not-exist"))
}

func TestStoresMethodAndPath(t *testing.T) {
	req := NewRequest("\r\n", "PUT", "/resource?id=123")
	assert.Equal(t, "PUT", req.GetMethod())
	assert.Equal(t, "/resource", req.GetPath())
	assert.Equal(t, "123", req.GetQueryParams().Get("id"))
}

func TestParsesContentLength(t *testing.T) {
	req := NewRequest("Content-Length: 42\r\n\r\n", "GET", "/test")
	assert.EqualValues(t, 42, req.GetContentLength())
}

func TestMissingContentLengthReturnsZero(t *testing.T) {
	req := NewRequest("Host: example.com\r\n\r\n", "GET", "/test")
	assert.EqualValues(t, 0, req.GetContentLength())
}

func TestDuplicateHeadersOverwrite(t *testing.T) {
	req := NewRequest("X-Test: first\r\nX-Test: second\r\n\r\n", "GET", "/")
	assert.Equal(t, "second", req.GetHeaders()["x-test"])
}

func TestTrimsAndRemovesQuotesInHeaders(t *testing.T) {
	req := NewRequest("Content-Type: \" application/json \"\r\n\r\n", "GET", "/test")
	assert.Equal(t, "application/json", req.GetHeaders()["content-type"])
}

func TestMissingCookieReturnsEmpty(t *testing.T) {
	req := NewRequest("Cookie: a=1; b=2\r\n\r\n", "GET", "/")
	assert.Equal(t, "", req.GetCookie("nonexistent"))
}

func TestParsesEncodedQueryParams(t *testing.T) {
	req := NewRequest("\r\n", "GET", "/search?q=hello%20world&lang=en")
	params := req.GetQueryParams()
	assert.Equal(t, "hello world", params.Get("q"))
	assert.Equal(t, "en", params.Get("lang"))
}

func TestParsesFormParams(t *testing.T) {
	req := NewRequest("Content-Type: application/x-www-form-urlencoded\r\nContent-Length: 20\r\n\r\n", "POST", "/submit")
	req.SetBody("name=John+Doe&age=30")
	form := req.GetFormParams()
	assert.Equal(t, "John Doe", form.Get("name"))
	assert.Equal(t, "30", form.Get("age"))
}

func TestEmptyFormParams(t *testing.T) {
	req := NewRequest("Content-Length: 0\r\n\r\n", "POST", "/submit")
	req.SetBody("")
	assert.Empty(t, req.GetFormParams())
}

func TestDetectsMultipart(t *testing.T) {
	req := NewRequest("Content-Type: multipart/form-data; boundary=--XYZ\r\n\r\n", "POST", "/upload")
	assert.True(t, req.IsMultipart())
}

func TestNonMultipartDetection(t *testing.T) {
	req := NewRequest("Content-Type: application/x-www-form-urlencoded\r\n\r\n", "POST", "/submit")
	assert.False(t, req.IsMultipart())
}
