package storage_test

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archbell/picoframework/httprouter"
	"github.com/archbell/picoframework/httpx"
	"github.com/archbell/picoframework/storage"
	"github.com/archbell/picoframework/storage/fatfs"
)

func newController(t *testing.T) (*storage.Controller, storage.Interface, *httprouter.Router) {
	t.Helper()
	backend := fatfs.NewStore(fatfs.Config{MountPoint: "sd0"}, afero.NewMemMapFs())
	require.NoError(t, backend.Mount())
	ctl := storage.NewController(backend)
	router := httprouter.New()
	require.NoError(t, ctl.Register(router))
	return ctl, backend, router
}

func sendAndCapture(router *httprouter.Router, req *httpx.Request) *bytes.Buffer {
	var buf bytes.Buffer
	res := httpx.NewResponse(&buf)
	router.HandleRequest(req, res)
	return &buf
}

func TestListReturnsDirectoryEntries(t *testing.T) {
	_, backend, router := newController(t)
	require.NoError(t, backend.WriteFile("/a.txt", []byte("a")))

	req := httpx.NewRequest("", "GET", "/api/v1/ls/")
	buf := sendAndCapture(router, req)
	assert.Contains(t, buf.String(), "a.txt")
}

func TestDeleteRemovesFile(t *testing.T) {
	_, backend, router := newController(t)
	require.NoError(t, backend.WriteFile("/a.txt", []byte("a")))

	req := httpx.NewRequest("", "DELETE", "/api/v1/files/a.txt")
	buf := sendAndCapture(router, req)
	assert.Contains(t, buf.String(), "File deleted successfully")
	assert.False(t, backend.Exists("/a.txt"))
}

func TestDeleteUnknownFileReturns404(t *testing.T) {
	_, _, router := newController(t)

	req := httpx.NewRequest("", "DELETE", "/api/v1/files/missing.txt")
	buf := sendAndCapture(router, req)
	assert.Contains(t, buf.String(), "404")
}

func TestFormatClearsStorage(t *testing.T) {
	_, backend, router := newController(t)
	require.NoError(t, backend.WriteFile("/a.txt", []byte("a")))

	req := httpx.NewRequest("", "POST", "/api/v1/format_storage")
	buf := sendAndCapture(router, req)
	assert.Contains(t, buf.String(), "formatted successfully")
	assert.False(t, backend.Exists("/a.txt"))
}

func TestUploadWritesSanitizedFile(t *testing.T) {
	_, backend, router := newController(t)

	body := "--XYZ\r\n" +
		"Content-Disposition: form-data; name=\"file\"; filename=\"../../etc/passwd\"\r\n" +
		"Content-Type: text/plain\r\n\r\n" +
		"hello\r\n" +
		"--XYZ--\r\n"

	req := httpx.NewRequest("content-type: multipart/form-data; boundary=XYZ\r\n", "POST", "/api/v1/upload")
	req.SetBody(body)

	buf := sendAndCapture(router, req)
	assert.Contains(t, buf.String(), "uploaded successfully")
	assert.True(t, backend.Exists("/uploads/passwd"))

	data, err := backend.ReadFile("/uploads/passwd")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}
