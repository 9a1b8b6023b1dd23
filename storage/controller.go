package storage

import (
	"bufio"
	"bytes"
	"io"
	"path"
	"strings"

	"github.com/archbell/picoframework/httprouter"
	"github.com/archbell/picoframework/httpx"
)

// Controller exposes a storage.Interface as an upload/list/delete/format
// HTTP surface, grounded on original_source's
// examples/storage_manager/StorageController.cpp.
type Controller struct {
	backend Interface
}

// NewController wraps backend for route registration.
func NewController(backend Interface) *Controller {
	return &Controller{backend: backend}
}

// Register installs the controller's routes on router, matching the
// original's route set: GET list, POST upload, DELETE file, POST format.
func (c *Controller) Register(router *httprouter.Router) error {
	if err := router.AddRoute("GET", `^/api/v1/ls(.*)$`, c.handleList); err != nil {
		return err
	}
	if err := router.AddRoute("POST", `^/api/v1/upload$`, c.handleUpload); err != nil {
		return err
	}
	if err := router.AddRoute("DELETE", `^/api/v1/files(.*)$`, c.handleDelete); err != nil {
		return err
	}
	if err := router.AddRoute("POST", `^/api/v1/format_storage$`, c.handleFormat); err != nil {
		return err
	}
	return nil
}

func pathParam(match httprouter.RouteMatch) string {
	if len(match.Ordered) == 0 || match.Ordered[0] == "" {
		return "/"
	}
	return match.Ordered[0]
}

func (c *Controller) handleList(req *httpx.Request, res *httpx.Response, match httprouter.RouteMatch) {
	dir := pathParam(match)
	entries, err := c.backend.ListDirectory(dir)
	if err != nil {
		res.SendError(404, err.Error())
		return
	}
	res.JSON(entries)
}

func (c *Controller) handleDelete(req *httpx.Request, res *httpx.Response, match httprouter.RouteMatch) {
	p := pathParam(match)
	if err := c.backend.Remove(p); err != nil {
		res.SendError(404, "File not found")
		return
	}
	res.JSON(map[string]string{"message": "File deleted successfully"})
}

func (c *Controller) handleFormat(req *httpx.Request, res *httpx.Response, match httprouter.RouteMatch) {
	if err := c.backend.FormatStorage(); err != nil {
		res.SendError(500, "failed to format storage")
		return
	}
	res.JSON(map[string]string{"message": "storage formatted successfully"})
}

// handleUpload streams one or more multipart parts to the backend,
// sanitizing each part's filename before it becomes a storage path: "\"
// is treated as "/", only the final path element is kept, and a name that
// reduces to "", "." or ".." is replaced by "upload.bin". Parts without a
// filename are skipped. Storage paths come from untrusted wire input, so
// this is stricter than the original's minimal handling.
func (c *Controller) handleUpload(req *httpx.Request, res *httpx.Response, match httprouter.RouteMatch) {
	if !req.IsMultipart() {
		res.SendError(400, "expected multipart/form-data")
		return
	}
	boundary := req.MultipartBoundary()
	if boundary == "" {
		res.SendError(400, "missing multipart boundary")
		return
	}

	uploaded := make([]string, 0, 1)
	reader := bufio.NewReader(bytes.NewReader(req.Body))
	err := httpx.StreamMultipart(reader, boundary, func(header httpx.PartHeader, body io.Reader) error {
		if header.Filename == "" {
			return nil
		}
		name := sanitizeFilename(header.Filename)
		var buf bytes.Buffer
		if _, err := buf.ReadFrom(body); err != nil {
			return err
		}
		dest := path.Join("/uploads", name)
		if err := c.backend.WriteFile(dest, buf.Bytes()); err != nil {
			return err
		}
		uploaded = append(uploaded, dest)
		return nil
	})
	if err != nil {
		res.SendError(500, "upload failed")
		return
	}
	if len(uploaded) == 0 {
		res.SendError(400, "no file part found")
		return
	}
	res.JSON(map[string]any{"message": "file uploaded successfully", "files": uploaded})
}

func sanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = path.Base(name)
	if name == "" || name == "." || name == ".." || name == "/" {
		return "upload.bin"
	}
	return name
}
