package httpx

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// BoundaryMaxLen bounds a multipart boundary's length (original_source's
// HttpServer::BOUNDARY_MAX_LEN).
const BoundaryMaxLen = 128

// PartHeader carries one multipart part's Content-Disposition fields.
type PartHeader struct {
	Name     string
	Filename string
	Headers  map[string]string
}

// PartHandler receives one part's header plus a reader streaming its
// body; it must consume body to completion before returning.
type PartHandler func(header PartHeader, body io.Reader) error

// StreamMultipart reads successive multipart/form-data parts from r,
// invoking handle for each one. boundary is taken from the request's
// Content-Type, without the leading "--".
func StreamMultipart(r *bufio.Reader, boundary string, handle PartHandler) error {
	if len(boundary) > BoundaryMaxLen {
		return fmt.Errorf("httpx: multipart boundary exceeds %d bytes", BoundaryMaxLen)
	}
	delim := "--" + boundary

	final, err := seekBoundary(r, delim)
	if err != nil {
		return err
	}
	for !final {
		header, err := readPartHeaders(r)
		if err != nil {
			return err
		}
		pr, pw := io.Pipe()
		errCh := make(chan error, 1)
		go func() {
			errCh <- handle(header, pr)
			pr.Close()
		}()
		boundaryFinal, err := copyPartBody(r, pw, delim)
		if err != nil {
			pw.CloseWithError(err)
			<-errCh
			return err
		}
		pw.Close()
		if err := <-errCh; err != nil {
			return err
		}
		final = boundaryFinal
	}
	return nil
}

// seekBoundary skips any preamble and reads up to and including the next
// boundary line, reporting whether it was the terminating "--delim--"
// form.
func seekBoundary(r *bufio.Reader, delim string) (final bool, err error) {
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			return false, err
		}
		trimmed := strings.TrimRight(line, "\r\n")
		if trimmed == delim {
			return false, nil
		}
		if trimmed == delim+"--" {
			return true, nil
		}
	}
}

func readPartHeaders(r *bufio.Reader) (PartHeader, error) {
	headers := make(map[string]string)
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			return PartHeader{}, err
		}
		trimmed := strings.TrimRight(line, "\r\n")
		if trimmed == "" {
			break
		}
		key, value, ok := strings.Cut(trimmed, ":")
		if !ok {
			continue
		}
		headers[strings.ToLower(strings.TrimSpace(key))] = strings.TrimSpace(value)
	}
	name, filename := parseContentDisposition(headers["content-disposition"])
	return PartHeader{Name: name, Filename: filename, Headers: headers}, nil
}

func parseContentDisposition(value string) (name, filename string) {
	for _, field := range strings.Split(value, ";") {
		field = strings.TrimSpace(field)
		k, v, ok := strings.Cut(field, "=")
		if !ok {
			continue
		}
		v = strings.Trim(v, `"`)
		switch strings.ToLower(strings.TrimSpace(k)) {
		case "name":
			name = v
		case "filename":
			filename = v
		}
	}
	return name, filename
}

// copyPartBody streams bytes from r into dst until it reaches the next
// boundary line, trimming the trailing CRLF that precedes it (that CRLF
// is framing, not content). Reports whether the boundary reached was the
// terminating "--delim--" form.
func copyPartBody(r *bufio.Reader, dst io.Writer, delim string) (final bool, err error) {
	var pending []byte
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			return false, err
		}
		trimmed := strings.TrimRight(line, "\r\n")
		if trimmed == delim || trimmed == delim+"--" {
			if len(pending) > 0 {
				if _, err := dst.Write(trimCRLF(pending)); err != nil {
					return false, err
				}
			}
			return trimmed == delim+"--", nil
		}
		if pending != nil {
			if _, err := dst.Write(pending); err != nil {
				return false, err
			}
		}
		pending = []byte(line)
	}
}

// trimCRLF strips one trailing "\r\n" or "\n", the line terminator that
// precedes a boundary and is not part of the part's content.
func trimCRLF(b []byte) []byte {
	if n := len(b); n >= 2 && b[n-2] == '\r' && b[n-1] == '\n' {
		return b[:n-2]
	}
	if n := len(b); n >= 1 && b[n-1] == '\n' {
		return b[:n-1]
	}
	return b
}
