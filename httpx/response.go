package httpx

import (
	"fmt"
	"io"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// State tracks a Response's position in its lifecycle:
// Open -> Started -> Finishing -> Closed.
type State int

const (
	StateOpen State = iota
	StateStarted
	StateFinishing
	StateClosed
)

// View renders a payload to bytes plus a content type, the seam used by
// Response.Send for anything beyond a raw byte body (placeholder
// template views, JSON documents, etc).
type View interface {
	Render() ([]byte, string, error)
}

// Response is the wire-level HTTP response writer: a small state machine
// over an underlying connection, supporting both a fixed Content-Length
// body and chunked transfer encoding.
type Response struct {
	w           io.Writer
	state       State
	statusCode  int
	headers     map[string]string
	chunked     bool
	headersSent bool
}

// NewResponse wraps w (typically a net.Conn) for writing one response.
func NewResponse(w io.Writer) *Response {
	return &Response{w: w, statusCode: 200, headers: make(map[string]string), state: StateOpen}
}

// Status sets the status code to be written when the response starts.
func (r *Response) Status(code int) *Response {
	r.statusCode = code
	return r
}

// Set sets a response header. Must be called before Send/Start.
func (r *Response) Set(header, value string) *Response {
	r.headers[header] = value
	return r
}

func (r *Response) writeStatusAndHeaders(contentLength int, chunked bool) error {
	if r.headersSent {
		return ErrAlreadyStarted
	}
	if _, err := fmt.Fprintf(r.w, "HTTP/1.1 %d %s\r\n", r.statusCode, statusText(r.statusCode)); err != nil {
		return err
	}
	if chunked {
		r.headers["Transfer-Encoding"] = "chunked"
	} else {
		r.headers["Content-Length"] = fmt.Sprintf("%d", contentLength)
	}
	r.headers["Connection"] = "close"
	for k, v := range r.headers {
		if _, err := fmt.Fprintf(r.w, "%s: %s\r\n", k, v); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprint(r.w, "\r\n"); err != nil {
		return err
	}
	r.headersSent = true
	r.chunked = chunked
	r.state = StateStarted
	return nil
}

// Send writes status line, headers, Content-Length and body, then moves
// to Closed. A full, non-streaming response in one call.
func (r *Response) Send(body []byte) error {
	if err := r.writeStatusAndHeaders(len(body), false); err != nil {
		return err
	}
	if _, err := r.w.Write(body); err != nil {
		return err
	}
	r.state = StateClosed
	return nil
}

// JSON marshals value and sends it with a JSON content type.
func (r *Response) JSON(value any) error {
	body, err := json.Marshal(value)
	if err != nil {
		return err
	}
	r.Set("Content-Type", "application/json")
	return r.Send(body)
}

// SendView renders v and sends the result with v's declared content type.
func (r *Response) SendView(v View) error {
	body, contentType, err := v.Render()
	if err != nil {
		return err
	}
	r.Set("Content-Type", contentType)
	return r.Send(body)
}

// Start writes only the status line and headers. If length is non-nil a
// Content-Length header is written; otherwise the response switches to
// chunked transfer encoding.
func (r *Response) Start(status int, length *int, contentType string) error {
	r.statusCode = status
	if contentType != "" {
		r.headers["Content-Type"] = contentType
	}
	if length != nil {
		return r.writeStatusAndHeaders(*length, false)
	}
	return r.writeStatusAndHeaders(0, true)
}

// WriteChunk writes buf as one chunk. In chunked mode this is
// "HEXLEN\r\nBUF\r\n"; in fixed-length mode it is the raw bytes. A small
// pacing delay follows, yielding to the network stack.
func (r *Response) WriteChunk(buf []byte) error {
	if r.state != StateStarted {
		return ErrNotStarted
	}
	if r.chunked {
		if _, err := fmt.Fprintf(r.w, "%x\r\n", len(buf)); err != nil {
			return err
		}
		if _, err := r.w.Write(buf); err != nil {
			return err
		}
		if _, err := fmt.Fprint(r.w, "\r\n"); err != nil {
			return err
		}
	} else if _, err := r.w.Write(buf); err != nil {
		return err
	}
	time.Sleep(StreamSendDelay)
	return nil
}

// Finish ends the response. In chunked mode it emits the terminating
// "0\r\n\r\n" chunk; in fixed-length mode it just closes the state.
func (r *Response) Finish() error {
	if r.state == StateClosed {
		return ErrResponseClosed
	}
	if r.chunked {
		if _, err := fmt.Fprint(r.w, "0\r\n\r\n"); err != nil {
			return err
		}
	}
	r.state = StateClosed
	return nil
}

// SendError is a convenience wrapper sending {"error": msg} with status.
func (r *Response) SendError(status int, msg string) error {
	r.statusCode = status
	return r.JSON(map[string]string{"error": msg})
}

func statusText(code int) string {
	switch code {
	case 200:
		return "OK"
	case 201:
		return "Created"
	case 204:
		return "No Content"
	case 301:
		return "Moved Permanently"
	case 302:
		return "Found"
	case 400:
		return "Bad Request"
	case 401:
		return "Unauthorized"
	case 403:
		return "Forbidden"
	case 404:
		return "Not Found"
	case 413:
		return "Payload Too Large"
	case 500:
		return "Internal Server Error"
	default:
		return "Unknown"
	}
}
