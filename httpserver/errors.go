package httpserver

import "errors"

var (
	ErrNotStarted       = errors.New("httpserver: server not started")
	ErrAlreadyStarted   = errors.New("httpserver: server already started")
	ErrNoHandler        = errors.New("httpserver: no router handler available")
	ErrPoolExhausted    = errors.New("httpserver: connection worker pool exhausted")
	ErrTLSMisconfigured = errors.New("httpserver: TLS enabled without cert/key files")
)
