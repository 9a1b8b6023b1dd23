package httpx

import "errors"

var (
	ErrPayloadTooLarge    = errors.New("httpx: payload too large")
	ErrAlreadyStarted     = errors.New("httpx: response already started")
	ErrNotStarted         = errors.New("httpx: response not started")
	ErrNotChunked         = errors.New("httpx: response is not in chunked mode")
	ErrResponseClosed     = errors.New("httpx: response already closed")
)
