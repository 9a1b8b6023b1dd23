package httprouter

import "errors"

var (
	ErrMethodRequired  = errors.New("httprouter: method is required")
	ErrPathRequired    = errors.New("httprouter: path is required")
	ErrHandlerRequired = errors.New("httprouter: handler is required")
	ErrInvalidPattern  = errors.New("httprouter: invalid path pattern")
)
