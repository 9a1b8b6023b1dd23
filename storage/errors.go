package storage

import "errors"

var (
	ErrNotMounted    = errors.New("storage: not mounted")
	ErrNotFound      = errors.New("storage: path not found")
	ErrAlreadyExists = errors.New("storage: path already exists")
	ErrNotADirectory = errors.New("storage: not a directory")
	ErrIsADirectory  = errors.New("storage: is a directory")
)
