package model

import "errors"

var (
	ErrMissingID     = errors.New("model: record missing id field")
	ErrAlreadyExists = errors.New("model: record already exists")
	ErrNotFound      = errors.New("model: record not found")
)
