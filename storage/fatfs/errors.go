package fatfs

import "errors"

var (
	ErrNotMounted  = errors.New("fatfs: not mounted")
	ErrNotFound    = errors.New("fatfs: not found")
	ErrDirNotEmpty = errors.New("fatfs: directory not empty")
	ErrAlreadyOpen = errors.New("fatfs: already mounted")
)
