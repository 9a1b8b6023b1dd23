package flashfs

import "errors"

var (
	ErrNotMounted     = errors.New("flashfs: not mounted")
	ErrAlreadyMounted = errors.New("flashfs: already mounted")
	ErrNotFound       = errors.New("flashfs: path not found")
	ErrIsADirectory   = errors.New("flashfs: is a directory")
	ErrNotADirectory  = errors.New("flashfs: not a directory")
	ErrAlreadyExists  = errors.New("flashfs: path already exists")
	ErrFlashIO        = errors.New("flashfs: flash I/O error")
	ErrRegionTooSmall = errors.New("flashfs: region size must be a positive multiple of block size")
)
