// Package flashfs implements PicoFramework's log-structured flash
// back-end: a storage.Interface over a contiguous on-disk region standing
// in for the original's raw flash device, preserving its block geometry
// and flash-safe-execute programming discipline. Grounded on
// original_source's storage/LittleFsStorageManager.h/.cpp.
package flashfs

import "time"

// Flash geometry constants, ported verbatim from
// LittleFsStorageManager.h's lfs_config (original_source).
const (
	ReadSize      = 256
	ProgSize      = 256
	BlockSize     = 4096
	CacheSize     = 256
	LookaheadSize = 256
	BlockCycles   = 500

	DefaultFlashSize = 128 * 1024
)

// Config configures a Store.
type Config struct {
	// Path is the backing file standing in for the raw flash region.
	Path string `default:"flash.img"`
	// SizeBytes is the total region size; must be a multiple of
	// BlockSize. Defaults to the original's 128 KB flash region.
	SizeBytes int64 `default:"131072"`
	// ProgramTimeout bounds a single flash-safe-execute program or erase
	// call (original_source uses 1000ms for program/erase, 5000ms for
	// format).
	ProgramTimeout time.Duration `default:"1s"`
	FormatTimeout  time.Duration `default:"5s"`
}
