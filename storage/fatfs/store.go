// Package fatfs implements PicoFramework's SD/SDIO-backed storage.Interface
// as a thin adapter over an afero.Fs, the same swap affordance (real
// filesystem in production, in-memory in tests) the original's FatFs/
// host-mock split was reaching for. Grounded on original_source's
// storage/FatFsStorageManager.h.
package fatfs

import (
	"fmt"
	"io"
	"os"
	"path"
	"sort"
	"sync"

	"github.com/spf13/afero"

	"github.com/archbell/picoframework/storage"
)

const osAppendFlags = os.O_WRONLY | os.O_CREATE | os.O_APPEND

// Config configures a Store.
type Config struct {
	// MountPoint is the root directory under which every path is
	// resolved, matching the original's "sd0" mount-point convention.
	MountPoint string `default:"sd0"`
}

// Store is a storage.Interface back-end over an afero.Fs. Every
// operation takes a single coarse mutex, matching the original's one
// mutex guarding every ff_stdio call.
type Store struct {
	cfg Config
	fs  afero.Fs

	mu      sync.Mutex
	mounted bool
}

var _ storage.Interface = (*Store)(nil)

// NewStore wraps fs (afero.NewOsFs() in production, afero.NewMemMapFs()
// in tests) as a Store.
func NewStore(cfg Config, fs afero.Fs) *Store {
	return &Store{cfg: cfg, fs: fs}
}

func (s *Store) resolve(p string) string {
	return path.Join("/", s.cfg.MountPoint, path.Clean("/"+p))
}

// Mount is idempotent, and verifies the mount point by probing a known
// directory, matching the original's probeMountPoint.
func (s *Store) Mount() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mounted {
		return nil
	}
	if err := s.fs.MkdirAll(path.Join("/", s.cfg.MountPoint), 0o755); err != nil {
		return fmt.Errorf("fatfs: probe mount point: %w", err)
	}
	s.mounted = true
	return nil
}

func (s *Store) Unmount() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mounted = false
	return nil
}

func (s *Store) IsMounted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mounted
}

func (s *Store) ensureMounted() error {
	if s.IsMounted() {
		return nil
	}
	return s.Mount()
}

func (s *Store) Exists(p string) bool {
	if s.ensureMounted() != nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	ok, _ := afero.Exists(s.fs, s.resolve(p))
	return ok
}

func (s *Store) Remove(p string) error {
	if err := s.ensureMounted(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	full := s.resolve(p)
	if ok, _ := afero.Exists(s.fs, full); !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, p)
	}
	return s.fs.RemoveAll(full)
}

func (s *Store) Rename(from, to string) error {
	if err := s.ensureMounted(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fs.Rename(s.resolve(from), s.resolve(to))
}

func (s *Store) ReadFile(p string) ([]byte, error) {
	if err := s.ensureMounted(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return afero.ReadFile(s.fs, s.resolve(p))
}

func (s *Store) ReadFileString(p string, start, length int64) (string, error) {
	if err := s.ensureMounted(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	f, err := s.fs.Open(s.resolve(p))
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := f.Seek(start, io.SeekStart); err != nil {
		return "", err
	}
	buf := make([]byte, length)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", err
	}
	return string(buf[:n]), nil
}

func (s *Store) WriteFile(p string, data []byte) error {
	if err := s.ensureMounted(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	full := s.resolve(p)
	if err := s.fs.MkdirAll(path.Dir(full), 0o755); err != nil {
		return err
	}
	return afero.WriteFile(s.fs, full, data, 0o644)
}

func (s *Store) AppendToFile(p string, data []byte) error {
	if err := s.ensureMounted(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	full := s.resolve(p)
	if err := s.fs.MkdirAll(path.Dir(full), 0o755); err != nil {
		return err
	}
	f, err := s.fs.OpenFile(full, osAppendFlags, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.Write(data)
	return err
}

func (s *Store) StreamFile(p string, chunk storage.ChunkFunc) error {
	if err := s.ensureMounted(); err != nil {
		return err
	}
	s.mu.Lock()
	f, err := s.fs.Open(s.resolve(p))
	s.mu.Unlock()
	if err != nil {
		return err
	}
	defer f.Close()

	buf := make([]byte, 4096)
	for {
		n, err := f.Read(buf)
		if n > 0 {
			if cbErr := chunk(buf[:n]); cbErr != nil {
				return cbErr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (s *Store) GetFileSize(p string) (int64, error) {
	if err := s.ensureMounted(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	info, err := s.fs.Stat(s.resolve(p))
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

func (s *Store) ListDirectory(p string) ([]storage.FileInfo, error) {
	if err := s.ensureMounted(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	entries, err := afero.ReadDir(s.fs, s.resolve(p))
	if err != nil {
		return nil, err
	}
	out := make([]storage.FileInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, storage.FileInfo{
			Name:       e.Name(),
			IsDir:      e.IsDir(),
			IsReadOnly: e.Mode()&0o200 == 0,
			Size:       e.Size(),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) CreateDirectory(p string) error {
	if err := s.ensureMounted(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fs.MkdirAll(s.resolve(p), 0o755)
}

func (s *Store) RemoveDirectory(p string) error {
	if err := s.ensureMounted(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	entries, err := afero.ReadDir(s.fs, s.resolve(p))
	if err != nil {
		return err
	}
	if len(entries) > 0 {
		return fmt.Errorf("%w: %q", ErrDirNotEmpty, p)
	}
	return s.fs.Remove(s.resolve(p))
}

// FormatStorage wipes everything beneath the mount point.
func (s *Store) FormatStorage() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	root := path.Join("/", s.cfg.MountPoint)
	if err := s.fs.RemoveAll(root); err != nil {
		return err
	}
	s.mounted = false
	return s.fs.MkdirAll(root, 0o755)
}

func (s *Store) OpenReader(p string) (storage.LineReader, error) {
	if err := s.ensureMounted(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	f, err := s.fs.Open(s.resolve(p))
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return newLineReader(f), nil
}
