package flashfs

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const defaultTestTimeout = time.Second

func newTestStore(t *testing.T) *Store {
	t.Helper()
	cfg := Config{
		Path:           filepath.Join(t.TempDir(), "flash.img"),
		SizeBytes:      DefaultFlashSize,
		ProgramTimeout: defaultTestTimeout,
		FormatTimeout:  defaultTestTimeout,
	}
	s, err := NewStore(cfg)
	require.NoError(t, err)
	require.NoError(t, s.Mount())
	t.Cleanup(func() { s.Unmount() })
	return s
}

func TestWriteThenReadRoundTrips(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.WriteFile("/notes.txt", []byte("hello flash")))

	data, err := s.ReadFile("/notes.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello flash", string(data))
}

func TestAppendToFileConcatenates(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.WriteFile("/log.txt", []byte("a")))
	require.NoError(t, s.AppendToFile("/log.txt", []byte("b")))

	data, err := s.ReadFile("/log.txt")
	require.NoError(t, err)
	assert.Equal(t, "ab", string(data))
}

func TestRemoveDeletesEntry(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.WriteFile("/tmp.txt", []byte("x")))
	require.NoError(t, s.Remove("/tmp.txt"))
	assert.False(t, s.Exists("/tmp.txt"))
}

func TestListDirectoryReturnsChildren(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.WriteFile("/dir/a.txt", []byte("a")))
	require.NoError(t, s.WriteFile("/dir/b.txt", []byte("b")))

	entries, err := s.ListDirectory("/dir")
	require.NoError(t, err)
	names := []string{entries[0].Name, entries[1].Name}
	assert.ElementsMatch(t, []string{"a.txt", "b.txt"}, names)
}

func TestDirectoryIndexSurvivesRemount(t *testing.T) {
	cfg := Config{
		Path:           filepath.Join(t.TempDir(), "flash.img"),
		SizeBytes:      DefaultFlashSize,
		ProgramTimeout: defaultTestTimeout,
		FormatTimeout:  defaultTestTimeout,
	}
	s1, err := NewStore(cfg)
	require.NoError(t, err)
	require.NoError(t, s1.Mount())
	require.NoError(t, s1.WriteFile("/persisted.txt", []byte("still here")))
	require.NoError(t, s1.Unmount())

	s2, err := NewStore(cfg)
	require.NoError(t, err)
	require.NoError(t, s2.Mount())
	data, err := s2.ReadFile("/persisted.txt")
	require.NoError(t, err)
	assert.Equal(t, "still here", string(data))
}

func TestOpenReaderReadsLines(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.WriteFile("/lines.txt", []byte("one\ntwo\r\nthree")))

	r, err := s.OpenReader("/lines.txt")
	require.NoError(t, err)
	defer r.Close()

	var lines []string
	for {
		line, ok := r.ReadLine()
		if !ok {
			break
		}
		lines = append(lines, line)
	}
	assert.Equal(t, []string{"one", "two", "three"}, lines)
}

func TestFormatStorageClearsIndex(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.WriteFile("/a.txt", []byte("a")))
	require.NoError(t, s.FormatStorage())
	assert.False(t, s.Exists("/a.txt"))
}
