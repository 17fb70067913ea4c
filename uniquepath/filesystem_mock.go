package uniquepath

import (
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// MockFileSystem implements FileSystem for testing. All operations are
// backed by in-memory maps and are safe for concurrent use.
type MockFileSystem struct {
	mu      sync.Mutex
	files   map[string]*mockFileInfo
	dirs    map[string]bool
	tempDir string
}

// mockFileInfo implements fs.FileInfo for testing
type mockFileInfo struct {
	name    string
	mode    os.FileMode
	modTime time.Time
	isDir   bool
}

func (m *mockFileInfo) Name() string       { return m.name }
func (m *mockFileInfo) Size() int64        { return 0 }
func (m *mockFileInfo) Mode() os.FileMode  { return m.mode }
func (m *mockFileInfo) ModTime() time.Time { return m.modTime }
func (m *mockFileInfo) IsDir() bool        { return m.isDir }
func (m *mockFileInfo) Sys() any           { return nil }

// NewMockFileSystem creates a MockFileSystem containing only the temp
// directory /tmp.
func NewMockFileSystem() *MockFileSystem {
	m := &MockFileSystem{
		files:   make(map[string]*mockFileInfo),
		dirs:    make(map[string]bool),
		tempDir: "/tmp",
	}
	m.AddDir("/")
	m.AddDir("/tmp")
	return m
}

// AddDir registers a directory in the mock filesystem.
func (m *MockFileSystem) AddDir(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	m.dirs[path] = true
	m.files[path] = &mockFileInfo{
		name:    filepath.Base(path),
		mode:    0o755 | os.ModeDir,
		modTime: time.Now(),
		isDir:   true,
	}
}

// AddFile registers a file in the mock filesystem.
func (m *MockFileSystem) AddFile(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.addFileLocked(filepath.Clean(path))
}

func (m *MockFileSystem) addFileLocked(path string) {
	m.files[path] = &mockFileInfo{
		name:    filepath.Base(path),
		mode:    0o600,
		modTime: time.Now(),
	}
}

// CreateExcl creates the named file, failing with fs.ErrExist if it already
// exists and fs.ErrNotExist if the parent directory is missing.
func (m *MockFileSystem) CreateExcl(name string, _ os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	name = filepath.Clean(name)
	if _, ok := m.files[name]; ok {
		return &fs.PathError{Op: "open", Path: name, Err: fs.ErrExist}
	}
	if !m.dirs[filepath.Dir(name)] {
		return &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	m.addFileLocked(name)
	return nil
}

// Mkdir creates the named directory, failing with fs.ErrExist if it already
// exists and fs.ErrNotExist if the parent directory is missing.
func (m *MockFileSystem) Mkdir(name string, _ os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	name = filepath.Clean(name)
	if _, ok := m.files[name]; ok {
		return &fs.PathError{Op: "mkdir", Path: name, Err: fs.ErrExist}
	}
	if !m.dirs[filepath.Dir(name)] {
		return &fs.PathError{Op: "mkdir", Path: name, Err: fs.ErrNotExist}
	}
	m.dirs[name] = true
	m.files[name] = &mockFileInfo{
		name:    filepath.Base(name),
		mode:    0o700 | os.ModeDir,
		modTime: time.Now(),
		isDir:   true,
	}
	return nil
}

// Lstat returns file information for the named path.
func (m *MockFileSystem) Lstat(name string) (fs.FileInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	info, ok := m.files[filepath.Clean(name)]
	if !ok {
		return nil, &fs.PathError{Op: "lstat", Path: name, Err: fs.ErrNotExist}
	}
	return info, nil
}

// TempDir returns the mock temporary directory.
func (m *MockFileSystem) TempDir() string {
	return m.tempDir
}

// FileCount returns the number of regular files in the mock filesystem.
func (m *MockFileSystem) FileCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, info := range m.files {
		if !info.isDir {
			count++
		}
	}
	return count
}
