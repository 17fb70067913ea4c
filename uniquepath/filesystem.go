package uniquepath

import (
	"io/fs"
	"os"
)

// FileSystem is an interface that abstracts the file system operations used
// by the generator. It allows for easy mocking in tests.
type FileSystem interface {
	// CreateExcl atomically creates the named file, failing with an error
	// matching fs.ErrExist if it already exists. The created file is empty
	// and closed before the call returns.
	CreateExcl(name string, perm os.FileMode) error

	// Mkdir creates the named directory, failing with an error matching
	// fs.ErrExist if it already exists.
	Mkdir(name string, perm os.FileMode) error

	// Lstat returns file information without following symlinks.
	Lstat(name string) (fs.FileInfo, error)

	// TempDir returns the default directory for temporary files.
	TempDir() string
}

// osFS implements FileSystem using the local disk
type osFS struct{}

func (osFS) CreateExcl(name string, perm os.FileMode) error {
	// #nosec G304 - the caller constructs the path from a validated directory
	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return err
	}
	return f.Close()
}

func (osFS) Mkdir(name string, perm os.FileMode) error {
	return os.Mkdir(name, perm)
}

func (osFS) Lstat(name string) (fs.FileInfo, error) {
	return os.Lstat(name)
}

func (osFS) TempDir() string {
	return os.TempDir()
}
