package uniquepath

import "errors"

var (
	// ErrDirNotFound indicates that the target directory does not exist.
	// This is a configuration error and is never retried.
	ErrDirNotFound = errors.New("target directory not found")

	// ErrEmptyDirectory indicates that an empty target directory was supplied.
	ErrEmptyDirectory = errors.New("target directory cannot be empty")

	// ErrRetriesExhausted indicates that no unique candidate was found within
	// the attempt limit. With an unbounded suffix space this only happens
	// under pathological contention.
	ErrRetriesExhausted = errors.New("exhausted attempts to find a unique path")

	// ErrUnexpectedDirState indicates that a directory created by this package
	// did not match the intended path when re-examined after creation.
	ErrUnexpectedDirState = errors.New("created directory does not match intended path")
)
