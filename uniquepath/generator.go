package uniquepath

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"
)

const (
	// maxAttempts bounds every retry loop. The candidate space is unbounded,
	// so hitting this limit indicates pathological contention rather than a
	// full namespace; the loop reports ErrRetriesExhausted instead of
	// spinning forever.
	maxAttempts = 10000

	// reservedFilePerm is the mode for files created as name reservations.
	reservedFilePerm = 0o600

	// tempDirPerm is the mode for temporary directories created by TempDir.
	tempDirPerm = 0o700

	// defaultTempDirPrefix is used when TempDir is called without a prefix.
	defaultTempDirPrefix = "temp"
)

// Generator produces unique, collision-free paths in target directories.
// All methods are safe for concurrent use. The zero value is not usable;
// construct with New or NewWithFS.
type Generator struct {
	fs FileSystem

	// mu serializes the check-then-decide critical sections of the advisory
	// operations. It gives intra-process exclusivity only; the reservation
	// operations do not need it because the filesystem's exclusive-create
	// semantics serialize competing callers.
	mu sync.Mutex

	// tempDir resolves the system temporary directory once and caches it for
	// the generator's lifetime.
	tempDir func() string
}

// New creates a generator backed by the local disk.
func New() *Generator {
	return NewWithFS(osFS{})
}

// NewWithFS creates a generator backed by a custom FileSystem.
func NewWithFS(fsys FileSystem) *Generator {
	return &Generator{
		fs:      fsys,
		tempDir: sync.OnceValue(fsys.TempDir),
	}
}

// FromIdentifier reserves a unique path in dir for a file named after
// identifier, which may be a URI or a bare filename. The returned path
// refers to a newly created empty file owned by the caller; the reservation
// is atomic, so concurrent callers in any process never receive the same
// path. Name collisions are resolved with a numeric suffix inserted before
// the extension: photo.jpg, photo(1).jpg, photo(2).jpg and so on.
//
// The reserved file is not removed if the caller later abandons it; cleanup
// is the caller's responsibility.
func (g *Generator) FromIdentifier(ctx context.Context, dir, identifier string) (string, error) {
	if dir == "" {
		return "", ErrEmptyDirectory
	}
	base, ext := splitIdentifier(identifier)

	for n := 0; n < maxAttempts; n++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		candidate := filepath.Join(dir, suffixedName(base, ext, n))
		err := g.fs.CreateExcl(candidate, reservedFilePerm)
		switch {
		case err == nil:
			return candidate, nil
		case errors.Is(err, fs.ErrExist):
			// Collision; advance to the next suffix.
		case errors.Is(err, fs.ErrNotExist):
			return "", fmt.Errorf("%w: %s", ErrDirNotFound, dir)
		default:
			// Transient contention (e.g. a sharing violation during a
			// concurrent reservation) is handled like a collision.
		}
	}
	return "", fmt.Errorf("%w: %s in %s", ErrRetriesExhausted, base+ext, dir)
}

// FromIdentifierAdvisory is the historical weaker variant of FromIdentifier.
// It serializes the check under a per-generator lock and returns a path
// verified non-existent at check time without creating anything. The
// guarantee holds only against other callers of the same generator; a
// different process, or any writer bypassing the lock, can still take the
// name before the caller uses it. Prefer FromIdentifier.
func (g *Generator) FromIdentifierAdvisory(ctx context.Context, dir, identifier string) (string, error) {
	if dir == "" {
		return "", ErrEmptyDirectory
	}
	if err := g.checkDir(dir); err != nil {
		return "", err
	}
	base, ext := splitIdentifier(identifier)

	g.mu.Lock()
	defer g.mu.Unlock()

	for n := 0; n < maxAttempts; n++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		candidate := filepath.Join(dir, suffixedName(base, ext, n))
		if _, err := g.fs.Lstat(candidate); errors.Is(err, fs.ErrNotExist) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: %s in %s", ErrRetriesExhausted, base+ext, dir)
}

// Random returns a path in dir built from a 128-bit random token and the
// given extension. The extension defaults to .tmp and a missing leading dot
// is inserted. The path is verified non-existent at check time but is NOT
// created; callers that need the create-check race closed should create the
// file themselves with an exclusive create, or use FromIdentifier.
func (g *Generator) Random(ctx context.Context, dir, ext string) (string, error) {
	if dir == "" {
		return "", ErrEmptyDirectory
	}
	ext = normalizeExtension(ext)

	for n := 0; n < maxAttempts; n++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		candidate := filepath.Join(dir, randomToken()+ext)
		if _, err := g.fs.Lstat(candidate); errors.Is(err, fs.ErrNotExist) {
			return candidate, nil
		}
		// Occupied or transiently unreadable; a fresh token costs nothing.
	}
	return "", fmt.Errorf("%w: in %s", ErrRetriesExhausted, dir)
}

// RandomTemp is Random with the directory fixed to the system temporary
// location, resolved once per generator and stable for its lifetime.
func (g *Generator) RandomTemp(ctx context.Context, ext string) (string, error) {
	return g.Random(ctx, g.tempDir(), ext)
}

// TempDir returns a unique directory path under the system temporary
// location, named prefix + "_" + token. An empty prefix defaults to "temp".
//
// With create enabled the directory is created as the reservation, so the
// returned path is exclusively owned by the caller. With create disabled the
// path is only verified non-existent at check time and another actor may
// take it afterward.
func (g *Generator) TempDir(ctx context.Context, prefix string, create bool) (string, error) {
	if prefix == "" {
		prefix = defaultTempDirPrefix
	}
	base := g.tempDir()

	for n := 0; n < maxAttempts; n++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		candidate := filepath.Join(base, prefix+"_"+dirToken())

		if !create {
			if _, err := g.fs.Lstat(candidate); errors.Is(err, fs.ErrNotExist) {
				return candidate, nil
			}
			continue
		}

		err := g.fs.Mkdir(candidate, tempDirPerm)
		switch {
		case err == nil:
			if err := g.verifyCreatedDir(candidate); err != nil {
				return "", err
			}
			return candidate, nil
		case errors.Is(err, fs.ErrExist):
			// Collision; a fresh token resolves it.
		case errors.Is(err, fs.ErrNotExist):
			return "", fmt.Errorf("%w: %s", ErrDirNotFound, base)
		default:
			// Transient failure; retried like a collision.
		}
	}
	return "", fmt.Errorf("%w: prefix %s in %s", ErrRetriesExhausted, prefix, base)
}

// verifyCreatedDir confirms that the directory just created by TempDir is
// present under the intended name. The name comparison is case-insensitive
// to guard against platform path normalization handing back a differently
// cased entry than the one requested.
func (g *Generator) verifyCreatedDir(candidate string) error {
	info, err := g.fs.Lstat(candidate)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUnexpectedDirState, candidate, err)
	}
	if !info.IsDir() || !strings.EqualFold(info.Name(), filepath.Base(candidate)) {
		return fmt.Errorf("%w: %s", ErrUnexpectedDirState, candidate)
	}
	return nil
}

// checkDir verifies that dir exists and is a directory. Used by the advisory
// operations, which have no create call to surface a missing directory.
func (g *Generator) checkDir(dir string) error {
	info, err := g.fs.Lstat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrDirNotFound, dir)
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrDirNotFound, dir)
	}
	return nil
}

// suffixedName builds the nth candidate name for a base and extension. The
// first attempt uses the name unchanged; later attempts insert "(n)" before
// the extension.
func suffixedName(base, ext string, n int) string {
	if n == 0 {
		return base + ext
	}
	return fmt.Sprintf("%s(%d)%s", base, n, ext)
}

// defaultGenerator backs the package-level convenience functions.
var defaultGenerator = New()

// FromIdentifier reserves a unique path using the default generator.
func FromIdentifier(ctx context.Context, dir, identifier string) (string, error) {
	return defaultGenerator.FromIdentifier(ctx, dir, identifier)
}

// Random returns a unique random path using the default generator.
func Random(ctx context.Context, dir, ext string) (string, error) {
	return defaultGenerator.Random(ctx, dir, ext)
}

// RandomTemp returns a unique random path under the system temporary
// location using the default generator.
func RandomTemp(ctx context.Context, ext string) (string, error) {
	return defaultGenerator.RandomTemp(ctx, ext)
}

// TempDir returns a unique temporary directory path using the default
// generator.
func TempDir(ctx context.Context, prefix string, create bool) (string, error) {
	return defaultGenerator.TempDir(ctx, prefix, create)
}
