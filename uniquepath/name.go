package uniquepath

import (
	"net/url"
	"path"
	"path/filepath"
	"strings"
)

// defaultBaseName is used when no usable name can be extracted from an
// identifier.
const defaultBaseName = "file"

// defaultExtension is used when no extension is supplied to the random path
// operations.
const defaultExtension = ".tmp"

// splitIdentifier derives a base name and extension from an identifier, which
// may be a fully qualified URI or a bare filename. An identifier that yields
// no usable name falls back to defaultBaseName.
func splitIdentifier(identifier string) (base, ext string) {
	name := extractName(identifier)
	if name == "" {
		name = defaultBaseName
	}
	ext = filepath.Ext(name)
	return name[:len(name)-len(ext)], ext
}

// extractName returns the terminal name component of the identifier. The
// identifier is interpreted as a URI first; only when it does not carry a
// scheme is it treated as a literal filename. This order matters: a bare
// filename can be syntactically ambiguous with a malformed locator, and the
// URI interpretation must win whenever a scheme is present.
func extractName(identifier string) string {
	if identifier == "" {
		return ""
	}
	if u, err := url.Parse(identifier); err == nil && u.Scheme != "" {
		return cleanName(path.Base(u.Path))
	}
	return cleanName(filepath.Base(identifier))
}

// cleanName rejects the degenerate results that path.Base and filepath.Base
// produce for empty or separator-only inputs.
func cleanName(name string) string {
	switch name {
	case "", ".", "..", "/", `\`:
		return ""
	}
	return name
}

// normalizeExtension guarantees a leading separator character and substitutes
// the default extension for an empty one.
func normalizeExtension(ext string) string {
	if ext == "" {
		return defaultExtension
	}
	if !strings.HasPrefix(ext, ".") {
		return "." + ext
	}
	return ext
}
