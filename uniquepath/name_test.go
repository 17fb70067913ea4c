package uniquepath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitIdentifier(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		wantBase   string
		wantExt    string
	}{
		{
			name:       "plain URL",
			identifier: "https://example.com/pics/photo.jpg",
			wantBase:   "photo",
			wantExt:    ".jpg",
		},
		{
			name:       "URL with query string",
			identifier: "https://example.com/pics/photo.jpg?size=large",
			wantBase:   "photo",
			wantExt:    ".jpg",
		},
		{
			name:       "URL with percent-encoded name",
			identifier: "https://example.com/my%20file.pdf",
			wantBase:   "my file",
			wantExt:    ".pdf",
		},
		{
			name:       "URL with no path",
			identifier: "https://example.com",
			wantBase:   "file",
			wantExt:    "",
		},
		{
			name:       "URL with trailing slash",
			identifier: "https://example.com/downloads/",
			wantBase:   "downloads",
			wantExt:    "",
		},
		{
			name:       "bare filename",
			identifier: "report.tar.gz",
			wantBase:   "report.tar",
			wantExt:    ".gz",
		},
		{
			name:       "filename without extension",
			identifier: "README",
			wantBase:   "README",
			wantExt:    "",
		},
		{
			name:       "relative path",
			identifier: "downloads/archive.zip",
			wantBase:   "archive",
			wantExt:    ".zip",
		},
		{
			name:       "empty identifier",
			identifier: "",
			wantBase:   "file",
			wantExt:    "",
		},
		{
			name:       "dot only",
			identifier: ".",
			wantBase:   "file",
			wantExt:    "",
		},
		{
			name:       "root slash only",
			identifier: "/",
			wantBase:   "file",
			wantExt:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, ext := splitIdentifier(tt.identifier)
			assert.Equal(t, tt.wantBase, base, "base mismatch for %q", tt.identifier)
			assert.Equal(t, tt.wantExt, ext, "extension mismatch for %q", tt.identifier)
		})
	}
}

func TestExtractName_URIInterpretationWins(t *testing.T) {
	// A scheme-carrying identifier must be interpreted as a URI even when it
	// would also be a valid literal filename.
	name := extractName("file:///var/data/backup.db")
	assert.Equal(t, "backup.db", name)
}

func TestNormalizeExtension(t *testing.T) {
	tests := []struct {
		ext  string
		want string
	}{
		{"", ".tmp"},
		{"png", ".png"},
		{".png", ".png"},
		{".tar.gz", ".tar.gz"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeExtension(tt.ext), "normalizeExtension(%q)", tt.ext)
	}
}

func TestSuffixedName(t *testing.T) {
	assert.Equal(t, "photo.jpg", suffixedName("photo", ".jpg", 0))
	assert.Equal(t, "photo(1).jpg", suffixedName("photo", ".jpg", 1))
	assert.Equal(t, "photo(12).jpg", suffixedName("photo", ".jpg", 12))
	assert.Equal(t, "README(1)", suffixedName("README", "", 1))
}
