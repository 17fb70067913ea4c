package uniquepath

import (
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// randomToken returns a 128-bit random token in lowercase hex. The token
// space is large enough that a collision with an existing file is not the
// realistic failure mode; the existence check in the caller is a safety net.
func randomToken() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}

// dirToken returns a filename-safe token for temporary directory names.
// ULIDs are used here rather than raw hex so that directories created by the
// same process sort in creation order.
func dirToken() string {
	return strings.ToLower(ulid.Make().String())
}
