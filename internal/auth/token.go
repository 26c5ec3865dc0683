package auth

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/dmitrijs2005/regvault/internal/common"
)

// SessionTokenPrefix marks every issued session token.
const SessionTokenPrefix = "session_"

// newSessionToken builds an opaque bearer token: the fixed prefix, a
// process-unique id (timestamp plus random suffix) and a second timestamp.
// Uniqueness is probabilistic; the token carries no expiry and no signature,
// session validity is presence-based only.
func newSessionToken(now time.Time) string {
	suffix := hex.EncodeToString(common.GenerateRandByteArray(6))
	return fmt.Sprintf("%s%d_%s_%d", SessionTokenPrefix, now.UnixMilli(), suffix, now.UnixMilli())
}
