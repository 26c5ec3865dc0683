package auth

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewSessionToken_Format(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	token := newSessionToken(now)

	require.Regexp(t, regexp.MustCompile(`^session_1700000000000_[0-9a-f]{12}_1700000000000$`), token)
}

func TestNewSessionToken_Unique(t *testing.T) {
	now := time.Now()
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		token := newSessionToken(now)
		if _, dup := seen[token]; dup {
			t.Fatalf("duplicate token generated: %s", token)
		}
		seen[token] = struct{}{}
	}
}
